package backtrans

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/gencode"
)

func newTestMatcher(t *testing.T, code gencode.Code) *Matcher {
	t.Helper()
	tbl, err := gencode.Lookup(code)
	require.NoError(t, err)
	return NewMatcher(tbl)
}

func TestMatch_ExactWhole(t *testing.T) {
	m := newTestMatcher(t, gencode.Standard)

	res := m.Match("MAK", "ATGGCCAAA")
	require.True(t, res.OK())
	assert.Equal(t, TierExactWhole, res.Tier)
	assert.Equal(t, "ATGGCCAAA", res.Codons)
	assert.Empty(t, res.Mismatches)
	assert.Equal(t, []State{StateUnmatched, StateWholeAttempted, StateMatched}, res.Path)
}

func TestMatch_LocatesEmbeddedCDS(t *testing.T) {
	m := newTestMatcher(t, gencode.Standard)

	res := m.Match("M-A-K", "ccccATGGCCAAAtgagg")
	require.True(t, res.OK())
	assert.Equal(t, TierExactWhole, res.Tier)
	assert.Equal(t, "ATGGCCAAA", res.Codons)
}

func TestMatch_AnchoredPartial(t *testing.T) {
	m := newTestMatcher(t, gencode.Standard)

	res := m.Match("MAK", "ATGGCCAAC")
	require.True(t, res.OK())
	assert.Equal(t, TierAnchoredPartial, res.Tier)
	assert.Equal(t, "ATGGCCAAC", res.Codons)
	require.Len(t, res.Mismatches, 1)
	assert.Equal(t, Mismatch{Column: 3, Symbol: 'K', Codon: "AAC"}, res.Mismatches[0])
	assert.Equal(t, "pepAlnPos 3: K does not correspond to AAC", res.Mismatches[0].String())
	assert.Equal(t,
		[]State{StateUnmatched, StateWholeAttempted, StateAnchorFallback, StateMatched},
		res.Path)
}

func TestMatch_AnchorKeepsExactNeighbours(t *testing.T) {
	tbl, err := gencode.Lookup(gencode.Standard)
	require.NoError(t, err)
	m := NewMatcher(tbl)

	// Two anchors: the first matches exactly, the second carries one bad
	// codon at residue 15.
	const peptide = "MAKLSWEDCFGHIKNPQRTV"
	var nuc strings.Builder
	nuc.WriteString("ATG")
	for i := 1; i < len(peptide); i++ {
		if i == 14 {
			nuc.WriteString("TTT")
			continue
		}
		p, _ := tbl.Pattern(peptide[i])
		nuc.WriteString(p.Canonical())
	}

	res := m.Match(peptide, nuc.String())
	require.True(t, res.OK())
	assert.Equal(t, TierAnchoredPartial, res.Tier)
	assert.Equal(t, nuc.String(), res.Codons)
	require.Len(t, res.Mismatches, 1)
	assert.Equal(t, 15, res.Mismatches[0].Column)
	assert.Equal(t, byte('N'), res.Mismatches[0].Symbol)
	assert.Equal(t, "TTT", res.Mismatches[0].Codon)
}

func TestMatch_Failed(t *testing.T) {
	m := newTestMatcher(t, gencode.Standard)

	res := m.Match("MAKL", "ATGGCC")
	assert.False(t, res.OK())
	assert.Equal(t, TierFailed, res.Tier)
	assert.Empty(t, res.Codons)
	assert.Equal(t, StateFailed, res.Path[len(res.Path)-1])
}

func TestMatch_UnknownSymbol(t *testing.T) {
	m := newTestMatcher(t, gencode.Standard)

	res := m.Match("MJK", "ATGCCCAAA")
	require.True(t, res.OK())
	assert.Equal(t, TierExactWhole, res.Tier)
	require.Len(t, res.Mismatches, 1)
	assert.True(t, res.Mismatches[0].Unknown)
	assert.Equal(t, 2, res.Mismatches[0].Column)
	assert.Equal(t, "pepAlnPos 2: J unknown AA type. Taken as 'X'", res.Mismatches[0].String())
}

func TestMatch_FrameshiftDigits(t *testing.T) {
	m := newTestMatcher(t, gencode.Standard)

	res := m.Match("M2K", "ATGGCAAA")
	require.True(t, res.OK())
	assert.Equal(t, TierExactWhole, res.Tier)
	assert.Equal(t, "ATGGCAAA", res.Codons)
}

func TestMatch_LowerCaseNucleotides(t *testing.T) {
	m := newTestMatcher(t, gencode.Standard)

	res := m.Match("MAK", "atggccaaa")
	require.True(t, res.OK())
	assert.Equal(t, "atggccaaa", res.Codons)
}

func TestMatch_CanonicalRoundTrip(t *testing.T) {
	const peptide = "MAKLSWEDCFGHIKNPQRTVY*"

	for _, code := range gencode.Codes() {
		tbl, err := gencode.Lookup(code)
		require.NoError(t, err)

		var nuc strings.Builder
		for i := 0; i < len(peptide); i++ {
			if i == 0 {
				nuc.WriteString(tbl.Start().Canonical())
				continue
			}
			p, _ := tbl.Pattern(peptide[i])
			nuc.WriteString(p.Canonical())
		}

		res := NewMatcher(tbl).Match(peptide, nuc.String())
		require.True(t, res.OK(), "code %d", int(code))
		assert.Equal(t, TierExactWhole, res.Tier, "code %d", int(code))
		assert.Equal(t, nuc.String(), res.Codons, "code %d", int(code))
		assert.Empty(t, res.Mismatches, "code %d", int(code))
	}
}

func TestSplitAnchors(t *testing.T) {
	tests := []struct {
		name     string
		peptide  string
		residues []int
	}{
		{"short row", "MA--K", []int{3}},
		{"exact multiple", strings.Repeat("A", 20), []int{10, 10}},
		{"short tail merged", strings.Repeat("A", 25), []int{10, 15}},
		{"trailing gaps merged", strings.Repeat("A", 10) + "--", []int{10}},
		{"digits ride along", "A2" + strings.Repeat("A", 9), []int{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchors := splitAnchors(tt.peptide)
			var got []int
			var joined strings.Builder
			for _, a := range anchors {
				got = append(got, a.residues)
				joined.WriteString(a.text)
			}
			assert.Equal(t, tt.residues, got)
			assert.Equal(t, tt.peptide, joined.String())
		})
	}
}

func TestTierAndStateStrings(t *testing.T) {
	assert.Equal(t, "exact", TierExactWhole.String())
	assert.Equal(t, "anchored", TierAnchoredPartial.String())
	assert.Equal(t, "failed", TierFailed.String())
	assert.Equal(t, "anchor-fallback", StateAnchorFallback.String())
}
