package gencode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTriplets(alphabet string) []string {
	var out []string
	for i := 0; i < len(alphabet); i++ {
		for j := 0; j < len(alphabet); j++ {
			for k := 0; k < len(alphabet); k++ {
				out = append(out, string([]byte{alphabet[i], alphabet[j], alphabet[k]}))
			}
		}
	}
	return out
}

func TestCodes_AllSupported(t *testing.T) {
	want := []Code{1, 2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 14, 15, 16, 21, 22, 23}
	assert.Equal(t, want, Codes())

	for _, c := range want {
		assert.NotContains(t, c.String(), "Code(", "code %d has no name", int(c))
	}
}

func TestTables_DefineEverySymbol(t *testing.T) {
	for _, c := range Codes() {
		tbl, err := Lookup(c)
		require.NoError(t, err)
		for i := 0; i < len(Residues); i++ {
			p, ok := tbl.Pattern(Residues[i])
			assert.True(t, ok, "code %d symbol %c", int(c), Residues[i])
			assert.NotEmpty(t, p.String(), "code %d symbol %c", int(c), Residues[i])
		}
		assert.NotEmpty(t, tbl.Start().String())
	}
}

func TestWildcard_MatchesEveryTriplet(t *testing.T) {
	triplets := allTriplets("ACGTU")
	for _, c := range Codes() {
		p, err := PatternFor(c, 'X')
		require.NoError(t, err)
		for _, codon := range triplets {
			assert.True(t, p.MatchCodon(codon), "code %d: X should match %s", int(c), codon)
		}
	}
}

func TestPatternFor_UnsupportedCode(t *testing.T) {
	_, err := PatternFor(Code(7), 'A')
	require.Error(t, err)

	var uc *UnsupportedCodeError
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, Code(7), uc.Code)
	assert.Contains(t, err.Error(), "23")
}

func TestPatternFor_UnknownSymbolIsWildcard(t *testing.T) {
	p, err := PatternFor(Standard, 'J')
	require.NoError(t, err)
	assert.Equal(t, "...", p.String())

	tbl, _ := Lookup(Standard)
	_, ok := tbl.Pattern('B')
	assert.False(t, ok, "B is the start entry, not an alignment residue")
}

func TestPattern_MatchCodon(t *testing.T) {
	tbl, err := Lookup(Standard)
	require.NoError(t, err)

	tests := []struct {
		symbol byte
		codon  string
		want   bool
	}{
		{'K', "AAA", true},
		{'K', "aag", true},
		{'K', "AAR", true},
		{'K', "AAC", false},
		{'M', "ATG", true},
		{'M', "AUG", true},
		{'L', "CTN", true},
		{'L', "TTA", true},
		{'*', "TGA", true},
		{'_', "TAG", true},
		{'W', "TGA", false},
		{'A', "GC", false},
		{'A', "GCAA", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbol)+"/"+tt.codon, func(t *testing.T) {
			p, _ := tbl.Pattern(tt.symbol)
			assert.Equal(t, tt.want, p.MatchCodon(tt.codon))
		})
	}
}

func TestAlternativeCodes(t *testing.T) {
	tests := []struct {
		code   Code
		symbol byte
		codon  string
		want   bool
	}{
		{VertebrateMitochondrial, 'W', "TGA", true},
		{VertebrateMitochondrial, '*', "AGA", true},
		{VertebrateMitochondrial, 'R', "AGA", false},
		{YeastMitochondrial, 'T', "CTT", true},
		{CiliateNuclear, 'Q', "TAA", true},
		{AscidianMitochondrial, 'G', "AGG", true},
		{ThraustochytriumMitochondrial, '*', "TTA", true},
		{Standard, '*', "TTA", false},
	}

	for _, tt := range tests {
		p, err := PatternFor(tt.code, tt.symbol)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.MatchCodon(tt.codon), "code %d %c %s", int(tt.code), tt.symbol, tt.codon)
	}
}

func TestPattern_Canonical(t *testing.T) {
	tbl, _ := Lookup(Standard)

	tests := []struct {
		symbol byte
		want   string
	}{
		{'A', "GCA"},
		{'K', "AAA"},
		{'L', "CUA"},
		{'S', "UCA"},
		{'*', "UAA"},
		{'X', "AAA"},
	}
	for _, tt := range tests {
		p, _ := tbl.Pattern(tt.symbol)
		assert.Equal(t, tt.want, p.Canonical(), "symbol %c", tt.symbol)
	}

	// The canonical codon always satisfies its own pattern.
	for _, c := range Codes() {
		tbl, _ := Lookup(c)
		for i := 0; i < len(Residues); i++ {
			p, _ := tbl.Pattern(Residues[i])
			assert.True(t, p.MatchCodon(p.Canonical()), "code %d symbol %c", int(c), Residues[i])
		}
		assert.True(t, tbl.Start().MatchCodon(tbl.Start().Canonical()), "code %d start", int(c))
	}
}

func TestUniversalStop(t *testing.T) {
	for _, codon := range []string{"TAA", "TAG", "TGA", "UAA", "TAR"} {
		assert.True(t, UniversalStop.MatchCodon(codon), codon)
	}
	for _, codon := range []string{"TTA", "AGA", "---", "TA"} {
		assert.False(t, UniversalStop.MatchCodon(codon), codon)
	}
}

func TestRelaxedStart(t *testing.T) {
	for _, codon := range []string{"ATG", "CTG", "GTG", "RTG"} {
		assert.True(t, RelaxedStart.MatchCodon(codon), codon)
	}
	assert.False(t, RelaxedStart.MatchCodon("TTG"))
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode(" 11 ")
	require.NoError(t, err)
	assert.Equal(t, BacterialPlastid, c)

	_, err = ParseCode("8")
	var uc *UnsupportedCodeError
	assert.True(t, errors.As(err, &uc))

	_, err = ParseCode("mito")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse genetic code"))
}
