package backtrans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct_Gaps(t *testing.T) {
	ca := Reconstruct(
		[]string{"a", "b"},
		[]string{"MA-K", "M-AK"},
		[]string{"ATGGCCAAA", "ATGGCTAAG"},
		nil, "")

	assert.Equal(t, []string{"ATGGCC---AAA", "ATG---GCTAAG"}, ca.Rows)
	assert.Equal(t, 12, ca.Len())
	assert.False(t, ca.HasMask())
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3}, ca.Source)
	assert.Equal(t, "------------", ca.Marks[0])
}

func TestReconstruct_DigitColumns(t *testing.T) {
	ca := Reconstruct(
		[]string{"a", "b"},
		[]string{"M2K", "MAK"},
		[]string{"ATGGCAAA", "ATGGCCAAA"},
		nil, "")

	assert.Equal(t, []string{"ATGGC-AAA", "ATGGCCAAA"}, ca.Rows)
}

func TestReconstruct_WidthStable(t *testing.T) {
	peptides := []string{"M1-K4", "MA-K-", "M--KA"}
	codons := []string{"ATGGAAAACGTA", "ATGGCCAAA", "ATGAAAGCC"}

	ca := Reconstruct([]string{"a", "b", "c"}, peptides, codons, nil, "")
	require.Len(t, ca.Rows, 3)
	for _, row := range ca.Rows {
		assert.Len(t, row, ca.Len())
	}
	for _, m := range ca.Marks {
		assert.Len(t, m, ca.Len())
	}
	assert.Len(t, ca.Source, ca.Len())
}

func TestReconstruct_MarksAndMask(t *testing.T) {
	ca := Reconstruct(
		[]string{"a", "b"},
		[]string{"MAK", "MAK"},
		[]string{"ATGGCCAAA", "ATGGCCAAC"},
		[]map[int]bool{nil, {3: true}},
		" ##")

	assert.Equal(t, "---------", ca.Marks[0])
	assert.Equal(t, "------RRR", ca.Marks[1])
	assert.True(t, ca.HasMask())
	assert.Equal(t, "   ######", ca.Mask)
}

func TestReconstruct_MaskWithoutSelection(t *testing.T) {
	ca := Reconstruct([]string{"a"}, []string{"MAK"}, []string{"ATGGCCAAA"}, nil, "** ")
	assert.False(t, ca.HasMask())
}

func TestFilterBlocks(t *testing.T) {
	ca := Reconstruct(
		[]string{"a", "b"},
		[]string{"MAK", "MAK"},
		[]string{"ATGGCCAAA", "ATGGCTAAG"},
		nil, " # ")

	out := FilterBlocks(ca, " # ")
	assert.Equal(t, []string{"GCC", "GCT"}, out.Rows)
	assert.Equal(t, []int{1, 1, 1}, out.Source)
	assert.False(t, out.HasMask())
}

func TestFilterBlocks_ColumnsPastMaskKept(t *testing.T) {
	ca := Reconstruct([]string{"a"}, []string{"MAK"}, []string{"ATGGCCAAA"}, nil, "#")
	out := FilterBlocks(ca, "#")
	assert.Equal(t, []string{"ATGGCCAAA"}, out.Rows)
}

func TestFilterBlocks_NoSelectionUnchanged(t *testing.T) {
	ca := Reconstruct([]string{"a"}, []string{"MAK"}, []string{"ATGGCCAAA"}, nil, "")
	assert.Same(t, ca, FilterBlocks(ca, "   "))
}

func TestFilterMismatches(t *testing.T) {
	ca := Reconstruct(
		[]string{"a", "b"},
		[]string{"MAK", "MAK"},
		[]string{"ATGGCCAAA", "ATGGCCAAC"},
		[]map[int]bool{nil, {3: true}},
		"")

	out := FilterMismatches(ca, map[int]bool{2: true})
	assert.Equal(t, []string{"ATGGCC", "ATGGCC"}, out.Rows)
	assert.Equal(t, []string{"------", "------"}, out.Marks)
}

func TestFilterNoGap(t *testing.T) {
	ca := &CodonAlignment{
		IDs:    []string{"a", "b"},
		Rows:   []string{"ATGGCCAAATAA", "ATG---AAATAG"},
		Marks:  []string{"------------", "------------"},
		Source: []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3},
	}

	out := FilterNoGap(ca)
	assert.Equal(t, []string{"ATGAAA", "ATGAAA"}, out.Rows)
	assert.Equal(t, []int{0, 0, 0, 2, 2, 2}, out.Source)

	again := FilterNoGap(out)
	assert.Equal(t, out.Rows, again.Rows)
	assert.Equal(t, out.Source, again.Source)
}
