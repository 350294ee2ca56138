package backtrans

import (
	"strings"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/gencode"
)

// keep returns a copy of c restricted to the nucleotide columns for which
// want returns true.
func (c *CodonAlignment) keep(want func(j int) bool) *CodonAlignment {
	n := c.Len()
	rows := make([]strings.Builder, len(c.Rows))
	marks := make([]strings.Builder, len(c.Rows))
	var mask strings.Builder
	var source []int

	for j := 0; j < n; j++ {
		if !want(j) {
			continue
		}
		for k := range c.Rows {
			rows[k].WriteByte(c.Rows[k][j])
			if j < len(c.Marks[k]) {
				marks[k].WriteByte(c.Marks[k][j])
			}
		}
		if j < len(c.Mask) {
			mask.WriteByte(c.Mask[j])
		}
		if j < len(c.Source) {
			source = append(source, c.Source[j])
		}
	}

	out := &CodonAlignment{
		IDs:    c.IDs,
		Rows:   make([]string, len(c.Rows)),
		Marks:  make([]string, len(c.Rows)),
		Mask:   mask.String(),
		Source: source,
	}
	for k := range rows {
		out.Rows[k] = rows[k].String()
		out.Marks[k] = marks[k].String()
	}
	return out
}

// FilterBlocks keeps the columns whose protein column the block mask
// selects, and drops the mask row. Protein columns past the end of the mask
// are kept. A mask that selects nothing leaves the alignment unchanged.
func FilterBlocks(c *CodonAlignment, blockMask string) *CodonAlignment {
	if strings.IndexByte(blockMask, MaskSelected) < 0 {
		return c
	}
	out := c.keep(func(j int) bool {
		col := c.Source[j]
		return col >= len(blockMask) || blockMask[col] == MaskSelected
	})
	out.Mask = ""
	return out
}

// FilterMismatches drops every column produced by a protein column in
// columns (0-based).
func FilterMismatches(c *CodonAlignment, columns map[int]bool) *CodonAlignment {
	if len(columns) == 0 {
		return c
	}
	return c.keep(func(j int) bool {
		return !columns[c.Source[j]]
	})
}

// FilterNoGap keeps only codon frames (three columns starting at multiples
// of three) in which no row has a gap or a stop codon. Applying it twice
// gives the same result as applying it once.
func FilterNoGap(c *CodonAlignment) *CodonAlignment {
	n := c.Len()
	frameOK := make([]bool, (n+2)/3)
	for f := range frameOK {
		ok := true
		for _, row := range c.Rows {
			codon := sliceCodons(row, f*3, 3)
			if strings.IndexByte(codon, GapFill) >= 0 || gencode.UniversalStop.MatchCodon(codon) {
				ok = false
				break
			}
		}
		frameOK[f] = ok
	}
	return c.keep(func(j int) bool {
		return frameOK[j/3]
	})
}
