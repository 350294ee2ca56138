package backtrans

import "strings"

// Fill characters used in reconstructed rows and masks.
const (
	GapFill      = '-'
	MismatchMark = 'R'
	MaskSelected = '#'
	MaskOff      = ' '
)

// CodonAlignment is a nucleotide alignment rebuilt from a protein alignment.
// Rows, Marks and Mask share one column axis.
type CodonAlignment struct {
	IDs   []string
	Rows  []string
	Marks []string // per-row mismatch mask: MismatchMark or GapFill
	Mask  string   // block mask: MaskSelected or MaskOff, empty without blocks
	// Source maps each nucleotide column to its 0-based protein column.
	Source []int
}

// Len returns the number of nucleotide columns.
func (c *CodonAlignment) Len() int {
	if len(c.Rows) == 0 {
		return 0
	}
	return len(c.Rows[0])
}

// HasMask reports whether a block mask row should be shown.
func (c *CodonAlignment) HasMask() bool {
	return c.Mask != ""
}

// symbolAt returns the symbol of row at col; short rows read as gaps.
func symbolAt(row string, col int) byte {
	if col < len(row) {
		return row[col]
	}
	return GapFill
}

// symbolWidth is the number of nucleotide columns a symbol needs: one codon,
// or a digit token rounded up to whole codons.
func symbolWidth(c byte) int {
	if !isDigit(c) {
		return 3
	}
	return ((int(c-'0')-1)/3 + 1) * 3
}

// ColumnWidth returns the nucleotide width of protein column col.
func ColumnWidth(peptides []string, col int) int {
	width := 0
	for _, row := range peptides {
		if w := symbolWidth(symbolAt(row, col)); w > width {
			width = w
		}
	}
	return width
}

// Reconstruct lays the matched codons of each row out along the protein
// alignment columns. flagged holds, per row, the 1-based columns reported as
// mismatched. blockMask is the alignment's block mask; it only produces a
// mask row when it selects something.
func Reconstruct(ids, peptides, codons []string, flagged []map[int]bool, blockMask string) *CodonAlignment {
	n := len(peptides)
	rows := make([]strings.Builder, n)
	marks := make([]strings.Builder, n)
	cursor := make([]int, n)
	var mask strings.Builder
	var source []int

	width := 0
	if n > 0 {
		width = len(peptides[0])
	}
	withMask := strings.IndexByte(blockMask, MaskSelected) >= 0

	for col := 0; col < width; col++ {
		w := ColumnWidth(peptides, col)

		for k := 0; k < n; k++ {
			c := symbolAt(peptides[k], col)
			emitted := 0
			switch {
			case isGap(c):
			case isDigit(c):
				d := int(c - '0')
				chunk := sliceCodons(codons[k], cursor[k], d)
				rows[k].WriteString(chunk)
				cursor[k] += d
				emitted = len(chunk)
			default:
				chunk := sliceCodons(codons[k], cursor[k], 3)
				rows[k].WriteString(chunk)
				cursor[k] += 3
				emitted = len(chunk)
			}
			if pad := w - emitted; pad > 0 {
				rows[k].WriteString(strings.Repeat(string(GapFill), pad))
			}

			mark := byte(GapFill)
			if k < len(flagged) && flagged[k][col+1] {
				mark = MismatchMark
			}
			marks[k].WriteString(strings.Repeat(string(mark), w))
		}

		if withMask {
			fill := byte(MaskOff)
			if col < len(blockMask) && blockMask[col] == MaskSelected {
				fill = MaskSelected
			}
			mask.WriteString(strings.Repeat(string(fill), w))
		}
		for i := 0; i < w; i++ {
			source = append(source, col)
		}
	}

	out := &CodonAlignment{
		IDs:    append([]string(nil), ids...),
		Rows:   make([]string, n),
		Marks:  make([]string, n),
		Mask:   mask.String(),
		Source: source,
	}
	for k := range rows {
		out.Rows[k] = rows[k].String()
		out.Marks[k] = marks[k].String()
	}
	return out
}
