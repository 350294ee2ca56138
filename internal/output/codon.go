package output

import (
	"fmt"
	"strings"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

// writeCodon writes each row as a residue line above a codon line, 20
// codons per block, with every residue placed over the first base of its
// codon.
func (w *Writer) writeCodon(ca *backtrans.CodonAlignment, peptides []string) {
	if len(ca.Rows) == 0 {
		return
	}

	width := idWidth(ca.IDs)
	residues := aminoRows(ca, peptides)
	blocks := len(splitFixed(ca.Rows[0], codonsPerLine))

	for i := 0; i < blocks; i++ {
		for k, id := range ca.IDs {
			aa := chunkAt(residues[k], residuesPerLine, i)
			codons := splitFixed(chunkAt(ca.Rows[k], codonsPerLine, i), 3)
			marks := splitFixed(chunkAt(ca.Marks[k], codonsPerLine, i), 3)

			aaCells := make([]string, len(aa))
			for q := range aaCells {
				aaCells[q] = aa[q : q+1]
			}
			if w.opts.HTML {
				for q := range codons {
					if q >= len(marks) {
						break
					}
					if q < len(aaCells) && strings.IndexByte(marks[q], backtrans.MismatchMark) >= 0 {
						aaCells[q] = red(aaCells[q])
					}
					codons[q] = colored(codons[q], marks[q])
				}
			}

			fmt.Fprintf(w.w, "%-*s%s%s\n", width, "", idGutter, strings.Join(aaCells, "   "))
			fmt.Fprintf(w.w, "%-*s%s%s\n", width, id, idGutter, strings.Join(codons, " "))
		}
		if ca.HasMask() {
			mask := splitFixed(chunkAt(ca.Mask, codonsPerLine, i), 3)
			fmt.Fprintf(w.w, "%-*s%s%s\n", width, "", idGutter, strings.Join(mask, " "))
		}
		w.w.WriteString("\n")
	}
}

// aminoRows spells each peptide row on the codon axis: one symbol per codon
// frame, the column's symbol on its first frame and gaps on the rest.
func aminoRows(ca *backtrans.CodonAlignment, peptides []string) []string {
	out := make([]string, len(ca.Rows))
	for k := range ca.Rows {
		var b strings.Builder
		for j := 0; j < len(ca.Source); j += 3 {
			col := ca.Source[j]
			if j >= 3 && ca.Source[j-3] == col {
				b.WriteByte(backtrans.GapFill)
				continue
			}
			if k < len(peptides) && col < len(peptides[k]) {
				b.WriteByte(peptides[k][col])
			} else {
				b.WriteByte(backtrans.GapFill)
			}
		}
		out[k] = b.String()
	}
	return out
}
