package output

import (
	"fmt"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

// writeClustal writes interleaved blocks of 60 columns, each followed by the
// block mask when the alignment carries one.
func (w *Writer) writeClustal(ca *backtrans.CodonAlignment) {
	w.w.WriteString("CLUSTAL W multiple sequence alignment\n\n")
	if len(ca.Rows) == 0 {
		return
	}

	width := idWidth(ca.IDs)
	blocks := len(splitFixed(ca.Rows[0], codonsPerLine))
	for i := 0; i < blocks; i++ {
		for k, id := range ca.IDs {
			fmt.Fprintf(w.w, "%-*s%s%s\n", width, id, idGutter, w.rowText(ca.Rows[k], ca.Marks[k], i))
		}
		if ca.HasMask() {
			fmt.Fprintf(w.w, "%-*s%s%s\n", width, "", idGutter, chunkAt(ca.Mask, codonsPerLine, i))
		}
		w.w.WriteString("\n")
	}
}
