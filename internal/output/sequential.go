package output

import (
	"fmt"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

// writePAML writes the PAML sequential layout: a count/length header, then
// each identifier on its own line followed by its row in 60-column lines.
func (w *Writer) writePAML(ca *backtrans.CodonAlignment) {
	fmt.Fprintf(w.w, " %3d %6d\n", len(ca.IDs), ca.Len())
	for k, id := range ca.IDs {
		w.w.WriteString(id + "\n")
		w.writeWrapped(ca.Rows[k], ca.Marks[k])
	}
}

func (w *Writer) writeFASTA(ca *backtrans.CodonAlignment) {
	for k, id := range ca.IDs {
		w.w.WriteString(">" + id + "\n")
		w.writeWrapped(ca.Rows[k], ca.Marks[k])
	}
}

func (w *Writer) writeWrapped(row, marks string) {
	n := len(splitFixed(row, codonsPerLine))
	if n == 0 {
		w.w.WriteString("\n")
		return
	}
	for i := 0; i < n; i++ {
		w.w.WriteString(w.rowText(row, marks, i) + "\n")
	}
}
