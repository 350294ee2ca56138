package backtrans

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/gencode"
)

var reportRule = "#" + strings.Repeat("-", 72) + "#"

// Warning is a mismatch attributed to a peptide record.
type Warning struct {
	RecordID string
	Mismatch Mismatch
}

func (w Warning) String() string {
	return fmt.Sprintf("WARNING: %s %s", w.RecordID, w.Mismatch)
}

// Report collects the warnings of a run.
type Report struct {
	Code     gencode.Code
	Warnings []Warning
}

// Add records the mismatches of one record.
func (r *Report) Add(recordID string, mismatches []Mismatch) {
	for _, m := range mismatches {
		r.Warnings = append(r.Warnings, Warning{RecordID: recordID, Mismatch: m})
	}
}

// RestrictToBlocks drops warnings outside the columns selected by blockMask.
// A mask that selects nothing keeps every warning.
func (r *Report) RestrictToBlocks(blockMask string) {
	if strings.IndexByte(blockMask, MaskSelected) < 0 {
		return
	}
	kept := r.Warnings[:0]
	for _, w := range r.Warnings {
		col := w.Mismatch.Column - 1
		if col >= 0 && col < len(blockMask) && blockMask[col] == MaskSelected {
			kept = append(kept, w)
		}
	}
	r.Warnings = kept
}

// Columns returns the 0-based protein columns that carry a warning.
func (r *Report) Columns() map[int]bool {
	cols := make(map[int]bool, len(r.Warnings))
	for _, w := range r.Warnings {
		cols[w.Mismatch.Column-1] = true
	}
	return cols
}

// Lines returns the report messages, preceded by a note when a
// non-standard genetic code is in use.
func (r *Report) Lines() []string {
	var lines []string
	if r.Code != 0 && r.Code != gencode.Standard {
		lines = append(lines, fmt.Sprintf("Codontable %d is used", int(r.Code)))
	}
	for _, w := range r.Warnings {
		lines = append(lines, w.String())
	}
	return lines
}

// Write prints the report as a framed comment block. When inputs is not
// empty the block opens with the input file names. Nothing is written for
// an empty report.
func (r *Report) Write(w io.Writer, inputs []string) error {
	lines := r.Lines()
	if len(lines) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, reportRule)
	if len(inputs) > 0 {
		fmt.Fprintf(bw, "#  Input files:  %s\n", strings.Join(inputs, " "))
	}
	for _, line := range lines {
		fmt.Fprintf(bw, "#  %s\n", line)
	}
	fmt.Fprintf(bw, "%s\n\n", reportRule)
	return bw.Flush()
}
