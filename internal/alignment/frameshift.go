package alignment

import (
	"regexp"
	"strings"
)

// A "/" before a residue marks a codon that lost one nucleotide: the
// residue is rewritten as the digit 2 and the slash becomes a gap.
var reverseShift = regexp.MustCompile(`/(-*)[A-Z*]`)

// NormalizeFrameshift rewrites inline frameshift marks into digit tokens
// giving the number of nucleotides the column consumes. "\" becomes "1";
// "/" followed by gaps and a residue becomes "-", the gaps, then "2". The
// residue itself is consumed by the digit, so "/--K" becomes "---2" and the
// row keeps its column count.
func NormalizeFrameshift(row string) string {
	row = strings.ReplaceAll(row, `\`, "1")
	return reverseShift.ReplaceAllString(row, "-${1}2")
}

// Normalized returns a copy of the alignment with every row passed through
// NormalizeFrameshift.
func (a *Alignment) Normalized() *Alignment {
	out := &Alignment{
		Format:    a.Format,
		Records:   make([]Record, len(a.Records)),
		BlockMask: a.BlockMask,
	}
	for i, r := range a.Records {
		out.Records[i] = Record{ID: r.ID, Seq: NormalizeFrameshift(r.Seq)}
	}
	return out
}
