// Package output renders codon alignments as CLUSTAL, PAML, FASTA or the
// paired amino-acid/codon layout, optionally with HTML highlighting of
// mismatched codons.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

// Format is an output encoding.
type Format int

// Supported output encodings.
const (
	FormatClustal Format = iota
	FormatPAML
	FormatFASTA
	FormatCodon
)

var formatNames = map[Format]string{
	FormatClustal: "clustal",
	FormatPAML:    "paml",
	FormatFASTA:   "fasta",
	FormatCodon:   "codon",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Formats lists the output encodings by name.
func Formats() []string {
	return []string{"clustal", "paml", "fasta", "codon"}
}

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, &backtrans.ConfigError{
		Msg: fmt.Sprintf("unknown output format %q (expected one of %s)", s, strings.Join(Formats(), ", ")),
	}
}

// Validate rejects option combinations that the format cannot render. The
// codon layout pairs every codon with its residue, which column filters
// would break.
func Validate(f Format, opts backtrans.Options) error {
	if f == FormatCodon && opts.Any() {
		return &backtrans.ConfigError{
			Msg: `"--output codon" is not valid with --blockonly, --nogap, --nomismatch`,
		}
	}
	return nil
}

// Options controls rendering.
type Options struct {
	HTML bool // wrap mismatched characters in red FONT tags
}

const (
	codonsPerLine   = 60
	residuesPerLine = codonsPerLine / 3
	idGutter        = "    "
	minIDWidth      = 10
)

// Writer renders codon alignments in one format.
type Writer struct {
	w      *bufio.Writer
	format Format
	opts   Options
}

// NewWriter creates a writer for the given format.
func NewWriter(w io.Writer, f Format, opts Options) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: f, opts: opts}
}

// Write renders ca. peptides are the normalized protein rows the alignment
// was built from; only the codon layout reads them.
func (w *Writer) Write(ca *backtrans.CodonAlignment, peptides []string) error {
	switch w.format {
	case FormatClustal:
		w.writeClustal(ca)
	case FormatPAML:
		w.writePAML(ca)
	case FormatFASTA:
		w.writeFASTA(ca)
	case FormatCodon:
		w.writeCodon(ca, peptides)
	default:
		return fmt.Errorf("unsupported output format %s", w.format)
	}
	return w.w.Flush()
}

// Write renders ca to w in a single call.
func Write(w io.Writer, f Format, ca *backtrans.CodonAlignment, peptides []string, opts Options) error {
	return NewWriter(w, f, opts).Write(ca, peptides)
}

// OpenHTML starts an HTML document.
func OpenHTML(w io.Writer) error {
	_, err := io.WriteString(w, "<pre>\n")
	return err
}

// CloseHTML ends an HTML document.
func CloseHTML(w io.Writer) error {
	_, err := io.WriteString(w, "</pre>\n")
	return err
}

// idWidth is the width of the identifier column.
func idWidth(ids []string) int {
	n := minIDWidth
	for _, id := range ids {
		if len(id) > n {
			n = len(id)
		}
	}
	return n
}

// splitFixed cuts s into pieces of width n; the last may be shorter.
func splitFixed(s string, n int) []string {
	var out []string
	for i := 0; i < len(s); i += n {
		end := i + n
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[i:end])
	}
	return out
}

// chunkAt returns piece i of splitFixed(s, n), or "" past the end.
func chunkAt(s string, n, i int) string {
	from := i * n
	if from >= len(s) {
		return ""
	}
	end := from + n
	if end > len(s) {
		end = len(s)
	}
	return s[from:end]
}
