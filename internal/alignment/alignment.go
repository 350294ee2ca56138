// Package alignment reads protein multiple alignments in CLUSTAL, FASTA and
// Gblocks text formats.
package alignment

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format is an alignment file format.
type Format int

// Supported alignment formats.
const (
	FormatClustal Format = iota
	FormatFASTA
	FormatGblocks
)

func (f Format) String() string {
	switch f {
	case FormatClustal:
		return "clustal"
	case FormatFASTA:
		return "fasta"
	case FormatGblocks:
		return "gblocks"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// BlockSelected marks a column selected by the block mask.
const BlockSelected = '#'

// Record is one aligned peptide row.
type Record struct {
	ID  string
	Seq string
}

// Alignment is an ordered set of peptide rows plus an optional block mask.
type Alignment struct {
	Format    Format
	Records   []Record
	BlockMask string
}

// IDs returns record identifiers in alignment order.
func (a *Alignment) IDs() []string {
	ids := make([]string, len(a.Records))
	for i, r := range a.Records {
		ids[i] = r.ID
	}
	return ids
}

// Rows returns the aligned sequences in alignment order.
func (a *Alignment) Rows() []string {
	rows := make([]string, len(a.Records))
	for i, r := range a.Records {
		rows[i] = r.Seq
	}
	return rows
}

// Width returns the column count of the first row.
func (a *Alignment) Width() int {
	if len(a.Records) == 0 {
		return 0
	}
	return len(a.Records[0].Seq)
}

// HasBlocks reports whether the block mask selects at least one column.
func (a *Alignment) HasBlocks() bool {
	return strings.IndexByte(a.BlockMask, BlockSelected) >= 0
}

// InBlock reports whether column i (0-based) is selected. Columns past the
// end of the mask are not selected.
func (a *Alignment) InBlock(i int) bool {
	return i >= 0 && i < len(a.BlockMask) && a.BlockMask[i] == BlockSelected
}

// ParseFile reads an alignment from path. Files ending in .gz are
// decompressed.
func ParseFile(path string) (*Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alignment file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return Parse(reader)
}

// Parse detects the format of r and reads the alignment.
func Parse(r io.Reader) (*Alignment, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	aln := &Alignment{Format: DetectFormat(lines)}
	switch aln.Format {
	case FormatFASTA:
		parseFASTA(aln, lines)
	case FormatGblocks:
		parseGblocks(aln, lines)
	default:
		parseClustal(aln, lines)
	}
	return aln, nil
}

// DetectFormat inspects the first non-blank, non-comment line.
func DetectFormat(lines []string) Format {
	for _, line := range lines {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "CLUSTAL"):
			return FormatClustal
		case strings.HasPrefix(line, ">"):
			return FormatFASTA
		case strings.HasPrefix(line, "Gblocks"):
			return FormatGblocks
		}
		return FormatClustal
	}
	return FormatClustal
}

// readLines splits r into lines. Trailing CRs are dropped.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan alignment: %w", err)
	}
	return lines, nil
}

// builder accumulates rows keyed by identifier in first-appearance order.
type builder struct {
	order []string
	rows  map[string]*strings.Builder
}

func newBuilder() *builder {
	return &builder{rows: make(map[string]*strings.Builder)}
}

func (b *builder) add(id, chunk string) {
	row, ok := b.rows[id]
	if !ok {
		row = &strings.Builder{}
		b.rows[id] = row
		b.order = append(b.order, id)
	}
	row.WriteString(strings.ToUpper(chunk))
}

func (b *builder) records() []Record {
	out := make([]Record, len(b.order))
	for i, id := range b.order {
		out[i] = Record{ID: id, Seq: b.rows[id].String()}
	}
	return out
}
