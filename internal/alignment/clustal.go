package alignment

import (
	"strings"
	"unicode"
)

// columnLayout remembers the geometry of the most recent sequence line so
// that the annotation line under a block can be sliced at the same offsets.
type columnLayout struct {
	lineLen    int // length of the sequence line, trailing blanks removed
	idWidth    int // identifier plus the blanks after it
	chunkWidth int // residues on the line
}

func (l *columnLayout) update(line, chunk string) {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	l.lineLen = len(trimmed)
	l.idWidth = len(trimmed) - len(strings.TrimLeftFunc(trimmed[firstSpace(trimmed):], unicode.IsSpace))
	l.chunkWidth = len(chunk)
}

// slice cuts the sequence column out of an annotation line, padding short
// lines with blanks.
func (l *columnLayout) slice(line string) string {
	if len(line) < l.lineLen {
		line += strings.Repeat(" ", l.lineLen-len(line))
	}
	end := l.idWidth + l.chunkWidth
	if end > len(line) {
		line += strings.Repeat(" ", end-len(line))
	}
	return line[l.idWidth:end]
}

func firstSpace(s string) int {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return i
	}
	return len(s)
}

func startsWithSpace(line string) bool {
	return line != "" && unicode.IsSpace(rune(line[0]))
}

// parseClustal reads interleaved "id residues" blocks. The line right after a
// block's last sequence line (conservation line, Gblocks marks or blank) is
// appended to the block mask.
func parseClustal(aln *Alignment, lines []string) {
	b := newBuilder()
	var mask strings.Builder
	var layout columnLayout
	inBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "CLUSTAL") || strings.HasPrefix(line, "#") {
			continue
		}
		if line != "" && !startsWithSpace(line) {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				inBlock = false
				continue
			}
			b.add(fields[0], fields[1])
			layout.update(line, fields[1])
			inBlock = true
			continue
		}
		if inBlock {
			mask.WriteString(layout.slice(line))
			inBlock = false
		}
	}

	aln.Records = b.records()
	aln.BlockMask = mask.String()
}
