package output

import (
	"strings"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

const (
	fontOpen  = "<FONT color='red'>"
	fontClose = "</FONT>"
)

func red(s string) string {
	return fontOpen + s + fontClose
}

func flagged(marks string, i int) bool {
	return i < len(marks) && marks[i] == backtrans.MismatchMark
}

// colored wraps every character of seq whose mark is a mismatch.
func colored(seq, marks string) string {
	if strings.IndexByte(marks, backtrans.MismatchMark) < 0 {
		return seq
	}
	var b strings.Builder
	for i := 0; i < len(seq); i++ {
		if flagged(marks, i) {
			b.WriteString(red(seq[i : i+1]))
		} else {
			b.WriteByte(seq[i])
		}
	}
	return b.String()
}

// rowText returns one chunk of a row, highlighted when enabled.
func (w *Writer) rowText(row, marks string, i int) string {
	chunk := chunkAt(row, codonsPerLine, i)
	if !w.opts.HTML {
		return chunk
	}
	return colored(chunk, chunkAt(marks, codonsPerLine, i))
}
