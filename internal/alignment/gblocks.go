package alignment

import (
	"regexp"
	"strings"
)

// rulerLine matches the "=========+=========+" ruler Gblocks prints above
// each alignment block.
var rulerLine = regexp.MustCompile(`^\s*=[=+\s]*$`)

// parseGblocks reads the text results page written by Gblocks. Only lines
// between a ruler and the "Parameters" section carry alignment data; the
// "Gblocks" row of each block holds the selection marks.
func parseGblocks(aln *Alignment, lines []string) {
	b := newBuilder()
	var mask strings.Builder
	var layout columnLayout
	inData := false

	for _, line := range lines {
		if rulerLine.MatchString(line) {
			inData = true
			continue
		}
		if strings.HasPrefix(line, "Parameters") {
			inData = false
			continue
		}
		if !inData || startsWithSpace(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "Gblocks" {
			switch {
			case layout.chunkWidth > 0:
				mask.WriteString(layout.slice(line))
			case len(fields) > 1:
				mask.WriteString(fields[1])
			}
			continue
		}
		if len(fields) < 2 {
			continue
		}
		b.add(fields[0], fields[1])
		layout.update(line, fields[1])
	}

	aln.Records = b.records()
	aln.BlockMask = mask.String()
}
