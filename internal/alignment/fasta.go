package alignment

import "strings"

// parseFASTA reads an aligned FASTA file. Lines before the first header are
// ignored.
func parseFASTA(aln *Alignment, lines []string) {
	var current *strings.Builder
	var ids []string
	var rows []*strings.Builder

	for _, line := range lines {
		if strings.HasPrefix(line, ">") {
			id := ""
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				id = fields[0]
			}
			current = &strings.Builder{}
			ids = append(ids, id)
			rows = append(rows, current)
			continue
		}
		if current == nil || strings.HasPrefix(line, "#") {
			continue
		}
		current.WriteString(strings.ToUpper(strings.Join(strings.Fields(line), "")))
	}

	aln.Records = make([]Record, len(ids))
	for i, id := range ids {
		aln.Records[i] = Record{ID: id, Seq: rows[i].String()}
	}
}
