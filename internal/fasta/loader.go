// Package fasta loads unaligned nucleotide sequences from FASTA files.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Set holds nucleotide sequences keyed by identifier, remembering the order
// of headers across every file loaded into it.
type Set struct {
	ids       []string
	sequences map[string]string
}

// NewSet creates an empty sequence set.
func NewSet() *Set {
	return &Set{sequences: make(map[string]string)}
}

// Loader reads one or more FASTA files into a Set.
type Loader struct {
	paths []string
}

// NewLoader creates a loader for the given files. Files are read in order.
func NewLoader(paths ...string) *Loader {
	return &Loader{paths: paths}
}

// Load parses every file and returns the combined set.
func (l *Loader) Load() (*Set, error) {
	set := NewSet()
	for _, path := range l.paths {
		if err := loadFile(set, path); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func loadFile(set *Set, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	if err := set.Parse(reader); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse reads FASTA content into the set. Headers contribute their first
// whitespace-delimited token as the identifier. Sequence lines are stripped
// of everything but letters; blank and '#' lines are skipped. A repeated
// identifier appends to the existing sequence.
func (s *Set) Parse(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long sequences
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	builders := make(map[string]*strings.Builder)
	var current *strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			id := parseHeader(line)
			s.ids = append(s.ids, id)
			current = builders[id]
			if current == nil {
				current = &strings.Builder{}
				current.WriteString(s.sequences[id])
				builders[id] = current
			}
			continue
		}
		if current != nil {
			current.WriteString(lettersOnly(line))
		}
	}

	for id, b := range builders {
		s.sequences[id] = b.String()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan FASTA: %w", err)
	}
	return nil
}

// parseHeader extracts the identifier from a FASTA header line.
func parseHeader(header string) string {
	fields := strings.Fields(strings.TrimPrefix(header, ">"))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lettersOnly(line string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return r
		}
		return -1
	}, line)
}

// IDs returns header identifiers in the order they were read, including
// repeats.
func (s *Set) IDs() []string {
	return s.ids
}

// Len returns the number of headers read.
func (s *Set) Len() int {
	return len(s.ids)
}

// Sequence returns the sequence for id.
func (s *Set) Sequence(id string) string {
	return s.sequences[id]
}

// HasSequence reports whether id was seen.
func (s *Set) HasSequence(id string) bool {
	_, ok := s.sequences[id]
	return ok
}
