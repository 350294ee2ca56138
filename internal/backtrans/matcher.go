// Package backtrans rebuilds a codon alignment from a protein alignment and
// the unaligned nucleotide sequences that encode it.
package backtrans

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/gencode"
)

// anchorSize is the number of residues per anchor in the fallback search.
const anchorSize = 10

// Tier is the confidence of a codon match.
type Tier int

const (
	// TierFailed means no codon subsequence could be recovered.
	TierFailed Tier = iota
	// TierExactWhole means the whole row matched its exact pattern.
	TierExactWhole
	// TierAnchoredPartial means the row was recovered through anchors and
	// may carry per-residue mismatches.
	TierAnchoredPartial
)

func (t Tier) String() string {
	switch t {
	case TierFailed:
		return "failed"
	case TierExactWhole:
		return "exact"
	case TierAnchoredPartial:
		return "anchored"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// State is a step of the per-record matching state machine:
//
//	Unmatched -> WholeAttempted -> Matched
//	                            -> AnchorFallback -> Matched | Failed
type State int

const (
	StateUnmatched State = iota
	StateWholeAttempted
	StateAnchorFallback
	StateMatched
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnmatched:
		return "unmatched"
	case StateWholeAttempted:
		return "whole-attempted"
	case StateAnchorFallback:
		return "anchor-fallback"
	case StateMatched:
		return "matched"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Mismatch is a residue whose symbol and codon disagree.
type Mismatch struct {
	Column  int // 1-based protein alignment column
	Symbol  byte
	Codon   string
	Unknown bool // symbol not in the genetic code, read as X
}

func (m Mismatch) String() string {
	if m.Unknown {
		return fmt.Sprintf("pepAlnPos %d: %c unknown AA type. Taken as 'X'", m.Column, m.Symbol)
	}
	return fmt.Sprintf("pepAlnPos %d: %c does not correspond to %s", m.Column, m.Symbol, m.Codon)
}

// Result is the outcome of matching one peptide row to one nucleotide
// sequence.
type Result struct {
	Codons     string
	Tier       Tier
	Mismatches []Mismatch
	Path       []State
}

// OK reports whether a codon subsequence was recovered.
func (r *Result) OK() bool {
	return r != nil && r.Tier != TierFailed
}

// Matcher finds the codon subsequence encoding a peptide row.
// A Matcher is safe for concurrent use.
type Matcher struct {
	table  *gencode.Table
	logger *zap.Logger
}

// NewMatcher creates a matcher for the given genetic code table.
func NewMatcher(t *gencode.Table) *Matcher {
	return &Matcher{table: t, logger: zap.NewNop()}
}

// SetLogger sets the logger for debug messages.
func (m *Matcher) SetLogger(l *zap.Logger) {
	m.logger = l
}

func isGap(c byte) bool {
	return c == '-' || c == '.'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isResidue(c byte) bool {
	return !isGap(c) && !isDigit(c)
}

func anyBases(n int) string {
	return strings.Repeat(".", n)
}

func group(p gencode.Pattern) string {
	return "(?:" + p.String() + ")"
}

// Match aligns peptide (a normalized alignment row) to nucleotide.
func (m *Matcher) Match(peptide, nucleotide string) *Result {
	res := &Result{}
	state := StateUnmatched

	for {
		res.Path = append(res.Path, state)

		switch state {
		case StateUnmatched:
			pattern, unknown := m.wholePattern(peptide)
			res.Mismatches = append(res.Mismatches, unknown...)
			if codons, ok := m.search(pattern, nucleotide); ok {
				res.Codons = codons
				res.Tier = TierExactWhole
			}
			state = StateWholeAttempted

		case StateWholeAttempted:
			if res.Tier == TierExactWhole {
				state = StateMatched
				continue
			}
			state = StateAnchorFallback

		case StateAnchorFallback:
			codons, ok := m.search(m.anchoredPattern(peptide, nucleotide), nucleotide)
			if !ok {
				state = StateFailed
				continue
			}
			res.Codons = codons
			res.Tier = TierAnchoredPartial
			res.Mismatches = append(res.Mismatches, m.verify(peptide, codons)...)
			state = StateMatched

		case StateMatched, StateFailed:
			m.logger.Debug("codon match",
				zap.Stringer("tier", res.Tier),
				zap.Int("mismatches", len(res.Mismatches)))
			return res
		}
	}
}

// wholePattern concatenates the exact pattern of every residue. An M before
// any specific residue takes the code's start pattern. Unknown symbols are
// returned as warnings and matched as X.
func (m *Matcher) wholePattern(peptide string) (string, []Mismatch) {
	var b strings.Builder
	var unknown []Mismatch
	leading := true

	for i := 0; i < len(peptide); i++ {
		c := peptide[i]
		switch {
		case isGap(c):
		case isDigit(c):
			b.WriteString(anyBases(int(c - '0')))
		default:
			p, known := m.table.Pattern(c)
			if !known {
				unknown = append(unknown, Mismatch{Column: i + 1, Symbol: c, Unknown: true})
			}
			if c == 'M' && leading {
				p = m.table.Start()
			}
			if known && c != 'X' {
				leading = false
			}
			b.WriteString(group(p))
		}
	}
	return b.String(), unknown
}

// anchoredPattern builds the fallback pattern: each anchor contributes its
// exact pattern when that pattern occurs anywhere in the nucleotide
// sequence, and a run of wildcards otherwise.
func (m *Matcher) anchoredPattern(peptide, nucleotide string) string {
	var whole strings.Builder
	for i, anc := range splitAnchors(peptide) {
		precise, loose := m.anchorPatterns(anc.text, i == 0)
		if _, ok := m.search(precise, nucleotide); ok {
			whole.WriteString(precise)
		} else {
			m.logger.Debug("anchor fell back to wildcards", zap.Int("anchor", i))
			whole.WriteString(loose)
		}
	}
	return whole.String()
}

func (m *Matcher) anchorPatterns(text string, first bool) (precise, loose string) {
	var pb, lb strings.Builder
	leading := first

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isGap(c):
		case isDigit(c):
			pb.WriteString(anyBases(int(c - '0')))
			lb.WriteString(anyBases(int(c - '0')))
		default:
			p, known := m.table.Pattern(c)
			if c == 'M' && leading {
				p = gencode.RelaxedStart
			}
			if known && c != 'X' {
				leading = false
			}
			pb.WriteString(group(p))
			lb.WriteString(group(gencode.Wildcard))
		}
	}
	return pb.String(), lb.String()
}

// verify walks the matched codons residue by residue and reports every
// codon that its residue's pattern rejects.
func (m *Matcher) verify(peptide, codons string) []Mismatch {
	var out []Mismatch
	pos := 0
	residues := 0

	for i := 0; i < len(peptide); i++ {
		c := peptide[i]
		switch {
		case isGap(c):
		case isDigit(c):
			pos += int(c - '0')
		default:
			residues++
			codon := sliceCodons(codons, pos, 3)
			pos += 3

			var ok bool
			if residues == 1 && c == 'M' {
				ok = gencode.RelaxedStart.MatchCodon(codon)
			} else {
				p, _ := m.table.Pattern(c)
				ok = p.MatchCodon(codon)
			}
			if !ok {
				out = append(out, Mismatch{Column: i + 1, Symbol: c, Codon: codon})
			}
		}
	}
	return out
}

// search returns the leftmost case-insensitive match of pattern in s.
func (m *Matcher) search(pattern, s string) (string, bool) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		m.logger.Warn("codon pattern rejected", zap.Int("length", len(pattern)), zap.Error(err))
		return "", false
	}
	loc := re.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}

// sliceCodons returns s[from:from+n] clipped to the bounds of s.
func sliceCodons(s string, from, n int) string {
	if from >= len(s) {
		return ""
	}
	end := from + n
	if end > len(s) {
		end = len(s)
	}
	return s[from:end]
}

type anchor struct {
	text     string
	residues int
}

// splitAnchors cuts peptide into runs of anchorSize residues. Gaps and digit
// tokens ride along with the residues around them. A short trailing run is
// merged into the one before it.
func splitAnchors(peptide string) []anchor {
	var out []anchor
	start, n := 0, 0
	for i := 0; i < len(peptide); i++ {
		if isResidue(peptide[i]) {
			n++
		}
		if n == anchorSize || i == len(peptide)-1 {
			out = append(out, anchor{text: peptide[start : i+1], residues: n})
			start, n = i+1, 0
		}
	}

	if k := len(out); k > 1 && out[k-1].residues < anchorSize {
		out[k-2].text += out[k-1].text
		out[k-2].residues += out[k-1].residues
		out = out[:k-1]
	}
	return out
}
