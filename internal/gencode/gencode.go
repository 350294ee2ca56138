// Package gencode provides the NCBI genetic code tables used to turn
// amino-acid symbols into nucleotide matching patterns.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
package gencode

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Code identifies one of the supported NCBI genetic codes.
type Code int

// Supported genetic codes.
const (
	Standard                         Code = 1
	VertebrateMitochondrial          Code = 2
	YeastMitochondrial               Code = 3
	MoldMitochondrial                Code = 4
	InvertebrateMitochondrial        Code = 5
	CiliateNuclear                   Code = 6
	EchinodermMitochondrial          Code = 9
	EuplotidNuclear                  Code = 10
	BacterialPlastid                 Code = 11
	AlternativeYeastNuclear          Code = 12
	AscidianMitochondrial            Code = 13
	AlternativeFlatwormMitochondrial Code = 14
	BlepharismaNuclear               Code = 15
	ChlorophyceanMitochondrial       Code = 16
	TrematodeMitochondrial           Code = 21
	ScenedesmusMitochondrial         Code = 22
	ThraustochytriumMitochondrial    Code = 23
)

// String returns the NCBI name of the code.
func (c Code) String() string {
	switch c {
	case Standard:
		return "Standard"
	case VertebrateMitochondrial:
		return "Vertebrate Mitochondrial"
	case YeastMitochondrial:
		return "Yeast Mitochondrial"
	case MoldMitochondrial:
		return "Mold, Protozoan, Coelenterate Mitochondrial and Mycoplasma/Spiroplasma"
	case InvertebrateMitochondrial:
		return "Invertebrate Mitochondrial"
	case CiliateNuclear:
		return "Ciliate, Dasycladacean and Hexamita Nuclear"
	case EchinodermMitochondrial:
		return "Echinoderm and Flatworm Mitochondrial"
	case EuplotidNuclear:
		return "Euplotid Nuclear"
	case BacterialPlastid:
		return "Bacterial, Archaeal and Plant Plastid"
	case AlternativeYeastNuclear:
		return "Alternative Yeast Nuclear"
	case AscidianMitochondrial:
		return "Ascidian Mitochondrial"
	case AlternativeFlatwormMitochondrial:
		return "Alternative Flatworm Mitochondrial"
	case BlepharismaNuclear:
		return "Blepharisma Nuclear"
	case ChlorophyceanMitochondrial:
		return "Chlorophycean Mitochondrial"
	case TrematodeMitochondrial:
		return "Trematode Mitochondrial"
	case ScenedesmusMitochondrial:
		return "Scenedesmus obliquus Mitochondrial"
	case ThraustochytriumMitochondrial:
		return "Thraustochytrium Mitochondrial"
	default:
		return "Code(" + strconv.Itoa(int(c)) + ")"
	}
}

// UnsupportedCodeError is returned when a genetic code identifier has no table.
type UnsupportedCodeError struct {
	Code Code
}

func (e *UnsupportedCodeError) Error() string {
	return fmt.Sprintf("unsupported genetic code %d (supported: %s)", int(e.Code), supportedList())
}

// Symbols that every table defines.
const (
	symbolStart    = 'B'
	symbolWildcard = 'X'
)

// Residues is the set of alignment symbols translated through a table.
const Residues = "ACDEFGHIKLMNPQRSTVWY*_X"

var (
	// Wildcard matches any codon.
	Wildcard = mustPattern("...")

	// RelaxedStart accepts A, C, G or R followed by TG. It stands in for the
	// code-specific start pattern during anchored matching.
	RelaxedStart = mustPattern("((A|C|G|R)TG)")

	// UniversalStop matches TAA, TAG and TGA (and their U/R spellings).
	UniversalStop = mustPattern("(((U|T)A(A|G|R))|((T|U)GA))")
)

// Pattern is a compiled codon expression.
type Pattern struct {
	expr  string
	codon *regexp.Regexp
}

func mustPattern(expr string) Pattern {
	return Pattern{
		expr:  expr,
		codon: regexp.MustCompile("(?i)^(?:" + expr + ")$"),
	}
}

// String returns the expression text, suitable for concatenation into a
// longer search pattern.
func (p Pattern) String() string {
	return p.expr
}

// MatchCodon reports whether codon (case-insensitive) is accepted by the pattern.
func (p Pattern) MatchCodon(codon string) bool {
	if p.codon == nil {
		return false
	}
	return p.codon.MatchString(codon)
}

// Canonical returns the codon spelled by the first alternative of every
// choice in the expression. Any-base positions become 'A'.
func (p Pattern) Canonical() string {
	var b strings.Builder
	firstAlternative(p.expr, &b)
	return b.String()
}

// firstAlternative writes the first branch of expr and returns the number
// of bytes consumed (up to but excluding a closing paren at depth zero).
func firstAlternative(expr string, b *strings.Builder) int {
	i := 0
	skipping := false
	for i < len(expr) {
		switch c := expr[i]; c {
		case '(':
			var sub strings.Builder
			n := firstAlternative(expr[i+1:], &sub)
			if !skipping {
				b.WriteString(sub.String())
			}
			i += n + 2
			continue
		case ')':
			return i
		case '|':
			skipping = true
		case '.':
			if !skipping {
				b.WriteByte('A')
			}
		default:
			if !skipping {
				b.WriteByte(c)
			}
		}
		i++
	}
	return i
}

// Table maps alignment symbols to codon patterns for one genetic code.
type Table struct {
	code     Code
	patterns map[byte]Pattern
}

var tables = buildTables()

func buildTables() map[Code]*Table {
	out := make(map[Code]*Table, len(definitions))
	for code, defs := range definitions {
		t := &Table{code: code, patterns: make(map[byte]Pattern, len(defs))}
		for sym, expr := range defs {
			t.patterns[sym] = mustPattern(expr)
		}
		out[code] = t
	}
	return out
}

// Lookup returns the table for code.
func Lookup(code Code) (*Table, error) {
	t, ok := tables[code]
	if !ok {
		return nil, &UnsupportedCodeError{Code: code}
	}
	return t, nil
}

// PatternFor returns the pattern for symbol under code. Symbols without an
// entry resolve to the wildcard.
func PatternFor(code Code, symbol byte) (Pattern, error) {
	t, err := Lookup(code)
	if err != nil {
		return Pattern{}, err
	}
	p, _ := t.Pattern(symbol)
	return p, nil
}

// ParseCode parses a numeric genetic code identifier.
func ParseCode(s string) (Code, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse genetic code %q: %w", s, err)
	}
	code := Code(n)
	if _, ok := tables[code]; !ok {
		return 0, &UnsupportedCodeError{Code: code}
	}
	return code, nil
}

// Codes returns the supported codes in ascending order.
func Codes() []Code {
	codes := make([]Code, 0, len(tables))
	for c := range tables {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func supportedList() string {
	codes := Codes()
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, ", ")
}

// Code returns the identifier of the table.
func (t *Table) Code() Code {
	return t.code
}

// Pattern returns the pattern for an upper-case alignment symbol. The
// boolean is false (and the wildcard returned) for symbols the table does
// not translate.
func (t *Table) Pattern(symbol byte) (Pattern, bool) {
	if symbol == symbolStart || !strings.ContainsRune(Residues, rune(symbol)) {
		return t.patterns[symbolWildcard], false
	}
	return t.patterns[symbol], true
}

// Start returns the code's start-codon pattern.
func (t *Table) Start() Pattern {
	return t.patterns[symbolStart]
}
