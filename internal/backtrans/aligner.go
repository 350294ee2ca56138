package backtrans

import (
	"go.uber.org/zap"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/alignment"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/fasta"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/gencode"
)

// Options selects the post-filters applied to the codon alignment.
type Options struct {
	BlockOnly  bool // keep only columns selected by the block mask
	NoGap      bool // drop codons with a gap or stop in any row
	NoMismatch bool // drop columns that carry a mismatch warning
}

// Any reports whether at least one filter is enabled.
func (o Options) Any() bool {
	return o.BlockOnly || o.NoGap || o.NoMismatch
}

// Config configures an Aligner.
type Config struct {
	Code    gencode.Code
	Options Options
	Workers int // 0 means runtime.NumCPU()
}

// Aligner runs the back-translation pipeline.
type Aligner struct {
	code    gencode.Code
	matcher *Matcher
	opts    Options
	workers int
	logger  *zap.Logger
}

// NewAligner creates an aligner. It fails for an unsupported genetic code.
func NewAligner(cfg Config) (*Aligner, error) {
	code := cfg.Code
	if code == 0 {
		code = gencode.Standard
	}
	table, err := gencode.Lookup(code)
	if err != nil {
		return nil, err
	}
	return &Aligner{
		code:    code,
		matcher: NewMatcher(table),
		opts:    cfg.Options,
		workers: cfg.Workers,
		logger:  zap.NewNop(),
	}, nil
}

// SetLogger sets the logger for the aligner and its matcher.
func (a *Aligner) SetLogger(l *zap.Logger) {
	a.logger = l
	a.matcher.SetLogger(l)
}

// Outcome is everything a run produces.
type Outcome struct {
	Correspondence Correspondence
	Pairings       []Pairing
	Results        []*Result
	// Peptides are the frameshift-normalized protein rows.
	Peptides  []string
	Report    *Report
	Alignment *CodonAlignment
}

// Align pairs, matches and reconstructs. The first record (in alignment
// order) that cannot be matched aborts the run with *UnrecoverableError.
func (a *Aligner) Align(aln *alignment.Alignment, nuc *fasta.Set) (*Outcome, error) {
	norm := aln.Normalized()

	pairs, corr, err := Pair(norm.Records, nuc)
	if err != nil {
		return nil, err
	}
	a.logger.Info("paired records",
		zap.Int("records", len(pairs)),
		zap.Stringer("correspondence", corr))

	results, err := a.matchAll(pairs)
	if err != nil {
		return nil, err
	}

	report := &Report{Code: a.code}
	codons := make([]string, len(results))
	flagged := make([]map[int]bool, len(results))
	for i, r := range results {
		report.Add(pairs[i].PeptideID, r.Mismatches)
		codons[i] = r.Codons
		flagged[i] = make(map[int]bool, len(r.Mismatches))
		for _, m := range r.Mismatches {
			flagged[i][m.Column] = true
		}
	}
	if a.opts.BlockOnly {
		report.RestrictToBlocks(norm.BlockMask)
	}

	peptides := norm.Rows()
	ca := Reconstruct(norm.IDs(), peptides, codons, flagged, norm.BlockMask)
	if a.opts.BlockOnly {
		ca = FilterBlocks(ca, norm.BlockMask)
	}
	if a.opts.NoMismatch {
		ca = FilterMismatches(ca, report.Columns())
	}
	if a.opts.NoGap {
		ca = FilterNoGap(ca)
	}

	return &Outcome{
		Correspondence: corr,
		Pairings:       pairs,
		Results:        results,
		Peptides:       peptides,
		Report:         report,
		Alignment:      ca,
	}, nil
}

// matchAll matches every pairing on the worker pool and returns the results
// in input order.
func (a *Aligner) matchAll(pairs []Pairing) ([]*Result, error) {
	items := make(chan WorkItem, len(pairs))
	for i, p := range pairs {
		items <- WorkItem{Seq: i, Pairing: p}
	}
	close(items)

	results := make([]*Result, 0, len(pairs))
	err := OrderedCollect(a.matcher.ParallelMatch(items, a.workers), func(r WorkResult) error {
		if !r.Result.OK() {
			a.logger.Error("unrecoverable codon match",
				zap.String("peptide", r.Pairing.PeptideID),
				zap.String("nucleotide", r.Pairing.NucleotideID))
			return &UnrecoverableError{Pairing: r.Pairing}
		}
		if r.Result.Tier == TierAnchoredPartial {
			a.logger.Info("recovered through anchored search",
				zap.String("peptide", r.Pairing.PeptideID),
				zap.Int("mismatches", len(r.Result.Mismatches)))
		}
		results = append(results, r.Result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
