package duckdb

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

// Run describes one back-translation invocation.
type Run struct {
	ID             string
	StartedAt      time.Time
	Alignment      FileFingerprint
	GeneticCode    int
	OutputFormat   string
	Correspondence string
}

// NewRun creates a run with a fresh identifier.
func NewRun(aln FileFingerprint, geneticCode int, outputFormat string) Run {
	return Run{
		ID:           uuid.NewString(),
		StartedAt:    time.Now().UTC(),
		Alignment:    aln,
		GeneticCode:  geneticCode,
		OutputFormat: outputFormat,
	}
}

// CodonRow is the stored result for one peptide record.
type CodonRow struct {
	RecordID     string
	NucleotideID string
	Tier         string
	Codons       string // matched codon subsequence
	Aligned      string // row of the final codon alignment
}

// MismatchRow is a stored warning.
type MismatchRow struct {
	RecordID string
	Column   int64
	Symbol   string
	Codon    string
	Message  string
}

// FromOutcome flattens an aligner outcome into storable rows. Mismatches are
// the reported warnings, after any block restriction.
func FromOutcome(out *backtrans.Outcome) ([]CodonRow, []MismatchRow) {
	rows := make([]CodonRow, len(out.Pairings))
	for i, p := range out.Pairings {
		rows[i] = CodonRow{
			RecordID:     p.PeptideID,
			NucleotideID: p.NucleotideID,
		}
		if i < len(out.Results) {
			rows[i].Tier = out.Results[i].Tier.String()
			rows[i].Codons = out.Results[i].Codons
		}
		if out.Alignment != nil && i < len(out.Alignment.Rows) {
			rows[i].Aligned = out.Alignment.Rows[i]
		}
	}

	var mismatches []MismatchRow
	if out.Report != nil {
		for _, w := range out.Report.Warnings {
			mismatches = append(mismatches, MismatchRow{
				RecordID: w.RecordID,
				Column:   int64(w.Mismatch.Column),
				Symbol:   string(w.Mismatch.Symbol),
				Codon:    w.Mismatch.Codon,
				Message:  w.Mismatch.String(),
			})
		}
	}
	return rows, mismatches
}

// WriteRun stores a run with its codon rows and mismatches.
func (s *Store) WriteRun(run Run, rows []CodonRow, mismatches []MismatchRow) error {
	if run.ID == "" {
		return fmt.Errorf("write run: empty run ID")
	}

	_, err := s.db.Exec(`INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.Alignment.Path, run.Alignment.Size, run.Alignment.ModTime,
		int64(run.GeneticCode), run.OutputFormat, run.Correspondence)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	codonValues := make([][]driver.Value, len(rows))
	for i, r := range rows {
		codonValues[i] = []driver.Value{run.ID, r.RecordID, r.NucleotideID, r.Tier, r.Codons, r.Aligned}
	}
	if err := s.appendRows("codon_rows", codonValues); err != nil {
		return err
	}

	mismatchValues := make([][]driver.Value, len(mismatches))
	for i, m := range mismatches {
		mismatchValues[i] = []driver.Value{run.ID, m.RecordID, m.Column, m.Symbol, m.Codon, m.Message}
	}
	return s.appendRows("mismatches", mismatchValues)
}

// Runs returns every stored run, oldest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT
		run_id, started_at, alignment_path, alignment_size, alignment_modtime,
		genetic_code, output_format, correspondence
		FROM runs ORDER BY started_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var code int64
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Alignment.Path, &r.Alignment.Size,
			&r.Alignment.ModTime, &code, &r.OutputFormat, &r.Correspondence); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.GeneticCode = int(code)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Rows returns the codon rows of a run in insertion order.
func (s *Store) Rows(runID string) ([]CodonRow, error) {
	rows, err := s.db.Query(`SELECT record_id, nucleotide_id, tier, codons, aligned
		FROM codon_rows WHERE run_id=?`, runID)
	if err != nil {
		return nil, fmt.Errorf("query codon rows: %w", err)
	}
	defer rows.Close()

	var out []CodonRow
	for rows.Next() {
		var r CodonRow
		if err := rows.Scan(&r.RecordID, &r.NucleotideID, &r.Tier, &r.Codons, &r.Aligned); err != nil {
			return nil, fmt.Errorf("scan codon row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate codon rows: %w", err)
	}
	return out, nil
}

// Mismatches returns the warnings of a run ordered by record and column.
func (s *Store) Mismatches(runID string) ([]MismatchRow, error) {
	rows, err := s.db.Query(`SELECT record_id, aln_column, symbol, codon, message
		FROM mismatches WHERE run_id=? ORDER BY record_id, aln_column`, runID)
	if err != nil {
		return nil, fmt.Errorf("query mismatches: %w", err)
	}
	defer rows.Close()

	var out []MismatchRow
	for rows.Next() {
		var m MismatchRow
		if err := rows.Scan(&m.RecordID, &m.Column, &m.Symbol, &m.Codon, &m.Message); err != nil {
			return nil, fmt.Errorf("scan mismatch: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mismatches: %w", err)
	}
	return out, nil
}

// ClearRuns removes every stored run.
func (s *Store) ClearRuns() error {
	for _, table := range []string{"mismatches", "codon_rows", "runs"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
