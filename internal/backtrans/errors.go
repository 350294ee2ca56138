package backtrans

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid combination of options. It is raised
// before any input is read.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// CountMismatchError is returned when the peptide and nucleotide inputs hold
// a different number of records.
type CountMismatchError struct {
	PeptideIDs    []string
	NucleotideIDs []string
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("number of input seqs differ (aa: %d;  nuc: %d)", len(e.PeptideIDs), len(e.NucleotideIDs))
}

// Detail lists both sets of identifiers.
func (e *CountMismatchError) Detail() string {
	return fmt.Sprintf("   aa  '%s'\n   nuc '%s'\n", strings.Join(e.PeptideIDs, " "), strings.Join(e.NucleotideIDs, " "))
}

// CorrespondenceError is returned when records cannot be paired
// unambiguously.
type CorrespondenceError struct {
	Reason        string
	PeptideIDs    []string
	NucleotideIDs []string
}

func (e *CorrespondenceError) Error() string {
	return "ID correspondence: " + e.Reason
}

// Detail lists both sets of identifiers.
func (e *CorrespondenceError) Detail() string {
	return fmt.Sprintf("   aa  '%s'\n   nuc '%s'\n", strings.Join(e.PeptideIDs, " "), strings.Join(e.NucleotideIDs, " "))
}

// UnrecoverableError is returned when a peptide row cannot be reconciled with
// its nucleotide sequence even through the anchored fallback.
type UnrecoverableError struct {
	Pairing Pairing
}

func (e *UnrecoverableError) Error() string {
	return fmt.Sprintf("inconsistency between peptide %q and nucleotide %q", e.Pairing.PeptideID, e.Pairing.NucleotideID)
}
