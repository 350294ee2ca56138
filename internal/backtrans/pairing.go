package backtrans

import (
	"fmt"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/alignment"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/fasta"
)

// Correspondence is the policy used to pair peptide and nucleotide records.
type Correspondence int

const (
	// SameID pairs records by identifier.
	SameID Correspondence = iota
	// Ordered pairs the i-th peptide with the i-th nucleotide record.
	Ordered
)

func (c Correspondence) String() string {
	switch c {
	case SameID:
		return "sameID"
	case Ordered:
		return "ordered"
	default:
		return fmt.Sprintf("Correspondence(%d)", int(c))
	}
}

// Pairing is one peptide row and the nucleotide sequence that encodes it.
type Pairing struct {
	PeptideID    string
	NucleotideID string
	Peptide      string
	Nucleotide   string
}

// Pair matches peptide records to nucleotide records. When every peptide
// identifier is also a nucleotide identifier records are paired by ID,
// otherwise by position.
func Pair(peptides []alignment.Record, nuc *fasta.Set) ([]Pairing, Correspondence, error) {
	pepIDs := make([]string, len(peptides))
	for i, r := range peptides {
		pepIDs[i] = r.ID
	}
	nucIDs := nuc.IDs()

	if len(peptides) != len(nucIDs) {
		return nil, 0, &CountMismatchError{PeptideIDs: pepIDs, NucleotideIDs: nucIDs}
	}

	corr := SameID
	for _, id := range pepIDs {
		if !nuc.HasSequence(id) {
			corr = Ordered
			break
		}
	}

	if corr == SameID {
		seen := make(map[string]bool, len(pepIDs))
		for _, id := range pepIDs {
			if seen[id] {
				return nil, 0, &CorrespondenceError{
					Reason:        fmt.Sprintf("peptide ID %q appears more than once", id),
					PeptideIDs:    pepIDs,
					NucleotideIDs: nucIDs,
				}
			}
			seen[id] = true
		}
	}

	pairs := make([]Pairing, len(peptides))
	for i, r := range peptides {
		nucID := r.ID
		if corr == Ordered {
			nucID = nucIDs[i]
		}
		pairs[i] = Pairing{
			PeptideID:    r.ID,
			NucleotideID: nucID,
			Peptide:      r.Seq,
			Nucleotide:   nuc.Sequence(nucID),
		}
	}
	return pairs, corr, nil
}
