package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/alignment"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/diagnose"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/duckdb"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/fasta"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/gencode"
	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/output"
)

// alignSettings are the resolved options of one backtrans-align run.
type alignSettings struct {
	outFile    string
	format     string
	codonTable int
	blockOnly  bool
	noGap      bool
	noMismatch bool
	html       bool
	noStderr   bool
	workers    int
	db         string
}

func settingsFromViper(outFile string) alignSettings {
	return alignSettings{
		outFile:    outFile,
		format:     viper.GetString("output"),
		codonTable: viper.GetInt("codontable"),
		blockOnly:  viper.GetBool("blockonly"),
		noGap:      viper.GetBool("nogap"),
		noMismatch: viper.GetBool("nomismatch"),
		html:       viper.GetBool("html"),
		noStderr:   viper.GetBool("nostderr"),
		workers:    viper.GetInt("workers"),
		db:         viper.GetString("db"),
	}
}

func (s alignSettings) options() backtrans.Options {
	return backtrans.Options{BlockOnly: s.blockOnly, NoGap: s.noGap, NoMismatch: s.noMismatch}
}

func (a *app) newBacktransCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "backtrans-align <protein_align> <nuc_fasta>...",
		Short: "Build a codon alignment from a protein alignment",
		Long: `Back-translate a protein multiple alignment (CLUSTAL, aligned FASTA or
Gblocks text) onto the unaligned nucleotide sequences that encode it.

Records are paired by identifier when every protein ID has a nucleotide
record, otherwise by position. Mismatched codons are reported as warnings
on stderr.`,
		Example: `  seqmagick2 backtrans-align pep.aln nuc.fa
  seqmagick2 backtrans-align --output paml --nogap pep.aln nuc.fa -o codon.paml
  seqmagick2 backtrans-align --codontable 2 --output codon mito.aln mito.fa
  seqmagick2 backtrans-align --db runs.duckdb pep.aln nuc1.fa nuc2.fa.gz`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settingsFromViper(outFile)
			a.setupLogger(s.noStderr)
			return a.runBacktrans(cmd.Context(), args[0], args[1:], s)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&outFile, "out-file", "o", "", "Output file (default: stdout)")
	f.String("output", "clustal", "Output format: clustal, paml, fasta, codon")
	f.Bool("blockonly", false, "Show only the columns selected by the alignment's block mask")
	f.Bool("nogap", false, "Remove codons with gaps or in-frame stop codons")
	f.Bool("nomismatch", false, "Remove columns with mismatched codons")
	f.Int("codontable", int(gencode.Standard), "NCBI genetic code number")
	f.Bool("html", false, "HTML output with mismatches highlighted")
	f.Bool("nostderr", false, "No warnings or log messages on stderr")
	f.Int("workers", 0, "Matching workers (0 = number of CPUs)")
	f.String("db", "", "Record the run in this DuckDB database")

	for _, key := range []string{"output", "blockonly", "nogap", "nomismatch", "codontable", "html", "nostderr", "workers", "db"} {
		if err := viper.BindPFlag(key, f.Lookup(key)); err != nil {
			panic(fmt.Sprintf("binding flag %q: %v", key, err))
		}
	}

	return cmd
}

func (a *app) runBacktrans(ctx context.Context, alnPath string, nucPaths []string, s alignSettings) error {
	format, err := output.ParseFormat(s.format)
	if err != nil {
		return &usageError{err: err}
	}
	code := gencode.Code(s.codonTable)
	if _, err := gencode.Lookup(code); err != nil {
		return &usageError{err: err}
	}
	if err := output.Validate(format, s.options()); err != nil {
		return a.reportConfigError(err, s)
	}

	var out io.Writer = a.stdout
	if s.outFile != "" {
		f, err := os.Create(s.outFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	// In HTML mode every message goes into the document.
	diag := a.stderr
	if s.html {
		diag = out
		if err := output.OpenHTML(out); err != nil {
			return err
		}
	}

	nuc, err := fasta.NewLoader(nucPaths...).Load()
	if err != nil {
		return fmt.Errorf("loading nucleotide sequences: %w", err)
	}
	var fp duckdb.FileFingerprint
	if s.db != "" {
		if fp, err = duckdb.StatFile(alnPath); err != nil {
			return fmt.Errorf("fingerprinting alignment: %w", err)
		}
	}
	aln, err := alignment.ParseFile(alnPath)
	if err != nil {
		return fmt.Errorf("loading protein alignment: %w", err)
	}
	a.logger.Debug("inputs loaded",
		zap.String("alignment", alnPath),
		zap.Stringer("format", aln.Format),
		zap.Int("peptides", len(aln.Records)),
		zap.Int("nucleotides", nuc.Len()))

	aligner, err := backtrans.NewAligner(backtrans.Config{Code: code, Options: s.options(), Workers: s.workers})
	if err != nil {
		return err
	}
	aligner.SetLogger(a.logger)

	outcome, err := aligner.Align(aln, nuc)
	if err != nil {
		return a.reportAlignError(ctx, diag, err, s.html)
	}

	if !s.noStderr && !s.noMismatch {
		var inputs []string
		if !s.html {
			inputs = append([]string{alnPath}, nucPaths...)
		}
		if err := outcome.Report.Write(diag, inputs); err != nil {
			return fmt.Errorf("writing warnings: %w", err)
		}
	}

	if err := output.Write(out, format, outcome.Alignment, outcome.Peptides, output.Options{HTML: s.html}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if s.html {
		if err := output.CloseHTML(out); err != nil {
			return err
		}
	}

	if s.db != "" {
		if err := a.recordRun(s, alnPath, fp, format, code, outcome); err != nil {
			return err
		}
	}
	return nil
}

// reportConfigError prints a rejected option combination. Nothing has been
// opened yet, so the -o file is left untouched; in HTML mode the message
// goes to stdout as its own document unless -o was given.
func (a *app) reportConfigError(err error, s alignSettings) error {
	if s.html && s.outFile == "" {
		fmt.Fprintf(a.stdout, "<pre>\n\nERROR:  %v\n\n</pre>\n", err)
	} else {
		fmt.Fprintf(a.stderr, "\nERROR:  %v\n\n", err)
	}
	return &exitError{code: ExitError}
}

// reportAlignError prints the diagnostics for a failed alignment and
// returns the exit status.
func (a *app) reportAlignError(ctx context.Context, diag io.Writer, err error, html bool) error {
	var (
		countErr *backtrans.CountMismatchError
		corrErr  *backtrans.CorrespondenceError
		unrecErr *backtrans.UnrecoverableError
	)
	switch {
	case errors.As(err, &countErr):
		fmt.Fprintf(diag, "\nERROR: %v!!\n\n", countErr)
		if !html {
			fmt.Fprint(diag, countErr.Detail())
		}
	case errors.As(err, &corrErr):
		fmt.Fprintf(diag, "\nERROR in %v.\n\n", corrErr)
		if !html {
			fmt.Fprint(diag, corrErr.Detail())
		}
	case errors.As(err, &unrecErr):
		runner := diagnose.NewRunner(html)
		runner.SetLogger(a.logger)
		if werr := runner.Run(ctx, diag, unrecErr.Pairing); werr != nil {
			return fmt.Errorf("writing diagnostics: %w", werr)
		}
	default:
		return err
	}
	return &exitError{code: ExitError}
}

// recordRun stores the outcome in the DuckDB result store. fp is the
// alignment's fingerprint taken before it was read.
func (a *app) recordRun(s alignSettings, alnPath string, fp duckdb.FileFingerprint, format output.Format, code gencode.Code, outcome *backtrans.Outcome) error {
	store, err := duckdb.Open(s.db)
	if err != nil {
		return fmt.Errorf("opening result store: %w", err)
	}
	defer store.Close()

	if !fp.Matches(alnPath) {
		a.logger.Warn("alignment changed during the run", zap.String("path", alnPath))
	}
	run := duckdb.NewRun(fp, int(code), format.String())
	run.Correspondence = outcome.Correspondence.String()

	rows, mismatches := duckdb.FromOutcome(outcome)
	if err := store.WriteRun(run, rows, mismatches); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	a.logger.Info("run recorded",
		zap.String("run_id", run.ID),
		zap.String("db", s.db),
		zap.Int("rows", len(rows)),
		zap.Int("mismatches", len(mismatches)))
	return nil
}
