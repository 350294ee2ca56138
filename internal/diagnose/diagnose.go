// Package diagnose explains why a peptide could not be reconciled with its
// nucleotide sequence, using an external pairwise aligner when one is
// installed.
package diagnose

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

// DefaultTool is the aligner looked up on PATH.
const DefaultTool = "bl2seq"

const (
	lineWidth = 60
	header    = "#---  ERROR: inconsistency between the following pep and nuc seqs  ---#\n"
	hint      = "\n\nRun bl2seq (-p tblastn) or GeneWise to see the inconsistency.\n\n"
)

// Runner prints the offending pair and, if possible, a TBLASTN comparison.
type Runner struct {
	tool     string
	lookPath func(string) (string, error)
	html     bool
	logger   *zap.Logger
}

// NewRunner creates a runner that looks for DefaultTool on PATH.
func NewRunner(html bool) *Runner {
	return &Runner{
		tool:     DefaultTool,
		lookPath: exec.LookPath,
		html:     html,
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger for tool failures.
func (r *Runner) SetLogger(l *zap.Logger) {
	r.logger = l
}

// SetTool replaces the aligner executable name or path.
func (r *Runner) SetTool(name string) {
	r.tool = name
}

// Run writes the diagnostic for p to w. Only write errors are returned;
// a missing or failing aligner is logged and reported as a hint.
func (r *Runner) Run(ctx context.Context, w io.Writer, p backtrans.Pairing) error {
	bw := bufio.NewWriter(w)

	pep := wrap(strings.ReplaceAll(p.Peptide, "-", ""))
	nuc := wrap(strings.ReplaceAll(p.Nucleotide, "-", ""))
	pepRecord := fmt.Sprintf(">%s\n%s\n", p.PeptideID, pep)
	nucRecord := fmt.Sprintf(">%s\n%s\n", p.NucleotideID, nuc)

	if r.html {
		bw.WriteString("</pre>\n<H1>ERROR in your input files!</H1>\n<pre>\n")
	}
	bw.WriteString(header)
	bw.WriteString(pepRecord)
	bw.WriteString(nucRecord)
	if r.html {
		bw.WriteString("</pre>\n")
	}

	path, err := r.lookPath(r.tool)
	if err != nil {
		r.logger.Debug("pairwise aligner not found", zap.String("tool", r.tool), zap.Error(err))
		bw.WriteString(hint)
		return bw.Flush()
	}

	out, err := r.compare(ctx, path, pepRecord, nucRecord)
	if err != nil {
		r.logger.Warn("pairwise aligner failed", zap.String("tool", path), zap.Error(err))
		bw.WriteString(hint)
		return bw.Flush()
	}

	if r.html {
		bw.WriteString("<BR>\n<BR>\n")
		bw.WriteString("<H1>Check the following TBLASTN output.</H1><BR>\n<pre>\n")
		bw.WriteString("      your pep -> 'Query'\n")
		bw.WriteString("      your nuc -> 'Sbjct'\n<BR>\n")
	} else {
		bw.WriteString("\n\n")
		bw.WriteString("        ###-----   Check the following TBLASTN output:           -----###\n")
		bw.WriteString("        ###-----       your pep -> 'Query'                       -----###\n")
		bw.WriteString("        ###-----       your nuc -> 'Sbjct'                       -----###\n")
		bw.WriteString("\n")
	}
	for _, line := range strings.Split(normalizeNewlines(out), "\n") {
		bw.WriteString(line + "\n")
	}
	if r.html {
		bw.WriteString("</pre>\n")
	}
	return bw.Flush()
}

// compare runs the aligner on the two records through temporary files and
// returns its report.
func (r *Runner) compare(ctx context.Context, tool, pepRecord, nucRecord string) (string, error) {
	dir, err := os.MkdirTemp("", "seqmagick2-diag-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pepFile := filepath.Join(dir, "erraafile")
	nucFile := filepath.Join(dir, "errnucfile")
	outFile := filepath.Join(dir, "tbln.out")
	if err := os.WriteFile(pepFile, []byte(pepRecord), 0o600); err != nil {
		return "", fmt.Errorf("write peptide: %w", err)
	}
	if err := os.WriteFile(nucFile, []byte(nucRecord), 0o600); err != nil {
		return "", fmt.Errorf("write nucleotide: %w", err)
	}

	cmd := exec.CommandContext(ctx, tool, "-p", "tblastn", "-F", "F", "-i", pepFile, "-j", nucFile, "-o", outFile)
	if combined, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("run %s: %w: %s", filepath.Base(tool), err, strings.TrimSpace(string(combined)))
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		return "", fmt.Errorf("read %s output: %w", filepath.Base(tool), err)
	}
	return string(data), nil
}

func wrap(s string) string {
	var lines []string
	for i := 0; i < len(s); i += lineWidth {
		end := i + lineWidth
		if end > len(s) {
			end = len(s)
		}
		lines = append(lines, s[i:end])
	}
	return strings.Join(lines, "\n")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
