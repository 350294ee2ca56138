package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victory-Hugo/S1-seqmagick-v2/internal/backtrans"
)

func gapped() *backtrans.CodonAlignment {
	return backtrans.Reconstruct(
		[]string{"a", "b"},
		[]string{"MA-K", "MAAK"},
		[]string{"ATGGCCAAA", "ATGGCCGCTAAA"},
		nil, "")
}

func mismatched() *backtrans.CodonAlignment {
	return backtrans.Reconstruct(
		[]string{"a", "b"},
		[]string{"MAK", "MAK"},
		[]string{"ATGGCCAAA", "ATGGCCAAC"},
		[]map[int]bool{nil, {3: true}},
		"")
}

func render(t *testing.T, f Format, ca *backtrans.CodonAlignment, peptides []string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f, ca, peptides, opts))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"clustal", FormatClustal},
		{"PAML", FormatPAML},
		{" fasta ", FormatFASTA},
		{"codon", FormatCodon},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.in)), got.String())
	}

	_, err := ParseFormat("nexus")
	var ce *backtrans.ConfigError
	assert.True(t, errors.As(err, &ce))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		opts    backtrans.Options
		wantErr bool
	}{
		{"codon alone", FormatCodon, backtrans.Options{}, false},
		{"codon with nogap", FormatCodon, backtrans.Options{NoGap: true}, true},
		{"codon with blockonly", FormatCodon, backtrans.Options{BlockOnly: true}, true},
		{"codon with nomismatch", FormatCodon, backtrans.Options{NoMismatch: true}, true},
		{"clustal with everything", FormatClustal, backtrans.Options{BlockOnly: true, NoGap: true, NoMismatch: true}, false},
		{"paml with nogap", FormatPAML, backtrans.Options{NoGap: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.format, tt.opts)
			if tt.wantErr {
				var ce *backtrans.ConfigError
				require.True(t, errors.As(err, &ce))
				assert.Contains(t, err.Error(), "codon")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrite_Clustal(t *testing.T) {
	got := render(t, FormatClustal, gapped(), nil, Options{})

	want := "CLUSTAL W multiple sequence alignment\n\n" +
		"a             ATGGCC---AAA\n" +
		"b             ATGGCCGCTAAA\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestWrite_ClustalWrapsAndMasks(t *testing.T) {
	pep := strings.Repeat("A", 25)
	nuc := strings.Repeat("GCT", 25)
	mask := strings.Repeat(" ", 20) + "#####"
	ca := backtrans.Reconstruct([]string{"long_identifier_1"}, []string{pep}, []string{nuc}, nil, mask)

	got := render(t, FormatClustal, ca, nil, Options{})
	lines := strings.Split(got, "\n")

	pad := strings.Repeat(" ", len("long_identifier_1")+4)
	assert.Equal(t, "long_identifier_1    "+nuc[:60], lines[2])
	assert.Equal(t, pad+strings.Repeat(" ", 60), lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "long_identifier_1    "+nuc[60:], lines[5])
	assert.Equal(t, pad+strings.Repeat("#", 15), lines[6])
}

func TestWrite_ClustalHTML(t *testing.T) {
	got := render(t, FormatClustal, mismatched(), nil, Options{HTML: true})

	assert.Contains(t, got, "a             ATGGCCAAA\n")
	assert.Contains(t, got,
		"b             ATGGCC<FONT color='red'>A</FONT><FONT color='red'>A</FONT><FONT color='red'>C</FONT>\n")
}

func TestWrite_PAML(t *testing.T) {
	got := render(t, FormatPAML, gapped(), nil, Options{})

	want := "   2     12\n" +
		"a\nATGGCC---AAA\n" +
		"b\nATGGCCGCTAAA\n"
	assert.Equal(t, want, got)
}

func TestWrite_FASTA(t *testing.T) {
	nuc := strings.Repeat("GCT", 30)
	ca := backtrans.Reconstruct([]string{"x"}, []string{strings.Repeat("A", 30)}, []string{nuc}, nil, "")

	got := render(t, FormatFASTA, ca, nil, Options{})
	assert.Equal(t, ">x\n"+nuc[:60]+"\n"+nuc[60:]+"\n", got)
}

func TestWrite_FASTAEmptyRow(t *testing.T) {
	ca := &backtrans.CodonAlignment{IDs: []string{"x"}, Rows: []string{""}, Marks: []string{""}}
	assert.Equal(t, ">x\n\n", render(t, FormatFASTA, ca, nil, Options{}))
}

func TestWrite_Codon(t *testing.T) {
	peptides := []string{"M2K", "MAK"}
	ca := backtrans.Reconstruct([]string{"a", "b"}, peptides, []string{"ATGGCAAA", "ATGGCCAAA"}, nil, "")

	got := render(t, FormatCodon, ca, peptides, Options{})

	blank := strings.Repeat(" ", 14)
	want := blank + "M   2   K\n" +
		"a             ATG GC- AAA\n" +
		blank + "M   A   K\n" +
		"b             ATG GCC AAA\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestWrite_CodonWideFrameshift(t *testing.T) {
	peptides := []string{"M5K", "MA-"}
	ca := backtrans.Reconstruct([]string{"a", "b"}, peptides, []string{"ATGGCCAAAAAA", "ATGGCC"}, nil, "")

	assert.Equal(t, []string{"M5-K", "MA--"}, aminoRows(ca, peptides))
}

func TestWrite_CodonMask(t *testing.T) {
	peptides := []string{"MAK"}
	ca := backtrans.Reconstruct([]string{"a"}, peptides, []string{"ATGGCCAAA"}, nil, " # ")

	got := render(t, FormatCodon, ca, peptides, Options{})
	assert.Contains(t, got, strings.Repeat(" ", 14)+"    ###    \n")
}

func TestWrite_CodonHTML(t *testing.T) {
	peptides := []string{"MAK", "MAK"}
	got := render(t, FormatCodon, mismatched(), peptides, Options{HTML: true})

	assert.Contains(t, got, "M   A   <FONT color='red'>K</FONT>\n")
	assert.Contains(t, got,
		"b             ATG GCC <FONT color='red'>A</FONT><FONT color='red'>A</FONT><FONT color='red'>C</FONT>\n")
	assert.Contains(t, got, "a             ATG GCC AAA\n")
}

func TestOpenCloseHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OpenHTML(&buf))
	require.NoError(t, CloseHTML(&buf))
	assert.Equal(t, "<pre>\n</pre>\n", buf.String())
}
