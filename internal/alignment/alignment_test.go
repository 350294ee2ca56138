package alignment

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Format
	}{
		{"clustal header", []string{"CLUSTAL W (1.83) multiple sequence alignment"}, FormatClustal},
		{"fasta", []string{"", "# comment", ">seq1", "MK"}, FormatFASTA},
		{"gblocks", []string{"Gblocks 0.91b Results"}, FormatGblocks},
		{"bare blocks default to clustal", []string{"seq1  MKV"}, FormatClustal},
		{"empty", nil, FormatClustal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.lines))
		})
	}
}

func TestParse_Clustal(t *testing.T) {
	input := "CLUSTAL W (1.83) multiple sequence alignment\n" +
		"\n" +
		"seq1      MKV-LA\n" +
		"seq2      MKVQla\n" +
		"          ***  *\n" +
		"\n" +
		"seq1      WY\n" +
		"seq2      W-\n" +
		"\n"

	aln, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, FormatClustal, aln.Format)
	assert.Equal(t, []string{"seq1", "seq2"}, aln.IDs())
	assert.Equal(t, []string{"MKV-LAWY", "MKVQLAW-"}, aln.Rows())
	assert.Equal(t, 8, aln.Width())
	assert.Equal(t, "***  *  ", aln.BlockMask)
	assert.False(t, aln.HasBlocks())
}

func TestParse_ClustalBlockMask(t *testing.T) {
	input := "CLUSTAL W\n" +
		"\n" +
		"a    MAKMAK\n" +
		"b    MAKMAK\n" +
		"        ##\n" +
		"\n" +
		"a    LL\n" +
		"b    LL\n" +
		"     #\n"

	aln, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "   ## # ", aln.BlockMask)
	assert.True(t, aln.HasBlocks())
	assert.True(t, aln.InBlock(3))
	assert.True(t, aln.InBlock(6))
	assert.False(t, aln.InBlock(0))
	assert.False(t, aln.InBlock(100))
}

func TestParse_FASTA(t *testing.T) {
	input := ">seq1 description here\n" +
		"mk-v\n" +
		"LA\n" +
		">seq2\r\n" +
		"MK V\r\n" +
		"QLA\r\n"

	aln, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, FormatFASTA, aln.Format)
	assert.Equal(t, []string{"seq1", "seq2"}, aln.IDs())
	assert.Equal(t, []string{"MK-VLA", "MKVQLA"}, aln.Rows())
	assert.Empty(t, aln.BlockMask)
}

func TestParse_Gblocks(t *testing.T) {
	input := "Gblocks 0.91b Results\n" +
		"\n" +
		"Processed file: test.fasta\n" +
		"\n" +
		"               10        \n" +
		"          =========+\n" +
		"seq1      MAKLAKWYTE\n" +
		"seq2      MAKLAR-YTE\n" +
		"\n" +
		"Gblocks   ####   ###\n" +
		"\n" +
		"Parameters used\n" +
		"seq3      IGNORED\n"

	aln, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, FormatGblocks, aln.Format)
	assert.Equal(t, []string{"seq1", "seq2"}, aln.IDs())
	assert.Equal(t, []string{"MAKLAKWYTE", "MAKLAR-YTE"}, aln.Rows())
	assert.Equal(t, "####   ###", aln.BlockMask)
}

func TestParseFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aln.fa.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">a\nMAK\n>b\nMAR\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	aln, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"MAK", "MAR"}, aln.Rows())
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.aln"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalizeFrameshift(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"no marks", "MAK-L", "MAK-L"},
		{"backslash", `MA\K`, "MA1K"},
		{"slash before residue", "MA/K", "MA-2"},
		{"slash before gaps and residue", "MA/--K", "MA---2"},
		{"slash before stop", "MA/*", "MA-2"},
		{"both marks", `M\A/-K`, "M1A--2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFrameshift(tt.row)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.row))
			assert.NotContains(t, got, `\`)
			assert.NotContains(t, got, "/")
		})
	}
}

func TestAlignment_Normalized(t *testing.T) {
	aln := &Alignment{
		Records:   []Record{{ID: "a", Seq: `M\K`}, {ID: "b", Seq: "M/K"}},
		BlockMask: "###",
	}
	norm := aln.Normalized()

	assert.Equal(t, []string{"M1K", "M-2"}, norm.Rows())
	assert.Equal(t, "###", norm.BlockMask)
	// Original is untouched.
	assert.Equal(t, `M\K`, aln.Records[0].Seq)
}
