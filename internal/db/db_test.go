package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseAbundance(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int64
	}{
		{"semicolon annotation", "read1;size=5", 5},
		{"space annotation", "read1 size=12", 12},
		{"trailing semicolon", "read1;size=8;", 8},
		{"no annotation", "read1", 0},
		{"annotation embedded in id", "read1_size=9x", 0},
		{"leading annotation", "size=3", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseAbundance([]byte(tt.header)))
		})
	}
}

func TestRead_fasta(t *testing.T) {
	path := writeTemp(t, "reads.fasta", ">a;size=2\nACGT\n>b;size=3\nGGTT\n>c\nTTAA\n")

	d, err := Read(path)
	require.NoError(t, err)

	require.Equal(t, 3, d.Size())
	require.False(t, d.IsFastq())
	require.Equal(t, int64(2), d.Abundance(0))
	require.Equal(t, int64(3), d.Abundance(1))
	require.Equal(t, int64(0), d.Abundance(2))
	require.Equal(t, []byte("ACGT"), d.Record(0).Seq.Seq)
}

func TestRead_fastq(t *testing.T) {
	path := writeTemp(t, "reads.fastq", "@a;size=4\nACGT\n+\nIIII\n@b\nGG\n+\nHH\n")

	d, err := Read(path)
	require.NoError(t, err)

	require.Equal(t, 2, d.Size())
	require.True(t, d.IsFastq())
	require.Equal(t, int64(4), d.Abundance(0))
	require.Equal(t, []byte("IIII"), d.Record(0).Seq.Qual)
}

func TestRead_missingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
}
