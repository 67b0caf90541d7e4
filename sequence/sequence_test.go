package sequence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Sequence
		wantErr  bool
	}{
		{
			name:     "Bare",
			input:    "AATTCCCCGG\n",
			expected: Sequence{Seq: []byte("AATTCCCCGG")},
		},
		{
			name:     "BareMultiline",
			input:    "AATT\nCCCC\nGG\n",
			expected: Sequence{Seq: []byte("AATTCCCCGG")},
		},
		{
			name:     "Lowercase",
			input:    "aattccccgg",
			expected: Sequence{Seq: []byte("AATTCCCCGG")},
		},
		{
			name:     "FASTA",
			input:    ">mystery breed sample\nAATTCC\nCCGG\n",
			expected: Sequence{ID: "mystery", Seq: []byte("AATTCCCCGG")},
		},
		{
			name:    "FASTAMultiRecord",
			input:   ">a\nACGT\n>b\nACGT\n",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "WhitespaceOnly",
			input:   "\n\n  \n",
			wantErr: true,
		},
		{
			name:    "InvalidSymbol",
			input:   "ACG7T",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInvalidSymbolDetail(t *testing.T) {
	_, err := Parse(strings.NewReader("AC-GT"))
	require.Error(t, err)

	var inv *ErrInvalidSymbol
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, byte('-'), inv.Symbol)
	assert.Equal(t, 2, inv.Pos)
}

func TestParseEmptyIsErrEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "query")
	require.NoError(t, os.WriteFile(path, []byte("AATTCCCCGG\n"), 0o644))

	seq, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "query", seq.ID)
	assert.Equal(t, []byte("AATTCCCCGG"), seq.Seq)
	assert.Equal(t, 10, seq.Len())
}

func TestFromFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.fa.gz")

	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(">gz sample\nAATTCCCCGG\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	seq, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gz", seq.ID)
	assert.Equal(t, []byte("AATTCCCCGG"), seq.Seq)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
