package seqgo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/seqgo/align"
	"github.com/hupe1980/seqgo/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresQuery(t *testing.T) {
	_, err := New(sequence.Sequence{})
	assert.ErrorIs(t, err, ErrNoQuery)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mystery_seq")
	require.NoError(t, os.WriteFile(path, []byte("AATTCCCCGG\n"), 0o644))

	checker, err := FromFile(path, WithLogger(NoopLogger()))
	require.NoError(t, err)
	assert.Equal(t, "mystery_seq", checker.Query().ID)
	assert.Equal(t, []byte("AATTCCCCGG"), checker.Query().Seq)
}

func TestFromFileUnreadable(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(path, []byte("ACGT123\n"), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
}

func TestWithScoring(t *testing.T) {
	checker := testChecker(t, WithScoring(align.Scoring{Match: 2, Mismatch: -1, Gap: -2}))
	assert.Equal(t, float64(2), checker.scoring.Match)
}
