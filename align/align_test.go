package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"Identical", "AATTCCCCGG", "AATTCCCCGG", 10},
		{"Disjoint", "AATTCCCCGG", "XXXXXXXXXX", 0},
		{"SingleSubstitution", "AATTCCCCGG", "GATTCCCCGG", 9},
		{"Empty", "", "", 0},
		{"EmptyVsSequence", "", "ACGT", 0},
		{"SingleMatch", "A", "A", 1},
		{"SingleMismatch", "A", "C", 0},
		{"Shifted", "ACGT", "CGTA", 3},
		{"DifferentLengths", "ACGTACGT", "ACGT", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score([]byte(tt.a), []byte(tt.b))
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	a := []byte("AATTCCCCGG")
	b := []byte("GGGGGGGGCC")
	assert.Equal(t, Score(a, b), Score(b, a))
}

func TestScoreOrdering(t *testing.T) {
	// A reference with fewer substitutions must score strictly higher.
	query := []byte("AATTCCCCGG")
	near := Score(query, []byte("GATTCCCCGG"))
	far := Score(query, []byte("GGGGGGGGCC"))

	assert.Greater(t, near, far)
	assert.Less(t, near, float64(len(query)))
}

func TestGlobalCustomScoring(t *testing.T) {
	// Penalizing gaps and mismatches still rewards the identical pair most.
	scoring := Scoring{Match: 2, Mismatch: -1, Gap: -2}

	same := Global([]byte("ACGT"), []byte("ACGT"), scoring)
	sub := Global([]byte("ACGT"), []byte("AGGT"), scoring)
	gap := Global([]byte("ACGT"), []byte("ACG"), scoring)

	assert.InDelta(t, 8, same, 1e-9)
	assert.InDelta(t, 5, sub, 1e-9)
	assert.InDelta(t, 4, gap, 1e-9)
}

func BenchmarkScore(b *testing.B) {
	q := make([]byte, 1000)
	r := make([]byte, 1000)
	for i := range q {
		q[i] = "ACGT"[i%4]
		r[i] = "ACGT"[(i+1)%4]
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Score(q, r)
	}
}
