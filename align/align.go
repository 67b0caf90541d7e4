package align

// Scoring holds the substitution and gap parameters for global alignment.
type Scoring struct {
	Match    float64
	Mismatch float64
	Gap      float64
}

// DefaultScoring mirrors the classic "count matching positions" scheme:
// one point per aligned identical symbol, nothing for mismatches or gaps.
var DefaultScoring = Scoring{Match: 1, Mismatch: 0, Gap: 0}

func (s Scoring) substitution(a, b byte) float64 {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// Global computes the raw global (full-length) alignment score of a and b
// under the given scoring. The score is the maximum over all global
// alignments; gaps at either end are scored like any other gap.
func Global(a, b []byte, scoring Scoring) float64 {
	// Two-row DP: prev[j] is the score of aligning a[:i-1] against b[:j].
	prev := make([]float64, len(b)+1)
	curr := make([]float64, len(b)+1)

	for j := 1; j <= len(b); j++ {
		prev[j] = prev[j-1] + scoring.Gap
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = prev[0] + scoring.Gap
		for j := 1; j <= len(b); j++ {
			diag := prev[j-1] + scoring.substitution(a[i-1], b[j-1])
			up := prev[j] + scoring.Gap
			left := curr[j-1] + scoring.Gap

			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Score computes the global alignment score under DefaultScoring.
func Score(a, b []byte) float64 {
	return Global(a, b, DefaultScoring)
}
