// Package kmer builds k-mer set sketches of nucleotide sequences.
//
// A sketch is a roaring bitmap of every 2-bit packed k-mer in a sequence
// (k <= 16, so a k-mer fits a uint32). Windows containing a symbol outside
// ACGT are skipped. Sketches support cheap containment estimates, which the
// checker uses as a prescreen: shortlist likely matches before running the
// full alignment over every reference.
package kmer

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// MaxK is the largest supported k-mer size: 16 bases at 2 bits each.
const MaxK = 16

var codes = [256]uint32{}

func init() {
	for i := range codes {
		codes[i] = 4 // sentinel: not a nucleotide
	}
	codes['A'], codes['C'], codes['G'], codes['T'] = 0, 1, 2, 3
}

// Sketch returns the set of 2-bit packed k-mers of seq as a roaring bitmap.
// Windows with non-ACGT symbols are skipped; a sequence shorter than k
// yields an empty sketch.
func Sketch(seq []byte, k int) (*roaring.Bitmap, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("k must be in [1,%d], got %d", MaxK, k)
	}

	bm := roaring.New()
	// For k == MaxK the shift width is 32, which yields 0-1 == all ones.
	mask := uint32(1)<<(2*uint(k)) - 1

	var (
		kmer  uint32
		valid int // consecutive nucleotide count ending at current position
	)
	for _, b := range seq {
		code := codes[b]
		if code > 3 {
			valid = 0
			kmer = 0
			continue
		}
		kmer = (kmer<<2 | code) & mask
		valid++
		if valid >= k {
			bm.Add(kmer)
		}
	}
	return bm, nil
}

// Containment estimates how much of the query sketch appears in the
// reference sketch: |Q intersect R| / |Q|, in [0,1]. An empty query sketch has
// containment 0 everywhere.
func Containment(query, ref *roaring.Bitmap) float64 {
	qCard := query.GetCardinality()
	if qCard == 0 {
		return 0
	}
	return float64(query.AndCardinality(ref)) / float64(qCard)
}
