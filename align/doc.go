// Package align implements global pairwise sequence alignment scoring.
//
// The scorer is a plain Needleman-Wunsch dynamic program over two symbol
// sequences. Only the score is computed; no traceback or alignment string is
// produced, since ranking only needs the number.
//
// The default Scoring (match=1, mismatch=0, gap=0) makes the score equal to
// the number of matched positions in the best full-length alignment: two
// identical sequences score their length, and sequences with no symbol in
// common score 0.
package align
