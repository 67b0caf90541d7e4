// Package reftable models the reference database: named candidate sequences
// loaded from CSV or FASTA, and the scored table derived from them by ranking.
//
// A Table is read-only input. Scoring produces a new ScoredTable with exactly
// one added column (the raw alignment score); the input table is never
// mutated.
package reftable
