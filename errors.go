package seqgo

import "errors"

var (
	// ErrEmptyReferences is returned when a ranking is attempted against an
	// empty reference table. An empty table cannot produce a meaningful
	// ranking, so the checker fails fast instead of returning an empty
	// scored table.
	ErrEmptyReferences = errors.New("reference table is empty")

	// ErrNoQuery is returned when a checker is constructed without a query
	// sequence.
	ErrNoQuery = errors.New("query sequence is empty")
)
