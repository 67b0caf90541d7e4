package seqgo

import (
	"github.com/hupe1980/seqgo/align"
	"github.com/hupe1980/seqgo/report"
	"github.com/hupe1980/seqgo/sequence"
)

// Checker compares one query sequence against reference tables.
//
// A Checker is immutable after construction and safe for concurrent use.
type Checker struct {
	query   sequence.Sequence
	scoring align.Scoring
	codec   report.Codec
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Checker for the given query sequence.
func New(query sequence.Sequence, optFns ...Option) (*Checker, error) {
	if query.Len() == 0 {
		return nil, ErrNoQuery
	}

	o := applyOptions(optFns)
	return &Checker{
		query:   query,
		scoring: o.scoring,
		codec:   o.codec,
		logger:  o.logger.WithQuery(query.ID),
		metrics: o.metrics,
	}, nil
}

// FromFile loads the query sequence from path and creates a Checker for it.
// An unreadable or malformed source fails immediately.
func FromFile(path string, optFns ...Option) (*Checker, error) {
	query, err := sequence.FromFile(path)
	if err != nil {
		return nil, err
	}
	return New(query, optFns...)
}

// Query returns the checker's query sequence.
func (c *Checker) Query() sequence.Sequence {
	return c.query
}
