package seqgo

import (
	"log/slog"

	"github.com/hupe1980/seqgo/align"
	"github.com/hupe1980/seqgo/report"
)

type options struct {
	scoring align.Scoring
	codec   report.Codec
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Checker behavior.
type Option func(*options)

// WithScoring configures the alignment scoring scheme.
//
// The default (match=1, mismatch=0, gap=0) preserves the raw-score contract:
// identical sequences score their length, disjoint alphabets score 0.
func WithScoring(scoring align.Scoring) Option {
	return func(o *options) {
		o.scoring = scoring
	}
}

// WithReportCodec configures the codec used to encode the scored table.
//
// If nil is passed, report.Default (CSV) is used.
func WithReportCodec(c report.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = report.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for operations.
// Pass NoopLogger() to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		scoring: align.DefaultScoring,
		codec:   report.Default,
		// The best-match report goes to the logger, so logging defaults to
		// on at Info level rather than to a noop.
		logger:  NewTextLogger(slog.LevelInfo),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
