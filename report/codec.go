// Package report centralizes the encoding of scored tables.
//
// A Codec turns a reftable.ScoredTable into a persisted artifact. Each codec
// carries a fixed artifact name so callers only choose the target directory
// or store; the raw-score table always lands under the same filename.
package report

import "github.com/hupe1980/seqgo/reftable"

// RawScoresFilename is the fixed artifact name of the raw-score table.
const RawScoresFilename = "similarity_alignment_raw_scores.csv"

// Codec encodes a scored table.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(table reftable.ScoredTable) ([]byte, error)
	Name() string
	Filename() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "csv":
		return CSV{}, true
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
var Default Codec = CSV{}
