package report

import (
	"encoding/json"

	"github.com/hupe1980/seqgo/reftable"
)

// JSON encodes the scored table as a JSON array of row objects.
//
// For the delimited artifact the original tooling expects, use CSV; JSON
// exists for consumers that want to post-process scores programmatically.
type JSON struct{}

type jsonRow struct {
	Name              string  `json:"name"`
	Sequence          string  `json:"sequence"`
	RawAlignmentScore float64 `json:"raw_alignment_score"`
}

// Encode writes the table as JSON bytes.
func (JSON) Encode(table reftable.ScoredTable) ([]byte, error) {
	rows := make([]jsonRow, len(table))
	for i, row := range table {
		rows[i] = jsonRow{
			Name:              row.Name,
			Sequence:          string(row.Seq),
			RawAlignmentScore: row.RawScore,
		}
	}
	return json.Marshal(rows)
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Filename returns the fixed artifact name for JSON score tables.
func (JSON) Filename() string { return "similarity_alignment_raw_scores.json" }
