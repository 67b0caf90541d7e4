package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/hupe1980/seqgo/reftable"
)

// CSV encodes the scored table as a delimited file with a header row:
// the input columns plus the raw_alignment_score column, in table order.
type CSV struct{}

// Encode writes the table as CSV bytes.
func (CSV) Encode(table reftable.ScoredTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"name", "sequence", "raw_alignment_score"}); err != nil {
		return nil, err
	}
	for _, row := range table {
		record := []string{
			row.Name,
			string(row.Seq),
			strconv.FormatFloat(row.RawScore, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Name returns the unique name of the codec ("csv").
func (CSV) Name() string { return "csv" }

// Filename returns the fixed artifact name for CSV score tables.
func (CSV) Filename() string { return RawScoresFilename }
