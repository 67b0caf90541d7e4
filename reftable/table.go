package reftable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/seqgo/sequence"
)

// ErrNoSequenceColumn is returned when a CSV header lacks a sequence column.
var ErrNoSequenceColumn = errors.New("reference table has no sequence column")

// ErrMissingSequence indicates a reference row without sequence data.
type ErrMissingSequence struct {
	Name string
}

func (e *ErrMissingSequence) Error() string {
	return fmt.Sprintf("reference %q has no sequence data", e.Name)
}

// Row is one reference entry: an identifier and its sequence.
type Row struct {
	Name string
	Seq  []byte
}

// Table is an unordered collection of reference rows.
type Table []Row

// ReadCSV parses a reference table from CSV data. The first header column is
// the identifier; a column named "sequence" (case-insensitive) holds the
// sequence. Rows with missing or invalid sequence data fail immediately.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("reference table is missing a header row")
	}
	if err != nil {
		return nil, err
	}

	seqCol := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "sequence") {
			seqCol = i
			break
		}
	}
	if seqCol < 0 {
		return nil, ErrNoSequenceColumn
	}

	var table Table
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		name := strings.TrimSpace(record[0])
		raw := strings.TrimSpace(record[seqCol])
		if raw == "" {
			return nil, &ErrMissingSequence{Name: name}
		}
		seq, err := sequence.Normalize([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", name, err)
		}
		table = append(table, Row{Name: name, Seq: seq})
	}
	return table, nil
}

// ReadFASTA parses a reference table from FASTA data; each record becomes a
// row with the header's first word as its name.
func ReadFASTA(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var table Table
	for _, block := range strings.Split(string(data), ">") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.SplitN(block, "\n", 2)
		name := lines[0]
		if i := strings.IndexAny(name, " \t"); i >= 0 {
			name = name[:i]
		}
		if len(lines) < 2 {
			return nil, &ErrMissingSequence{Name: name}
		}
		raw := strings.ReplaceAll(lines[1], "\n", "")
		raw = strings.ReplaceAll(raw, "\r", "")
		seq, err := sequence.Normalize([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", name, err)
		}
		table = append(table, Row{Name: name, Seq: seq})
	}
	return table, nil
}
