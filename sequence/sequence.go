package sequence

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrEmpty is returned when a sequence source contains no symbols.
var ErrEmpty = errors.New("sequence source is empty")

// ErrInvalidSymbol indicates a symbol outside the allowed alphabet.
type ErrInvalidSymbol struct {
	Symbol byte
	Pos    int
}

func (e *ErrInvalidSymbol) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Pos)
}

// Sequence is a single named symbol sequence.
type Sequence struct {
	ID  string
	Seq []byte
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.Seq) }

func (s Sequence) String() string { return string(s.Seq) }

// FromFile loads a query sequence from path. Bare sequence files and
// single-record FASTA files are accepted; compressed inputs are handled
// transparently. If the file carries no header, the ID falls back to the
// file's base name.
func FromFile(path string) (Sequence, error) {
	rc, err := openReader(path)
	if err != nil {
		return Sequence{}, fmt.Errorf("open sequence source %s: %w", path, err)
	}
	defer rc.Close()

	seq, err := Parse(rc)
	if err != nil {
		return Sequence{}, fmt.Errorf("load sequence source %s: %w", path, err)
	}
	if seq.ID == "" {
		seq.ID = filepath.Base(path)
	}
	return seq, nil
}

// Parse reads a single sequence from r. A leading '>' switches to FASTA
// parsing; a second FASTA record is an error, since a query is exactly one
// sequence. Symbols are upper-cased and validated.
func Parse(r io.Reader) (Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		id    string
		buf   bytes.Buffer
		first = true
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if !first {
				return Sequence{}, errors.New("query source holds more than one FASTA record")
			}
			id = headerID(line)
			first = false
			continue
		}
		first = false
		buf.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return Sequence{}, err
	}
	seq, err := Normalize(buf.Bytes())
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{ID: id, Seq: seq}, nil
}

// Normalize upper-cases seq, trims surrounding whitespace and validates that
// every symbol is an ASCII letter. Empty input is ErrEmpty.
func Normalize(seq []byte) ([]byte, error) {
	out := bytes.ToUpper(bytes.TrimSpace(seq))
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	if err := validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// headerID extracts the identifier from a FASTA header line: the first
// whitespace-delimited word after '>'.
func headerID(line string) string {
	header := strings.TrimPrefix(line, ">")
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		header = header[:i]
	}
	return header
}

func validate(seq []byte) error {
	for i, b := range seq {
		if b < 'A' || b > 'Z' {
			return &ErrInvalidSymbol{Symbol: b, Pos: i}
		}
	}
	return nil
}
