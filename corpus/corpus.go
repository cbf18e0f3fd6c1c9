// Package corpus reads labeled documents, one per line. The first
// whitespace-delimited field of a line is the category label and the rest
// are the document's words.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 16 << 20 // 16 MiB

var (
	// ErrEmptyCorpus is returned when a corpus holds no records at all.
	ErrEmptyCorpus = errors.New("corpus has no records")

	errNilReader = errors.New("reader is nil")
)

// Record is one labeled document.
type Record struct {
	Label  string
	Tokens []string
}

// ParseLine splits a corpus line into a record. ok is false for a line with
// no fields.
func ParseLine(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, false
	}
	return Record{Label: fields[0], Tokens: fields[1:]}, true
}

// Read parses every record from r. Blank lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	if r == nil {
		return nil, errNilReader
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []Record
	line := 0
	for scanner.Scan() {
		line++
		if rec, ok := ParseLine(scanner.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus line %d: %w", line+1, err)
	}

	return records, nil
}

// ReadFile opens path and parses its records.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// RequireRecords returns ErrEmptyCorpus when records is empty.
func RequireRecords(path string, records []Record) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyCorpus, path)
	}
	return nil
}

// WordCount returns the number of tokens across all records.
func WordCount(records []Record) int {
	n := 0
	for _, rec := range records {
		n += len(rec.Tokens)
	}
	return n
}
