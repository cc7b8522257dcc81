// Package fasta parses flat-text sequence records of the form ">id\nsymbols".
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vibe-seq/internal/bioseq"
)

// Record is a single parsed entry. Symbols from multi-line entries are
// concatenated with whitespace removed.
type Record struct {
	ID      string
	Symbols string
	Line    int // line number of the header, 1-based
}

// Reader reads records from an io.Reader.
type Reader struct {
	scanner   *bufio.Scanner
	line      int
	pending   string
	hasHeader bool
	uppercase bool
	done      bool
}

// NewReader creates a FASTA reader.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	// Long single-line sequences are common.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)
	return &Reader{scanner: scanner}
}

// SetUppercase configures whether symbols are upper-cased while reading.
func (r *Reader) SetUppercase(upper bool) {
	r.uppercase = upper
}

// LineNumber returns the last line read.
func (r *Reader) LineNumber() int {
	return r.line
}

// Next returns the next record. Returns nil, nil when there are no more
// records. Symbol lines before the first header are an error.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, nil
	}

	var rec *Record
	if r.hasHeader {
		rec = &Record{ID: r.pending, Line: r.line}
		r.hasHeader = false
	}

	var seq strings.Builder
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()

		if strings.HasPrefix(line, ">") {
			id := strings.TrimRight(line[1:], "\r")
			if rec == nil {
				rec = &Record{ID: id, Line: r.line}
				continue
			}
			r.pending = id
			r.hasHeader = true
			rec.Symbols = r.normalize(seq.String())
			return rec, nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if rec == nil {
			return nil, fmt.Errorf("line %d: sequence data before first header", r.line)
		}
		seq.WriteString(strings.Join(strings.Fields(trimmed), ""))
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan FASTA: %w", err)
	}

	r.done = true
	if rec == nil {
		return nil, nil
	}
	rec.Symbols = r.normalize(seq.String())
	return rec, nil
}

func (r *Reader) normalize(s string) string {
	if r.uppercase {
		return strings.ToUpper(s)
	}
	return s
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, rec)
	}
}

// Sequence builds a validated sequence of the given kind from the record.
// Validation errors are wrapped with the record's header line.
func (rec *Record) Sequence(kind bioseq.Kind) (bioseq.Sequence, error) {
	s, err := bioseq.New(kind, rec.ID, rec.Symbols)
	if err != nil {
		return nil, fmt.Errorf("record %q (line %d): %w", rec.ID, rec.Line, err)
	}
	return s, nil
}
