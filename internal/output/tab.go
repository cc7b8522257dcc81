// Package output provides writers for rendered sequences and batch results.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-seq/internal/batch"
)

// TabWriter writes batch step results in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Step",
			"Op",
			"Target",
			"Outcome",
			"Value",
			"Error",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single step result.
func (tw *TabWriter) Write(r batch.Result) error {
	errMsg := "-"
	if r.Err != nil {
		errMsg = r.Err.Error()
	}

	values := []string{
		strconv.Itoa(r.Index),
		orDash(r.Op),
		orDash(r.Target),
		r.Outcome(),
		orDash(r.Value),
		errMsg,
	}
	for i, v := range values {
		values[i] = escape(v)
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var escaper = strings.NewReplacer("\\", `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// escape keeps each result on a single line; rendered records contain a newline.
func escape(s string) string {
	return escaper.Replace(s)
}
