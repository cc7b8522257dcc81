package output

import (
	"bufio"
	"io"

	"github.com/inodb/vibe-seq/internal/bioseq"
)

// FASTAWriter writes sequences as ">id" records.
type FASTAWriter struct {
	w         *bufio.Writer
	lineWidth int
}

// NewFASTAWriter creates a new record writer. Symbols are written on a
// single line unless SetLineWidth is called with a positive width.
func NewFASTAWriter(w io.Writer) *FASTAWriter {
	return &FASTAWriter{w: bufio.NewWriter(w)}
}

// SetLineWidth wraps symbol lines at width characters; 0 disables wrapping.
func (fw *FASTAWriter) SetLineWidth(width int) {
	fw.lineWidth = width
}

// Write writes a sequence. Without wrapping the output is exactly
// s.Render() followed by a newline.
func (fw *FASTAWriter) Write(s bioseq.Sequence) error {
	if fw.lineWidth <= 0 {
		_, err := fw.w.WriteString(s.Render() + "\n")
		return err
	}
	return fw.writeRecord(s.ID(), s.Symbols())
}

// WriteRaw writes an identifier and derived symbol string that is not a
// sequence object, such as a complement.
func (fw *FASTAWriter) WriteRaw(id, symbols string) error {
	return fw.writeRecord(id, symbols)
}

func (fw *FASTAWriter) writeRecord(id, symbols string) error {
	if _, err := fw.w.WriteString(">" + id + "\n"); err != nil {
		return err
	}
	if fw.lineWidth <= 0 || len(symbols) == 0 {
		_, err := fw.w.WriteString(symbols + "\n")
		return err
	}
	for i := 0; i < len(symbols); i += fw.lineWidth {
		end := min(i+fw.lineWidth, len(symbols))
		if _, err := fw.w.WriteString(symbols[i:end] + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (fw *FASTAWriter) Flush() error {
	return fw.w.Flush()
}
