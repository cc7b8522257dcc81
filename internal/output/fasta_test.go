package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-seq/internal/bioseq"
)

func TestFASTAWriter_Write(t *testing.T) {
	d, err := bioseq.NewDNA("seq1", "ATGCATGCAT")
	require.NoError(t, err)

	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"single line", 0, ">seq1\nATGCATGCAT\n"},
		{"wrapped", 4, ">seq1\nATGC\nATGC\nAT\n"},
		{"exact width", 10, ">seq1\nATGCATGCAT\n"},
		{"wide", 80, ">seq1\nATGCATGCAT\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewFASTAWriter(&buf)
			w.SetLineWidth(tt.width)

			require.NoError(t, w.Write(d))
			require.NoError(t, w.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFASTAWriter_MatchesRender(t *testing.T) {
	p, err := bioseq.NewProtein("prot", "MKV")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewFASTAWriter(&buf)
	require.NoError(t, w.Write(p))
	require.NoError(t, w.Flush())
	assert.Equal(t, p.Render()+"\n", buf.String())
}

func TestFASTAWriter_WriteRaw(t *testing.T) {
	var buf bytes.Buffer
	w := NewFASTAWriter(&buf)
	w.SetLineWidth(2)

	require.NoError(t, w.WriteRaw("s1 complement", "TAAG"))
	require.NoError(t, w.WriteRaw("empty", ""))
	require.NoError(t, w.Flush())
	assert.Equal(t, ">s1 complement\nTA\nAG\n>empty\n\n", buf.String())
}
