package bioseq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDNAComplement(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"simple", "ATGC", "TACG"},
		{"mutated", "ATTC", "TAAG"},
		{"poly-A", "AAAA", "TTTT"},
		{"GC rich", "GCGC", "CGCG"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDNA("s", tt.seq)
			require.NoError(t, err)

			got := d.Complement()
			if got != tt.want {
				t.Errorf("Complement(%q) = %q, want %q", tt.seq, got, tt.want)
			}
			assert.Equal(t, tt.seq, d.Symbols(), "complement must not mutate the source")

			// A<->T and G<->C are involutions.
			back, err := NewDNA("s", got)
			require.NoError(t, err)
			assert.Equal(t, tt.seq, back.Complement())
		})
	}
}

func TestDNAReverseComplement(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"ATGC", "GCAT"},
		{"A", "T"},
		{"ATAT", "ATAT"},
		{"GGT", "ACC"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			d, err := NewDNA("s", tt.seq)
			require.NoError(t, err)
			if got := d.ReverseComplement(); got != tt.want {
				t.Errorf("ReverseComplement(%q) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}

func TestDNATranscribe(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"ATGC", "AUGC"},
		{"TTTT", "UUUU"},
		{"GCGC", "GCGC"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			d, err := NewDNA("gene1", tt.seq)
			require.NoError(t, err)

			r := d.Transcribe()
			assert.Equal(t, tt.want, r.Symbols())
			assert.Equal(t, strings.ReplaceAll(tt.seq, "T", "U"), r.Symbols())
			assert.Equal(t, "gene1", r.ID())
			assert.Equal(t, KindRNA, r.Kind())
			assert.Equal(t, tt.seq, d.Symbols())
			assertValid(t, r)
		})
	}
}

func TestDNATranscribe_Independent(t *testing.T) {
	d, err := NewDNA("s", "ATGC")
	require.NoError(t, err)
	r := d.Transcribe()

	require.NoError(t, r.Mutate(0, 'U'))
	require.NoError(t, d.Mutate(1, 'A'))
	assert.Equal(t, "UUGC", r.Symbols())
	assert.Equal(t, "AAGC", d.Symbols())
}

func TestDNAComplementer(t *testing.T) {
	d, err := NewDNA("s", "AT")
	require.NoError(t, err)

	var s Sequence = d
	c, ok := s.(Complementer)
	require.True(t, ok)
	assert.Equal(t, "TA", c.Complement())
}
