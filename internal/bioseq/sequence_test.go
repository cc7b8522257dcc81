package bioseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValid checks that every stored symbol belongs to the sequence alphabet.
func assertValid(t *testing.T, s Sequence) {
	t.Helper()
	assert.Equal(t, -1, s.Alphabet().Validate(s.Symbols()), "symbols %q outside %s alphabet", s.Symbols(), s.Kind())
}

func TestNew_Valid(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		symbols string
	}{
		{"dna", KindDNA, "ATGC"},
		{"rna", KindRNA, "AUGC"},
		{"protein", KindProtein, "MKWVTFISLLX"},
		{"empty dna", KindDNA, ""},
		{"empty protein", KindProtein, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.kind, "seq1", tt.symbols)
			require.NoError(t, err)
			assert.Equal(t, len(tt.symbols), s.Len())
			assert.Equal(t, tt.symbols, s.Symbols())
			assert.Equal(t, "seq1", s.ID())
			assert.Equal(t, tt.kind, s.Kind())
			assertValid(t, s)
		})
	}
}

func TestNew_InvalidAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		symbols  string
		symbol   byte
		position int
	}{
		{"uracil in dna", KindDNA, "ATGU", 'U', 3},
		{"thymine in rna", KindRNA, "AUTG", 'T', 2},
		{"lowercase dna", KindDNA, "atgc", 'a', 0},
		{"N in dna", KindDNA, "ACNT", 'N', 2},
		{"B in protein", KindProtein, "MKB", 'B', 2},
		{"J in protein", KindProtein, "J", 'J', 0},
		{"O in protein", KindProtein, "AO", 'O', 1},
		{"U in protein", KindProtein, "U", 'U', 0},
		{"Z in protein", KindProtein, "Z", 'Z', 0},
		{"stop in protein", KindProtein, "MK*", '*', 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.kind, "bad", tt.symbols)
			require.Error(t, err)
			assert.True(t, s == nil, "failed construction must yield a nil Sequence, got %#v", s)

			var alphaErr *InvalidAlphabetError
			require.ErrorAs(t, err, &alphaErr)
			assert.Equal(t, tt.kind, alphaErr.Kind)
			assert.Equal(t, tt.symbol, alphaErr.Symbol)
			assert.Equal(t, tt.position, alphaErr.Position)
			assert.Equal(t, KindInvalidAlphabet, ErrorKind(err))
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Kind(42), "x", "A")
	require.Error(t, err)
	assert.Equal(t, KindOther, ErrorKind(err))
}

// A nil *DNA wrapped in Sequence compares non-nil and panics on use.
func TestNew_FailureIsUntypedNil(t *testing.T) {
	for _, kind := range []Kind{KindDNA, KindRNA, KindProtein} {
		t.Run(kind.String(), func(t *testing.T) {
			s, err := New(kind, "x", "ATGU*")
			require.Error(t, err)
			if s != nil {
				t.Fatalf("New returned non-nil %T on failure", s)
			}
		})
	}
}

func TestRender(t *testing.T) {
	d, err := NewDNA("chr1 test", "ATGC")
	require.NoError(t, err)
	assert.Equal(t, ">chr1 test\nATGC", d.Render())
	assert.Equal(t, d.Render(), d.String())

	// Identifier is never checked against the alphabet.
	p, err := NewProtein("", "")
	require.NoError(t, err)
	assert.Equal(t, ">\n", p.Render())
}

func TestMutate(t *testing.T) {
	d, err := NewDNA("s", "ATGC")
	require.NoError(t, err)

	require.NoError(t, d.Mutate(2, 'T'))
	assert.Equal(t, "ATTC", d.Symbols())
	assert.Equal(t, 4, d.Len())
	assertValid(t, d)

	require.NoError(t, d.Mutate(0, 'G'))
	assert.Equal(t, "GTTC", d.Symbols())
	require.NoError(t, d.Mutate(3, 'C'))
	assert.Equal(t, "GTTC", d.Symbols())
}

func TestMutate_AllOrNothing(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		c    byte
		kind string
	}{
		{"one past end", 4, 'A', KindPositionOutOfRange},
		{"far past end", 100, 'A', KindPositionOutOfRange},
		{"negative", -1, 'A', KindPositionOutOfRange},
		{"invalid char", 1, 'U', KindInvalidCharacter},
		{"lowercase char", 1, 'a', KindInvalidCharacter},
		{"out of range and invalid", 9, 'X', KindPositionOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDNA("s", "ATGC")
			require.NoError(t, err)

			err = d.Mutate(tt.pos, tt.c)
			require.Error(t, err)
			assert.Equal(t, tt.kind, ErrorKind(err))
			assert.Equal(t, "ATGC", d.Symbols(), "failed mutate must not change symbols")
		})
	}
}

func TestMutate_ErrorDetails(t *testing.T) {
	r, err := NewRNA("r", "AUG")
	require.NoError(t, err)

	err = r.Mutate(3, 'A')
	var rangeErr *PositionOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 3, rangeErr.Position)
	assert.Equal(t, 3, rangeErr.Length)

	err = r.Mutate(0, 'T')
	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, KindRNA, charErr.Kind)
	assert.Equal(t, byte('T'), charErr.Symbol)
}

func TestMutate_Empty(t *testing.T) {
	d, err := NewDNA("empty", "")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	err = d.Mutate(0, 'A')
	assert.Equal(t, KindPositionOutOfRange, ErrorKind(err))
	assert.Equal(t, -1, d.FindMotif("A"))
	assert.Equal(t, 0, d.FindMotif(""))
	assert.Equal(t, "", d.Complement())
	assert.Equal(t, "", d.Transcribe().Symbols())
}

func TestFindMotif(t *testing.T) {
	d, err := NewDNA("s", "ATTCATTC")
	require.NoError(t, err)

	tests := []struct {
		motif string
		want  int
	}{
		{"TT", 1},
		{"ATTC", 0},
		{"CAT", 3},
		{"GGG", -1},
		{"", 0},
		{"ATTCATTCA", -1},
		{"U", -1}, // outside the alphabet, still searched textually
		{"xyz", -1},
	}

	for _, tt := range tests {
		t.Run(tt.motif, func(t *testing.T) {
			got := d.FindMotif(tt.motif)
			if got != tt.want {
				t.Errorf("FindMotif(%q) = %d, want %d", tt.motif, got, tt.want)
			}
			// Searching twice yields the same answer and leaves symbols alone.
			assert.Equal(t, got, d.FindMotif(tt.motif))
			assert.Equal(t, "ATTCATTC", d.Symbols())
		})
	}
}

func TestFindAllMotifs(t *testing.T) {
	d, err := NewDNA("s", "AAAA")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, d.FindAllMotifs("AA"))
	assert.Equal(t, []int{0, 1, 2, 3}, d.FindAllMotifs("A"))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, d.FindAllMotifs(""))
	assert.Nil(t, d.FindAllMotifs("G"))
}

// TestScenario_MutateSearchComplement walks the canonical edit/search flow.
func TestScenario_MutateSearchComplement(t *testing.T) {
	d, err := NewDNA("demo", "ATGC")
	require.NoError(t, err)

	require.NoError(t, d.Mutate(2, 'T'))
	assert.Equal(t, "ATTC", d.Symbols())
	assert.Equal(t, 1, d.FindMotif("TT"))
	assert.Equal(t, -1, d.FindMotif("GGG"))
	assert.Equal(t, "TAAG", d.Complement())
}

func TestAt(t *testing.T) {
	p, err := NewProtein("p", "MKV")
	require.NoError(t, err)
	assert.Equal(t, byte('M'), p.At(0))
	assert.Equal(t, byte('V'), p.At(2))
	assert.Panics(t, func() { p.At(3) })
}

func TestSymbols_ReturnsCopy(t *testing.T) {
	d, err := NewDNA("s", "ATGC")
	require.NoError(t, err)

	got := []byte(d.Symbols())
	got[0] = 'X'
	assert.Equal(t, "ATGC", d.Symbols())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"dna", KindDNA, false},
		{"DNA", KindDNA, false},
		{" rna ", KindRNA, false},
		{"Protein", KindProtein, false},
		{"aa", KindProtein, false},
		{"peptide", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "DNA", KindDNA.String())
	assert.Equal(t, "RNA", KindRNA.String())
	assert.Equal(t, "Protein", KindProtein.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, KindOther, ErrorKind(ErrTerminal))
	wrapped := &PositionOutOfRangeError{Position: 5, Length: 2}
	assert.Equal(t, KindPositionOutOfRange, ErrorKind(wrapErr(wrapped)))
}

type wrappedErr struct{ err error }

func (w wrappedErr) Error() string { return "wrapped: " + w.err.Error() }
func (w wrappedErr) Unwrap() error { return w.err }

func wrapErr(err error) error { return wrappedErr{err} }
