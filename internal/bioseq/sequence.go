package bioseq

import (
	"bytes"
	"fmt"
	"strings"
)

// Kind identifies a sequence variant.
type Kind int

const (
	KindDNA Kind = iota
	KindRNA
	KindProtein
)

func (k Kind) String() string {
	switch k {
	case KindDNA:
		return "DNA"
	case KindRNA:
		return "RNA"
	case KindProtein:
		return "Protein"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Alphabet returns the alphabet fixed for the kind, or nil for an unknown kind.
func (k Kind) Alphabet() *Alphabet {
	switch k {
	case KindDNA:
		return DNAAlphabet
	case KindRNA:
		return RNAAlphabet
	case KindProtein:
		return ProteinAlphabet
	default:
		return nil
	}
}

// ParseKind parses a kind name such as "dna", "RNA" or "protein".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dna":
		return KindDNA, nil
	case "rna":
		return KindRNA, nil
	case "protein", "aa":
		return KindProtein, nil
	default:
		return 0, fmt.Errorf("unknown sequence kind %q", s)
	}
}

// Sequence is the contract shared by every sequence variant.
type Sequence interface {
	ID() string
	Kind() Kind
	Alphabet() *Alphabet
	Len() int
	Symbols() string
	At(i int) byte
	Render() string
	Mutate(pos int, c byte) error
	FindMotif(motif string) int
	FindAllMotifs(motif string) []int
}

// Complementer is implemented by the nucleotide variants.
type Complementer interface {
	Sequence
	Complement() string
	ReverseComplement() string
}

// base holds the state shared by all variants. The symbols buffer is owned
// exclusively by the sequence and only changes through Mutate.
type base struct {
	id       string
	kind     Kind
	alphabet *Alphabet
	symbols  []byte
}

func newBase(kind Kind, id, symbols string) (base, error) {
	alphabet := kind.Alphabet()
	if alphabet == nil {
		return base{}, fmt.Errorf("unknown sequence kind %d", int(kind))
	}
	if i := alphabet.Validate(symbols); i >= 0 {
		return base{}, &InvalidAlphabetError{Kind: kind, Symbol: symbols[i], Position: i}
	}
	return base{
		id:       id,
		kind:     kind,
		alphabet: alphabet,
		symbols:  []byte(symbols),
	}, nil
}

// ID returns the sequence identifier.
func (b *base) ID() string { return b.id }

// Kind returns the sequence variant.
func (b *base) Kind() Kind { return b.kind }

// Alphabet returns the alphabet the sequence is validated against.
func (b *base) Alphabet() *Alphabet { return b.alphabet }

// Len returns the number of symbols.
func (b *base) Len() int { return len(b.symbols) }

// Symbols returns a copy of the current symbols.
func (b *base) Symbols() string { return string(b.symbols) }

// At returns the symbol at index i. It panics if i is out of range,
// like a slice index.
func (b *base) At(i int) byte { return b.symbols[i] }

// Render returns the record form ">id\nsymbols".
func (b *base) Render() string {
	var sb strings.Builder
	sb.Grow(len(b.id) + len(b.symbols) + 2)
	sb.WriteByte('>')
	sb.WriteString(b.id)
	sb.WriteByte('\n')
	sb.Write(b.symbols)
	return sb.String()
}

// String implements fmt.Stringer using Render.
func (b *base) String() string { return b.Render() }

// Mutate replaces the symbol at pos with c. Both checks run before the
// buffer is touched, so a failed call leaves the sequence unchanged.
func (b *base) Mutate(pos int, c byte) error {
	if pos < 0 || pos >= len(b.symbols) {
		return &PositionOutOfRangeError{Position: pos, Length: len(b.symbols)}
	}
	if !b.alphabet.Contains(c) {
		return &InvalidCharacterError{Kind: b.kind, Symbol: c}
	}
	b.symbols[pos] = c
	return nil
}

// FindMotif returns the index of the first occurrence of motif, or -1.
// The search is textual; motif is not checked against the alphabet.
func (b *base) FindMotif(motif string) int {
	return bytes.Index(b.symbols, []byte(motif))
}

// FindAllMotifs returns the start index of every occurrence of motif,
// including overlapping ones. An empty motif matches at every index from
// 0 through Len().
func (b *base) FindAllMotifs(motif string) []int {
	needle := []byte(motif)
	var hits []int
	for i := 0; i <= len(b.symbols); {
		idx := bytes.Index(b.symbols[i:], needle)
		if idx < 0 {
			break
		}
		hits = append(hits, i+idx)
		i += idx + 1
	}
	return hits
}

// complementWith maps each symbol through pairs, passing unmapped symbols
// through unchanged.
func (b *base) complementWith(pairs *[256]byte) string {
	out := make([]byte, len(b.symbols))
	for i, c := range b.symbols {
		if m := pairs[c]; m != 0 {
			out[i] = m
		} else {
			out[i] = c
		}
	}
	return string(out)
}

func (b *base) reverseComplementWith(pairs *[256]byte) string {
	n := len(b.symbols)
	out := make([]byte, n)
	for i, c := range b.symbols {
		m := pairs[c]
		if m == 0 {
			m = c
		}
		out[n-1-i] = m
	}
	return string(out)
}

func pairTable(pairs ...[2]byte) *[256]byte {
	var t [256]byte
	for _, p := range pairs {
		t[p[0]] = p[1]
		t[p[1]] = p[0]
	}
	return &t
}

// New constructs a sequence of the given kind.
func New(kind Kind, id, symbols string) (Sequence, error) {
	switch kind {
	case KindDNA:
		d, err := NewDNA(id, symbols)
		if err != nil {
			return nil, err
		}
		return d, nil
	case KindRNA:
		r, err := NewRNA(id, symbols)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindProtein:
		p, err := NewProtein(id, symbols)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown sequence kind %d", int(kind))
	}
}
