// Package bioseq models DNA, RNA and protein sequences as validated,
// mutable symbol buffers.
package bioseq

import "strings"

// Alphabet is the fixed set of symbols a sequence kind may contain.
type Alphabet struct {
	name    string
	members [256]bool
}

// NewAlphabet creates an alphabet from the given symbols.
func NewAlphabet(name, symbols string) *Alphabet {
	a := &Alphabet{name: name}
	for i := 0; i < len(symbols); i++ {
		a.members[symbols[i]] = true
	}
	return a
}

// Standard alphabets.
var (
	DNAAlphabet = NewAlphabet("DNA", "ATGC")
	RNAAlphabet = NewAlphabet("RNA", "AUGC")

	// ProteinAlphabet is every uppercase Latin letter except B, J, O, U and Z.
	ProteinAlphabet = NewAlphabet("Protein", "ACDEFGHIKLMNPQRSTVWXY")
)

// Name returns the alphabet's display name.
func (a *Alphabet) Name() string {
	return a.name
}

// Contains reports whether c is a member of the alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.members[c]
}

// Validate returns the index of the first symbol in s outside the alphabet,
// or -1 if every symbol is a member.
func (a *Alphabet) Validate(s string) int {
	for i := 0; i < len(s); i++ {
		if !a.members[s[i]] {
			return i
		}
	}
	return -1
}

// String returns the member symbols in byte order.
func (a *Alphabet) String() string {
	var sb strings.Builder
	for c := 0; c < len(a.members); c++ {
		if a.members[c] {
			sb.WriteByte(byte(c))
		}
	}
	return sb.String()
}
