package bioseq

var dnaPairs = pairTable([2]byte{'A', 'T'}, [2]byte{'G', 'C'})

// DNA is a sequence over {A, T, G, C}.
type DNA struct {
	base
}

// NewDNA creates a DNA sequence, failing with *InvalidAlphabetError if
// symbols contains anything outside {A, T, G, C}.
func NewDNA(id, symbols string) (*DNA, error) {
	b, err := newBase(KindDNA, id, symbols)
	if err != nil {
		return nil, err
	}
	return &DNA{base: b}, nil
}

// Complement returns the base-paired strand (A<->T, G<->C).
func (d *DNA) Complement() string {
	return d.complementWith(dnaPairs)
}

// ReverseComplement returns the complement read 3' to 5'.
func (d *DNA) ReverseComplement() string {
	return d.reverseComplementWith(dnaPairs)
}

// Transcribe returns a new RNA sequence with every T replaced by U.
// The receiver is not modified.
func (d *DNA) Transcribe() *RNA {
	out := make([]byte, len(d.symbols))
	for i, c := range d.symbols {
		if c == 'T' {
			c = 'U'
		}
		out[i] = c
	}
	// Valid by construction: the source holds only A, T, G, C.
	return &RNA{base: base{id: d.id, kind: KindRNA, alphabet: RNAAlphabet, symbols: out}}
}
