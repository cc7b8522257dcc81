package bioseq

var rnaPairs = pairTable([2]byte{'A', 'U'}, [2]byte{'G', 'C'})

const (
	// CodonLength is the number of symbols consumed per amino acid.
	CodonLength = 3

	// PlaceholderAminoAcid is emitted for every codon by RNA.Transcribe.
	PlaceholderAminoAcid = 'A'
)

// RNA is a sequence over {A, U, G, C}.
type RNA struct {
	base
}

// NewRNA creates an RNA sequence, failing with *InvalidAlphabetError if
// symbols contains anything outside {A, U, G, C}.
func NewRNA(id, symbols string) (*RNA, error) {
	b, err := newBase(KindRNA, id, symbols)
	if err != nil {
		return nil, err
	}
	return &RNA{base: b}, nil
}

// Complement returns the base-paired strand (A<->U, G<->C).
func (r *RNA) Complement() string {
	return r.complementWith(rnaPairs)
}

// ReverseComplement returns the complement read 3' to 5'.
func (r *RNA) ReverseComplement() string {
	return r.reverseComplementWith(rnaPairs)
}

// Codons splits the symbols into consecutive groups of CodonLength.
// A trailing partial group is kept.
func (r *RNA) Codons() []string {
	codons := make([]string, 0, (len(r.symbols)+CodonLength-1)/CodonLength)
	for i := 0; i < len(r.symbols); i += CodonLength {
		end := min(i+CodonLength, len(r.symbols))
		codons = append(codons, string(r.symbols[i:end]))
	}
	return codons
}

// Transcribe returns a new protein sequence with one residue per codon,
// including a trailing partial codon. Every codon maps to
// PlaceholderAminoAcid; there is no genetic code table.
func (r *RNA) Transcribe() *Protein {
	codons := r.Codons()
	out := make([]byte, len(codons))
	for i := range codons {
		out[i] = PlaceholderAminoAcid
	}
	return &Protein{base: base{id: r.id, kind: KindProtein, alphabet: ProteinAlphabet, symbols: out}}
}
