package bioseq

// Protein is a sequence of single-letter amino acid codes. It is the last
// stage of the transcription pipeline.
type Protein struct {
	base
}

// NewProtein creates a protein sequence, failing with *InvalidAlphabetError
// if symbols contains anything outside ProteinAlphabet.
func NewProtein(id, symbols string) (*Protein, error) {
	b, err := newBase(KindProtein, id, symbols)
	if err != nil {
		return nil, err
	}
	return &Protein{base: b}, nil
}
