package bioseq

import "fmt"

// Advance performs one transcription step: DNA to RNA or RNA to protein.
// It returns ErrTerminal for a protein.
func Advance(s Sequence) (Sequence, error) {
	switch v := s.(type) {
	case *DNA:
		return v.Transcribe(), nil
	case *RNA:
		return v.Transcribe(), nil
	case *Protein:
		return nil, ErrTerminal
	default:
		return nil, fmt.Errorf("advance %T: %w", s, ErrTerminal)
	}
}

// TranscribeTo chains transcription steps until the sequence reaches the
// target kind. Asking for the source kind returns s itself; asking for an
// earlier stage returns *TranscriptionError.
func TranscribeTo(s Sequence, target Kind) (Sequence, error) {
	if target.Alphabet() == nil || target < s.Kind() {
		return nil, &TranscriptionError{From: s.Kind(), To: target}
	}
	cur := s
	for cur.Kind() < target {
		next, err := Advance(cur)
		if err != nil {
			return nil, fmt.Errorf("transcribe %s to %s: %w", s.Kind(), target, err)
		}
		cur = next
	}
	return cur, nil
}
