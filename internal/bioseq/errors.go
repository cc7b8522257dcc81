package bioseq

import (
	"errors"
	"fmt"
)

// InvalidAlphabetError is returned when a sequence is constructed from
// symbols outside its alphabet.
type InvalidAlphabetError struct {
	Kind     Kind
	Symbol   byte
	Position int
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf("invalid %s symbol %q at position %d", e.Kind, e.Symbol, e.Position)
}

// PositionOutOfRangeError is returned by Mutate for an index outside
// [0, length).
type PositionOutOfRangeError struct {
	Position int
	Length   int
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range for sequence of length %d", e.Position, e.Length)
}

// InvalidCharacterError is returned by Mutate when the replacement symbol is
// outside the alphabet.
type InvalidCharacterError struct {
	Kind   Kind
	Symbol byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid %s symbol %q", e.Kind, e.Symbol)
}

// ErrTerminal is returned when advancing a sequence that has no next stage.
var ErrTerminal = errors.New("sequence kind has no transcription step")

// TranscriptionError is returned by TranscribeTo when the target stage
// cannot be reached from the source.
type TranscriptionError struct {
	From Kind
	To   Kind
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("cannot transcribe %s to %s", e.From, e.To)
}

// Error kind names reported by ErrorKind.
const (
	KindInvalidAlphabet    = "InvalidAlphabetError"
	KindPositionOutOfRange = "PositionOutOfRangeError"
	KindInvalidCharacter   = "InvalidCharacterError"
	KindOther              = "Other"
)

// ErrorKind returns a stable name for the validation error wrapped in err.
// It returns "" for a nil error and KindOther for anything unrecognised.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var (
		alphabetErr *InvalidAlphabetError
		rangeErr    *PositionOutOfRangeError
		charErr     *InvalidCharacterError
	)
	switch {
	case errors.As(err, &alphabetErr):
		return KindInvalidAlphabet
	case errors.As(err, &rangeErr):
		return KindPositionOutOfRange
	case errors.As(err, &charErr):
		return KindInvalidCharacter
	default:
		return KindOther
	}
}
