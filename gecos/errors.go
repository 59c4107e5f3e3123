package gecos

import (
	"errors"
	"fmt"
)

// ErrForbiddenCharacter is wrapped by every ValidationError and ParseError.
var ErrForbiddenCharacter = errors.New("forbidden character")

// ValidationError reports a sub-field value that cannot be stored.
// Pos is a byte offset into the rejected text.
type ValidationError struct {
	Char rune
	Pos  int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("gecos field: %v %q at offset %d", ErrForbiddenCharacter, e.Char, e.Pos)
}

func (e *ValidationError) Unwrap() error { return ErrForbiddenCharacter }

// ParseError reports a raw GECOS string that would corrupt the enclosing
// passwd record. Pos is a byte offset into the raw string.
type ParseError struct {
	Char rune
	Pos  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gecos: %v %q at offset %d", ErrForbiddenCharacter, e.Char, e.Pos)
}

func (e *ParseError) Unwrap() error { return ErrForbiddenCharacter }
