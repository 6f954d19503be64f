package dice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter matches expressions containing characters outside
	// digits, d/D, +, - and whitespace.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidDiceType matches dice markers not followed by a positive side count.
	ErrInvalidDiceType = errors.New("invalid dice type")
	// ErrMalformedTerm matches terms that are not a valid constant or dice term.
	ErrMalformedTerm = errors.New("malformed term")
	// ErrTooManyDice matches expressions rolling more dice than the configured limit.
	ErrTooManyDice = errors.New("too many dice")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	InvalidCharacter ErrorKind = iota
	InvalidDiceType
	MalformedTerm
	TooManyDice
)

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidCharacter:
		return ErrInvalidCharacter
	case InvalidDiceType:
		return ErrInvalidDiceType
	case TooManyDice:
		return ErrTooManyDice
	default:
		return ErrMalformedTerm
	}
}

// ParseError reports why an expression was rejected.
type ParseError struct {
	Kind  ErrorKind
	Input string // offending substring
	Err   error  // optional underlying cause
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Input)
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(kind ErrorKind, input string) *ParseError {
	return &ParseError{Kind: kind, Input: input}
}
