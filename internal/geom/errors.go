package geom

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrFormat         = errors.New("malformed coordinate list")
	ErrParse          = errors.New("non-numeric token")
	ErrLengthMismatch = errors.New("coordinate length mismatch")
)

// FormatError reports a token list that cannot be paired into points.
type FormatError struct {
	Tokens int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed coordinate list: %d tokens cannot be paired into points", e.Tokens)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ParseError reports a token that is not a floating-point number.
type ParseError struct {
	Token string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("non-numeric token %q at position %d", e.Token, e.Index)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// LengthMismatchError reports x and y sequences of different lengths.
type LengthMismatchError struct {
	Xs, Ys int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("coordinate length mismatch: %d xs, %d ys", e.Xs, e.Ys)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }
