package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input holds nothing to work on.
	ErrEmptyInput = errors.New("empty input")
	// ErrMalformed is returned for input that cannot be parsed.
	ErrMalformed = errors.New("malformed input")
	// ErrNoSolution is returned when well-formed input has no answer.
	ErrNoSolution = errors.New("no solution")
)

// Malformed returns an error wrapping ErrMalformed.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// InputError records the line of input that failed to parse.
type InputError struct {
	File string
	Line int // 1-based
	Text string
	Err  error
}

func (e *InputError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%s:%d: %q: %v", e.File, e.Line, e.Text, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
