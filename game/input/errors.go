package input

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every parse error in this package
var ErrInvalidInput = errors.New("invalid input")

// NameTooLongError reports a car name above the allowed length
type NameTooLongError struct {
	Name      string
	MaxLength int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("max name length is %d", e.MaxLength)
}

func (e *NameTooLongError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InvalidRoundCountError reports a round count that is not a positive integer
type InvalidRoundCountError struct {
	Input string
	Err   error
}

func (e *InvalidRoundCountError) Error() string {
	return "invalid number format"
}

func (e *InvalidRoundCountError) Unwrap() error {
	return e.Err
}

func (e *InvalidRoundCountError) Is(target error) bool {
	return target == ErrInvalidInput
}
