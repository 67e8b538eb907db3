package parity

import (
	"errors"
	"fmt"
)

var ErrInvalidInputKind = errors.New("invalid input kind")

// InvalidInputError reports the first element of an input that is not an
// integer. It matches ErrInvalidInputKind with errors.Is.
type InvalidInputError struct {
	Index int
	Value any
}

func (err *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: element %d is %T(%v), want integer",
		ErrInvalidInputKind, err.Index, err.Value, err.Value)
}

func (err *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInputKind
}
