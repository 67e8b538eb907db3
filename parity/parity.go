// Package parity selects integers from a sequence by their parity.
package parity

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/maxpoletaev/parity/internal/generic"
)

// Predicate names the parity a selection keeps.
type Predicate uint8

const (
	Even Predicate = iota
	Odd
)

func (p Predicate) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Predicate(%d)", uint8(p))
	}
}

// ParsePredicate is the inverse of Predicate.String, case-insensitive.
func ParsePredicate(s string) (Predicate, error) {
	switch strings.ToLower(s) {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	default:
		return 0, fmt.Errorf("unknown predicate %q", s)
	}
}

func IsEven[T constraints.Integer](v T) bool {
	return v%2 == 0
}

func IsOdd[T constraints.Integer](v T) bool {
	return v%2 != 0
}

// Evens returns the even elements of s in their original order. Duplicates are
// kept and s is never modified. The result is a fresh, non-nil slice.
func Evens[T constraints.Integer](s []T) []T {
	return generic.Filter(s, IsEven[T])
}

// Odds returns the odd elements of s in their original order.
func Odds[T constraints.Integer](s []T) []T {
	return generic.Filter(s, IsOdd[T])
}

// Select dispatches to Evens or Odds. Unknown predicates select nothing.
func Select[T constraints.Integer](p Predicate, s []T) []T {
	switch p {
	case Even:
		return Evens(s)
	case Odd:
		return Odds(s)
	default:
		return []T{}
	}
}
