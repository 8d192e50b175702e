// Package size implements a strictly positive count.
//
// A Size cannot hold zero.  Its zero value represents a count of one, so
// an uninitialized Size is still a valid count.  Sizes are used for the
// take, step, skip and repeat counts of non-empty sequences, and as the
// result of counting a non-empty sequence.
package size

import (
	"errors"
	"strconv"
)

// ErrNotPositive is returned by New when the requested count is zero or
// negative.
var ErrNotPositive = errors.New("size: count must be positive")

// Size is a count that is always greater than zero.
type Size struct {
	// stored as n-1 so that the zero value means one
	minusOne uint
}

// One is the smallest Size.
var One = Size{}

// New returns a Size holding n, or ErrNotPositive if n is less than one.
func New(n int) (Size, error) {
	if n < 1 {
		return Size{}, ErrNotPositive
	}

	return Size{minusOne: uint(n - 1)}, nil
}

// MustNew is like New but panics if n is less than one.
func MustNew(n int) Size {
	s, err := New(n)
	if err != nil {
		panic(err)
	}

	return s
}

// NewUnchecked returns a Size holding n without checking it.
//
// The caller must guarantee that n is at least one; the value of a Size
// built from a smaller n is unspecified.
func NewUnchecked(n int) Size {
	return Size{minusOne: uint(n - 1)}
}

// Get returns the count.
func (s Size) Get() int {
	return int(s.minusOne + 1)
}

func (s Size) String() string {
	return strconv.Itoa(s.Get())
}
