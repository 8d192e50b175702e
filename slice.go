package nonempty

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"

	"github.com/jake-scott/go-nonempty/size"
)

// Slice is a slice that holds at least one element.
//
// Slice is Bidirectional and Sized.  The zero value is not a valid Slice;
// use Of or FromSlice.
type Slice[T any] struct {
	proof
	s []T
}

// Of returns a Slice holding first followed by rest.
func Of[T any](first T, rest ...T) Slice[T] {
	s := make([]T, 0, len(rest)+1)
	s = append(s, first)
	s = append(s, rest...)

	return Slice[T]{s: s}
}

// FromSlice returns a Slice backed by s, or an empty optional if s has no
// elements.  s is not copied.
func FromSlice[T any](s []T) optional.Value[Slice[T]] {
	if len(s) == 0 {
		return optional.None[Slice[T]]()
	}

	return optional.Some(Slice[T]{s: s})
}

func (s Slice[T]) Seq() iter.Seq[T] {
	return seq.FromSlice(s.s)
}

func (s Slice[T]) IntoNonEmpty() NonEmpty[T] {
	return s
}

// Backward yields the elements from last to first.
func (s Slice[T]) Backward() iter.Seq[T] {
	return seq.FromSliceReversed(s.s)
}

// Len returns the number of elements.
func (s Slice[T]) Len() size.Size {
	return size.NewUnchecked(len(s.s))
}

// Head returns the first element.
func (s Slice[T]) Head() T {
	return s.s[0]
}

// Tail returns the elements after the first, which may be empty.
func (s Slice[T]) Tail() []T {
	return s.s[1:]
}

// Values returns a copy of the elements.
func (s Slice[T]) Values() []T {
	return slices.Clone(s.s)
}
