package nonempty

import "iter"

// Adapter holds an arbitrary sequence that the caller asserted to be
// non-empty.
type Adapter[T any] struct {
	proof
	seq  iter.Seq[T]
	once bool
}

// Unchecked wraps seq as a NonEmpty sequence without checking it.
//
// The caller must guarantee that ranging over seq yields at least one
// element.  If it does not, the guaranteed operations of this package
// (First, Max, Reduce, ...) panic with ErrContractViolation and the
// results of adapters built on top of the value are unspecified.
//
// Prefer TryFrom or FromSlice unless the guarantee is known by other means.
func Unchecked[T any](seq iter.Seq[T]) Adapter[T] {
	return Adapter[T]{seq: seq}
}

func (a Adapter[T]) Seq() iter.Seq[T] {
	return a.seq
}

func (a Adapter[T]) singleUse() bool {
	return a.once
}

func (a Adapter[T]) IntoNonEmpty() NonEmpty[T] {
	return a
}
