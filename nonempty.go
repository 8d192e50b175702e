// Package nonempty provides lazy sequences that are known to yield at
// least one element.
//
// A NonEmpty value wraps an ordinary iter.Seq and carries the guarantee
// that ranging over it produces at least one element before finishing.
// That guarantee lets operations such as First, Max, Min, Last, Reduce and
// Count return their result directly instead of a value/ok pair.
//
// Non-empty values are built in three ways:
//
//   - from values that are non-empty by construction (Of, Once, Repeat,
//     Successors, ...)
//   - by checking an arbitrary sequence at runtime (TryFrom, FromSlice,
//     TryFromIterator)
//   - by transforming another non-empty value with an adapter that keeps
//     the guarantee (Map, Chain, Zip, Take, StepBy, Cycle, ...)
//
// Unchecked is the only function that asserts non-emptiness without
// deriving or checking it.
//
// Operations whose result may be empty (Filter, Skip, TakeWhile, ...)
// return a plain iter.Seq.  All values are lazy: nothing is computed until
// the sequence is ranged over.
//
// Example:
//
//	words := nonempty.Of("pear", "fig", "banana")
//	longest := nonempty.MaxByKey(words, func(s string) int { return len(s) })
package nonempty

import (
	"errors"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"

	"github.com/jake-scott/go-nonempty/size"
)

// ErrContractViolation is the panic value raised when a NonEmpty value
// turns out to yield no elements.  That can only happen if Unchecked was
// called on a sequence that is empty.
var ErrContractViolation = errors.New("nonempty: contract violated, sequence yielded no elements")

// NonEmpty is a lazy sequence that yields at least one element.
//
// The interface is sealed: only types in this package implement it.  Code
// outside the package obtains NonEmpty values from the constructors and
// adapters of this package, or from Unchecked.
type NonEmpty[T any] interface {
	IntoNonEmpty[T]

	// Seq returns the ordinary sequence, dropping the non-empty guarantee
	// from the type while keeping the data.
	Seq() iter.Seq[T]

	nonEmpty()
}

// IntoNonEmpty is implemented by types that can produce a NonEmpty
// sequence.  Every NonEmpty implements it by returning itself.
type IntoNonEmpty[T any] interface {
	IntoNonEmpty() NonEmpty[T]
}

// Into converts v to a NonEmpty sequence.
func Into[T any](v IntoNonEmpty[T]) NonEmpty[T] {
	return v.IntoNonEmpty()
}

// Bidirectional is a non-empty sequence that can also be traversed from
// the back.  It is required by Reverse.
type Bidirectional[T any] interface {
	NonEmpty[T]

	// Backward returns the elements in reverse order.
	Backward() iter.Seq[T]
}

// singleUse is implemented by sequences that can be ranged over only once,
// and by adapters that pass that on from their upstream.
type singleUse interface {
	singleUse() bool
}

func isSingleUse(v any) bool {
	s, ok := v.(singleUse)
	return ok && s.singleUse()
}

// Sized is implemented by non-empty sequences that know their length
// without being traversed.
type Sized interface {
	Len() size.Size
}

// proof is embedded by every implementation of NonEmpty
type proof struct{}

func (proof) nonEmpty() {}

// violated panics with ErrContractViolation.  Guaranteed operations call
// it when a NonEmpty produced nothing.
func violated[T any]() T {
	panic(ErrContractViolation)
}

// must unwraps the result of an ordinary operation that cannot be absent
// for a non-empty input
func must[T any](o optional.Value[T]) T {
	v, err := o.ShouldGet()
	if err != nil {
		return violated[T]()
	}

	return v
}
