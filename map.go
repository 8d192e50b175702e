package nonempty

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

// The adapters in this file map every upstream element to exactly one
// element, so a non-empty upstream gives a non-empty result.

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(s string) string {
//	    return strings.SplitN(s, "@", 2)[1]
//	}
type MapFunc[T any, M any] func(T) M

// MapIter yields f(v) for every element v of its upstream.
type MapIter[T, M any] struct {
	proof
	ne NonEmpty[T]
	f  MapFunc[T, M]
}

// Map returns a NonEmpty sequence of f applied to each element of ne.  f
// is called lazily, once per element, each time the result is ranged over.
func Map[T, M any](ne NonEmpty[T], f MapFunc[T, M]) MapIter[T, M] {
	return MapIter[T, M]{ne: ne, f: f}
}

func (m MapIter[T, M]) Seq() iter.Seq[M] {
	return seq.Map(m.ne.Seq(), m.f)
}

func (m MapIter[T, M]) singleUse() bool { return isSingleUse(m.ne) }

func (m MapIter[T, M]) IntoNonEmpty() NonEmpty[M] {
	return m
}

// Cloner is implemented by types that can make an independent copy of
// themselves.
type Cloner[T any] interface {
	Clone() T
}

// ClonedIter yields a clone of every element of its upstream.
type ClonedIter[T Cloner[T]] struct {
	proof
	ne NonEmpty[T]
}

// Cloned returns a NonEmpty sequence of v.Clone() for every element v of
// ne.
func Cloned[T Cloner[T]](ne NonEmpty[T]) ClonedIter[T] {
	return ClonedIter[T]{ne: ne}
}

func (c ClonedIter[T]) Seq() iter.Seq[T] {
	return seq.Map(c.ne.Seq(), func(v T) T { return v.Clone() })
}

func (c ClonedIter[T]) singleUse() bool { return isSingleUse(c.ne) }

func (c ClonedIter[T]) IntoNonEmpty() NonEmpty[T] {
	return c
}

// CopiedIter dereferences every element of its upstream.
type CopiedIter[T any] struct {
	proof
	ne NonEmpty[*T]
}

// Copied returns a NonEmpty sequence of the values pointed to by the
// elements of ne.  The elements must not be nil.
func Copied[T any](ne NonEmpty[*T]) CopiedIter[T] {
	return CopiedIter[T]{ne: ne}
}

func (c CopiedIter[T]) Seq() iter.Seq[T] {
	return seq.Map(c.ne.Seq(), func(p *T) T { return *p })
}

func (c CopiedIter[T]) singleUse() bool { return isSingleUse(c.ne) }

func (c CopiedIter[T]) IntoNonEmpty() NonEmpty[T] {
	return c
}

// EnumerateIter pairs every element of its upstream with its index.
type EnumerateIter[T any] struct {
	proof
	ne NonEmpty[T]
}

// Enumerate returns a NonEmpty sequence of (index, element) pairs, with
// indexes starting at zero.
func Enumerate[T any](ne NonEmpty[T]) EnumerateIter[T] {
	return EnumerateIter[T]{ne: ne}
}

func (e EnumerateIter[T]) Seq() iter.Seq[types.Tuple2[int, T]] {
	return func(yield func(types.Tuple2[int, T]) bool) {
		for i, v := range e.Seq2() {
			if !yield(types.NewTuple2(i, v)) {
				return
			}
		}
	}
}

// Seq2 returns the pairs as an iter.Seq2, for use in two-value range
// loops.
func (e EnumerateIter[T]) Seq2() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range e.ne.Seq() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

func (e EnumerateIter[T]) singleUse() bool { return isSingleUse(e.ne) }

func (e EnumerateIter[T]) IntoNonEmpty() NonEmpty[types.Tuple2[int, T]] {
	return e
}

// InspectIter calls a function on every element of its upstream before
// passing it on.
type InspectIter[T any] struct {
	proof
	ne NonEmpty[T]
	f  func(T)
}

// Inspect returns a NonEmpty sequence that yields the elements of ne
// unchanged, calling f on each one first.
func Inspect[T any](ne NonEmpty[T], f func(T)) InspectIter[T] {
	return InspectIter[T]{ne: ne, f: f}
}

func (i InspectIter[T]) Seq() iter.Seq[T] {
	return seq.Tap(i.ne.Seq(), i.f)
}

func (i InspectIter[T]) singleUse() bool { return isSingleUse(i.ne) }

func (i InspectIter[T]) IntoNonEmpty() NonEmpty[T] {
	return i
}
