package nonempty

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"

	"github.com/jake-scott/go-nonempty/size"
)

// OnceIter yields a single element.
type OnceIter[T any] struct {
	proof
	v T
}

// Once returns a NonEmpty sequence that yields v exactly once.
func Once[T any](v T) OnceIter[T] {
	return OnceIter[T]{v: v}
}

func (o OnceIter[T]) Seq() iter.Seq[T] {
	return seq.Of(o.v)
}

// Backward is the same as Seq for a single element.
func (o OnceIter[T]) Backward() iter.Seq[T] {
	return o.Seq()
}

// Len is always one.
func (o OnceIter[T]) Len() size.Size {
	return size.One
}

func (o OnceIter[T]) IntoNonEmpty() NonEmpty[T] {
	return o
}

// OnceWithIter yields the result of a single function call.
type OnceWithIter[T any] struct {
	proof
	f func() T
}

// OnceWith returns a NonEmpty sequence that yields f() exactly once.  f is
// not called until the sequence is ranged over, and is called again on
// every traversal.
func OnceWith[T any](f func() T) OnceWithIter[T] {
	return OnceWithIter[T]{f: f}
}

func (o OnceWithIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(o.f())
	}
}

func (o OnceWithIter[T]) Backward() iter.Seq[T] {
	return o.Seq()
}

func (o OnceWithIter[T]) Len() size.Size {
	return size.One
}

func (o OnceWithIter[T]) IntoNonEmpty() NonEmpty[T] {
	return o
}

// RepeatIter yields the same element forever.
type RepeatIter[T any] struct {
	proof
	v T
}

// Repeat returns an infinite NonEmpty sequence of v.
func Repeat[T any](v T) RepeatIter[T] {
	return RepeatIter[T]{v: v}
}

func (r RepeatIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(r.v) {
		}
	}
}

func (r RepeatIter[T]) IntoNonEmpty() NonEmpty[T] {
	return r
}

// RepeatWithIter yields the results of calling a function forever.
type RepeatWithIter[T any] struct {
	proof
	f func() T
}

// RepeatWith returns an infinite NonEmpty sequence of f(), calling f once
// per element.
func RepeatWith[T any](f func() T) RepeatWithIter[T] {
	return RepeatWithIter[T]{f: f}
}

func (r RepeatWithIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(r.f()) {
		}
	}
}

func (r RepeatWithIter[T]) IntoNonEmpty() NonEmpty[T] {
	return r
}

// RepeatNIter yields the same element a positive number of times.
type RepeatNIter[T any] struct {
	proof
	v T
	n size.Size
}

// RepeatN returns a NonEmpty sequence that yields v exactly n times.
func RepeatN[T any](v T, n size.Size) RepeatNIter[T] {
	return RepeatNIter[T]{v: v, n: n}
}

func (r RepeatNIter[T]) Seq() iter.Seq[T] {
	return seq.Repeat(r.v, r.n.Get())
}

func (r RepeatNIter[T]) Backward() iter.Seq[T] {
	return r.Seq()
}

func (r RepeatNIter[T]) Len() size.Size {
	return r.n
}

func (r RepeatNIter[T]) IntoNonEmpty() NonEmpty[T] {
	return r
}

// SuccessorsIter yields an initial element followed by elements computed
// from their predecessor.
type SuccessorsIter[T any] struct {
	proof
	first T
	next  func(T) (T, bool)
}

// Successors returns a NonEmpty sequence that starts with first and
// continues with next applied to the previous element, until next returns
// false.  first is always yielded, so the sequence is non-empty even if
// next never succeeds.
//
// Example:
//
//	powers := nonempty.Successors(1, func(n int) (int, bool) {
//	    return n * 10, n < 1000
//	})
//	// yields 1, 10, 100, 1000
func Successors[T any](first T, next func(T) (T, bool)) SuccessorsIter[T] {
	return SuccessorsIter[T]{first: first, next: next}
}

func (s SuccessorsIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		v := s.first
		for yield(v) {
			var ok bool
			if v, ok = s.next(v); !ok {
				return
			}
		}
	}
}

func (s SuccessorsIter[T]) IntoNonEmpty() NonEmpty[T] {
	return s
}
