package nonempty

import (
	"cmp"
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"

	"github.com/jake-scott/go-nonempty/size"
)

// The operations in this file may discard every element, so they return
// ordinary sequences and values rather than NonEmpty ones.

// Filter returns the elements of ne for which keep returns true.
func Filter[T any](ne NonEmpty[T], keep func(T) bool) iter.Seq[T] {
	return seq.Filter(ne.Seq(), keep)
}

// FilterMap calls f for each element of ne and yields the results for
// which f returns true.
func FilterMap[T, U any](ne NonEmpty[T], f func(T) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range ne.Seq() {
			if u, ok := f(v); ok {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Skip returns the elements of ne after the first n.
func Skip[T any](ne NonEmpty[T], n size.Size) iter.Seq[T] {
	return seq.Skip(ne.Seq(), n.Get())
}

// SkipWhile drops elements of ne while skip returns true and yields the
// rest.
func SkipWhile[T any](ne NonEmpty[T], skip func(T) bool) iter.Seq[T] {
	return seq.SkipWhile(ne.Seq(), skip)
}

// TakeWhile yields elements of ne until take returns false.
func TakeWhile[T any](ne NonEmpty[T], take func(T) bool) iter.Seq[T] {
	return seq.TakeWhile(ne.Seq(), take)
}

// MapWhile yields f(v) for the elements of ne until f returns false.
func MapWhile[T, U any](ne NonEmpty[T], f func(T) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range ne.Seq() {
			u, ok := f(v)
			if !ok || !yield(u) {
				return
			}
		}
	}
}

// Scan is like MapWhile but f also receives a pointer to state, which
// starts as initial and is shared across calls.
func Scan[T, S, U any](ne NonEmpty[T], initial S, f func(state *S, item T) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		state := initial
		for v := range ne.Seq() {
			u, ok := f(&state, v)
			if !ok || !yield(u) {
				return
			}
		}
	}
}

// Fold combines the elements of ne from left to right, starting with
// initial.
func Fold[T, A any](ne NonEmpty[T], initial A, f func(acc A, item T) A) A {
	return seq.Reduce(ne.Seq(), f, initial)
}

// Find returns the first element of ne for which match returns true.
func Find[T any](ne NonEmpty[T], match func(T) bool) optional.Value[T] {
	for v := range ne.Seq() {
		if match(v) {
			return optional.Some(v)
		}
	}

	return optional.None[T]()
}

// FindMap returns the first result of f for which f returns true.
func FindMap[T, U any](ne NonEmpty[T], f func(T) (U, bool)) optional.Value[U] {
	for v := range ne.Seq() {
		if u, ok := f(v); ok {
			return optional.Some(u)
		}
	}

	return optional.None[U]()
}

// Position returns the index of the first element of ne for which match
// returns true.
func Position[T any](ne NonEmpty[T], match func(T) bool) optional.Value[int] {
	i := 0
	for v := range ne.Seq() {
		if match(v) {
			return optional.Some(i)
		}
		i++
	}

	return optional.None[int]()
}

// Nth returns the element of ne at index n, counting from zero.  n is never
// zero; the element at index 0 is always present and is returned by First.
func Nth[T any](ne NonEmpty[T], n size.Size) optional.Value[T] {
	for v := range seq.Skip(ne.Seq(), n.Get()) {
		return optional.Some(v)
	}

	return optional.None[T]()
}

// All reports whether match returns true for every element of ne.
func All[T any](ne NonEmpty[T], match func(T) bool) bool {
	return seq.Every(ne.Seq(), match)
}

// Any reports whether match returns true for at least one element of ne.
func Any[T any](ne NonEmpty[T], match func(T) bool) bool {
	return seq.Exists(ne.Seq(), match)
}

// None reports whether match returns false for every element of ne.
func None[T any](ne NonEmpty[T], match func(T) bool) bool {
	return seq.None(ne.Seq(), match)
}

// ForEach calls f for every element of ne.
func ForEach[T any](ne NonEmpty[T], f func(T)) {
	seq.ForEach(ne.Seq(), f)
}

// Exhaust ranges over ne, discarding the elements.  It is useful for
// sequences evaluated for the side effects of Inspect or Map.
func Exhaust[T any](ne NonEmpty[T]) {
	seq.Flush(ne.Seq())
}

// Partition splits the elements of ne into those for which match returns
// true and those for which it returns false, keeping their order.
func Partition[T any](ne NonEmpty[T], match func(T) bool) (matched, unmatched []T) {
	for v := range ne.Seq() {
		if match(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	}

	return matched, unmatched
}

// Collect returns the elements of ne as a slice, which always has at least
// one element.
func Collect[T any](ne NonEmpty[T]) []T {
	if sz, ok := ne.(Sized); ok {
		return slices.AppendSeq(make([]T, 0, sz.Len().Get()), ne.Seq())
	}

	return seq.Collect(ne.Seq())
}

// CollectWith builds a collection from ne using a builder for ordinary
// sequences, for example:
//
//	s := nonempty.CollectWith(ne, slices.Collect[int])
func CollectWith[T, C any](ne NonEmpty[T], from FromSeqFunc[T, C]) C {
	return from(ne.Seq())
}

// CollectInto extends c with the elements of ne and returns c.
func CollectInto[T any, C Extender[T]](ne NonEmpty[T], c C) C {
	c.Extend(ne.Seq())
	return c
}

// Unzip splits a sequence of pairs into two slices.
func Unzip[A, B any](ne NonEmpty[types.Tuple2[A, B]]) ([]A, []B) {
	var (
		as []A
		bs []B
	)
	for p := range ne.Seq() {
		as = append(as, p.A)
		bs = append(bs, p.B)
	}

	return as, bs
}

// Compare compares the elements of ne and other lexicographically.
func Compare[T cmp.Ordered](ne NonEmpty[T], other iter.Seq[T]) int {
	return CompareFunc(ne, other, cmp.Compare[T])
}

// CompareFunc is like Compare but uses compare on each pair of elements.
func CompareFunc[T, U any](ne NonEmpty[T], other iter.Seq[U], compare func(T, U) int) int {
	next, stop := iter.Pull(other)
	defer stop()

	for v := range ne.Seq() {
		u, ok := next()
		if !ok {
			return 1
		}
		if c := compare(v, u); c != 0 {
			return c
		}
	}

	if _, ok := next(); ok {
		return -1
	}

	return 0
}

// Equal reports whether ne and other yield equal elements in the same
// order.
func Equal[T comparable](ne NonEmpty[T], other iter.Seq[T]) bool {
	return EqualFunc(ne, other, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal but uses eq on each pair of elements.
func EqualFunc[T, U any](ne NonEmpty[T], other iter.Seq[U], eq func(T, U) bool) bool {
	next, stop := iter.Pull(other)
	defer stop()

	for v := range ne.Seq() {
		u, ok := next()
		if !ok || !eq(v, u) {
			return false
		}
	}

	_, ok := next()
	return !ok
}

// Less reports whether ne sorts before other lexicographically.
func Less[T cmp.Ordered](ne NonEmpty[T], other iter.Seq[T]) bool {
	return Compare(ne, other) < 0
}

// LessOrEqual reports whether ne sorts before or equal to other.
func LessOrEqual[T cmp.Ordered](ne NonEmpty[T], other iter.Seq[T]) bool {
	return Compare(ne, other) <= 0
}

// Greater reports whether ne sorts after other lexicographically.
func Greater[T cmp.Ordered](ne NonEmpty[T], other iter.Seq[T]) bool {
	return Compare(ne, other) > 0
}

// GreaterOrEqual reports whether ne sorts after or equal to other.
func GreaterOrEqual[T cmp.Ordered](ne NonEmpty[T], other iter.Seq[T]) bool {
	return Compare(ne, other) >= 0
}

// IsSorted reports whether the elements of ne are in ascending order.
func IsSorted[T cmp.Ordered](ne NonEmpty[T]) bool {
	return IsSortedFunc(ne, cmp.Compare[T])
}

// IsSortedFunc reports whether the elements of ne are in ascending order
// according to compare.
func IsSortedFunc[T any](ne NonEmpty[T], compare func(a, b T) int) bool {
	first := true
	var prev T
	for v := range ne.Seq() {
		if !first && compare(prev, v) > 0 {
			return false
		}
		prev, first = v, false
	}

	return true
}

// IsSortedByKey reports whether the keys of the elements of ne are in
// ascending order.
func IsSortedByKey[T any, K cmp.Ordered](ne NonEmpty[T], key func(T) K) bool {
	return IsSorted[K](Map(ne, key))
}
