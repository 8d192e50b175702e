package nonempty

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

// ChainIter yields the elements of a non-empty sequence followed by the
// elements of an ordinary one.
type ChainIter[T any] struct {
	proof
	ne   NonEmpty[T]
	more iter.Seq[T]
}

// Chain returns ne followed by the elements of more.  more may be empty or
// nil; the result is non-empty because ne is.
func Chain[T any](ne NonEmpty[T], more iter.Seq[T]) ChainIter[T] {
	return ChainIter[T]{ne: ne, more: more}
}

func (c ChainIter[T]) Seq() iter.Seq[T] {
	return seq.Concat(c.ne.Seq(), c.more)
}

func (c ChainIter[T]) singleUse() bool { return isSingleUse(c.ne) }

func (c ChainIter[T]) IntoNonEmpty() NonEmpty[T] {
	return c
}

// ZipIter pairs up the elements of two non-empty sequences.
type ZipIter[A, B any] struct {
	proof
	a NonEmpty[A]
	b NonEmpty[B]
}

// Zip returns pairs of corresponding elements from a and b.  The result
// stops as soon as either side is exhausted, so it has as many elements as
// the shorter side.  Both sides are non-empty, so there is always at least
// one pair.
func Zip[A, B any](a NonEmpty[A], b NonEmpty[B]) ZipIter[A, B] {
	return ZipIter[A, B]{a: a, b: b}
}

func (z ZipIter[A, B]) Seq() iter.Seq[types.Tuple2[A, B]] {
	return func(yield func(types.Tuple2[A, B]) bool) {
		for a, b := range z.Seq2() {
			if !yield(types.NewTuple2(a, b)) {
				return
			}
		}
	}
}

// Seq2 returns the pairs as an iter.Seq2.
func (z ZipIter[A, B]) Seq2() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(z.b.Seq())
		defer stop()

		for a := range z.a.Seq() {
			b, ok := next()
			if !ok || !yield(a, b) {
				return
			}
		}
	}
}

func (z ZipIter[A, B]) singleUse() bool { return isSingleUse(z.a) || isSingleUse(z.b) }

func (z ZipIter[A, B]) IntoNonEmpty() NonEmpty[types.Tuple2[A, B]] {
	return z
}
