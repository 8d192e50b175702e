package nonempty

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// FlatMapIter maps every element of its upstream to a non-empty sequence
// and yields the elements of those sequences in order.
type FlatMapIter[T, U any, J IntoNonEmpty[U]] struct {
	proof
	ne NonEmpty[T]
	f  func(T) J
}

// FlatMap returns the concatenation of f(v) for every element v of ne.
// Every f(v) is non-empty and there is at least one v, so the result is
// non-empty.
//
// Example:
//
//	nonempty.FlatMap[int, int](nonempty.Of(1, 3), func(n int) nonempty.Slice[int] {
//	    return nonempty.Of(n, n+1)
//	})
//	// yields 1, 2, 3, 4
func FlatMap[T, U any, J IntoNonEmpty[U]](ne NonEmpty[T], f func(T) J) FlatMapIter[T, U, J] {
	return FlatMapIter[T, U, J]{ne: ne, f: f}
}

func (fm FlatMapIter[T, U, J]) Seq() iter.Seq[U] {
	return seq.FlatMap(fm.ne.Seq(), func(v T) iter.Seq[U] {
		return fm.f(v).IntoNonEmpty().Seq()
	})
}

func (fm FlatMapIter[T, U, J]) singleUse() bool { return isSingleUse(fm.ne) }

func (fm FlatMapIter[T, U, J]) IntoNonEmpty() NonEmpty[U] {
	return fm
}

// FlattenIter yields the elements of each inner sequence of its upstream
// in order.
type FlattenIter[U any, J IntoNonEmpty[U]] struct {
	proof
	ne NonEmpty[J]
}

// Flatten returns the concatenation of the non-empty sequences yielded by
// ne.
func Flatten[U any, J IntoNonEmpty[U]](ne NonEmpty[J]) FlattenIter[U, J] {
	return FlattenIter[U, J]{ne: ne}
}

func (f FlattenIter[U, J]) Seq() iter.Seq[U] {
	return FlatMap[J, U](f.ne, func(j J) J { return j }).Seq()
}

func (f FlattenIter[U, J]) singleUse() bool { return isSingleUse(f.ne) }

func (f FlattenIter[U, J]) IntoNonEmpty() NonEmpty[U] {
	return f
}
