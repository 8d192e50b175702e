package nonempty

import (
	"context"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

// Iterator is a generic interface for one-directional traversal through
// a collection or stream of items that may fail, such as the channel and
// scanner iterators in the iter sub-packages.
type Iterator[T any] interface {
	// Next traverses the iterator to the next element
	// Returns true if the iterator advanced, or false if there are no more
	// elements or if an error occured (see Error() below)
	Next(ctx context.Context) bool

	// Get returns current value referred to by the iterator
	Get() T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// IteratorSeq returns an ordinary sequence over the remaining elements of it.
// The sequence stops early if Next fails; the reason is available from
// it.Error() afterwards.
func IteratorSeq[T any](ctx context.Context, it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next(ctx) {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// TryFromIterator advances it once.  If that yields an element, the
// returned NonEmpty sequence yields it followed by the remaining elements
// of it.  If it is exhausted or fails, an empty optional is returned along
// with it.Error().
//
// Errors that happen while the returned sequence is ranged over end the
// sequence early and are reported by it.Error().
func TryFromIterator[T any](ctx context.Context, it Iterator[T]) (optional.Value[Adapter[T]], error) {
	if !it.Next(ctx) {
		return optional.None[Adapter[T]](), it.Error()
	}

	head := it.Get()
	rest := IteratorSeq(ctx, it)

	return optional.Some(Adapter[T]{once: true, seq: func(yield func(T) bool) {
		if !yield(head) {
			return
		}
		for v := range rest {
			if !yield(v) {
				return
			}
		}
	}}), nil
}
