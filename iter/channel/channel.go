// Package channel reads a stream of elements from a channel, either as a
// pull iterator or as a sequence that is checked to be non-empty.
package channel

import (
	"context"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"

	"github.com/jake-scott/go-nonempty"
)

// Iterator traverses the elements of type T from a channel, until
// the channel is closed or the context passed to Next is done.
type Iterator[T any] struct {
	ch   <-chan T
	item *T
	err  error
}

// New returns an Iterator that traverses the provided channel until
// the channel is closed or the context expires.
func New[T any](ch <-chan T) *Iterator[T] {
	return &Iterator[T]{
		ch: ch,
	}
}

// Next reads an item from the channel and stores the value, which can be
// retrieved using the Get() method.  Next returns true if an element was
// successfully read from the channel, or false if the channel was closed or
// if the context expired.
//
// If the context expired, Error() will return the result of the context's
// Err() function.
func (i *Iterator[T]) Next(ctx context.Context) bool {
	if i.err != nil {
		return false
	}

	select {
	case item, ok := <-i.ch:
		if !ok {
			// closed and drained
			return false
		}
		i.item = &item
		return true
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	}
}

// Get returns the value stored by the last successful Next method call,
// or the zero value of type T if Next has not been called.
func (i *Iterator[T]) Get() T {
	if i.item == nil {
		var ret T
		return ret
	}

	return *i.item
}

// Error returns the context expiry reason if any from a previous call
// to Next, otherwise it returns nil.
func (i *Iterator[T]) Error() error {
	return i.err
}

// Seq returns the remaining elements of the iterator as an ordinary
// sequence.  Check Error once the sequence has been ranged over.
func (i *Iterator[T]) Seq(ctx context.Context) iter.Seq[T] {
	return nonempty.IteratorSeq[T](ctx, i)
}

// TryNonEmpty waits for the first element of ch.  If one arrives before ch
// is closed, the returned sequence yields it followed by the rest of ch.
// If ch is closed without sending anything the result is empty, and if ctx
// expires first the result is empty and the context's error is returned.
//
// The returned sequence reads from ch as it is ranged over, so it can be
// ranged over once.  Cancelling ctx ends it early.
func TryNonEmpty[T any](ctx context.Context, ch <-chan T) (optional.Value[nonempty.Adapter[T]], error) {
	return nonempty.TryFromIterator[T](ctx, New(ch))
}
