package nonempty

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// Peeked holds an element that has already been taken from a sequence,
// together with the rest of that sequence.  Having the element in hand is
// what makes it non-empty.
type Peeked[T any] struct {
	proof
	item T
	rest iter.Seq[T]
}

// Peek takes the first element of ne so that it can be inspected before
// ranging over the whole sequence.
//
// Like Consume, the rest of ne continues the same pull; it can be ranged
// over once and holds resources until it has been.
func Peek[T any](ne NonEmpty[T]) Peeked[T] {
	item, rest := Consume(ne)

	return NewPeeked(item, rest)
}

// NewPeeked returns a Peeked sequence that yields item followed by the
// elements of rest.  rest may be nil or empty.
func NewPeeked[T any](item T, rest iter.Seq[T]) Peeked[T] {
	if rest == nil {
		rest = seq.Empty[T]()
	}

	return Peeked[T]{item: item, rest: rest}
}

// Peek returns the element that was taken.
func (p Peeked[T]) Peek() T {
	return p.item
}

// PeekPtr returns a pointer to the element that was taken, so that it can
// be modified before the sequence is ranged over.
func (p *Peeked[T]) PeekPtr() *T {
	return &p.item
}

// Get returns the taken element and the remaining elements separately.
func (p Peeked[T]) Get() (T, iter.Seq[T]) {
	return p.item, p.rest
}

func (p Peeked[T]) Seq() iter.Seq[T] {
	return seq.Prepend(p.rest, p.item)
}

// The rest of a Peeked sequence usually continues a pull.
func (p Peeked[T]) singleUse() bool { return true }

func (p Peeked[T]) IntoNonEmpty() NonEmpty[T] {
	return p
}
