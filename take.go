package nonempty

import (
	"iter"

	"github.com/jake-scott/go-nonempty/size"
)

// TakeIter yields at most a positive number of elements from its upstream.
type TakeIter[T any] struct {
	proof
	ne NonEmpty[T]
	n  size.Size
}

// Take returns the first n elements of ne, or all of them if ne is
// shorter.  n is positive, so the first element is always included.
//
// Take stops pulling from ne as soon as the n-th element has been yielded.
func Take[T any](ne NonEmpty[T], n size.Size) TakeIter[T] {
	return TakeIter[T]{ne: ne, n: n}
}

func (t TakeIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		remaining := t.n.Get()
		for v := range t.ne.Seq() {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

func (t TakeIter[T]) singleUse() bool { return isSingleUse(t.ne) }

func (t TakeIter[T]) IntoNonEmpty() NonEmpty[T] {
	return t
}

// StepByIter yields every n-th element of its upstream.
type StepByIter[T any] struct {
	proof
	ne   NonEmpty[T]
	step size.Size
}

// StepBy returns the first element of ne followed by every step-th
// element after it.  A step of one yields every element.
func StepBy[T any](ne NonEmpty[T], step size.Size) StepByIter[T] {
	return StepByIter[T]{ne: ne, step: step}
}

func (s StepByIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		step := s.step.Get()
		i := 0
		for v := range s.ne.Seq() {
			if i%step == 0 && !yield(v) {
				return
			}
			i++
		}
	}
}

func (s StepByIter[T]) singleUse() bool { return isSingleUse(s.ne) }

func (s StepByIter[T]) IntoNonEmpty() NonEmpty[T] {
	return s
}
