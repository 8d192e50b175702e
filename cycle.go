package nonempty

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// CycleIter repeats the elements of its upstream forever.
type CycleIter[T any] struct {
	proof
	ne NonEmpty[T]
}

// Cycle returns a NonEmpty sequence that yields the elements of ne over
// and over again.  The sequence is infinite; bound it with Take or a loop
// that breaks.
//
// ne is ranged over again for every pass, so side effects of the upstream
// happen on every pass and an infinite upstream is never buffered.  The
// exception is a sequence that can only be ranged over once (the result of
// TryFrom, TryFromIterator or Peek, and adapters built on them): its
// elements are recorded during the first pass and the recording is
// replayed.
//
// A sequence passed to Unchecked is assumed to be restartable.  If a pass
// yields nothing, Cycle panics with ErrContractViolation.
func Cycle[T any](ne NonEmpty[T]) CycleIter[T] {
	return CycleIter[T]{ne: ne}
}

func (c CycleIter[T]) Seq() iter.Seq[T] {
	if isSingleUse(c.ne) {
		return c.replay()
	}

	return seq.Cycle(c.pass)
}

// pass yields one traversal of the upstream
func (c CycleIter[T]) pass(yield func(T) bool) {
	n := 0
	for v := range c.ne.Seq() {
		n++
		if !yield(v) {
			return
		}
	}

	if n == 0 {
		violated[struct{}]()
	}
}

func (c CycleIter[T]) replay() iter.Seq[T] {
	return func(yield func(T) bool) {
		var seen []T
		for v := range c.ne.Seq() {
			if !yield(v) {
				return
			}
			seen = append(seen, v)
		}

		if len(seen) == 0 {
			violated[struct{}]()
		}

		for {
			for _, v := range seen {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (c CycleIter[T]) singleUse() bool { return isSingleUse(c.ne) }

func (c CycleIter[T]) IntoNonEmpty() NonEmpty[T] {
	return c
}

// RevIter yields the elements of a bidirectional sequence back to front.
type RevIter[T any] struct {
	proof
	b Bidirectional[T]
}

// Reverse returns the elements of b in reverse order.
//
// Adapters such as Map, Inspect or Fuse are not Bidirectional, even over a
// Bidirectional upstream.  Reverse the upstream first instead:
//
//	nonempty.Map(nonempty.Reverse(s), f) // rather than Reverse(Map(s, f))
//
// Any other sequence can be reversed after collecting it with Collect and
// FromSlice.
func Reverse[T any](b Bidirectional[T]) RevIter[T] {
	return RevIter[T]{b: b}
}

func (r RevIter[T]) Seq() iter.Seq[T] {
	return r.b.Backward()
}

// Backward returns the elements in their original order.
func (r RevIter[T]) Backward() iter.Seq[T] {
	return r.b.Seq()
}

func (r RevIter[T]) singleUse() bool { return isSingleUse(r.b) }

func (r RevIter[T]) IntoNonEmpty() NonEmpty[T] {
	return r
}

// FuseIter guarantees that nothing is yielded after its upstream has
// finished.
type FuseIter[T any] struct {
	proof
	ne NonEmpty[T]
}

// Fuse returns ne guarded so that once the upstream has ended or the
// consumer has stopped, any further elements the upstream tries to yield
// are dropped.
func Fuse[T any](ne NonEmpty[T]) FuseIter[T] {
	return FuseIter[T]{ne: ne}
}

func (f FuseIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		done := false
		f.ne.Seq()(func(v T) bool {
			if done {
				return false
			}
			if !yield(v) {
				done = true
				return false
			}
			return true
		})
	}
}

func (f FuseIter[T]) singleUse() bool { return isSingleUse(f.ne) }

func (f FuseIter[T]) IntoNonEmpty() NonEmpty[T] {
	return f
}
