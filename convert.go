package nonempty

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

// TryFrom checks whether s yields at least one element and, if so,
// returns it as a NonEmpty sequence.
//
// TryFrom pulls exactly one element from s.  The returned sequence yields
// that element followed by the rest of the same pull, so s is only ranged
// over once and producers with side effects are not restarted.  Because of
// that the returned sequence can be ranged over only once.
//
// The pull holds resources until the returned sequence has been ranged
// over (to completion or until the loop breaks).  Callers that end up not
// using the result should range over it with an immediate break.
func TryFrom[T any](s iter.Seq[T]) optional.Value[Adapter[T]] {
	next, stop := iter.Pull(s)

	head, ok := next()
	if !ok {
		stop()
		return optional.None[Adapter[T]]()
	}

	return optional.Some(Adapter[T]{seq: lookahead(head, next, stop), once: true})
}

// lookahead yields an already pulled element followed by the remaining
// elements of the pull, and releases the pull when done
func lookahead[T any](head T, next func() (T, bool), stop func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer stop()

		if !yield(head) {
			return
		}

		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromSeqFunc builds a collection from an ordinary sequence, for example
// slices.Collect.  Any FromSeqFunc can build from a NonEmpty sequence
// using CollectWith.
type FromSeqFunc[T any, C any] func(iter.Seq[T]) C

// Extender is implemented by collections that can be extended with the
// elements of a sequence.
type Extender[T any] interface {
	Extend(iter.Seq[T])
}
