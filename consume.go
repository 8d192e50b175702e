package nonempty

import (
	"cmp"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"golang.org/x/exp/constraints"

	"github.com/jake-scott/go-nonempty/size"
)

// Consume returns the first element of ne together with an ordinary
// sequence over the remaining elements, which may be empty.
//
// ne is pulled exactly once.  The remainder continues the same pull and
// can be ranged over only once; it holds resources until it has been
// ranged over.
func Consume[T any](ne NonEmpty[T]) (T, iter.Seq[T]) {
	next, stop := iter.Pull(ne.Seq())

	head, ok := next()
	if !ok {
		stop()
		return violated[T](), nil
	}

	rest := func(yield func(T) bool) {
		defer stop()

		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}

	return head, rest
}

// First returns the first element of ne.  The rest of the sequence is not
// evaluated.
func First[T any](ne NonEmpty[T]) T {
	for v := range ne.Seq() {
		return v
	}

	return violated[T]()
}

// Last returns the last element of ne.
func Last[T any](ne NonEmpty[T]) T {
	var (
		last T
		ok   bool
	)
	for v := range ne.Seq() {
		last, ok = v, true
	}
	if !ok {
		return violated[T]()
	}

	return last
}

// Count returns the number of elements of ne, which is never zero.
func Count[T any](ne NonEmpty[T]) size.Size {
	n := seq.Count(ne.Seq())
	if n == 0 {
		return violated[size.Size]()
	}

	return size.NewUnchecked(n)
}

// Reduce combines the elements of ne from left to right using f, starting
// with the first element.  For a single element sequence that element is
// returned unchanged.
func Reduce[T any](ne NonEmpty[T], f func(acc T, item T) T) T {
	head, rest := Consume(ne)

	return seq.Reduce(rest, f, head)
}

// Max returns the largest element of ne.  If several elements are equally
// large, the last is returned.
func Max[T cmp.Ordered](ne NonEmpty[T]) T {
	return MaxFunc(ne, cmp.Compare[T])
}

// Min returns the smallest element of ne.  If several elements are equally
// small, the first is returned.
func Min[T cmp.Ordered](ne NonEmpty[T]) T {
	return must(seq.Min(ne.Seq()))
}

// MaxFunc returns the largest element of ne according to compare, which
// returns a negative number when a < b, zero when a == b and a positive
// number when a > b.  Ties resolve to the last element.
func MaxFunc[T any](ne NonEmpty[T], compare func(a, b T) int) T {
	return Reduce(ne, func(acc T, item T) T {
		if compare(item, acc) >= 0 {
			return item
		}
		return acc
	})
}

// MinFunc returns the smallest element of ne according to compare.  Ties
// resolve to the first element.
func MinFunc[T any](ne NonEmpty[T], compare func(a, b T) int) T {
	return Reduce(ne, func(acc T, item T) T {
		if compare(item, acc) < 0 {
			return item
		}
		return acc
	})
}

// MaxByKey returns the element of ne with the largest key.  key is called
// once per element.  Ties resolve to the last element.
func MaxByKey[T any, K cmp.Ordered](ne NonEmpty[T], key func(T) K) T {
	return byKey(ne, key, func(k, best K) bool { return k >= best })
}

// MinByKey returns the element of ne with the smallest key.  key is called
// once per element.  Ties resolve to the first element.
func MinByKey[T any, K cmp.Ordered](ne NonEmpty[T], key func(T) K) T {
	return byKey(ne, key, func(k, best K) bool { return k < best })
}

func byKey[T any, K cmp.Ordered](ne NonEmpty[T], key func(T) K, better func(k, best K) bool) T {
	best, rest := Consume(ne)
	bestKey := key(best)

	for v := range rest {
		if k := key(v); better(k, bestKey) {
			best, bestKey = v, k
		}
	}

	return best
}

// Number is the set of types that Sum and Product operate on.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum returns the sum of the elements of ne.
func Sum[T Number](ne NonEmpty[T]) T {
	return Reduce(ne, func(acc T, item T) T { return acc + item })
}

// Product returns the product of the elements of ne.
func Product[T Number](ne NonEmpty[T]) T {
	return Reduce(ne, func(acc T, item T) T { return acc * item })
}
