package nonempty

import (
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/jake-scott/go-nonempty/size"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilters(t *testing.T) {
	assert := assert.New(t)
	ne := Of(1, 2, 3, 4, 5, 6)

	assert.Equal([]int{2, 4, 6}, slices.Collect(Filter(ne, isEven)))
	assert.Empty(slices.Collect(Filter(Of(1, 3), isEven)))

	atoi := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	}
	assert.Equal([]int{1, 3}, slices.Collect(FilterMap(Of("1", "two", "3"), atoi)))
	assert.Empty(slices.Collect(FilterMap(Of("x"), atoi)))

	assert.Equal([]int{3, 4, 5, 6}, slices.Collect(Skip(ne, size.MustNew(2))))
	assert.Empty(slices.Collect(Skip(ne, size.MustNew(6))))
	assert.Empty(slices.Collect(Skip(ne, size.MustNew(60))))

	small := func(n int) bool { return n < 3 }
	assert.Equal([]int{3, 4, 5, 6}, slices.Collect(SkipWhile(ne, small)))
	assert.Equal([]int{1, 2}, slices.Collect(TakeWhile(ne, small)))
	assert.Empty(slices.Collect(TakeWhile(Of(5), small)))

	half := func(n int) (int, bool) { return n / 2, isEven(n) }
	assert.Equal([]int{1, 2}, slices.Collect(MapWhile(Of(2, 4, 5, 6), half)))
	assert.Empty(slices.Collect(MapWhile(Of(1, 2), half)))
}

func TestScan(t *testing.T) {
	runningTotal := Scan(Of(1, 2, 3, 4), 0, func(total *int, n int) (int, bool) {
		*total += n
		return *total, *total < 6
	})

	assert.Equal(t, []int{1, 3}, slices.Collect(runningTotal))

	// the state starts afresh on every traversal
	assert.Equal(t, []int{1, 3}, slices.Collect(runningTotal))
}

func TestFold(t *testing.T) {
	got := Fold(Of("a", "b"), "z", func(acc string, s string) string { return acc + s })
	assert.Equal(t, "zab", got)

	assert.Equal(t, 3, Fold(Of("abc"), 0, func(acc int, s string) int { return acc + len(s) }))
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	ne := Of(1, 2, 3, 4)

	assert.Equal(2, Find(ne, isEven).MustGet())
	assert.True(Find(ne, func(n int) bool { return n > 10 }).IsEmpty())

	// pointers are found even when nil
	var nilPtr *int
	found := Find(Of(nilPtr), func(p *int) bool { return p == nil })
	assert.True(found.IsPresent())

	square := func(n int) (int, bool) { return n * n, n > 2 }
	assert.Equal(9, FindMap(ne, square).MustGet())
	assert.True(FindMap(Of(1), square).IsEmpty())

	assert.Equal(1, Position(ne, isEven).MustGet())
	assert.True(Position(Of(1, 3), isEven).IsEmpty())

	assert.Equal(3, Nth(ne, size.MustNew(2)).MustGet())
	assert.Equal(2, Nth(ne, size.One).MustGet())
	assert.Equal(4, Nth(ne, size.MustNew(3)).MustGet())
	assert.True(Nth(ne, size.MustNew(4)).IsEmpty())
	assert.True(Nth(Once(1), size.One).IsEmpty())
	assert.Equal(5, Nth(Successors(1, func(n int) (int, bool) { return n + 1, true }), size.MustNew(4)).MustGet())

	// finding stops pulling once there is an answer
	assert.Equal(3, Find(Successors(1, func(n int) (int, bool) { return n + 1, true }), func(n int) bool { return n == 3 }).MustGet())
}

func TestPredicates(t *testing.T) {
	assert := assert.New(t)

	assert.True(All(Of(2, 4), isEven))
	assert.False(All(Of(2, 3), isEven))
	assert.True(Any(Of(1, 4), isEven))
	assert.False(Any(Of(1, 3), isEven))
	assert.True(None(Of(1, 3), isEven))
	assert.False(None(Of(1, 4), isEven))
}

func TestForEachExhaust(t *testing.T) {
	var seen []string
	ForEach(Of("a", "b"), func(s string) { seen = append(seen, s) })
	assert.Equal(t, []string{"a", "b"}, seen)

	seen = nil
	Exhaust(Inspect(Of("c", "d"), func(s string) { seen = append(seen, s) }))
	assert.Equal(t, []string{"c", "d"}, seen)
}

func TestPartition(t *testing.T) {
	even, odd := Partition(Of(1, 2, 3, 4, 5), isEven)
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 3, 5}, odd)

	even, odd = Partition(Of(1), isEven)
	assert.Empty(t, even)
	assert.Equal(t, []int{1}, odd)
}

type intSet map[int]struct{}

func (s intSet) Extend(values iter.Seq[int]) {
	for v := range values {
		s[v] = struct{}{}
	}
}

func TestCollect(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{1, 2, 3}, Collect(Of(1, 2, 3)))
	assert.Equal([]int{7, 7, 7}, Collect(RepeatN(7, size.MustNew(3))))
	assert.Equal([]int{1}, Collect(Unchecked(seq.Of(1))))

	sorted := CollectWith(Of(3, 1, 2), slices.Sorted[int])
	assert.Equal([]int{1, 2, 3}, sorted)

	set := CollectInto(Of(1, 2, 2, 1), intSet{})
	assert.Len(set, 2)
}

func TestUnzip(t *testing.T) {
	as, bs := Unzip(Zip(Of(1, 2, 3), Of("a", "b")))
	assert.Equal(t, []int{1, 2}, as)
	assert.Equal(t, []string{"a", "b"}, bs)

	as, bs = Unzip(Once(types.NewTuple2(9, "z")))
	assert.Equal(t, []int{9}, as)
	assert.Equal(t, []string{"z"}, bs)

	assert.NoError(t, goleak.Find())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name  string
		a     Slice[int]
		b     []int
		want  int
		equal bool
	}{
		{name: "equal", a: Of(1, 2, 3), b: []int{1, 2, 3}, want: 0, equal: true},
		{name: "smaller element", a: Of(1, 2, 3), b: []int{1, 3}, want: -1},
		{name: "larger element", a: Of(2), b: []int{1, 9}, want: 1},
		{name: "prefix sorts first", a: Of(1, 2), b: []int{1, 2, 3}, want: -1},
		{name: "longer sorts last", a: Of(1, 2, 3), b: []int{1, 2}, want: 1},
		{name: "against empty", a: Of(1), b: nil, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := seq.FromSlice(tt.b)

			assert.Equal(t, tt.want, Compare(tt.a, other))
			assert.Equal(t, tt.equal, Equal(tt.a, other))
			assert.Equal(t, tt.want < 0, Less(tt.a, other))
			assert.Equal(t, tt.want <= 0, LessOrEqual(tt.a, other))
			assert.Equal(t, tt.want > 0, Greater(tt.a, other))
			assert.Equal(t, tt.want >= 0, GreaterOrEqual(tt.a, other))
		})
	}

	assert.NoError(t, goleak.Find())
}

func TestCompareFunc(t *testing.T) {
	byLen := func(s string, n int) int { return len(s) - n }

	assert.Equal(t, 0, CompareFunc(Of("a", "bb"), seq.Of(1, 2), byLen))
	assert.True(t, EqualFunc(Of("a", "bb"), seq.Of(1, 2), func(s string, n int) bool { return len(s) == n }))
	assert.False(t, EqualFunc(Of("a"), seq.Of(1, 2), func(s string, n int) bool { return len(s) == n }))

	// an infinite other side is only pulled as far as needed
	assert.Equal(t, -1, Compare(Of(1, 1), Repeat(1).Seq()))

	assert.NoError(t, goleak.Find())
}

func TestIsSorted(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsSorted(Once(5)))
	assert.True(IsSorted(Of(1, 2, 2, 3)))
	assert.False(IsSorted(Of(1, 3, 2)))

	desc := func(a, b int) int { return b - a }
	assert.True(IsSortedFunc(Of(3, 2, 2, 1), desc))
	assert.False(IsSortedFunc(Of(1, 2), desc))

	assert.True(IsSortedByKey(Of("a", "bb", "cc", "ddd"), func(s string) int { return len(s) }))
	assert.False(IsSortedByKey(people, age))
}
