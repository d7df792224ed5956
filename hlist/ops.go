package hlist

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with only the items for which pred returns true,
// in their original order.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	mustFunc(pred == nil, "Filter")
	out := withCap[T](len(l.items))
	for _, item := range l.items {
		if pred(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// Partition splits the list in two: items for which pred returns true, and
// the rest. Both halves keep the original order.
func (l *List[T]) Partition(pred func(T) bool) (*List[T], *List[T]) {
	mustFunc(pred == nil, "Partition")
	pass, fail := Empty[T](), Empty[T]()
	for _, item := range l.items {
		if pred(item) {
			pass.items = append(pass.items, item)
		} else {
			fail.items = append(fail.items, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the lowest-index item satisfying pred, or an empty optional.
// pred is not called again after the first match.
func (l *List[T]) Find(pred func(T) bool) optional.Value[T] {
	mustFunc(pred == nil, "Find")
	for _, item := range l.items {
		if pred(item) {
			return optional.Some(item)
		}
	}
	return optional.None[T]()
}

// IndexFunc returns the index of the first item satisfying pred, or -1.
func (l *List[T]) IndexFunc(pred func(T) bool) int {
	mustFunc(pred == nil, "IndexFunc")
	return slices.IndexFunc(l.items, pred)
}

// All reports whether pred holds for every item. It is true for an empty
// list and stops at the first item that fails.
func (l *List[T]) All(pred func(T) bool) bool {
	mustFunc(pred == nil, "All")
	for _, item := range l.items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one item. It is false for an
// empty list and stops at the first match.
func (l *List[T]) Any(pred func(T) bool) bool {
	return l.IndexFunc(pred) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-transforming operations
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item, in order, and returns the results as a new
// list of the same length.
//
//	strs := hlist.Map(hlist.New(1, 2, 3), strconv.Itoa) // [1 2 3] as strings
func Map[T, U any](l *List[T], fn func(T) U) *List[U] {
	mustFunc(fn == nil, "Map")
	out := make([]U, len(l.items))
	for i, item := range l.items {
		out[i] = fn(item)
	}
	return &List[U]{items: out}
}

// FlatMap applies fn to every item and concatenates the returned slices in
// order.
//
//	words := hlist.FlatMap(hlist.New("a b", "c"), strings.Fields) // [a b c]
func FlatMap[T, U any](l *List[T], fn func(T) []U) *List[U] {
	mustFunc(fn == nil, "FlatMap")
	out := withCap[U](len(l.items))
	out.items = slices.AppendSeq(out.items, seq.FlatMapSlices[T, U](l.Seq(), fn))
	return out
}

// FlatMapSeq is [FlatMap] for functions that produce an iterator.
// Each returned iterator is drained completely before fn sees the next item.
func FlatMapSeq[T, U any](l *List[T], fn func(T) iter.Seq[U]) *List[U] {
	mustFunc(fn == nil, "FlatMapSeq")
	out := withCap[U](len(l.items))
	out.items = slices.AppendSeq(out.items, seq.FlatMap[T, U](l.Seq(), fn))
	return out
}

// Reduce folds the list from left to right:
//
//	reducer(...reducer(reducer(identity, l[0]), l[1])..., l[n-1])
//
// An empty list returns identity unchanged.
//
//	sum := hlist.Reduce(hlist.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0) // 10
func Reduce[T, U any](l *List[T], reducer func(U, T) U, identity U) U {
	mustFunc(reducer == nil, "Reduce")
	return seq.Reduce[T, U](l.Seq(), reducer, identity)
}

// GroupBy groups items by the comparable key returned by fn. Groups are
// created on first occurrence of a key and keep their items in source order.
// The map's iteration order is unspecified.
//
//	byParity := hlist.GroupBy(hlist.New(1, 2, 3, 4),
//	    func(n int) int { return n % 2 }) // 0 → [2 4], 1 → [1 3]
func GroupBy[T any, K comparable](l *List[T], fn func(T) K) map[K]*List[T] {
	mustFunc(fn == nil, "GroupBy")
	groups := make(map[K]*List[T])
	for _, item := range l.items {
		k := fn(item)
		g, ok := groups[k]
		if !ok {
			g = Empty[T]()
			groups[k] = g
		}
		g.items = append(g.items, item)
	}
	return groups
}

// Zip pairs l[i] with other[i] and stops at the shorter of the two.
// A length mismatch is not an error.
//
//	pairs := hlist.Zip(hlist.New("a", "b", "c"), hlist.Slice[int]{1, 2})
//	// → [(a, 1) (b, 2)]
func Zip[T, U any](l *List[T], other Sequence[U]) *List[Pair[T, U]] {
	n := min(len(l.items), other.Len())
	out := withCap[Pair[T, U]](n)
	if n == 0 {
		return out
	}
	next, stop := iter.Pull(other.Seq())
	defer stop()
	for _, item := range l.items {
		u, ok := next()
		if !ok {
			break
		}
		out.items = append(out.items, Pair[T, U]{First: item, Second: u})
	}
	return out
}
