package hlist

import "iter"

// Sequence is the read-only view accepted by [Zip] and [ZipAll].
//
// *List[T] satisfies Sequence, and so does [Slice], which lets a plain Go
// slice take part without being copied into a List first:
//
//	hlist.Zip(l, hlist.Slice[string]{"a", "b"})
type Sequence[T any] interface {
	// Len returns the number of items.
	Len() int

	// Seq returns an iterator over the items in order.
	Seq() iter.Seq[T]
}

var (
	_ Sequence[int] = (*List[int])(nil)
	_ Sequence[int] = Slice[int](nil)
)

// Slice adapts a plain slice to [Sequence] without copying it.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// Seq returns an iterator over s in index order.
func (s Slice[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s {
			if !yield(item) {
				return
			}
		}
	}
}
