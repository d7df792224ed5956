package hlist

import "iter"

// ZipAll combines any number of sequences into a list of groups, where the
// i'th group holds the i'th item of every input, in argument order:
//
//	hlist.ZipAll[int](hlist.Slice[int]{1, 2, 3}, hlist.Slice[int]{10, 11})
//	// → [[1 10] [2 11]]
//
// It advances one cursor per input in lockstep and stops as soon as any
// cursor is exhausted, so the result is as long as the shortest input and no
// partial group is ever emitted. With no inputs the result is empty.
func ZipAll[T any](lists ...Sequence[T]) *List[*List[T]] {
	if len(lists) == 0 {
		return Empty[*List[T]]()
	}

	shortest := lists[0].Len()
	cursors := make([]func() (T, bool), len(lists))
	for i, s := range lists {
		shortest = min(shortest, s.Len())
		next, stop := iter.Pull(s.Seq())
		defer stop()
		cursors[i] = next
	}

	zipped := withCap[*List[T]](shortest)
	for {
		group := withCap[T](len(cursors))
		for _, next := range cursors {
			item, ok := next()
			if !ok {
				return zipped
			}
			group.items = append(group.items, item)
		}
		zipped.items = append(zipped.items, group)
	}
}
