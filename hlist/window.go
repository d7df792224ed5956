package hlist

import (
	"fmt"

	"github.com/eapache/queue"
)

// Windowed returns every run of size consecutive items, sliding by one:
//
//	hlist.Windowed(hlist.New(1, 2, 3, 4), 2) // → [[1 2] [2 3] [3 4]]
//
// A list shorter than size yields an empty result. size <= 0 panics with an
// error wrapping [ErrInvalidWindowSize].
func Windowed[T any](l *List[T], size int) *List[*List[T]] {
	if size <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidWindowSize, size))
	}
	out := withCap[*List[T]](max(len(l.items)-size+1, 0))

	ring := queue.New()
	for _, item := range l.items {
		ring.Add(item)
		if ring.Length() > size {
			ring.Remove()
		}
		if ring.Length() < size {
			continue
		}
		window := withCap[T](size)
		for i := 0; i < size; i++ {
			v, _ := ring.Get(i).(T)
			window.items = append(window.items, v)
		}
		out.items = append(out.items, window)
	}
	return out
}
