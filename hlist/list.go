package hlist

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// List is a generic, mutable, index-addressable sequence with higher-order
// operations on top.
//
// A List owns its backing slice exclusively. Higher-order operations
// (Filter, Partition and the package-level Map, FlatMap, Reduce, GroupBy,
// Zip, Windowed) never modify the receiver and return independently owned
// results.
//
// # Creating a list
//
//	l := hlist.New(1, 2, 3)
//	l := hlist.From([]string{"a", "b", "c"})
//	l := hlist.Empty[int]()
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T any](items ...T) *List[T] {
	return From(items)
}

// From creates a List from a slice. The slice is copied; later changes to
// items do not affect the List.
func From[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

// withCap is the internal constructor for results of known or estimated size.
func withCap[T any](n int) *List[T] {
	return &List[T]{items: make([]T, 0, n)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of items in the list.
func (l *List[T]) Len() int { return len(l.items) }

// Count is an alias for [List.Len].
func (l *List[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Sub returns a new list holding a copy of the items in [from, to).
func (l *List[T]) Sub(from, to int) (*List[T], error) {
	if from < 0 || from > to {
		return nil, indexError(from, len(l.items))
	}
	if to > len(l.items) {
		return nil, indexError(to, len(l.items))
	}
	return From(l.items[from:to]), nil
}

// ToSlice returns a copy of the underlying slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set replaces the item at index and returns the previous one.
func (l *List[T]) Set(index int, item T) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, indexError(index, len(l.items))
	}
	prev := l.items[index]
	l.items[index] = item
	return prev, nil
}

// Add appends items to the end of the list.
func (l *List[T]) Add(items ...T) {
	l.items = append(l.items, items...)
}

// Insert places items at index, in order, shifting later items right.
// index may equal Len(), which appends.
func (l *List[T]) Insert(index int, items ...T) error {
	if index < 0 || index > len(l.items) {
		return indexError(index, len(l.items))
	}
	l.items = slices.Insert(l.items, index, items...)
	return nil
}

// RemoveAt removes and returns the item at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, indexError(index, len(l.items))
	}
	item := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return item, nil
}

// Clear removes every item.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Remove deletes the first item equal to item and reports whether one was
// found.
func Remove[T comparable](l *List[T], item T) bool {
	i := IndexOf(l, item)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & lookup
// ─────────────────────────────────────────────────────────────────────────────

// Seq returns an iterator over the items in order.
// Mutating the list while ranging over Seq is not supported.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Each calls fn(item, index) for every item.
func (l *List[T]) Each(fn func(T, int)) {
	mustFunc(fn == nil, "Each")
	for i, item := range l.items {
		fn(item, i)
	}
}

// IndexOf returns the index of the first item equal to item, or -1.
func IndexOf[T comparable](l *List[T], item T) int {
	return slices.Index(l.items, item)
}

// LastIndexOf returns the index of the last item equal to item, or -1.
func LastIndexOf[T comparable](l *List[T], item T) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i] == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item is present in l.
func Contains[T comparable](l *List[T], item T) bool {
	return IndexOf(l, item) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality & encoding
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b hold equal items in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return slices.Equal(a.items, b.items)
}

// EqualFunc is like [Equal] but compares items with eq.
func EqualFunc[A, B any](a *List[A], b *List[B], eq func(A, B) bool) bool {
	mustFunc(eq == nil, "EqualFunc")
	return slices.EqualFunc(a.items, b.items, eq)
}

// String renders the list as hlist([a b c]).
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	return fmt.Sprintf("hlist(%v)", l.items)
}

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON replaces the contents of l with the decoded JSON array.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("hlist: decode list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	l.items = items
	return nil
}
