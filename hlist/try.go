package hlist

import (
	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/seqerr"
)

// This file holds the fallible counterparts of the higher-order operations.
// Each one walks the list in order, stops at the first error returned by the
// callback and hands that error back unmodified. No partial result is ever
// returned alongside an error.

// TryMap is [Map] for a function that can fail.
func TryMap[T, U any](l *List[T], fn func(T) (U, error)) (*List[U], error) {
	mustFunc(fn == nil, "TryMap")
	out := make([]U, 0, len(l.items))
	out, err := seqerr.ToSlice(seq.MapOrErr[T, U](l.Seq(), fn), out)
	if err != nil {
		return nil, err
	}
	return &List[U]{items: out}, nil
}

// TryFlatMap is [FlatMap] for a function that can fail.
func TryFlatMap[T, U any](l *List[T], fn func(T) ([]U, error)) (*List[U], error) {
	mustFunc(fn == nil, "TryFlatMap")
	out := make([]U, 0, len(l.items))
	out, err := seqerr.ToSlice(seq.FlatMapSlicesOrErr[T, U](l.Seq(), fn), out)
	if err != nil {
		return nil, err
	}
	return &List[U]{items: out}, nil
}

// TryReduce is [Reduce] for a reducer that can fail. On error the zero value
// of U is returned.
func TryReduce[T, U any](l *List[T], reducer func(U, T) (U, error), identity U) (U, error) {
	mustFunc(reducer == nil, "TryReduce")
	acc := identity
	for _, item := range l.items {
		next, err := reducer(acc, item)
		if err != nil {
			var zero U
			return zero, err
		}
		acc = next
	}
	return acc, nil
}

// TryFilter is [List.Filter] for a predicate that can fail.
func (l *List[T]) TryFilter(pred func(T) (bool, error)) (*List[T], error) {
	mustFunc(pred == nil, "TryFilter")
	out := withCap[T](len(l.items))
	for _, item := range l.items {
		keep, err := pred(item)
		if err != nil {
			return nil, err
		}
		if keep {
			out.items = append(out.items, item)
		}
	}
	return out, nil
}

// TryFind is [List.Find] for a predicate that can fail.
func (l *List[T]) TryFind(pred func(T) (bool, error)) (optional.Value[T], error) {
	mustFunc(pred == nil, "TryFind")
	for _, item := range l.items {
		ok, err := pred(item)
		if err != nil {
			return optional.None[T](), err
		}
		if ok {
			return optional.Some(item), nil
		}
	}
	return optional.None[T](), nil
}

// TryAll is [List.All] for a predicate that can fail. An error counts as
// neither a pass nor a fail: the result is false and the error is returned.
func (l *List[T]) TryAll(pred func(T) (bool, error)) (bool, error) {
	mustFunc(pred == nil, "TryAll")
	for _, item := range l.items {
		ok, err := pred(item)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
