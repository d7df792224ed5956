// Package hlist provides [List], a generic ordered collection that wraps a
// plain Go slice and adds a small set of eager higher-order operations:
// Map, FlatMap, Filter, Find, All, Reduce, GroupBy and Zip, plus [ZipAll]
// for combining any number of sequences.
//
// # Overview
//
//	l := hlist.New(1, 2, 3, 4)
//
//	evens := l.Filter(func(n int) bool { return n%2 == 0 })       // [2 4]
//	first := l.Find(func(n int) bool { return n > 2 }).MustGet()  // 3
//	sum := hlist.Reduce(l, func(acc, n int) int { return acc + n }, 0) // 10
//
// # Ownership
//
// [New] and [From] copy their input, and [List.ToSlice] returns a copy, so a
// List never aliases a slice the caller keeps mutating. Higher-order
// operations always allocate a new List and never modify the receiver. The
// in-place primitives ([List.Add], [List.Insert], [List.Set],
// [List.RemoveAt], [List.Clear]) mutate the receiver directly.
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters, so operations that change the
// element type are package-level functions:
//
//	strs := hlist.Map(l, strconv.Itoa)
//	byParity := hlist.GroupBy(l, func(n int) int { return n % 2 })
//	pairs := hlist.Zip(l, hlist.Slice[string]{"a", "b"})
//
// # Evaluation order
//
// Every operation walks the receiver once, front to back. Caller functions
// are applied exactly once per visited element. [Reduce] is a strict left
// fold, so non-associative reducers give reproducible results. [List.Find]
// and [List.All] stop at the first deciding element.
//
// # Failures
//
// Passing a nil function panics with an error wrapping [ErrNilFunc]. For
// callbacks that can fail, the Try variants ([TryMap], [TryFlatMap],
// [TryReduce], [List.TryFilter], [List.TryFind], [List.TryAll]) stop at the
// first error and return it unmodified, without a partial result.
package hlist
