package hlist

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
//
// When A and B are comparable, Pair is comparable too and == compares both
// fields, so pairs can be used as map keys. [Pair.Hash] agrees with == except
// for floating-point zeros, see its doc.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Hash returns a 64-bit digest of both fields. Pairs that are == produce the
// same hash. Floating-point fields follow %#v formatting, so 0.0 and -0.0
// hash differently.
func (p Pair[A, B]) Hash() uint64 {
	return digest(p.First, p.Second)
}
