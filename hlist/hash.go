package hlist

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const digestSize = 8

// digest hashes the Go-syntax rendering of each value with BLAKE2b,
// separating values with a NUL byte. %#v escapes NUL inside strings, so the
// separator cannot be forged by a value.
func digest(values ...any) uint64 {
	h, err := blake2b.New(digestSize, nil)
	if err != nil {
		// Only reachable with an invalid size or key.
		panic(fmt.Errorf("hlist: blake2b: %w", err))
	}
	sep := []byte{0}
	for _, v := range values {
		fmt.Fprintf(h, "%#v", v)
		h.Write(sep)
	}
	return binary.BigEndian.Uint64(h.Sum(nil))
}

// Hash returns a 64-bit digest of the items in order. Lists that are [Equal]
// produce the same hash; the empty list and the zero List hash alike.
func (l *List[T]) Hash() uint64 {
	values := make([]any, len(l.items))
	for i, item := range l.items {
		values[i] = item
	}
	return digest(values...)
}
