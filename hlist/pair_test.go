package hlist_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-hlist/hlist"
)

func TestPairEquality(t *testing.T) {
	a := hlist.Pair[int, string]{First: 1, Second: "x"}
	b := hlist.Pair[int, string]{First: 1, Second: "x"}
	c := hlist.Pair[int, string]{First: 1, Second: "y"}
	if a != b {
		t.Fatal("pairs with equal fields should be ==")
	}
	if a == c {
		t.Fatal("pairs with different fields should not be ==")
	}
}

func TestPairAsMapKey(t *testing.T) {
	seen := map[hlist.Pair[int, int]]int{}
	for p := range hlist.Zip(ints(1, 1, 2), ints(5, 5, 5)).Seq() {
		seen[p]++
	}
	if seen[hlist.Pair[int, int]{First: 1, Second: 5}] != 2 || len(seen) != 2 {
		t.Fatalf("unexpected counts: %v", seen)
	}
}

func TestPairHash(t *testing.T) {
	a := hlist.Pair[int, string]{First: 1, Second: "x"}
	b := hlist.Pair[int, string]{First: 1, Second: "x"}
	if a.Hash() != b.Hash() {
		t.Fatal("equal pairs must hash equal")
	}
	swapped := hlist.Pair[string, int]{First: "x", Second: 1}
	if a.Hash() == swapped.Hash() {
		t.Fatal("field order should affect the hash")
	}
	split := hlist.Pair[string, string]{First: "ab", Second: "c"}
	moved := hlist.Pair[string, string]{First: "a", Second: "bc"}
	if split.Hash() == moved.Hash() {
		t.Fatal("field boundary should affect the hash")
	}
}

func TestPairHashFloatZeros(t *testing.T) {
	pos := hlist.Pair[float64, int]{First: 0.0, Second: 1}
	neg := hlist.Pair[float64, int]{First: math.Copysign(0, -1), Second: 1}
	if pos != neg {
		t.Fatal("0.0 and -0.0 pairs should be ==")
	}
	if pos.Hash() == neg.Hash() {
		t.Fatal("0.0 and -0.0 are documented to hash differently")
	}
}

func TestPairString(t *testing.T) {
	if got := (hlist.Pair[int, string]{First: 1, Second: "a"}).String(); got != "(1, a)" {
		t.Fatalf("String = %q; want \"(1, a)\"", got)
	}
}
