package hlist_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-hlist/hlist"
)

func groupsOf[T any](l *hlist.List[*hlist.List[T]]) [][]T {
	out := make([][]T, 0, l.Len())
	for g := range l.Seq() {
		out = append(out, g.ToSlice())
	}
	return out
}

func TestZipAll(t *testing.T) {
	got := hlist.ZipAll(ints(1, 2, 3), ints(10, 11), ints(20, 21, 22, 23))
	want := [][]int{{1, 10, 20}, {2, 11, 21}}
	if diff := cmp.Diff(want, groupsOf(got)); diff != "" {
		t.Fatalf("ZipAll mismatch (-want +got):\n%s", diff)
	}
}

func TestZipAllMixesSequenceKinds(t *testing.T) {
	got := hlist.ZipAll[string](hlist.New("a", "b"), hlist.Slice[string]{"x", "y", "z"})
	want := [][]string{{"a", "x"}, {"b", "y"}}
	if diff := cmp.Diff(want, groupsOf(got)); diff != "" {
		t.Fatalf("ZipAll mismatch (-want +got):\n%s", diff)
	}
}

func TestZipAllNoInputs(t *testing.T) {
	if got := hlist.ZipAll[int](); !got.IsEmpty() {
		t.Fatalf("ZipAll() = %v; want empty", got)
	}
}

func TestZipAllSingleInput(t *testing.T) {
	got := hlist.ZipAll(ints(1, 2))
	if diff := cmp.Diff([][]int{{1}, {2}}, groupsOf(got)); diff != "" {
		t.Fatalf("ZipAll mismatch (-want +got):\n%s", diff)
	}
}

func TestZipAllWithEmptyInput(t *testing.T) {
	if got := hlist.ZipAll(ints(1, 2), hlist.Empty[int](), ints(3)); !got.IsEmpty() {
		t.Fatalf("ZipAll with an empty input = %v; want empty", got)
	}
}

func TestZipAllDoesNotMutateInputs(t *testing.T) {
	a, b := ints(1, 2), ints(3, 4)
	got := hlist.ZipAll(a, b)
	first, _ := got.Get(0)
	first.Add(99)
	assertSlice(t, a.ToSlice(), []int{1, 2})
	assertSlice(t, b.ToSlice(), []int{3, 4})
}

func TestZipMatchesZipAllForTwoInputs(t *testing.T) {
	a, b := ints(1, 2, 3), ints(4, 5)
	pairs := hlist.Zip(a, b)
	groups := hlist.ZipAll(a, b)
	if pairs.Len() != groups.Len() {
		t.Fatalf("Zip Len %d != ZipAll Len %d", pairs.Len(), groups.Len())
	}
	for i := 0; i < pairs.Len(); i++ {
		p, _ := pairs.Get(i)
		g, _ := groups.Get(i)
		assertSlice(t, g.ToSlice(), []int{p.First, p.Second})
	}
}
