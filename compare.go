package circbuf

import (
	"cmp"
	"sort"
)

// Equal reports whether a and b hold the same elements in the same logical
// order. The capacities may differ.
func Equal[T comparable](a, b *Buffer[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *Buffer[T1], b *Buffer[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// Compare compares the logical sequences of a and b lexicographically. The
// result is 0 if a == b, -1 if a < b, and +1 if a > b. A buffer that is a strict
// prefix of the other is the smaller one.
func Compare[T cmp.Ordered](a, b *Buffer[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but uses fn to compare elements.
func CompareFunc[T1, T2 any](a *Buffer[T1], b *Buffer[T2], fn func(T1, T2) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := fn(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Sort sorts the elements of b in ascending order, in place.
func Sort[T cmp.Ordered](b *Buffer[T]) {
	SortFunc(b, cmp.Compare[T])
}

// SortFunc sorts the elements of b in place as determined by fn. Elements are
// moved with Swap, so none of them is destroyed.
func SortFunc[T any](b *Buffer[T], fn func(a, b T) int) {
	sort.Sort(sorter[T]{buf: b, cmp: fn})
}

// sorter adapts a Buffer to sort.Interface through logical indexes.
type sorter[T any] struct {
	buf *Buffer[T]
	cmp func(a, b T) int
}

func (s sorter[T]) Len() int           { return s.buf.Len() }
func (s sorter[T]) Less(i, j int) bool { return s.cmp(s.buf.At(i), s.buf.At(j)) < 0 }
func (s sorter[T]) Swap(i, j int)      { s.buf.Swap(i, j) }
