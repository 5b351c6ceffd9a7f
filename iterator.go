package circbuf

import "cmp"

// cursor is the position shared by Iterator and ConstIterator: a buffer and a
// signed logical offset. The offset is never reduced modulo the capacity; the
// physical slot is computed only when the cursor is dereferenced.
type cursor[T any] struct {
	buf     *Buffer[T]
	index   int
	reverse bool
}

func (c cursor[T]) slot() int {
	b := c.buf
	if c.reverse {
		return (b.head + b.size - c.index - 1) % b.cap
	}
	return (b.head + c.index) % b.cap
}

func (c cursor[T]) valid() bool {
	return c.buf != nil && c.index >= 0 && c.index < c.buf.size
}

func (c cursor[T]) equal(o cursor[T]) bool {
	return c.buf == o.buf && c.reverse == o.reverse && c.index == o.index
}

func (c cursor[T]) compare(o cursor[T]) int {
	return cmp.Compare(c.index, o.index)
}

// --- Mutable iterator ---

// Iterator is a random-access cursor over a Buffer's logical sequence. Forward
// iterators walk from the oldest element to the newest, reverse iterators the
// other way round.
//
// An Iterator does not own the buffer. Any structural change to the buffer
// (PushBack on a full buffer, PopFront, Clear, Close) invalidates the meaning
// of iterators taken before it. The zero Iterator is a placeholder that may be
// assigned and compared but not dereferenced.
type Iterator[T any] struct {
	cursor[T]
}

// Begin returns an iterator at the oldest element.
func (b *Buffer[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{buf: b}}
}

// End returns an iterator one past the newest element.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{cursor[T]{buf: b, index: b.size}}
}

// RBegin returns a reverse iterator at the newest element.
func (b *Buffer[T]) RBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{buf: b, reverse: true}}
}

// REnd returns a reverse iterator one past the oldest element.
func (b *Buffer[T]) REnd() Iterator[T] {
	return Iterator[T]{cursor[T]{buf: b, index: b.size, reverse: true}}
}

// Value returns the element the iterator points at.
func (it Iterator[T]) Value() T {
	return it.buf.data[it.slot()]
}

// Ref returns a pointer to the slot the iterator points at.
func (it Iterator[T]) Ref() *T {
	return &it.buf.data[it.slot()]
}

// Set replaces the element the iterator points at, destroying the old one.
func (it Iterator[T]) Set(v T) {
	p := it.slot()
	it.buf.destroy(it.buf.data[p])
	it.buf.data[p] = v
}

// At returns the element n positions away, the same as it.Add(n).Value().
func (it Iterator[T]) At(n int) T {
	return it.Add(n).Value()
}

// Next moves the iterator one position forward.
func (it *Iterator[T]) Next() {
	it.index++
}

// Prev moves the iterator one position back.
func (it *Iterator[T]) Prev() {
	it.index--
}

// Advance moves the iterator n positions; n may be negative.
func (it *Iterator[T]) Advance(n int) {
	it.index += n
}

// Add returns a copy of the iterator moved n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.index += n
	return it
}

// Sub returns a copy of the iterator moved n positions back.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.index -= n
	return it
}

// Distance returns the number of positions from from to it, so that
// b.End().Distance(b.Begin()) == b.Len().
func (it Iterator[T]) Distance(from Iterator[T]) int {
	return it.index - from.index
}

// Index returns the iterator's logical offset.
func (it Iterator[T]) Index() int {
	return it.index
}

// Valid reports whether the iterator can be dereferenced.
func (it Iterator[T]) Valid() bool {
	return it.valid()
}

// Equal reports whether both iterators walk the same buffer in the same
// direction and sit at the same offset.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.equal(o.cursor)
}

// Compare orders iterators by logical offset.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	return it.compare(o.cursor)
}

// Less reports whether it is before o.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	return it.index < o.index
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}

// --- Read-only iterator ---

// ConstIterator is an Iterator that cannot modify the buffer.
type ConstIterator[T any] struct {
	cursor[T]
}

// CBegin returns a read-only iterator at the oldest element.
func (b *Buffer[T]) CBegin() ConstIterator[T] {
	return b.Begin().Const()
}

// CEnd returns a read-only iterator one past the newest element.
func (b *Buffer[T]) CEnd() ConstIterator[T] {
	return b.End().Const()
}

// CRBegin returns a read-only reverse iterator at the newest element.
func (b *Buffer[T]) CRBegin() ConstIterator[T] {
	return b.RBegin().Const()
}

// CREnd returns a read-only reverse iterator one past the oldest element.
func (b *Buffer[T]) CREnd() ConstIterator[T] {
	return b.REnd().Const()
}

func (it ConstIterator[T]) Value() T {
	return it.buf.data[it.slot()]
}

func (it ConstIterator[T]) At(n int) T {
	return it.Add(n).Value()
}

func (it *ConstIterator[T]) Next() {
	it.index++
}

func (it *ConstIterator[T]) Prev() {
	it.index--
}

func (it *ConstIterator[T]) Advance(n int) {
	it.index += n
}

func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.index += n
	return it
}

func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	it.index -= n
	return it
}

func (it ConstIterator[T]) Distance(from ConstIterator[T]) int {
	return it.index - from.index
}

func (it ConstIterator[T]) Index() int {
	return it.index
}

func (it ConstIterator[T]) Valid() bool {
	return it.valid()
}

func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	return it.equal(o.cursor)
}

func (it ConstIterator[T]) Compare(o ConstIterator[T]) int {
	return it.compare(o.cursor)
}

func (it ConstIterator[T]) Less(o ConstIterator[T]) bool {
	return it.index < o.index
}
