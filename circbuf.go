package circbuf

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// --- Options ---

// options holds the configuration for a Buffer.
type options[T any] struct {
	cleanup func(T)
	copy    func(T) T
}

// Option is a function that configures a Buffer's options.
type Option[T any] func(*options[T])

// WithCleanup sets the function called for every element the buffer destroys:
// elements overwritten by PushBack on a full buffer, replaced by Set, or still
// live on Clear and Close. It takes precedence over the Cleanable interface.
func WithCleanup[T any](fn func(T)) Option[T] {
	return func(o *options[T]) {
		o.cleanup = fn
	}
}

// WithCopy sets the function used to duplicate elements in Clone and CopyFrom.
// It takes precedence over the Cloneable interface.
func WithCopy[T any](fn func(T) T) Option[T] {
	return func(o *options[T]) {
		o.copy = fn
	}
}

// --- Interfaces ---

// Cleanable is an optional interface for elements that own resources which
// must be released when the buffer destroys them.
type Cleanable interface {
	Cleanup()
}

// Cloneable is an optional interface for elements that define how they should
// be duplicated when a buffer is copied.
type Cloneable[T any] interface {
	Clone() T
}

// --- Buffer Implementation ---

// Buffer is a fixed-capacity circular buffer. Elements are kept in FIFO order
// and PushBack on a full buffer discards the oldest element.
//
// Buffer is not safe for concurrent use. Accessors such as Front, At and the
// iterator dereference methods are unchecked: calling them on an empty buffer
// or with a logical index outside [0, Len()) yields an unspecified element or
// panics.
type Buffer[T any] struct {
	data []T
	cap  int
	size int
	head int
	tail int
	opts options[T]
}

// New creates an empty Buffer holding at most capacity elements.
// It panics if capacity is not positive.
func New[T any](capacity int, opts ...Option[T]) *Buffer[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("circbuf: capacity must be positive, got %d", capacity))
	}
	var cfg options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Buffer[T]{
		data: make([]T, capacity),
		cap:  capacity,
		opts: cfg,
	}
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer[T]) Cap() int {
	return b.cap
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.size == 0
}

// Full reports whether the next PushBack will overwrite the oldest element.
func (b *Buffer[T]) Full() bool {
	return b.size == b.cap
}

// Clear destroys every live element and leaves the buffer empty.
func (b *Buffer[T]) Clear() {
	b.destruct()
	b.reset()
}

// Close destroys every live element and releases the storage. A closed buffer
// must not be used again except for further calls to Close, which are no-ops.
func (b *Buffer[T]) Close() {
	if b.data == nil {
		return
	}
	b.destruct()
	b.reset()
	b.data = nil
}

// Front returns the oldest element.
func (b *Buffer[T]) Front() T {
	return b.data[b.head]
}

// FrontRef returns a pointer to the oldest element's slot.
func (b *Buffer[T]) FrontRef() *T {
	return &b.data[b.head]
}

// Back returns the newest element.
func (b *Buffer[T]) Back() T {
	return b.data[b.tail]
}

// BackRef returns a pointer to the newest element's slot.
func (b *Buffer[T]) BackRef() *T {
	return &b.data[b.tail]
}

// At returns the element at logical index i, counted from the oldest.
func (b *Buffer[T]) At(i int) T {
	return b.data[b.slot(i)]
}

// Ref returns a pointer to the slot holding logical index i. The pointer
// refers to storage, not to the element: once the element is popped or
// overwritten the slot holds something else.
func (b *Buffer[T]) Ref(i int) *T {
	return &b.data[b.slot(i)]
}

// Set replaces the element at logical index i, destroying the previous one.
func (b *Buffer[T]) Set(i int, v T) {
	p := b.slot(i)
	b.destroy(b.data[p])
	b.data[p] = v
}

// Swap exchanges the elements at logical indexes i and j without destroying
// either of them.
func (b *Buffer[T]) Swap(i, j int) {
	pi, pj := b.slot(i), b.slot(j)
	b.data[pi], b.data[pj] = b.data[pj], b.data[pi]
}

// PushBack appends v as the newest element. On a full buffer the oldest
// element is destroyed and its slot reused, so Len stays at Cap.
func (b *Buffer[T]) PushBack(v T) {
	switch {
	case b.size == 0:
		b.size = 1
	case b.size == b.cap:
		b.destroy(b.data[b.head])
		b.head = b.next(b.head)
		b.tail = b.next(b.tail)
	default:
		b.tail = b.next(b.tail)
		b.size++
	}
	b.data[b.tail] = v
}

// Emplace constructs a new element with ctor and appends it. If ctor fails the
// buffer is left untouched and the error is returned.
func (b *Buffer[T]) Emplace(ctor func() (T, error)) error {
	v, err := ctor()
	if err != nil {
		return errors.Wrap(err, "circbuf: construct element")
	}
	b.PushBack(v)
	return nil
}

// PopFront removes and returns the oldest element. Ownership passes to the
// caller, so the element is not cleaned up.
func (b *Buffer[T]) PopFront() T {
	var zero T
	v := b.data[b.head]
	b.data[b.head] = zero
	b.size--
	if b.size == 0 {
		b.reset()
		return v
	}
	b.head = b.next(b.head)
	return v
}

// Clone returns an independent buffer with the same capacity, options and
// logical sequence. Elements are duplicated with the WithCopy function, the
// Cloneable interface, or plain assignment, in that order of preference.
// The copy is laid out starting at physical slot 0.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := b.newLike()
	for i := 0; i < b.size; i++ {
		c.PushBack(b.duplicate(b.At(i)))
	}
	return c
}

// CloneFunc is like Clone but duplicates elements with fn. If fn fails, the
// elements copied so far are destroyed and the error is returned.
func (b *Buffer[T]) CloneFunc(fn func(T) (T, error)) (*Buffer[T], error) {
	c := b.newLike()
	for i := 0; i < b.size; i++ {
		v, err := fn(b.At(i))
		if err != nil {
			c.Close()
			return nil, errors.Wrapf(err, "circbuf: copy element %d", i)
		}
		c.PushBack(v)
	}
	return c, nil
}

// CopyFrom replaces the contents of b with copies of src's elements in logical
// order. If src holds more elements than b can, only the newest Cap() remain.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Clear()
	for i := 0; i < src.size; i++ {
		b.PushBack(src.duplicate(src.At(i)))
	}
}

// Move returns a buffer that takes over b's storage and elements. b is left
// empty and usable with fresh storage of the same capacity.
func (b *Buffer[T]) Move() *Buffer[T] {
	m := &Buffer[T]{
		data: b.data,
		cap:  b.cap,
		size: b.size,
		head: b.head,
		tail: b.tail,
		opts: b.opts,
	}
	b.data = make([]T, b.cap)
	b.reset()
	return m
}

// MoveFrom destroys the contents of b and takes over src's elements, leaving
// src empty. Storage is exchanged when both capacities match; otherwise the
// elements are moved one by one in logical order.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Clear()
	if b.cap == src.cap {
		b.data, src.data = src.data, b.data
		b.size, b.head, b.tail = src.size, src.head, src.tail
		src.reset()
		return
	}
	for !src.Empty() {
		b.PushBack(src.PopFront())
	}
}

// Slice returns the live elements in logical order in a new slice.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// All returns an iterator over logical indexes and elements, oldest first.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, oldest first.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over logical indexes and elements, newest first.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.size - 1; i >= 0; i-- {
			if !yield(i, b.At(i)) {
				return
			}
		}
	}
}

// String formats the live elements in logical order, e.g. "[43 44]/2".
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < b.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, b.At(i))
	}
	fmt.Fprintf(&sb, "]/%d", b.cap)
	return sb.String()
}

// --- Internal helpers ---

func (b *Buffer[T]) slot(i int) int {
	return (b.head + i) % b.cap
}

func (b *Buffer[T]) next(p int) int {
	return (p + 1) % b.cap
}

func (b *Buffer[T]) reset() {
	b.size = 0
	b.head = 0
	b.tail = 0
}

// newLike returns an empty buffer with b's capacity and options.
func (b *Buffer[T]) newLike() *Buffer[T] {
	return &Buffer[T]{
		data: make([]T, b.cap),
		cap:  b.cap,
		opts: b.opts,
	}
}

// destruct destroys exactly the live slots and zeroes them.
func (b *Buffer[T]) destruct() {
	var zero T
	for i := 0; i < b.size; i++ {
		p := b.slot(i)
		b.destroy(b.data[p])
		b.data[p] = zero
	}
}

func (b *Buffer[T]) destroy(v T) {
	if b.opts.cleanup != nil {
		b.opts.cleanup(v)
		return
	}
	if c, ok := any(v).(Cleanable); ok {
		c.Cleanup()
	}
}

func (b *Buffer[T]) duplicate(v T) T {
	if b.opts.copy != nil {
		return b.opts.copy(v)
	}
	if c, ok := any(v).(Cloneable[T]); ok {
		return c.Clone()
	}
	return v
}
