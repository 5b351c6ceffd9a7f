/*
Package circbuf provides a generic, fixed-capacity circular buffer that keeps
elements in FIFO order and overwrites its oldest element once it is full.

The buffer is built with Go Generics. Its capacity is chosen at construction
and never changes: storage for every slot is allocated once, and pushing onto a
full buffer silently discards the oldest element instead of growing or
failing. There is no reject-when-full policy.

Key Features:

  - Overwrite-on-full: PushBack never fails and never allocates. On a full
    buffer the oldest element is destroyed and its slot reused.

  - Element lifetime hooks: an element is "destroyed" when it is overwritten,
    replaced by Set, or still live on Clear or Close. Destroying runs the
    WithCleanup function, or Cleanup() for elements implementing Cleanable,
    and zeroes the slot. PopFront hands the element to the caller instead.

  - Value semantics: Clone and CopyFrom duplicate the logical sequence
    (through WithCopy or the Cloneable interface when elements own resources),
    Move and MoveFrom transfer it and leave the source empty.

  - Random-access iterators: Begin/End, RBegin/REnd and their read-only
    C-prefixed variants map a logical offset to a physical slot only when
    dereferenced, so iterator arithmetic never wraps early.

  - Comparison: Equal, Compare and their Func variants compare logical
    sequences lexicographically, across buffers of different capacity.

Example: Basic Usage

	b := circbuf.New[int](2)
	b.PushBack(42)
	b.PushBack(43)
	b.PushBack(44) // 42 is discarded

	fmt.Println(b.Front(), b.Back(), b.Len()) // 43 44 2
	fmt.Println(b.PopFront())                 // 43

Example: Iteration

	for it := b.Begin(); !it.Equal(b.End()); it.Next() {
		fmt.Println(it.Value())
	}

	// or, with range-over-func
	for i, v := range b.All() {
		fmt.Println(i, v)
	}

Example: Elements Owning Resources

	type Frame struct{ pixels []byte }
	func (f *Frame) Cleanup() { pool.Put(f.pixels) }

	frames := circbuf.New[*Frame](30)
	defer frames.Close() // cleans up whatever is still buffered

Unchecked Access:

Front, Back, At, Ref, PopFront and iterator dereferencing do not check that
the buffer is non-empty or that the logical index is within [0, Len()).
Violating these preconditions returns an unspecified element or panics.
Capacity must be positive; New panics otherwise.

Concurrency and Iterator Invalidation:

A Buffer is not safe for concurrent use; callers that share one across
goroutines must synchronize access themselves. Iterators hold a pointer to
their buffer and a logical offset. PushBack on a full buffer, PopFront, Clear
and Close shift or drop logical positions, so iterators taken before such a
change no longer point at the element they did.
*/
package circbuf
