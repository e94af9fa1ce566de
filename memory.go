package iterman

// Memory returns a list iterator over an already materialized sequence.
// The iterator stops permanently once the last element was consumed.
func Memory[T any](vs []T) *MemoryList[T] {
	return &MemoryList[T]{vs: vs}
}

// MemoryRoundRobin returns a list iterator over an already materialized sequence,
// that wraps back to the first element after the last one, and thus never runs out of values.
// An empty sequence is the exception: iterating it reports exhaustion instead of looping.
func MemoryRoundRobin[T any](vs []T) *MemoryList[T] {
	return &MemoryList[T]{vs: vs, roundRobin: true}
}

// MemoryList is an Iterator over an in-memory sequence.
// Cycling costs nothing here but index arithmetic,
// which is why round-robin needs no support from the data itself,
// unlike with BufferList where the source must be rewindable.
type MemoryList[T any] struct {
	vs         []T
	roundRobin bool

	index  int
	closed bool
	value  T
}

func (l *MemoryList[T]) Close() error {
	l.closed = true
	return nil
}

func (l *MemoryList[T]) Err() error {
	return nil
}

func (l *MemoryList[T]) Next() bool {
	if l.closed {
		return false
	}

	if l.roundRobin && len(l.vs) <= l.index {
		l.index = 0
	}

	if len(l.vs) <= l.index {
		return false
	}

	l.value = l.vs[l.index]
	l.index++
	return true
}

func (l *MemoryList[T]) Value() T {
	return l.value
}

// Seek moves the cursor so that the next pull returns the element at the given index.
func (l *MemoryList[T]) Seek(index int) error {
	if index < 0 || len(l.vs) <= index {
		return ErrOutOfBounds.F("invalid index %d, expected at most %d", index, len(l.vs))
	}
	l.index = index
	return nil
}

// Index tells the position of the cursor, the index of the element the next pull will return.
func (l *MemoryList[T]) Index() int {
	return l.index
}
