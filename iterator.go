package memseq

// SeqIterator iterates over a snapshot of a sequence's elements, in both
// directions. The cursor sits between elements: Next yields the element
// after the cursor, Prev yields the element before it. Mutations of the
// sequence performed after the iterator was created are not reflected.
type SeqIterator[T any] struct {
	cursor   int // position between elements, in [0, len]
	index    int // index of the element yielded by the last Next or Prev
	elements []T
}

// Iterator returns an iterator positioned before the first element.
func (s *SubstitutingSequence[T]) Iterator() *SeqIterator[T] {
	return s.IteratorAt(0)
}

// IteratorAt returns an iterator whose cursor sits just before the element
// at index i: the first call to Next yields the element at i, the first
// call to Prev yields the element at i-1. Passing Len() positions the
// cursor after the last element, for backward traversal. IteratorAt panics
// with ErrIndexOutOfRange if i is negative or greater than Len().
func (s *SubstitutingSequence[T]) IteratorAt(i int) *SeqIterator[T] {
	if i < 0 || i > s.seq.Len() {
		panic(ErrIndexOutOfRange)
	}
	return &SeqIterator[T]{
		cursor:   i,
		index:    -1,
		elements: s.Values(),
	}
}

func (it *SeqIterator[T]) Next() bool {
	if it.cursor >= len(it.elements) {
		return false
	}
	it.index = it.cursor
	it.cursor++
	return true
}

func (it *SeqIterator[T]) Prev() bool {
	if it.cursor <= 0 {
		return false
	}
	it.cursor--
	it.index = it.cursor
	return true
}

// Value returns the element yielded by the last successful Next or Prev
// call.
func (it *SeqIterator[T]) Value() T {
	return it.elements[it.index]
}

// Index returns the index of the element yielded by the last successful
// Next or Prev call.
func (it *SeqIterator[T]) Index() int {
	return it.index
}
