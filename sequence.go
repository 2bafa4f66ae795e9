// Package memseq implements in-memory ordered sequence containers, the main
// one being SubstitutingSequence: a sequence that transparently rewrites
// elements according to a revertible substitution table.
package memseq

import (
	"errors"

	"github.com/memseq-go/memseq/internal/utils"
)

const (
	SEQUENCE_SHRINK_DIVIDER        = 2
	MIN_SHRINKABLE_SEQUENCE_LENGTH = 10 * SEQUENCE_SHRINK_DIVIDER
)

var (
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrInsertionIndexOutOfRange = errors.New("insertion index out of range")
	ErrInvalidSubrange          = errors.New("invalid subrange")
)

// Sequence is the contract a backing store has to implement in order to be
// wrapped by a SubstitutingSequence: index-based get/set, append, insert-at,
// remove-at, size and iteration. Implementations are not required to be
// thread safe.
type Sequence[T any] interface {
	Len() int

	// At returns the element at index i, it panics with ErrIndexOutOfRange
	// if i is out of range.
	At(i int) T

	// Set writes v at index i and returns the previous element, it panics
	// with ErrIndexOutOfRange if i is out of range.
	Set(i int, v T) T

	Append(v T)

	// Insert inserts v at index i, it panics with ErrInsertionIndexOutOfRange
	// if i is greater than Len() or negative.
	Insert(i int, v T)

	// RemoveAt removes and returns the element at index i, it panics with
	// ErrIndexOutOfRange if i is out of range.
	RemoveAt(i int) T

	ForEachElem(fn func(i int, e T) error) error
}

// SliceSequence is a thread unsafe, slice-backed Sequence implementation.
// The backing slice may be shared with the calling context (see WrapSlice),
// in which case all mutations are visible to both holders.
type SliceSequence[T any] struct {
	elements *[]T
}

func NewSliceSequence[T any](elements ...T) *SliceSequence[T] {
	return &SliceSequence[T]{elements: &elements}
}

// WrapSlice returns a SliceSequence that shares target as its backing
// storage: mutations performed through the sequence remain visible through
// the caller's pointer. The slice is never copied.
func WrapSlice[T any](target *[]T) *SliceSequence[T] {
	return &SliceSequence[T]{elements: target}
}

func (s *SliceSequence[T]) Len() int {
	return len(*s.elements)
}

func (s *SliceSequence[T]) At(i int) T {
	if i < 0 || i >= len(*s.elements) {
		panic(ErrIndexOutOfRange)
	}
	return (*s.elements)[i]
}

func (s *SliceSequence[T]) Set(i int, v T) T {
	if i < 0 || i >= len(*s.elements) {
		panic(ErrIndexOutOfRange)
	}
	prev := (*s.elements)[i]
	(*s.elements)[i] = v
	return prev
}

func (s *SliceSequence[T]) Append(v T) {
	*s.elements = append(*s.elements, v)
}

func (s *SliceSequence[T]) Insert(i int, v T) {
	length := len(*s.elements)
	if i < 0 || i > length {
		panic(ErrInsertionIndexOutOfRange)
	}
	if i == length {
		*s.elements = append(*s.elements, v)
	} else {
		var zero T
		*s.elements = append(*s.elements, zero)
		copy((*s.elements)[i+1:], (*s.elements)[i:])
		(*s.elements)[i] = v
	}
}

func (s *SliceSequence[T]) RemoveAt(i int) T {
	if i < 0 || i >= len(*s.elements) {
		panic(ErrIndexOutOfRange)
	}
	removed := (*s.elements)[i]

	if i != len(*s.elements)-1 {
		copy((*s.elements)[i:], (*s.elements)[i+1:])
	}
	var zero T
	(*s.elements)[len(*s.elements)-1] = zero
	*s.elements = (*s.elements)[:len(*s.elements)-1]
	*s.elements = utils.ShrinkSliceIfWastedCapacity(*s.elements, MIN_SHRINKABLE_SEQUENCE_LENGTH, SEQUENCE_SHRINK_DIVIDER)

	return removed
}

func (s *SliceSequence[T]) ForEachElem(fn func(i int, e T) error) error {
	for i, e := range *s.elements {
		err := fn(i, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// Values returns a copy of the backing slice.
func (s *SliceSequence[T]) Values() []T {
	return utils.CopySlice(*s.elements)
}
