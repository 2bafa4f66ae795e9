package memseq

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/memseq-go/memseq/bimap"
)

// Hooks are optional callbacks fired synchronously by a SubstitutingSequence
// at the documented points. A nil field is a no-op. Hooks must not mutate the
// sequence they observe, with one exception: OnInserting may register
// substitution rules (e.g. lazily decide the replacement of an element the
// first time it is inserted).
type Hooks[T any] struct {
	// OnInserting is fired with the original element at the start of every
	// element-accepting mutation, before the substitution table is consulted.
	OnInserting func(element T)

	// OnReplacing is fired whenever an element is written in substituted
	// form, either at insertion time or during a sweep.
	OnReplacing func(original, replacement T)

	// OnRemoved is fired after an element has actually been removed from the
	// backing sequence, with the removed (possibly substituted) value.
	OnRemoved func(element T)
}

type SubstitutingSequenceConfig[T any] struct {
	Hooks  Hooks[T]
	Logger zerolog.Logger //ok if not set
}

// SubstitutingSequence is a thread unsafe sequence that wraps a backing
// Sequence while automatically replacing one element with another, according
// to a revertible substitution table. Callers unaware of the substitution
// feature see a normal mutable sequence.
//
// At any time every element stored in the backing sequence is either an
// element no active rule targets, or the replacement value of an active
// rule - never the target value of an active rule: insertions rewrite
// targets before storage and AddMapping sweeps already-present targets.
//
// The substitution lifecycle methods (AddMapping, AddMappingNoSweep,
// RemoveMapping, RevertAll, Replacement, Original, Close) serialize against
// each other; per-element mutations are not guarded and require external
// synchronization when used concurrently (see TSSubstitutingSequence).
type SubstitutingSequence[T comparable] struct {
	seq           Sequence[T]
	substitutions *bimap.Map[T, T]
	hooks         Hooks[T]
	logger        zerolog.Logger

	lock sync.Mutex // guards the substitution lifecycle only
}

func NewSubstitutingSequence[T comparable](seq Sequence[T]) *SubstitutingSequence[T] {
	return NewSubstitutingSequenceWithConfig(seq, SubstitutingSequenceConfig[T]{})
}

func NewSubstitutingSequenceWithConfig[T comparable](seq Sequence[T], config SubstitutingSequenceConfig[T]) *SubstitutingSequence[T] {
	return &SubstitutingSequence[T]{
		seq:           seq,
		substitutions: bimap.New[T, T](),
		hooks:         config.Hooks,
		logger:        config.Logger,
	}
}

// Append adds an element to the end of the sequence, writing its replacement
// instead if a substitution rule targets it.
func (s *SubstitutingSequence[T]) Append(element T) {
	s.fireInserting(element)

	if replacement, ok := s.substitutions.Get(element); ok {
		s.fireReplacing(element, replacement)
		s.seq.Append(replacement)
	} else {
		s.seq.Append(element)
	}
}

// AppendAll appends zero or more elements, one at a time, in order.
func (s *SubstitutingSequence[T]) AppendAll(elements ...T) {
	for _, element := range elements {
		s.Append(element)
	}
}

// Insert inserts an element at index i, writing its replacement instead if a
// substitution rule targets it. It panics with ErrInsertionIndexOutOfRange
// if i is greater than Len() or negative.
func (s *SubstitutingSequence[T]) Insert(i int, element T) {
	s.fireInserting(element)

	if replacement, ok := s.substitutions.Get(element); ok {
		s.fireReplacing(element, replacement)
		s.seq.Insert(i, replacement)
	} else {
		s.seq.Insert(i, element)
	}
}

// InsertAll inserts zero or more elements starting at index i, one at a
// time, in order.
func (s *SubstitutingSequence[T]) InsertAll(i int, elements ...T) {
	for _, element := range elements {
		s.Insert(i, element)
		i++
	}
}

// SetAt writes an element at index i (substituted if a rule targets it) and
// returns the previous element. It panics with ErrIndexOutOfRange if i is
// out of range.
func (s *SubstitutingSequence[T]) SetAt(i int, element T) T {
	s.fireInserting(element)

	if replacement, ok := s.substitutions.Get(element); ok {
		s.fireReplacing(element, replacement)
		return s.seq.Set(i, replacement)
	}
	return s.seq.Set(i, element)
}

// Remove removes the first occurrence of value from the backing sequence.
// The returned boolean is false if the value was not present, in which case
// no hook is fired.
func (s *SubstitutingSequence[T]) Remove(value T) bool {
	i := s.IndexOf(value)
	if i < 0 {
		return false
	}

	removed := s.seq.RemoveAt(i)
	s.fireRemoved(removed)
	return true
}

// RemoveAt removes and returns the element at index i, firing OnRemoved with
// the removed value. It panics with ErrIndexOutOfRange if i is out of range.
func (s *SubstitutingSequence[T]) RemoveAt(i int) T {
	removed := s.seq.RemoveAt(i)
	s.fireRemoved(removed)
	return removed
}

// RemoveAll removes the first occurrence of each listed value, one at a
// time. The returned boolean is false if the sequence was left unchanged.
func (s *SubstitutingSequence[T]) RemoveAll(values ...T) bool {
	changed := false
	for _, value := range values {
		if s.Remove(value) {
			changed = true
		}
	}
	return changed
}

// RetainOnly removes every element not present in values, preserving the
// relative order of the kept elements and firing OnRemoved for each dropped
// element. The scan is single-pass. The returned boolean is false if the
// sequence was left unchanged.
func (s *SubstitutingSequence[T]) RetainOnly(values ...T) bool {
	keepSet := make(map[T]struct{}, len(values))
	for _, value := range values {
		keepSet[value] = struct{}{}
	}

	elements := s.Values()
	writeIndex := 0
	var removed []T

	for _, element := range elements {
		if _, ok := keepSet[element]; ok {
			s.seq.Set(writeIndex, element)
			writeIndex++
		} else {
			removed = append(removed, element)
		}
	}

	//drop the tail left over by the compaction, last element first so that
	//each removal is O(1).
	for i := len(elements) - 1; i >= writeIndex; i-- {
		s.seq.RemoveAt(i)
	}

	for _, element := range removed {
		s.fireRemoved(element)
	}

	return len(removed) > 0
}

// Clear empties the backing sequence. No hooks are fired.
func (s *SubstitutingSequence[T]) Clear() {
	for i := s.seq.Len() - 1; i >= 0; i-- {
		s.seq.RemoveAt(i)
	}
}

func (s *SubstitutingSequence[T]) Len() int {
	return s.seq.Len()
}

func (s *SubstitutingSequence[T]) IsEmpty() bool {
	return s.seq.Len() == 0
}

// At returns the element at index i. Reads never consult the substitution
// table: an already-substituted element is the value returned.
func (s *SubstitutingSequence[T]) At(i int) T {
	return s.seq.At(i)
}

// IndexOf returns the index of the first occurrence of value, or -1 if the
// value is not present.
func (s *SubstitutingSequence[T]) IndexOf(value T) int {
	for i := 0; i < s.seq.Len(); i++ {
		if s.seq.At(i) == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1 if
// the value is not present.
func (s *SubstitutingSequence[T]) LastIndexOf(value T) int {
	for i := s.seq.Len() - 1; i >= 0; i-- {
		if s.seq.At(i) == value {
			return i
		}
	}
	return -1
}

func (s *SubstitutingSequence[T]) Contains(value T) bool {
	return s.IndexOf(value) >= 0
}

func (s *SubstitutingSequence[T]) ContainsAll(values ...T) bool {
	for _, value := range values {
		if !s.Contains(value) {
			return false
		}
	}
	return true
}

func (s *SubstitutingSequence[T]) ForEachElem(fn func(i int, e T) error) error {
	return s.seq.ForEachElem(fn)
}

// Values returns a snapshot of the stored elements.
func (s *SubstitutingSequence[T]) Values() []T {
	values := make([]T, s.seq.Len())
	for i := range values {
		values[i] = s.seq.At(i)
	}
	return values
}

// Subrange returns a snapshot of the elements in [start, end). It panics
// with ErrInvalidSubrange if the range is not valid.
func (s *SubstitutingSequence[T]) Subrange(start, end int) []T {
	if start < 0 || end < start || end > s.seq.Len() {
		panic(ErrInvalidSubrange)
	}

	sub := make([]T, end-start)
	for i := range sub {
		sub[i] = s.seq.At(start + i)
	}
	return sub
}
