package memseq

import (
	"sync"
)

// TSSubstitutingSequence is a thread safe substituting sequence: every
// operation, per-element mutations included, runs under a single
// reader-writer lock scoped to the instance. This is a deliberate
// strengthening over SubstitutingSequence, which only serializes the
// substitution lifecycle.
//
// The backing sequence is owned privately, since external mutation would
// bypass the lock. Hooks run while the lock is held and must not call back
// into this sequence: register rules with AddMappingNoSweep ahead of time
// instead of lazily from OnInserting.
type TSSubstitutingSequence[T comparable] struct {
	inner *SubstitutingSequence[T]
	lock  sync.RWMutex
}

func NewTSSubstitutingSequence[T comparable](elements ...T) *TSSubstitutingSequence[T] {
	return NewTSSubstitutingSequenceWithConfig(SubstitutingSequenceConfig[T]{}, elements...)
}

func NewTSSubstitutingSequenceWithConfig[T comparable](config SubstitutingSequenceConfig[T], elements ...T) *TSSubstitutingSequence[T] {
	return &TSSubstitutingSequence[T]{
		inner: NewSubstitutingSequenceWithConfig[T](NewSliceSequence(elements...), config),
	}
}

func (s *TSSubstitutingSequence[T]) Append(element T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.Append(element)
}

func (s *TSSubstitutingSequence[T]) AppendAll(elements ...T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, element := range elements {
		s.inner.Append(element)
	}
}

func (s *TSSubstitutingSequence[T]) Insert(i int, element T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.Insert(i, element)
}

func (s *TSSubstitutingSequence[T]) InsertAll(i int, elements ...T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.InsertAll(i, elements...)
}

func (s *TSSubstitutingSequence[T]) SetAt(i int, element T) T {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.SetAt(i, element)
}

func (s *TSSubstitutingSequence[T]) Remove(value T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.Remove(value)
}

func (s *TSSubstitutingSequence[T]) RemoveAt(i int) T {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.RemoveAt(i)
}

func (s *TSSubstitutingSequence[T]) RemoveAll(values ...T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.RemoveAll(values...)
}

func (s *TSSubstitutingSequence[T]) RetainOnly(values ...T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.RetainOnly(values...)
}

func (s *TSSubstitutingSequence[T]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.Clear()
}

func (s *TSSubstitutingSequence[T]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.Len()
}

func (s *TSSubstitutingSequence[T]) IsEmpty() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.IsEmpty()
}

func (s *TSSubstitutingSequence[T]) At(i int) T {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.At(i)
}

func (s *TSSubstitutingSequence[T]) IndexOf(value T) int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.IndexOf(value)
}

func (s *TSSubstitutingSequence[T]) LastIndexOf(value T) int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.LastIndexOf(value)
}

func (s *TSSubstitutingSequence[T]) Contains(value T) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.Contains(value)
}

func (s *TSSubstitutingSequence[T]) ContainsAll(values ...T) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.ContainsAll(values...)
}

// Values returns a snapshot of the stored elements.
func (s *TSSubstitutingSequence[T]) Values() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.Values()
}

func (s *TSSubstitutingSequence[T]) Subrange(start, end int) []T {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.Subrange(start, end)
}

// Iterator returns a snapshot iterator positioned before the first element.
func (s *TSSubstitutingSequence[T]) Iterator() *SeqIterator[T] {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.Iterator()
}

func (s *TSSubstitutingSequence[T]) IteratorAt(i int) *SeqIterator[T] {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.IteratorAt(i)
}

func (s *TSSubstitutingSequence[T]) AddMapping(target, replacement T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.addMappingNoLock(target, replacement, true)
}

func (s *TSSubstitutingSequence[T]) AddMappingNoSweep(target, replacement T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.addMappingNoLock(target, replacement, false)
}

func (s *TSSubstitutingSequence[T]) RemoveMapping(target T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.removeMappingNoLock(target)
}

func (s *TSSubstitutingSequence[T]) RevertAll() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.revertAllNoLock()
}

// Close reverts all substitutions, see (*SubstitutingSequence).Close.
func (s *TSSubstitutingSequence[T]) Close() {
	s.RevertAll()
}

func (s *TSSubstitutingSequence[T]) Replacement(target T) (T, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.substitutions.Get(target)
}

func (s *TSSubstitutingSequence[T]) Original(replacement T) (T, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.substitutions.GetByValue(replacement)
}

func (s *TSSubstitutingSequence[T]) MappingCount() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.substitutions.Len()
}
