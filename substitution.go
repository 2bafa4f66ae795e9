package memseq

// AddMapping registers (or overwrites) the substitution rule
// (target, replacement) and immediately sweeps the backing sequence,
// rewriting every stored occurrence of target into replacement and firing
// OnReplacing for each rewrite. Elements previously substituted under an
// overwritten rule are left as stored.
func (s *SubstitutingSequence[T]) AddMapping(target, replacement T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.addMappingNoLock(target, replacement, true)
}

// AddMappingNoSweep does the same as AddMapping but leaves already-present
// occurrences of target untouched; only future insertions are rewritten.
func (s *SubstitutingSequence[T]) AddMappingNoSweep(target, replacement T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.addMappingNoLock(target, replacement, false)
}

func (s *SubstitutingSequence[T]) addMappingNoLock(target, replacement T, sweepExisting bool) {
	s.substitutions.Set(target, replacement)

	rewritten := 0
	if sweepExisting {
		rewritten = s.replaceAllNoLock(target, replacement)
	}

	s.logger.Debug().
		Bool("swept", sweepExisting).
		Int("rewritten", rewritten).
		Int("ruleCount", s.substitutions.Len()).
		Msg("substitution rule added")
}

// RemoveMapping revokes the rule registered for target, sweeping the backing
// sequence to rewrite every stored occurrence of the rule's replacement back
// to target. It is a no-op if no rule is registered for target.
func (s *SubstitutingSequence[T]) RemoveMapping(target T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.removeMappingNoLock(target)
}

func (s *SubstitutingSequence[T]) removeMappingNoLock(target T) {
	replacement, ok := s.substitutions.Get(target)
	if !ok {
		return
	}

	s.substitutions.DeleteByKey(target)
	restored := s.replaceAllNoLock(replacement, target)

	s.logger.Debug().
		Int("restored", restored).
		Int("ruleCount", s.substitutions.Len()).
		Msg("substitution rule removed")
}

// RevertAll rewrites every stored element that is the replacement value of
// an active rule back to the rule's target, then clears the table. The
// backing sequence is left as if no substitution had ever been applied.
// Calling RevertAll on an empty table is a no-op, so the method is
// idempotent.
func (s *SubstitutingSequence[T]) RevertAll() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.revertAllNoLock()
}

func (s *SubstitutingSequence[T]) revertAllNoLock() {
	if s.substitutions.Len() == 0 {
		return
	}

	restored := 0
	for i := 0; i < s.seq.Len(); i++ {
		replaced := s.seq.At(i)

		if original, ok := s.substitutions.GetByValue(replaced); ok {
			s.fireReplacing(replaced, original)
			s.seq.Set(i, original)
			restored++
		}
	}

	s.substitutions.Clear()

	s.logger.Debug().
		Int("restored", restored).
		Msg("all substitutions reverted")
}

// Close reverts all substitutions, leaving the backing sequence in an
// unsubstituted state so its ownership can safely be handed back to the
// original owner. Intended to be deferred by the owning scope.
func (s *SubstitutingSequence[T]) Close() {
	s.RevertAll()
}

// Replacement returns the replacement registered for target, if any.
func (s *SubstitutingSequence[T]) Replacement(target T) (T, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.substitutions.Get(target)
}

// Original returns the target whose registered replacement is replacement,
// if any.
func (s *SubstitutingSequence[T]) Original(replacement T) (T, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.substitutions.GetByValue(replacement)
}

// MappingCount returns the number of active substitution rules.
func (s *SubstitutingSequence[T]) MappingCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.substitutions.Len()
}

// replaceAllNoLock rewrites every stored element equal to find into replace,
// firing OnReplacing for each rewrite, and returns the rewrite count.
// Comparisons use value equality, so duplicates are all affected.
func (s *SubstitutingSequence[T]) replaceAllNoLock(find, replace T) int {
	count := 0
	for i := 0; i < s.seq.Len(); i++ {
		if s.seq.At(i) == find {
			s.fireReplacing(find, replace)
			s.seq.Set(i, replace)
			count++
		}
	}
	return count
}

func (s *SubstitutingSequence[T]) fireInserting(element T) {
	if s.hooks.OnInserting != nil {
		s.hooks.OnInserting(element)
	}
}

func (s *SubstitutingSequence[T]) fireReplacing(original, replacement T) {
	if s.hooks.OnReplacing != nil {
		s.hooks.OnReplacing(original, replacement)
	}
}

func (s *SubstitutingSequence[T]) fireRemoved(element T) {
	if s.hooks.OnRemoved != nil {
		s.hooks.OnRemoved(element)
	}
}
