package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopySlice(t *testing.T) {
	s := []int{1, 2, 3}
	sliceCopy := CopySlice(s)

	sliceCopy[0] = 100
	assert.Equal(t, []int{1, 2, 3}, s)
	assert.Equal(t, []int{100, 2, 3}, sliceCopy)
}

func TestReversedSlice(t *testing.T) {
	s := []int{1, 2, 3}

	assert.Equal(t, []int{3, 2, 1}, ReversedSlice(s))
	assert.Equal(t, []int{1, 2, 3}, s)

	assert.Equal(t, []int{}, ReversedSlice([]int{}))
}

func TestShrinkSliceIfWastedCapacity(t *testing.T) {
	t.Run("wasted capacity", func(t *testing.T) {
		s := make([]int, 20, 100)
		for i := range s {
			s[i] = i
		}

		shrunk := ShrinkSliceIfWastedCapacity(s, 20, 2)

		assert.Equal(t, s, shrunk)
		assert.Equal(t, 50, cap(shrunk))
	})

	t.Run("too short to shrink", func(t *testing.T) {
		s := make([]int, 5, 100)
		shrunk := ShrinkSliceIfWastedCapacity(s, 20, 2)

		assert.Equal(t, 100, cap(shrunk))
	})

	t.Run("no wasted capacity", func(t *testing.T) {
		s := make([]int, 30, 40)
		shrunk := ShrinkSliceIfWastedCapacity(s, 20, 2)

		assert.Equal(t, 40, cap(shrunk))
	})
}
