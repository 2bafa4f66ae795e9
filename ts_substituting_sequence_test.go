package memseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/lotsa"
)

func TestTSSubstitutingSequence(t *testing.T) {

	t.Run("substitution semantics match the thread unsafe variant", func(t *testing.T) {
		seq := NewTSSubstitutingSequence("a", "t", "b", "t")

		seq.AddMapping("t", "r")
		assert.Equal(t, []string{"a", "r", "b", "r"}, seq.Values())

		seq.Append("t")
		assert.Equal(t, []string{"a", "r", "b", "r", "r"}, seq.Values())

		seq.RemoveMapping("t")
		assert.Equal(t, []string{"a", "t", "b", "t", "t"}, seq.Values())
	})

	t.Run("sequence operations", func(t *testing.T) {
		seq := NewTSSubstitutingSequence("a", "b", "c")

		assert.Equal(t, 3, seq.Len())
		assert.False(t, seq.IsEmpty())
		assert.Equal(t, "b", seq.At(1))
		assert.Equal(t, 1, seq.IndexOf("b"))
		assert.Equal(t, 2, seq.LastIndexOf("c"))
		assert.True(t, seq.ContainsAll("a", "c"))
		assert.Equal(t, []string{"b", "c"}, seq.Subrange(1, 3))

		assert.Equal(t, "b", seq.SetAt(1, "x"))
		seq.Insert(0, "y")
		assert.Equal(t, []string{"y", "a", "x", "c"}, seq.Values())

		assert.True(t, seq.Remove("y"))
		assert.Equal(t, "a", seq.RemoveAt(0))
		assert.True(t, seq.RetainOnly("x"))
		assert.Equal(t, []string{"x"}, seq.Values())

		seq.Clear()
		assert.True(t, seq.IsEmpty())
	})

	t.Run("RevertAll and Close", func(t *testing.T) {
		seq := NewTSSubstitutingSequence("t")
		seq.AddMapping("t", "r")

		replacement, ok := seq.Replacement("t")
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, "r", replacement)

		original, ok := seq.Original("r")
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, "t", original)

		seq.Close()
		assert.Equal(t, []string{"t"}, seq.Values())
		assert.Zero(t, seq.MappingCount())
	})

	t.Run("hooks fire under the lock", func(t *testing.T) {
		var inserted []int
		seq := NewTSSubstitutingSequenceWithConfig(SubstitutingSequenceConfig[int]{
			Hooks: Hooks[int]{
				OnInserting: func(e int) {
					inserted = append(inserted, e)
				},
			},
		})

		seq.AppendAll(1, 2, 3)
		assert.Equal(t, []int{1, 2, 3}, inserted)
	})

	t.Run("concurrent appends", func(t *testing.T) {
		seq := NewTSSubstitutingSequence[int]()

		lotsa.Ops(10_000, 8, func(i, thread int) {
			seq.Append(i)
		})

		assert.Equal(t, 10_000, seq.Len())
	})

	t.Run("concurrent appends observe an active rule", func(t *testing.T) {
		seq := NewTSSubstitutingSequence[int]()
		seq.AddMapping(1, 2)

		lotsa.Ops(1_000, 8, func(i, thread int) {
			seq.Append(1)
		})

		assert.Equal(t, 1_000, seq.Len())
		assert.False(t, seq.Contains(1))
		assert.Equal(t, 999, seq.LastIndexOf(2))
	})

	t.Run("concurrent lifecycle calls serialize", func(t *testing.T) {
		seq := NewTSSubstitutingSequence("t", "t", "t")

		lotsa.Ops(1_000, 8, func(i, thread int) {
			if i%2 == 0 {
				seq.AddMapping("t", "r")
			} else {
				seq.RevertAll()
			}
		})

		seq.RevertAll()
		assert.Equal(t, []string{"t", "t", "t"}, seq.Values())
	})
}
