package bimap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {

	t.Run("Set and lookups", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		v, ok := m.Get("a")
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, 1, v)

		k, ok := m.GetByValue(2)
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, "b", k)

		assert.Equal(t, 2, m.Len())
		assert.True(t, m.HasKey("a"))
		assert.True(t, m.HasValue(2))
		assert.False(t, m.HasKey("c"))
		assert.False(t, m.HasValue(3))
	})

	t.Run("overwriting a key unpairs its previous value", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("a", 2)

		v, ok := m.Get("a")
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, 2, v)

		_, ok = m.GetByValue(1)
		assert.False(t, ok)

		k, ok := m.GetByValue(2)
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, "a", k)

		assert.Equal(t, 1, m.Len())
	})

	t.Run("overwriting a value unpairs its previous key", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("b", 1)

		_, ok := m.Get("a")
		assert.False(t, ok)

		k, ok := m.GetByValue(1)
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, "b", k)

		assert.Equal(t, 1, m.Len())
	})

	t.Run("DeleteByKey", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)

		assert.True(t, m.DeleteByKey("a"))
		assert.False(t, m.DeleteByKey("a"))

		_, ok := m.Get("a")
		assert.False(t, ok)
		_, ok = m.GetByValue(1)
		assert.False(t, ok)
		assert.Zero(t, m.Len())
	})

	t.Run("DeleteByValue", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)

		assert.True(t, m.DeleteByValue(1))
		assert.False(t, m.DeleteByValue(1))

		_, ok := m.Get("a")
		assert.False(t, ok)
		assert.Zero(t, m.Len())
	})

	t.Run("Clear", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Clear()

		assert.Zero(t, m.Len())
		_, ok := m.Get("a")
		assert.False(t, ok)
		_, ok = m.GetByValue(2)
		assert.False(t, ok)
	})

	t.Run("ForEachEntry", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		entries := map[string]int{}
		err := m.ForEachEntry(func(k string, v int) error {
			entries[k] = v
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, entries)
	})

	t.Run("ForEachEntry stops on error", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		errStop := errors.New("stop")
		callCount := 0
		err := m.ForEachEntry(func(k string, v int) error {
			callCount++
			return errStop
		})

		assert.ErrorIs(t, err, errStop)
		assert.Equal(t, 1, callCount)
	})

	t.Run("Clone is independent", func(t *testing.T) {
		m := New[string, int]()
		m.Set("a", 1)

		clone := m.Clone()
		clone.Set("b", 2)
		clone.DeleteByKey("a")

		assert.Equal(t, 1, m.Len())
		assert.True(t, m.HasKey("a"))
		assert.False(t, m.HasKey("b"))
	})
}
