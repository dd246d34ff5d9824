package kv

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStorage(t *testing.T) {
	testValues := func(t *testing.T, kv *Storage) {
		for _, tc := range []struct {
			Key   string
			Value string
		}{
			{
				Key:   "Hello",
				Value: "world",
			},
			{
				Key:   "Some",
				Value: "value",
			},
		} {
			value, found := kv.Get(tc.Key)
			require.True(t, found)
			require.Equal(t, tc.Value, value)
		}
	}

	t.Run("value with manual filling", func(t *testing.T) {
		kv := New()
		kv.Set("Hello", "world")
		kv.Set("Some", "value")
		testValues(t, kv)
	})

	t.Run("value with map instantiation", func(t *testing.T) {
		kv := NewFromMap(map[string]string{
			"Hello": "world",
			"Some":  "value",
		})
		testValues(t, kv)
	})

	t.Run("last write wins", func(t *testing.T) {
		kv := New()
		kv.Set("Hello", "world")
		kv.Set("Hello", "nether")
		require.Equal(t, "nether", kv.Value("Hello"))
		require.Equal(t, 1, kv.Len())
	})

	t.Run("keys are case-sensitive", func(t *testing.T) {
		kv := New()
		kv.Set("Hello", "world")
		require.True(t, kv.Has("Hello"))
		require.False(t, kv.Has("hELLO"))
		require.False(t, kv.Has("random"))
	})

	t.Run("keys keep insertion order", func(t *testing.T) {
		kv := New()
		kv.Set("Hello", "world")
		kv.Set("sOME", "multiple")
		kv.Set("Some", "values")
		kv.Set("Hello", "nether")
		require.Equal(t, []string{"Hello", "sOME", "Some"}, kv.Keys())
	})

	t.Run("pairs after overwrite", func(t *testing.T) {
		kv := New()
		kv.Set("a", "1")
		kv.Set("b", "2")
		kv.Set("a", "3")
		require.Equal(t, []Pair{{"a", "3"}, {"b", "2"}}, kv.Pairs())
	})

	t.Run("value or", func(t *testing.T) {
		kv := New()
		require.Equal(t, "default", kv.ValueOr("missing", "default"))
		kv.Set("missing", "found")
		require.Equal(t, "found", kv.ValueOr("missing", "default"))
	})

	t.Run("clone is independent", func(t *testing.T) {
		kv := New()
		kv.Set("a", "1")
		clone := kv.Clone()
		clone.Set("a", "2")
		require.Equal(t, "1", kv.Value("a"))
		require.Equal(t, "2", clone.Value("a"))
	})

	t.Run("clear keeps nothing", func(t *testing.T) {
		kv := New()
		kv.Set("a", "1")
		kv.Clear()
		require.Equal(t, 0, kv.Len())
		require.False(t, kv.Has("a"))
	})
}
