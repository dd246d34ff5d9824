package qstring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weft-web/weft/kv"
)

func parse(data string) *kv.Storage {
	dst := kv.New()
	Parse(data, dst)

	return dst
}

func TestParse(t *testing.T) {
	t.Run("pairs and flags", func(t *testing.T) {
		pairs := parse("a=1&b=2&c")
		require.Equal(t, 3, pairs.Len())
		require.Equal(t, "1", pairs.Value("a"))
		require.Equal(t, "2", pairs.Value("b"))
		require.Equal(t, "1", pairs.Value("c"))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, 0, parse("").Len())
	})

	t.Run("single flag", func(t *testing.T) {
		pairs := parse("standalone")
		require.Equal(t, 1, pairs.Len())
		require.Equal(t, "1", pairs.Value("standalone"))
	})

	t.Run("empty value is kept", func(t *testing.T) {
		pairs := parse("a=")
		require.Equal(t, "", pairs.Value("a"))
		require.True(t, pairs.Has("a"))
	})

	t.Run("multiple equals degrade to a flag", func(t *testing.T) {
		pairs := parse("a=b=c")
		require.Equal(t, "1", pairs.Value("a"))
		require.Equal(t, 1, pairs.Len())
	})

	t.Run("duplicate keys last write wins", func(t *testing.T) {
		pairs := parse("a=1&a=2")
		require.Equal(t, "2", pairs.Value("a"))
		require.Equal(t, 1, pairs.Len())
	})

	t.Run("values with text", func(t *testing.T) {
		pairs := parse("random=abc&hej=def&def")
		require.Equal(t, "abc", pairs.Value("random"))
		require.Equal(t, "def", pairs.Value("hej"))
		require.Equal(t, "1", pairs.Value("def"))
		require.False(t, pairs.Has("defs"))
	})
}
