package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("recognized tokens", func(t *testing.T) {
		for _, p := range []Proto{HTTP09, HTTP10, HTTP11, HTTP2} {
			assert.Equal(t, p, Parse(p.String()))
		}
	})

	t.Run("unrecognized tokens", func(t *testing.T) {
		assert.Equal(t, Unknown, Parse("HTTP/2.2"))
		assert.Equal(t, Unknown, Parse("HTTP/2.5"))
		assert.Equal(t, Unknown, Parse("http/1.1"))
		assert.Equal(t, Unknown, Parse("HTTP/1.1 "))
		assert.Equal(t, Unknown, Parse(""))
	})
}
