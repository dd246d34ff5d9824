package weft

import (
	"io"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weft-web/weft/config"
	"github.com/weft-web/weft/feedback"
	"github.com/weft-web/weft/http/status"
)

const addr = "localhost:16100"

// send writes one raw message and returns everything the server answered
// before closing the connection.
func send(t *testing.T, raw string) string {
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	response, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(response)
}

func TestAllCases(t *testing.T) {
	// everything runs against a single server instance, as binding a fresh
	// one per case buys nothing

	index, err := os.ReadFile("testdata/index.htm")
	require.NoError(t, err)
	notFound, err := os.ReadFile("testdata/404.htm")
	require.NoError(t, err)

	rec := feedback.NewRecorder()
	cfg := config.Default()
	cfg.Pool.Size = 2
	cfg.FS.Root = "testdata"
	cfg.FS.SleepFor = 100 * time.Millisecond

	ready := make(chan struct{})
	app := New(addr).
		Tune(cfg).
		OnFeedback(rec).
		NotifyOnStart(func() {
			close(ready)
		})

	shutdown := make(chan struct{})
	go func() {
		require.Equal(t, status.ErrShutdown, app.Serve())
		close(shutdown)
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		require.Fail(t, "server is not starting for too long")
	}

	t.Run("index page", func(t *testing.T) {
		response := send(t, "GET / HTTP/1.1\r\n\r\n")
		wanted := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n" + string(index)
		require.Equal(t, wanted, response)
	})

	t.Run("headers don't affect the page", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nX-Request-Id: " + uniuri.New() + "\r\n\r\n"
		response := send(t, raw)
		require.Contains(t, response, "200 OK")
	})

	t.Run("missing page", func(t *testing.T) {
		response := send(t, "GET /missing HTTP/1.1\r\n\r\n")
		wanted := "HTTP/1.1 404 NOT FOUND\r\nContent-Type: text/html\r\n\r\n" + string(notFound)
		require.Equal(t, wanted, response)
	})

	t.Run("sleep page blocks before responding", func(t *testing.T) {
		began := time.Now()
		response := send(t, "GET /sleep HTTP/1.1\r\n\r\n")
		require.GreaterOrEqual(t, time.Since(began), cfg.FS.SleepFor)
		require.Contains(t, response, "200 OK")
	})

	t.Run("unparseable request gets nothing back", func(t *testing.T) {
		response := send(t, "RANDOM /x HTTP/9.9\r\n")
		require.Empty(t, response)
	})

	t.Run("unmatched request gets nothing back", func(t *testing.T) {
		response := send(t, "POST / HTTP/1.1\r\n\r\ntest=abc")
		require.Empty(t, response)
	})

	t.Run("instant disconnect doesn't wedge the server", func(t *testing.T) {
		conn, err := net.Dial("tcp", addr)
		require.NoError(t, err)
		require.NoError(t, conn.Close())

		response := send(t, "GET / HTTP/1.1\r\n\r\n")
		require.Contains(t, response, "200 OK")
	})

	app.Stop()
	select {
	case <-shutdown:
	case <-time.After(5 * time.Second):
		require.Fail(t, "server is not shutting down for too long")
	}

	// the workers are joined by now, so every notice has been recorded
	assert.Contains(t, rec.Infos(),
		"Request could not be decoded as HTTP, error: request method is not recognized")
	assert.Contains(t, rec.Infos(),
		"Found no response for TCP stream "+strconv.Quote("POST / HTTP/1.1\r\n\r\ntest=abc"))
	assert.Contains(t, rec.Infos(), "TCP stream was empty, accumulated read size: 0")
}
