// Package dummy provides a scripted net.Conn, as passing a nil connection
// around causes nil dereference panics in tests.
package dummy

import (
	"io"
	"net"
	"time"
)

// Conn serves the next chunk of its script on every read, then io.EOF.
// Writes and closes are recorded.
type Conn struct {
	script   [][]byte
	pointer  int
	readErr  error
	writeErr error
	wrote    []byte
	closed   bool
}

func NewConn(script ...[]byte) *Conn {
	return &Conn{script: script}
}

// FailReadsWith makes every read past the script fail with err instead of
// io.EOF.
func (c *Conn) FailReadsWith(err error) *Conn {
	c.readErr = err
	return c
}

// FailWritesWith makes every write fail with err.
func (c *Conn) FailWritesWith(err error) *Conn {
	c.writeErr = err
	return c
}

func (c *Conn) Read(p []byte) (int, error) {
	if c.pointer == len(c.script) {
		if c.readErr != nil {
			return 0, c.readErr
		}

		return 0, io.EOF
	}

	chunk := c.script[c.pointer]
	c.pointer++

	return copy(p, chunk), nil
}

func (c *Conn) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}

	c.wrote = append(c.wrote, p...)

	return len(p), nil
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

// Wrote returns everything written so far.
func (c *Conn) Wrote() []byte {
	return c.wrote
}

func (c *Conn) Closed() bool {
	return c.closed
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
