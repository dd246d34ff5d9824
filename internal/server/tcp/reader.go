package tcp

import (
	"errors"
	"io"
	"net"

	"github.com/indigo-web/utils/buffer"
)

// Drained is what a connection yielded: the accumulated message bytes plus
// the drain accounting.
type Drained struct {
	Data []byte
	// ReadSize counts every byte taken off the wire, stored or not.
	ReadSize uint64
	// Overflow counts the non-padding bytes dropped past the accumulation
	// limit.
	Overflow uint64
}

// Reader accumulates a single request message off a connection. Messages are
// read in fixed-size chunks; NUL padding is never stored, and bytes past the
// limit are dropped and tallied rather than failing the read, so an oversized
// message is still parsed truncated.
type Reader struct {
	chunk []byte
	buff  *buffer.Buffer
}

func NewReader(chunkSize, limit int) *Reader {
	return &Reader{
		chunk: make([]byte, chunkSize),
		buff:  buffer.New(chunkSize, limit),
	}
}

// Drain reads chunks until one comes back short, which ends the message. An
// I/O failure abandons the accumulation: whatever was buffered is not
// returned.
func (r *Reader) Drain(conn net.Conn) (Drained, error) {
	var drained Drained

	for {
		n, err := conn.Read(r.chunk)

		drained.ReadSize += uint64(n)
		for _, c := range r.chunk[:n] {
			if c == 0 {
				continue
			}

			if !r.buff.AppendByte(c) {
				drained.Overflow++
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return drained, err
		}

		if n < len(r.chunk) {
			break
		}
	}

	drained.Data = r.buff.Finish()

	return drained, nil
}
