package tcp

import (
	"errors"
	"net"

	"github.com/weft-web/weft/feedback"
	"github.com/weft-web/weft/http/status"
)

type onConnection func(net.Conn)

// Server runs the accept loop. Accepted connections are handed to onConn,
// which must not block: processing happens elsewhere, the loop just keeps
// accepting.
type Server struct {
	sock     net.Listener
	onConn   onConnection
	fb       feedback.Feedback
	shutdown bool
}

func NewServer(sock net.Listener, fb feedback.Feedback, onConn onConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		fb:     fb,
	}
}

// Start accepts connections sequentially until the listener dies or Stop is
// called. Failing to accept a single connection is reported and doesn't
// affect the loop.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown {
				return status.ErrShutdown
			}

			if errors.Is(err, net.ErrClosed) {
				return err
			}

			s.fb.Error("Failed to listen to incoming stream, error: " + err.Error())
			continue
		}

		s.onConn(conn)
	}
}

// Stop closes the listener, releasing Start. Connections already handed off
// are left free to end their lives peacefully.
func (s *Server) Stop() error {
	s.shutdown = true

	return s.sock.Close()
}
