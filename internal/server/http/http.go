package http

import (
	"fmt"
	"net"
	"strconv"

	"github.com/indigo-web/utils/uf"
	"github.com/weft-web/weft/config"
	"github.com/weft-web/weft/feedback"
	"github.com/weft-web/weft/http"
	"github.com/weft-web/weft/http/status"
	"github.com/weft-web/weft/internal/parser"
	"github.com/weft-web/weft/internal/server/tcp"
	"github.com/weft-web/weft/responder"
)

// Server runs the per-connection pipeline: drain the stream, gate it through
// the request parser, dispatch the raw bytes to the registry and write back
// whatever response came out. Whatever goes wrong along the way is reported
// and ends that connection only.
type Server struct {
	cfg      *config.Config
	registry *responder.Registry
	fb       feedback.Feedback
}

func NewServer(cfg *config.Config, registry *responder.Registry, fb feedback.Feedback) *Server {
	return &Server{
		cfg:      cfg,
		registry: registry,
		fb:       fb,
	}
}

// Serve handles a single connection from first byte to close. It runs on a
// pool worker and owns the connection exclusively.
func (s *Server) Serve(conn net.Conn) {
	defer conn.Close()

	reader := tcp.NewReader(s.cfg.NET.ReadChunkSize, s.cfg.NET.ByteLimit)

	drained, err := reader.Drain(conn)
	if err != nil {
		s.fb.Error("Failed to read from TCP stream, error: " + err.Error())
		return
	}

	if len(drained.Data) == 0 {
		s.fb.Info(fmt.Sprintf(
			"TCP stream was empty, accumulated read size: %d", drained.ReadSize,
		))
		return
	}

	if drained.Overflow > 0 {
		s.fb.Info(fmt.Sprintf(
			"Accumulation limit exceeded, dropped %d bytes", drained.Overflow,
		))
	}

	// the parse gates dispatch: responders only ever see messages that
	// decoded cleanly, even though they receive the raw bytes
	if _, err = parser.Parse(drained.Data); err != nil {
		s.fb.Info("Request could not be decoded as HTTP, error: " + err.Error())
		return
	}

	s.fb.Info("Request was successfully decoded as HTTP")

	response, ok, err := s.registry.Respond(drained.Data)
	switch {
	case err != nil:
		s.fb.Error("Responder failed, error: " + err.Error())
		response = http.NewResponse(status.InternalServerError, nil).Render()
	case !ok:
		s.fb.Info("Found no response for TCP stream " + strconv.Quote(uf.B2S(drained.Data)))
		return
	}

	if _, err = conn.Write(response); err != nil {
		s.fb.Error("Failed to write to TCP stream, error: " + err.Error())
	}
}
