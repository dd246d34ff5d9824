// Package fs is the filesystem responder behind the demo setup: the index
// page at the root path, a deliberately slow variant of it, and the
// not-found page for every other GET.
package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/weft-web/weft/config"
	"github.com/weft-web/weft/http"
	"github.com/weft-web/weft/http/status"
)

var getPrefix = []byte("GET /")

// Responder matches GET requests by their raw prefix, before any parsing
// happened. The page files are read on every request, so edits show up
// without a restart.
type Responder struct {
	cfg       config.FS
	indexLine []byte
	sleepLine []byte
}

func New(cfg config.FS) *Responder {
	return &Responder{
		cfg:       cfg,
		indexLine: []byte("GET / "),
		sleepLine: []byte("GET " + cfg.SleepPath + " "),
	}
}

func (r *Responder) Matches(raw []byte) bool {
	return bytes.HasPrefix(raw, getPrefix)
}

// Respond serves the index for the root path and the not-found page for
// anything unrecognized. The sleep path blocks the calling worker for the
// configured duration first, which is the point of it.
func (r *Responder) Respond(raw []byte) ([]byte, error) {
	code, page := status.OK, r.cfg.Index

	switch {
	case bytes.HasPrefix(raw, r.indexLine):
	case bytes.HasPrefix(raw, r.sleepLine):
		time.Sleep(r.cfg.SleepFor)
	default:
		code, page = status.NotFound, r.cfg.NotFound
	}

	body, err := os.ReadFile(filepath.Join(r.cfg.Root, page))
	if err != nil {
		return nil, err
	}

	return http.NewResponse(code, body).Render(), nil
}
