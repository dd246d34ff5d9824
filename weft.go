package weft

import (
	"net"

	"github.com/sirupsen/logrus"
	"github.com/weft-web/weft/config"
	"github.com/weft-web/weft/feedback"
	"github.com/weft-web/weft/internal/server/http"
	"github.com/weft-web/weft/internal/server/tcp"
	"github.com/weft-web/weft/pool"
	"github.com/weft-web/weft/responder"
	"github.com/weft-web/weft/responder/fs"
)

// App ties the pieces together: the listener, the worker pool and the
// responder registry.
type App struct {
	addr   string
	cfg    *config.Config
	fb     feedback.Feedback
	hooks  hooks
	server *tcp.Server
}

// New returns a new App instance bound to addr once served.
func New(addr string) *App {
	cfg := config.Default()
	cfg.NET.BindAddress = addr

	return &App{
		addr: addr,
		cfg:  cfg,
		fb:   feedback.NewLogrus(logrus.StandardLogger()),
	}
}

// Tune replaces the default config. Zero fields are filled back in with
// their defaults, and the bind address passed to New is kept.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	a.cfg.NET.BindAddress = a.addr

	return a
}

// OnFeedback replaces the default logrus-backed feedback sink. Handy for
// silencing the server or capturing its notices.
func (a *App) OnFeedback(fb feedback.Feedback) *App {
	a.fb = fb
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound.
// Connections made from this point on are accepted, even if the accept loop
// hasn't claimed them yet.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the accept loop has ended and every
// worker has terminated. No connection is being processed at that moment.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the listener and blocks, accepting connections and handing
// each one to the worker pool. When no responders are passed, the filesystem
// responder in its configured shape is installed. Serve returns
// status.ErrShutdown after Stop, or whatever tore the listener down.
func (a *App) Serve(responders ...responder.Responder) error {
	if len(responders) == 0 {
		responders = append(responders, fs.New(a.cfg.FS))
	}

	sock, err := net.Listen("tcp", a.cfg.NET.BindAddress)
	if err != nil {
		a.fb.Error("Failed to bind to server and port, error: " + err.Error())
		return err
	}

	workers := pool.New(a.cfg.Pool.Size, a.fb)
	httpServer := http.NewServer(a.cfg, responder.NewRegistry(responders...), a.fb)
	a.server = tcp.NewServer(sock, a.fb, func(conn net.Conn) {
		workers.Execute(func() {
			httpServer.Serve(conn)
		})
	})

	callIfNotNil(a.hooks.OnStart)
	err = a.server.Start()

	// connections handed off before the listener closed are still queued;
	// the pool drains them before terminating
	workers.Shutdown()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop closes the listener. The call isn't blocking: Serve keeps running
// until already-accepted connections drain, and only then returns.
func (a *App) Stop() {
	_ = a.server.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
