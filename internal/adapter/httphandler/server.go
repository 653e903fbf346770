package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	readHeaderTimeout     = 5 * time.Second
	idleTimeout           = 30 * time.Second
	timeoutBody           = `{"error":"handler timeout"}`
)

type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer wraps handler so that no request runs longer than
// handlerTimeout. A zero handlerTimeout means 5 seconds.
func NewHTTPServer(
	addr string, handler http.Handler, handlerTimeout time.Duration,
) HTTPServer {
	if handlerTimeout <= 0 {
		handlerTimeout = defaultHandlerTimeout
	}
	return HTTPServer{&http.Server{
		Addr:              addr,
		Handler:           http.TimeoutHandler(handler, handlerTimeout, timeoutBody),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}}
}

// Run listens on the configured address and calls stopFn once serving ends
// for any reason.
func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		slog.Error("failed to listen", "op", op, "addr", s.srv.Addr, "err", err)
		stopFn()
		return
	}
	s.Serve(ln, stopFn)
}

func (s HTTPServer) Serve(ln net.Listener, stopFn context.CancelFunc) {
	const op = "HTTPServer.Serve"
	log := slog.With("op", op, "addr", ln.Addr().String())

	defer stopFn()
	log.Info("listening")
	if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		log.Error("unexpected server shutdown", "err", err)
	}
}

func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
	}
	log.Info("http server is closed")
}
