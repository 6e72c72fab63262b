package http

import (
	"context"
	stdhttp "net/http"
	"strings"
	"time"

	"voicejournal/internal/platform/config"
	"voicejournal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownGrace     = 10 * time.Second
)

// Server pairs a chi mux with a stdlib http.Server and a graceful
// shutdown loop
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// listenAddr accepts PORT as a ready addr (":8080", "0.0.0.0:8080") or a
// bare port number
func listenAddr(cfg config.Conf) string {
	addr := cfg.MayString("PORT", ":8080")
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	return addr
}

// NewServer builds a server on cfg PORT. Each opt receives the raw mux
// so the caller can mount routes and middleware before Run
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	mux := chi.NewRouter()
	for _, o := range opts {
		o(mux)
	}
	addr := listenAddr(cfg)
	return &Server{
		addr: addr,
		mux:  mux,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Router wraps the mux in the platform Router facade
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until the listener fails or ctx is cancelled, then shuts
// down gracefully
func (s *Server) Run(ctx context.Context) error {
	logger.Named("http").Info().Str("addr", s.addr).Msg("http listening")

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err == stdhttp.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return s.srv.Shutdown(shutCtx)
	}
}

// Shutdown stops the server without waiting for ctx cancellation
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
