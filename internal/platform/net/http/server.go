package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"strconv"
	"strings"
	"time"

	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	// DefaultPort is the listener port when CORE_API_PORT is unset
	DefaultPort = 7860
	// ShutdownTimeout bounds draining in-flight requests once the run context ends
	ShutdownTimeout = 10 * time.Second
)

// Server owns the chi mux and the net/http server in front of it
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// ListenAddr builds the listen address from CORE_API_PORT and CORE_API_SHARE
// without share only loopback is bound, a port that already names a host is used as is
func ListenAddr(cfg config.Conf) string {
	ac := cfg.Prefix("CORE_API_")
	port := ac.MayString("PORT", strconv.Itoa(DefaultPort))
	if strings.Contains(port, ":") {
		return port
	}
	host := "127.0.0.1"
	if ac.MayBool("SHARE", false) {
		host = ""
	}
	return net.JoinHostPort(host, port)
}

// NewServer builds a server for cfg, opts may install mux wide middleware
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	s := &Server{addr: ListenAddr(cfg), mux: m}
	s.srv = &stdhttp.Server{Addr: s.addr, Handler: m, ReadHeaderTimeout: 10 * time.Second}
	return s
}

// Router exposes the mux through the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run listens on Addr and serves until ctx ends or the server is shut down
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over a listener the caller already opened
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		sctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("http shutdown")
		}
	}()

	if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains the server
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
