package httpbase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 5 * time.Second

// GracefulServer implements an HTTP server with graceful shutdown.
// Graceful shutdown is actually hard to implement correctly
// due to an API design flaw of the Go http package,
// ref: https://nanmu.me/zh-cn/posts/2021/go-http-server-shudown-done-right/
type GracefulServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

type GraceServerOpt struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// NewGracefulServer returns a server with graceful shutdown
func NewGracefulServer(opt GraceServerOpt, handler http.Handler) (server *GracefulServer) {
	timeout := opt.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	server = &GracefulServer{
		server: &http.Server{
			Addr:              net.JoinHostPort(opt.Host, strconv.Itoa(opt.Port)),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: timeout,
	}
	return
}

// Addr is the address the server listens on.
func (s *GracefulServer) Addr() string {
	return s.server.Addr
}

// Run starts the http server and blocks until SIGINT or SIGTERM is received
// or the listener fails.
func (s *GracefulServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// stop restores the default signal behavior, so a second Ctrl+C kills the
	// process while Shutdown is still waiting
	return s.runUntil(ctx, stop)
}

// RunContext starts the http server and blocks until ctx is done, then
// gives in-flight requests the shutdown timeout to finish.
func (s *GracefulServer) RunContext(ctx context.Context) error {
	return s.runUntil(ctx, func() {})
}

// runUntil calls release once ctx is done and before waiting on Shutdown.
func (s *GracefulServer) runUntil(ctx context.Context, release func()) error {
	listenErr := make(chan error, 1)
	// Initializing the server in a goroutine so that
	// it won't block the graceful shutdown handling below
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			slog.Error("listen failed", slog.String("addr", s.server.Addr), slog.Any("error", err))
			return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	release()
	slog.Info("shutting down gracefully, press Ctrl+C again to force")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server failed to shutdown", slog.Any("error", err))
		return err
	}

	slog.Info("Server stopped")
	return nil
}
