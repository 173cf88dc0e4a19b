// Package server runs the daemon's HTTP listener and owns its shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config for the HTTP runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	// WriteTimeout bounds a whole request; a list sync calls the services once per item.
	WriteTimeout time.Duration
}

// Runner serves a handler until its context ends, then drains in-flight requests
// and closes the resources it was given.
type Runner struct {
	handler http.Handler
	config  Config
	logger  *slog.Logger
	closers []io.Closer
}

// NewRunner creates a new runner. Closers are closed in order after shutdown.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger, closers ...io.Closer) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Runner{
		handler: handler,
		config:  cfg,
		logger:  logger.With("component", "server"),
		closers: closers,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled or the server fails.
// A clean shutdown returns nil.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      r.config.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil {
			r.logger.Warn("close failed", "error", cerr)
		}
	}
	return err
}
