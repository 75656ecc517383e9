package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(http.NotFoundHandler(), Options{
		Port:            0,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}, logger)
}

func TestOnShutdownRunsHooksInReverseOrder(t *testing.T) {
	srv := newTestServer()

	var order []string
	for _, name := range []string{"postgres", "redis"} {
		name := name
		srv.OnShutdown(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	// The HTTP server was never started, so Shutdown returns immediately
	// and only the registered hooks run.
	if err := srv.gracefulShutdown(); err != nil {
		t.Fatalf("gracefulShutdown: %v", err)
	}

	if len(order) != 2 || order[0] != "redis" || order[1] != "postgres" {
		t.Errorf("shutdown order = %v, want [redis postgres]", order)
	}
}

func TestGracefulShutdownReportsHookError(t *testing.T) {
	srv := newTestServer()

	hookErr := errors.New("close failed")
	srv.OnShutdown("flaky", func(ctx context.Context) error {
		return hookErr
	})
	srv.OnShutdown("healthy", func(ctx context.Context) error {
		return nil
	})

	if err := srv.gracefulShutdown(); !errors.Is(err, hookErr) {
		t.Errorf("gracefulShutdown error = %v, want %v", err, hookErr)
	}
}
