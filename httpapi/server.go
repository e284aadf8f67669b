// Package httpapi is the HTTP adapter: it maps the JSON API onto the
// lifecycle Engine and Admin, doing nothing the engine itself should
// be responsible for beyond request decoding, status-code selection,
// and response encoding.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quayside-io/hq"
)

// Metrics is the narrow surface httpapi reports request outcomes
// through, satisfied by *metrics.Metrics. Kept as a local interface so
// this package does not force every caller to depend on metrics.
type Metrics interface {
	ObserveEnqueue()
	ObserveReceive(queue string)
	ObserveComplete()
	ObserveFail()
}

// Handler holds the dependencies of the request handlers that
// NewHandler routes: the queue and message API, and optionally
// /metrics and /web.
type Handler struct {
	engine  *hq.Engine
	admin   *hq.Admin
	metrics Metrics
	log     *slog.Logger
}

// Config collects the optional pieces that extend the core API.
type Config struct {
	MetricsHandler   http.Handler // served at /metrics if non-nil
	DashboardHandler http.Handler // served at /web if non-nil
}

// NewHandler builds the routed http.Handler for the service.
func NewHandler(engine *hq.Engine, admin *hq.Admin, metrics Metrics, log *slog.Logger, cfg Config) http.Handler {
	h := &Handler{engine: engine, admin: admin, metrics: metrics, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /queues", h.createQueue)
	mux.HandleFunc("GET /queues", h.listQueues)
	mux.HandleFunc("GET /queues/{name}", h.getQueue)
	mux.HandleFunc("PUT /queues/{name}", h.updateQueue)
	mux.HandleFunc("DELETE /queues/{name}", h.deleteQueue)
	mux.HandleFunc("POST /queues/{name}/enqueue", h.enqueue)
	mux.HandleFunc("GET /queues/{name}/receive", h.receive)
	mux.HandleFunc("PUT /messages/{id}/complete", h.complete)
	mux.HandleFunc("PUT /messages/{id}/fail", h.fail)

	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}
	if cfg.DashboardHandler != nil {
		mux.Handle("GET /web", cfg.DashboardHandler)
	}

	return mux
}

// Serve runs an http.Server on addr using handler, with a per-request
// timeout and graceful shutdown on SIGINT/SIGTERM: a background
// ListenAndServe goroutine races a signal channel, and Shutdown is
// given a bounded context.
func Serve(ctx context.Context, addr string, handler http.Handler, requestTimeout time.Duration, log *slog.Logger) error {
	if requestTimeout > 0 {
		handler = http.TimeoutHandler(handler, requestTimeout, "request timeout")
	}

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
