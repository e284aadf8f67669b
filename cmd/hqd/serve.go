package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/quayside-io/hq"
	"github.com/quayside-io/hq/dashboard"
	"github.com/quayside-io/hq/httpapi"
	"github.com/quayside-io/hq/metrics"
	"github.com/quayside-io/hq/sqlstore"

	"github.com/spf13/cobra"
)

// envDefault mirrors clap's #[arg(env)] behavior: an environment
// variable overrides the flag's default, but an explicit flag still
// wins over both.
func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envDefaultBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDefaultDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func serveCmd() *cobra.Command {
	var (
		port             uint16
		requestTimeout   uint64 // seconds
		database         string
		sweepInterval    time.Duration
		dashboardEnabled bool
		metricsNamespace string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the hq service",
		Long:  "Run the hq HTTP API, background lease sweeper, Prometheus metrics endpoint, and optional dashboard.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			ctx := cmd.Context()

			path := database
			if path == ":memory:" {
				path = ""
			}

			db, err := sqlstore.Open(ctx, path)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			store := sqlstore.New(db)
			engine := hq.NewEngine(store)
			admin := hq.NewAdmin(store)
			metricsInstance := metrics.New(metricsNamespace)

			sweeper := hq.NewSweeper(store, sweepInterval, log, metricsInstance)
			if err := sweeper.Start(ctx); err != nil {
				return fmt.Errorf("start sweeper: %w", err)
			}
			defer func() {
				if err := sweeper.Stop(10 * time.Second); err != nil {
					log.Error("sweeper shutdown failed", "err", err)
				}
			}()

			cfg := httpapi.Config{
				MetricsHandler: metricsInstance.Handler(),
			}
			if dashboardEnabled {
				cfg.DashboardHandler = dashboard.NewHandler(store, log)
			}

			handler := httpapi.NewHandler(engine, admin, metricsInstance, log, cfg)
			addr := fmt.Sprintf(":%d", port)
			return httpapi.Serve(ctx, addr, handler, time.Duration(requestTimeout)*time.Second, log)
		},
	}

	cmd.Flags().Uint16Var(&port, "port", mustParseUint16(envDefault("PORT", "9999")), "the port to bind the server to")
	defaultRequestTimeout, _ := strconv.ParseUint(envDefault("REQUEST_TIMEOUT", "0"), 10, 64)
	cmd.Flags().Uint64Var(&requestTimeout, "request-timeout", defaultRequestTimeout, "the maximum request duration in seconds, 0 disables the timeout")
	cmd.Flags().StringVar(&database, "database", envDefault("DATABASE", ":memory:"), "the database path, or :memory: for an in-memory database")
	cmd.Flags().DurationVar(&sweepInterval, "sweep-interval", envDefaultDuration("SWEEP_INTERVAL", time.Second), "how often to sweep for expired leases")
	cmd.Flags().BoolVar(&dashboardEnabled, "dashboard", envDefaultBool("DASHBOARD", false), "serve the read-only HTML dashboard at /web")
	cmd.Flags().StringVar(&metricsNamespace, "metrics-namespace", envDefault("METRICS_NAMESPACE", "hq"), "the Prometheus metric namespace")

	return cmd
}

func mustParseUint16(s string) uint16 {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 9999
	}
	return uint16(n)
}
