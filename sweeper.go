package hq

import (
	"context"
	"log/slog"
	"time"

	"github.com/quayside-io/hq/internal"
)

// SweepObserver receives the outcome of every sweep tick. It is
// satisfied by *metrics.Metrics; Sweeper depends only on this narrow
// interface so the root package never imports metrics.
type SweepObserver interface {
	ObserveSweep(unlocked, retired int64)
}

// Sweeper periodically invokes SweepExpiredLeases on the provided
// MessageStore: a fixed-tick cooperative background task that
// reclaims expired leases and retires exhausted ones.
//
// Sweeper survives transient store errors by logging and continuing on
// the next tick. It does not propagate a transient error; a caller
// wanting to be notified of persistent failure should watch the logger
// output or wrap the store with its own instrumentation.
//
// Sweeper has a strict lifecycle: Start may only be called once, and
// Stop waits for the in-flight sweep (if any) to finish or the timeout
// to expire.
type Sweeper struct {
	lcBase
	store    MessageStore
	task     internal.TimerTask
	log      *slog.Logger
	interval time.Duration
	observer SweepObserver
}

// NewSweeper creates a Sweeper that calls store.SweepExpiredLeases once
// every interval. observer may be nil.
func NewSweeper(store MessageStore, interval time.Duration, log *slog.Logger, observer SweepObserver) *Sweeper {
	return &Sweeper{
		store:    store,
		log:      log,
		interval: interval,
		observer: observer,
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	result, err := s.store.SweepExpiredLeases(ctx)
	if err != nil {
		s.log.Error("sweep failed", "err", err)
		return
	}
	if s.observer != nil {
		s.observer.ObserveSweep(result.Unlocked, result.Retired)
	}
	if result.Unlocked > 0 || result.Retired > 0 {
		s.log.Info("swept expired leases", "unlocked", result.Unlocked, "retired", result.Retired)
	}
}

// Start begins the periodic sweep loop. Start returns ErrDoubleStarted
// if the sweeper has already been started.
func (s *Sweeper) Start(ctx context.Context) error {
	if err := s.tryStart(); err != nil {
		return err
	}
	s.task.Start(ctx, s.sweep, s.interval)
	return nil
}

// Stop terminates the sweep loop, waiting up to timeout for the
// in-flight sweep to finish. Stop returns ErrDoubleStopped if the
// sweeper is not running.
func (s *Sweeper) Stop(timeout time.Duration) error {
	return s.tryStop(timeout, s.task.Stop)
}
