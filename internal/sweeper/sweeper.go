// Package sweeper runs the periodic presence cleanup on a cron schedule.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// sweepTimeout bounds a single run so a stuck database cannot pile up runs.
const sweepTimeout = 30 * time.Second

// Sweeper is the cleanup operation being scheduled.
type Sweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// Scheduler owns the cron instance. Runs never overlap: a tick that fires
// while the previous sweep is still going is skipped.
type Scheduler struct {
	cron  *cron.Cron
	sweep Sweeper
	log   *slog.Logger
}

// New validates spec (standard 5-field cron or a descriptor such as
// "@every 2m") and registers the sweep job. Call Start to begin.
func New(s Sweeper, spec string, log *slog.Logger) (*Scheduler, error) {
	sc := &Scheduler{
		cron:  cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweep: s,
		log:   log,
	}
	if _, err := sc.cron.AddFunc(spec, sc.RunOnce); err != nil {
		return nil, fmt.Errorf("sweeper.New: schedule %q: %w", spec, err)
	}
	return sc, nil
}

// Start begins running the job in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents further runs and waits for a running sweep to finish or for
// ctx to expire, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("sweeper stop timed out", "error", ctx.Err())
	}
}

// RunOnce performs a single sweep and logs the outcome.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	start := time.Now()
	n, err := s.sweep.Sweep(ctx)
	if err != nil {
		s.log.Error("presence sweep failed", "removed", n, "error", err)
		return
	}
	s.log.Debug("presence sweep", "removed", n, "duration_ms", time.Since(start).Milliseconds())
}
