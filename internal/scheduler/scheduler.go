// Package scheduler reruns the monitoring seeder on a cron schedule so demo
// environments keep showing recent activity.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"

	"kidsguard/internal/logging"
)

// Reseeder runs a seeding function on a cron schedule. Runs never overlap;
// a tick that fires while the previous run is still going is skipped.
type Reseeder struct {
	scheduler *gocron.Scheduler
	job       *gocron.Job
	run       func() error
	logger    *slog.Logger

	runs     atomic.Int64
	failures atomic.Int64
}

// New schedules run on a standard five-field cron expression, evaluated in UTC
func New(cronExpr string, run func() error) (*Reseeder, error) {
	r := &Reseeder{
		scheduler: gocron.NewScheduler(time.UTC),
		run:       run,
		logger:    logging.New("scheduler"),
	}
	r.scheduler.SingletonModeAll()

	job, err := r.scheduler.Cron(cronExpr).Do(r.tick)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	r.job = job

	return r, nil
}

// Start begins running the schedule in the background
func (r *Reseeder) Start() {
	r.scheduler.StartAsync()
	r.logger.Info("reseed schedule started", "next_run", r.NextRun())
}

// Stop terminates the schedule and waits for a running tick to finish
func (r *Reseeder) Stop() {
	r.scheduler.Stop()
	r.logger.Info("reseed schedule stopped", "runs", r.Runs(), "failures", r.Failures())
}

// Run starts the schedule and blocks until ctx is cancelled
func (r *Reseeder) Run(ctx context.Context) {
	r.Start()
	<-ctx.Done()
	r.Stop()
}

// RunNow triggers an immediate run outside the schedule. The schedule must be started.
func (r *Reseeder) RunNow() {
	r.scheduler.RunAll()
}

// NextRun is when the next scheduled run fires
func (r *Reseeder) NextRun() time.Time {
	return r.job.NextRun()
}

// Runs counts completed runs, successful or not
func (r *Reseeder) Runs() int64 { return r.runs.Load() }

// Failures counts runs that returned an error
func (r *Reseeder) Failures() int64 { return r.failures.Load() }

// tick performs one run. Errors are logged and the schedule carries on.
func (r *Reseeder) tick() {
	started := time.Now()
	err := r.run()
	r.runs.Add(1)

	if err != nil {
		r.failures.Add(1)
		r.logger.Error("scheduled reseed failed", "error", err, "duration", time.Since(started))
		return
	}
	r.logger.Info("scheduled reseed complete", "duration", time.Since(started))
}
