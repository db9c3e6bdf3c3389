// Package scheduler runs the periodic publisher and reaper jobs on cron schedules.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"content-workflow/internal/lock"
	"content-workflow/internal/logger"
	"content-workflow/internal/metrics"
)

const (
	// lockMargin keeps a job's lock alive slightly past its run timeout.
	lockMargin     = 30 * time.Second
	releaseTimeout = 5 * time.Second
	defaultTimeout = 5 * time.Minute

	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Job is one periodic task.
type Job struct {
	Name     string
	Schedule string
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler wraps a cron runner. Every run of a job holds the job's lock, so a run
// never overlaps another run of the same job in this process or in another replica.
type Scheduler struct {
	cron   *cron.Cron
	locker lock.Locker

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New creates a Scheduler using locker for cross-run exclusion.
func New(locker lock.Locker) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	log := cronLogger{}
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(log),
			cron.SkipIfStillRunning(log),
		)),
		locker:  locker,
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[string]cron.EntryID),
	}
}

// Register adds a job to the schedule. Job names must be unique.
func (s *Scheduler) Register(job Job) error {
	if job.Name == "" || job.Run == nil {
		return errors.New("job name and run function are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[job.Name]; exists {
		return fmt.Errorf("job %s already registered", job.Name)
	}

	id, err := s.cron.AddFunc(job.Schedule, func() {
		s.RunJob(s.ctx, job)
	})
	if err != nil {
		return fmt.Errorf("schedule job %s: %w", job.Name, err)
	}
	s.entries[job.Name] = id
	logger.WithJob(job.Name).Info("Job scheduled", "schedule", job.Schedule)
	return nil
}

// Start begins running the registered jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	logger.Info("Scheduler stopped")
}

// RunJob executes one run of job under its lock and timeout and returns the run result.
func (s *Scheduler) RunJob(ctx context.Context, job Job) string {
	log := logger.WithJob(job.Name)
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	lease, err := s.locker.TryLock(ctx, jobLockKey(job.Name), timeout+lockMargin)
	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			log.Debug("Job run skipped, previous run still holds the lock")
			metrics.ObserveJobRun(job.Name, ResultSkipped, 0)
			return ResultSkipped
		}
		log.Error("Failed to acquire job lock", "error", err)
		metrics.ObserveJobRun(job.Name, ResultError, 0)
		return ResultError
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if err := lease.Release(releaseCtx); err != nil && !errors.Is(err, lock.ErrLockNotHeld) {
			log.Warn("Failed to release job lock", "error", err)
		}
	}()

	metrics.StartJob(job.Name)
	defer metrics.EndJob(job.Name)
	timer := metrics.NewTimer()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := ResultSuccess
	if err := job.Run(runCtx); err != nil {
		result = ResultError
		log.ErrorContext(runCtx, "Job run failed", "error", err, "duration_seconds", timer.Seconds())
	} else {
		log.Debug("Job run finished", "duration_seconds", timer.Seconds())
	}
	metrics.ObserveJobRun(job.Name, result, timer.Seconds())
	return result
}

func jobLockKey(name string) string {
	return "job:" + name
}

// cronLogger routes cron's own messages through the application logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
