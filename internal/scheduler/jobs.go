package scheduler

import (
	"context"
	"time"

	"content-workflow/internal/logger"
	"content-workflow/internal/service"
)

const (
	JobPublish = "publish"
	JobReaper  = "reaper"
)

// Publisher runs one pass of the scheduled publisher.
type Publisher interface {
	RunOnce(ctx context.Context) (service.PublishResult, error)
}

// Reaper runs one pass of the stuck-item reaper.
type Reaper interface {
	RunOnce(ctx context.Context) (int, error)
}

// PublishJob wraps a Publisher as a scheduled job.
func PublishJob(p Publisher, schedule string, timeout time.Duration) Job {
	return Job{
		Name:     JobPublish,
		Schedule: schedule,
		Timeout:  timeout,
		Run: func(ctx context.Context) error {
			_, err := p.RunOnce(ctx)
			return err
		},
	}
}

// ReaperJob wraps a Reaper as a scheduled job.
func ReaperJob(r Reaper, schedule string, timeout time.Duration) Job {
	return Job{
		Name:     JobReaper,
		Schedule: schedule,
		Timeout:  timeout,
		Run: func(ctx context.Context) error {
			reset, err := r.RunOnce(ctx)
			if reset > 0 {
				logger.WithJob(JobReaper).InfoContext(ctx, "Stale items requeued", "count", reset)
			}
			return err
		},
	}
}
