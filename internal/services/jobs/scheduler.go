package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/admin/astro-services/natal-api/internal/ports/jobs"
)

// Scheduler управляет запуском периодических джоб
type Scheduler struct {
	jobs []jobs.Job
	log  *slog.Logger
}

// NewScheduler создаёт новый планировщик джоб
func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		jobs: make([]jobs.Job, 0),
		log:  log,
	}
}

// Register регистрирует джобу в планировщике
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// Start запускает планировщик и все зарегистрированные джобы
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.log.Warn("no jobs registered, scheduler not started")
		return nil
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))

	for _, job := range s.jobs {
		job := job
		jobName := job.Name()
		go func() {
			if err := s.runJob(ctx, job, jobName); err != nil {
				s.log.Error("job exited with error",
					"job_name", jobName,
					"error", err,
				)
			}
		}()
	}

	return nil
}

// runJob запускает отдельную джобу в цикле
func (s *Scheduler) runJob(ctx context.Context, job jobs.Job, jobName string) error {
	for {
		now := time.Now()
		nextRun := job.NextRun(now)

		select {
		case <-ctx.Done():
			s.log.Info("job stopped by context", "job_name", jobName)
			return nil
		case <-time.After(nextRun.Sub(now)):
			if err := s.executeJobWithRetry(ctx, job, jobName); err != nil {
				s.log.Error("job failed after all retries",
					"job_name", jobName,
					"error", err,
				)
			} else {
				s.log.Info("job executed successfully", "job_name", jobName)
			}
		}
	}
}

// executeJobWithRetry выполняет джобу с retry при ошибках | now + 1m + 10m + 30m
func (s *Scheduler) executeJobWithRetry(ctx context.Context, job jobs.Job, jobName string) error {
	retries := []time.Duration{
		1 * time.Minute,
		10 * time.Minute,
		30 * time.Minute,
	}

	if err := job.Run(ctx); err == nil {
		return nil
	} else {
		s.log.Warn("job execution failed, will retry",
			"job_name", jobName,
			"attempt", 1,
			"retries_remaining", len(retries),
			"error", err,
		)
	}

	for i, retryDelay := range retries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
			if err := job.Run(ctx); err != nil {
				s.log.Warn("job retry failed",
					"job_name", jobName,
					"attempt", i+2,
					"retries_remaining", len(retries)-i-1,
					"error", err,
				)
			} else {
				return nil
			}
		}
	}

	return fmt.Errorf("all retry attempts failed (total attempts: %d)", 1+len(retries))
}
