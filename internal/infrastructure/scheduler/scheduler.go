package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobStatus represents the status of a scheduled job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// JobType represents the kind of maintenance job to run
type JobType string

const (
	// JobTypeTouristicSync pulls touristic content updates from external providers
	JobTypeTouristicSync JobType = "TOURISTIC_SYNC"
	// JobTypeMapCapture regenerates map images for recently modified objects
	JobTypeMapCapture JobType = "MAP_CAPTURE"
	// JobTypeAltimetryRefresh recomputes elevation data for recently modified geometries
	JobTypeAltimetryRefresh JobType = "ALTIMETRY_REFRESH"
)

// AllJobTypes returns all available job types
func AllJobTypes() []JobType {
	return []JobType{
		JobTypeTouristicSync,
		JobTypeMapCapture,
		JobTypeAltimetryRefresh,
	}
}

// Job represents a scheduled background job
type Job struct {
	ID          uuid.UUID
	StructureID *uuid.UUID // nil means all structures
	JobType     JobType
	// Since limits the job to objects modified after this time
	Since       time.Time
	Status      JobStatus
	Error       string
	StartedAt   *time.Time
	CompletedAt *time.Time
	RetryCount  int
	MaxRetries  int
	NextRetryAt *time.Time
}

// NewJob creates a new job instance
func NewJob(structureID *uuid.UUID, jobType JobType, since time.Time, maxRetries int) *Job {
	return &Job{
		ID:          uuid.New(),
		StructureID: structureID,
		JobType:     jobType,
		Since:       since,
		Status:      JobStatusPending,
		MaxRetries:  maxRetries,
	}
}

// Start marks the job as running
func (j *Job) Start() {
	now := time.Now()
	j.Status = JobStatusRunning
	j.StartedAt = &now
	j.Error = ""
}

// Complete marks the job as successful
func (j *Job) Complete() {
	now := time.Now()
	j.Status = JobStatusSuccess
	j.CompletedAt = &now
}

// Fail marks the job as failed
func (j *Job) Fail(err string) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// ShouldRetry returns true if the job should be retried
func (j *Job) ShouldRetry() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// ScheduleRetry schedules the job for retry
func (j *Job) ScheduleRetry(delay time.Duration) {
	j.RetryCount++
	j.Status = JobStatusPending
	nextRetry := time.Now().Add(delay)
	j.NextRetryAt = &nextRetry
	j.Error = ""
}

// JobExecutor is the interface for executing background jobs
type JobExecutor interface {
	Execute(ctx context.Context, job *Job) error
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	Enabled           bool
	MaxConcurrentJobs int
	JobTimeout        time.Duration
	RetryAttempts     int
	RetryDelay        time.Duration
}

// DefaultSchedulerConfig returns default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Enabled:           true,
		MaxConcurrentJobs: 3,
		JobTimeout:        30 * time.Minute,
		RetryAttempts:     3,
		RetryDelay:        5 * time.Minute,
	}
}

// historyLimit bounds how many job records the scheduler retains
// for status inspection.
const historyLimit = 200

// Scheduler manages background jobs with a bounded worker pool
type Scheduler struct {
	config   SchedulerConfig
	executor JobExecutor
	logger   *zap.Logger

	jobs      chan *Job
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	histMu  sync.Mutex
	history map[uuid.UUID]Job
	order   []uuid.UUID
}

// NewScheduler creates a new scheduler instance
func NewScheduler(config SchedulerConfig, executor JobExecutor, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		config:   config,
		executor: executor,
		logger:   logger,
		jobs:     make(chan *Job, 100),
		history:  make(map[uuid.UUID]Job),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Start worker pool
	for i := 0; i < s.config.MaxConcurrentJobs; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	s.logger.Info("Job scheduler started",
		zap.Int("workers", s.config.MaxConcurrentJobs),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	// Wait for workers and pending retry timers with timeout. The job
	// channel is only closed once nothing can send on it anymore.
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		close(s.jobs)
		s.logger.Info("Job scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Job scheduler stop timed out")
		return ctx.Err()
	}
}

// SubmitJob submits a job for execution
func (s *Scheduler) SubmitJob(job *Job) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	select {
	case s.jobs <- job:
		s.record(job)
		s.logger.Debug("Job submitted",
			zap.String("job_id", job.ID.String()),
			zap.String("job_type", string(job.JobType)),
		)
		return nil
	default:
		return ErrJobQueueFull
	}
}

// record stores a snapshot of the job for later inspection. Workers
// mutate the live Job, so readers only ever see copies taken here.
func (s *Scheduler) record(job *Job) {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	if _, known := s.history[job.ID]; !known {
		if len(s.order) >= historyLimit {
			delete(s.history, s.order[0])
			s.order = s.order[1:]
		}
		s.order = append(s.order, job.ID)
	}
	s.history[job.ID] = *job
}

// JobByID returns a snapshot of a tracked job.
func (s *Scheduler) JobByID(id uuid.UUID) (Job, bool) {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	job, ok := s.history[id]
	return job, ok
}

// RecentJobs returns snapshots of tracked jobs, most recent first.
func (s *Scheduler) RecentJobs() []Job {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	jobs := make([]Job, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		jobs = append(jobs, s.history[s.order[i]])
	}
	return jobs
}

// worker processes jobs from the queue
func (s *Scheduler) worker(ctx context.Context, workerID int) {
	defer s.wg.Done()

	s.logger.Debug("Worker started", zap.Int("worker_id", workerID))

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Worker stopping", zap.Int("worker_id", workerID))
			return
		case job, ok := <-s.jobs:
			if !ok {
				s.logger.Debug("Job channel closed", zap.Int("worker_id", workerID))
				return
			}
			s.processJob(ctx, job, workerID)
		}
	}
}

// requeueWhenDue re-queues a job after delay without occupying a
// worker. The timer goroutine is tracked so Stop waits for it.
func (s *Scheduler) requeueWhenDue(ctx context.Context, job *Job, delay time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		select {
		case s.jobs <- job:
		default:
			s.logger.Warn("Failed to re-queue job for retry",
				zap.String("job_id", job.ID.String()),
			)
		}
	}()
}

// processJob executes a single job
func (s *Scheduler) processJob(ctx context.Context, job *Job, workerID int) {
	// A job can land here early when the queue was drained right after
	// submission; hand it back to a timer instead of spinning.
	if job.NextRetryAt != nil && time.Now().Before(*job.NextRetryAt) {
		s.requeueWhenDue(ctx, job, time.Until(*job.NextRetryAt))
		return
	}

	job.Start()
	s.record(job)
	s.logger.Info("Processing job",
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("job_type", string(job.JobType)),
	)

	// Create context with timeout
	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	// Execute the job
	err := s.executor.Execute(jobCtx, job)
	if err != nil {
		job.Fail(err.Error())
		s.record(job)
		s.logger.Error("Job failed",
			zap.Int("worker_id", workerID),
			zap.String("job_id", job.ID.String()),
			zap.String("job_type", string(job.JobType)),
			zap.Error(err),
		)

		// Check if should retry
		if job.ShouldRetry() {
			job.ScheduleRetry(s.config.RetryDelay)
			s.record(job)
			s.logger.Info("Job scheduled for retry",
				zap.String("job_id", job.ID.String()),
				zap.Int("retry_count", job.RetryCount),
				zap.Int("max_retries", job.MaxRetries),
			)
			s.requeueWhenDue(ctx, job, s.config.RetryDelay)
		}
		return
	}

	job.Complete()
	s.record(job)
	s.logger.Info("Job completed successfully",
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("job_type", string(job.JobType)),
	)
}

// ScheduleNightlyJobs schedules every job type for a structure,
// covering objects modified since the previous day.
func (s *Scheduler) ScheduleNightlyJobs(structureID *uuid.UUID) error {
	since := time.Now().AddDate(0, 0, -1)

	for _, jobType := range AllJobTypes() {
		job := NewJob(structureID, jobType, since, s.config.RetryAttempts)
		if err := s.SubmitJob(job); err != nil {
			return err
		}
	}

	return nil
}

// ScheduleJob schedules a single job of a specific type
func (s *Scheduler) ScheduleJob(structureID *uuid.UUID, jobType JobType, since time.Time) error {
	job := NewJob(structureID, jobType, since, s.config.RetryAttempts)
	return s.SubmitJob(job)
}
