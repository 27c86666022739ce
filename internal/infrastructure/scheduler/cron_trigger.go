package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StructureProvider provides the list of structures for scheduling
type StructureProvider interface {
	GetAllStructureIDs(ctx context.Context) ([]uuid.UUID, error)
}

// CronTriggerConfig holds configuration for the cron trigger
type CronTriggerConfig struct {
	// NightlyHour and NightlyMinute set the time of the nightly run (24h format)
	NightlyHour   int
	NightlyMinute int

	// CheckInterval is how often to check if it's time to run
	CheckInterval time.Duration
}

// DefaultCronTriggerConfig returns default cron trigger configuration
func DefaultCronTriggerConfig() CronTriggerConfig {
	return CronTriggerConfig{
		NightlyHour:   2, // 2am
		NightlyMinute: 0,
		CheckInterval: time.Minute,
	}
}

// CronTrigger triggers the nightly sync and refresh jobs
type CronTrigger struct {
	config            CronTriggerConfig
	scheduler         *Scheduler
	structureProvider StructureProvider
	logger            *zap.Logger

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	mu          sync.Mutex
	isRunning   bool
	lastRunDate string // Track which date we last ran for
}

// NewCronTrigger creates a new cron trigger
func NewCronTrigger(
	config CronTriggerConfig,
	scheduler *Scheduler,
	structureProvider StructureProvider,
	logger *zap.Logger,
) *CronTrigger {
	return &CronTrigger{
		config:            config,
		scheduler:         scheduler,
		structureProvider: structureProvider,
		logger:            logger,
	}
}

// Start starts the cron trigger
func (c *CronTrigger) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = true
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go c.runLoop(ctx)

	c.logger.Info("Cron trigger started",
		zap.Int("nightly_hour", c.config.NightlyHour),
		zap.Int("nightly_minute", c.config.NightlyMinute),
		zap.Duration("check_interval", c.config.CheckInterval),
	)

	return nil
}

// Stop stops the cron trigger
func (c *CronTrigger) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = false
	c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("Cron trigger stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runLoop checks periodically if it's time to run the nightly jobs
func (c *CronTrigger) runLoop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.checkAndTrigger(ctx)
		}
	}
}

// checkAndTrigger checks if it's time to run and triggers the nightly jobs
func (c *CronTrigger) checkAndTrigger(ctx context.Context) {
	now := time.Now()
	currentDate := now.Format("2006-01-02")

	// Skip if we already ran today
	c.mu.Lock()
	if c.lastRunDate == currentDate {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	// Check if it's the right time
	if now.Hour() != c.config.NightlyHour || now.Minute() != c.config.NightlyMinute {
		return
	}

	// It's time to run!
	c.mu.Lock()
	c.lastRunDate = currentDate
	c.mu.Unlock()

	c.logger.Info("Triggering nightly jobs")
	c.triggerNightlyJobs(ctx)
}

// triggerNightlyJobs schedules the nightly jobs for every structure
func (c *CronTrigger) triggerNightlyJobs(ctx context.Context) {
	structureIDs, err := c.structureProvider.GetAllStructureIDs(ctx)
	if err != nil {
		c.logger.Error("Failed to get structure IDs for nightly jobs", zap.Error(err))
		return
	}

	c.logger.Info("Scheduling nightly jobs for structures",
		zap.Int("structure_count", len(structureIDs)),
	)

	for _, structureID := range structureIDs {
		sid := structureID
		if err := c.scheduler.ScheduleNightlyJobs(&sid); err != nil {
			c.logger.Error("Failed to schedule nightly jobs for structure",
				zap.String("structure_id", structureID.String()),
				zap.Error(err),
			)
		}
	}
}

// TriggerManualRefresh allows manual triggering of a job type.
// A nil jobType triggers every job type.
func (c *CronTrigger) TriggerManualRefresh(ctx context.Context, structureID *uuid.UUID, jobType *JobType, since time.Time) error {
	if jobType != nil {
		return c.scheduler.ScheduleJob(structureID, *jobType, since)
	}

	for _, jt := range AllJobTypes() {
		if err := c.scheduler.ScheduleJob(structureID, jt, since); err != nil {
			return err
		}
	}
	return nil
}
