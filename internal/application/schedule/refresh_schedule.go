package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"yatra-api/internal/domain/usecase/travel"
	"yatra-api/pkg/log"
	"yatra-api/pkg/redis"
)

// RefreshSchedulerConfig holds configuration for the refresh scheduler
type RefreshSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// RefreshScheduler triggers the full-city refresh on a cron schedule. A
// Redis lock with auto-refresh keeps the schedule single-instance across
// replicas: only the lock holder runs the cron.
type RefreshScheduler struct {
	cron        *cron.Cron
	useCase     travel.UseCase
	redisClient *redis.Client
	config      *RefreshSchedulerConfig
}

// NewRefreshScheduler creates a new refresh scheduler with distributed locking support
func NewRefreshScheduler(useCase travel.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *RefreshScheduler {
	return &RefreshScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &RefreshSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitRefreshScheduleTasks acquires the distributed lock and starts the cron.
// Losing the lock stops the scheduler on this instance.
func (s *RefreshScheduler) InitRefreshScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewLock(s.redisClient, "city_refresh_scheduler", &redis.LockOptions{
			TTL:             s.getLockTTL(),
			RetryDelay:      time.Second,
			MaxRetries:      0,
			RefreshInterval: s.getRefreshInterval(),
			LockNamespace:   "travel_schedules",
		})

		if err := lock.Lock(ctx); err != nil {
			log.Infof("Refresh scheduler lock held elsewhere, scheduler not started on this instance: %v", err)
			return
		}

		refreshErrChan := lock.AutoRefresh(ctx)

		cronExpression := s.config.CronExpression
		if _, err := s.cron.AddFunc(cronExpression, s.ExecuteScheduledTask); err != nil {
			log.Errorf("Failed to initialize refresh scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("City refresh scheduler started successfully with cron expression: %s", cronExpression)

		err := <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil && err != context.Canceled {
			log.Errorf("City refresh scheduler stopped due to lock refresh failure: %v", err)
		} else {
			log.Info("City refresh scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask enqueues every known city for refresh
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info("City refresh scheduled task triggered", zap.String("request_id", requestID))

	if err := s.useCase.RefreshAllCities(requestID); err != nil {
		log.Error("Failed to execute scheduled city refresh", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Scheduled city refresh completed successfully", zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *RefreshScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *RefreshScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
