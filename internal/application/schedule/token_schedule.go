package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"auth-api/internal/domain/usecase/auth"
	"auth-api/pkg/log"
	"auth-api/pkg/msg"
	"auth-api/pkg/redis"
)

// TokenSchedulerConfig holds configuration for the token purge scheduler
type TokenSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// TokenScheduler purges expired and revoked refresh tokens on a schedule.
// A distributed lock guarantees a single instance runs the purge.
type TokenScheduler struct {
	cron        *cron.Cron
	useCase     auth.UseCase
	redisClient *redis.Client
	config      *TokenSchedulerConfig
}

// NewTokenScheduler creates a new token purge scheduler with distributed locking support
func NewTokenScheduler(useCase auth.UseCase, redisClient *redis.Client, config *TokenSchedulerConfig) *TokenScheduler {
	return &TokenScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitTokenScheduleTasks initializes the token purge task with distributed locking
func (s *TokenScheduler) InitTokenScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewLock(s.redisClient, "token_purge_scheduler",
			redis.NewLockOptions().
				WithTTL(s.getLockTTL()).
				WithRefreshInterval(s.getRefreshInterval()).
				WithNamespace("auth_schedules"))

		if err := lock.Lock(ctx); err != nil {
			log.Errorf("Failed to acquire distributed lock, token purge scheduler will not be initialized: %v", err)
			return
		}

		// Keep the lock alive for as long as this instance owns the schedule
		refreshErrChan := lock.AutoRefresh(ctx)

		if _, err := s.cron.AddFunc(s.config.CronExpression, s.PurgeExpiredTokens); err != nil {
			log.Errorf("Failed to initialize token purge scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Token purge scheduler started successfully with cron expression: %s", s.config.CronExpression)

		err := <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Token purge scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Token purge scheduler stopped gracefully")
		}
	}()
}

// PurgeExpiredTokens removes refresh tokens that are expired or revoked
func (s *TokenScheduler) PurgeExpiredTokens() {
	log.Info(msg.GetMessage("auth.cron.purge-start"))

	purged, err := s.useCase.PurgeExpiredTokens()
	if err != nil {
		log.Error(msg.GetMessage("auth.error.purge-failed", err))
		return
	}

	log.Info(msg.GetMessage("auth.cron.purge-end", purged))
}

// Stop gracefully stops the scheduler
func (s *TokenScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *TokenScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *TokenScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
