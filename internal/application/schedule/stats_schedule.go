package schedule

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"auth-api/internal/domain/usecase/user"
	"auth-api/pkg/log"
	"auth-api/pkg/msg"
)

// StatsScheduler periodically logs account statistics. Every instance runs
// it since the job only reads and logs.
type StatsScheduler struct {
	scheduler gocron.Scheduler
	useCase   user.UseCase
	interval  time.Duration
}

// NewStatsScheduler creates a new stats scheduler
func NewStatsScheduler(useCase user.UseCase, interval time.Duration) (*StatsScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &StatsScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		interval:  interval,
	}, nil
}

// InitStatsScheduleTasks initializes the stats logging task
func (s *StatsScheduler) InitStatsScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.LogUserStats),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	return nil
}

// LogUserStats logs the current number of registered users
func (s *StatsScheduler) LogUserStats() {
	total, err := s.useCase.CountAll()
	if err != nil {
		log.Errorf("Failed to collect user stats: %v", err)
		return
	}

	log.Info(msg.GetMessage("user.stats", total))
}

// Stop gracefully stops the scheduler
func (s *StatsScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
