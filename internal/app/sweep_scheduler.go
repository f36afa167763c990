package app

import (
	"context"
	"sync"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SweepScheduler runs the orphan sweeper on a cron schedule
type SweepScheduler struct {
	cron      *cron.Cron
	sweeper   images.OrphanSweeper
	schedule  string
	logger    logger.Logger
	mu        sync.Mutex
	isRunning bool
}

// NewSweepScheduler creates a new scheduler. An empty schedule disables it.
func NewSweepScheduler(sweeper images.OrphanSweeper, schedule string, logger logger.Logger) *SweepScheduler {
	return &SweepScheduler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweeper:  sweeper,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the sweep job and starts the scheduler
func (s *SweepScheduler) Start() error {
	if s.schedule == "" {
		s.logger.Info("Orphan sweep schedule is disabled")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runOnce); err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("Orphan sweep scheduler started", "schedule", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *SweepScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Orphan sweep scheduler stopped")
}

func (s *SweepScheduler) runOnce() {
	if _, err := s.sweeper.Sweep(context.Background(), false); err != nil {
		s.logger.Error("Scheduled orphan sweep failed", "error", err)
	}
}
