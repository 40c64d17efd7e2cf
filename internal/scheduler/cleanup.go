package scheduler

import (
	"context"
	"time"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
)

// CleanupScheduler runs the file cleanup pass on a fixed interval.
type CleanupScheduler struct {
	cleanup  usecase.CleanupUseCase
	logger   *logger.Logger
	interval time.Duration
	done     chan struct{}
}

func NewCleanupScheduler(cleanup usecase.CleanupUseCase, logger *logger.Logger, interval time.Duration) *CleanupScheduler {
	return &CleanupScheduler{
		cleanup:  cleanup,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the scheduler loop. It returns immediately; the loop
// stops when ctx is cancelled.
func (s *CleanupScheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

// Wait blocks until the scheduler loop has exited.
func (s *CleanupScheduler) Wait() {
	<-s.done
}

func (s *CleanupScheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Cleanup scheduler started (interval %s)", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Cleanup scheduler stopped")
			return
		case runAt := <-ticker.C:
			s.runOnce(runAt)
		}
	}
}

func (s *CleanupScheduler) runOnce(runAt time.Time) {
	report, err := s.cleanup.Run(runAt)
	if err != nil {
		// A failed run is retried on the next tick; nothing is lost,
		// stale files just linger a little longer.
		s.logger.Error("Cleanup run failed after sweeping %d and purging %d files: %v",
			report.TempSwept, report.Purged, err)
	}
}
