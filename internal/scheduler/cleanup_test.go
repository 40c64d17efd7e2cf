package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type stubCleanup struct {
	runs int64
	err  error
}

func (s *stubCleanup) Run(runAt time.Time) (usecase.CleanupReport, error) {
	atomic.AddInt64(&s.runs, 1)
	return usecase.CleanupReport{}, s.err
}

func TestCleanupScheduler_RunsOnTick(t *testing.T) {
	cleanup := &stubCleanup{}
	s := NewCleanupScheduler(cleanup, logger.New(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&cleanup.runs) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()
}

func TestCleanupScheduler_StopsOnCancel(t *testing.T) {
	cleanup := &stubCleanup{}
	s := NewCleanupScheduler(cleanup, logger.New(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

func TestCleanupScheduler_KeepsRunningAfterFailure(t *testing.T) {
	cleanup := &stubCleanup{err: errors.New("db down")}
	s := NewCleanupScheduler(cleanup, logger.New(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&cleanup.runs) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()
}
