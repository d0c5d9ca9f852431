package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "carvalue/internal/domain/errors"
	mockRepo "carvalue/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func createTestSessionCleanup(t *testing.T, interval time.Duration) (*sessionCleanup, *mockRepo.MockSessionRepository) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cleanup := &sessionCleanup{
		sessionRepo: sessionRepo,
		logger:      logger,
		interval:    interval,
	}

	return cleanup, sessionRepo
}

func TestSessionCleanup_RunSweepsUntilCancelled(t *testing.T) {
	cleanup, sessionRepo := createTestSessionCleanup(t, 10*time.Millisecond)

	swept := make(chan struct{}, 1)
	sessionRepo.EXPECT().
		DeleteExpired(mock.Anything).
		Run(func(ctx context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cleanup.run(ctx)
		close(done)
	}()

	<-swept
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not stop after cancel")
	}
}

func TestSessionCleanup_SweepSurvivesRepositoryFailure(t *testing.T) {
	cleanup, sessionRepo := createTestSessionCleanup(t, time.Hour)

	ctx := context.Background()
	sweepErr := domainerrors.NewDatabaseExecuteError(nil, "failed to delete expired sessions")
	sessionRepo.EXPECT().DeleteExpired(ctx).Return(sweepErr).Once()

	cleanup.sweep(ctx)
}
