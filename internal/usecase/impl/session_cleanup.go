package impl

import (
	"context"
	"log/slog"
	"time"

	"carvalue/internal/domain/repository"

	"go.uber.org/fx"
)

const sessionSweepInterval = time.Hour

// SessionCleanupParams holds dependencies for the expired-session sweeper.
type SessionCleanupParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// sessionCleanup periodically removes expired session rows so abandoned
// cookies do not accumulate forever.
type sessionCleanup struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	interval    time.Duration
}

// RegisterSessionCleanup wires the sweeper into the application lifecycle.
func RegisterSessionCleanup(params SessionCleanupParams) {
	cleanup := &sessionCleanup{
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		interval:    sessionSweepInterval,
	}

	runCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go cleanup.run(runCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
}

// run sweeps once at startup, then on every tick until the context ends.
func (c *sessionCleanup) run(ctx context.Context) {
	c.sweep(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *sessionCleanup) sweep(ctx context.Context) {
	if err := c.sessionRepo.DeleteExpired(ctx); err != nil {
		c.logger.Warn("Failed to delete expired sessions", slog.Any("error", err))

		return
	}

	c.logger.Debug("Expired sessions swept")
}
