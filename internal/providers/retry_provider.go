package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"mlb-apple-service/internal/domain"
	"mlb-apple-service/internal/logging"
	"mlb-apple-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a GameProvider with exponential backoff retries.
type retryingProvider struct {
	inner           GameProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxRetries      uint64
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts or
// initialBackoff are <= 0, defaults are used.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialBackoff time.Duration) GameProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultBackoff
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxRetries:      uint64(maxAttempts - 1),
		initialInterval: initialBackoff,
	}
}

func (r *retryingProvider) Schedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.ScheduledGame, error) {
	var games []domain.ScheduledGame
	err := r.retry(ctx, "schedule", func() error {
		var err error
		games, err = r.inner.Schedule(ctx, teamID, startDate, endDate)
		return err
	})
	return games, err
}

func (r *retryingProvider) GameDetail(ctx context.Context, gamePk int) (domain.GameDetail, error) {
	var detail domain.GameDetail
	err := r.retry(ctx, "game_detail", func() error {
		var err error
		detail, err = r.inner.GameDetail(ctx, gamePk)
		return err
	})
	return detail, err
}

func (r *retryingProvider) PlayByPlay(ctx context.Context, gamePk int) ([]domain.Play, error) {
	var plays []domain.Play
	err := r.retry(ctx, "play_by_play", func() error {
		var err error
		plays, err = r.inner.PlayByPlay(ctx, gamePk)
		return err
	})
	return plays, err
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, r.maxRetries), ctx)

	start := time.Now()
	err := backoff.RetryNotify(fn, policy, func(err error, next time.Duration) {
		logging.Warn(r.logger, "provider call retry",
			"op", op, "backoff_ms", next.Milliseconds(), "error", err)
	})
	if r.metrics != nil {
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
	}
	if err != nil {
		logging.Warn(r.logger, "provider call failed", "op", op, "error", err)
	}
	return err
}
