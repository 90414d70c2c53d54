package watcher

import (
	"context"
	"log/slog"
	"time"

	"mlb-apple-service/internal/domain"
	"mlb-apple-service/internal/logging"
	"mlb-apple-service/internal/providers"
	"mlb-apple-service/internal/timeutil"
)

// Locator resolves which single contest to track for a team right now.
type Locator struct {
	provider providers.GameProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocator constructs a Locator.
func NewLocator(provider providers.GameProvider, logger *slog.Logger) *Locator {
	return &Locator{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// Locate queries the yesterday/today schedule window and picks one candidate.
// Precedence when several games qualify at once: a live game (including
// review/challenge sub-states), then the completed second game of a split
// doubleheader, then Game Over, Postponed, Final. A failed detail fetch skips
// that candidate only; no candidate at all returns ok=false.
func (l *Locator) Locate(ctx context.Context, teamID int) (domain.GameDetail, bool) {
	start, end := timeutil.ScheduleWindow(l.now())

	schedule, err := l.provider.Schedule(ctx, teamID, start, end)
	if err != nil {
		logging.Warn(l.logger, "schedule lookup failed",
			logging.FieldTeamID, teamID, "error", err)
		return domain.GameDetail{}, false
	}

	var live, doubleheader2, gameOver, postponed, final *domain.GameDetail

	for _, game := range schedule {
		detail, err := l.provider.GameDetail(ctx, game.GamePk)
		if err != nil {
			logging.Warn(l.logger, "game detail lookup failed",
				logging.FieldGamePk, game.GamePk, "error", err)
			continue
		}
		// Schedule statuses can lag the live feed; prefer the schedule's
		// view for candidate ranking, matching what the window query saw.
		status := game.Status
		detail.Status = status
		d := detail

		switch {
		case domain.IsLive(status):
			live = &d
		case d.IsDoubleheaderGame2():
			doubleheader2 = &d
		case status == domain.StatusGameOver:
			gameOver = &d
		case status == domain.StatusPostponed:
			postponed = &d
		case status == domain.StatusFinal:
			final = &d
		}
	}

	for _, candidate := range []*domain.GameDetail{live, doubleheader2, gameOver, postponed, final} {
		if candidate != nil {
			return *candidate, true
		}
	}
	return domain.GameDetail{}, false
}
