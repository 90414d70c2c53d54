package providers

import (
	"context"

	"mlb-apple-service/internal/domain"
)

// GameProvider defines how upstream game data is fetched and normalized.
// Dates are YYYY-MM-DD strings in the league timezone. Providers are expected
// to be eventually consistent and transiently unavailable; callers treat any
// error as retry-next-tick.
type GameProvider interface {
	// Schedule lists the monitored team's games inside the date window.
	Schedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.ScheduledGame, error)
	// GameDetail fetches the live-feed view of one game: teams, status,
	// doubleheader classification, and the current linescore.
	GameDetail(ctx context.Context, gamePk int) (domain.GameDetail, error)
	// PlayByPlay fetches the full ordered play list for one game.
	PlayByPlay(ctx context.Context, gamePk int) ([]domain.Play, error)
}
