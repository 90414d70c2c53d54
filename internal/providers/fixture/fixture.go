package fixture

import (
	"context"
	"time"

	"mlb-apple-service/internal/domain"
)

const (
	gamePk = 900001
	homeID = 121
	awayID = 143
)

// Provider returns a static in-progress game useful for local testing and
// bootstrapping: the monitored-team default (121) bats in the bottom half and
// eventually homers.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Schedule returns the single scripted game regardless of window.
func (p *Provider) Schedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.ScheduledGame, error) {
	_ = ctx
	_ = teamID
	_ = startDate
	_ = endDate
	return []domain.ScheduledGame{
		{GamePk: gamePk, Status: domain.StatusInProgress},
	}, nil
}

// GameDetail returns the scripted game's detail.
func (p *Provider) GameDetail(ctx context.Context, pk int) (domain.GameDetail, error) {
	_ = ctx
	return domain.GameDetail{
		GamePk:       pk,
		GameID:       "2026/09/01/nynmlb-phimlb-1",
		DoubleHeader: "N",
		Status:       domain.StatusInProgress,
		HomeID:       homeID,
		AwayID:       awayID,
		HomeScore:    1,
		AwayScore:    0,
	}, nil
}

// PlayByPlay returns a short scripted play list with fresh start times so the
// classifier treats them as live.
func (p *Provider) PlayByPlay(ctx context.Context, pk int) ([]domain.Play, error) {
	_ = ctx
	_ = pk
	start := p.now().UTC().Format(time.RFC3339)
	return []domain.Play{
		{
			Index:       0,
			Description: "Edwin Diaz strikes out Kyle Schwarber.",
			Event:       "Strikeout",
			HalfInning:  "top",
			StartTime:   start,
		},
		{
			Index:       1,
			Description: "Francisco Lindor homers (12) on a fly ball to right field.",
			Event:       "Home Run",
			HalfInning:  "bottom",
			StartTime:   start,
		},
	}, nil
}
