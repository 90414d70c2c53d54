package teststubs

import (
	"context"
	"sync/atomic"

	"mlb-apple-service/internal/domain"
)

// StubProvider is a scriptable test double for providers.GameProvider.
type StubProvider struct {
	ScheduleGames []domain.ScheduledGame
	ScheduleErr   error

	Details    map[int]domain.GameDetail
	DetailErrs map[int]error

	Plays    []domain.Play
	PlaysErr error

	ScheduleCalls atomic.Int32
	DetailCalls   atomic.Int32
	PlayCalls     atomic.Int32
}

// Schedule returns the configured schedule while tracking calls.
func (s *StubProvider) Schedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.ScheduledGame, error) {
	_ = ctx
	_ = teamID
	_ = startDate
	_ = endDate
	s.ScheduleCalls.Add(1)
	return s.ScheduleGames, s.ScheduleErr
}

// GameDetail returns the configured detail for the game pk.
func (s *StubProvider) GameDetail(ctx context.Context, gamePk int) (domain.GameDetail, error) {
	_ = ctx
	s.DetailCalls.Add(1)
	if err, ok := s.DetailErrs[gamePk]; ok && err != nil {
		return domain.GameDetail{}, err
	}
	if detail, ok := s.Details[gamePk]; ok {
		return detail, nil
	}
	return domain.GameDetail{GamePk: gamePk}, nil
}

// PlayByPlay returns the configured plays while tracking calls.
func (s *StubProvider) PlayByPlay(ctx context.Context, gamePk int) ([]domain.Play, error) {
	_ = ctx
	_ = gamePk
	s.PlayCalls.Add(1)
	return s.Plays, s.PlaysErr
}
