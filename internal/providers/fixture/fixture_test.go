package fixture

import (
	"context"
	"testing"
	"time"

	"mlb-apple-service/internal/domain"
)

func TestScheduleReturnsLiveGame(t *testing.T) {
	p := New()

	games, err := p.Schedule(context.Background(), 121, "2026-08-31", "2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected one game, got %d", len(games))
	}
	if games[0].Status != domain.StatusInProgress {
		t.Fatalf("expected in-progress game, got %s", games[0].Status)
	}
}

func TestGameDetailEchoesGamePk(t *testing.T) {
	p := New()

	detail, err := p.GameDetail(context.Background(), 900001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.GamePk != 900001 {
		t.Fatalf("expected game pk 900001, got %d", detail.GamePk)
	}
	if detail.HomeID != 121 {
		t.Fatalf("expected home team 121, got %d", detail.HomeID)
	}
}

func TestPlayByPlayUsesFreshTimestamps(t *testing.T) {
	fixed := time.Date(2026, time.September, 1, 19, 30, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	plays, err := p.PlayByPlay(context.Background(), 900001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("expected two plays, got %d", len(plays))
	}
	if plays[1].StartTime != fixed.Format(time.RFC3339) {
		t.Fatalf("unexpected start time %s", plays[1].StartTime)
	}
	if plays[1].HalfInning != "bottom" {
		t.Fatalf("expected bottom half for the scoring play, got %s", plays[1].HalfInning)
	}
}
