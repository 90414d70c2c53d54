package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("statsapi", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("statsapi", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("statsapi"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("statsapi"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("statsapi"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("statsapi")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksTriggerTraffic(t *testing.T) {
	rec := NewRecorder()
	rec.RecordTriggerEnqueued("SCORING_PLAY")
	rec.RecordTriggerEnqueued("SCORING_PLAY")
	rec.RecordTriggerEnqueued("TEAM_WIN")
	rec.RecordTriggerPoll(true)
	rec.RecordTriggerPoll(false)

	if got := rec.TriggersEnqueued("SCORING_PLAY"); got != 2 {
		t.Fatalf("expected 2 scoring-play triggers, got %d", got)
	}
	if got := rec.TriggersEnqueued("TEAM_WIN"); got != 1 {
		t.Fatalf("expected 1 win trigger, got %d", got)
	}
	if got := rec.TriggersDelivered(); got != 1 {
		t.Fatalf("expected 1 delivered trigger, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordProviderAttempt("statsapi", time.Millisecond, nil)
	rec.RecordTriggerEnqueued("MANUAL")
	rec.RecordTriggerPoll(false)
	rec.RecordHTTPRequest("GET", "/trigger", 200, time.Millisecond)
	rec.RecordWatcherTick(time.Millisecond, nil)

	if got := rec.ProviderCalls("statsapi"); got != 0 {
		t.Fatalf("expected zero calls from nil recorder, got %d", got)
	}
	if got := rec.TriggersDelivered(); got != 0 {
		t.Fatalf("expected zero delivered from nil recorder, got %d", got)
	}
}

func TestSnapshotUnknownProvider(t *testing.T) {
	rec := NewRecorder()
	snap := rec.Snapshot("unknown")
	if snap.Calls != 0 || snap.Errors != 0 || snap.LastCallLatency != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
