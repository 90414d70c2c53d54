package watcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mlb-apple-service/internal/domain"
	"mlb-apple-service/internal/logging"
	"mlb-apple-service/internal/metrics"
	"mlb-apple-service/internal/providers"
	"mlb-apple-service/internal/store"
	"mlb-apple-service/internal/trigger"
)

const defaultInterval = 15 * time.Second

// Watcher drives the game-tracking state machine on a fixed tick: resolve the
// active game, detect the monitored team's scoring plays, detect wins, and
// enqueue triggers. All game state (tracked game, processed plays, fired
// wins) is owned by the tick goroutine; the shared store and queue carry the
// synchronized surface.
type Watcher struct {
	locator    *Locator
	provider   providers.GameProvider
	classifier *Classifier
	queue      *trigger.Queue
	store      *store.MemoryStore
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	playWindow int

	game          domain.TrackedGame
	processed     map[int]struct{}
	triggeredWins map[int]struct{}

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the watcher loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the watcher has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Watcher with sane defaults.
func New(provider providers.GameProvider, classifier *Classifier, queue *trigger.Queue, st *store.MemoryStore, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, playWindow int) *Watcher {
	if interval <= 0 {
		interval = defaultInterval
	}
	if playWindow <= 0 {
		playWindow = 2
	}
	return &Watcher{
		locator:       NewLocator(provider, logger),
		provider:      provider,
		classifier:    classifier,
		queue:         queue,
		store:         st,
		logger:        logger,
		metrics:       recorder,
		interval:      interval,
		playWindow:    playWindow,
		processed:     make(map[int]struct{}),
		triggeredWins: make(map[int]struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins ticking until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		logging.Info(w.logger, "watcher started", slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()))
		// Initial tick so a game already underway is picked up on boot.
		w.tick(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				logging.Info(w.logger, "watcher stopped")
				return
			case <-w.done:
				w.stopTicker()
				logging.Info(w.logger, "watcher stopped")
				return
			case <-w.ticker.C:
				w.tick(ctx)
			}
		}
	}()
}

// Stop halts the tick loop.
func (w *Watcher) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

func (w *Watcher) tick(ctx context.Context) {
	start := time.Now()
	w.recordAttempt(start)
	teamID := w.store.MonitoredTeam()

	detail, ok := w.locator.Locate(ctx, teamID)
	if !ok {
		// Off day or provider hiccup; either way there is nothing to track
		// until the next tick.
		logging.Info(w.logger, "no active or recent game", logging.FieldTeamID, teamID)
		w.finishTick(start, nil)
		return
	}

	if detail.GamePk != w.game.GamePk {
		logging.Info(w.logger, "switched to new game",
			logging.FieldGamePk, detail.GamePk, logging.FieldGameStatus, detail.Status)
		w.game = domain.TrackedGame{
			GamePk: detail.GamePk,
			Status: detail.Status,
			HomeID: detail.HomeID,
			AwayID: detail.AwayID,
		}
		w.processed = make(map[int]struct{})
	} else if detail.Status != w.game.Status {
		logging.Info(w.logger, "game status changed",
			logging.FieldGamePk, detail.GamePk, logging.FieldGameStatus, detail.Status)
		w.game.Status = detail.Status
	}
	w.store.SetTrackedGame(w.game.GamePk, w.game.Status)

	w.checkWin(detail, teamID)

	err := w.scanPlays(ctx, teamID)
	w.finishTick(start, err)
}

// checkWin fires at most one TEAM_WIN trigger per game pk, ever. The check
// re-runs while the game stays terminal, which is why fired ids are recorded.
func (w *Watcher) checkWin(detail domain.GameDetail, teamID int) {
	if !domain.IsTerminal(detail.Status) {
		return
	}
	if _, fired := w.triggeredWins[detail.GamePk]; fired {
		return
	}

	won := (detail.HomeID == teamID && detail.HomeScore > detail.AwayScore) ||
		(detail.AwayID == teamID && detail.AwayScore > detail.HomeScore)
	if !won {
		return
	}

	logging.Info(w.logger, "monitored team won",
		logging.FieldTeamID, teamID,
		logging.FieldGamePk, detail.GamePk,
		"home_score", detail.HomeScore,
		"away_score", detail.AwayScore,
	)
	w.enqueue(trigger.ReasonTeamWin)
	w.triggeredWins[detail.GamePk] = struct{}{}
}

func (w *Watcher) scanPlays(ctx context.Context, teamID int) error {
	plays, err := w.provider.PlayByPlay(ctx, w.game.GamePk)
	if err != nil {
		logging.Error(w.logger, "play-by-play fetch failed", err, logging.FieldGamePk, w.game.GamePk)
		return err
	}

	// Only the tail of the feed is scanned; a play that never completes
	// before scrolling out of this window is missed for good.
	if len(plays) > w.playWindow {
		plays = plays[len(plays)-w.playWindow:]
	}

	for _, play := range plays {
		if _, seen := w.processed[play.Index]; seen {
			continue
		}

		result := w.classifier.Classify(play, w.game, teamID)
		if result.Decision == DecisionScore {
			logging.Info(w.logger, "scoring play detected",
				logging.FieldTeamID, teamID,
				logging.FieldPlayIndex, play.Index,
			)
			w.enqueue(trigger.ReasonScoringPlay)
		}
		if result.Remember {
			w.processed[play.Index] = struct{}{}
		}
	}
	return nil
}

func (w *Watcher) enqueue(reason trigger.Reason) {
	w.queue.Enqueue(reason)
	if w.metrics != nil {
		w.metrics.RecordTriggerEnqueued(string(reason))
	}
}

func (w *Watcher) finishTick(start time.Time, err error) {
	if w.metrics != nil {
		w.metrics.RecordWatcherTick(time.Since(start), err)
	}
	if err != nil {
		w.recordFailure(err, start)
		return
	}
	w.recordSuccess(start)
}

func (w *Watcher) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Watcher) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Watcher) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Watcher) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the watcher's recent health.
func (w *Watcher) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
