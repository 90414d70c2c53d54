package watcher

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"mlb-apple-service/internal/config"
	"mlb-apple-service/internal/domain"
)

// Decision is the classifier's verdict for one play.
type Decision int

const (
	// DecisionIncomplete means the play is not fully formed yet and must be
	// re-evaluated on the next tick.
	DecisionIncomplete Decision = iota
	// DecisionNoEvent means the play completed without a relevant score.
	DecisionNoEvent
	// DecisionScore means the monitored team recorded a scoring event.
	DecisionScore
)

// Result pairs the decision with whether the play index should be marked
// processed. Incomplete plays and filler events are never marked, so they
// stay re-evaluable.
type Result struct {
	Decision Decision
	Remember bool
}

var (
	multiOutPattern = regexp.MustCompile(`\b(?:double|triple) play\b`)
	stealPattern    = regexp.MustCompile(`\bsteals?\b`)
)

// Classifier decides whether a play is a new, fully-formed scoring event for
// the monitored team. It is a pure function of the play, game context, and
// the configured vocabulary; the grace cutoff excludes plays that predate the
// process so a restart mid-game does not replay the whole feed.
type Classifier struct {
	scoring      *regexp.Regexp
	fillerEvents map[string]struct{}
	cutoff       time.Time
}

// NewClassifier builds a Classifier from the detection vocabulary. startedAt
// is the process start; plays beginning more than a minute earlier are
// treated as pre-existing history.
func NewClassifier(cfg config.DetectionConfig, startedAt time.Time) (*Classifier, error) {
	scoring, err := regexp.Compile(fmt.Sprintf(`\b(?:%s)\b`, strings.Join(cfg.ScoringTerms, "|")))
	if err != nil {
		return nil, fmt.Errorf("compile scoring vocabulary: %w", err)
	}

	filler := make(map[string]struct{}, len(cfg.FillerEvents))
	for _, name := range cfg.FillerEvents {
		filler[strings.ToLower(name)] = struct{}{}
	}

	return &Classifier{
		scoring:      scoring,
		fillerEvents: filler,
		cutoff:       startedAt.Add(-time.Minute),
	}, nil
}

// Classify evaluates one play for the monitored team. Callers must check the
// processed set themselves before invoking; Classify assumes the index is new.
func (c *Classifier) Classify(play domain.Play, game domain.TrackedGame, teamID int) Result {
	if play.Description == "" || play.StartTime == "" {
		return Result{Decision: DecisionIncomplete}
	}

	startedAt, err := time.Parse(time.RFC3339, play.StartTime)
	if err != nil {
		// A malformed timestamp reads as not-yet-formed; the feed rewrites
		// play events until the at-bat settles.
		return Result{Decision: DecisionIncomplete}
	}
	if startedAt.Before(c.cutoff) {
		return Result{Decision: DecisionNoEvent, Remember: true}
	}

	desc := strings.ToLower(play.Description)

	if stealPattern.MatchString(desc) {
		// A steal mid-at-bat means the at-bat is still running; hold the
		// play open until it resolves.
		return Result{Decision: DecisionIncomplete}
	}

	remember := !c.isFiller(play.Event)

	if multiOutPattern.MatchString(desc) {
		return Result{Decision: DecisionNoEvent, Remember: remember}
	}

	battingID := game.AwayID
	if play.HalfInning == "bottom" {
		battingID = game.HomeID
	}

	if battingID == teamID && c.scoring.MatchString(desc) {
		return Result{Decision: DecisionScore, Remember: remember}
	}
	return Result{Decision: DecisionNoEvent, Remember: remember}
}

func (c *Classifier) isFiller(event string) bool {
	_, ok := c.fillerEvents[strings.ToLower(event)]
	return ok
}
