package domain

import "strings"

// Canonical detailed-state strings from the upstream schedule/live feed.
const (
	StatusInProgress = "In Progress"
	StatusGameOver   = "Game Over"
	StatusFinal      = "Final"
	StatusPostponed  = "Postponed"
)

// IsLive reports whether a detailed state represents an in-progress game,
// including the review/challenge sub-states the feed substitutes mid-play.
func IsLive(status string) bool {
	return status == StatusInProgress ||
		strings.HasPrefix(status, "Manager challenge") ||
		strings.HasPrefix(status, "Umpire review")
}

// IsTerminal reports whether a detailed state means the game has ended.
func IsTerminal(status string) bool {
	return status == StatusFinal || status == StatusGameOver
}

// ScheduledGame is one schedule entry for the monitored team.
type ScheduledGame struct {
	GamePk int
	Status string
}

// GameDetail is the normalized live-feed view of a single game.
type GameDetail struct {
	GamePk       int
	GameID       string // slash-form id, e.g. "2026/08/31/nynmlb-phimlb-2"
	DoubleHeader string // "N", "Y", or "S" (split doubleheader)
	Status       string
	HomeID       int
	AwayID       int
	HomeScore    int
	AwayScore    int
}

// IsDoubleheaderGame2 reports whether this game is the second game of a
// split doubleheader, which the schedule lists alongside game one.
func (d GameDetail) IsDoubleheaderGame2() bool {
	return d.DoubleHeader == "S" && strings.HasSuffix(d.GameID, "-2")
}

// Play is one at-bat record from the play-by-play feed. Index is assigned
// per game by the upstream feed and is monotonically increasing.
// Description and StartTime arrive a beat after the play begins; either may
// be empty while the at-bat is still being written.
type Play struct {
	Index       int
	Description string
	Event       string // upstream event name, e.g. "Mound Visit"
	HalfInning  string // "top" or "bottom"
	StartTime   string // RFC3339 start of the first play event
}

// TrackedGame is the single contest the watcher currently follows.
type TrackedGame struct {
	GamePk int
	Status string
	HomeID int
	AwayID int
}
