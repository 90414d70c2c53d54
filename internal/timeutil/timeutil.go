package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// LeagueTimezone is the reference timezone for schedule dates. MLB publishes
// its schedule in Eastern time, and a game crossing midnight UTC must still
// resolve to the correct calendar day.
const LeagueTimezone = "America/New_York"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LeagueLocation returns the league reference location, falling back to UTC
// when the timezone database is unavailable.
func LeagueLocation() *time.Location {
	loc, err := time.LoadLocation(LeagueTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ScheduleWindow returns the yesterday/today date pair for schedule lookups,
// evaluated in the league timezone.
func ScheduleWindow(now time.Time) (start, end string) {
	local := now.In(LeagueLocation())
	return FormatDate(local.AddDate(0, 0, -1)), FormatDate(local)
}
