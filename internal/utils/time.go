package utils

import (
	"time"

	"github.com/caretrack/caretrack/internal/constants"
)

// noon is the placeholder time-of-day for tasks without an explicit time.
var noon = mustClock("12:00")

func mustClock(s string) time.Time {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// ParseDateOr parses a stored date string, falling back to the given date when
// the value is empty or malformed. Stored garbage must never fail a whole
// classification pass.
func ParseDateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return DateOf(fallback)
	}
	d, err := time.ParseInLocation(constants.DateFormat, s, fallback.Location())
	if err != nil {
		return DateOf(fallback)
	}
	return d
}

// ParseClock parses an HH:MM time-of-day string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, s)
}

// ParseClockOr parses a stored HH:MM string, falling back to the given clock
// value when empty or malformed.
func ParseClockOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return fallback
	}
	return t
}

// Noon returns the placeholder clock value used when a task carries no
// explicit time.
func Noon() time.Time {
	return noon
}

// DateOf truncates an instant to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of whole calendar days from a to b. Both
// values are truncated to their dates first, so DST shifts cannot skew the
// count.
func DaysBetween(a, b time.Time) int {
	da := DateOf(a).UTC()
	db := DateOf(b).UTC()
	ua := time.Date(da.Year(), da.Month(), da.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(db.Year(), db.Month(), db.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Combine merges a calendar date and a clock value into a single instant in
// the date's location.
func Combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}

// FormatClock renders an instant's time-of-day in the configured clock format.
func FormatClock(t time.Time, clockFormat string) string {
	if clockFormat == constants.ClockFormat12 {
		return t.Format("03:04:05 PM")
	}
	return t.Format("15:04:05")
}
