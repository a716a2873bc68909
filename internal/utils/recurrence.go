package utils

import (
	"time"

	"github.com/caretrack/caretrack/internal/constants"
	"github.com/caretrack/caretrack/internal/models"
)

// OccursOn decides whether a recurrence rule produces an occurrence on the
// target date. Pure and total over valid rules; rule validity (non-empty
// weekday set, interval >= 1) is enforced at edit time, never here.
//
// The end date, when set, is an unconditional inclusive cutoff for every rule.
func OccursOn(rec models.Recurrence, activation, end, target time.Time) bool {
	activation = DateOf(activation)
	target = DateOf(target)

	// Calendar-day comparison: end and target may carry different locations.
	if !end.IsZero() && DaysBetween(end, target) > 0 {
		return false
	}

	switch rec.Type {
	case models.RecurrenceNone:
		return target.Equal(activation)
	case models.RecurrenceDaily:
		return !target.Before(activation)
	case models.RecurrenceOddDays:
		// A global calendar parity filter, deliberately not anchored to the
		// activation date.
		return target.Day()%2 == 1
	case models.RecurrenceEvenDays:
		return target.Day()%2 == 0
	case models.RecurrenceWeekly:
		for _, wd := range rec.Weekdays {
			if target.Weekday() == wd {
				return true
			}
		}
		return false
	case models.RecurrenceNDays:
		if rec.IntervalDays < 1 {
			return false
		}
		delta := DaysBetween(activation, target)
		return delta >= 0 && delta%rec.IntervalDays == 0
	default:
		return false
	}
}

// TaskOccursOn applies OccursOn to a task's stored rule and date bounds,
// parsing them defensively. A task with no usable activation date is treated
// as activating on the target date itself.
func TaskOccursOn(task models.Task, target time.Time) bool {
	activation := ParseDateOr(task.Date, target)

	var end time.Time
	if task.EndDate != "" {
		if parsed, err := time.ParseInLocation(constants.DateFormat, task.EndDate, target.Location()); err == nil {
			end = parsed
		}
	}

	if OccursOn(task.Recurrence, activation, end, target) {
		return true
	}

	// Legacy rows with no rule at all still surface on their own stored date.
	return task.Recurrence.Type == "" && SameDate(activation, target)
}
