package models

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack/internal/constants"
)

// TimeType says how a task's due instant is anchored within its occurrence day.
type TimeType string

const (
	TimeTypeExplicit TimeType = "explicit"       // due at Task.Time
	TimeTypeDay      TimeType = "day_window"     // anytime during the day shift
	TimeTypeEvening  TimeType = "evening_window" // anytime during the night shift
)

// ParseTimeType maps a stored time-type value onto the closed enum. Unknown
// values are rejected here, at the store-read boundary, rather than defaulted
// deep inside classification.
func ParseTimeType(s string) (TimeType, error) {
	switch TimeType(s) {
	case TimeTypeExplicit, TimeTypeDay, TimeTypeEvening:
		return TimeType(s), nil
	default:
		return "", fmt.Errorf("unknown time type %q", s)
	}
}

type RecurrenceType string

const (
	RecurrenceNone     RecurrenceType = "none"
	RecurrenceDaily    RecurrenceType = "daily"
	RecurrenceOddDays  RecurrenceType = "odd_days"
	RecurrenceEvenDays RecurrenceType = "even_days"
	RecurrenceWeekly   RecurrenceType = "weekly"
	RecurrenceNDays    RecurrenceType = "n_days"
)

// ParseRecurrenceType rejects unknown stored recurrence values.
func ParseRecurrenceType(s string) (RecurrenceType, error) {
	switch RecurrenceType(s) {
	case RecurrenceNone, RecurrenceDaily, RecurrenceOddDays, RecurrenceEvenDays,
		RecurrenceWeekly, RecurrenceNDays:
		return RecurrenceType(s), nil
	default:
		return "", fmt.Errorf("unknown recurrence type %q", s)
	}
}

type Recurrence struct {
	Type         RecurrenceType `json:"type"`
	Weekdays     []time.Weekday `json:"weekdays,omitempty"`
	IntervalDays int            `json:"interval_days,omitempty"`
}

// Task is a care task belonging to a patient's room.
type Task struct {
	ID          string     `json:"id"`
	RoomNumber  string     `json:"room_number"`
	Description string     `json:"description"`
	Time        string     `json:"time,omitempty"` // HH:MM, meaningful for TimeTypeExplicit
	TimeType    TimeType   `json:"time_type"`
	Recurrence  Recurrence `json:"recurrence"`
	Date        string     `json:"date"`               // activation date, YYYY-MM-DD
	EndDate     string     `json:"end_date,omitempty"` // last eligible date, inclusive
	Cancelled   bool       `json:"cancelled"`
	Notified    bool       `json:"notified"`

	// Legacy fields kept for store compatibility; superseded by the
	// completion ledger.
	Done          bool   `json:"done,omitempty"`
	CompletedTime string `json:"completed_time,omitempty"`
}

// Validate enforces the edit-time invariants. The recurrence resolver never
// re-validates: invalid rules must not reach the store.
func (t *Task) Validate() error {
	if t.RoomNumber == "" {
		return fmt.Errorf("task must belong to a room")
	}
	if t.Description == "" {
		return fmt.Errorf("task description cannot be empty")
	}

	if _, err := ParseTimeType(string(t.TimeType)); err != nil {
		return err
	}
	if t.TimeType == TimeTypeExplicit {
		if t.Time == "" {
			return fmt.Errorf("explicit tasks require a time")
		}
		if _, err := time.Parse(constants.TimeFormat, t.Time); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}

	if _, err := ParseRecurrenceType(string(t.Recurrence.Type)); err != nil {
		return err
	}
	if t.Recurrence.Type == RecurrenceWeekly && len(t.Recurrence.Weekdays) == 0 {
		return fmt.Errorf("weekdays must be specified for weekly recurrence")
	}
	if t.Recurrence.Type == RecurrenceNDays && t.Recurrence.IntervalDays < 1 {
		return fmt.Errorf("interval must be at least 1 for n_days recurrence")
	}

	if t.Date == "" {
		return fmt.Errorf("activation date cannot be empty")
	}
	start, err := time.Parse(constants.DateFormat, t.Date)
	if err != nil {
		return fmt.Errorf("invalid activation date (expected YYYY-MM-DD): %w", err)
	}
	if t.EndDate != "" {
		end, err := time.Parse(constants.DateFormat, t.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %w", err)
		}
		if end.Before(start) {
			return fmt.Errorf("end date %s is before activation date %s", t.EndDate, t.Date)
		}
	}

	return nil
}

// FormatRecurrence returns a human-readable string describing the task's
// recurrence pattern.
func (t *Task) FormatRecurrence() string {
	switch t.Recurrence.Type {
	case RecurrenceDaily:
		return "daily"
	case RecurrenceOddDays:
		return "odd days"
	case RecurrenceEvenDays:
		return "even days"
	case RecurrenceWeekly:
		days := make([]string, len(t.Recurrence.Weekdays))
		for i, wd := range t.Recurrence.Weekdays {
			days[i] = wd.String()[:3]
		}
		return fmt.Sprintf("weekly: %v", days)
	case RecurrenceNDays:
		if t.Recurrence.IntervalDays == 1 {
			return "daily"
		}
		return fmt.Sprintf("every %d days", t.Recurrence.IntervalDays)
	default:
		return "one-time"
	}
}

// FormatTime returns the human-readable timing label shown in lists and
// reminders: the clock time for explicit tasks, a phrase for window types.
func (t *Task) FormatTime() string {
	switch t.TimeType {
	case TimeTypeDay:
		return "during the day"
	case TimeTypeEvening:
		return "in the evening"
	default:
		return t.Time
	}
}

// ArchivedTask is the trimmed shape a task is reduced to when archived,
// matching the archive table. Status flags are intentionally dropped; a
// restored task starts over as active and unnotified.
type ArchivedTask struct {
	ID          int64  `json:"id"`
	RoomNumber  string `json:"room_number"`
	Description string `json:"description"`
	Time        string `json:"time,omitempty"`
	Date        string `json:"date"`
	EndDate     string `json:"end_date,omitempty"`
	TimeType    string `json:"time_type"`
}
