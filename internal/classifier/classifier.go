package classifier

import (
	"sort"
	"time"

	"github.com/caretrack/caretrack/internal/constants"
	"github.com/caretrack/caretrack/internal/models"
	"github.com/caretrack/caretrack/internal/utils"
)

// Shift partitions tasks between the day and night staff rotations. The
// partition is presentational only; it never changes a task's status.
type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

// Status is the single bucket a task lands in for the reference instant.
type Status string

const (
	StatusDue       Status = "due"
	StatusCompleted Status = "completed"
	StatusUpcoming  Status = "upcoming"
	StatusCancelled Status = "cancelled"
)

// Entry is one classified task occurrence.
type Entry struct {
	Task   models.Task
	Shift  Shift
	Status Status
	DueAt  time.Time
}

// Buckets groups one shift's entries by status.
type Buckets struct {
	Due       []Entry
	Completed []Entry
	Upcoming  []Entry
	Cancelled []Entry
}

// Counts aggregates a classification pass. Total counts completed, due and
// cancelled occurrences across both shifts; upcoming is reported separately.
type Counts struct {
	Total     int
	Completed int
	Due       int
	Upcoming  int
	Cancelled int
}

// Report is the full result handed to the rendering collaborator.
type Report struct {
	Day    Buckets
	Night  Buckets
	Counts Counts
}

// ShiftOf assigns a task to a shift. Window-typed tasks carry their shift
// directly; explicit times are compared against [dayStart, dayEnd). The second
// return is false for rows that carry neither, which are left out of shift
// grouping entirely.
func ShiftOf(task models.Task, settings models.Settings) (Shift, bool) {
	switch task.TimeType {
	case models.TimeTypeDay:
		return ShiftDay, true
	case models.TimeTypeEvening:
		return ShiftNight, true
	}

	if task.Time == "" {
		return "", false
	}
	clock, err := utils.ParseClock(task.Time)
	if err != nil {
		return "", false
	}

	dayStart := utils.ParseClockOr(settings.DayStart, mustClock(constants.DefaultDayStart))
	dayEnd := utils.ParseClockOr(settings.DayEnd, mustClock(constants.DefaultDayEnd))
	if !clock.Before(dayStart) && clock.Before(dayEnd) {
		return ShiftDay, true
	}
	return ShiftNight, true
}

func mustClock(s string) time.Time {
	t, err := utils.ParseClock(s)
	if err != nil {
		panic(err)
	}
	return t
}

// DueAt computes a task's due instant for the date its stored date field
// names, defaulting to the reference date when absent or malformed. Only
// explicit tasks anchor to their own time; everything else gets the noon
// placeholder.
func DueAt(task models.Task, reference time.Time) time.Time {
	date := utils.ParseDateOr(task.Date, reference)
	clock := utils.Noon()
	if task.TimeType == models.TimeTypeExplicit {
		clock = utils.ParseClockOr(task.Time, utils.Noon())
	}
	return utils.Combine(date, clock)
}

// Classify places every task into exactly one bucket for the reference
// instant, per shift, and aggregates counts. It reads nothing but its
// arguments: "now" and settings are always passed in explicitly so a fixed
// clock reproduces any pass.
func Classify(tasks []models.Task, completions []models.CompletionEntry, settings models.Settings, now time.Time) Report {
	today := utils.DateOf(now)
	todayStr := today.Format(constants.DateFormat)

	completedToday := make(map[string]models.CompletionEntry)
	for _, c := range completions {
		if c.CompletionDate == todayStr {
			completedToday[c.TaskID] = c
		}
	}

	timeout := time.Duration(settings.CompletedTimeoutHours) * time.Hour

	var report Report
	for _, task := range tasks {
		dueAt := DueAt(task, now)

		// Occurrences more than a day late are never surfaced, whatever
		// their status.
		if dueAt.Before(now.Add(-constants.OverdueCutoff)) {
			continue
		}

		shift, ok := ShiftOf(task, settings)
		if !ok {
			continue
		}

		if !utils.TaskOccursOn(task, today) {
			continue
		}

		completion, doneToday := completedToday[task.ID]
		if doneToday && timeout > 0 && now.Sub(completion.CompletedAt) > timeout {
			// Completed long enough ago that it has aged off the board.
			continue
		}

		isToday := utils.SameDate(utils.ParseDateOr(task.Date, now), today)

		var status Status
		switch {
		case task.Cancelled && isToday:
			status = StatusCancelled
		case doneToday && isToday:
			status = StatusCompleted
		case !doneToday && !task.Cancelled && (!dueAt.After(now) || task.Notified):
			// An acknowledged reminder pins the task in Due until resolved,
			// even if its computed instant is still ahead.
			status = StatusDue
		case !doneToday && !dueAt.After(now.Add(24*time.Hour)):
			status = StatusUpcoming
		default:
			continue
		}

		entry := Entry{Task: task, Shift: shift, Status: status, DueAt: dueAt}
		buckets := &report.Day
		if shift == ShiftNight {
			buckets = &report.Night
		}
		switch status {
		case StatusDue:
			buckets.Due = append(buckets.Due, entry)
		case StatusCompleted:
			buckets.Completed = append(buckets.Completed, entry)
		case StatusUpcoming:
			buckets.Upcoming = append(buckets.Upcoming, entry)
		case StatusCancelled:
			buckets.Cancelled = append(buckets.Cancelled, entry)
		}
	}

	for _, b := range []*Buckets{&report.Day, &report.Night} {
		sortByDue(b.Due)
		sortByDue(b.Completed)
		sortByDue(b.Upcoming)
		sortByDue(b.Cancelled)
	}

	report.Counts = Counts{
		Completed: len(report.Day.Completed) + len(report.Night.Completed),
		Due:       len(report.Day.Due) + len(report.Night.Due),
		Upcoming:  len(report.Day.Upcoming) + len(report.Night.Upcoming),
		Cancelled: len(report.Day.Cancelled) + len(report.Night.Cancelled),
	}
	report.Counts.Total = report.Counts.Completed + report.Counts.Due + report.Counts.Cancelled

	return report
}

// OccurrencesOn lists the tasks that occur on an arbitrary calendar date,
// applying the same overdue cutoff as Classify. This backs the day/calendar
// view.
func OccurrencesOn(tasks []models.Task, date, now time.Time) []models.Task {
	var out []models.Task
	for _, task := range tasks {
		if !utils.TaskOccursOn(task, date) {
			continue
		}
		clock := utils.Noon()
		if task.TimeType == models.TimeTypeExplicit {
			clock = utils.ParseClockOr(task.Time, utils.Noon())
		}
		if utils.Combine(utils.DateOf(date), clock).Before(now.Add(-constants.OverdueCutoff)) {
			continue
		}
		out = append(out, task)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

func sortByDue(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DueAt.Before(entries[j].DueAt)
	})
}
