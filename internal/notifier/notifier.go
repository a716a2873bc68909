package notifier

import (
	"fmt"
	"io"
	"time"

	"github.com/caretrack/caretrack/internal/constants"
	"github.com/caretrack/caretrack/internal/models"
	"github.com/caretrack/caretrack/internal/utils"
)

// Notification is one fired reminder, ready for delivery.
type Notification struct {
	TaskID      string
	Patient     string
	Description string
	TimeLabel   string
	Duration    time.Duration
}

// Sink delivers a fired reminder to the user.
type Sink interface {
	Notify(n Notification) error
}

// Marker persists the notified flag after a reminder fires.
type Marker interface {
	MarkNotified(taskID string) error
}

// Gate decides when reminders fire. It fires at most one notification per
// poll; the notified flag is set immediately so the same occurrence is never
// re-shown, and only a task edit re-arms it.
type Gate struct {
	sink   Sink
	marker Marker
}

func New(sink Sink, marker Marker) *Gate {
	return &Gate{sink: sink, marker: marker}
}

// DueInstant computes the reminder instant for a task. Window-typed tasks
// anchor to the start of their shift; tasks with neither an explicit time nor
// a window carry no reminder instant at all.
func DueInstant(task models.Task, settings models.Settings, now time.Time) (time.Time, bool) {
	date := utils.ParseDateOr(task.Date, now)

	switch task.TimeType {
	case models.TimeTypeExplicit:
		clock, err := utils.ParseClock(task.Time)
		if err != nil {
			return time.Time{}, false
		}
		return utils.Combine(date, clock), true
	case models.TimeTypeDay:
		clock := utils.ParseClockOr(settings.DayStart, utils.Noon())
		return utils.Combine(date, clock), true
	case models.TimeTypeEvening:
		clock := utils.ParseClockOr(settings.NightStart, utils.Noon())
		return utils.Combine(date, clock), true
	}
	return time.Time{}, false
}

// PollOnce scans the given tasks and fires at most one reminder whose due
// instant falls within the tolerance window around now. The fired task's
// notified flag is persisted through the marker before PollOnce returns; the
// returned notification is nil when nothing fired.
func (g *Gate) PollOnce(tasks []models.Task, completions []models.CompletionEntry, patients map[string]models.Patient, settings models.Settings, now time.Time) (*Notification, error) {
	if !settings.NotificationsEnabled {
		return nil, nil
	}

	today := utils.DateOf(now).Format(constants.DateFormat)
	doneToday := make(map[string]bool)
	for _, c := range completions {
		if c.CompletionDate == today {
			doneToday[c.TaskID] = true
		}
	}

	for _, task := range tasks {
		if task.Notified || task.Cancelled || doneToday[task.ID] {
			continue
		}

		dueAt, ok := DueInstant(task, settings, now)
		if !ok {
			continue
		}

		diff := dueAt.Sub(now)
		if diff < -constants.NotifyWindow || diff > constants.NotifyWindow {
			continue
		}

		n := buildNotification(task, patients, settings)
		if err := g.sink.Notify(n); err != nil {
			return nil, fmt.Errorf("delivering reminder for task %s: %w", task.ID, err)
		}
		if err := g.marker.MarkNotified(task.ID); err != nil {
			return nil, fmt.Errorf("persisting notified flag for task %s: %w", task.ID, err)
		}
		return &n, nil
	}

	return nil, nil
}

func buildNotification(task models.Task, patients map[string]models.Patient, settings models.Settings) Notification {
	patient := task.RoomNumber
	if p, ok := patients[task.RoomNumber]; ok {
		patient = p.DisplayName()
	}

	return Notification{
		TaskID:      task.ID,
		Patient:     patient,
		Description: task.Description,
		TimeLabel:   task.FormatTime(),
		Duration:    time.Duration(settings.NotificationDuration) * time.Second,
	}
}

// WriterSink renders reminders as plain text, used by the watch loop to put
// reminders on the terminal.
type WriterSink struct {
	Out io.Writer
}

func (s WriterSink) Notify(n Notification) error {
	_, err := fmt.Fprintf(s.Out, "\n*** Task reminder ***\nPatient: %s\nTask: %s\nTime: %s\n\n",
		n.Patient, n.Description, n.TimeLabel)
	return err
}
