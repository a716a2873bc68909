package tasks

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/models"
)

type TaskAddCmd struct {
	Room        string `arg:"" help:"Room number the task belongs to."`
	Description string `arg:"" help:"What needs to be done."`

	Time       string `short:"t" help:"Due time (HH:MM). Implies an explicit time type."`
	TimeType   string `help:"Timing anchor: explicit, day_window or evening_window." enum:"explicit,day_window,evening_window," default:""`
	Recurrence string `short:"r" help:"Recurrence: none, daily, odd_days, even_days, weekly or n_days." enum:"none,daily,odd_days,even_days,weekly,n_days" default:"none"`
	Weekdays   string `short:"w" help:"Comma-separated weekdays for weekly recurrence (e.g. mon,thu)."`
	Interval   int    `short:"i" help:"Day interval for n_days recurrence."`
	Date       string `short:"d" help:"Activation date (YYYY-MM-DD). Defaults to today."`
	EndDate    string `help:"Last eligible date (YYYY-MM-DD), inclusive."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetPatient(c.Room); err != nil {
		return fmt.Errorf("no patient in room %s: %w", c.Room, err)
	}

	timeType := models.TimeType(c.TimeType)
	if timeType == "" {
		if c.Time != "" {
			timeType = models.TimeTypeExplicit
		} else {
			timeType = models.TimeTypeDay
		}
	}

	task := models.Task{
		RoomNumber:  c.Room,
		Description: c.Description,
		Time:        c.Time,
		TimeType:    timeType,
		Date:        c.Date,
		EndDate:     c.EndDate,
		Recurrence: models.Recurrence{
			Type:         models.RecurrenceType(c.Recurrence),
			IntervalDays: c.Interval,
		},
	}

	if c.Weekdays != "" {
		weekdays, err := cli.ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
		task.Recurrence.Weekdays = weekdays
	}

	created, err := ctx.Service.CreateTask(task, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Printf("Added task %s: %s (room %s, %s)\n",
		created.ID, created.Description, created.RoomNumber, created.FormatRecurrence())
	return nil
}
