package tasks

import (
	"fmt"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/models"
)

type TaskEditCmd struct {
	ID string `arg:"" help:"Task id to edit."`

	Description *string `help:"New description."`
	Time        *string `short:"t" help:"New due time (HH:MM). An empty value clears it."`
	TimeType    *string `help:"New timing anchor: explicit, day_window or evening_window."`
	Recurrence  *string `short:"r" help:"New recurrence: none, daily, odd_days, even_days, weekly or n_days."`
	Weekdays    *string `short:"w" help:"New comma-separated weekdays for weekly recurrence."`
	Interval    *int    `short:"i" help:"New day interval for n_days recurrence."`
	Date        *string `short:"d" help:"New activation date (YYYY-MM-DD)."`
	EndDate     *string `help:"New end date (YYYY-MM-DD). An empty value clears it."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task %s: %w", c.ID, err)
	}

	if c.Description != nil {
		task.Description = *c.Description
	}
	if c.Time != nil {
		task.Time = *c.Time
	}
	if c.TimeType != nil {
		timeType, err := models.ParseTimeType(*c.TimeType)
		if err != nil {
			return err
		}
		task.TimeType = timeType
	}
	if c.Recurrence != nil {
		recType, err := models.ParseRecurrenceType(*c.Recurrence)
		if err != nil {
			return err
		}
		task.Recurrence.Type = recType
		if recType != models.RecurrenceWeekly {
			task.Recurrence.Weekdays = nil
		}
		if recType != models.RecurrenceNDays {
			task.Recurrence.IntervalDays = 0
		}
	}
	if c.Weekdays != nil {
		weekdays, err := cli.ParseWeekdays(*c.Weekdays)
		if err != nil {
			return err
		}
		task.Recurrence.Weekdays = weekdays
	}
	if c.Interval != nil {
		task.Recurrence.IntervalDays = *c.Interval
	}
	if c.Date != nil {
		task.Date = *c.Date
	}
	if c.EndDate != nil {
		task.EndDate = *c.EndDate
	}

	// UpdateTask clears the notified flag so the reminder can fire again
	// with the new timing.
	if err := ctx.Service.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("Updated task %s: %s\n", task.ID, task.Description)
	return nil
}
