package board

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/constants"
)

type DayCmd struct {
	Date string `arg:"" help:"Calendar date to inspect (YYYY-MM-DD)."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	date, err := time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %w", err)
	}

	tasks, done, err := ctx.Service.DayView(date, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build day view: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Printf("No tasks on %s\n", c.Date)
		return nil
	}

	patients, err := ctx.Service.PatientDirectory()
	if err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}

	fmt.Printf("Tasks on %s:\n", c.Date)
	for _, t := range tasks {
		who := t.RoomNumber
		if p, ok := patients[t.RoomNumber]; ok {
			who = p.DisplayName()
		}
		when := t.FormatTime()
		mark := " "
		if done[t.ID] {
			mark = "x"
		}
		fmt.Printf("  [%s] %s  %s  (%s)\n", mark, who, t.Description, when)
	}
	return nil
}
