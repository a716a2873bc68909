package tasks

import (
	"fmt"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/models"
)

type TaskListCmd struct {
	Room     string `short:"r" help:"Only list tasks for this room."`
	Archived bool   `help:"List archived tasks instead of active ones."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	if c.Archived {
		return c.listArchived(ctx)
	}

	tasks, err := listTasks(ctx, c.Room)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, t := range tasks {
		line := fmt.Sprintf("%s  room %s  %s", t.ID, t.RoomNumber, t.Description)
		if t.TimeType == models.TimeTypeExplicit {
			line += "  at " + t.Time
		} else {
			line += "  " + t.FormatTime()
		}
		line += "  [" + t.FormatRecurrence() + "]"
		if t.Cancelled {
			line += "  (stopped)"
		}
		fmt.Println(line)
	}
	return nil
}

func listTasks(ctx *cli.Context, room string) ([]models.Task, error) {
	if room != "" {
		return ctx.Store.GetTasksForRoom(room)
	}
	return ctx.Store.GetAllTasks()
}

func (c *TaskListCmd) listArchived(ctx *cli.Context) error {
	archived, err := ctx.Store.GetArchivedTasks()
	if err != nil {
		return fmt.Errorf("failed to list archived tasks: %w", err)
	}
	if len(archived) == 0 {
		fmt.Println("No archived tasks.")
		return nil
	}
	for _, t := range archived {
		line := fmt.Sprintf("%d  room %s  %s", t.ID, t.RoomNumber, t.Description)
		if t.Time != "" {
			line += "  at " + t.Time
		}
		fmt.Println(line)
	}
	return nil
}
