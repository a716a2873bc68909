package tasks

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack/internal/cli"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id to mark done for today."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.Service.MarkDone(c.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to mark task done: %w", err)
	}
	fmt.Printf("Marked task %s done for today\n", c.ID)
	return nil
}

type TaskUndoneCmd struct {
	ID string `arg:"" help:"Task id to mark not done for today."`
}

func (c *TaskUndoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.Service.MarkNotDone(c.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to mark task not done: %w", err)
	}
	fmt.Printf("Marked task %s not done for today\n", c.ID)
	return nil
}

type TaskCancelCmd struct {
	ID  string `arg:"" help:"Task id to stop."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *TaskCancelCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task %s: %w", c.ID, err)
	}

	if !c.Yes && !cli.Confirm(fmt.Sprintf("Stop task %q for room %s?", task.Description, task.RoomNumber)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Service.MarkCancelled(c.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to stop task: %w", err)
	}
	fmt.Printf("Stopped task %s\n", c.ID)
	return nil
}
