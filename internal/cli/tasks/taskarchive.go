package tasks

import (
	"fmt"

	"github.com/caretrack/caretrack/internal/cli"
)

type TaskArchiveCmd struct {
	ID  string `arg:"" help:"Task id to archive."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *TaskArchiveCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task %s: %w", c.ID, err)
	}

	if !c.Yes && !cli.Confirm(fmt.Sprintf("Archive task %q for room %s?", task.Description, task.RoomNumber)) {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ArchiveTask(c.ID); err != nil {
		return fmt.Errorf("failed to archive task: %w", err)
	}
	fmt.Printf("Archived task %s\n", c.ID)
	return nil
}

type TaskRestoreCmd struct {
	ArchiveID int64 `arg:"" help:"Archive entry id to restore (see task list --archived)."`
}

func (c *TaskRestoreCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.RestoreTask(c.ArchiveID)
	if err != nil {
		return fmt.Errorf("failed to restore task: %w", err)
	}
	fmt.Printf("Restored task %s: %s (room %s)\n", task.ID, task.Description, task.RoomNumber)
	return nil
}

type TaskDeleteCmd struct {
	ID  string `arg:"" help:"Task id to delete permanently."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task %s: %w", c.ID, err)
	}

	if !c.Yes && !cli.Confirm(fmt.Sprintf("Permanently delete task %q for room %s? This cannot be undone.", task.Description, task.RoomNumber)) {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	fmt.Printf("Deleted task %s\n", c.ID)
	return nil
}

// TaskPurgeCmd permanently deletes an archived task entry.
type TaskPurgeCmd struct {
	ArchiveID int64 `arg:"" help:"Archive entry id to delete permanently."`
	Yes       bool  `short:"y" help:"Skip confirmation."`
}

func (c *TaskPurgeCmd) Run(ctx *cli.Context) error {
	if !c.Yes && !cli.Confirm(fmt.Sprintf("Permanently delete archived task %d? This cannot be undone.", c.ArchiveID)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Store.DeleteArchivedTask(c.ArchiveID); err != nil {
		return fmt.Errorf("failed to delete archived task: %w", err)
	}
	fmt.Printf("Permanently deleted archived task %d\n", c.ArchiveID)
	return nil
}
