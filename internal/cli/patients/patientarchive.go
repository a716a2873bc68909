package patients

import (
	"fmt"

	"github.com/caretrack/caretrack/internal/cli"
)

// PatientDeleteCmd archives a patient and all of their tasks. Nothing is
// destroyed; both can be restored from the archive.
type PatientDeleteCmd struct {
	Room string `arg:"" help:"Room number of the patient to archive."`
	Yes  bool   `short:"y" help:"Skip confirmation."`
}

func (c *PatientDeleteCmd) Run(ctx *cli.Context) error {
	patient, err := ctx.Store.GetPatient(c.Room)
	if err != nil {
		return fmt.Errorf("failed to find patient in room %s: %w", c.Room, err)
	}

	if !c.Yes && !cli.Confirm(fmt.Sprintf("Archive patient %s and all their tasks?", patient.DisplayName())) {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ArchivePatient(c.Room); err != nil {
		return fmt.Errorf("failed to archive patient: %w", err)
	}

	fmt.Printf("Archived patient: %s\n", patient.DisplayName())
	return nil
}

type PatientRestoreCmd struct {
	Room string `arg:"" help:"Room number of the archived patient to restore."`
	Yes  bool   `short:"y" help:"Skip confirmation."`
}

func (c *PatientRestoreCmd) Run(ctx *cli.Context) error {
	if !c.Yes && !cli.Confirm(fmt.Sprintf("Restore patient in room %s?", c.Room)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Store.RestorePatient(c.Room); err != nil {
		return fmt.Errorf("failed to restore patient: %w", err)
	}

	fmt.Printf("Restored patient in room %s\n", c.Room)
	return nil
}

// PatientPurgeCmd permanently deletes an archived patient.
type PatientPurgeCmd struct {
	Room string `arg:"" help:"Room number of the archived patient to delete permanently."`
	Yes  bool   `short:"y" help:"Skip confirmation."`
}

func (c *PatientPurgeCmd) Run(ctx *cli.Context) error {
	if !c.Yes && !cli.Confirm(fmt.Sprintf("Permanently delete archived patient in room %s? This cannot be undone.", c.Room)) {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteArchivedPatient(c.Room); err != nil {
		return fmt.Errorf("failed to delete archived patient: %w", err)
	}

	fmt.Printf("Permanently deleted archived patient in room %s\n", c.Room)
	return nil
}
