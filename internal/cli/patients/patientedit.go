package patients

import (
	"fmt"
	"os"

	"github.com/caretrack/caretrack/internal/cli"
)

type PatientEditCmd struct {
	Room string `arg:"" help:"Room number of the patient to edit."`

	Name       *string `help:"New first name."`
	Surname    *string `help:"New surname."`
	Notes      *string `help:"New care notes."`
	NationalID *string `help:"New national ID number."`
	BirthDate  *string `help:"New birth date (YYYY-MM-DD)."`
	Phone      *string `help:"New phone number."`
	Photo      *string `help:"Path to a new photo file."`
}

func (c *PatientEditCmd) Run(ctx *cli.Context) error {
	patient, err := ctx.Store.GetPatient(c.Room)
	if err != nil {
		return fmt.Errorf("failed to find patient in room %s: %w", c.Room, err)
	}

	if c.Name != nil {
		patient.Name = *c.Name
	}
	if c.Surname != nil {
		patient.Surname = *c.Surname
	}
	if c.Notes != nil {
		patient.Notes = *c.Notes
	}
	if c.NationalID != nil {
		patient.NationalID = *c.NationalID
	}
	if c.BirthDate != nil {
		patient.BirthDate = *c.BirthDate
	}
	if c.Phone != nil {
		patient.Phone = *c.Phone
	}
	if c.Photo != nil {
		data, err := os.ReadFile(*c.Photo)
		if err != nil {
			return fmt.Errorf("failed to read photo file: %w", err)
		}
		patient.Photo = data
	}

	if err := ctx.Service.UpdatePatient(patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	fmt.Printf("Updated patient: %s\n", patient.DisplayName())
	return nil
}
