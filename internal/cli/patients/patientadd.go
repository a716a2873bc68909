package patients

import (
	"fmt"
	"os"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/models"
)

type PatientAddCmd struct {
	Room    string `arg:"" help:"Room number."`
	Name    string `arg:"" help:"First name."`
	Surname string `arg:"" help:"Surname."`

	Notes      string `short:"n" help:"Care notes."`
	NationalID string `help:"National ID number."`
	BirthDate  string `short:"b" help:"Birth date (YYYY-MM-DD)."`
	Phone      string `short:"p" help:"Contact phone number."`
	Photo      string `help:"Path to a photo file."`
}

func (c *PatientAddCmd) Run(ctx *cli.Context) error {
	patient := models.Patient{
		RoomNumber: c.Room,
		Name:       c.Name,
		Surname:    c.Surname,
		Notes:      c.Notes,
		NationalID: c.NationalID,
		BirthDate:  c.BirthDate,
		Phone:      c.Phone,
	}

	if c.Photo != "" {
		data, err := os.ReadFile(c.Photo)
		if err != nil {
			return fmt.Errorf("failed to read photo file: %w", err)
		}
		patient.Photo = data
	}

	if err := ctx.Service.CreatePatient(patient); err != nil {
		return fmt.Errorf("failed to add patient: %w", err)
	}

	fmt.Printf("Added patient: %s\n", patient.DisplayName())
	return nil
}
