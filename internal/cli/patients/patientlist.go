package patients

import (
	"fmt"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/models"
)

type PatientListCmd struct {
	Archived bool `help:"List archived patients instead of active ones."`
}

func (c *PatientListCmd) Run(ctx *cli.Context) error {
	var patients []models.Patient
	var err error
	if c.Archived {
		patients, err = ctx.Store.GetArchivedPatients()
	} else {
		patients, err = ctx.Store.GetAllPatients()
	}
	if err != nil {
		return fmt.Errorf("failed to list patients: %w", err)
	}

	if len(patients) == 0 {
		fmt.Println("No patients found.")
		return nil
	}

	for _, p := range patients {
		line := p.DisplayName()
		if p.BirthDate != "" {
			line += fmt.Sprintf(" (born %s)", p.BirthDate)
		}
		if p.Notes != "" {
			line += " - " + p.Notes
		}
		fmt.Println(line)
	}
	return nil
}
