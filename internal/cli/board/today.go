package board

import (
	"fmt"
	"os"
	"time"

	"github.com/caretrack/caretrack/internal/cli"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	report, err := ctx.Service.Board(now)
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	patients, err := ctx.Service.PatientDirectory()
	if err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}

	r := &boardRenderer{out: os.Stdout, patients: patients}
	r.Render(report, settings, now)
	return nil
}
