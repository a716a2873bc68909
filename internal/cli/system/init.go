package system

import (
	"fmt"

	"github.com/caretrack/caretrack/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		if err := ctx.Store.Load(); err == nil {
			fmt.Println("Storage already initialized. Use --force to reinitialize.")
			return nil
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("Initialized caretrack storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
