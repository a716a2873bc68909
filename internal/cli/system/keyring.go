package system

import (
	"fmt"
	"strings"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/keyring"
)

// ConfigCmd manages the PostgreSQL connection string held in the OS keyring.
type ConfigCmd struct {
	Set    ConfigSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
	Show   ConfigShowCmd   `cmd:"" help:"Show whether a connection string is stored."`
	Delete ConfigDeleteCmd `cmd:"" help:"Remove the stored connection string."`
}

type ConfigSetCmd struct {
	ConnectionString string `arg:"" help:"Full PostgreSQL connection string. Credentials belong here, in the keyring, never on the command line of regular runs."`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(c.ConnectionString, "postgres://") &&
		!strings.HasPrefix(c.ConnectionString, "postgresql://") {
		return fmt.Errorf("expected a postgresql:// connection string")
	}
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	if _, err := keyring.GetConnectionString(); err != nil {
		return err
	}
	// Never print the stored value; it identifies the database host.
	fmt.Println("A connection string is stored in the OS keyring.")
	return nil
}

type ConfigDeleteCmd struct{}

func (c *ConfigDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
