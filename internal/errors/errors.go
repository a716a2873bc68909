// Package errors holds the CLI exit path: every command error is logged for
// the support trail, printed once with a uniform prefix, and turned into a
// non-zero exit. Packages below the CLI return plain wrapped errors and never
// exit on their own.
package errors

import (
	"fmt"
	"os"

	"github.com/caretrack/caretrack/internal/logger"
)

// Format renders an error with the "Error: " prefix users see on stderr.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error, prints it, and exits with status 1. A nil error is a
// no-op so the happy path can fall straight through.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	os.Exit(1)
}
