package board

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/notifier"
	"github.com/caretrack/caretrack/internal/watcher"
)

// WatchCmd runs the live board: periodic reclassification plus the reminder
// poll, until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	patients, err := ctx.Service.PatientDirectory()
	if err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}

	gate := notifier.New(&notifier.WriterSink{Out: os.Stdout}, ctx.Store)
	w := watcher.New(ctx.Service, ctx.Store, gate, &boardRenderer{out: os.Stdout, patients: patients})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Watching tasks. Press Ctrl+C to stop.")
	if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
