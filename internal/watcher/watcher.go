// Package watcher runs the periodic board loop: a reclassification tick that
// re-reads settings so they stay hot-reloadable, and a notification poll.
// Store errors fail the tick, never the loop.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/caretrack/caretrack/internal/classifier"
	"github.com/caretrack/caretrack/internal/constants"
	"github.com/caretrack/caretrack/internal/logger"
	"github.com/caretrack/caretrack/internal/models"
	"github.com/caretrack/caretrack/internal/notifier"
	"github.com/caretrack/caretrack/internal/service"
	"github.com/caretrack/caretrack/internal/storage"
	"github.com/caretrack/caretrack/internal/utils"
)

// Renderer consumes a fresh classification pass.
type Renderer interface {
	Render(report classifier.Report, settings models.Settings, now time.Time)
}

type Watcher struct {
	svc   *service.Service
	store storage.Provider
	gate  *notifier.Gate
	out   Renderer
	cron  *cron.Cron
}

func New(svc *service.Service, store storage.Provider, gate *notifier.Gate, out Renderer) *Watcher {
	return &Watcher{
		svc:   svc,
		store: store,
		gate:  gate,
		out:   out,
		cron:  cron.New(cron.WithLocation(time.Local), cron.WithSeconds()),
	}
}

// Run blocks until the context is cancelled. The first reclassification runs
// immediately; afterwards both ticks fire on their own schedules.
func (w *Watcher) Run(ctx context.Context) error {
	w.reclassify()

	spec := func(d time.Duration) string {
		return fmt.Sprintf("@every %ds", int(d.Seconds()))
	}
	if _, err := w.cron.AddFunc(spec(constants.ReclassifyInterval), w.reclassify); err != nil {
		return fmt.Errorf("scheduling reclassify tick: %w", err)
	}
	if _, err := w.cron.AddFunc(spec(constants.NotifyPollInterval), w.pollNotifications); err != nil {
		return fmt.Errorf("scheduling notification poll: %w", err)
	}

	w.cron.Start()
	<-ctx.Done()

	stopped := w.cron.Stop()
	<-stopped.Done()
	return ctx.Err()
}

func (w *Watcher) reclassify() {
	now := time.Now()

	// Settings are read every tick so edits take effect without restart.
	settings, err := w.store.GetSettings()
	if err != nil {
		logger.Warn("Skipping reclassify tick", "error", err)
		return
	}

	report, err := w.svc.Board(now)
	if err != nil {
		logger.Warn("Skipping reclassify tick", "error", err)
		return
	}

	w.out.Render(report, settings, now)
}

func (w *Watcher) pollNotifications() {
	now := time.Now()

	settings, err := w.store.GetSettings()
	if err != nil {
		logger.Warn("Skipping notification poll", "error", err)
		return
	}

	tasks, err := w.store.GetAllTasks()
	if err != nil {
		logger.Warn("Skipping notification poll", "error", err)
		return
	}

	today := utils.DateOf(now).Format(constants.DateFormat)
	completions, err := w.store.GetCompletions(today)
	if err != nil {
		logger.Warn("Skipping notification poll", "error", err)
		return
	}

	patients, err := w.svc.PatientDirectory()
	if err != nil {
		logger.Warn("Skipping notification poll", "error", err)
		return
	}

	fired, err := w.gate.PollOnce(tasks, completions, patients, settings, now)
	if err != nil {
		logger.Error("Notification poll failed", "error", err)
		return
	}
	if fired != nil {
		logger.Info("Reminder fired", "task", fired.TaskID, "patient", fired.Patient)
	}
}
