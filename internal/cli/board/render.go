package board

import (
	"fmt"
	"io"
	"time"

	"github.com/caretrack/caretrack/internal/classifier"
	"github.com/caretrack/caretrack/internal/models"
	"github.com/caretrack/caretrack/internal/utils"
)

// boardRenderer prints the classified board as plain text, one section per
// shift and one line per task.
type boardRenderer struct {
	out      io.Writer
	patients map[string]models.Patient
}

func (r *boardRenderer) Render(report classifier.Report, settings models.Settings, now time.Time) {
	fmt.Fprintf(r.out, "Board at %s on %s\n",
		utils.FormatClock(now, settings.ClockFormat), now.Format("2006-01-02"))
	fmt.Fprintf(r.out, "Total %d | done %d | due %d | stopped %d | upcoming %d\n",
		report.Counts.Total, report.Counts.Completed, report.Counts.Due,
		report.Counts.Cancelled, report.Counts.Upcoming)

	r.renderShift("Day shift", report.Day, settings)
	r.renderShift("Night shift", report.Night, settings)
}

func (r *boardRenderer) renderShift(title string, b classifier.Buckets, settings models.Settings) {
	if len(b.Due)+len(b.Completed)+len(b.Upcoming)+len(b.Cancelled) == 0 {
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", title)
	r.renderBucket("Due", b.Due, settings)
	r.renderBucket("Done", b.Completed, settings)
	r.renderBucket("Stopped", b.Cancelled, settings)
	r.renderBucket("Upcoming", b.Upcoming, settings)
}

func (r *boardRenderer) renderBucket(label string, entries []classifier.Entry, settings models.Settings) {
	for _, e := range entries {
		who := e.Task.RoomNumber
		if p, ok := r.patients[e.Task.RoomNumber]; ok {
			who = p.DisplayName()
		}
		when := e.Task.FormatTime()
		if e.Task.TimeType == models.TimeTypeExplicit {
			when = utils.FormatClock(e.DueAt, settings.ClockFormat)
		}
		fmt.Fprintf(r.out, "  [%s] %s  %s  (%s)\n", label, who, e.Task.Description, when)
	}
}
