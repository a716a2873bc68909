package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caretrack/caretrack/internal/backup"
	"github.com/caretrack/caretrack/internal/logger"
	"github.com/caretrack/caretrack/internal/service"
	"github.com/caretrack/caretrack/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Service *service.Service
}

// Confirm prompts for a yes/no answer on the terminal. Destructive operations
// always pass through here; the service layer only sees confirmed commands.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// PerformAutomaticBackup creates a backup and logs failures without
// interrupting the user's command. Only meaningful for the SQLite backend.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if path == "postgresql" {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseWeekdays parses a comma-separated list of weekday names or numbers
// (0=Sunday, 6=Saturday).
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("no weekdays specified")
	}
	return weekdays, nil
}
