package settings

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack/internal/cli"
	"github.com/caretrack/caretrack/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DayStart   *string `help:"Day shift start (HH:MM)."`
	DayEnd     *string `help:"Day shift end (HH:MM)."`
	NightStart *string `help:"Night shift start (HH:MM)."`
	NightEnd   *string `help:"Night shift end (HH:MM). May wrap past midnight."`

	NotificationsEnabled *bool `help:"Enable or disable reminders."`
	NotificationDuration *int  `help:"Seconds a reminder stays on screen."`

	CompletedTimeout *int    `help:"Hours a completed task stays visible on the board."`
	ClockFormat      *string `help:"Clock format: 24h or 12h."`
	Theme            *string `help:"Display theme."`
	FontSize         *int    `help:"Display font size."`
	AutoRefresh      *bool   `help:"Refresh the board automatically."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Shift Windows:")
		fmt.Printf("  Day Start:             %s\n", settings.DayStart)
		fmt.Printf("  Day End:               %s\n", settings.DayEnd)
		fmt.Printf("  Night Start:           %s\n", settings.NightStart)
		fmt.Printf("  Night End:             %s\n", settings.NightEnd)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Reminder Duration:     %d sec\n", settings.NotificationDuration)
		fmt.Println("\nBoard Settings:")
		fmt.Printf("  Completed Timeout:     %d h\n", settings.CompletedTimeoutHours)
		fmt.Printf("  Clock Format:          %s\n", settings.ClockFormat)
		fmt.Printf("  Theme:                 %s\n", settings.Theme)
		fmt.Printf("  Font Size:             %d\n", settings.FontSize)
		fmt.Printf("  Auto Refresh:          %v\n", settings.AutoRefresh)
		return nil
	}

	updated := false
	if c.DayStart != nil {
		if err := validClock(*c.DayStart); err != nil {
			return err
		}
		settings.DayStart = *c.DayStart
		updated = true
	}
	if c.DayEnd != nil {
		if err := validClock(*c.DayEnd); err != nil {
			return err
		}
		settings.DayEnd = *c.DayEnd
		updated = true
	}
	if c.NightStart != nil {
		if err := validClock(*c.NightStart); err != nil {
			return err
		}
		settings.NightStart = *c.NightStart
		updated = true
	}
	if c.NightEnd != nil {
		if err := validClock(*c.NightEnd); err != nil {
			return err
		}
		settings.NightEnd = *c.NightEnd
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.NotificationDuration != nil {
		settings.NotificationDuration = *c.NotificationDuration
		updated = true
	}
	if c.CompletedTimeout != nil {
		settings.CompletedTimeoutHours = *c.CompletedTimeout
		updated = true
	}
	if c.ClockFormat != nil {
		if *c.ClockFormat != constants.ClockFormat24 && *c.ClockFormat != constants.ClockFormat12 {
			return fmt.Errorf("clock format must be %s or %s", constants.ClockFormat24, constants.ClockFormat12)
		}
		settings.ClockFormat = *c.ClockFormat
		updated = true
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
		updated = true
	}
	if c.FontSize != nil {
		settings.FontSize = *c.FontSize
		updated = true
	}
	if c.AutoRefresh != nil {
		settings.AutoRefresh = *c.AutoRefresh
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

func validClock(s string) error {
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return nil
}
