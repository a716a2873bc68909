package models

import (
	"fmt"

	"github.com/caretrack/caretrack/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTheme:
			settings.Theme = value
		case constants.SettingFontSize:
			if _, err := fmt.Sscanf(value, "%d", &settings.FontSize); err != nil {
				return Settings{}, fmt.Errorf("parsing font_size: %w", err)
			}
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingCompletedTimeoutHours:
			if _, err := fmt.Sscanf(value, "%d", &settings.CompletedTimeoutHours); err != nil {
				return Settings{}, fmt.Errorf("parsing completed_task_timeout_hours: %w", err)
			}
		case constants.SettingClockFormat:
			settings.ClockFormat = value
		case constants.SettingAutoRefresh:
			settings.AutoRefresh = value == "true"
		case constants.SettingNotificationDuration:
			if _, err := fmt.Sscanf(value, "%d", &settings.NotificationDuration); err != nil {
				return Settings{}, fmt.Errorf("parsing notification_duration_sec: %w", err)
			}
		case constants.SettingDayStart:
			settings.DayStart = value
		case constants.SettingDayEnd:
			settings.DayEnd = value
		case constants.SettingNightStart:
			settings.NightStart = value
		case constants.SettingNightEnd:
			settings.NightEnd = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTheme:                 settings.Theme,
		constants.SettingFontSize:              fmt.Sprintf("%d", settings.FontSize),
		constants.SettingNotificationsEnabled:  fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingCompletedTimeoutHours: fmt.Sprintf("%d", settings.CompletedTimeoutHours),
		constants.SettingClockFormat:           settings.ClockFormat,
		constants.SettingAutoRefresh:           fmt.Sprintf("%v", settings.AutoRefresh),
		constants.SettingNotificationDuration:  fmt.Sprintf("%d", settings.NotificationDuration),
		constants.SettingDayStart:              settings.DayStart,
		constants.SettingDayEnd:                settings.DayEnd,
		constants.SettingNightStart:            settings.NightStart,
		constants.SettingNightEnd:              settings.NightEnd,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	if settings.FontSize == 0 {
		settings.FontSize = constants.DefaultFontSize
	}
	if settings.CompletedTimeoutHours == 0 {
		settings.CompletedTimeoutHours = constants.DefaultCompletedTimeoutHours
	}
	if settings.ClockFormat == "" {
		settings.ClockFormat = constants.DefaultClockFormat
	}
	if settings.NotificationDuration == 0 {
		settings.NotificationDuration = constants.DefaultNotificationDuration
	}
	if settings.DayStart == "" {
		settings.DayStart = constants.DefaultDayStart
	}
	if settings.DayEnd == "" {
		settings.DayEnd = constants.DefaultDayEnd
	}
	if settings.NightStart == "" {
		settings.NightStart = constants.DefaultNightStart
	}
	if settings.NightEnd == "" {
		settings.NightEnd = constants.DefaultNightEnd
	}
}

// DefaultSettings returns a fully-populated Settings struct.
func DefaultSettings() Settings {
	s := Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		AutoRefresh:          constants.DefaultAutoRefresh,
	}
	ApplyDefaultSettings(&s)
	return s
}
