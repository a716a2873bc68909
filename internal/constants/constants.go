package constants

import "time"

const (
	AppName            = "caretrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/caretrack/caretrack.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "caretrack-"
	BackupFileSuffix = ".db"

	// OverdueCutoff is the window past a task's due instant after which the
	// occurrence is no longer surfaced in any bucket. Not configurable.
	OverdueCutoff = 24 * time.Hour

	// NotifyWindow is the tolerance around a task's due instant inside which
	// the notification gate fires. Not configurable.
	NotifyWindow = 5 * time.Minute

	// Tick intervals for the watch loop.
	ReclassifyInterval = 60 * time.Second
	NotifyPollInterval = 30 * time.Second
)

const (
	// Settings keys (rows in the settings table)
	SettingTheme                 = "theme"
	SettingFontSize              = "font_size"
	SettingNotificationsEnabled  = "notifications_enabled"
	SettingCompletedTimeoutHours = "completed_task_timeout_hours"
	SettingClockFormat           = "clock_format"
	SettingAutoRefresh           = "auto_refresh"
	SettingNotificationDuration  = "notification_duration_sec"
	SettingDayStart              = "day_start"
	SettingDayEnd                = "day_end"
	SettingNightStart            = "night_start"
	SettingNightEnd              = "night_end"

	// Default settings values
	DefaultTheme                 = "classic"
	DefaultFontSize              = 14
	DefaultNotificationsEnabled  = true
	DefaultCompletedTimeoutHours = 4
	DefaultClockFormat           = ClockFormat24
	DefaultAutoRefresh           = true
	DefaultNotificationDuration  = 10
	DefaultDayStart              = "08:00"
	DefaultDayEnd                = "20:00"
	DefaultNightStart            = "20:00"
	DefaultNightEnd              = "08:00"

	ClockFormat24 = "24h"
	ClockFormat12 = "12h"
)
