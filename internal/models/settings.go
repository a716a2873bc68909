package models

// Settings represents application-wide settings, persisted as key/value rows
// and hot-reloadable without restart.
type Settings struct {
	Theme                 string `json:"theme"`
	FontSize              int    `json:"font_size"`
	NotificationsEnabled  bool   `json:"notifications_enabled"`
	CompletedTimeoutHours int    `json:"completed_task_timeout_hours"` // how long a completed task stays visible
	ClockFormat           string `json:"clock_format"`                 // "24h" or "12h"
	AutoRefresh           bool   `json:"auto_refresh"`
	NotificationDuration  int    `json:"notification_duration_sec"` // reminder auto-dismiss timeout
	DayStart              string `json:"day_start"`                 // e.g. "08:00"
	DayEnd                string `json:"day_end"`                   // e.g. "20:00"
	NightStart            string `json:"night_start"`               // e.g. "20:00"
	NightEnd              string `json:"night_end"`                 // may wrap past midnight, e.g. "08:00"
}
