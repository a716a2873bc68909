package models

import (
	"testing"
	"time"
)

func validTask() Task {
	return Task{
		ID:          "t1",
		RoomNumber:  "101",
		Description: "Morning medication",
		Time:        "09:00",
		TimeType:    TimeTypeExplicit,
		Recurrence:  Recurrence{Type: RecurrenceDaily},
		Date:        "2024-03-15",
	}
}

func TestTaskValidate(t *testing.T) {
	task := validTask()
	if err := task.Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Task)
	}{
		{"no room", func(tk *Task) { tk.RoomNumber = "" }},
		{"no description", func(tk *Task) { tk.Description = "" }},
		{"unknown time type", func(tk *Task) { tk.TimeType = "hourly" }},
		{"explicit without time", func(tk *Task) { tk.Time = "" }},
		{"bad time format", func(tk *Task) { tk.Time = "9am" }},
		{"unknown recurrence", func(tk *Task) { tk.Recurrence.Type = "fortnightly" }},
		{"weekly without weekdays", func(tk *Task) { tk.Recurrence = Recurrence{Type: RecurrenceWeekly} }},
		{"n_days zero interval", func(tk *Task) { tk.Recurrence = Recurrence{Type: RecurrenceNDays} }},
		{"no activation date", func(tk *Task) { tk.Date = "" }},
		{"bad activation date", func(tk *Task) { tk.Date = "15/03/2024" }},
		{"bad end date", func(tk *Task) { tk.EndDate = "soon" }},
		{"end before start", func(tk *Task) { tk.EndDate = "2024-03-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(&task)
			if err := task.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestTaskValidateWindowTypesNeedNoTime(t *testing.T) {
	task := validTask()
	task.Time = ""
	task.TimeType = TimeTypeDay
	if err := task.Validate(); err != nil {
		t.Errorf("day window task without a time rejected: %v", err)
	}
	task.TimeType = TimeTypeEvening
	if err := task.Validate(); err != nil {
		t.Errorf("evening window task without a time rejected: %v", err)
	}
}

func TestParseTimeType(t *testing.T) {
	for _, valid := range []string{"explicit", "day_window", "evening_window"} {
		if _, err := ParseTimeType(valid); err != nil {
			t.Errorf("ParseTimeType(%q) rejected: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "hourly_window", "EXPLICIT"} {
		if _, err := ParseTimeType(invalid); err == nil {
			t.Errorf("ParseTimeType(%q) accepted", invalid)
		}
	}
}

func TestParseRecurrenceType(t *testing.T) {
	for _, valid := range []string{"none", "daily", "odd_days", "even_days", "weekly", "n_days"} {
		if _, err := ParseRecurrenceType(valid); err != nil {
			t.Errorf("ParseRecurrenceType(%q) rejected: %v", valid, err)
		}
	}
	if _, err := ParseRecurrenceType("monthly"); err == nil {
		t.Error("ParseRecurrenceType accepted an unknown value")
	}
}

func TestFormatRecurrence(t *testing.T) {
	task := validTask()
	task.Recurrence = Recurrence{Type: RecurrenceNDays, IntervalDays: 3}
	if got := task.FormatRecurrence(); got != "every 3 days" {
		t.Errorf("FormatRecurrence = %q", got)
	}
	task.Recurrence = Recurrence{Type: RecurrenceNDays, IntervalDays: 1}
	if got := task.FormatRecurrence(); got != "daily" {
		t.Errorf("FormatRecurrence = %q", got)
	}
	task.Recurrence = Recurrence{Type: RecurrenceWeekly, Weekdays: []time.Weekday{time.Monday}}
	if got := task.FormatRecurrence(); got != "weekly: [Mon]" {
		t.Errorf("FormatRecurrence = %q", got)
	}
	task.Recurrence = Recurrence{Type: RecurrenceNone}
	if got := task.FormatRecurrence(); got != "one-time" {
		t.Errorf("FormatRecurrence = %q", got)
	}
}

func TestPatientValidate(t *testing.T) {
	p := Patient{RoomNumber: "101", Name: "Ayse", Surname: "Demir", BirthDate: "1940-06-02"}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid patient rejected: %v", err)
	}

	p.BirthDate = "02.06.1940"
	if err := p.Validate(); err == nil {
		t.Error("bad birth date accepted")
	}

	p = Patient{Name: "Ayse", Surname: "Demir"}
	if err := p.Validate(); err == nil {
		t.Error("missing room accepted")
	}
}

func TestSettingsRoundTripThroughMap(t *testing.T) {
	want := DefaultSettings()
	want.DayStart = "07:30"
	want.NotificationsEnabled = true
	want.CompletedTimeoutHours = 6

	got, err := MapToSettings(SettingsToMap(want))
	if err != nil {
		t.Fatalf("MapToSettings: %v", err)
	}
	if got != want {
		t.Errorf("settings round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}
