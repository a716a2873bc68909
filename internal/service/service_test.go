package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/caretrack/caretrack/internal/classifier"
	"github.com/caretrack/caretrack/internal/models"
	"github.com/caretrack/caretrack/internal/storage/sqlite"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestCreateTaskAssignsIdentity(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	task, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "blood sugar check",
		Time:        "09:00",
		TimeType:    models.TimeTypeExplicit,
	}, now)
	if err != nil {
		t.Fatalf("CreateTask(): %v", err)
	}
	if task.ID == "" {
		t.Error("expected generated task id")
	}
	if task.Date != "2024-03-15" {
		t.Errorf("activation date defaulted to %q, want today", task.Date)
	}
}

func TestCreateTaskRejectsInvalidRecurrence(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	_, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "walk",
		TimeType:    models.TimeTypeDay,
		Recurrence:  models.Recurrence{Type: models.RecurrenceWeekly},
	}, now)
	if err == nil {
		t.Fatal("weekly recurrence with no weekdays must be rejected at edit time")
	}

	_, err = svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "walk",
		TimeType:    models.TimeTypeDay,
		Recurrence:  models.Recurrence{Type: models.RecurrenceNDays, IntervalDays: 0},
	}, now)
	if err == nil {
		t.Fatal("n_days recurrence with interval 0 must be rejected at edit time")
	}
}

func TestMarkDoneIdempotent(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	task, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "meds",
		Time:        "09:00",
		TimeType:    models.TimeTypeExplicit,
	}, now)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.MarkDone(task.ID, now); err != nil {
		t.Fatalf("MarkDone(): %v", err)
	}
	if err := svc.MarkDone(task.ID, now.Add(time.Minute)); err != nil {
		t.Fatalf("second MarkDone(): %v", err)
	}

	report, err := svc.Board(now.Add(2 * time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if report.Counts.Completed != 1 {
		t.Errorf("completed count = %d, want 1", report.Counts.Completed)
	}
}

func TestMarkDoneNotDoneRoundTrip(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	task, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "meds",
		Time:        "09:00",
		TimeType:    models.TimeTypeExplicit,
	}, now)
	if err != nil {
		t.Fatal(err)
	}

	before, err := svc.Board(now)
	if err != nil {
		t.Fatal(err)
	}
	if len(before.Day.Due) != 1 {
		t.Fatalf("expected task due before completion, got %+v", before.Day)
	}

	if err := svc.MarkDone(task.ID, now); err != nil {
		t.Fatal(err)
	}
	if err := svc.MarkNotDone(task.ID, now); err != nil {
		t.Fatal(err)
	}

	after, err := svc.Board(now)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Day.Due) != 1 || after.Counts.Completed != 0 {
		t.Errorf("round trip did not restore pre-done classification: %+v", after)
	}
}

func TestMarkCancelledThenNotDoneReverts(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	task, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "meds",
		Time:        "09:00",
		TimeType:    models.TimeTypeExplicit,
	}, now)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.MarkCancelled(task.ID, now); err != nil {
		t.Fatal(err)
	}
	report, _ := svc.Board(now)
	if report.Counts.Cancelled != 1 {
		t.Fatalf("expected cancelled bucket, got %+v", report.Counts)
	}

	// Un-cancelling reverts to Due per timing, never to Cancelled.
	if err := svc.MarkNotDone(task.ID, now); err != nil {
		t.Fatal(err)
	}
	report, _ = svc.Board(now)
	if report.Counts.Cancelled != 0 || len(report.Day.Due) != 1 {
		t.Errorf("expected revert to due, got %+v", report)
	}
}

func TestMarkCancelledRemovesCompletion(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	task, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "meds",
		Time:        "09:00",
		TimeType:    models.TimeTypeExplicit,
	}, now)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.MarkDone(task.ID, now); err != nil {
		t.Fatal(err)
	}
	if err := svc.MarkCancelled(task.ID, now); err != nil {
		t.Fatal(err)
	}

	report, _ := svc.Board(now)
	if report.Counts.Completed != 0 || report.Counts.Cancelled != 1 {
		t.Errorf("cancel after done should leave only cancelled, got %+v", report.Counts)
	}
}

func TestUpdateTaskResetsNotified(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	task, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "meds",
		Time:        "09:00",
		TimeType:    models.TimeTypeExplicit,
	}, now)
	if err != nil {
		t.Fatal(err)
	}

	task.Notified = true
	task.Description = "meds (updated dose)"
	if err := svc.UpdateTask(task); err != nil {
		t.Fatal(err)
	}

	report, err := svc.Board(now.Add(-2 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	// 08:00 is before the 09:00 due instant: without the notified pin the
	// task sits in Upcoming, proving the flag was cleared by the edit.
	if len(report.Day.Due) != 0 || len(report.Day.Upcoming) != 1 {
		t.Errorf("edit should clear the notified pin: %+v", report.Day)
	}
}

func TestDayViewForFutureDate(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	_, err := svc.CreateTask(models.Task{
		RoomNumber:  "101",
		Description: "weekly bath",
		TimeType:    models.TimeTypeDay,
		Recurrence:  models.Recurrence{Type: models.RecurrenceWeekly, Weekdays: []time.Weekday{time.Wednesday}},
		Date:        "2024-03-01",
	}, now)
	if err != nil {
		t.Fatal(err)
	}

	wednesday := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)
	tasks, done, err := svc.DayView(wednesday, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected the weekly task on Wednesday, got %+v", tasks)
	}
	if len(done) != 0 {
		t.Errorf("no completions recorded, got %v", done)
	}

	thursday := time.Date(2024, 3, 21, 0, 0, 0, 0, time.Local)
	tasks, _, err = svc.DayView(thursday, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("weekly task must not occur on Thursday, got %+v", tasks)
	}
}

func TestBoardShiftPartition(t *testing.T) {
	svc := setupService(t)
	now := time.Date(2024, 3, 15, 21, 0, 0, 0, time.Local)

	if _, err := svc.CreateTask(models.Task{
		RoomNumber: "101", Description: "night meds",
		TimeType: models.TimeTypeEvening,
	}, now); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateTask(models.Task{
		RoomNumber: "102", Description: "morning walk", Time: "09:00",
		TimeType: models.TimeTypeExplicit,
	}, now); err != nil {
		t.Fatal(err)
	}

	report, err := svc.Board(now)
	if err != nil {
		t.Fatal(err)
	}
	var night []classifier.Entry
	night = append(night, report.Night.Due...)
	night = append(night, report.Night.Upcoming...)
	if len(night) != 1 || night[0].Task.Description != "night meds" {
		t.Errorf("night shift = %+v", night)
	}
	if len(report.Day.Due) != 1 || report.Day.Due[0].Task.Description != "morning walk" {
		t.Errorf("day shift = %+v", report.Day.Due)
	}
}
