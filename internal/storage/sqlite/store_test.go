package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/caretrack/caretrack/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after Init: %v", err)
	}
	if settings.DayStart != "08:00" || settings.NightStart != "20:00" {
		t.Errorf("unexpected default shift windows: %+v", settings)
	}
	if settings.CompletedTimeoutHours != 4 {
		t.Errorf("CompletedTimeoutHours = %d, want 4", settings.CompletedTimeoutHours)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.DayStart = "07:30"
	settings.ClockFormat = "12h"
	settings.NotificationsEnabled = false

	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings(): %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.DayStart != "07:30" || got.ClockFormat != "12h" || got.NotificationsEnabled {
		t.Errorf("settings round trip mismatch: %+v", got)
	}
}

func TestPatientCRUD(t *testing.T) {
	store := setupTestStore(t)

	p := models.Patient{
		RoomNumber: "101",
		Name:       "Ayse",
		Surname:    "Demir",
		Notes:      "diabetic",
		BirthDate:  "1940-05-02",
	}
	if err := store.AddPatient(p); err != nil {
		t.Fatalf("AddPatient(): %v", err)
	}

	got, err := store.GetPatient("101")
	if err != nil {
		t.Fatalf("GetPatient(): %v", err)
	}
	if got.Name != "Ayse" || got.Notes != "diabetic" {
		t.Errorf("GetPatient() = %+v", got)
	}

	got.Phone = "555-0101"
	if err := store.UpdatePatient(got); err != nil {
		t.Fatalf("UpdatePatient(): %v", err)
	}
	got, _ = store.GetPatient("101")
	if got.Phone != "555-0101" {
		t.Errorf("update not persisted: %+v", got)
	}

	all, err := store.GetAllPatients()
	if err != nil || len(all) != 1 {
		t.Fatalf("GetAllPatients() = %v, %v", all, err)
	}
}

func TestTaskRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	task := models.Task{
		ID:          "task-1",
		RoomNumber:  "101",
		Description: "physical therapy",
		Time:        "10:30",
		TimeType:    models.TimeTypeExplicit,
		Recurrence: models.Recurrence{
			Type:     models.RecurrenceWeekly,
			Weekdays: []time.Weekday{time.Monday, time.Thursday},
		},
		Date:    "2024-03-01",
		EndDate: "2024-06-01",
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask(): %v", err)
	}

	got, err := store.GetTask("task-1")
	if err != nil {
		t.Fatalf("GetTask(): %v", err)
	}
	if got.Description != "physical therapy" || got.TimeType != models.TimeTypeExplicit {
		t.Errorf("GetTask() = %+v", got)
	}
	if got.Recurrence.Type != models.RecurrenceWeekly || len(got.Recurrence.Weekdays) != 2 {
		t.Errorf("recurrence not round-tripped: %+v", got.Recurrence)
	}
	if got.Recurrence.Weekdays[0] != time.Monday || got.Recurrence.Weekdays[1] != time.Thursday {
		t.Errorf("weekdays = %v", got.Recurrence.Weekdays)
	}
	if got.EndDate != "2024-06-01" {
		t.Errorf("end date = %q", got.EndDate)
	}
}

func TestGetAllTasksSkipsUnknownEnums(t *testing.T) {
	store := setupTestStore(t)

	good := models.Task{
		ID: "good", RoomNumber: "101", Description: "meds",
		TimeType: models.TimeTypeDay,
		Recurrence: models.Recurrence{Type: models.RecurrenceDaily},
		Date: "2024-03-01",
	}
	if err := store.AddTask(good); err != nil {
		t.Fatal(err)
	}

	// A row written by a newer or foreign version of the schema.
	if _, err := store.db.Exec(`
		INSERT INTO tasks (id, room_number, description, time_type, recurrence_type, date)
		VALUES ('bad', '101', 'mystery', 'hourly_window', 'none', '2024-03-01')`); err != nil {
		t.Fatal(err)
	}

	tasks, err := store.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks(): %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "good" {
		t.Errorf("expected unknown-enum row to be skipped, got %+v", tasks)
	}
}

func TestCompletionIdempotence(t *testing.T) {
	store := setupTestStore(t)

	entry := models.CompletionEntry{
		TaskID:         "task-1",
		CompletionDate: "2024-03-15",
		CompletedAt:    time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	if err := store.AddCompletion(entry); err != nil {
		t.Fatal(err)
	}
	if err := store.AddCompletion(entry); err != nil {
		t.Fatalf("second AddCompletion() must not fail: %v", err)
	}

	entries, err := store.GetCompletions("2024-03-15")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one ledger row, got %d", len(entries))
	}
	if !entries[0].CompletedAt.Equal(entry.CompletedAt) {
		t.Errorf("completed_at = %v, want %v", entries[0].CompletedAt, entry.CompletedAt)
	}

	if err := store.DeleteCompletion("task-1", "2024-03-15"); err != nil {
		t.Fatal(err)
	}
	entries, _ = store.GetCompletions("2024-03-15")
	if len(entries) != 0 {
		t.Errorf("ledger row not deleted: %v", entries)
	}
}

func TestTaskArchiveRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	task := models.Task{
		ID: "task-1", RoomNumber: "101", Description: "wound dressing",
		Time: "09:00", TimeType: models.TimeTypeExplicit,
		Recurrence: models.Recurrence{Type: models.RecurrenceDaily},
		Date: "2024-03-01",
	}
	if err := store.AddTask(task); err != nil {
		t.Fatal(err)
	}
	if err := store.AddCompletion(models.CompletionEntry{
		TaskID: "task-1", CompletionDate: "2024-03-15", CompletedAt: time.Now(),
	}); err != nil {
		t.Fatal(err)
	}

	if err := store.ArchiveTask("task-1"); err != nil {
		t.Fatalf("ArchiveTask(): %v", err)
	}

	if _, err := store.GetTask("task-1"); err == nil {
		t.Error("archived task still in active set")
	}
	if entries, _ := store.GetAllCompletions(); len(entries) != 0 {
		t.Errorf("archive should clear ledger rows, got %v", entries)
	}

	archived, err := store.GetArchivedTasks()
	if err != nil || len(archived) != 1 {
		t.Fatalf("GetArchivedTasks() = %v, %v", archived, err)
	}
	if archived[0].Description != "wound dressing" {
		t.Errorf("archived = %+v", archived[0])
	}

	restored, err := store.RestoreTask(archived[0].ID)
	if err != nil {
		t.Fatalf("RestoreTask(): %v", err)
	}
	if restored.ID == "task-1" {
		t.Error("restored task should carry a fresh id")
	}
	if restored.Cancelled || restored.Notified {
		t.Errorf("restored task must start clean: %+v", restored)
	}
	// The archive sheds recurrence rules.
	if restored.Recurrence.Type != models.RecurrenceNone {
		t.Errorf("restored recurrence = %q", restored.Recurrence.Type)
	}

	if remaining, _ := store.GetArchivedTasks(); len(remaining) != 0 {
		t.Errorf("archive row not removed after restore: %v", remaining)
	}
}

func TestArchivePatientCascades(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddPatient(models.Patient{RoomNumber: "101", Name: "Ayse", Surname: "Demir"}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"t1", "t2"} {
		task := models.Task{
			ID: id, RoomNumber: "101", Description: "care",
			TimeType: models.TimeTypeDay,
			Recurrence: models.Recurrence{Type: models.RecurrenceDaily},
			Date: "2024-03-01",
		}
		if err := store.AddTask(task); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.ArchivePatient("101"); err != nil {
		t.Fatalf("ArchivePatient(): %v", err)
	}

	if tasks, _ := store.GetAllTasks(); len(tasks) != 0 {
		t.Errorf("patient's tasks should be archived with them, got %v", tasks)
	}
	if archived, _ := store.GetArchivedTasks(); len(archived) != 2 {
		t.Errorf("expected 2 archived tasks, got %d", len(archived))
	}

	if err := store.RestorePatient("101"); err != nil {
		t.Fatalf("RestorePatient(): %v", err)
	}
	if _, err := store.GetPatient("101"); err != nil {
		t.Errorf("restored patient not found: %v", err)
	}
	if archived, _ := store.GetArchivedPatients(); len(archived) != 0 {
		t.Errorf("archive row not removed after restore: %v", archived)
	}
}

func TestMarkNotified(t *testing.T) {
	store := setupTestStore(t)

	task := models.Task{
		ID: "t1", RoomNumber: "101", Description: "meds",
		Time: "09:00", TimeType: models.TimeTypeExplicit,
		Recurrence: models.Recurrence{Type: models.RecurrenceNone},
		Date: "2024-03-15",
	}
	if err := store.AddTask(task); err != nil {
		t.Fatal(err)
	}

	if err := store.MarkNotified("t1"); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Notified {
		t.Error("notified flag not persisted")
	}
}
