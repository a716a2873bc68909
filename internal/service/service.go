// Package service implements the application operations on top of a storage
// provider: task lifecycle, the per-day completion ledger, patient archival
// and the classified board. Confirmation prompts stay at the CLI boundary;
// the service only receives already-confirmed commands.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caretrack/caretrack/internal/classifier"
	"github.com/caretrack/caretrack/internal/constants"
	"github.com/caretrack/caretrack/internal/models"
	"github.com/caretrack/caretrack/internal/storage"
	"github.com/caretrack/caretrack/internal/utils"
)

type Service struct {
	store storage.Provider
}

func New(store storage.Provider) *Service {
	return &Service{store: store}
}

// CreatePatient validates and stores a new patient.
func (s *Service) CreatePatient(p models.Patient) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.store.AddPatient(p)
}

func (s *Service) UpdatePatient(p models.Patient) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.store.UpdatePatient(p)
}

// CreateTask validates a task, assigns it an id and an activation date if
// missing, and stores it.
func (s *Service) CreateTask(task models.Task, now time.Time) (models.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Date == "" {
		task.Date = utils.DateOf(now).Format(constants.DateFormat)
	}
	if task.Recurrence.Type == "" {
		task.Recurrence.Type = models.RecurrenceNone
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, err
	}
	if err := s.store.AddTask(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask validates and stores an edited task. Editing re-arms the
// notification gate: the notified flag is always cleared.
func (s *Service) UpdateTask(task models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	task.Notified = false
	return s.store.UpdateTask(task)
}

// MarkDone records a completion for the task on the given day. Idempotent for
// a given (task, date); the legacy done and cancelled flags are cleared so
// the ledger is the only source of truth.
func (s *Service) MarkDone(taskID string, now time.Time) error {
	task, err := s.store.GetTask(taskID)
	if err != nil {
		return fmt.Errorf("loading task %s: %w", taskID, err)
	}

	entry := models.CompletionEntry{
		TaskID:         taskID,
		CompletionDate: utils.DateOf(now).Format(constants.DateFormat),
		CompletedAt:    now,
	}
	if err := s.store.AddCompletion(entry); err != nil {
		return err
	}

	task.Done = false
	task.Cancelled = false
	task.CompletedTime = ""
	return s.store.UpdateTask(task)
}

// MarkNotDone reverts a completion: the ledger row for the day is removed and
// the cancelled flag cleared, returning the task to Due or Upcoming per its
// timing.
func (s *Service) MarkNotDone(taskID string, now time.Time) error {
	task, err := s.store.GetTask(taskID)
	if err != nil {
		return fmt.Errorf("loading task %s: %w", taskID, err)
	}

	date := utils.DateOf(now).Format(constants.DateFormat)
	if err := s.store.DeleteCompletion(taskID, date); err != nil {
		return err
	}

	task.Done = false
	task.Cancelled = false
	task.CompletedTime = ""
	return s.store.UpdateTask(task)
}

// MarkCancelled stops the task for the day: any completion row for the day is
// removed and the cancelled flag set.
func (s *Service) MarkCancelled(taskID string, now time.Time) error {
	task, err := s.store.GetTask(taskID)
	if err != nil {
		return fmt.Errorf("loading task %s: %w", taskID, err)
	}

	date := utils.DateOf(now).Format(constants.DateFormat)
	if err := s.store.DeleteCompletion(taskID, date); err != nil {
		return err
	}

	task.Cancelled = true
	task.Done = false
	task.CompletedTime = ""
	return s.store.UpdateTask(task)
}

// Board classifies every task for the given instant.
func (s *Service) Board(now time.Time) (classifier.Report, error) {
	tasks, err := s.store.GetAllTasks()
	if err != nil {
		return classifier.Report{}, fmt.Errorf("loading tasks: %w", err)
	}

	today := utils.DateOf(now).Format(constants.DateFormat)
	completions, err := s.store.GetCompletions(today)
	if err != nil {
		return classifier.Report{}, fmt.Errorf("loading completion ledger: %w", err)
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return classifier.Report{}, fmt.Errorf("loading settings: %w", err)
	}

	return classifier.Classify(tasks, completions, settings, now), nil
}

// DayView lists the tasks occurring on an arbitrary calendar date together
// with their completion state for that date.
func (s *Service) DayView(date time.Time, now time.Time) ([]models.Task, map[string]bool, error) {
	tasks, err := s.store.GetAllTasks()
	if err != nil {
		return nil, nil, fmt.Errorf("loading tasks: %w", err)
	}

	completions, err := s.store.GetCompletions(utils.DateOf(date).Format(constants.DateFormat))
	if err != nil {
		return nil, nil, fmt.Errorf("loading completion ledger: %w", err)
	}
	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		done[c.TaskID] = true
	}

	return classifier.OccurrencesOn(tasks, date, now), done, nil
}

// PatientDirectory returns active patients keyed by room number, for reminder
// and board rendering.
func (s *Service) PatientDirectory() (map[string]models.Patient, error) {
	patients, err := s.store.GetAllPatients()
	if err != nil {
		return nil, err
	}
	dir := make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		dir[p.RoomNumber] = p
	}
	return dir, nil
}
