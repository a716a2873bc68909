package storage

import "github.com/caretrack/caretrack/internal/models"

// Provider is the storage contract shared by the SQLite and PostgreSQL
// backends. All methods are synchronous and short-lived; callers hold no
// locks across ticks.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Patients
	AddPatient(models.Patient) error
	GetPatient(roomNumber string) (models.Patient, error)
	GetAllPatients() ([]models.Patient, error)
	UpdatePatient(models.Patient) error
	ArchivePatient(roomNumber string) error
	GetArchivedPatients() ([]models.Patient, error)
	RestorePatient(roomNumber string) error
	DeleteArchivedPatient(roomNumber string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	GetTasksForRoom(roomNumber string) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	MarkNotified(id string) error
	SetCancelled(id string, cancelled bool) error

	// Task archive
	ArchiveTask(id string) error
	GetArchivedTasks() ([]models.ArchivedTask, error)
	RestoreTask(archiveID int64) (models.Task, error)
	DeleteArchivedTask(archiveID int64) error

	// Completion ledger
	AddCompletion(models.CompletionEntry) error
	DeleteCompletion(taskID, completionDate string) error
	GetCompletions(completionDate string) ([]models.CompletionEntry, error)
	GetAllCompletions() ([]models.CompletionEntry, error)

	// Utils
	GetConfigPath() string
}
