package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/caretrack/caretrack/internal/models"
)

// ArchiveTask moves a task into the archive table, shedding its recurrence
// rule and status flags, and removes it and its ledger rows from the active
// set.
func (s *Store) ArchiveTask(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO archive_tasks (room_number, description, time, date, end_date, time_type)
		SELECT room_number, description, time, date, end_date, time_type
		FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("archiving task %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no task with id %s", id)
	}

	if _, err := tx.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM task_completions WHERE task_id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) GetArchivedTasks() ([]models.ArchivedTask, error) {
	rows, err := s.db.Query(`
		SELECT id, room_number, description, time, date, end_date, time_type
		FROM archive_tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.ArchivedTask
	for rows.Next() {
		var a models.ArchivedTask
		var roomNumber, taskTime, date, endDate, timeType sql.NullString
		if err := rows.Scan(&a.ID, &roomNumber, &a.Description, &taskTime, &date, &endDate, &timeType); err != nil {
			return nil, err
		}
		a.RoomNumber = roomNumber.String
		a.Time = taskTime.String
		a.Date = date.String
		a.EndDate = endDate.String
		a.TimeType = timeType.String
		tasks = append(tasks, a)
	}
	return tasks, rows.Err()
}

// RestoreTask reactivates an archived task under a fresh identity. The
// restored task starts over: no recurrence rule, not cancelled, not notified.
func (s *Store) RestoreTask(archiveID int64) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT room_number, description, time, date, end_date, time_type
		FROM archive_tasks WHERE id = ?`, archiveID)

	var roomNumber, taskTime, date, endDate, timeType sql.NullString
	var description string
	if err := row.Scan(&roomNumber, &description, &taskTime, &date, &endDate, &timeType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, fmt.Errorf("no archived task with id %d", archiveID)
		}
		return models.Task{}, err
	}

	task := models.Task{
		ID:          uuid.NewString(),
		RoomNumber:  roomNumber.String,
		Description: description,
		Time:        taskTime.String,
		TimeType:    models.TimeType(timeType.String),
		Recurrence:  models.Recurrence{Type: models.RecurrenceNone},
		Date:        date.String,
		EndDate:     endDate.String,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Task{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO tasks (id, room_number, description, time, time_type, recurrence_type,
			recurrence_days, recurrence_interval, date, end_date, cancelled, notified, done, completed_time)
		VALUES (?, ?, ?, ?, ?, ?, '', 0, ?, ?, 0, 0, 0, '')`,
		task.ID, task.RoomNumber, task.Description, task.Time, string(task.TimeType),
		string(task.Recurrence.Type), task.Date, task.EndDate); err != nil {
		return models.Task{}, fmt.Errorf("restoring archived task %d: %w", archiveID, err)
	}
	if _, err := tx.Exec("DELETE FROM archive_tasks WHERE id = ?", archiveID); err != nil {
		return models.Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *Store) DeleteArchivedTask(archiveID int64) error {
	_, err := s.db.Exec("DELETE FROM archive_tasks WHERE id = ?", archiveID)
	return err
}
