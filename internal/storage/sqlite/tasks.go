package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caretrack/caretrack/internal/logger"
	"github.com/caretrack/caretrack/internal/models"
)

const taskColumns = `id, room_number, description, time, time_type, recurrence_type,
	recurrence_days, recurrence_interval, date, end_date, cancelled, notified, done, completed_time`

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *Store) UpdateTask(task models.Task) error {
	weekdays, err := encodeWeekdays(task.Recurrence.Weekdays)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.RoomNumber, task.Description, task.Time, string(task.TimeType),
		string(task.Recurrence.Type), weekdays, task.Recurrence.IntervalDays,
		task.Date, task.EndDate, task.Cancelled, task.Notified, task.Done, task.CompletedTime)
	return err
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row)
	if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// GetAllTasks returns the active tasks. Rows with an unrecognized time type or
// recurrence type are skipped with a warning rather than defaulted; unknown
// enum values must not leak into classification.
func (s *Store) GetAllTasks() ([]models.Task, error) {
	return s.queryTasks("SELECT " + taskColumns + " FROM tasks ORDER BY date, time")
}

func (s *Store) GetTasksForRoom(roomNumber string) ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE room_number = ? ORDER BY date, time", roomNumber)
}

func (s *Store) queryTasks(query string, args ...any) ([]models.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		if _, err := models.ParseTimeType(string(t.TimeType)); err != nil {
			logger.Warn("Skipping task with unknown time type", "task", t.ID, "time_type", t.TimeType)
			continue
		}
		if t.Recurrence.Type != "" {
			if _, err := models.ParseRecurrenceType(string(t.Recurrence.Type)); err != nil {
				logger.Warn("Skipping task with unknown recurrence type", "task", t.ID, "recurrence_type", t.Recurrence.Type)
				continue
			}
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) DeleteTask(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM task_completions WHERE task_id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) MarkNotified(id string) error {
	_, err := s.db.Exec("UPDATE tasks SET notified = 1 WHERE id = ?", id)
	return err
}

func (s *Store) SetCancelled(id string, cancelled bool) error {
	_, err := s.db.Exec("UPDATE tasks SET cancelled = ? WHERE id = ?", cancelled, id)
	return err
}

func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var t models.Task
	var roomNumber, taskTime, timeType, recType, recDays, endDate, completedTime sql.NullString

	err := row.Scan(
		&t.ID, &roomNumber, &t.Description, &taskTime, &timeType,
		&recType, &recDays, &t.Recurrence.IntervalDays,
		&t.Date, &endDate, &t.Cancelled, &t.Notified, &t.Done, &completedTime,
	)
	if err != nil {
		return models.Task{}, err
	}

	t.RoomNumber = roomNumber.String
	t.Time = taskTime.String
	t.TimeType = models.TimeType(timeType.String)
	t.Recurrence.Type = models.RecurrenceType(recType.String)
	t.EndDate = endDate.String
	t.CompletedTime = completedTime.String

	if recDays.Valid && recDays.String != "" {
		var weekdays []int
		if err := json.Unmarshal([]byte(recDays.String), &weekdays); err == nil {
			for _, w := range weekdays {
				t.Recurrence.Weekdays = append(t.Recurrence.Weekdays, time.Weekday(w))
			}
		}
	}

	return t, nil
}

func encodeWeekdays(weekdays []time.Weekday) (string, error) {
	if len(weekdays) == 0 {
		return "", nil
	}
	ints := make([]int, len(weekdays))
	for i, w := range weekdays {
		ints[i] = int(w)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		return "", fmt.Errorf("encoding weekdays: %w", err)
	}
	return string(data), nil
}
