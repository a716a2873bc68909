package postgres

import (
	"time"

	"github.com/caretrack/caretrack/internal/models"
)

func (s *Store) AddCompletion(entry models.CompletionEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO task_completions (task_id, completion_date, completed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (task_id, completion_date) DO UPDATE SET completed_at = EXCLUDED.completed_at`,
		entry.TaskID, entry.CompletionDate, entry.CompletedAt.Format(time.RFC3339))
	return err
}

func (s *Store) DeleteCompletion(taskID, completionDate string) error {
	_, err := s.db.Exec(
		"DELETE FROM task_completions WHERE task_id = $1 AND completion_date = $2",
		taskID, completionDate)
	return err
}

func (s *Store) GetCompletions(completionDate string) ([]models.CompletionEntry, error) {
	return s.queryCompletions(
		"SELECT task_id, completion_date, completed_at FROM task_completions WHERE completion_date = $1",
		completionDate)
}

func (s *Store) GetAllCompletions() ([]models.CompletionEntry, error) {
	return s.queryCompletions("SELECT task_id, completion_date, completed_at FROM task_completions")
}

func (s *Store) queryCompletions(query string, args ...any) ([]models.CompletionEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.CompletionEntry
	for rows.Next() {
		var e models.CompletionEntry
		var completedAt string
		if err := rows.Scan(&e.TaskID, &e.CompletionDate, &completedAt); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339, completedAt); err == nil {
			e.CompletedAt = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
