package sqlite

import (
	"time"

	"github.com/caretrack/caretrack/internal/models"
)

// AddCompletion records a done occurrence. The (task_id, completion_date)
// primary key makes the call idempotent: marking the same day twice leaves a
// single ledger row, with the later timestamp.
func (s *Store) AddCompletion(entry models.CompletionEntry) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO task_completions (task_id, completion_date, completed_at)
		VALUES (?, ?, ?)`,
		entry.TaskID, entry.CompletionDate, entry.CompletedAt.Format(time.RFC3339))
	return err
}

func (s *Store) DeleteCompletion(taskID, completionDate string) error {
	_, err := s.db.Exec(
		"DELETE FROM task_completions WHERE task_id = ? AND completion_date = ?",
		taskID, completionDate)
	return err
}

func (s *Store) GetCompletions(completionDate string) ([]models.CompletionEntry, error) {
	return s.queryCompletions(
		"SELECT task_id, completion_date, completed_at FROM task_completions WHERE completion_date = ?",
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
