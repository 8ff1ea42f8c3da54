package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

const taskColumns = `id, user_id, date_ymd, template_id, title, checked, note,
	value, weight, is_one_off, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (models.DailyTask, error) {
	var t models.DailyTask
	var templateID, note sql.NullString
	var value sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.UserID, &t.DateYMD, &templateID, &t.Title, &t.Checked,
		&note, &value, &t.Weight, &t.IsOneOff, &createdAt, &updatedAt)
	if err != nil {
		return models.DailyTask{}, err
	}

	if templateID.Valid {
		t.TemplateID = &templateID.String
	}
	if note.Valid {
		t.Note = &note.String
	}
	if value.Valid {
		t.Value = &value.Float64
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.DailyTask{}, fmt.Errorf("task %s created_at: %w", t.ID, err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.DailyTask{}, fmt.Errorf("task %s updated_at: %w", t.ID, err)
	}

	return t, nil
}

func taskArgs(t models.DailyTask) []any {
	var templateID, note sql.NullString
	var value sql.NullFloat64
	if t.TemplateID != nil {
		templateID = sql.NullString{String: *t.TemplateID, Valid: true}
	}
	if t.Note != nil {
		note = sql.NullString{String: *t.Note, Valid: true}
	}
	if t.Value != nil {
		value = sql.NullFloat64{Float64: *t.Value, Valid: true}
	}
	return []any{t.ID, t.UserID, t.DateYMD, templateID, t.Title, t.Checked,
		note, value, t.Weight, t.IsOneOff, formatTime(t.CreatedAt), formatTime(t.UpdatedAt)}
}

func (s *SQLiteStore) AddTask(t models.DailyTask) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_tasks (id, user_id, date_ymd, template_id, title, checked,
			note, value, weight, is_one_off, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		taskArgs(t)...)
	return err
}

func (s *SQLiteStore) GetTask(id, userID string) (models.DailyTask, error) {
	row := s.db.QueryRow(`
		SELECT `+taskColumns+`
		FROM daily_tasks WHERE id = ? AND user_id = ?`, id, userID)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.DailyTask{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, err
}

// GetTaskForTemplate fetches the single template-backed row for a user-day,
// if one has been materialized.
func (s *SQLiteStore) GetTaskForTemplate(userID, templateID, day string) (models.DailyTask, error) {
	row := s.db.QueryRow(`
		SELECT `+taskColumns+`
		FROM daily_tasks WHERE user_id = ? AND template_id = ? AND date_ymd = ?`,
		userID, templateID, day)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.DailyTask{}, fmt.Errorf("task for template %s on %s: %w", templateID, day, ErrNotFound)
	}
	return t, err
}

func (s *SQLiteStore) UpdateTask(t models.DailyTask) error {
	var note sql.NullString
	var value sql.NullFloat64
	if t.Note != nil {
		note = sql.NullString{String: *t.Note, Valid: true}
	}
	if t.Value != nil {
		value = sql.NullFloat64{Float64: *t.Value, Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE daily_tasks SET checked = ?, note = ?, value = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		t.Checked, note, value, formatTime(time.Now()), t.ID, t.UserID)
	if err != nil {
		return err
	}
	return requireAffected(result, fmt.Sprintf("task %s", t.ID))
}

// DeleteTask removes a task row and returns the day key it lived on.
func (s *SQLiteStore) DeleteTask(id, userID string) (string, error) {
	var day string
	err := s.db.QueryRow("SELECT date_ymd FROM daily_tasks WHERE id = ? AND user_id = ?", id, userID).
		Scan(&day)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", err
	}

	if _, err := s.db.Exec("DELETE FROM daily_tasks WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return "", err
	}
	return day, nil
}

func (s *SQLiteStore) GetTasksForDay(userID, day string) ([]models.DailyTask, error) {
	return s.queryTasks(`
		SELECT `+taskColumns+`
		FROM daily_tasks WHERE user_id = ? AND date_ymd = ?
		ORDER BY created_at`, userID, day)
}

func (s *SQLiteStore) GetTasksForRange(userID, from, to string) ([]models.DailyTask, error) {
	return s.queryTasks(`
		SELECT `+taskColumns+`
		FROM daily_tasks WHERE user_id = ? AND date_ymd >= ? AND date_ymd <= ?
		ORDER BY date_ymd, created_at`, userID, from, to)
}

func (s *SQLiteStore) queryTasks(query string, args ...any) ([]models.DailyTask, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.DailyTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// GetCheckedDays returns the distinct day keys on which the template's task
// row was checked.
func (s *SQLiteStore) GetCheckedDays(templateID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT date_ymd FROM daily_tasks
		WHERE template_id = ? AND checked = 1 ORDER BY date_ymd`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}
