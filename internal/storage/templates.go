package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

const templateColumns = `id, user_id, title, grp, weight, default_active, ord,
	enable_note, enable_value, archived_at, created_at, updated_at`

func scanTemplate(row interface{ Scan(...any) error }) (models.Template, error) {
	var t models.Template
	var createdAt, updatedAt string
	var archivedAt sql.NullString

	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Group, &t.Weight, &t.DefaultActive,
		&t.Order, &t.EnableNote, &t.EnableValue, &archivedAt, &createdAt, &updatedAt)
	if err != nil {
		return models.Template{}, err
	}

	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Template{}, fmt.Errorf("template %s created_at: %w", t.ID, err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.Template{}, fmt.Errorf("template %s updated_at: %w", t.ID, err)
	}
	if archivedAt.Valid {
		at, err := parseTime(archivedAt.String)
		if err != nil {
			return models.Template{}, fmt.Errorf("template %s archived_at: %w", t.ID, err)
		}
		t.ArchivedAt = &at
	}

	return t, nil
}

func (s *SQLiteStore) AddTemplate(t models.Template) error {
	var archivedAt sql.NullString
	if t.ArchivedAt != nil {
		archivedAt = sql.NullString{String: formatTime(*t.ArchivedAt), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO templates (id, user_id, title, grp, weight, default_active, ord,
			enable_note, enable_value, archived_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Group, t.Weight, t.DefaultActive, t.Order,
		t.EnableNote, t.EnableValue, archivedAt, formatTime(t.CreatedAt), formatTime(t.UpdatedAt))
	return err
}

func (s *SQLiteStore) GetTemplate(id, userID string) (models.Template, error) {
	row := s.db.QueryRow(`
		SELECT `+templateColumns+`
		FROM templates WHERE id = ? AND user_id = ?`, id, userID)

	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return models.Template{}, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (s *SQLiteStore) GetAllTemplates(userID string, includeArchived bool) ([]models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE user_id = ?`
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY grp, ord, created_at"

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

func (s *SQLiteStore) UpdateTemplate(t models.Template) error {
	var archivedAt sql.NullString
	if t.ArchivedAt != nil {
		archivedAt = sql.NullString{String: formatTime(*t.ArchivedAt), Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE templates SET title = ?, grp = ?, weight = ?, default_active = ?,
			ord = ?, enable_note = ?, enable_value = ?, archived_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		t.Title, t.Group, t.Weight, t.DefaultActive, t.Order, t.EnableNote,
		t.EnableValue, archivedAt, formatTime(time.Now()), t.ID, t.UserID)
	if err != nil {
		return err
	}
	return requireAffected(result, fmt.Sprintf("template %s", t.ID))
}

// ReorderTemplates applies a batch of display-order updates in one
// transaction so a partial reorder is never visible.
func (s *SQLiteStore) ReorderTemplates(userID string, updates []TemplateOrder) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("UPDATE templates SET ord = ?, updated_at = ? WHERE id = ? AND user_id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := formatTime(time.Now())
	for _, u := range updates {
		result, err := stmt.Exec(u.Order, now, u.ID, userID)
		if err != nil {
			return err
		}
		if err := requireAffected(result, fmt.Sprintf("template %s", u.ID)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ArchiveTemplate(id, userID string, when time.Time) error {
	result, err := s.db.Exec(`
		UPDATE templates SET archived_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND archived_at IS NULL`,
		formatTime(when), formatTime(when), id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result, fmt.Sprintf("template %s (already archived?)", id))
}

func (s *SQLiteStore) RestoreTemplate(id, userID string) error {
	result, err := s.db.Exec(`
		UPDATE templates SET archived_at = NULL, updated_at = ?
		WHERE id = ? AND user_id = ? AND archived_at IS NOT NULL`,
		formatTime(time.Now()), id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result, fmt.Sprintf("template %s (not archived?)", id))
}

// PurgeTemplate hard-deletes an archived template together with all its task
// rows, in one transaction. It returns the distinct day keys the deleted
// tasks lived on so the caller can recompute those days' summaries.
func (s *SQLiteStore) PurgeTemplate(id, userID string) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var archivedAt sql.NullString
	err = tx.QueryRow("SELECT archived_at FROM templates WHERE id = ? AND user_id = ?", id, userID).
		Scan(&archivedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !archivedAt.Valid {
		return nil, fmt.Errorf("template %s must be archived before permanent deletion", id)
	}

	rows, err := tx.Query(
		"SELECT DISTINCT date_ymd FROM daily_tasks WHERE template_id = ? AND user_id = ?", id, userID)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if _, err := tx.Exec("DELETE FROM daily_tasks WHERE template_id = ? AND user_id = ?", id, userID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec("DELETE FROM templates WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return nil, err
	}

	return days, tx.Commit()
}

func requireAffected(result sql.Result, what string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
