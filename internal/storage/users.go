package storage

import (
	"database/sql"
	"fmt"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

func (s *SQLiteStore) AddUser(u models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, formatTime(u.CreatedAt))
	return err
}

func (s *SQLiteStore) GetUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, email, password_hash, created_at
		FROM users WHERE email = ?`, email)

	var u models.User
	var createdAt string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return models.User{}, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return models.User{}, err
	}

	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.User{}, fmt.Errorf("user %s created_at: %w", u.ID, err)
	}

	return u, nil
}
