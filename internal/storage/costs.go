package storage

import (
	"fmt"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

func (s *SQLiteStore) AddFixedCost(c models.FixedCost) error {
	_, err := s.db.Exec(`
		INSERT INTO fixed_costs (id, user_id, name, amount, payment_day, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, c.Amount, c.PaymentDay,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	return err
}

func (s *SQLiteStore) GetFixedCosts(userID string) ([]models.FixedCost, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, name, amount, payment_day, created_at, updated_at
		FROM fixed_costs WHERE user_id = ? ORDER BY payment_day, created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var costs []models.FixedCost
	for rows.Next() {
		var c models.FixedCost
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Amount, &c.PaymentDay, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("fixed cost %s created_at: %w", c.ID, err)
		}
		if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("fixed cost %s updated_at: %w", c.ID, err)
		}
		costs = append(costs, c)
	}

	return costs, rows.Err()
}

func (s *SQLiteStore) DeleteFixedCost(id, userID string) error {
	result, err := s.db.Exec("DELETE FROM fixed_costs WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result, fmt.Sprintf("fixed cost %s", id))
}
