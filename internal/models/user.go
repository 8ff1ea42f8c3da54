package models

import "time"

// User is a local account. The CLI acts on behalf of exactly one user per
// invocation; there are no sessions or tokens.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// FixedCost is a recurring monthly expense tracked alongside routines.
// PaymentDay is the day of month (1-31) the cost is due.
type FixedCost struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	PaymentDay int       `json:"payment_day"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
