package models

import "time"

// DailyTask represents one day's record of a template, or a one-off item
// scoped to a single day. Title and Weight are snapshots of the template at
// creation time so historical aggregates stay stable if the template changes.
type DailyTask struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	DateYMD    string    `json:"date_ymd"` // YYYY-MM-DD format
	TemplateID *string   `json:"template_id,omitempty"`
	Title      string    `json:"title"`
	Checked    bool      `json:"checked"`
	Note       *string   `json:"note,omitempty"`
	Value      *float64  `json:"value,omitempty"`
	Weight     float64   `json:"weight"`
	IsOneOff   bool      `json:"is_one_off"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TaskPatch carries a partial update to a daily task. Nil fields are left
// untouched.
type TaskPatch struct {
	Checked *bool
	Note    *string
	Value   *float64
}
