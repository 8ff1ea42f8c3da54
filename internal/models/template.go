package models

import "time"

// Group is the section of the day a routine template belongs to.
type Group string

const (
	GroupMorning Group = "MORNING"
	GroupExecute Group = "EXECUTE"
	GroupEvening Group = "EVENING"
)

// Groups lists all valid groups in display order.
var Groups = []Group{GroupMorning, GroupExecute, GroupEvening}

// Template represents a recurring routine definition a user checks off daily.
type Template struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Group         Group      `json:"group"`
	Weight        float64    `json:"weight"`
	DefaultActive bool       `json:"default_active"`
	Order         int        `json:"order"`
	EnableNote    bool       `json:"enable_note"`
	EnableValue   bool       `json:"enable_value"`
	ArchivedAt    *time.Time `json:"archived_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsArchived reports whether the template has been soft-deleted.
func (t Template) IsArchived() bool {
	return t.ArchivedAt != nil
}
