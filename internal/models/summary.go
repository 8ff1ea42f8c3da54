package models

import "time"

// DaySummary is the cached {totalWeight, doneWeight} aggregate for one
// user-day. It is always derivable from the template and task tables and is
// treated purely as a cache, never as a source of truth.
type DaySummary struct {
	UserID      string  `json:"user_id"`
	DateYMD     string  `json:"date_ymd"`
	TotalWeight float64 `json:"total_weight"`
	DoneWeight  float64 `json:"done_weight"`
}

// RoutineStat is the derived lifetime view of one template's completions.
type RoutineStat struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	SuccessRate float64   `json:"success_rate"`
	TotalDays   int       `json:"total_days"`
	DoneCount   int       `json:"done_count"`
	IsArchived  bool      `json:"is_archived"`
}
