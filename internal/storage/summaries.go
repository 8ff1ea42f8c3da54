package storage

import (
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// UpsertDaySummary is the write-through step of a day recompute. The single
// upsert keyed by (user, day) is atomic: concurrent recomputes race
// last-write-wins, but a half-updated pair of weights is never visible.
func (s *SQLiteStore) UpsertDaySummary(summary models.DaySummary) error {
	_, err := s.db.Exec(`
		INSERT INTO day_summaries (user_id, date_ymd, total_weight, done_weight, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date_ymd) DO UPDATE SET
			total_weight = excluded.total_weight,
			done_weight = excluded.done_weight,
			updated_at = excluded.updated_at`,
		summary.UserID, summary.DateYMD, summary.TotalWeight, summary.DoneWeight,
		formatTime(time.Now()))
	return err
}

func (s *SQLiteStore) GetDaySummaries(userID, from, to string) ([]models.DaySummary, error) {
	rows, err := s.db.Query(`
		SELECT user_id, date_ymd, total_weight, done_weight
		FROM day_summaries WHERE user_id = ? AND date_ymd >= ? AND date_ymd <= ?
		ORDER BY date_ymd`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.DaySummary
	for rows.Next() {
		var s models.DaySummary
		if err := rows.Scan(&s.UserID, &s.DateYMD, &s.TotalWeight, &s.DoneWeight); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
