package service

import (
	"fmt"
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/engine"
	"github.com/been-going/PleaseCheckYourDays/internal/logger"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
)

// Tracker orchestrates the completion engine over the storage layer. Every
// mutation that can change a day's completion state ends with a synchronous
// recompute of the affected day(s), written through before the call returns,
// so a caller never observes a checked task with a stale summary.
type Tracker struct {
	store storage.Provider
	eng   *engine.Engine
	clock dates.Clock
	loc   *time.Location
}

func NewTracker(store storage.Provider, loc *time.Location, clock dates.Clock) *Tracker {
	return &Tracker{
		store: store,
		eng:   engine.New(loc, clock),
		clock: clock,
		loc:   loc,
	}
}

// RecomputeDay rebuilds one day's summary from source template and task rows
// and upserts it. The computation is a pure function of current state, so
// racing recomputes settle on some consistent snapshot.
func (t *Tracker) RecomputeDay(userID, day string) (models.DaySummary, error) {
	templates, err := t.store.GetAllTemplates(userID, true)
	if err != nil {
		return models.DaySummary{}, fmt.Errorf("failed to load templates: %w", err)
	}
	tasks, err := t.store.GetTasksForDay(userID, day)
	if err != nil {
		return models.DaySummary{}, fmt.Errorf("failed to load tasks for %s: %w", day, err)
	}

	summary := t.eng.DaySummary(templates, tasks, day)
	summary.UserID = userID

	if err := t.store.UpsertDaySummary(summary); err != nil {
		return models.DaySummary{}, fmt.Errorf("failed to write day summary: %w", err)
	}

	logger.Debug("recomputed day summary", "user", userID, "day", day,
		"total", summary.TotalWeight, "done", summary.DoneWeight)
	return summary, nil
}

func (t *Tracker) recomputeDays(userID string, days []string) error {
	for _, day := range days {
		if _, err := t.RecomputeDay(userID, day); err != nil {
			return err
		}
	}
	return nil
}
