package engine

import (
	"sort"

	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// StatSort selects the ordering of routine statistics exposed to callers.
type StatSort string

const (
	StatSortRateDesc StatSort = "rate_desc"
	StatSortRateAsc  StatSort = "rate_asc"
	StatSortDateDesc StatSort = "date_desc"
	StatSortDateAsc  StatSort = "date_asc"
)

// ValidStatSort reports whether s names a known sort order.
func ValidStatSort(s StatSort) bool {
	switch s {
	case StatSortRateDesc, StatSortRateAsc, StatSortDateDesc, StatSortDateAsc:
		return true
	}
	return false
}

// RoutineStat computes one template's lifetime eligible-day count and success
// rate. doneDays is the set of day keys on which a task row referencing the
// template was completed; duplicates and days outside the template's lifetime
// window are ignored (a future-dated orphan row must not inflate the rate).
func (e *Engine) RoutineStat(tpl models.Template, doneDays []string) models.RoutineStat {
	createdDay := dates.DayKey(tpl.CreatedAt, e.loc)

	endDay := e.clock.Today()
	if tpl.ArchivedAt != nil {
		endDay = dates.DayKey(*tpl.ArchivedAt, e.loc)
	}
	// Guard against clock skew or a corrupted archival timestamp placing the
	// end before the start.
	if endDay < createdDay {
		endDay = createdDay
	}

	totalDays := dates.DaysBetween(createdDay, endDay) + 1
	if totalDays < 1 {
		totalDays = 1
	}

	seen := make(map[string]bool, len(doneDays))
	doneCount := 0
	for _, day := range doneDays {
		if day < createdDay || day > endDay || seen[day] {
			continue
		}
		seen[day] = true
		doneCount++
	}

	return models.RoutineStat{
		ID:          tpl.ID,
		Title:       tpl.Title,
		CreatedAt:   tpl.CreatedAt,
		SuccessRate: float64(doneCount) / float64(totalDays) * 100,
		TotalDays:   totalDays,
		DoneCount:   doneCount,
		IsArchived:  tpl.IsArchived(),
	}
}

// SortRoutineStats orders stats in place. Ties keep the stable input order
// rather than falling back to a secondary key.
func SortRoutineStats(stats []models.RoutineStat, order StatSort) {
	sort.SliceStable(stats, func(i, j int) bool {
		switch order {
		case StatSortRateAsc:
			return stats[i].SuccessRate < stats[j].SuccessRate
		case StatSortDateDesc:
			return stats[i].CreatedAt.After(stats[j].CreatedAt)
		case StatSortDateAsc:
			return stats[i].CreatedAt.Before(stats[j].CreatedAt)
		default:
			return stats[i].SuccessRate > stats[j].SuccessRate
		}
	})
}
