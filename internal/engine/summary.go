package engine

import (
	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// DaySummary computes the {totalWeight, doneWeight} aggregate for one day.
// templates must include archived ones, since an archived template may still
// have been active on a past day being recomputed. tasks must be the rows for
// exactly that day. The result is a pure function of its inputs, so a
// concurrent recompute that overwrites this one still reflects a consistent
// snapshot.
func (e *Engine) DaySummary(templates []models.Template, tasks []models.DailyTask, day string) models.DaySummary {
	var total, done float64

	for _, tpl := range templates {
		if e.ActiveOn(tpl, day) {
			total += tpl.Weight
		}
	}

	for _, task := range tasks {
		if task.DateYMD != day {
			continue
		}
		if task.IsOneOff {
			total += task.Weight
		}
		if completed(task) {
			done += task.Weight
		}
	}

	return models.DaySummary{DateYMD: day, TotalWeight: total, DoneWeight: done}
}
