package service

import (
	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/engine"
	"github.com/been-going/PleaseCheckYourDays/internal/logger"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/validation"
)

// DaySummaryFor returns the cached summary for one day, rebuilding it when
// the cache has no row. Staleness is never an error; the cache can always be
// rebuilt from source rows.
func (t *Tracker) DaySummaryFor(userID, day string) (models.DaySummary, error) {
	if err := validation.DayKey(day); err != nil {
		return models.DaySummary{}, err
	}

	cached, err := t.store.GetDaySummaries(userID, day, day)
	if err != nil {
		return models.DaySummary{}, err
	}
	if len(cached) == 1 {
		return cached[0], nil
	}
	return t.RecomputeDay(userID, day)
}

// DaySummaries returns the cached summaries in an inclusive day range, for
// calendar heat-map rendering.
func (t *Tracker) DaySummaries(userID, from, to string) ([]models.DaySummary, error) {
	if err := validation.DayKey(from); err != nil {
		return nil, err
	}
	if err := validation.DayKey(to); err != nil {
		return nil, err
	}
	return t.store.GetDaySummaries(userID, from, to)
}

// MonthMatrix builds the day-by-template completion grid for one month. It
// is recomputed in full on every call, never cached.
func (t *Tracker) MonthMatrix(userID, ym string) (engine.MonthMatrix, error) {
	if err := validation.MonthKey(ym); err != nil {
		return engine.MonthMatrix{}, err
	}

	first, last, _, err := dates.MonthBounds(ym, t.loc)
	if err != nil {
		return engine.MonthMatrix{}, err
	}

	templates, err := t.store.GetAllTemplates(userID, true)
	if err != nil {
		return engine.MonthMatrix{}, err
	}
	tasks, err := t.store.GetTasksForRange(userID, first, last)
	if err != nil {
		return engine.MonthMatrix{}, err
	}

	return t.eng.MonthMatrix(templates, tasks, ym)
}

// RoutineStats computes every template's lifetime success rate, ordered as
// requested.
func (t *Tracker) RoutineStats(userID string, order engine.StatSort, includeArchived bool) ([]models.RoutineStat, error) {
	templates, err := t.store.GetAllTemplates(userID, includeArchived)
	if err != nil {
		return nil, err
	}

	stats := make([]models.RoutineStat, 0, len(templates))
	for _, tpl := range templates {
		doneDays, err := t.store.GetCheckedDays(tpl.ID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, t.eng.RoutineStat(tpl, doneDays))
	}

	engine.SortRoutineStats(stats, order)
	return stats, nil
}

// CategoryStat counts a month's task rows per originating template.
type CategoryStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MonthlyOverview aggregates one month of activity for the dashboard.
type MonthlyOverview struct {
	TotalTasks     int            `json:"total_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	CompletionRate float64        `json:"completion_rate"`
	Categories     []CategoryStat `json:"categories"`
	FixedCostTotal float64        `json:"fixed_cost_total"`
	FixedCostCount int            `json:"fixed_cost_count"`
}

// MonthlyStats summarizes task completion, per-template activity, and fixed
// costs for one month.
func (t *Tracker) MonthlyStats(userID, ym string) (MonthlyOverview, error) {
	if err := validation.MonthKey(ym); err != nil {
		return MonthlyOverview{}, err
	}

	first, last, _, err := dates.MonthBounds(ym, t.loc)
	if err != nil {
		return MonthlyOverview{}, err
	}

	tasks, err := t.store.GetTasksForRange(userID, first, last)
	if err != nil {
		return MonthlyOverview{}, err
	}
	templates, err := t.store.GetAllTemplates(userID, true)
	if err != nil {
		return MonthlyOverview{}, err
	}
	costs, err := t.store.GetFixedCosts(userID)
	if err != nil {
		return MonthlyOverview{}, err
	}

	titleByID := make(map[string]string, len(templates))
	for _, tpl := range templates {
		titleByID[tpl.ID] = tpl.Title
	}

	overview := MonthlyOverview{FixedCostCount: len(costs)}
	for _, c := range costs {
		overview.FixedCostTotal += c.Amount
	}

	counts := make(map[string]int)
	var order []string
	for _, task := range tasks {
		overview.TotalTasks++
		if task.Checked {
			overview.CompletedTasks++
		}
		if task.TemplateID == nil {
			continue
		}
		name, ok := titleByID[*task.TemplateID]
		if !ok {
			logger.Warn("task references missing template", "task", task.ID, "template", *task.TemplateID)
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, name := range order {
		overview.Categories = append(overview.Categories, CategoryStat{Name: name, Count: counts[name]})
	}

	if overview.TotalTasks > 0 {
		overview.CompletionRate = float64(overview.CompletedTasks) / float64(overview.TotalTasks) * 100
	}

	return overview, nil
}
