package engine

import (
	"sort"

	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/logger"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// MatrixColumn is the header entry for one template that appeared anywhere in
// the month.
type MatrixColumn struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Group models.Group `json:"group"`
}

// MatrixCell is one template's completion state on one day.
type MatrixCell struct {
	Done bool    `json:"done"`
	Note *string `json:"note"`
}

// MatrixRow is one day of the month, including days with no recorded tasks.
type MatrixRow struct {
	DateYMD    string                `json:"date_ymd"`
	Cells      map[string]MatrixCell `json:"cells"`
	DoneCount  int                   `json:"done_count"`
	TotalCount int                   `json:"total_count"`
}

// MonthMatrix is the day-by-template completion grid for calendar rendering.
// It is computed fresh on every read and never cached.
type MonthMatrix struct {
	Columns []MatrixColumn `json:"columns"`
	Rows    []MatrixRow    `json:"rows"`
}

// MonthMatrix builds the completion grid for one month. templates must
// include archived ones so the historical shape of the month does not change
// retroactively when a template is later archived. tasks must cover the whole
// month.
//
// Per day, the template set is the union of templates the resolver says were
// active and templates that have a task row on that day regardless of the
// resolver, so a record made outside a template's default window is never
// silently hidden.
func (e *Engine) MonthMatrix(templates []models.Template, tasks []models.DailyTask, ym string) (MonthMatrix, error) {
	_, _, days, err := dates.MonthBounds(ym, e.loc)
	if err != nil {
		return MonthMatrix{}, err
	}

	byID := make(map[string]models.Template, len(templates))
	for _, tpl := range templates {
		byID[tpl.ID] = tpl
	}

	tasksByDay := make(map[string][]models.DailyTask)
	for _, task := range tasks {
		tasksByDay[task.DateYMD] = append(tasksByDay[task.DateYMD], task)
	}

	appeared := make(map[string]bool)
	rows := make([]MatrixRow, 0, len(days))

	for _, day := range days {
		union := make(map[string]bool)
		for _, tpl := range templates {
			if e.ActiveOn(tpl, day) {
				union[tpl.ID] = true
			}
		}

		rowByTpl := make(map[string]models.DailyTask)
		doneCount, totalCount := 0, 0
		for _, task := range tasksByDay[day] {
			if task.IsOneOff {
				totalCount++
				if completed(task) {
					doneCount++
				}
				continue
			}
			if task.TemplateID == nil {
				continue
			}
			if _, ok := byID[*task.TemplateID]; !ok {
				// A purged template must not crash a month read; the
				// orphaned row is skipped but logged for diagnostics.
				logger.Warn("skipping task for missing template",
					"task", task.ID, "template", *task.TemplateID, "day", day)
				continue
			}
			rowByTpl[*task.TemplateID] = task
			union[*task.TemplateID] = true
		}

		cells := make(map[string]MatrixCell, len(union))
		for id := range union {
			appeared[id] = true
			cell := MatrixCell{}
			if task, ok := rowByTpl[id]; ok {
				cell.Done = completed(task)
				cell.Note = task.Note
			}
			cells[id] = cell
			totalCount++
			if cell.Done {
				doneCount++
			}
		}

		rows = append(rows, MatrixRow{
			DateYMD:    day,
			Cells:      cells,
			DoneCount:  doneCount,
			TotalCount: totalCount,
		})
	}

	columns := make([]MatrixColumn, 0, len(appeared))
	for _, tpl := range templates {
		if appeared[tpl.ID] {
			columns = append(columns, MatrixColumn{ID: tpl.ID, Title: tpl.Title, Group: tpl.Group})
		}
	}
	groupRank := make(map[models.Group]int, len(models.Groups))
	for i, g := range models.Groups {
		groupRank[g] = i
	}
	sort.SliceStable(columns, func(i, j int) bool {
		a, b := byID[columns[i].ID], byID[columns[j].ID]
		if groupRank[a.Group] != groupRank[b.Group] {
			return groupRank[a.Group] < groupRank[b.Group]
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})

	return MonthMatrix{Columns: columns, Rows: rows}, nil
}
