package engine

import (
	"math"
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// Engine computes completion aggregates from templates and daily task rows.
// It is a pure calculator: it never touches storage and takes no implicit
// "now" beyond the injected clock.
type Engine struct {
	loc   *time.Location
	clock dates.Clock
}

func New(loc *time.Location, clock dates.Clock) *Engine {
	return &Engine{loc: loc, clock: clock}
}

// completed is the single completion predicate shared by the day summary,
// month matrix, and routine statistics calculators: a task counts as done
// only when checked. A note or value by itself never counts.
func completed(t models.DailyTask) bool {
	return t.Checked
}

// Percent renders a summary as a whole-number percentage. The zero-total
// guard lives here, at the rendering boundary, and never in stored weights.
func Percent(s models.DaySummary) int {
	return int(math.Round(s.DoneWeight / math.Max(1, s.TotalWeight) * 100))
}
