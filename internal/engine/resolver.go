package engine

import (
	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// ActiveOn reports whether a template counted toward totals on the given day.
// The rule is applied identically whether evaluating today or backfilling a
// historical day:
//
//  1. manually paused templates never count, even unarchived
//  2. a template does not count before its creation day
//  3. an archived template does not count on or after its archival day
func (e *Engine) ActiveOn(tpl models.Template, day string) bool {
	if !tpl.DefaultActive {
		return false
	}
	if day < dates.DayKey(tpl.CreatedAt, e.loc) {
		return false
	}
	if tpl.ArchivedAt != nil && day >= dates.DayKey(*tpl.ArchivedAt, e.loc) {
		return false
	}
	return true
}
