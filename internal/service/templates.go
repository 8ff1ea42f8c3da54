package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
	"github.com/been-going/PleaseCheckYourDays/internal/validation"
)

// CreateTemplate adds a new routine template. The display order defaults to
// the end of the template's group.
func (t *Tracker) CreateTemplate(userID, title string, group models.Group, weight float64) (models.Template, error) {
	if err := validation.Title(title); err != nil {
		return models.Template{}, err
	}
	if err := validation.Group(group); err != nil {
		return models.Template{}, err
	}
	if err := validation.Weight(weight); err != nil {
		return models.Template{}, err
	}

	existing, err := t.store.GetAllTemplates(userID, false)
	if err != nil {
		return models.Template{}, err
	}
	order := 0
	for _, tpl := range existing {
		if tpl.Group == group {
			order++
		}
	}

	now := t.clock.Now()
	tpl := models.Template{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         title,
		Group:         group,
		Weight:        weight,
		DefaultActive: true,
		Order:         order,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := t.store.AddTemplate(tpl); err != nil {
		return models.Template{}, fmt.Errorf("failed to create template: %w", err)
	}

	// A new active template changes today's total.
	if _, err := t.RecomputeDay(userID, t.clock.Today()); err != nil {
		return models.Template{}, err
	}

	return tpl, nil
}

// TemplateUpdate carries a partial edit of a template. Nil fields are left
// untouched.
type TemplateUpdate struct {
	Title         *string
	Group         *models.Group
	Weight        *float64
	DefaultActive *bool
	EnableNote    *bool
	EnableValue   *bool
}

func (t *Tracker) UpdateTemplate(userID, id string, update TemplateUpdate) (models.Template, error) {
	tpl, err := t.store.GetTemplate(id, userID)
	if err != nil {
		return models.Template{}, err
	}

	if update.Title != nil {
		if err := validation.Title(*update.Title); err != nil {
			return models.Template{}, err
		}
		tpl.Title = *update.Title
	}
	if update.Group != nil {
		if err := validation.Group(*update.Group); err != nil {
			return models.Template{}, err
		}
		tpl.Group = *update.Group
	}
	if update.Weight != nil {
		if err := validation.Weight(*update.Weight); err != nil {
			return models.Template{}, err
		}
		tpl.Weight = *update.Weight
	}
	if update.DefaultActive != nil {
		tpl.DefaultActive = *update.DefaultActive
	}
	if update.EnableNote != nil {
		tpl.EnableNote = *update.EnableNote
	}
	if update.EnableValue != nil {
		tpl.EnableValue = *update.EnableValue
	}

	if err := t.store.UpdateTemplate(tpl); err != nil {
		return models.Template{}, err
	}

	// Weight and pause edits change today's totals.
	if _, err := t.RecomputeDay(userID, t.clock.Today()); err != nil {
		return models.Template{}, err
	}

	return tpl, nil
}

func (t *Tracker) ListTemplates(userID string, includeArchived bool) ([]models.Template, error) {
	return t.store.GetAllTemplates(userID, includeArchived)
}

func (t *Tracker) ReorderTemplates(userID string, updates []storage.TemplateOrder) error {
	return t.store.ReorderTemplates(userID, updates)
}

// ArchiveTemplate soft-deletes a template. From the archival day onward it no
// longer counts toward totals; history before that day is untouched.
func (t *Tracker) ArchiveTemplate(userID, id string) error {
	if err := t.store.ArchiveTemplate(id, userID, t.clock.Now()); err != nil {
		return err
	}
	_, err := t.RecomputeDay(userID, t.clock.Today())
	return err
}

// RestoreTemplate clears the archival timestamp, making the template count
// again exactly as if it had never been archived.
func (t *Tracker) RestoreTemplate(userID, id string) error {
	if err := t.store.RestoreTemplate(id, userID); err != nil {
		return err
	}
	_, err := t.RecomputeDay(userID, t.clock.Today())
	return err
}

// PurgeTemplate permanently deletes an archived template and its task rows,
// then recomputes every day those rows lived on plus today.
func (t *Tracker) PurgeTemplate(userID, id string) error {
	days, err := t.store.PurgeTemplate(id, userID)
	if err != nil {
		return err
	}
	days = append(days, t.clock.Today())
	return t.recomputeDays(userID, days)
}
