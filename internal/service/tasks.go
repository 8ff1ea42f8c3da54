package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
	"github.com/been-going/PleaseCheckYourDays/internal/validation"
)

// CheckTemplate sets the checked state of a template on a day, lazily
// materializing the task row on first interaction. The row snapshots the
// template's title and weight so later template edits cannot rewrite history.
func (t *Tracker) CheckTemplate(userID, templateID, day string, checked bool) (models.DailyTask, error) {
	if err := validation.DayKey(day); err != nil {
		return models.DailyTask{}, err
	}

	tpl, err := t.store.GetTemplate(templateID, userID)
	if err != nil {
		return models.DailyTask{}, err
	}

	task, err := t.store.GetTaskForTemplate(userID, templateID, day)
	switch {
	case err == nil:
		task.Checked = checked
		if err := t.store.UpdateTask(task); err != nil {
			return models.DailyTask{}, err
		}
	case errors.Is(err, storage.ErrNotFound):
		task = t.materialize(tpl, day)
		task.Checked = checked
		if err := t.store.AddTask(task); err != nil {
			return models.DailyTask{}, fmt.Errorf("failed to create task row: %w", err)
		}
	default:
		return models.DailyTask{}, err
	}

	if _, err := t.RecomputeDay(userID, day); err != nil {
		return models.DailyTask{}, err
	}
	return task, nil
}

// UpsertTaskNote sets the note and/or value of a template's row on a day,
// creating an unchecked row if none exists yet. Nil arguments leave the
// corresponding field untouched.
func (t *Tracker) UpsertTaskNote(userID, templateID, day string, note *string, value *float64) (models.DailyTask, error) {
	if err := validation.DayKey(day); err != nil {
		return models.DailyTask{}, err
	}

	tpl, err := t.store.GetTemplate(templateID, userID)
	if err != nil {
		return models.DailyTask{}, err
	}

	task, err := t.store.GetTaskForTemplate(userID, templateID, day)
	switch {
	case err == nil:
		if note != nil {
			task.Note = note
		}
		if value != nil {
			task.Value = value
		}
		if err := t.store.UpdateTask(task); err != nil {
			return models.DailyTask{}, err
		}
	case errors.Is(err, storage.ErrNotFound):
		task = t.materialize(tpl, day)
		task.Note = note
		task.Value = value
		if err := t.store.AddTask(task); err != nil {
			return models.DailyTask{}, fmt.Errorf("failed to create task row: %w", err)
		}
	default:
		return models.DailyTask{}, err
	}

	if _, err := t.RecomputeDay(userID, day); err != nil {
		return models.DailyTask{}, err
	}
	return task, nil
}

func (t *Tracker) materialize(tpl models.Template, day string) models.DailyTask {
	now := t.clock.Now()
	return models.DailyTask{
		ID:         uuid.NewString(),
		UserID:     tpl.UserID,
		DateYMD:    day,
		TemplateID: &tpl.ID,
		Title:      tpl.Title,
		Weight:     tpl.Weight,
		IsOneOff:   false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddOneOff creates a one-off task for a single day. One-offs are never
// deduplicated and raise the day's total weight.
func (t *Tracker) AddOneOff(userID, title, day string) (models.DailyTask, error) {
	if err := validation.Title(title); err != nil {
		return models.DailyTask{}, err
	}
	if err := validation.DayKey(day); err != nil {
		return models.DailyTask{}, err
	}

	now := t.clock.Now()
	task := models.DailyTask{
		ID:        uuid.NewString(),
		UserID:    userID,
		DateYMD:   day,
		Title:     title,
		Weight:    1,
		IsOneOff:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.store.AddTask(task); err != nil {
		return models.DailyTask{}, fmt.Errorf("failed to create one-off: %w", err)
	}

	if _, err := t.RecomputeDay(userID, day); err != nil {
		return models.DailyTask{}, err
	}
	return task, nil
}

// UpdateTask applies a partial update to an existing task row by id.
func (t *Tracker) UpdateTask(userID, id string, patch models.TaskPatch) (models.DailyTask, error) {
	task, err := t.store.GetTask(id, userID)
	if err != nil {
		return models.DailyTask{}, err
	}

	if patch.Checked != nil {
		task.Checked = *patch.Checked
	}
	if patch.Note != nil {
		task.Note = patch.Note
	}
	if patch.Value != nil {
		task.Value = patch.Value
	}

	if err := t.store.UpdateTask(task); err != nil {
		return models.DailyTask{}, err
	}

	if _, err := t.RecomputeDay(userID, task.DateYMD); err != nil {
		return models.DailyTask{}, err
	}
	return task, nil
}

// DeleteTask removes a task row and recomputes the day it lived on.
func (t *Tracker) DeleteTask(userID, id string) error {
	day, err := t.store.DeleteTask(id, userID)
	if err != nil {
		return err
	}
	_, err = t.RecomputeDay(userID, day)
	return err
}

// TasksForDay lists the raw task rows of one day.
func (t *Tracker) TasksForDay(userID, day string) ([]models.DailyTask, error) {
	if err := validation.DayKey(day); err != nil {
		return nil, err
	}
	return t.store.GetTasksForDay(userID, day)
}
