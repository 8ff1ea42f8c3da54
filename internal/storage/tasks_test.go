package storage

import (
	"errors"
	"testing"
)

func TestTaskUniquePerUserDayTemplate(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddTemplate(testTemplate("t1")); err != nil {
		t.Fatalf("failed to add template: %v", err)
	}

	id := "t1"
	if err := store.AddTask(testTask("a", "2024-01-10", &id)); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if err := store.AddTask(testTask("b", "2024-01-10", &id)); err == nil {
		t.Error("expected unique violation for second row on same (user, day, template)")
	}
	// A different day is fine.
	if err := store.AddTask(testTask("c", "2024-01-11", &id)); err != nil {
		t.Errorf("unexpected error for different day: %v", err)
	}
}

func TestOneOffsNeverDeduplicated(t *testing.T) {
	store := setupTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.AddTask(testTask(id, "2024-01-10", nil)); err != nil {
			t.Fatalf("one-off %s rejected: %v", id, err)
		}
	}

	tasks, err := store.GetTasksForDay("user-1", "2024-01-10")
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("expected 3 one-offs on the same day, got %d", len(tasks))
	}
}

func TestTaskUpdateAndDelete(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddTask(testTask("a", "2024-01-10", nil)); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	task, err := store.GetTask("a", "user-1")
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}

	note := "done early"
	value := 12.5
	task.Checked = true
	task.Note = &note
	task.Value = &value
	if err := store.UpdateTask(task); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	updated, err := store.GetTask("a", "user-1")
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if !updated.Checked || updated.Note == nil || *updated.Note != note || updated.Value == nil || *updated.Value != value {
		t.Errorf("update not persisted: %+v", updated)
	}

	day, err := store.DeleteTask("a", "user-1")
	if err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if day != "2024-01-10" {
		t.Errorf("expected affected day 2024-01-10, got %s", day)
	}
	if _, err := store.GetTask("a", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Error("task should be gone after delete")
	}
}

func TestGetTaskForTemplate(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddTemplate(testTemplate("t1")); err != nil {
		t.Fatalf("failed to add template: %v", err)
	}
	id := "t1"
	if err := store.AddTask(testTask("a", "2024-01-10", &id)); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	task, err := store.GetTaskForTemplate("user-1", "t1", "2024-01-10")
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if task.ID != "a" {
		t.Errorf("expected task a, got %s", task.ID)
	}

	if _, err := store.GetTaskForTemplate("user-1", "t1", "2024-01-11"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for day without a row, got %v", err)
	}
}

func TestGetCheckedDays(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddTemplate(testTemplate("t1")); err != nil {
		t.Fatalf("failed to add template: %v", err)
	}

	id := "t1"
	checked := testTask("a", "2024-01-10", &id)
	checked.Checked = true
	unchecked := testTask("b", "2024-01-11", &id)
	if err := store.AddTask(checked); err != nil {
		t.Fatalf("failed to add: %v", err)
	}
	if err := store.AddTask(unchecked); err != nil {
		t.Fatalf("failed to add: %v", err)
	}

	days, err := store.GetCheckedDays("t1")
	if err != nil {
		t.Fatalf("failed to get checked days: %v", err)
	}
	if len(days) != 1 || days[0] != "2024-01-10" {
		t.Errorf("expected [2024-01-10], got %v", days)
	}
}

func TestGetTasksForRange(t *testing.T) {
	store := setupTestStore(t)

	for i, day := range []string{"2024-01-05", "2024-01-15", "2024-02-01"} {
		if err := store.AddTask(testTask(string(rune('a'+i)), day, nil)); err != nil {
			t.Fatalf("failed to add task: %v", err)
		}
	}

	tasks, err := store.GetTasksForRange("user-1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("failed to list range: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks in January, got %d", len(tasks))
	}
}
