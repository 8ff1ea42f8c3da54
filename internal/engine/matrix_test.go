package engine

import (
	"testing"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

func columnIDs(m MonthMatrix) []string {
	ids := make([]string, 0, len(m.Columns))
	for _, c := range m.Columns {
		ids = append(ids, c.ID)
	}
	return ids
}

func hasColumn(m MonthMatrix, id string) bool {
	for _, c := range m.Columns {
		if c.ID == id {
			return true
		}
	}
	return false
}

func TestMonthMatrix_ArchivalWindow(t *testing.T) {
	e := testEngine("2024-05-01")
	templates := []models.Template{tpl("t1", "2024-01-10", "2024-03-01", true)}

	feb, err := e.MonthMatrix(templates, nil, "2024-02")
	if err != nil {
		t.Fatalf("MonthMatrix failed: %v", err)
	}
	if !hasColumn(feb, "t1") {
		t.Error("February matrix should include template archived in March")
	}
	if len(feb.Rows) != 29 {
		t.Errorf("expected 29 rows for Feb 2024, got %d", len(feb.Rows))
	}
	for _, row := range feb.Rows {
		if _, ok := row.Cells["t1"]; !ok {
			t.Errorf("missing cell for t1 on %s", row.DateYMD)
		}
		if row.TotalCount != 1 {
			t.Errorf("expected totalCount 1 on %s, got %d", row.DateYMD, row.TotalCount)
		}
	}

	apr, err := e.MonthMatrix(templates, nil, "2024-04")
	if err != nil {
		t.Fatalf("MonthMatrix failed: %v", err)
	}
	if hasColumn(apr, "t1") {
		t.Error("April matrix should not include template archived in March")
	}
}

func TestMonthMatrix_TaskRowOverridesInactive(t *testing.T) {
	// A task recorded against a template outside its active window must still
	// surface in the matrix for that day.
	e := testEngine("2024-05-01")
	templates := []models.Template{tpl("t1", "2024-01-10", "2024-03-01", true)}
	tasks := []models.DailyTask{task("a", "2024-04-10", strptr("t1"), 1, true, false)}

	apr, err := e.MonthMatrix(templates, tasks, "2024-04")
	if err != nil {
		t.Fatalf("MonthMatrix failed: %v", err)
	}
	if !hasColumn(apr, "t1") {
		t.Error("template with a task row in April should appear despite archival")
	}

	for _, row := range apr.Rows {
		cell, ok := row.Cells["t1"]
		if row.DateYMD == "2024-04-10" {
			if !ok || !cell.Done {
				t.Error("expected a done cell on the day with the task row")
			}
			if row.DoneCount != 1 || row.TotalCount != 1 {
				t.Errorf("expected counts 1/1 on 2024-04-10, got %d/%d", row.DoneCount, row.TotalCount)
			}
		} else if ok {
			t.Errorf("unexpected cell for t1 on %s", row.DateYMD)
		}
	}
}

func TestMonthMatrix_RestoreCycleMatchesNeverArchived(t *testing.T) {
	e := testEngine("2024-02-20")
	never := []models.Template{tpl("t1", "2024-01-10", "", true)}
	// Archived and restored the same day: archival timestamp is cleared.
	restored := []models.Template{tpl("t1", "2024-01-10", "", true)}

	a, err := e.MonthMatrix(never, nil, "2024-02")
	if err != nil {
		t.Fatalf("MonthMatrix failed: %v", err)
	}
	b, err := e.MonthMatrix(restored, nil, "2024-02")
	if err != nil {
		t.Fatalf("MonthMatrix failed: %v", err)
	}

	if len(a.Rows) != len(b.Rows) {
		t.Fatal("row counts differ")
	}
	for i := range a.Rows {
		if a.Rows[i].DoneCount != b.Rows[i].DoneCount || a.Rows[i].TotalCount != b.Rows[i].TotalCount {
			t.Errorf("counts differ on %s", a.Rows[i].DateYMD)
		}
	}
}

func TestMonthMatrix_NotesAndOneOffs(t *testing.T) {
	e := testEngine("2024-01-31")
	templates := []models.Template{tpl("t1", "2024-01-01", "", true)}

	noted := task("a", "2024-01-05", strptr("t1"), 1, false, false)
	noted.Note = strptr("half done")
	oneOff := task("b", "2024-01-05", nil, 1, true, true)

	m, err := e.MonthMatrix(templates, []models.DailyTask{noted, oneOff}, "2024-01")
	if err != nil {
		t.Fatalf("MonthMatrix failed: %v", err)
	}

	for _, row := range m.Rows {
		if row.DateYMD != "2024-01-05" {
			continue
		}
		cell := row.Cells["t1"]
		if cell.Done {
			t.Error("note without check must not count as done")
		}
		if cell.Note == nil || *cell.Note != "half done" {
			t.Error("note missing from cell")
		}
		// One template (unchecked) plus one checked one-off.
		if row.TotalCount != 2 || row.DoneCount != 1 {
			t.Errorf("expected counts 1/2, got %d/%d", row.DoneCount, row.TotalCount)
		}
	}
}

func TestMonthMatrix_OrphanedTaskSkipped(t *testing.T) {
	e := testEngine("2024-01-31")
	orphan := task("a", "2024-01-05", strptr("gone"), 1, true, false)

	m, err := e.MonthMatrix(nil, []models.DailyTask{orphan}, "2024-01")
	if err != nil {
		t.Fatalf("orphaned task reference must not fail the month read: %v", err)
	}
	if len(m.Columns) != 0 {
		t.Errorf("orphaned reference should not produce a column, got %v", columnIDs(m))
	}
	for _, row := range m.Rows {
		if row.TotalCount != 0 {
			t.Errorf("orphaned reference counted on %s", row.DateYMD)
		}
	}
}

func TestMonthMatrix_ColumnOrdering(t *testing.T) {
	e := testEngine("2024-01-31")

	evening := tpl("a-evening", "2024-01-01", "", true)
	evening.Group = models.GroupEvening
	morning2 := tpl("z-morning", "2024-01-01", "", true)
	morning2.Order = 1
	morning1 := tpl("m-morning", "2024-01-01", "", true)
	morning1.Order = 0

	m, err := e.MonthMatrix([]models.Template{evening, morning2, morning1}, nil, "2024-01")
	if err != nil {
		t.Fatalf("MonthMatrix failed: %v", err)
	}

	got := columnIDs(m)
	want := []string{"m-morning", "z-morning", "a-evening"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected column order %v, got %v", want, got)
		}
	}
}

func TestMonthMatrix_RejectsMalformedMonth(t *testing.T) {
	e := testEngine("2024-01-31")
	if _, err := e.MonthMatrix(nil, nil, "2024-1"); err == nil {
		t.Error("expected error for malformed month key")
	}
}
