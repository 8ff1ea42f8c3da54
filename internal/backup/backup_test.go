package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
)

func setupDB(t *testing.T) (*storage.SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "checkdays.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.User{
		ID:           "user-1",
		Email:        "test@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	if err := store.AddUser(user); err != nil {
		t.Fatalf("failed to add user: %v", err)
	}
	return store, dbPath
}

func TestCreateAndList(t *testing.T) {
	_, dbPath := setupDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path %s, want %s", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("expected non-empty backup file")
	}
}

func TestCreateWithoutDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error backing up a missing database")
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	_, dbPath := setupDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	for _, name := range []string{"notes.txt", "checkdays-garbage.db", "other-20240110-120000.db"} {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write foreign file: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	store, dbPath := setupDB(t)
	mgr := NewManager(dbPath)

	// Snapshot with one template, then mutate the live database.
	tpl := models.Template{
		ID:            "tpl-1",
		UserID:        "user-1",
		Title:         "Stretch",
		Group:         models.GroupMorning,
		Weight:        1,
		DefaultActive: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := store.AddTemplate(tpl); err != nil {
		t.Fatalf("failed to add template: %v", err)
	}
	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	tpl2 := tpl
	tpl2.ID = "tpl-2"
	tpl2.Title = "Run"
	if err := store.AddTemplate(tpl2); err != nil {
		t.Fatalf("failed to add second template: %v", err)
	}
	store.Close()

	if err := mgr.Restore(path); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	restored := storage.NewSQLiteStore(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("failed to load restored store: %v", err)
	}
	defer restored.Close()

	templates, err := restored.GetAllTemplates("user-1", true)
	if err != nil {
		t.Fatalf("failed to list templates: %v", err)
	}
	if len(templates) != 1 || templates[0].ID != "tpl-1" {
		t.Errorf("restore did not roll back to snapshot state: %v", templates)
	}

	// The pre-restore state was itself snapshotted.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety backup before restore, got %d backups", len(backups))
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	_, dbPath := setupDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write bogus file: %v", err)
	}
	if err := mgr.Restore(bogus); err == nil {
		t.Error("expected error restoring a non-database file")
	}
	if err := mgr.Restore(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error restoring a missing file")
	}
}
