package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/been-going/PleaseCheckYourDays/internal/logger"
)

const (
	// MaxBackups is the number of snapshots kept before rotation.
	MaxBackups = 14
	// BackupDirName is the directory created next to the database file.
	BackupDirName = "backups"

	backupPrefix = "checkdays-"
	backupSuffix = ".db"
	stampFormat  = "20060102-150405"
)

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots and restores the sqlite database file. Summaries are a
// cache, so a restored snapshot is immediately consistent: recomputes after
// the restore rebuild them from the restored rows.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create writes a new snapshot and rotates old ones past MaxBackups.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	stamp := time.Now().Format(stampFormat)
	path := filepath.Join(m.backupDir, backupPrefix+stamp+backupSuffix)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", backupPrefix, stamp, n, backupSuffix))
	}

	if err := m.snapshot(path); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			// An unrotated pile of snapshots is not worth failing the backup over.
			logger.Warn("failed to rotate old backups", "error", err)
		}
	}
	return path, nil
}

// snapshot copies the live database into destPath. VACUUM INTO produces a
// consistent copy even while other connections hold the file; a plain file
// copy is the fallback for sqlite builds without it.
func (m *Manager) snapshot(destPath string) error {
	src, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer src.Close()

	var count int
	if err := src.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := src.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// List returns available snapshots, newest first. Files that don't match the
// snapshot naming scheme are ignored.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupSuffix)
		// Drop the collision counter if present (checkdays-<stamp>-N.db).
		if i := strings.LastIndex(stamp, "-"); i > len(stampFormat)-1 {
			stamp = stamp[:i]
		}
		ts, err := time.Parse(stampFormat, stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: ts, Size: fi.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the live database with a snapshot. The current database is
// itself snapshotted first so a mistaken restore can be undone.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		saved, err := m.create(true)
		if err != nil {
			return fmt.Errorf("failed to back up current database before restore: %w", err)
		}
		logger.Info("saved current database before restore", "backup", filepath.Base(saved))
	}

	// Copy to a sibling temp file, then rename over the live database so the
	// swap is atomic.
	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dbPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

func (m *Manager) verify(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
