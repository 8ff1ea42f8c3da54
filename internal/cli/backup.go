package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/been-going/PleaseCheckYourDays/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	File  string `arg:"" optional:"" help:"Backup file to restore (default: most recent)."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetPath())

	path := c.File
	if path == "" {
		backups, err := mgr.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups to restore")
		}
		path = backups[0].Path
	}

	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Replace the current database with %s?", filepath.Base(path))).
					Description("The current database is backed up first.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := mgr.Restore(path); err != nil {
		return err
	}
	fmt.Printf("Restored from: %s\n", filepath.Base(path))
	return nil
}
