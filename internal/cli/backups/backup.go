package backups

import (
	"fmt"
	"path/filepath"

	"github.com/jordanwest/daykeep/internal/backup"
	"github.com/jordanwest/daykeep/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	// Flush any pending debounced write first so the backup holds the
	// latest state.
	if err := ctx.Gateway.Flush(); err != nil {
		return fmt.Errorf("failed to flush pending state: %w", err)
	}

	mgr := backup.NewManager(ctx.Provider.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Provider.GetConfigPath())
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
		fmt.Printf("  %s  %s  %d bytes\n", filepath.Base(b.Path), b.Timestamp.Format("2006-01-02 15:04"), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup filename (see 'backup list')."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Provider.GetConfigPath())

	path := c.Name
	if filepath.Dir(path) == "." {
		path = filepath.Join(mgr.BackupDir(), c.Name)
	}

	// Close the live handle before swapping the file underneath it.
	if err := ctx.Provider.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	if err := mgr.Restore(path); err != nil {
		return err
	}

	fmt.Printf("Restored from %s. Restart daykeep to load the restored state.\n", filepath.Base(path))
	return nil
}
