package system

import (
	"fmt"
	"time"

	"github.com/jordanwest/daykeep/internal/backup"
	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage loadable
	if _, err := ctx.Provider.Load(); err != nil {
		fmt.Printf("❌ Storage readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage readable: OK\n")
	}

	// Check 2: settings invariants
	if err := checkSettings(ctx); err != nil {
		fmt.Printf("❌ Settings integrity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Settings integrity: OK\n")
	}

	// Check 3: reminder schedules valid
	if err := checkReminders(ctx); err != nil {
		fmt.Printf("❌ Reminder schedules: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Reminder schedules: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: notification daemon reachable (warning only)
	if granted, _ := ctx.Syncer.Permissions(); granted {
		fmt.Printf("✓ Notification daemon: OK\n")
	} else {
		fmt.Printf("⚠ Notification daemon: WARNING\n")
		fmt.Printf("   Not reachable; reminders will not fire.\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings := ctx.Store.State().Settings

	seen := map[models.HabitID]bool{}
	for _, id := range settings.HabitOrder {
		if !models.IsBuiltin(id) {
			return fmt.Errorf("habit order contains unknown id %q", id)
		}
		if seen[id] {
			return fmt.Errorf("habit order contains %q twice", id)
		}
		seen[id] = true
	}
	if len(seen) != len(models.Builtins) {
		return fmt.Errorf("habit order covers %d of %d built-ins", len(seen), len(models.Builtins))
	}

	for _, id := range settings.HiddenHabits {
		if !models.IsBuiltin(id) {
			return fmt.Errorf("hidden habits contains unknown id %q", id)
		}
	}

	for id := range settings.HabitCriteria {
		if models.IsBuiltin(models.HabitID(id)) {
			continue
		}
		found := false
		for _, ch := range settings.CustomHabits {
			if ch.ID == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("dangling criterion for %q", id)
		}
	}
	return nil
}

func checkReminders(ctx *cli.Context) error {
	settings := ctx.Store.State().Settings
	for _, n := range settings.Notifications {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("reminder %s: %w", n.ID, err)
		}
	}
	if settings.QuietHours.Enabled {
		if _, _, err := settings.QuietHours.Window(); err != nil {
			return err
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Provider.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run 'daykeep backup create'")
	}
	if time.Since(backups[0].Timestamp) > 7*24*time.Hour {
		return fmt.Errorf("latest backup is older than 7 days")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	tz := ctx.Store.State().Settings.Timezone
	if !utils.ValidateTimezone(tz) {
		return fmt.Errorf("configured timezone %q is invalid", tz)
	}
	today, err := utils.TodayInTimezone(tz)
	if err != nil {
		return err
	}
	if _, err := utils.ParseDate(today); err != nil {
		return fmt.Errorf("day key %q is malformed: %w", today, err)
	}
	return nil
}
