package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jordanwest/daykeep/internal/backup"
	"github.com/jordanwest/daykeep/internal/i18n"
	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/notify"
	"github.com/jordanwest/daykeep/internal/storage"
	"github.com/jordanwest/daykeep/internal/store"
	"github.com/jordanwest/daykeep/internal/utils"
)

// Context carries the wired application components into command Run methods.
type Context struct {
	Provider storage.Provider
	Store    *store.Store
	Gateway  *storage.Gateway
	Syncer   *notify.Syncer
}

// Translator resolves the active language from settings.
func (c *Context) Translator() *i18n.Translator {
	return i18n.New(c.Store.State().Settings.Language)
}

// HabitName renders a habit id for display: translated catalogue name for
// built-ins, the user's text for custom habits, the raw id otherwise.
func (c *Context) HabitName(id string) string {
	if meta, ok := models.BuiltinByID[models.HabitID(id)]; ok {
		return c.Translator().T(meta.NameKey)
	}
	for _, ch := range c.Store.State().Settings.CustomHabits {
		if ch.ID == id {
			return ch.Text
		}
	}
	return id
}

// TodayKey resolves today's canonical day key in the configured timezone.
func (c *Context) TodayKey() string {
	key, err := utils.TodayInTimezone(c.Store.State().Settings.Timezone)
	if err != nil {
		return utils.DayKey(time.Now())
	}
	return key
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Provider.GetConfigPath())
	_, err := mgr.Create()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Resync rebuilds the armed trigger set from current settings and reports
// the outcome to the user.
func (c *Context) Resync() error {
	settings := c.Store.State().Settings
	armed, err := c.Syncer.Sync(context.Background(), settings.Notifications, settings.QuietHours)
	if errors.Is(err, notify.ErrPermissionDenied) {
		fmt.Println("Notification permission denied; reminders were not armed.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Armed %d notification trigger(s).\n", armed)
	return nil
}
