package notify

import (
	"context"
	"errors"

	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/store"
)

// Watcher resyncs the device whenever the notification slice of settings
// changes. Sync errors never propagate into the mutation path; a failed sync
// is corrected by the next one (last writer wins).
type Watcher struct {
	syncer *Syncer
}

// NewWatcher builds a watcher over the given syncer.
func NewWatcher(syncer *Syncer) *Watcher {
	return &Watcher{syncer: syncer}
}

// Attach subscribes the watcher to a store's event feed.
func (w *Watcher) Attach(st *store.Store) {
	st.Subscribe(func(ev store.Event) {
		if !ev.Notifications {
			return
		}
		settings := ev.State.Settings
		armed, err := w.syncer.Sync(context.Background(), settings.Notifications, settings.QuietHours)
		switch {
		case errors.Is(err, ErrPermissionDenied):
			logger.Warn("Notification permission denied, reminders not armed")
		case err != nil:
			logger.Error("Reminder sync failed", "error", err)
		default:
			logger.Debug("Reminders resynced", "armed", armed)
		}
	})
}
