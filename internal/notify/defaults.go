package notify

import (
	"fmt"

	"github.com/jordanwest/daykeep/internal/constants"
	"github.com/jordanwest/daykeep/internal/i18n"
	"github.com/jordanwest/daykeep/internal/models"
)

type defaultDef struct {
	key      string
	schedule models.NotificationSchedule
}

// The seeded reminder catalogue: two fixed daily check-ins and one repeating
// movement nudge. All start disabled; the user opts in.
var defaultDefs = []defaultDef{
	{key: "morning", schedule: models.NotificationSchedule{Type: models.ScheduleDaily, Hour: 8, Minute: 0}},
	{key: "evening", schedule: models.NotificationSchedule{Type: models.ScheduleDaily, Hour: 21, Minute: 0}},
	{key: "move", schedule: models.NotificationSchedule{Type: models.ScheduleInterval, Hours: 2, Minutes: 0}},
}

// DefaultReminders builds the seeded reminder list with content in the
// translator's language.
func DefaultReminders(tr *i18n.Translator) []models.UserNotification {
	out := make([]models.UserNotification, 0, len(defaultDefs))
	for _, def := range defaultDefs {
		out = append(out, models.UserNotification{
			ID:         constants.DefaultNotificationPrefix + def.key,
			Title:      tr.T(fmt.Sprintf("notifications.defaults.%s.title", def.key)),
			Body:       tr.T(fmt.Sprintf("notifications.defaults.%s.body", def.key)),
			Schedule:   def.schedule,
			Enabled:    false,
			IsDefault:  true,
			DefaultKey: def.key,
		})
	}
	return out
}

// EnsureDefaults appends any seeded reminder missing from current (matching
// by id, so a deleted-then-reseeded default keeps a stable identity). The
// second return reports whether anything was added.
func EnsureDefaults(current []models.UserNotification, tr *i18n.Translator) ([]models.UserNotification, bool) {
	have := make(map[string]bool, len(current))
	for _, n := range current {
		have[n.ID] = true
	}

	out := current
	added := false
	for _, def := range DefaultReminders(tr) {
		if !have[def.ID] {
			out = append(out, def)
			added = true
		}
	}
	return out, added
}

// RetranslateDefaults refreshes title and body for seeded reminders the user
// has not edited, so their text follows the active language. Edited reminders
// (IsDefault cleared) keep the user's text.
func RetranslateDefaults(current []models.UserNotification, tr *i18n.Translator) []models.UserNotification {
	out := make([]models.UserNotification, len(current))
	for i, n := range current {
		if n.IsDefault && n.DefaultKey != "" {
			n.Title = tr.T(fmt.Sprintf("notifications.defaults.%s.title", n.DefaultKey))
			n.Body = tr.T(fmt.Sprintf("notifications.defaults.%s.body", n.DefaultKey))
		}
		out[i] = n
	}
	return out
}
