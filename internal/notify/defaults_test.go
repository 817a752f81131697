package notify

import (
	"testing"

	"github.com/jordanwest/daykeep/internal/i18n"
	"github.com/jordanwest/daykeep/internal/models"
)

func translator(lang string) *i18n.Translator {
	return i18n.New(&lang)
}

func TestDefaultReminders(t *testing.T) {
	defaults := DefaultReminders(translator("en"))

	if len(defaults) != 3 {
		t.Fatalf("expected 3 seeded reminders, got %d", len(defaults))
	}
	byID := map[string]models.UserNotification{}
	for _, n := range defaults {
		byID[n.ID] = n
		if n.Enabled {
			t.Errorf("seeded reminder %s must start disabled", n.ID)
		}
		if !n.IsDefault || n.DefaultKey == "" {
			t.Errorf("seeded reminder %s missing default marker", n.ID)
		}
		if err := n.Validate(); err != nil {
			t.Errorf("seeded reminder %s invalid: %v", n.ID, err)
		}
	}

	morning := byID["default_morning"]
	if morning.Schedule.Type != models.ScheduleDaily || morning.Schedule.Hour != 8 {
		t.Errorf("morning schedule = %+v, want daily 08:00", morning.Schedule)
	}
	evening := byID["default_evening"]
	if evening.Schedule.Type != models.ScheduleDaily || evening.Schedule.Hour != 21 {
		t.Errorf("evening schedule = %+v, want daily 21:00", evening.Schedule)
	}
	move := byID["default_move"]
	if move.Schedule.Type != models.ScheduleInterval || move.Schedule.IntervalMinutes() != 120 {
		t.Errorf("move schedule = %+v, want 2h interval", move.Schedule)
	}
}

func TestEnsureDefaultsOnlyAddsMissing(t *testing.T) {
	tr := translator("en")
	seeded := DefaultReminders(tr)

	current := []models.UserNotification{seeded[0]}
	out, added := EnsureDefaults(current, tr)
	if !added {
		t.Fatal("expected missing defaults to be added")
	}
	if len(out) != 3 {
		t.Errorf("expected 3 reminders after seeding, got %d", len(out))
	}

	out, added = EnsureDefaults(out, tr)
	if added {
		t.Error("second pass must be a no-op")
	}
	if len(out) != 3 {
		t.Errorf("second pass changed the list to %d entries", len(out))
	}
}

func TestRetranslateDefaultsSkipsEditedReminders(t *testing.T) {
	en := DefaultReminders(translator("en"))

	edited := en[0]
	edited.IsDefault = false
	edited.Title = "My custom title"
	current := []models.UserNotification{edited, en[1]}

	out := RetranslateDefaults(current, translator("es"))

	if out[0].Title != "My custom title" {
		t.Errorf("edited reminder was retranslated to %q", out[0].Title)
	}
	if out[1].Title == en[1].Title {
		t.Errorf("unedited default kept English title %q", out[1].Title)
	}
}
