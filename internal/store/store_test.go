package store

import (
	"testing"
	"time"

	"github.com/jordanwest/daykeep/internal/models"
)

func testClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newTestStore() *Store {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	return New(NewState(), WithClock(testClock(start)))
}

func TestToggleHabitCreatesTodayRecord(t *testing.T) {
	s := newTestStore()

	state := s.ToggleHabit("breathing")

	if len(state.Days) != 1 {
		t.Fatalf("expected 1 day record, got %d", len(state.Days))
	}
	rec, ok := state.Days["2025-06-15"]
	if !ok {
		t.Fatalf("expected record keyed by today, got keys %v", state.Days)
	}
	entry, ok := rec.Habits["breathing"]
	if !ok {
		t.Fatal("expected habit entry for breathing")
	}
	if !entry.Completed {
		t.Error("expected entry to be completed after first toggle")
	}
}

func TestToggleHabitTwiceRefreshesTimestamp(t *testing.T) {
	s := newTestStore()

	first := s.ToggleHabit("exercise").Days["2025-06-15"].Habits["exercise"]
	second := s.ToggleHabit("exercise").Days["2025-06-15"].Habits["exercise"]

	if second.Completed {
		t.Error("expected double toggle to return completed to false")
	}
	if !second.Timestamp.After(first.Timestamp) {
		t.Errorf("expected timestamp refresh on second toggle: first=%v second=%v", first.Timestamp, second.Timestamp)
	}
}

func TestToggleHabitPreservesData(t *testing.T) {
	s := newTestStore()

	s.UpdateHabitData("food", map[string]any{"meals": 2})
	state := s.ToggleHabit("food")

	entry := state.Days["2025-06-15"].Habits["food"]
	if entry.Completed {
		t.Error("expected toggle after completion to clear completed")
	}
	if entry.Data["meals"] != 2 {
		t.Errorf("expected data payload preserved across toggle, got %v", entry.Data)
	}
}

func TestUpdateHabitDataMergesAndCompletes(t *testing.T) {
	s := newTestStore()

	s.UpdateHabitData("sleep", map[string]any{"start": "23:00"})
	state := s.UpdateHabitData("sleep", map[string]any{"end": "07:00"})

	entry := state.Days["2025-06-15"].Habits["sleep"]
	if !entry.Completed {
		t.Error("expected data update to mark habit completed")
	}
	if entry.Data["start"] != "23:00" || entry.Data["end"] != "07:00" {
		t.Errorf("expected merged data payload, got %v", entry.Data)
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	s := newTestStore()

	before := s.State()
	s.ToggleHabit("light")

	if len(before.Days) != 0 {
		t.Error("mutation leaked into previously captured snapshot")
	}
}

func TestAddCustomHabitTrimsAndRejectsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantOK   bool
		wantText string
	}{
		{"plain", "Read 20 pages", true, "Read 20 pages"},
		{"padded", "  stretch  ", true, "stretch"},
		{"empty", "", false, ""},
		{"whitespace", "   ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			habit, ok := s.AddCustomHabit(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("AddCustomHabit(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !tt.wantOK {
				if len(s.State().Settings.CustomHabits) != 0 {
					t.Error("rejected habit must not modify customHabits")
				}
				return
			}
			if habit.Text != tt.wantText {
				t.Errorf("habit text = %q, want %q", habit.Text, tt.wantText)
			}
			if !models.IsCustomID(habit.ID) {
				t.Errorf("habit id %q not in custom namespace", habit.ID)
			}
		})
	}
}

func TestDeleteCustomHabitPurgesCriterion(t *testing.T) {
	s := newTestStore()

	habit, _ := s.AddCustomHabit("meditate")
	s.SetHabitCriterion(habit.ID, "10 minutes")
	state := s.DeleteCustomHabit(habit.ID)

	if len(state.Settings.CustomHabits) != 0 {
		t.Error("expected custom habit removed")
	}
	if _, ok := state.Settings.HabitCriteria[habit.ID]; ok {
		t.Error("expected dangling criterion purged with the habit")
	}
}

func TestDeleteCustomHabitUnknownIDIsNoop(t *testing.T) {
	s := newTestStore()
	s.AddCustomHabit("journal")

	var events int
	s.Subscribe(func(Event) { events++ })
	state := s.DeleteCustomHabit("custom_nope")

	if len(state.Settings.CustomHabits) != 1 {
		t.Error("unknown id must not modify customHabits")
	}
	if events != 0 {
		t.Errorf("no-op delete published %d events", events)
	}
}

func TestToggleHideHabit(t *testing.T) {
	s := newTestStore()

	state := s.ToggleHideHabit("gratitude")
	if len(state.Settings.HiddenHabits) != 1 || state.Settings.HiddenHabits[0] != "gratitude" {
		t.Fatalf("expected gratitude hidden, got %v", state.Settings.HiddenHabits)
	}

	state = s.ToggleHideHabit("gratitude")
	if len(state.Settings.HiddenHabits) != 0 {
		t.Errorf("expected second toggle to unhide, got %v", state.Settings.HiddenHabits)
	}
}

func TestSetHabitCriterionEmptyClears(t *testing.T) {
	s := newTestStore()

	s.SetHabitCriterion("breathing", "5 deep breaths")
	state := s.SetHabitCriterion("breathing", "  ")

	if _, ok := state.Settings.HabitCriteria["breathing"]; ok {
		t.Error("expected empty text to clear the criterion")
	}
}

func TestUpdateNotificationClearsIsDefault(t *testing.T) {
	s := newTestStore()
	s.AddNotification(models.UserNotification{
		ID:        "default_morning",
		Title:     "Good morning",
		Schedule:  models.NotificationSchedule{Type: models.ScheduleDaily, Hour: 8},
		Enabled:   true,
		IsDefault: true,
	})

	title := "Rise and shine"
	state := s.UpdateNotification("default_morning", NotificationPatch{Title: &title})

	n := state.Settings.Notifications[0]
	if n.Title != title {
		t.Errorf("title = %q, want %q", n.Title, title)
	}
	if n.IsDefault {
		t.Error("expected edit to clear isDefault")
	}
}

func TestToggleNotificationKeepsIsDefault(t *testing.T) {
	s := newTestStore()
	s.AddNotification(models.UserNotification{
		ID:        "default_evening",
		Title:     "Evening check-in",
		Schedule:  models.NotificationSchedule{Type: models.ScheduleDaily, Hour: 21},
		Enabled:   true,
		IsDefault: true,
	})

	state := s.ToggleNotification("default_evening")

	n := state.Settings.Notifications[0]
	if n.Enabled {
		t.Error("expected toggle to disable the reminder")
	}
	if !n.IsDefault {
		t.Error("toggling enabled must not clear isDefault")
	}
}

func TestUpdateNotificationUnknownIDIsNoop(t *testing.T) {
	s := newTestStore()

	var events int
	s.Subscribe(func(Event) { events++ })
	title := "x"
	s.UpdateNotification("notif_missing", NotificationPatch{Title: &title})

	if events != 0 {
		t.Errorf("no-op update published %d events", events)
	}
}

func TestSubscribeEventFlags(t *testing.T) {
	s := newTestStore()

	var last Event
	s.Subscribe(func(ev Event) { last = ev })

	s.ToggleHabit("light")
	if !last.Days || last.Settings || last.Notifications {
		t.Errorf("habit toggle flags = %+v", last)
	}

	s.SetColorScheme(models.ColorSchemeDark)
	if last.Days || !last.Settings || last.Notifications {
		t.Errorf("color scheme flags = %+v", last)
	}

	s.SetQuietHours(models.QuietHours{Enabled: true, Start: "22:00", End: "08:00"})
	if !last.Settings || !last.Notifications {
		t.Errorf("quiet hours flags = %+v", last)
	}
}

func TestResetAll(t *testing.T) {
	s := newTestStore()
	s.ToggleHabit("breathing")
	s.AddCustomHabit("journal")

	var last Event
	s.Subscribe(func(ev Event) { last = ev })
	state := s.ResetAll()

	if last.Kind != EventReset {
		t.Errorf("expected reset event, got %q", last.Kind)
	}
	if len(state.Days) != 0 {
		t.Error("expected days cleared")
	}
	if len(state.Settings.CustomHabits) != 0 {
		t.Error("expected settings reset to defaults")
	}
}

func TestTodayRespectsTimezone(t *testing.T) {
	// 01:30 UTC on the 16th is still the 15th in a UTC-5 zone.
	start := time.Date(2025, 6, 16, 1, 30, 0, 0, time.UTC)
	s := New(NewState(), WithClock(func() time.Time { return start }))
	s.SetTimezone("America/New_York")

	state := s.ToggleHabit("breathing")
	if _, ok := state.Days["2025-06-15"]; !ok {
		t.Errorf("expected record keyed in configured timezone, got %v", state.Days)
	}
}
