package models

import (
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if len(s.HabitOrder) != len(Builtins) {
		t.Errorf("habit order covers %d of %d builtins", len(s.HabitOrder), len(Builtins))
	}
	if s.Language != nil {
		t.Error("default language must be auto-detect (nil)")
	}
	if s.ColorScheme != ColorSchemeLight {
		t.Errorf("default color scheme = %q", s.ColorScheme)
	}
	if s.QuietHours.Enabled {
		t.Error("quiet hours must start disabled")
	}
}

func TestNormalizeRebuildsHabitOrder(t *testing.T) {
	s := UserSettings{
		HabitOrder:   []HabitID{"sleep", "bogus", "sleep", "food"},
		HiddenHabits: []HabitID{"light", "not_a_habit"},
	}
	s.Normalize()

	if len(s.HabitOrder) != len(Builtins) {
		t.Fatalf("habit order = %v", s.HabitOrder)
	}
	if s.HabitOrder[0] != "sleep" || s.HabitOrder[1] != "food" {
		t.Errorf("stored prefix not preserved: %v", s.HabitOrder)
	}
	seen := map[HabitID]int{}
	for _, id := range s.HabitOrder {
		seen[id]++
		if seen[id] > 1 {
			t.Errorf("habit %q appears twice", id)
		}
		if !IsBuiltin(id) {
			t.Errorf("unknown habit %q survived normalization", id)
		}
	}

	if len(s.HiddenHabits) != 1 || s.HiddenHabits[0] != "light" {
		t.Errorf("hidden habits = %v, want [light]", s.HiddenHabits)
	}
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	s := UserSettings{}
	s.Normalize()

	if s.CustomHabits == nil || s.HabitCriteria == nil || s.Notifications == nil {
		t.Error("expected nil collections replaced")
	}
	if s.ColorScheme != ColorSchemeLight {
		t.Errorf("color scheme = %q", s.ColorScheme)
	}
	if s.QuietHours.Start == "" || s.QuietHours.End == "" {
		t.Error("quiet hours window not defaulted")
	}
	if s.Timezone == "" {
		t.Error("timezone not defaulted")
	}
}

func TestCustomHabitIDs(t *testing.T) {
	id := NewCustomHabitID()
	if !IsCustomID(id) {
		t.Errorf("minted id %q not in custom namespace", id)
	}
	if IsBuiltin(HabitID(id)) {
		t.Errorf("minted id %q collides with builtins", id)
	}
	if id == NewCustomHabitID() {
		t.Error("two minted ids must differ")
	}
	if IsCustomID("breathing") {
		t.Error("builtin id classified as custom")
	}
}
