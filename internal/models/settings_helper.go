package models

import (
	"github.com/jordanwest/daykeep/internal/constants"
)

// DefaultSettings returns the hardcoded default configuration.
func DefaultSettings() UserSettings {
	return UserSettings{
		HiddenHabits:  []HabitID{},
		HabitOrder:    DefaultHabitOrder(),
		CustomHabits:  []CustomHabit{},
		Language:      nil,
		ColorScheme:   ColorScheme(constants.DefaultColorScheme),
		HabitCriteria: map[string]string{},
		Notifications: []UserNotification{},
		QuietHours: QuietHours{
			Enabled: false,
			Start:   constants.DefaultQuietHoursStart,
			End:     constants.DefaultQuietHoursEnd,
		},
		Timezone: constants.DefaultTimezone,
	}
}

// Normalize merges loaded settings over the defaults so that data written by
// older (or newer) versions loads without error: unknown fields are dropped by
// the decoder, missing fields fall back silently. It also restores the
// structural invariants: HabitOrder is a permutation covering every built-in
// habit exactly once, and HiddenHabits is a subset of the built-in catalogue.
func (s *UserSettings) Normalize() {
	defaults := DefaultSettings()

	if s.ColorScheme != ColorSchemeLight && s.ColorScheme != ColorSchemeDark && s.ColorScheme != ColorSchemeAuto {
		s.ColorScheme = defaults.ColorScheme
	}
	if s.CustomHabits == nil {
		s.CustomHabits = []CustomHabit{}
	}
	if s.HabitCriteria == nil {
		s.HabitCriteria = map[string]string{}
	}
	if s.Notifications == nil {
		s.Notifications = []UserNotification{}
	}
	if s.QuietHours.Start == "" {
		s.QuietHours.Start = defaults.QuietHours.Start
	}
	if s.QuietHours.End == "" {
		s.QuietHours.End = defaults.QuietHours.End
	}
	if s.Timezone == "" {
		s.Timezone = defaults.Timezone
	}

	// Rebuild HabitOrder: keep the stored order for known built-ins, drop
	// anything unknown, append any catalogue ids the stored order is missing.
	seen := make(map[HabitID]bool, len(Builtins))
	order := make([]HabitID, 0, len(Builtins))
	for _, id := range s.HabitOrder {
		if IsBuiltin(id) && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, meta := range Builtins {
		if !seen[meta.ID] {
			order = append(order, meta.ID)
		}
	}
	s.HabitOrder = order

	hidden := make([]HabitID, 0, len(s.HiddenHabits))
	for _, id := range s.HiddenHabits {
		if IsBuiltin(id) {
			hidden = append(hidden, id)
		}
	}
	s.HiddenHabits = hidden
}
