package store

import (
	"github.com/jordanwest/daykeep/internal/models"
)

// State is the complete application state: day-indexed habit records plus
// user settings. It is treated as an immutable value; every mutation produces
// a new State, copying only the substructure it touches. Snapshots handed out
// by the store must therefore never be written through.
type State struct {
	Days     map[string]models.DayRecord `json:"days"`
	Settings models.UserSettings         `json:"settings"`
}

// NewState returns the default initial state: no recorded days and the
// hardcoded default settings.
func NewState() State {
	return State{
		Days:     map[string]models.DayRecord{},
		Settings: models.DefaultSettings(),
	}
}

// Day returns the record for a date, synthesizing an ephemeral empty record
// when none exists. The synthesized record is never stored.
func (s State) Day(date string) models.DayRecord {
	if rec, ok := s.Days[date]; ok {
		return rec
	}
	return models.EmptyDayRecord(date)
}

// withDay returns a new State with the given day record replaced. The days
// map is copied shallowly; unrelated records are shared.
func (s State) withDay(rec models.DayRecord) State {
	days := make(map[string]models.DayRecord, len(s.Days)+1)
	for k, v := range s.Days {
		days[k] = v
	}
	days[rec.Date] = rec
	s.Days = days
	return s
}

// withSettings returns a new State with settings replaced.
func (s State) withSettings(settings models.UserSettings) State {
	s.Settings = settings
	return s
}

// cloneHabits copies a day's habit map so the original record stays untouched.
func cloneHabits(habits map[string]models.HabitEntry) map[string]models.HabitEntry {
	out := make(map[string]models.HabitEntry, len(habits)+1)
	for k, v := range habits {
		out[k] = v
	}
	return out
}

// cloneData copies a habit entry's data payload.
func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func cloneHabitIDs(ids []models.HabitID) []models.HabitID {
	out := make([]models.HabitID, len(ids))
	copy(out, ids)
	return out
}

func cloneCustomHabits(habits []models.CustomHabit) []models.CustomHabit {
	out := make([]models.CustomHabit, len(habits))
	copy(out, habits)
	return out
}

func cloneCriteria(criteria map[string]string) map[string]string {
	out := make(map[string]string, len(criteria)+1)
	for k, v := range criteria {
		out[k] = v
	}
	return out
}

func cloneNotifications(notifs []models.UserNotification) []models.UserNotification {
	out := make([]models.UserNotification, len(notifs))
	copy(out, notifs)
	return out
}
