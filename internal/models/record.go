package models

import "time"

// HabitEntry is a single habit's record for one day. It is created on the
// first toggle of that habit for the day and replaced (not merged, except for
// Data) on every subsequent toggle.
type HabitEntry struct {
	Completed bool           `json:"completed"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// DayRecord aggregates all habit completions for one local calendar day.
// Absence of a record for a date means zero habits completed that day; an
// empty record is synthesized on read and never persisted until the first
// mutation touches it.
type DayRecord struct {
	Date   string                `json:"date"` // YYYY-MM-DD
	Habits map[string]HabitEntry `json:"habits"`
}

// EmptyDayRecord returns the ephemeral zero record for a date.
func EmptyDayRecord(date string) DayRecord {
	return DayRecord{Date: date, Habits: map[string]HabitEntry{}}
}
