package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jordanwest/daykeep/internal/constants"
)

// HabitID identifies either a built-in habit from the fixed catalogue or a
// user-defined custom habit (prefixed with "custom_").
type HabitID string

// QuickActionKind describes how a habit is completed in the UI.
type QuickActionKind string

const (
	QuickActionTimer     QuickActionKind = "timer"
	QuickActionCheckbox  QuickActionKind = "checkbox"
	QuickActionInput     QuickActionKind = "input"
	QuickActionTimeRange QuickActionKind = "time_range"
	QuickActionText      QuickActionKind = "text"
)

// HabitMeta describes one entry of the built-in habit catalogue.
type HabitMeta struct {
	ID          HabitID
	Icon        string
	NameKey     string // i18n key for the display name
	QuickAction QuickActionKind
}

// Builtins is the fixed catalogue of built-in habits, in default display order.
var Builtins = []HabitMeta{
	{ID: "breathing", Icon: "\U0001FAC1", NameKey: "habits.breathing", QuickAction: QuickActionTimer},
	{ID: "light", Icon: "☀️", NameKey: "habits.light", QuickAction: QuickActionCheckbox},
	{ID: "food", Icon: "\U0001F957", NameKey: "habits.food", QuickAction: QuickActionInput},
	{ID: "sleep", Icon: "\U0001F634", NameKey: "habits.sleep", QuickAction: QuickActionTimeRange},
	{ID: "exercise", Icon: "\U0001F3C3", NameKey: "habits.exercise", QuickAction: QuickActionInput},
	{ID: "gratitude", Icon: "\U0001F64F", NameKey: "habits.gratitude", QuickAction: QuickActionText},
}

// BuiltinByID indexes the catalogue for lookups.
var BuiltinByID = func() map[HabitID]HabitMeta {
	m := make(map[HabitID]HabitMeta, len(Builtins))
	for _, h := range Builtins {
		m[h.ID] = h
	}
	return m
}()

// DefaultHabitOrder returns the catalogue ids in their default order.
func DefaultHabitOrder() []HabitID {
	order := make([]HabitID, len(Builtins))
	for i, h := range Builtins {
		order[i] = h.ID
	}
	return order
}

// IsBuiltin reports whether id belongs to the built-in catalogue.
func IsBuiltin(id HabitID) bool {
	_, ok := BuiltinByID[id]
	return ok
}

// IsCustomID reports whether id is in the custom habit namespace.
func IsCustomID(id string) bool {
	return strings.HasPrefix(id, constants.CustomHabitPrefix)
}

// NewCustomHabitID mints a fresh id in the custom namespace.
func NewCustomHabitID() string {
	return constants.CustomHabitPrefix + uuid.New().String()
}

// CustomHabit is a user-defined habit. It is distinguished from the built-in
// catalogue only by its id namespace.
type CustomHabit struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
