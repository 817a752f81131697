package models

// ColorScheme selects the UI palette.
type ColorScheme string

const (
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeAuto  ColorScheme = "auto"
)

// UserSettings is the aggregate user configuration persisted alongside the
// day records. JSON keys match the durable-record wire format.
type UserSettings struct {
	HiddenHabits  []HabitID          `json:"hiddenHabits"`
	HabitOrder    []HabitID          `json:"habitOrder"`
	CustomHabits  []CustomHabit      `json:"customHabits"`
	Language      *string            `json:"language"` // nil = auto-detect
	ColorScheme   ColorScheme        `json:"colorScheme"`
	HabitCriteria map[string]string  `json:"habitCriteria"`
	Notifications []UserNotification `json:"notifications"`
	QuietHours    QuietHours         `json:"quietHours"`
	Timezone      string             `json:"timezone,omitempty"` // IANA name, or "Local" for the system timezone
}
