package constants

const (
	// DateFormat is the canonical day-key layout (YYYY-MM-DD, local to the
	// configured timezone).
	DateFormat = "2006-01-02"

	// TimeFormat is the HH:MM layout used for quiet hours and daily reminders.
	TimeFormat = "15:04"
)
