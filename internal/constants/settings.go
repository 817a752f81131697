package constants

const (
	// Defaults applied to fresh or normalized user settings.
	DefaultColorScheme     = "light"
	DefaultQuietHoursStart = "22:00"
	DefaultQuietHoursEnd   = "08:00"
	DefaultTimezone        = "Local" // system local timezone
)
