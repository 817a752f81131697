package constants

import "time"

const (
	AppName           = "daykeep"
	DefaultConfigPath = "~/.config/daykeep/daykeep.db"
	Version           = "v0.3.0"

	// StorageKey is the fixed key the persisted {days, settings} blob lives
	// under in key-value capable backends.
	StorageKey = "daykeep-store"

	// DebounceInterval is the quiet period the persistence gateway waits for
	// before flushing a coalesced write.
	DebounceInterval = 300 * time.Millisecond

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daykeep-"
	BackupFileSuffix = ".db"

	// Tray notifier constants
	NotifierLockfileName = "daykeep-notifier.lock"
	TrayAppIdentifier    = "com.jordanwest.daykeep"

	// MinIntervalSeconds is the platform safety floor for repeating interval
	// triggers. It is a clamp, not a validation error.
	MinIntervalSeconds = 60

	// MinutesPerDay is the span of one calendar day in minutes.
	MinutesPerDay = 24 * 60
)

const (
	// CustomHabitPrefix namespaces user-defined habits apart from the
	// built-in catalogue.
	CustomHabitPrefix = "custom_"

	// DefaultNotificationPrefix namespaces the seeded default reminders.
	DefaultNotificationPrefix = "default_"
)
