package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/jordanwest/daykeep/internal/constants"
)

// ScheduleType discriminates the two reminder schedule shapes.
type ScheduleType string

const (
	ScheduleDaily    ScheduleType = "daily"
	ScheduleInterval ScheduleType = "interval"
)

// NotificationSchedule is a tagged union: a fixed daily time (Hour/Minute) or
// a repeating interval (Hours/Minutes). An interval totaling zero is invalid.
type NotificationSchedule struct {
	Type    ScheduleType `json:"type"`
	Hour    int          `json:"hour,omitempty"`
	Minute  int          `json:"minute,omitempty"`
	Hours   int          `json:"hours,omitempty"`
	Minutes int          `json:"minutes,omitempty"`
}

// IntervalMinutes returns the total interval duration in minutes. Only
// meaningful for interval schedules.
func (s NotificationSchedule) IntervalMinutes() int {
	return s.Hours*60 + s.Minutes
}

func (s NotificationSchedule) Validate() error {
	switch s.Type {
	case ScheduleDaily:
		if s.Hour < 0 || s.Hour > 23 {
			return fmt.Errorf("hour must be between 0 and 23, got %d", s.Hour)
		}
		if s.Minute < 0 || s.Minute > 59 {
			return fmt.Errorf("minute must be between 0 and 59, got %d", s.Minute)
		}
	case ScheduleInterval:
		if s.Hours < 0 || s.Minutes < 0 {
			return fmt.Errorf("interval components cannot be negative")
		}
		if s.IntervalMinutes() == 0 {
			return fmt.Errorf("interval must be greater than zero")
		}
	default:
		return fmt.Errorf("invalid schedule type: %q", s.Type)
	}
	return nil
}

// String renders the schedule for listings, e.g. "daily at 08:00" or "every 2h30m".
func (s NotificationSchedule) String() string {
	if s.Type == ScheduleDaily {
		return fmt.Sprintf("daily at %02d:%02d", s.Hour, s.Minute)
	}
	if s.Minutes == 0 {
		return fmt.Sprintf("every %dh", s.Hours)
	}
	if s.Hours == 0 {
		return fmt.Sprintf("every %dm", s.Minutes)
	}
	return fmt.Sprintf("every %dh%dm", s.Hours, s.Minutes)
}

// UserNotification is one declared reminder. Default reminders are seeded by
// the system and keep their text in sync with the active language until the
// user edits them, at which point IsDefault is cleared.
type UserNotification struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Body       string               `json:"body"`
	Schedule   NotificationSchedule `json:"schedule"`
	Enabled    bool                 `json:"enabled"`
	IsDefault  bool                 `json:"isDefault"`
	DefaultKey string               `json:"defaultKey,omitempty"`
}

func (n UserNotification) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("notification id cannot be empty")
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("notification title cannot be empty")
	}
	return n.Schedule.Validate()
}

// NewNotificationID mints an id for a user-created reminder.
func NewNotificationID(now time.Time) string {
	return fmt.Sprintf("notif_%d", now.UnixMilli())
}

// QuietHours is a user-configured time-of-day window during which
// interval-based reminders must not fire. The window may wrap past midnight
// (e.g. 22:00 → 08:00). Start == End means the window is empty.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM
}

// Window resolves the quiet window into minutes from midnight.
func (q QuietHours) Window() (start, end int, err error) {
	start, err = parseMinutes(q.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quiet hours start: %w", err)
	}
	end, err = parseMinutes(q.End)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quiet hours end: %w", err)
	}
	return start, end, nil
}

func parseMinutes(s string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
