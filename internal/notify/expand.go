package notify

import (
	"github.com/jordanwest/daykeep/internal/constants"
	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/models"
)

// InQuietWindow reports whether minute-of-day t falls inside the quiet window
// [start, end), both in minutes from midnight. A window with start > end
// wraps past midnight; start == end is an empty window.
func InQuietWindow(t, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return t >= start && t < end
	}
	return t >= start || t < end
}

// ExpandInterval converts a repeating interval into the set of fixed daily
// trigger times that approximate "fire every intervalMinutes, except during
// quiet hours". The cursor starts at the end of the quiet window (the first
// active minute of the day) and walks one full 24-hour span; slots landing
// inside the window are dropped, so the cadence re-anchors at the window's
// end each day.
func ExpandInterval(intervalMinutes, start, end int) []Trigger {
	var triggers []Trigger
	for m := end; m < end+constants.MinutesPerDay; m += intervalMinutes {
		slot := m % constants.MinutesPerDay
		if InQuietWindow(slot, start, end) {
			continue
		}
		triggers = append(triggers, DailyAt(slot/60, slot%60))
	}
	return triggers
}

// BuildTriggers resolves one declared reminder into its concrete trigger set
// under the given quiet hours. Disabled reminders produce nothing. A daily
// reminder whose time falls inside an active quiet window is suppressed
// entirely rather than rescheduled.
func BuildTriggers(n models.UserNotification, quiet models.QuietHours) []Trigger {
	if !n.Enabled {
		return nil
	}

	start, end, quietOK := quietWindow(quiet)

	switch n.Schedule.Type {
	case models.ScheduleDaily:
		if quietOK && InQuietWindow(n.Schedule.Hour*60+n.Schedule.Minute, start, end) {
			logger.Debug("Daily reminder suppressed by quiet hours", "id", n.ID)
			return nil
		}
		return []Trigger{DailyAt(n.Schedule.Hour, n.Schedule.Minute)}

	case models.ScheduleInterval:
		interval := n.Schedule.IntervalMinutes()
		if interval <= 0 {
			// The editor rejects zero intervals before they get here; if one
			// slips through, fall back to the minimum repeating trigger.
			logger.Warn("Interval reminder with zero duration reached the scheduler", "id", n.ID)
			return []Trigger{Every(constants.MinIntervalSeconds)}
		}
		if !quietOK {
			return []Trigger{Every(interval * 60)}
		}
		return ExpandInterval(interval, start, end)
	}

	logger.Warn("Reminder with unknown schedule type skipped", "id", n.ID, "type", n.Schedule.Type)
	return nil
}

// quietWindow resolves quiet hours to a usable window. It reports false when
// quiet hours are disabled, malformed, or empty (start == end), in which case
// no exclusion applies.
func quietWindow(quiet models.QuietHours) (start, end int, ok bool) {
	if !quiet.Enabled {
		return 0, 0, false
	}
	start, end, err := quiet.Window()
	if err != nil {
		logger.Warn("Ignoring malformed quiet hours window", "start", quiet.Start, "end", quiet.End, "error", err)
		return 0, 0, false
	}
	if start == end {
		return 0, 0, false
	}
	return start, end, true
}
