// Package metrics derives read-only aggregates from a state snapshot: day
// completion scores, the consecutive-day streak, and heatmap intensity
// buckets. Everything here is pure and recomputed on demand; nothing is
// cached in the store.
package metrics

import (
	"time"

	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/utils"
)

// Score is a day's completion tally out of the habits counted that day.
type Score struct {
	Completed int
	Total     int
}

// Ratio returns the completion ratio in [0,1]; zero when nothing is counted.
func (s Score) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// VisibleHabits returns the ordered built-in habits minus the hidden set.
func VisibleHabits(settings models.UserSettings) []models.HabitID {
	hidden := make(map[models.HabitID]bool, len(settings.HiddenHabits))
	for _, id := range settings.HiddenHabits {
		hidden[id] = true
	}
	visible := make([]models.HabitID, 0, len(settings.HabitOrder))
	for _, id := range settings.HabitOrder {
		if !hidden[id] {
			visible = append(visible, id)
		}
	}
	return visible
}

// DayScore counts a day's completions across the visible built-ins and all
// custom habits. A missing day scores 0 out of the same total.
func DayScore(day models.DayRecord, visible []models.HabitID, custom []models.CustomHabit) Score {
	score := Score{Total: len(visible) + len(custom)}
	score.Completed = completedCount(day, visible, custom)
	return score
}

func completedCount(day models.DayRecord, visible []models.HabitID, custom []models.CustomHabit) int {
	completed := 0
	for _, id := range visible {
		if entry, ok := day.Habits[string(id)]; ok && entry.Completed {
			completed++
		}
	}
	for _, ch := range custom {
		if entry, ok := day.Habits[ch.ID]; ok && entry.Completed {
			completed++
		}
	}
	return completed
}

// Streak counts consecutive days with at least one completion, walking
// backward from yesterday until the first gap, then adding one bonus day if
// today already has progress. Today never breaks the chain by being
// incomplete; only a zero past day does.
func Streak(days map[string]models.DayRecord, visible []models.HabitID, custom []models.CustomHabit, now time.Time) int {
	streak := 0
	for i := 1; ; i++ {
		key := utils.DayKey(now.AddDate(0, 0, -i))
		day, ok := days[key]
		if !ok || completedCount(day, visible, custom) == 0 {
			break
		}
		streak++
	}

	if today, ok := days[utils.DayKey(now)]; ok && completedCount(today, visible, custom) > 0 {
		streak++
	}
	return streak
}

// HeatLevel maps a score onto the 5 heatmap intensity buckets: 0 for no data
// or no completions, then ascending bands split at 25/50/75 percent.
func HeatLevel(score Score) int {
	if score.Total == 0 || score.Completed == 0 {
		return 0
	}
	pct := score.Ratio() * 100
	switch {
	case pct <= 25:
		return 1
	case pct <= 50:
		return 2
	case pct <= 75:
		return 3
	default:
		return 4
	}
}
