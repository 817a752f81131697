package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jordanwest/daykeep/internal/metrics"
	"github.com/jordanwest/daykeep/internal/utils"
)

const heatmapDays = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	state := m.store.State()
	visible := metrics.VisibleHabits(state.Settings)
	date, today := m.today()

	var b strings.Builder

	b.WriteString(titleStyle.Render("daykeep — " + date))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("All habits hidden. Press a to add one."))
		b.WriteString("\n")
	}
	for i, r := range m.rows {
		mark := "[ ]"
		line := fmt.Sprintf("%s %s %s", mark, r.icon, r.name)
		if entry, ok := today.Habits[r.id]; ok && entry.Completed {
			line = fmt.Sprintf("[x] %s %s", r.icon, r.name)
		}
		if criterion, ok := state.Settings.HabitCriteria[r.id]; ok {
			line += mutedStyle.Render("  " + criterion)
		}

		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render(line))
		case strings.HasPrefix(line, "[x]"):
			b.WriteString(doneStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	score := metrics.DayScore(today, visible, state.Settings.CustomHabits)
	loc, err := utils.LoadLocation(state.Settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	streak := metrics.Streak(state.Days, visible, state.Settings.CustomHabits, now)

	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("Today %d/%d", score.Completed, score.Total)))
	b.WriteString(mutedStyle.Render("  ·  "))
	b.WriteString(statStyle.Render(fmt.Sprintf("Streak %d", streak)))
	b.WriteString("\n\n")
	b.WriteString(m.heatStrip(now))
	b.WriteString("\n")

	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.formError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

// heatStrip renders the trailing month as one row of colored blocks.
func (m Model) heatStrip(now time.Time) string {
	state := m.store.State()
	visible := metrics.VisibleHabits(state.Settings)

	var b strings.Builder
	for i := heatmapDays - 1; i >= 0; i-- {
		date := utils.DayKey(now.AddDate(0, 0, -i))
		score := metrics.DayScore(state.Day(date), visible, state.Settings.CustomHabits)
		level := metrics.HeatLevel(score)
		b.WriteString(heatStyles[level].Render("■"))
	}
	return mutedStyle.Render("last 30d ") + b.String()
}
