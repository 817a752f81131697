package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jordanwest/daykeep/internal/i18n"
	"github.com/jordanwest/daykeep/internal/metrics"
	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/store"
	"github.com/jordanwest/daykeep/internal/utils"
)

type HabitFormModel struct {
	Text string
}

// row is one line of the habit checklist.
type row struct {
	id     string
	name   string
	icon   string
	custom bool
}

type Model struct {
	store     *store.Store
	tr        *i18n.Translator
	keys      KeyMap
	help      help.Model
	rows      []row
	cursor    int
	form      *huh.Form
	habitForm *HabitFormModel
	formError string
	quitting  bool
	width     int
	height    int
}

func NewModel(st *store.Store, tr *i18n.Translator) Model {
	m := Model{
		store: st,
		tr:    tr,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.rebuildRows()
	return m
}

// rebuildRows recomputes the checklist from the current snapshot: visible
// built-ins in their configured order, then custom habits.
func (m *Model) rebuildRows() {
	settings := m.store.State().Settings

	rows := make([]row, 0, len(settings.HabitOrder)+len(settings.CustomHabits))
	for _, id := range metrics.VisibleHabits(settings) {
		meta := models.BuiltinByID[id]
		rows = append(rows, row{
			id:   string(id),
			name: m.tr.T(meta.NameKey),
			icon: meta.Icon,
		})
	}
	for _, ch := range settings.CustomHabits {
		rows = append(rows, row{
			id:     ch.ID,
			name:   ch.Text,
			icon:   "•",
			custom: true,
		})
	}
	m.rows = rows

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// today returns the current day record from the snapshot.
func (m Model) today() (string, models.DayRecord) {
	state := m.store.State()
	key, err := utils.TodayInTimezone(state.Settings.Timezone)
	if err != nil {
		key = utils.DayKey(time.Now())
	}
	return key, state.Day(key)
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.Toggle},
		{m.keys.Add, m.keys.Delete, m.keys.Hide},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
