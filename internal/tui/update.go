package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jordanwest/daykeep/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	// An open form captures all input until submitted or aborted.
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.rows) > 0 {
				m.store.ToggleHabit(m.rows[m.cursor].id)
			}

		case key.Matches(msg, m.keys.Add):
			m.openHabitForm()

		case key.Matches(msg, m.keys.Delete):
			if len(m.rows) > 0 && m.rows[m.cursor].custom {
				m.store.DeleteCustomHabit(m.rows[m.cursor].id)
				m.rebuildRows()
			}

		case key.Matches(msg, m.keys.Hide):
			if len(m.rows) > 0 && !m.rows[m.cursor].custom {
				m.store.ToggleHideHabit(models.HabitID(m.rows[m.cursor].id))
				m.rebuildRows()
			}
		}
	}

	return m, nil
}

func (m *Model) openHabitForm() {
	m.habitForm = &HabitFormModel{}
	m.formError = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New habit").
				Placeholder("e.g. Read 20 pages").
				Value(&m.habitForm.Text),
		),
	)
	m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.habitForm = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if _, ok := m.store.AddCustomHabit(m.habitForm.Text); !ok {
			m.formError = "Habit text cannot be empty."
		}
		m.form = nil
		m.habitForm = nil
		m.rebuildRows()
	}

	return m, cmd
}
