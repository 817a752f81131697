package habits

import (
	"fmt"

	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/models"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a custom habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a custom habit."`
	Hide      HabitHideCmd      `cmd:"" help:"Hide or unhide a built-in habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Criterion HabitCriterionCmd `cmd:"" help:"Set or clear a habit's goal text."`
}

type HabitAddCmd struct {
	Text string `arg:"" help:"Habit text."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	habit, ok := ctx.Store.AddCustomHabit(c.Text)
	if !ok {
		return fmt.Errorf("habit text cannot be empty")
	}
	fmt.Printf("Added habit: %s\n", habit.Text)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Custom habit id or text."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	id := c.resolveID(ctx)
	if id == "" {
		return fmt.Errorf("no custom habit matching %q", c.ID)
	}
	ctx.Store.DeleteCustomHabit(id)
	fmt.Println("Deleted habit.")
	return nil
}

// resolveID accepts either the full custom id or the habit's text.
func (c *HabitDeleteCmd) resolveID(ctx *cli.Context) string {
	for _, ch := range ctx.Store.State().Settings.CustomHabits {
		if ch.ID == c.ID || ch.Text == c.ID {
			return ch.ID
		}
	}
	return ""
}

type HabitHideCmd struct {
	ID string `arg:"" help:"Built-in habit id."`
}

func (c *HabitHideCmd) Run(ctx *cli.Context) error {
	id := models.HabitID(c.ID)
	if !models.IsBuiltin(id) {
		return fmt.Errorf("unknown built-in habit %q", c.ID)
	}
	state := ctx.Store.ToggleHideHabit(id)

	for _, hidden := range state.Settings.HiddenHabits {
		if hidden == id {
			fmt.Printf("Hidden: %s\n", ctx.HabitName(c.ID))
			return nil
		}
	}
	fmt.Printf("Visible again: %s\n", ctx.HabitName(c.ID))
	return nil
}

type HabitListCmd struct {
	Hidden bool `help:"Include hidden built-in habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	state := ctx.Store.State()
	settings := state.Settings
	today := state.Day(ctx.TodayKey())

	hidden := make(map[models.HabitID]bool, len(settings.HiddenHabits))
	for _, id := range settings.HiddenHabits {
		hidden[id] = true
	}

	for _, id := range settings.HabitOrder {
		if hidden[id] && !c.Hidden {
			continue
		}
		printHabit(ctx, today, string(id), settings, hidden[id])
	}
	for _, ch := range settings.CustomHabits {
		printHabit(ctx, today, ch.ID, settings, false)
	}
	return nil
}

func printHabit(ctx *cli.Context, today models.DayRecord, id string, settings models.UserSettings, isHidden bool) {
	mark := " "
	if entry, ok := today.Habits[id]; ok && entry.Completed {
		mark = "x"
	}
	status := ""
	if isHidden {
		status = " [HIDDEN]"
	}
	line := fmt.Sprintf("[%s] %s%s", mark, ctx.HabitName(id), status)
	if criterion, ok := settings.HabitCriteria[id]; ok {
		line += fmt.Sprintf(" (%s)", criterion)
	}
	fmt.Println(line)
}

type HabitCriterionCmd struct {
	ID   string `arg:"" help:"Habit id."`
	Text string `arg:"" optional:"" help:"Goal text; omit to clear."`
}

func (c *HabitCriterionCmd) Run(ctx *cli.Context) error {
	ctx.Store.SetHabitCriterion(c.ID, c.Text)
	if c.Text == "" {
		fmt.Printf("Cleared goal for %s.\n", ctx.HabitName(c.ID))
	} else {
		fmt.Printf("Goal for %s: %s\n", ctx.HabitName(c.ID), c.Text)
	}
	return nil
}
