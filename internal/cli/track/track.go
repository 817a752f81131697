package track

import (
	"fmt"
	"strings"

	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/models"
)

type ToggleCmd struct {
	ID string `arg:"" help:"Habit id (built-in or custom) or custom habit text."`
}

func (c *ToggleCmd) Run(ctx *cli.Context) error {
	id, err := resolveHabitID(ctx, c.ID)
	if err != nil {
		return err
	}

	state := ctx.Store.ToggleHabit(id)

	entry := state.Day(ctx.TodayKey()).Habits[id]
	if entry.Completed {
		fmt.Printf("Done: %s\n", ctx.HabitName(id))
	} else {
		fmt.Printf("Unmarked: %s\n", ctx.HabitName(id))
	}
	return nil
}

type LogCmd struct {
	ID   string   `arg:"" help:"Habit id (built-in or custom)."`
	Data []string `arg:"" help:"Data payload as key=value pairs."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	id, err := resolveHabitID(ctx, c.ID)
	if err != nil {
		return err
	}

	data := make(map[string]any, len(c.Data))
	for _, pair := range c.Data {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid data pair %q, want key=value", pair)
		}
		data[key] = value
	}
	if len(data) == 0 {
		return fmt.Errorf("no data given")
	}

	ctx.Store.UpdateHabitData(id, data)
	fmt.Printf("Logged %s with %d value(s).\n", ctx.HabitName(id), len(data))
	return nil
}

// resolveHabitID accepts a built-in id, a custom habit id, or a custom
// habit's text.
func resolveHabitID(ctx *cli.Context, raw string) (string, error) {
	if models.IsBuiltin(models.HabitID(raw)) {
		return raw, nil
	}
	for _, ch := range ctx.Store.State().Settings.CustomHabits {
		if ch.ID == raw || ch.Text == raw {
			return ch.ID, nil
		}
	}
	return "", fmt.Errorf("unknown habit %q", raw)
}
