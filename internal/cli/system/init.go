package system

import (
	"fmt"

	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/notify"
)

type InitCmd struct {
	SeedReminders bool `help:"Also seed the default reminders." default:"true" negatable:""`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Provider.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized storage at %s\n", ctx.Provider.GetConfigPath())

	if c.SeedReminders {
		seeded, added := notify.EnsureDefaults(ctx.Store.State().Settings.Notifications, ctx.Translator())
		if added {
			ctx.Store.SetNotifications(seeded)
			fmt.Println("Seeded default reminders (disabled).")
		}
	}
	return nil
}
