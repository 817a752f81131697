package reminders

import (
	"fmt"
	"time"

	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/notify"
	"github.com/jordanwest/daykeep/internal/utils"
)

type ReminderCmd struct {
	Add      ReminderAddCmd      `cmd:"" help:"Add a reminder."`
	List     ReminderListCmd     `cmd:"" help:"List reminders."`
	Toggle   ReminderToggleCmd   `cmd:"" help:"Enable or disable a reminder."`
	Delete   ReminderDeleteCmd   `cmd:"" help:"Delete a reminder."`
	Defaults ReminderDefaultsCmd `cmd:"" help:"Seed the default reminders."`
	Sync     ReminderSyncCmd     `cmd:"" help:"Rebuild the armed notification triggers."`
}

type ReminderAddCmd struct {
	Title string `arg:"" help:"Reminder title."`
	Body  string `help:"Reminder body text." default:""`
	Daily string `help:"Fire daily at a fixed time (HH:MM)." xor:"schedule"`
	Every string `help:"Fire on an interval, e.g. 2h or 90m." xor:"schedule"`
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	schedule, err := c.parseSchedule()
	if err != nil {
		return err
	}

	n := models.UserNotification{
		ID:       models.NewNotificationID(time.Now()),
		Title:    c.Title,
		Body:     c.Body,
		Schedule: schedule,
		Enabled:  true,
	}
	if err := n.Validate(); err != nil {
		return err
	}

	ctx.Store.AddNotification(n)
	fmt.Printf("Added reminder %q (%s).\n", n.Title, n.Schedule)
	return nil
}

func (c *ReminderAddCmd) parseSchedule() (models.NotificationSchedule, error) {
	switch {
	case c.Daily != "":
		minutes, err := utils.ParseTimeToMinutes(c.Daily)
		if err != nil {
			return models.NotificationSchedule{}, fmt.Errorf("invalid time %q: %w", c.Daily, err)
		}
		return models.NotificationSchedule{
			Type:   models.ScheduleDaily,
			Hour:   minutes / 60,
			Minute: minutes % 60,
		}, nil

	case c.Every != "":
		d, err := time.ParseDuration(c.Every)
		if err != nil {
			return models.NotificationSchedule{}, fmt.Errorf("invalid interval %q: %w", c.Every, err)
		}
		total := int(d.Minutes())
		if total <= 0 {
			return models.NotificationSchedule{}, fmt.Errorf("interval must be greater than zero")
		}
		return models.NotificationSchedule{
			Type:    models.ScheduleInterval,
			Hours:   total / 60,
			Minutes: total % 60,
		}, nil
	}

	return models.NotificationSchedule{}, fmt.Errorf("one of --daily or --every is required")
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	settings := ctx.Store.State().Settings
	if len(settings.Notifications) == 0 {
		fmt.Println("No reminders. Add one with 'daykeep reminder add' or seed the defaults with 'daykeep reminder defaults'.")
		return nil
	}

	quiet := settings.QuietHours
	for _, n := range settings.Notifications {
		status := "off"
		if n.Enabled {
			status = fmt.Sprintf("%d trigger(s)", len(notify.BuildTriggers(n, quiet)))
		}
		marker := ""
		if n.IsDefault {
			marker = " [default]"
		}
		fmt.Printf("%-20s %-18s %s%s\n", n.ID, n.Schedule, status, marker)
	}

	if quiet.Enabled {
		fmt.Printf("\nQuiet hours: %s - %s\n", quiet.Start, quiet.End)
	}
	return nil
}

type ReminderToggleCmd struct {
	ID string `arg:"" help:"Reminder id."`
}

func (c *ReminderToggleCmd) Run(ctx *cli.Context) error {
	before, found := findReminder(ctx, c.ID)
	if !found {
		return fmt.Errorf("no reminder with id %q", c.ID)
	}
	ctx.Store.ToggleNotification(c.ID)

	if before.Enabled {
		fmt.Printf("Disabled %s.\n", c.ID)
	} else {
		fmt.Printf("Enabled %s.\n", c.ID)
	}
	return nil
}

type ReminderDeleteCmd struct {
	ID string `arg:"" help:"Reminder id."`
}

func (c *ReminderDeleteCmd) Run(ctx *cli.Context) error {
	if _, found := findReminder(ctx, c.ID); !found {
		return fmt.Errorf("no reminder with id %q", c.ID)
	}
	ctx.Store.DeleteNotification(c.ID)
	fmt.Printf("Deleted %s.\n", c.ID)
	return nil
}

type ReminderDefaultsCmd struct{}

func (c *ReminderDefaultsCmd) Run(ctx *cli.Context) error {
	current := ctx.Store.State().Settings.Notifications
	seeded, added := notify.EnsureDefaults(current, ctx.Translator())
	if !added {
		fmt.Println("Default reminders already present.")
		return nil
	}
	ctx.Store.SetNotifications(seeded)
	fmt.Println("Seeded default reminders (disabled; enable with 'daykeep reminder toggle').")
	return nil
}

type ReminderSyncCmd struct{}

func (c *ReminderSyncCmd) Run(ctx *cli.Context) error {
	return ctx.Resync()
}

func findReminder(ctx *cli.Context, id string) (models.UserNotification, bool) {
	for _, n := range ctx.Store.State().Settings.Notifications {
		if n.ID == id {
			return n, true
		}
	}
	return models.UserNotification{}, false
}
