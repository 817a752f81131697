package settings

import (
	"fmt"

	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/i18n"
	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/notify"
	"github.com/jordanwest/daykeep/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Language        *string `help:"Display language (en, es, de) or 'auto'."`
	ColorScheme     *string `help:"Color scheme: light, dark, or auto."`
	Timezone        *string `help:"IANA timezone name, or 'Local'."`
	QuietHours      *bool   `help:"Enable or disable quiet hours."`
	QuietHoursStart *string `help:"Quiet hours start (HH:MM)."`
	QuietHoursEnd   *string `help:"Quiet hours end (HH:MM)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Store.State().Settings

	if c.List {
		lang := "auto (" + ctx.Translator().Lang() + ")"
		if settings.Language != nil {
			lang = *settings.Language
		}
		fmt.Println("Current Settings:")
		fmt.Printf("  Language:          %s\n", lang)
		fmt.Printf("  Color Scheme:      %s\n", settings.ColorScheme)
		fmt.Printf("  Timezone:          %s\n", settings.Timezone)
		fmt.Println("\nQuiet Hours:")
		fmt.Printf("  Enabled:           %v\n", settings.QuietHours.Enabled)
		fmt.Printf("  Window:            %s - %s\n", settings.QuietHours.Start, settings.QuietHours.End)
		fmt.Printf("\nHidden habits: %d, custom habits: %d, reminders: %d\n",
			len(settings.HiddenHabits), len(settings.CustomHabits), len(settings.Notifications))
		return nil
	}

	updated := false
	if c.Language != nil {
		if err := c.applyLanguage(ctx, *c.Language); err != nil {
			return err
		}
		updated = true
	}
	if c.ColorScheme != nil {
		scheme := models.ColorScheme(*c.ColorScheme)
		if scheme != models.ColorSchemeLight && scheme != models.ColorSchemeDark && scheme != models.ColorSchemeAuto {
			return fmt.Errorf("invalid color scheme %q", *c.ColorScheme)
		}
		ctx.Store.SetColorScheme(scheme)
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		ctx.Store.SetTimezone(*c.Timezone)
		updated = true
	}
	if c.QuietHours != nil || c.QuietHoursStart != nil || c.QuietHoursEnd != nil {
		if err := c.applyQuietHours(ctx); err != nil {
			return err
		}
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}

// applyLanguage switches the language and refreshes the text of any unedited
// default reminders to match.
func (c *SettingsCmd) applyLanguage(ctx *cli.Context, lang string) error {
	if lang == "auto" {
		ctx.Store.SetLanguage(nil)
	} else {
		if !i18n.IsSupported(lang) {
			return fmt.Errorf("unsupported language %q (supported: %v)", lang, i18n.Supported())
		}
		ctx.Store.SetLanguage(&lang)
	}

	current := ctx.Store.State().Settings.Notifications
	ctx.Store.SetNotifications(notify.RetranslateDefaults(current, ctx.Translator()))
	return nil
}

func (c *SettingsCmd) applyQuietHours(ctx *cli.Context) error {
	quiet := ctx.Store.State().Settings.QuietHours
	if c.QuietHours != nil {
		quiet.Enabled = *c.QuietHours
	}
	if c.QuietHoursStart != nil {
		if !utils.ValidateTimeFormat(*c.QuietHoursStart) {
			return fmt.Errorf("invalid time %q", *c.QuietHoursStart)
		}
		quiet.Start = *c.QuietHoursStart
	}
	if c.QuietHoursEnd != nil {
		if !utils.ValidateTimeFormat(*c.QuietHoursEnd) {
			return fmt.Errorf("invalid time %q", *c.QuietHoursEnd)
		}
		quiet.End = *c.QuietHoursEnd
	}
	ctx.Store.SetQuietHours(quiet)
	return nil
}
