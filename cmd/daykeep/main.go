package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/cli/backups"
	"github.com/jordanwest/daykeep/internal/cli/habits"
	"github.com/jordanwest/daykeep/internal/cli/reminders"
	"github.com/jordanwest/daykeep/internal/cli/settings"
	"github.com/jordanwest/daykeep/internal/cli/stats"
	"github.com/jordanwest/daykeep/internal/cli/system"
	"github.com/jordanwest/daykeep/internal/cli/track"
	"github.com/jordanwest/daykeep/internal/constants"
	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/notify"
	"github.com/jordanwest/daykeep/internal/storage"
	"github.com/jordanwest/daykeep/internal/store"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Storage file path (.db for SQLite, .json for plain JSON)." default:"~/.config/daykeep/daykeep.db"`
	Debug    bool   `help:"Enable debug logging."`
	NoNotify bool   `help:"Disable OS notification scheduling entirely."`

	Init     system.InitCmd        `cmd:"" help:"Initialize daykeep storage."`
	Doctor   system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Reset    system.ResetCmd       `cmd:"" help:"Delete all data and restore defaults."`
	Toggle   track.ToggleCmd       `cmd:"" help:"Toggle a habit for today."`
	Log      track.LogCmd          `cmd:"" help:"Record a habit with a data payload."`
	Habit    habits.HabitCmd       `cmd:"" help:"Manage habits."`
	Stats    stats.StatsCmd        `cmd:"" help:"Show scores, streaks, and heatmaps."`
	Reminder reminders.ReminderCmd `cmd:"" help:"Manage reminders and notification triggers."`
	Settings settings.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily habit tracker with reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	provider := storage.NewProvider(configPath)
	state, err := provider.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st := store.New(state)

	gateway := storage.NewGateway(provider)
	gateway.Attach(st)

	var svc notify.Service = notify.NewTrayService()
	if CLI.NoNotify {
		svc = notify.NoopService{}
	}
	syncer := notify.NewSyncer(svc)
	notify.NewWatcher(syncer).Attach(st)

	appCtx := &cli.Context{
		Provider: provider,
		Store:    st,
		Gateway:  gateway,
		Syncer:   syncer,
	}

	runErr := ctx.Run(appCtx)

	// Flush any pending debounced write before exit so the last mutations
	// are durable.
	if err := gateway.Flush(); err != nil {
		logger.Error("Failed to flush state at exit", "error", err)
	}
	if err := provider.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
