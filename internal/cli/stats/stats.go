package stats

import (
	"fmt"
	"time"

	"github.com/jordanwest/daykeep/internal/cli"
	"github.com/jordanwest/daykeep/internal/metrics"
	"github.com/jordanwest/daykeep/internal/utils"
)

type StatsCmd struct {
	Score   ScoreCmd   `cmd:"" help:"Show a day's completion score."`
	Streak  StreakCmd  `cmd:"" help:"Show the current streak."`
	Heatmap HeatmapCmd `cmd:"" help:"Show a completion heatmap."`
}

type ScoreCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ScoreCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.TodayKey()
	} else if _, err := utils.ParseDate(date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	state := ctx.Store.State()
	visible := metrics.VisibleHabits(state.Settings)
	score := metrics.DayScore(state.Day(date), visible, state.Settings.CustomHabits)

	fmt.Printf("%s: %d/%d completed\n", date, score.Completed, score.Total)
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	state := ctx.Store.State()
	visible := metrics.VisibleHabits(state.Settings)

	loc, err := utils.LoadLocation(state.Settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	streak := metrics.Streak(state.Days, visible, state.Settings.CustomHabits, time.Now().In(loc))

	switch streak {
	case 0:
		fmt.Println("No streak yet. Complete a habit to start one.")
	case 1:
		fmt.Println("Streak: 1 day")
	default:
		fmt.Printf("Streak: %d days\n", streak)
	}
	return nil
}

type HeatmapCmd struct {
	Days int `help:"Number of trailing days to show." default:"30"`
}

// heatGlyphs maps heat levels 0-4 to ascending block characters.
var heatGlyphs = []string{"·", "░", "▒", "▓", "█"}

func (c *HeatmapCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	state := ctx.Store.State()
	visible := metrics.VisibleHabits(state.Settings)

	loc, err := utils.LoadLocation(state.Settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	now := time.Now().In(loc)

	row := ""
	for i := c.Days - 1; i >= 0; i-- {
		date := utils.DayKey(now.AddDate(0, 0, -i))
		score := metrics.DayScore(state.Day(date), visible, state.Settings.CustomHabits)
		row += heatGlyphs[metrics.HeatLevel(score)]
	}

	start := utils.DayKey(now.AddDate(0, 0, -(c.Days - 1)))
	fmt.Printf("%s .. %s\n%s\n", start, utils.DayKey(now), row)
	return nil
}
