package cli

import (
	"fmt"

	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/engine"
)

type StatsCmd struct {
	Sort     string `short:"s" help:"Sort order (rate_desc|rate_asc|date_desc|date_asc)." default:"rate_desc"`
	Archived bool   `help:"Include archived routines."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	order := engine.StatSort(c.Sort)
	if !engine.ValidStatSort(order) {
		return fmt.Errorf("invalid sort order %q", c.Sort)
	}

	stats, err := ctx.Tracker.RoutineStats(user.ID, order, c.Archived)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No routines found.")
		return nil
	}

	fmt.Printf("%-30s  %8s  %11s  %10s\n", "Routine", "Rate", "Done", "Since")
	for _, stat := range stats {
		line := fmt.Sprintf("%-30s  %7.1f%%  %5d/%-5d  %10s",
			truncate(stat.Title, 30), stat.SuccessRate, stat.DoneCount, stat.TotalDays,
			dates.DayKey(stat.CreatedAt, ctx.Loc))
		if stat.IsArchived {
			fmt.Println(archivedStyle.Render(line + "  [archived]"))
		} else {
			fmt.Println(line)
		}
	}
	return nil
}

type OverviewCmd struct {
	Month string `arg:"" optional:"" help:"Month to summarize (YYYY-MM, default current)."`
}

func (c *OverviewCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	ym := c.Month
	if ym == "" {
		ym = ctx.Clock.Today()[:len(dates.MonthFormat)]
	}

	overview, err := ctx.Tracker.MonthlyStats(user.ID, ym)
	if err != nil {
		return err
	}

	fmt.Printf("Overview for %s:\n\n", ym)
	fmt.Printf("  Tasks completed: %d/%d (%.1f%%)\n",
		overview.CompletedTasks, overview.TotalTasks, overview.CompletionRate)

	if len(overview.Categories) > 0 {
		fmt.Println("\n  By routine:")
		for _, cat := range overview.Categories {
			fmt.Printf("    %-30s  %d\n", truncate(cat.Name, 30), cat.Count)
		}
	}

	if overview.FixedCostCount > 0 {
		fmt.Printf("\n  Fixed costs: %d payments, %.2f total\n",
			overview.FixedCostCount, overview.FixedCostTotal)
	}
	return nil
}
