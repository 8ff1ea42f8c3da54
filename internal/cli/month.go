package cli

import (
	"fmt"
	"strings"

	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/engine"
)

type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM, default current)."`
	Wide  bool   `help:"Show one column per routine instead of the heat map."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	ym := c.Month
	if ym == "" {
		ym = ctx.Clock.Today()[:len(dates.MonthFormat)]
	}

	matrix, err := ctx.Tracker.MonthMatrix(user.ID, ym)
	if err != nil {
		return err
	}

	fmt.Printf("Completion for %s:\n\n", ym)
	if c.Wide {
		renderMatrix(matrix)
		return nil
	}
	renderHeatMap(matrix)
	return nil
}

// renderHeatMap prints one line per day with a percentage color band.
func renderHeatMap(matrix engine.MonthMatrix) {
	for _, row := range matrix.Rows {
		if row.TotalCount == 0 {
			fmt.Printf("  %s  %s\n", row.DateYMD, heatNoneStyle.Render("   -"))
			continue
		}
		percent := row.DoneCount * 100 / row.TotalCount
		style := heatStyle(percent, true)
		bar := strings.Repeat("█", percent/10)
		fmt.Printf("  %s  %s %s\n", row.DateYMD,
			style.Render(fmt.Sprintf("%3d%%", percent)),
			style.Render(bar))
	}
}

// renderMatrix prints the day-by-routine grid, one column per template that
// appeared in the month.
func renderMatrix(matrix engine.MonthMatrix) {
	if len(matrix.Columns) == 0 {
		fmt.Println("  No routines recorded this month.")
		return
	}

	const colWidth = 12
	fmt.Printf("  %-10s", "day")
	for _, col := range matrix.Columns {
		fmt.Printf("  %-*s", colWidth, truncate(col.Title, colWidth))
	}
	fmt.Println()

	for _, row := range matrix.Rows {
		fmt.Printf("  %-10s", row.DateYMD)
		for _, col := range matrix.Columns {
			cell, ok := row.Cells[col.ID]
			mark := "·"
			switch {
			case ok && cell.Done:
				mark = doneStyle.Render("x")
			case ok:
				mark = "o"
			}
			fmt.Printf("  %-*s", colWidth, mark)
		}
		fmt.Println()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
