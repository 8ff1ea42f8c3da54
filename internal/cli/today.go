package cli

import (
	"fmt"

	"github.com/been-going/PleaseCheckYourDays/internal/engine"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

type TodayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD, default today)." default:"today"`
}

func (c *TodayCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	templates, err := ctx.Tracker.ListTemplates(user.ID, true)
	if err != nil {
		return err
	}
	tasks, err := ctx.Tracker.TasksForDay(user.ID, day)
	if err != nil {
		return err
	}

	taskByTemplate := make(map[string]models.DailyTask)
	var oneOffs []models.DailyTask
	for _, task := range tasks {
		if task.TemplateID != nil {
			taskByTemplate[*task.TemplateID] = task
		} else {
			oneOffs = append(oneOffs, task)
		}
	}

	fmt.Printf("Routines for %s:\n\n", day)

	eng := engine.New(ctx.Loc, ctx.Clock)
	shown := 0
	for _, group := range models.Groups {
		var lines []string
		for _, tpl := range templates {
			if tpl.Group != group {
				continue
			}
			task, has := taskByTemplate[tpl.ID]
			// Mirror the aggregation rule: show a template when it was active
			// on the day or when a row was recorded for it anyway.
			if !has && !eng.ActiveOn(tpl, day) {
				continue
			}
			lines = append(lines, renderTaskLine(tpl.Title, tpl.Weight, task, has))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Println(groupHeaderStyle.Render(string(group)))
		for _, line := range lines {
			fmt.Println(line)
			shown++
		}
		fmt.Println()
	}

	if len(oneOffs) > 0 {
		fmt.Println(groupHeaderStyle.Render("ONE-OFF"))
		for _, task := range oneOffs {
			fmt.Println(renderTaskLine(task.Title, task.Weight, task, true))
		}
		fmt.Println()
	}

	if shown == 0 && len(oneOffs) == 0 {
		fmt.Println("Nothing scheduled. Add a routine with 'checkdays template add'.")
		return nil
	}

	summary, err := ctx.Tracker.DaySummaryFor(user.ID, day)
	if err != nil {
		return err
	}
	percent := engine.Percent(summary)
	fmt.Printf("Done: %.1f/%.1f (%s)\n",
		summary.DoneWeight, summary.TotalWeight,
		heatStyle(percent, summary.TotalWeight > 0).Render(fmt.Sprintf("%d%%", percent)))
	return nil
}

func renderTaskLine(title string, weight float64, task models.DailyTask, has bool) string {
	mark := "[ ]"
	if has && task.Checked {
		mark = doneStyle.Render("[x]")
	}
	line := fmt.Sprintf("  %s %-30s (%.1f)", mark, title, weight)
	if has && task.Note != nil && *task.Note != "" {
		line += noteStyle.Render("  # " + *task.Note)
	}
	if has && task.Value != nil {
		line += noteStyle.Render(fmt.Sprintf("  = %.2f", *task.Value))
	}
	return line
}
