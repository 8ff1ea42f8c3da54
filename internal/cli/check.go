package cli

import (
	"fmt"
	"strings"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

type CheckCmd struct {
	Ref  string `arg:"" help:"Routine title or id."`
	Date string `arg:"" optional:"" help:"Day to check (YYYY-MM-DD, default today)." default:"today"`
	Off  bool   `help:"Uncheck instead of check."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	title := c.Ref
	tpl, err := ctx.FindTemplate(user.ID, c.Ref)
	switch {
	case err == nil:
		title = tpl.Title
		if _, err := ctx.Tracker.CheckTemplate(user.ID, tpl.ID, day, !c.Off); err != nil {
			return err
		}
	default:
		// Not a routine, maybe a one-off row on that day.
		task, ferr := findTask(ctx, user.ID, day, c.Ref)
		if ferr != nil {
			return ferr
		}
		title = task.Title
		checked := !c.Off
		if _, err := ctx.Tracker.UpdateTask(user.ID, task.ID, models.TaskPatch{Checked: &checked}); err != nil {
			return err
		}
	}

	summary, err := ctx.Tracker.DaySummaryFor(user.ID, day)
	if err != nil {
		return err
	}

	verb := "Checked"
	if c.Off {
		verb = "Unchecked"
	}
	fmt.Printf("%s %q for %s (%.1f/%.1f done)\n", verb, title, day, summary.DoneWeight, summary.TotalWeight)
	return nil
}

// findTask matches a task row on one day by id or title.
func findTask(ctx *Context, userID, day, ref string) (models.DailyTask, error) {
	tasks, err := ctx.Tracker.TasksForDay(userID, day)
	if err != nil {
		return models.DailyTask{}, err
	}
	for _, task := range tasks {
		if task.ID == ref || strings.EqualFold(task.Title, ref) {
			return task, nil
		}
	}
	return models.DailyTask{}, fmt.Errorf("no task %q on %s", ref, day)
}

type NoteCmd struct {
	Ref   string   `arg:"" help:"Routine title or id."`
	Text  string   `arg:"" help:"Note text."`
	Date  string   `help:"Day to annotate (YYYY-MM-DD, default today)." default:"today"`
	Value *float64 `short:"v" help:"Numeric value to record alongside the note."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	tpl, err := ctx.FindTemplate(user.ID, c.Ref)
	if err != nil {
		return err
	}

	if _, err := ctx.Tracker.UpsertTaskNote(user.ID, tpl.ID, day, &c.Text, c.Value); err != nil {
		return err
	}

	fmt.Printf("Noted %q for %s\n", tpl.Title, day)
	return nil
}

type OneoffAddCmd struct {
	Title string `arg:"" help:"One-off task title."`
	Date  string `arg:"" optional:"" help:"Day it belongs to (YYYY-MM-DD, default today)." default:"today"`
}

func (c *OneoffAddCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	task, err := ctx.Tracker.AddOneOff(user.ID, c.Title, day)
	if err != nil {
		return err
	}

	fmt.Printf("Added one-off: %s for %s (ID: %s)\n", task.Title, day, task.ID)
	return nil
}

type OneoffDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *OneoffDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteTask(user.ID, c.ID); err != nil {
		return err
	}

	fmt.Println("Deleted task.")
	return nil
}
