package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/service"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
)

type TemplateAddCmd struct {
	Title  string  `arg:"" help:"Routine title."`
	Group  string  `short:"g" help:"Group (morning|execute|evening)." default:"execute"`
	Weight float64 `short:"w" help:"Weight toward daily totals." default:"1"`
}

func (c *TemplateAddCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	group, err := parseGroup(c.Group)
	if err != nil {
		return err
	}

	tpl, err := ctx.Tracker.CreateTemplate(user.ID, c.Title, group, c.Weight)
	if err != nil {
		return err
	}

	fmt.Printf("Added routine: %s (ID: %s)\n", tpl.Title, tpl.ID)
	return nil
}

type TemplateListCmd struct {
	Archived bool `help:"Include archived routines."`
}

func (c *TemplateListCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	templates, err := ctx.Tracker.ListTemplates(user.ID, c.Archived)
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		fmt.Println("No routines found.")
		return nil
	}

	var group models.Group
	for _, tpl := range templates {
		if tpl.Group != group {
			group = tpl.Group
			fmt.Println(groupHeaderStyle.Render(string(group)))
		}

		line := fmt.Sprintf("  %-30s  weight %.1f  (ID: %s)", tpl.Title, tpl.Weight, tpl.ID)
		switch {
		case tpl.IsArchived():
			fmt.Println(archivedStyle.Render(line + "  [archived]"))
		case !tpl.DefaultActive:
			fmt.Printf("%s  [paused]\n", line)
		default:
			fmt.Println(line)
		}
	}
	return nil
}

type TemplateEditCmd struct {
	Ref    string   `arg:"" help:"Routine title or id."`
	Title  *string  `help:"New title."`
	Group  *string  `short:"g" help:"New group (morning|execute|evening)."`
	Weight *float64 `short:"w" help:"New weight."`
	Pause  *bool    `help:"Pause or resume daily counting."`
	Note   *bool    `help:"Enable or disable per-day notes."`
	Value  *bool    `help:"Enable or disable per-day numeric values."`
}

func (c *TemplateEditCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	tpl, err := ctx.FindTemplate(user.ID, c.Ref)
	if err != nil {
		return err
	}

	update := service.TemplateUpdate{
		Title:       c.Title,
		Weight:      c.Weight,
		EnableNote:  c.Note,
		EnableValue: c.Value,
	}
	if c.Group != nil {
		group, err := parseGroup(*c.Group)
		if err != nil {
			return err
		}
		update.Group = &group
	}
	if c.Pause != nil {
		active := !*c.Pause
		update.DefaultActive = &active
	}

	tpl, err = ctx.Tracker.UpdateTemplate(user.ID, tpl.ID, update)
	if err != nil {
		return err
	}

	fmt.Printf("Updated routine: %s\n", tpl.Title)
	return nil
}

type TemplateArchiveCmd struct {
	Ref string `arg:"" help:"Routine title or id."`
}

func (c *TemplateArchiveCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	tpl, err := ctx.FindTemplate(user.ID, c.Ref)
	if err != nil {
		return err
	}
	if tpl.IsArchived() {
		return fmt.Errorf("routine %q is already archived", tpl.Title)
	}

	if err := ctx.Tracker.ArchiveTemplate(user.ID, tpl.ID); err != nil {
		return err
	}

	fmt.Printf("Archived routine: %s (history kept, restore with 'checkdays template restore')\n", tpl.Title)
	return nil
}

type TemplateRestoreCmd struct {
	Ref string `arg:"" help:"Routine title or id."`
}

func (c *TemplateRestoreCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	tpl, err := ctx.FindTemplate(user.ID, c.Ref)
	if err != nil {
		return err
	}
	if !tpl.IsArchived() {
		return fmt.Errorf("routine %q is not archived", tpl.Title)
	}

	if err := ctx.Tracker.RestoreTemplate(user.ID, tpl.ID); err != nil {
		return err
	}

	fmt.Printf("Restored routine: %s\n", tpl.Title)
	return nil
}

type TemplatePurgeCmd struct {
	Ref   string `arg:"" help:"Routine title or id."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *TemplatePurgeCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	tpl, err := ctx.FindTemplate(user.ID, c.Ref)
	if err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Permanently delete %q and all its history?", tpl.Title)).
					Description("This cannot be undone.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Tracker.PurgeTemplate(user.ID, tpl.ID); err != nil {
		return err
	}

	fmt.Printf("Purged routine: %s\n", tpl.Title)
	return nil
}

type TemplateReorderCmd struct {
	Refs []string `arg:"" help:"Routine titles or ids in the desired order."`
}

func (c *TemplateReorderCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	updates := make([]storage.TemplateOrder, 0, len(c.Refs))
	var titles []string
	for i, ref := range c.Refs {
		tpl, err := ctx.FindTemplate(user.ID, ref)
		if err != nil {
			return err
		}
		updates = append(updates, storage.TemplateOrder{ID: tpl.ID, Order: i})
		titles = append(titles, tpl.Title)
	}

	if err := ctx.Tracker.ReorderTemplates(user.ID, updates); err != nil {
		return err
	}

	fmt.Printf("Reordered: %s\n", strings.Join(titles, ", "))
	return nil
}
