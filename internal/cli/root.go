package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/config"
	"github.com/been-going/PleaseCheckYourDays/internal/dates"
	"github.com/been-going/PleaseCheckYourDays/internal/models"
	"github.com/been-going/PleaseCheckYourDays/internal/service"
	"github.com/been-going/PleaseCheckYourDays/internal/storage"
	"github.com/been-going/PleaseCheckYourDays/internal/validation"
)

type Context struct {
	Store   storage.Provider
	Tracker *service.Tracker
	Config  *config.Config
	Loc     *time.Location
	Clock   dates.Clock
}

// CurrentUser loads the store and resolves the configured account. Every
// command that touches user data starts here.
func (c *Context) CurrentUser() (models.User, error) {
	if err := c.Store.Load(); err != nil {
		return models.User{}, err
	}
	user, err := c.Tracker.ResolveUser(c.Config.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("no account for %s, run 'checkdays user add %s' first", c.Config.Email, c.Config.Email)
	}
	return user, nil
}

// ResolveDay turns a date argument into a day key. Accepts YYYY-MM-DD plus
// the shorthands "today" and "yesterday".
func (c *Context) ResolveDay(arg string) (string, error) {
	switch arg {
	case "", "today":
		return c.Clock.Today(), nil
	case "yesterday":
		return dates.DayKey(c.Clock.Now().AddDate(0, 0, -1), c.Loc), nil
	}
	if err := validation.DayKey(arg); err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD, 'today' or 'yesterday'", arg)
	}
	return arg, nil
}

// FindTemplate resolves a template reference, trying the id first and then a
// case-insensitive title match among the user's templates.
func (c *Context) FindTemplate(userID, ref string) (models.Template, error) {
	if tpl, err := c.Store.GetTemplate(ref, userID); err == nil {
		return tpl, nil
	}

	templates, err := c.Store.GetAllTemplates(userID, true)
	if err != nil {
		return models.Template{}, err
	}
	for _, tpl := range templates {
		if strings.EqualFold(tpl.Title, ref) {
			return tpl, nil
		}
	}
	return models.Template{}, fmt.Errorf("no template named %q", ref)
}

func parseGroup(s string) (models.Group, error) {
	g := models.Group(strings.ToUpper(strings.TrimSpace(s)))
	if err := validation.Group(g); err != nil {
		return "", fmt.Errorf("invalid group %q (morning|execute|evening)", s)
	}
	return g, nil
}
