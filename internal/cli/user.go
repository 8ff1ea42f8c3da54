package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type UserAddCmd struct {
	Email    string `arg:"" optional:"" help:"Account email (default: configured account)."`
	Password string `short:"p" help:"Account password (prompted when omitted)."`
}

func (c *UserAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	email := c.Email
	if email == "" {
		email = ctx.Config.Email
	}

	password := c.Password
	if password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Password for %s", email)).
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("password prompt failed: %w", err)
		}
	}

	user, err := ctx.Tracker.CreateUser(email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Created account: %s\n", user.Email)
	if email != ctx.Config.Email {
		fmt.Printf("Set CHECKDAYS_USER=%s to use it.\n", email)
	}
	return nil
}
