package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized checkdays storage at: %s\n", ctx.Store.GetPath())
	fmt.Printf("Create your account with: checkdays user add %s\n", ctx.Config.Email)
	return nil
}
