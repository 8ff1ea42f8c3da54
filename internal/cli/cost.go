package cli

import "fmt"

type CostAddCmd struct {
	Name   string  `arg:"" help:"What the payment is for."`
	Amount float64 `arg:"" help:"Monthly amount."`
	Day    int     `short:"d" help:"Day of month the payment lands (1-31)." default:"1"`
}

func (c *CostAddCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	cost, err := ctx.Tracker.AddFixedCost(user.ID, c.Name, c.Amount, c.Day)
	if err != nil {
		return err
	}

	fmt.Printf("Added fixed cost: %s %.2f on day %d (ID: %s)\n", cost.Name, cost.Amount, cost.PaymentDay, cost.ID)
	return nil
}

type CostListCmd struct{}

func (c *CostListCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	costs, err := ctx.Tracker.ListFixedCosts(user.ID)
	if err != nil {
		return err
	}
	if len(costs) == 0 {
		fmt.Println("No fixed costs found.")
		return nil
	}

	var total float64
	for _, cost := range costs {
		fmt.Printf("  day %2d  %-30s  %10.2f  (ID: %s)\n", cost.PaymentDay, truncate(cost.Name, 30), cost.Amount, cost.ID)
		total += cost.Amount
	}
	fmt.Printf("\n  Monthly total: %.2f\n", total)
	return nil
}

type CostDeleteCmd struct {
	ID string `arg:"" help:"Fixed cost id."`
}

func (c *CostDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteFixedCost(user.ID, c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted fixed cost.")
	return nil
}
