package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/momentumos/momentum/internal/models"
)

func (c *Cli) runBudget(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: momentum budget set|show")
	}

	switch args[0] {
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("usage: momentum budget set <amount>")
		}
		limit, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}
		if err := c.dataService.SetBudget(ctx, c.session.UserID, limit); err != nil {
			return err
		}
		c.io.Printf("Monthly budget set to %.2f\n", limit)
		return nil
	case "show":
		budget, err := c.dataService.GetBudget(ctx, c.session.UserID)
		if err != nil {
			return err
		}
		limit := float64(models.DefaultMonthlyBudget)
		if budget != nil {
			limit = budget.LimitAmount
		} else {
			c.io.Println("No budget set, using the default.")
		}

		spend, err := c.dataService.MonthSpend(ctx, c.session.UserID)
		if err != nil {
			return err
		}
		c.io.Printf("Budget: %.2f, spent this month: %.2f\n", limit, spend)
		return nil
	default:
		return fmt.Errorf("unknown budget subcommand: %s", args[0])
	}
}
