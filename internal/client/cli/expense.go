package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runExpense(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: momentum expense add|list")
	}

	switch args[0] {
	case "add":
		return c.runExpenseAdd(ctx, args[1:])
	case "list":
		return c.runExpenseList(ctx)
	default:
		return fmt.Errorf("unknown expense subcommand: %s", args[0])
	}
}

func (c *Cli) runExpenseAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: momentum expense add <amount> [note] [date]")
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	note, date := "", ""
	if len(args) > 1 {
		note = args[1]
	}
	if len(args) > 2 {
		date = args[2]
	}

	expense, err := c.dataService.AddExpense(ctx, c.session.UserID, amount, note, date)
	if err != nil {
		return err
	}

	c.io.Printf("Recorded %.2f on %s\n", expense.Amount, expense.Date)
	return nil
}

func (c *Cli) runExpenseList(ctx context.Context) error {
	expenses, err := c.dataService.ListExpenses(ctx, c.session.UserID)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		c.io.Println("No expenses this month.")
		return nil
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
		c.io.Printf("%s  %8.2f  %s\n", e.Date, e.Amount, e.Note)
	}
	c.io.Printf("Total: %.2f\n", total)
	return nil
}
