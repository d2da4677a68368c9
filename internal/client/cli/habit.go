package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/momentumos/momentum/internal/models"
)

func (c *Cli) runHabit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: momentum habit add|list|done|rm")
	}

	switch args[0] {
	case "add":
		return c.runHabitAdd(ctx, args[1:])
	case "list":
		return c.runHabitList(ctx)
	case "done":
		if len(args) < 2 {
			return fmt.Errorf("usage: momentum habit done <id>")
		}
		return c.runHabitDone(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: momentum habit rm <id>")
		}
		return c.runHabitDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown habit subcommand: %s", args[0])
	}
}

func (c *Cli) runHabitAdd(ctx context.Context, args []string) error {
	title, category := "", ""
	schedule := models.EveryDay()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--days":
			if i+1 >= len(args) {
				return fmt.Errorf("--days needs a value, e.g. --days mon,wed,fri")
			}
			i++
			parsed, ok := models.ParseWeekdays(args[i])
			if !ok {
				return fmt.Errorf("invalid weekday list %q", args[i])
			}
			schedule = parsed
		case "--category":
			if i+1 >= len(args) {
				return fmt.Errorf("--category needs a value")
			}
			i++
			category = args[i]
		default:
			if title != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			title = args[i]
		}
	}
	if title == "" {
		return fmt.Errorf("usage: momentum habit add <title> [--days mon,wed] [--category name]")
	}

	habit, err := c.dataService.AddHabit(ctx, c.session.UserID, title, category, schedule)
	if err != nil {
		return err
	}

	c.io.Printf("Added habit %q (%s)\n", habit.Title, habit.ID)
	return nil
}

func (c *Cli) runHabitList(ctx context.Context) error {
	habits, err := c.dataService.ListHabits(ctx, c.session.UserID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		c.io.Println("No habits yet.")
		return nil
	}

	for _, h := range habits {
		days := "daily"
		if !h.Schedule.Daily {
			days = strings.Join(h.Schedule.Days, ",")
		}
		c.io.Printf("%s  %-30s %s\n", h.ID, h.Title, days)
	}
	return nil
}

func (c *Cli) runHabitDone(ctx context.Context, habitID string) error {
	if err := c.dataService.MarkHabitDone(ctx, c.session.UserID, habitID); err != nil {
		return err
	}
	c.io.Println("Marked done for today.")
	return nil
}

func (c *Cli) runHabitDelete(ctx context.Context, habitID string) error {
	if err := c.dataService.DeleteHabit(ctx, c.session.UserID, habitID); err != nil {
		return err
	}
	c.io.Println("Habit deleted.")
	return nil
}
