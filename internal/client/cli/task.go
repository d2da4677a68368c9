package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: momentum task add|list|done|rm")
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: momentum task add <title>")
		}
		return c.runTaskAdd(ctx, strings.Join(args[1:], " "))
	case "list":
		return c.runTaskList(ctx)
	case "done":
		if len(args) < 2 {
			return fmt.Errorf("usage: momentum task done <id>")
		}
		return c.runTaskDone(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: momentum task rm <id>")
		}
		return c.runTaskDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown task subcommand: %s", args[0])
	}
}

func (c *Cli) runTaskAdd(ctx context.Context, title string) error {
	task, err := c.dataService.AddTask(ctx, c.session.UserID, title)
	if err != nil {
		return err
	}
	c.io.Printf("Added task %q (%s)\n", task.Title, task.ID)
	return nil
}

func (c *Cli) runTaskList(ctx context.Context) error {
	tasks, err := c.dataService.ListTasks(ctx, c.session.UserID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		c.io.Println("No tasks.")
		return nil
	}

	for _, t := range tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		c.io.Printf("[%s] %s  %s\n", mark, t.ID, t.Title)
	}
	return nil
}

func (c *Cli) runTaskDone(ctx context.Context, taskID string) error {
	if err := c.dataService.CompleteTask(ctx, taskID); err != nil {
		return err
	}
	c.io.Println("Task completed.")
	return nil
}

func (c *Cli) runTaskDelete(ctx context.Context, taskID string) error {
	if err := c.dataService.DeleteTask(ctx, c.session.UserID, taskID); err != nil {
		return err
	}
	c.io.Println("Task deleted.")
	return nil
}
