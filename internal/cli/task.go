package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/chromatic/internal/datetime"
	"github.com/julianstephens/chromatic/internal/models"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit an existing task."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
	Done   TaskDoneCmd   `cmd:"" help:"Toggle a task between complete and open."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Longer description."`
	Category    string `short:"c" help:"Category (none|work|social|home)." default:"none"`
	Status      string `short:"s" help:"Status (pending|scheduled|complete|cancelled|archived)." default:"pending"`
	When        string `short:"w" help:"Schedule as YYYY[-MM[-DD[ HH[:MM]]]]."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	task := models.NewTask(strings.TrimSpace(c.Title))
	task.Description = strings.TrimSpace(c.Description)

	var err error
	if task.Category, err = models.ParseCategory(c.Category); err != nil {
		return err
	}
	if task.Status, err = models.ParseStatus(c.Status); err != nil {
		return err
	}
	if c.When != "" {
		if task.Schedule, err = datetime.Parse(c.When); err != nil {
			return err
		}
		if task.Status == models.StatusPending {
			task.Status = models.StatusScheduled
		}
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}
	ctx.printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	Status   string `short:"s" help:"Only show tasks with this status."`
	Category string `short:"c" help:"Only show tasks in this category."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	var (
		status   models.Status
		category models.Category
		err      error
	)
	if c.Status != "" {
		if status, err = models.ParseStatus(c.Status); err != nil {
			return err
		}
	}
	if c.Category != "" {
		if category, err = models.ParseCategory(c.Category); err != nil {
			return err
		}
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Status", "Category", "Date/Time")
	count := 0
	for _, task := range tasks {
		if c.Status != "" && task.Status != status {
			continue
		}
		if c.Category != "" && task.Category != category {
			continue
		}
		t.Row(shortID(task.ID), task.Title, task.Status.Label(), task.Category.Label(), task.ScheduleText())
		count++
	}

	if count == 0 {
		ctx.printf("No tasks found\n")
		return nil
	}
	ctx.printf("%s\n", t.String())
	return nil
}

type TaskEditCmd struct {
	ID            string  `arg:"" help:"Task ID or unique prefix."`
	Title         *string `short:"t" help:"New title."`
	Description   *string `short:"d" help:"New description."`
	Category      *string `short:"c" help:"New category."`
	Status        *string `short:"s" help:"New status."`
	When          *string `short:"w" help:"New schedule as YYYY[-MM[-DD[ HH[:MM]]]]."`
	ClearSchedule bool    `help:"Remove the schedule."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	task, err := findTask(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		task.Title = strings.TrimSpace(*c.Title)
	}
	if c.Description != nil {
		task.Description = strings.TrimSpace(*c.Description)
	}
	if c.Category != nil {
		if task.Category, err = models.ParseCategory(*c.Category); err != nil {
			return err
		}
	}
	if c.Status != nil {
		if task.Status, err = models.ParseStatus(*c.Status); err != nil {
			return err
		}
	}
	switch {
	case c.ClearSchedule && c.When != nil:
		return fmt.Errorf("--when and --clear-schedule cannot be used together")
	case c.ClearSchedule:
		task.Schedule = datetime.PartialDate{}
	case c.When != nil:
		if task.Schedule, err = datetime.Parse(*c.When); err != nil {
			return err
		}
	}
	task.Touch()

	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	ctx.printf("Updated task: %s (%s)\n", task.Title, task.ScheduleText())
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	task, err := findTask(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return err
	}
	ctx.printf("Deleted task: %s\n", task.Title)
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	task, err := findTask(ctx, c.ID)
	if err != nil {
		return err
	}
	task.ToggleComplete()
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	ctx.printf("%s is now %s\n", task.Title, task.Status.Label())
	return nil
}
