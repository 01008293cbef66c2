package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/chromatic/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Remove duplicate open tasks, keeping the oldest of each title."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	ctx.printf("Validating %d task(s)...\n\n", len(tasks))
	result := validation.New().ValidateTasks(tasks, time.Now())
	ctx.printf("%s\n", result.FormatReport())

	if !cmd.Fix || result.Count(validation.ConflictDuplicateTitle) == 0 {
		return nil
	}

	ctx.PerformAutomaticBackup()
	actions := validation.AutoFixDuplicates(result.Conflicts, tasks, ctx.Store.DeleteTask)
	ctx.printf("\nApplied fixes:\n")
	for _, a := range actions {
		ctx.printf("- %s\n", a.Action)
	}
	return nil
}
