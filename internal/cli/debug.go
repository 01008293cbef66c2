package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath   DebugDBPathCmd   `cmd:"" name:"db-path" help:"Show database path."`
	DumpTask DebugDumpTaskCmd `cmd:"" help:"Dump task data as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	return printJSON(ctx, map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpTaskCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (cmd *DebugDumpTaskCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	task, err := findTask(ctx, cmd.ID)
	if err != nil {
		return err
	}
	return printJSON(ctx, task)
}

func printJSON(ctx *Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.printf("%s\n", data)
	return nil
}
