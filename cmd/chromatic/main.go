package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/chromatic/internal/cli"
	"github.com/julianstephens/chromatic/internal/config"
	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/errors"
	"github.com/julianstephens/chromatic/internal/logger"
	"github.com/julianstephens/chromatic/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag `help:"Print the version and exit."`
	Config  kong.ConfigFlag  `help:"TOML config file with flag defaults."`
	DB      string           `name:"db" help:"Database path or sqlite:/// URL. A .json path uses the JSON store." env:"${db_env}" default:"${db_default}"`
	Debug   bool             `help:"Log debug output to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize chromatic storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Task     cli.TaskCmd     `cmd:"" help:"Manage tasks."`
	Validate cli.ValidateCmd `cmd:"" help:"Check tasks for duplicates, clashes and overdue items."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage database backups."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd cli.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Task tracker with progressive date and time entry."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(config.TOML, constants.DefaultConfigFile),
		kong.Vars{
			"version":    constants.Version,
			"db_env":     constants.DatabaseURLEnv,
			"db_default": constants.DefaultConfigPath,
		},
	)

	configDir, err := config.ExpandHome(constants.DefaultConfigDir)
	errors.Fatal(err)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	store, err := storage.Open(CLI.DB)
	errors.Fatal(err)
	logger.Debug("using storage", "path", store.GetConfigPath())

	errors.Fatal(ctx.Run(&cli.Context{Store: store}))
}
