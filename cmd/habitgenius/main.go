package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/habitgenius/habitgenius/internal/cli"
	"github.com/habitgenius/habitgenius/internal/cli/system"
	"github.com/habitgenius/habitgenius/internal/errors"
	"github.com/habitgenius/habitgenius/internal/logger"
	"github.com/habitgenius/habitgenius/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path (.db for SQLite, .json for the file store) or a postgres:// connection string." env:"HABITGENIUS_DB" default:"~/.config/habitgenius/habitgenius.db"`
	Debug   bool   `help:"Enable debug logging." env:"HABITGENIUS_DEBUG"`

	Serve    system.ServeCmd  `cmd:"" help:"Run the HTTP API server." default:"1"`
	Init     system.InitCmd   `cmd:"" help:"Initialize storage."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Habit    cli.HabitCmd     `cmd:"" help:"Manage habits, roadmaps, and resources."`
	Progress cli.ProgressCmd  `cmd:"" help:"Record and inspect habit check-ins."`
	Ask      cli.AskCmd       `cmd:"" help:"Ask the habit assistant a question."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitgenius"),
		kong.Description("Habit tracking backend with generated roadmaps, streaks, and a rule-based assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	config := expandHome(CLI.Config)
	store := storage.NewStore(config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(config),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Load the store before running the command; init handles its own setup
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// configDir picks the directory logs live in. For connection strings
// there is no local data directory, so fall back to the user config dir.
func configDir(config string) string {
	if strings.Contains(config, "://") {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, "habitgenius")
		}
		return "."
	}
	return filepath.Dir(config)
}
