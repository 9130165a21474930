package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mirrorlab/moodmirror/internal/api"
	"github.com/mirrorlab/moodmirror/internal/cli"
	"github.com/mirrorlab/moodmirror/internal/constants"
	"github.com/mirrorlab/moodmirror/internal/errors"
	"github.com/mirrorlab/moodmirror/internal/logger"
	"github.com/mirrorlab/moodmirror/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path. A .json extension selects the JSON store." type:"path" default:"${data_file}"`
	Backend string `help:"Base URL of the mood analysis backend." default:"${backend}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd   `cmd:"" help:"Initialize moodmirror storage."`
	Tui     cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Text    cli.TextCmd   `cmd:"" help:"Analyze the mood of free text."`
	Image   cli.ImageCmd  `cmd:"" help:"Analyze the mood of a photo."`
	History struct {
		List   cli.HistoryListCmd   `cmd:"" help:"List recorded moods." default:"1"`
		Remove cli.HistoryRemoveCmd `cmd:"" help:"Remove a history entry."`
	} `cmd:"" help:"Manage mood history."`
	Palette cli.PaletteCmd `cmd:"" help:"Show the color palette for an emotion."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("moodmirror"),
		kong.Description("Reflect your emotions through color and design"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":   "v0.1.0",
			"data_file": constants.DefaultDataFile,
			"backend":   api.DefaultBaseURL,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Data),
	}); err != nil {
		errors.Fatal(err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Data, ".json") {
		store = storage.NewJSONStore(CLI.Data)
	} else {
		store = storage.NewSQLiteStore(CLI.Data)
	}

	appCtx := &cli.Context{
		Store:  store,
		Client: api.New(CLI.Backend),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
