package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"prodp/internal/cli"
	"prodp/internal/config"
	"prodp/internal/logs"
	"prodp/internal/notes/service"
	"prodp/internal/tui"
)

func main() {
	// Parse CLI flags
	fileFlag := flag.String("file", "", "Notes file (JSON)")
	flag.StringVar(fileFlag, "f", "", "Notes file (shorthand)")
	settingsFlag := flag.String("settings", "", "Settings file (JSON)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{
		NotesFile:    *fileFlag,
		SettingsFile: *settingsFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// A corrupt notes file is never overwritten, so refuse to start
	svc, err := service.NewNoteService(cfg.NotesFile)
	if err != nil {
		logs.Logger.Error().Err(err).Str("path", cfg.NotesFile).Msg("could not load notes")
		fmt.Fprintf(os.Stderr, "Error: could not load %s: %v\n", cfg.NotesFile, err)
		os.Exit(1)
	}

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		code := cli.Run(args, svc, cfg)
		logs.Close()
		os.Exit(code)
	}

	// TUI mode
	logs.Logger.Info().Str("notes", cfg.NotesFile).Msg("starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(cfg, svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
}
