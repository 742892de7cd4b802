// cmd/bistro/main.go
//
// This is the entry point for the bistro CLI.
// When you run `bistro` from any directory, that directory becomes the
// dining room: .bistro/ holds its configuration and journal, and the menu
// and orders files live next to it unless config.yaml says otherwise.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/bistro/internal/config"
	"github.com/kingrea/bistro/internal/tui"
)

func main() {
	// Get the current working directory - this is the "project" we're working in
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitBistroDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .bistro directory: %v\n", err)
		os.Exit(1)
	}

	// NewApp loads the menu and restores saved orders before the first frame
	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
