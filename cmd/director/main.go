package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/config"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/logging"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui"
)

func main() {
	// A .env file is optional; the environment wins either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Getenv("DIRECTOR_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(cfg, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
