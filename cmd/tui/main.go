package main

import (
	"context"
	"os"

	"chronotimer/internal/core/timekeeper"
	"chronotimer/internal/logging"
	"chronotimer/internal/storage"
	"chronotimer/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.FromEnv("tui")

	settings, created, err := storage.LoadOrCreate(storage.DefaultFileName)
	if err != nil {
		logger.Error("load config", "path", storage.DefaultFileName, "err", err)
		return 1
	}
	if created {
		logger.Info("wrote default config", "path", storage.DefaultFileName)
	}

	ctx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	config := settings.TimerConfig()
	stream, handle, err := timekeeper.Start(ctx, config, timekeeper.Options{Logger: logger})
	if err != nil {
		logger.Error("start timer", "err", err)
		return 1
	}
	defer handle.Cancel()

	model := terminal.New(stream, handle, config.PollInterval(), settings)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("terminal ui", "err", err)
		return 1
	}
	return 0
}
