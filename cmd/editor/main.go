package main

import (
	"os"

	"chronotimer/internal/core/model"
	"chronotimer/internal/logging"
	"chronotimer/internal/storage"
	"chronotimer/internal/ui/preferences"
	"chronotimer/resources"

	"fyne.io/fyne/v2/app"
)

// LangEnv selects the editor message catalog.
const LangEnv = "CHRONOTIMER_LANG"

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.FromEnv("editor")

	language := os.Getenv(LangEnv)
	if language == "" {
		language = resources.DefaultLanguage
	}
	messages := resources.MustMessages(language)

	fyneApp := app.NewWithID("com.chronotimer.editor")
	fyneApp.SetIcon(resources.MustIcon())

	path := storage.DefaultFileName
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	editor := preferences.New(fyneApp, messages, path)
	editor.SetOnSaved(func(path string, _ model.Settings) {
		logger.Info("config saved", "path", path)
	})
	if _, err := os.Stat(path); err == nil {
		if err := editor.Open(path); err != nil {
			logger.Warn("open config", "path", path, "err", err)
		}
	}

	editor.Show()
	fyneApp.Run()
	return 0
}
