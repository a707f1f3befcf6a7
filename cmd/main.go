package main

import (
	"context"
	"errors"
	"os"
	"time"

	"chronotimer/internal/core/timekeeper"
	"chronotimer/internal/logging"
	"chronotimer/internal/platform"
	"chronotimer/internal/storage"
	"chronotimer/internal/ui/display"
	"chronotimer/internal/ui/pump"
	"chronotimer/internal/ui/tray"
	"chronotimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "ChronoTimer"

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.FromEnv("display")

	settings, created, err := storage.LoadOrCreate(storage.DefaultFileName)
	if err != nil {
		logger.Error("load config", "path", storage.DefaultFileName, "err", err)
		return 1
	}
	if created {
		logger.Info("wrote default config", "path", storage.DefaultFileName)
	}

	guard, err := platform.AcquireSingleInstance(platform.InstanceKey(appName, storage.DefaultFileName))
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("display already running for this config", "err", err)
			return 0
		}
		logger.Error("single instance", "err", err)
		return 1
	}
	defer func() {
		_ = guard.Release()
	}()
	logger.Debug("instance lock acquired", "address", guard.Address())

	fyneApp := app.NewWithID("com.chronotimer.display")
	fyneApp.SetIcon(resources.MustIcon())

	ctx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	config := settings.TimerConfig()
	keeper, err := timekeeper.New(config, timekeeper.Options{Logger: logger})
	if err != nil {
		logger.Error("start timer", "err", err)
		return 1
	}
	stream, handle := keeper.Start(ctx)

	window := display.New(fyneApp, display.ConfigFromSettings(settings))
	quit := func() {
		handle.Cancel()
		fyneApp.Quit()
	}
	window.SetOnClose(quit)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, settings.WindowTitle, tray.Callbacks{
			OnShow: window.Show,
			OnQuit: quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon())
	} else {
		logger.Debug("system tray unsupported on this platform")
	}

	go func() {
		pump.Run(ctx, stream, config.PollInterval(), func(result timekeeper.Result) {
			fyne.Do(func() {
				window.Render(result)
				if trayManager != nil {
					trayManager.SetStatus(result.Text)
				}
			})
		})
		if trayManager != nil {
			fyne.Do(func() {
				trayManager.SetStopped(true)
			})
		}
		logger.Debug("display stream finished", "cancelled", handle.Cancelled())
	}()

	window.Show()
	fyneApp.Run()
	handle.Cancel()

	select {
	case <-keeper.Done():
	case <-time.After(2 * config.Interval):
	}
	status := keeper.Status()
	logger.Info("display closed", "state", status.State, "reason", status.Reason, "message", status.Message)
	return 0
}
