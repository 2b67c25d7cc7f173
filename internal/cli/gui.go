package cli

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"
)

func launchGUI(_ *cobra.Command, settings model.Settings, logger *slog.Logger) error {
	guard, err := platform.AcquireSingleInstance(AppName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	runner := newRunner(settings, logger)
	defer runner.Close()
	events := runner.Subscribe(16)

	fyneApp := app.NewWithID("io.github.pomodoro")
	fyneApp.SetIcon(theme.HistoryIcon())

	mainWindow := window.New(fyneApp, runner.State(), window.Controls{
		OnToggle: func() { runner.Toggle() },
		OnReset:  func() { runner.Reset() },
		OnAdjust: func(session timer.Session, direction timer.Direction) {
			runner.AdjustDuration(session, direction)
		},
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:   mainWindow.Show,
			OnToggle: func() { runner.Toggle() },
			OnReset:  func() { runner.Reset() },
			OnQuit:   fyneApp.Quit,
		})
		trayManager.SetState(runner.State())
		desktopApp.SetSystemTrayIcon(trayIcon(runner.State()))
		// Closing the window keeps the timer running in the tray.
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	go func() {
		for event := range events {
			state := event.State
			fyne.Do(func() {
				mainWindow.Render(state)
				if trayManager != nil {
					trayManager.SetState(state)
					desktopApp.SetSystemTrayIcon(trayIcon(state))
				}
			})
		}
	}()

	logger.Info("timer window opened",
		"work", settings.WorkDuration,
		"break", settings.BreakDuration)
	mainWindow.Show()
	fyneApp.Run()
	return nil
}

func trayIcon(state timer.State) fyne.Resource {
	if state.Running() {
		return theme.MediaPlayIcon()
	}
	return theme.MediaPauseIcon()
}
