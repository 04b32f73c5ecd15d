// Package app wires the countdown: logger, Fyne application, theme,
// countdown service and the root UI.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/countdown/internal/config"
	"github.com/ytget/countdown/internal/countdown"
	"github.com/ytget/countdown/internal/ui"
)

const (
	AppID   = "com.ytget.countdown"
	AppName = "Countdown"

	WindowWidth  = 360
	WindowHeight = 640
)

// Run starts the application and blocks until the main window is closed
func Run(version string) error {
	logger, err := NewLogger(version)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("countdown starting", zap.String("version", version))

	// Create new Fyne app
	a := fyneapp.NewWithID(AppID)
	a.SetIcon(ui.AppIcon)

	settings := config.NewSettings(a)
	a.Settings().SetTheme(ui.NewTimerTheme(settings.GetThemeVariant()))

	window := a.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ticks are delivered on the Fyne thread, serialized with tap handlers
	svc := countdown.NewService(
		countdown.WithLogger(logger.Named("countdown")),
		countdown.WithDispatcher(fyne.Do),
	)
	a.Lifecycle().SetOnStopped(svc.Close)

	ui.NewRootUI(window, a, svc, settings, logger.Named("ui"))

	window.ShowAndRun()
	logger.Info("countdown stopped")
	return nil
}

// NewLogger builds a development logger for dev builds and a production one otherwise
func NewLogger(version string) (*zap.Logger, error) {
	if version == "" || version == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
