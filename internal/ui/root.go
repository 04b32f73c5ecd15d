package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/countdown/internal/config"
	"github.com/ytget/countdown/internal/countdown"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	controller   countdown.Controller
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	logger       *zap.Logger

	timerView      *TimerView
	settingsDialog *SettingsDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller countdown.Controller, settings *config.Settings, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		controller:   controller,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		logger:       logger,
	}

	ui.settingsDialog = NewSettingsDialog(settings, localization, window, ui.onSettingsSaved)

	ui.setupUI()
	ui.applySettings()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.timerView = NewTimerView(ui.controller, ui.localization, ui.mobile, ui.logger)

	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), ui.onShowSettings),
	)

	content := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		container.NewPadded(ui.timerView),
	)

	ui.window.SetContent(content)
	ui.logger.Debug("UI setup completed", zap.Bool("mobile", ui.mobile.IsMobileDevice()))
}

// TimerView returns the timer widget
func (ui *RootUI) TimerView() *TimerView {
	return ui.timerView
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.applySettings()
	ui.logger.Info("settings saved",
		zap.String("language", ui.settings.GetLanguage()),
		zap.String("theme", string(ui.settings.GetThemeVariant())),
		zap.Bool("animate", ui.settings.GetAnimateProgress()))
}

// applySettings pushes preferences into the running UI
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewTimerTheme(ui.settings.GetThemeVariant()))
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.timerView.SetAnimate(ui.settings.GetAnimateProgress())
	ui.timerView.ApplyTheme()
}
