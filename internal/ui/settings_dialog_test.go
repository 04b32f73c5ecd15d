package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/countdown/internal/config"
)

func TestSettingsDialog_LoadsCurrentSettings(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(widget.NewLabel(""))
	defer window.Close()

	settings := config.NewSettings(app)
	settings.SetLanguage("pt")
	settings.SetThemeVariant(config.ThemeDark)
	settings.SetAnimateProgress(false)

	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.Show()

	assert.Equal(t, "Português", sd.languageSelect.Selected)
	assert.Equal(t, "Dark", sd.themeSelect.Selected)
	assert.False(t, sd.animateCheck.Checked)
	require.Equal(t, "System Default", sd.languageSelect.Options[0])
}

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(widget.NewLabel(""))
	defer window.Close()

	settings := config.NewSettings(app)
	saved := 0

	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved++ })
	sd.Show()

	sd.languageSelect.SetSelected("Русский")
	sd.themeSelect.SetSelected("Light")
	sd.animateCheck.SetChecked(false)

	sd.onSave(false)
	assert.Equal(t, 0, saved, "cancel must not save")
	assert.Equal(t, config.DefaultLanguage, settings.GetLanguage())

	sd.onSave(true)
	assert.Equal(t, 1, saved)
	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, config.ThemeLight, settings.GetThemeVariant())
	assert.False(t, settings.GetAnimateProgress())
}
