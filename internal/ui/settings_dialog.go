package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countdown/internal/config"
)

// SettingsDialog represents the appearance settings dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	themeSelect    *widget.Select
	animateCheck   *widget.Check

	// Display label to stored value
	languageCodes map[string]string
	themeVariants map[string]config.ThemeVariant
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	return &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}
}

// Show displays the settings dialog. The UI is rebuilt so labels follow the
// current language.
func (sd *SettingsDialog) Show() {
	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Language selection
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		// System default first, then by code
		if codes[i] == config.DefaultLanguage || codes[j] == config.DefaultLanguage {
			return codes[i] == config.DefaultLanguage
		}
		return codes[i] < codes[j]
	})

	sd.languageCodes = make(map[string]string, len(codes))
	languageLabels := make([]string, 0, len(codes))
	for _, code := range codes {
		label := options[code]
		sd.languageCodes[label] = code
		languageLabels = append(languageLabels, label)
	}
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	// Theme selection
	sd.themeVariants = make(map[string]config.ThemeVariant)
	themeLabels := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		label := sd.themeLabel(variant)
		sd.themeVariants[label] = variant
		themeLabels = append(themeLabels, label)
	}
	sd.themeSelect = widget.NewSelect(themeLabels, nil)

	sd.animateCheck = widget.NewCheck(l.GetText(KeyAnimateProgress), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(l.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewSeparator(),
		sd.animateCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) themeLabel(variant config.ThemeVariant) string {
	switch variant {
	case config.ThemeLight:
		return sd.localization.GetText(KeyThemeLight)
	case config.ThemeDark:
		return sd.localization.GetText(KeyThemeDark)
	default:
		return sd.localization.GetText(KeyThemeSystem)
	}
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.themeSelect.SetSelected(sd.themeLabel(sd.settings.GetThemeVariant()))
	sd.animateCheck.SetChecked(sd.settings.GetAnimateProgress())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes the selected values to preferences
func (sd *SettingsDialog) save() {
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if variant, ok := sd.themeVariants[sd.themeSelect.Selected]; ok {
		sd.settings.SetThemeVariant(variant)
	}

	sd.settings.SetAnimateProgress(sd.animateCheck.Checked)
}
