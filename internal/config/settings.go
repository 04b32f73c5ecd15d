package config

import (
	"fyne.io/fyne/v2"
)

// ThemeVariant selects the color variant the app renders with
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyThemeVariant    = "theme_variant"
	KeyAnimateProgress = "animate_progress"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultThemeVariant    = ThemeSystem
	DefaultAnimateProgress = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.app.Preferences().String(KeyThemeVariant))
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
		return variant
	}
	s.SetThemeVariant(DefaultThemeVariant)
	return DefaultThemeVariant
}

// SetThemeVariant sets the theme variant
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetAnimateProgress returns whether the progress ring eases between ticks
func (s *Settings) GetAnimateProgress() bool {
	return s.app.Preferences().BoolWithFallback(KeyAnimateProgress, DefaultAnimateProgress)
}

// SetAnimateProgress sets whether the progress ring eases between ticks
func (s *Settings) SetAnimateProgress(animate bool) {
	s.app.Preferences().SetBool(KeyAnimateProgress, animate)
}
