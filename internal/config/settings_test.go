package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}

	// Unknown codes fall back to the default
	settings.SetLanguage("xx")
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Unknown language should fall back to %s", DefaultLanguage)
	}
}

func TestThemeVariant(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	variant := settings.GetThemeVariant()
	if variant != DefaultThemeVariant {
		t.Errorf("Expected default theme variant %s, got %s", DefaultThemeVariant, variant)
	}

	// Test setting custom value
	settings.SetThemeVariant(ThemeDark)

	retrieved := settings.GetThemeVariant()
	if retrieved != ThemeDark {
		t.Errorf("Expected theme variant %s, got %s", ThemeDark, retrieved)
	}

	// Invalid values fall back to the default
	settings.SetThemeVariant("sepia")
	if settings.GetThemeVariant() != DefaultThemeVariant {
		t.Errorf("Invalid theme variant should fall back to %s", DefaultThemeVariant)
	}
}

func TestAnimateProgress(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAnimateProgress() != DefaultAnimateProgress {
		t.Errorf("Expected default animate progress %v", DefaultAnimateProgress)
	}

	settings.SetAnimateProgress(false)
	if settings.GetAnimateProgress() {
		t.Error("Expected animate progress to be disabled")
	}
}

func TestGetThemeVariantOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeVariantOptions()
	expectedOptions := []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d theme options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Theme option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
