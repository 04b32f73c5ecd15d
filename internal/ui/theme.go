package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/countdown/internal/config"
)

// Countdown specific color names
const (
	ColorNameRing    fyne.ThemeColorName = "countdownRing"
	ColorNameCounter fyne.ThemeColorName = "countdownCounter"
)

// Palette
var (
	Purple200 = color.NRGBA{R: 0xBB, G: 0x86, B: 0xFC, A: 0xFF}
	Purple500 = color.NRGBA{R: 0x62, G: 0x00, B: 0xEE, A: 0xFF}
	Purple700 = color.NRGBA{R: 0x37, G: 0x00, B: 0xB3, A: 0xFF}
	Teal200   = color.NRGBA{R: 0x03, G: 0xDA, B: 0xC5, A: 0xFF}
)

// TimerTheme defines the purple countdown theme with an optional forced variant
type TimerTheme struct {
	variant *fyne.ThemeVariant
}

// NewTimerTheme creates a theme honoring the configured variant
func NewTimerTheme(variant config.ThemeVariant) fyne.Theme {
	t := &TimerTheme{}
	switch variant {
	case config.ThemeLight:
		v := theme.VariantLight
		t.variant = &v
	case config.ThemeDark:
		v := theme.VariantDark
		t.variant = &v
	}
	return t
}

// Color returns theme colors
func (t *TimerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}

	switch name {
	case ColorNameRing:
		return Purple500
	case ColorNameCounter:
		return Purple200
	case theme.ColorNamePrimary:
		if variant == theme.VariantDark {
			return Purple200
		}
		return Purple500
	case theme.ColorNameFocus:
		return color.NRGBA{R: Purple700.R, G: Purple700.G, B: Purple700.B, A: 0x7F}
	case theme.ColorNameHyperlink:
		return Teal200
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}
		}
		return color.White
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *TimerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TimerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *TimerTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// themeColor resolves a color from the running app's theme and variant
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
	settings := app.Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}
