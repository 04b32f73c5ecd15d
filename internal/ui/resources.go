package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIconName = "countdown.svg"
)

//go:embed assets/icon.svg
var appIconSVG []byte

// AppIcon is the embedded application icon
var AppIcon fyne.Resource = fyne.NewStaticResource(AppIconName, appIconSVG)
