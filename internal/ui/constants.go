package ui

import "time"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Progress ring geometry
const (
	RingStrokeWidth float32 = 10
	RingPadding     float32 = 14
	RingMinSize     float32 = 200

	ProgressAnimationDuration = time.Second
)

// Counter typography
const (
	CounterTextSize float32 = 60
	CaptionTextSize float32 = 14
)

// Controls sizing
const (
	ControlButtonSize       float32 = 80
	MobileControlButtonSize float32 = 88
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 320
	SettingsDialogHeight float32 = 280
)
