package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// ControlButtonSize returns the edge length of a control icon button
func (m *MobileUI) ControlButtonSize() float32 {
	if m.IsMobileDevice() {
		return MobileControlButtonSize
	}
	return ControlButtonSize
}

// GetDeviceOrientation returns the current device orientation
func (m *MobileUI) GetDeviceOrientation() fyne.DeviceOrientation {
	return fyne.CurrentDevice().Orientation()
}

// IsLandscape returns true if a mobile device is held horizontally
func (m *MobileUI) IsLandscape() bool {
	if !m.IsMobileDevice() {
		return false
	}
	orientation := m.GetDeviceOrientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
