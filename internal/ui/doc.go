package ui

// Package ui contains the Fyne user interface for the countdown: the progress
// ring, the remaining-seconds counter, the play/pause/stop controls, the theme
// and the settings dialog. Widgets render from countdown snapshots and forward
// taps to the countdown controller. All UI strings are localized via Localization.
