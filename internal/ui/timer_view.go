package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/countdown/internal/countdown"
	"github.com/ytget/countdown/internal/model"
)

// TimerView shows the countdown ring, the remaining seconds and the controls
type TimerView struct {
	widget.BaseWidget

	controller   countdown.Controller
	localization *Localization
	mobile       *MobileUI
	logger       *zap.Logger

	// UI components
	ring     *ProgressRing
	counter  *canvas.Text
	caption  *canvas.Text
	startBtn *widget.Button
	pauseBtn *widget.Button
	stopBtn  *widget.Button
	content  *fyne.Container

	last model.Snapshot
}

// NewTimerView creates the timer widget and subscribes it to the controller
func NewTimerView(controller countdown.Controller, localization *Localization, mobile *MobileUI, logger *zap.Logger) *TimerView {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := &TimerView{
		controller:   controller,
		localization: localization,
		mobile:       mobile,
		logger:       logger,
	}
	v.ExtendBaseWidget(v)

	v.createUI()
	v.render(controller.Snapshot())

	controller.SetUpdateCallback(v.onUpdate)
	return v
}

// createUI builds the widget tree
func (v *TimerView) createUI() {
	v.ring = NewProgressRing(1)

	v.counter = canvas.NewText("", themeColor(ColorNameCounter))
	v.counter.TextSize = CounterTextSize
	v.counter.Alignment = fyne.TextAlignCenter

	v.caption = canvas.NewText("", themeColor(ColorNameCounter))
	v.caption.TextSize = CaptionTextSize
	v.caption.Alignment = fyne.TextAlignCenter

	v.startBtn = v.newControl(theme.MediaPlayIcon(), v.onStart)
	v.pauseBtn = v.newControl(theme.MediaPauseIcon(), v.onPause)
	v.stopBtn = v.newControl(theme.MediaStopIcon(), v.onStop)

	face := container.NewStack(
		v.ring,
		container.NewCenter(container.NewVBox(v.counter, v.caption)),
	)

	buttonSize := fyne.NewSize(v.mobile.ControlButtonSize(), v.mobile.ControlButtonSize())
	wrap := func(btn *widget.Button) fyne.CanvasObject {
		return container.NewGridWrap(buttonSize, btn)
	}

	if v.mobile.IsLandscape() {
		controls := container.NewVBox(
			layout.NewSpacer(), wrap(v.startBtn),
			layout.NewSpacer(), wrap(v.pauseBtn),
			layout.NewSpacer(), wrap(v.stopBtn),
			layout.NewSpacer(),
		)
		v.content = container.NewBorder(nil, nil, nil, controls, face)
		return
	}

	// Evenly spaced row below the ring
	controls := container.NewHBox(
		layout.NewSpacer(), wrap(v.startBtn),
		layout.NewSpacer(), wrap(v.pauseBtn),
		layout.NewSpacer(), wrap(v.stopBtn),
		layout.NewSpacer(),
	)
	v.content = container.NewBorder(nil, controls, nil, nil, face)
}

func (v *TimerView) newControl(icon fyne.Resource, onTapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon("", icon, onTapped)
	btn.Importance = widget.LowImportance
	return btn
}

// CreateRenderer implements fyne.Widget
func (v *TimerView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// SetAnimate toggles easing of the progress ring
func (v *TimerView) SetAnimate(animate bool) {
	v.ring.Animate = animate
}

// ApplyTheme re-reads theme colors and localized texts
func (v *TimerView) ApplyTheme() {
	v.counter.Color = themeColor(ColorNameCounter)
	v.caption.Color = themeColor(ColorNameCounter)
	v.caption.Text = v.localization.StateText(v.last.State)
	v.counter.Refresh()
	v.caption.Refresh()
	v.ring.Refresh()
}

func (v *TimerView) onStart() {
	if !v.controller.Start() {
		v.logger.Debug("start tapped with no effect", zap.Stringer("state", v.last.State))
	}
}

func (v *TimerView) onPause() {
	v.controller.Pause()
}

func (v *TimerView) onStop() {
	v.controller.Stop()
}

// onUpdate is the controller callback. Ticks arrive on the UI thread through
// the controller's dispatcher, so the snapshot is rendered directly.
func (v *TimerView) onUpdate(snap model.Snapshot) {
	v.render(snap)
}

// render updates all outputs from a snapshot
func (v *TimerView) render(snap model.Snapshot) {
	v.last = snap

	v.counter.Text = strconv.Itoa(snap.Remaining)
	v.counter.Refresh()

	v.caption.Text = v.localization.StateText(snap.State)
	v.caption.Refresh()

	v.ring.SetProgress(snap.Progress)
}
