package ui

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ProgressRing draws a circular determinate progress indicator filled
// clockwise from twelve o'clock. Changes of the target fraction are eased
// linearly over ProgressAnimationDuration unless Animate is false.
type ProgressRing struct {
	widget.BaseWidget

	Animate bool

	mu     sync.Mutex
	value  float64 // fraction currently drawn
	target float64
	anim   *fyne.Animation
}

// NewProgressRing creates a ring showing the given fraction without easing
func NewProgressRing(value float64) *ProgressRing {
	value = clampFraction(value)
	r := &ProgressRing{
		Animate: true,
		value:   value,
		target:  value,
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetProgress moves the ring toward target. A running animation is cancelled
// and the new one starts from the fraction currently drawn.
func (r *ProgressRing) SetProgress(target float64) {
	target = clampFraction(target)

	r.mu.Lock()
	if r.anim != nil {
		r.anim.Stop()
		r.anim = nil
	}
	from := r.value
	r.target = target
	if !r.Animate || from == target {
		r.value = target
		r.mu.Unlock()
		r.Refresh()
		return
	}

	anim := fyne.NewAnimation(ProgressAnimationDuration, func(done float32) {
		r.setValue(interpolate(from, target, done))
	})
	anim.Curve = fyne.AnimationLinear
	r.anim = anim
	r.mu.Unlock()

	anim.Start()
}

// Value returns the fraction currently drawn
func (r *ProgressRing) Value() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Target returns the fraction the ring is moving toward
func (r *ProgressRing) Target() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *ProgressRing) setValue(v float64) {
	r.mu.Lock()
	r.value = v
	r.mu.Unlock()
	r.Refresh()
}

// CreateRenderer implements fyne.Widget
func (r *ProgressRing) CreateRenderer() fyne.WidgetRenderer {
	rr := &progressRingRenderer{ring: r}
	rr.raster = canvas.NewRasterWithPixels(rr.pixel)
	return rr
}

type progressRingRenderer struct {
	ring   *ProgressRing
	raster *canvas.Raster
}

func (rr *progressRingRenderer) Layout(size fyne.Size) {
	rr.raster.Resize(size)
}

func (rr *progressRingRenderer) MinSize() fyne.Size {
	return fyne.NewSize(RingMinSize, RingMinSize)
}

func (rr *progressRingRenderer) Refresh() {
	rr.raster.Refresh()
}

func (rr *progressRingRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{rr.raster}
}

func (rr *progressRingRenderer) Destroy() {
	rr.ring.mu.Lock()
	defer rr.ring.mu.Unlock()
	if rr.ring.anim != nil {
		rr.ring.anim.Stop()
		rr.ring.anim = nil
	}
}

// pixel is called with raster pixel coordinates; the raster may be larger
// than the widget's logical size on high density displays.
func (rr *progressRingRenderer) pixel(x, y, w, h int) color.Color {
	scale := 1.0
	if size := rr.ring.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}

	inRing, filled := ringCoverage(x, y, w, h, scale, rr.ring.Value())
	if !inRing || !filled {
		return color.Transparent
	}
	return themeColor(ColorNameRing)
}

// ringCoverage reports whether pixel (x, y) of a w×h raster lies on the ring
// stroke and, if so, whether it is inside the filled arc for fraction.
func ringCoverage(x, y, w, h int, scale, fraction float64) (inRing, filled bool) {
	cx := float64(w) / 2
	cy := float64(h) / 2
	dx := float64(x) + 0.5 - cx
	dy := float64(y) + 0.5 - cy

	outer := math.Min(float64(w), float64(h))/2 - float64(RingPadding)*scale
	inner := outer - float64(RingStrokeWidth)*scale
	if inner < 0 {
		inner = 0
	}

	dist := math.Hypot(dx, dy)
	if dist < inner || dist > outer {
		return false, false
	}
	if fraction <= 0 {
		return true, false
	}

	// Clockwise angle from twelve o'clock, in turns.
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return true, angle/(2*math.Pi) <= fraction
}

func interpolate(from, to float64, done float32) float64 {
	return from + (to-from)*float64(done)
}

func clampFraction(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
