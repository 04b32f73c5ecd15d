package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestRingCoverage(t *testing.T) {
	// 228x228 raster: outer radius 100, inner radius 90 at scale 1
	const size = 228

	tests := []struct {
		name     string
		x, y     int
		fraction float64
		inRing   bool
		filled   bool
	}{
		{"center is empty", 114, 114, 1, false, false},
		{"corner is outside", 0, 0, 1, false, false},
		{"twelve o'clock filled", 114, 18, 0.01, true, true},
		{"three o'clock filled at half", 208, 114, 0.5, true, true},
		{"six o'clock empty at quarter", 113, 208, 0.25, true, false},
		{"six o'clock filled at three quarters", 113, 208, 0.75, true, true},
		{"nine o'clock empty at half", 19, 113, 0.5, true, false},
		{"nothing filled at zero", 114, 18, 0, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inRing, filled := ringCoverage(tc.x, tc.y, size, size, 1, tc.fraction)
			assert.Equal(t, tc.inRing, inRing, "inRing")
			assert.Equal(t, tc.filled, filled, "filled")
		})
	}
}

func TestRingCoverage_ScalesStroke(t *testing.T) {
	// At scale 2 the stroke is 20px wide, so a point 15px inside the outer edge is on the ring.
	const size = 456
	outer := size/2 - int(RingPadding)*2
	y := size/2 - outer + 15

	inRing, _ := ringCoverage(size/2, y, size, size, 2, 1)
	assert.True(t, inRing)

	inRing, _ = ringCoverage(size/2, y, size, size, 1, 1)
	assert.False(t, inRing, "15px inside exceeds the unscaled stroke")
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 1.0, interpolate(1, 0.5, 0))
	assert.Equal(t, 0.75, interpolate(1, 0.5, 0.5))
	assert.Equal(t, 0.5, interpolate(1, 0.5, 1))
}

func TestClampFraction(t *testing.T) {
	assert.Equal(t, 0.0, clampFraction(-0.2))
	assert.Equal(t, 1.0, clampFraction(1.7))
	assert.Equal(t, 0.3, clampFraction(0.3))
	assert.Equal(t, 0.0, clampFraction(math.NaN()))
}

func TestProgressRing_SetProgressWithoutAnimation(t *testing.T) {
	test.NewApp()

	ring := NewProgressRing(1)
	ring.Animate = false

	ring.SetProgress(0.4)
	assert.Equal(t, 0.4, ring.Value())
	assert.Equal(t, 0.4, ring.Target())

	ring.SetProgress(2)
	assert.Equal(t, 1.0, ring.Value())
}

func TestProgressRing_SetProgressAnimatedTracksTarget(t *testing.T) {
	test.NewApp()

	ring := NewProgressRing(1)
	ring.SetProgress(0.9)

	assert.Equal(t, 0.9, ring.Target())
	v := ring.Value()
	assert.True(t, v >= 0.9 && v <= 1.0, "drawn value %v must lie between start and target", v)
}

func TestProgressRing_MinSize(t *testing.T) {
	test.NewApp()

	ring := NewProgressRing(0.5)
	minSize := ring.MinSize()
	assert.Equal(t, RingMinSize, minSize.Width)
	assert.Equal(t, RingMinSize, minSize.Height)
}
