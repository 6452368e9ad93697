package render

import (
	"math"
	"time"

	"github.com/lixenwraith/ripplefx/constants"
)

// Pure animation math, kept free of screen state for testability.

// GrowProgress returns grow-in completion in [0,1] for a ripple started at
// start, as of now
func GrowProgress(start, now time.Time) float64 {
	return clamp01(float64(now.Sub(start)) / float64(constants.EnterDuration))
}

// ExitProgress returns fade-out completion in [0,1] for an exit that began
// at exitStart, as of now
func ExitProgress(exitStart, now time.Time) float64 {
	return clamp01(float64(now.Sub(exitStart)) / float64(constants.ExitDuration))
}

// RippleRadius maps grow progress onto the distance from origin to the
// farthest corner of the surface, so a fully grown ripple covers it
func RippleRadius(progress float64, origin [2]int, r Rect) float64 {
	var far float64
	for _, cx := range []int{r.X, r.X + r.W - 1} {
		for _, cy := range []int{r.Y, r.Y + r.H - 1} {
			dx := float64(cx - origin[0])
			dy := float64(cy-origin[1]) * constants.CellAspect
			if d := math.Hypot(dx, dy); d > far {
				far = d
			}
		}
	}
	return progress * far
}

// CellIntensity returns the brightness contribution of a ripple with the
// given radius at a cell dist away from its origin: a filled disc with a
// soft edge one ring-thickness wide
func CellIntensity(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return clamp01((radius-dist)/constants.RingThickness + 1)
}

// RampGlyph picks the block glyph for a brightness level in [0,1].
// Returns (glyph, false) for levels too dim to draw.
func RampGlyph(level float64) (rune, bool) {
	if level < 0.05 {
		return 0, false
	}
	idx := int(level * float64(len(constants.IntensityRamp)))
	if idx >= len(constants.IntensityRamp) {
		idx = len(constants.IntensityRamp) - 1
	}
	return constants.IntensityRamp[idx], true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
