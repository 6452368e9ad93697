// Package render draws ripple surfaces on a tcell screen and plays the
// animation-layer role in the ripple contract: it reports grow-in completion
// via Entered and exit completion via Remove, driving the sequencer's
// lifecycle forward.
package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripplefx/constants"
	"github.com/lixenwraith/ripplefx/input"
	"github.com/lixenwraith/ripplefx/ripple"
)

// Surface is one interactive rectangle owning a ripple sequencer.
// An optional child region (ChildID/ChildRect) is rendered inert: events
// landing there carry the child as target and are rejected as bubbled.
type Surface struct {
	ID    input.SurfaceID
	Rect  Rect
	Label string
	Color [3]uint8 // ripple base color
	Seq   *ripple.Sequencer

	ChildID   input.SurfaceID
	ChildRect Rect

	// Exit animations are timed render-side: the sequencer only flags
	// Exiting, the renderer decides when the fade has finished. Keyed by
	// StartTime since that is the ripple identity.
	exitStart map[int64]time.Time
}

// Advance delivers animation milestones for the current snapshot: Entered
// once grow-in completes, Remove once the exit fade completes. Call once per
// frame before Draw.
func (s *Surface) Advance(now time.Time) {
	if s.exitStart == nil {
		s.exitStart = make(map[int64]time.Time)
	}

	snapshot := s.Seq.Snapshot()
	live := make(map[int64]bool, len(snapshot))

	for _, r := range snapshot {
		key := r.StartTime.UnixNano()
		live[key] = true

		if r.Exiting {
			begin, ok := s.exitStart[key]
			if !ok {
				s.exitStart[key] = now
				continue
			}
			if ExitProgress(begin, now) >= 1 {
				s.Seq.Remove(r)
				delete(s.exitStart, key)
			}
			continue
		}

		if !r.Entered && GrowProgress(r.StartTime, now) >= 1 {
			s.Seq.Entered(r)
		}
	}

	// Drop exit clocks for ripples no longer in the set
	for key := range s.exitStart {
		if !live[key] {
			delete(s.exitStart, key)
		}
	}
}

// Draw paints the surface background, its ripples, the inert child region,
// and the label
func (s *Surface) Draw(screen tcell.Screen, now time.Time, focused bool) {
	bg := tcell.StyleDefault.Background(tcell.NewRGBColor(24, 24, 32))
	for y := s.Rect.Y; y < s.Rect.Y+s.Rect.H; y++ {
		for x := s.Rect.X; x < s.Rect.X+s.Rect.W; x++ {
			screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for _, r := range s.Seq.Snapshot() {
		if !r.Mounted {
			continue
		}
		s.drawRipple(screen, r, now)
	}

	if s.ChildID != 0 {
		childStyle := tcell.StyleDefault.
			Background(tcell.NewRGBColor(60, 40, 40)).
			Foreground(tcell.ColorGray)
		for y := s.ChildRect.Y; y < s.ChildRect.Y+s.ChildRect.H; y++ {
			for x := s.ChildRect.X; x < s.ChildRect.X+s.ChildRect.W; x++ {
				screen.SetContent(x, y, '·', nil, childStyle)
			}
		}
	}

	labelStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(24, 24, 32)).Foreground(tcell.ColorWhite)
	if focused {
		labelStyle = labelStyle.Bold(true).Underline(true)
	}
	lx := s.Rect.X + 1
	for i, ch := range s.Label {
		if lx+i >= s.Rect.X+s.Rect.W {
			break
		}
		screen.SetContent(lx+i, s.Rect.Y, ch, nil, labelStyle)
	}
}

func (s *Surface) drawRipple(screen tcell.Screen, r ripple.Ripple, now time.Time) {
	radius := RippleRadius(GrowProgress(r.StartTime, now), [2]int{r.X, r.Y}, s.Rect)

	fade := 1.0
	if r.Exiting {
		if begin, ok := s.exitStart[r.StartTime.UnixNano()]; ok {
			fade = 1 - ExitProgress(begin, now)
		}
	}
	if fade <= 0 {
		return
	}

	for y := s.Rect.Y; y < s.Rect.Y+s.Rect.H; y++ {
		for x := s.Rect.X; x < s.Rect.X+s.Rect.W; x++ {
			dx := float64(x - r.X)
			dy := float64(y-r.Y) * constants.CellAspect
			level := CellIntensity(math.Hypot(dx, dy), radius) * fade
			glyph, ok := RampGlyph(level)
			if !ok {
				continue
			}
			color := tcell.NewRGBColor(
				int32(float64(s.Color[0])*level),
				int32(float64(s.Color[1])*level),
				int32(float64(s.Color[2])*level),
			)
			style := tcell.StyleDefault.
				Background(tcell.NewRGBColor(24, 24, 32)).
				Foreground(color)
			screen.SetContent(x, y, glyph, nil, style)
		}
	}
}
