package render

import (
	"testing"
	"time"

	"github.com/lixenwraith/ripplefx/constants"
	"github.com/lixenwraith/ripplefx/input"
	"github.com/lixenwraith/ripplefx/ripple"
)

func pressOn(id input.SurfaceID, x, y int) input.Event {
	return input.Event{
		Action:  input.ActionPress,
		Target:  id,
		Surface: id,
		X:       x,
		Y:       y,
		Button:  input.BtnLeft,
	}
}

// TestSurfaceAdvanceLifecycle walks a ripple through the full renderer-driven
// lifecycle: grow-in completion, release, exit fade, removal
func TestSurfaceAdvanceLifecycle(t *testing.T) {
	clock := ripple.NewManualClock(t0)
	surf := &Surface{
		ID:   1,
		Rect: Rect{X: 0, Y: 0, W: 20, H: 10},
		Seq:  ripple.NewWithClock(clock),
	}

	surf.Seq.Create(pressOn(1, 5, 5))

	// Mid-growth: no milestone yet
	surf.Advance(t0.Add(constants.EnterDuration / 2))
	if snap := surf.Seq.Snapshot(); snap[0].Entered {
		t.Fatalf("Entered delivered too early: %+v", snap[0])
	}

	// Grow-in completes while still held: entered but not exiting
	clock.SetTime(t0.Add(constants.EnterDuration))
	surf.Advance(t0.Add(constants.EnterDuration))
	snap := surf.Seq.Snapshot()
	if !snap[0].Entered {
		t.Fatalf("Entered not delivered at grow-in completion")
	}
	if snap[0].Exiting {
		t.Fatalf("Held ripple must not exit on entered: %+v", snap[0])
	}

	// Release after grow-in: exit starts
	clock.SetTime(t0.Add(constants.EnterDuration + 10*time.Millisecond))
	surf.Seq.Release()
	snap = surf.Seq.Snapshot()
	if !snap[0].Exiting {
		t.Fatalf("Released, entered ripple must exit: %+v", snap[0])
	}

	// First advance after exiting only starts the fade clock
	exitSeen := t0.Add(constants.EnterDuration + 20*time.Millisecond)
	surf.Advance(exitSeen)
	if surf.Seq.Len() != 1 {
		t.Fatalf("Ripple removed before fade completed")
	}

	// Fade completes: renderer reports removal
	surf.Advance(exitSeen.Add(constants.ExitDuration))
	if surf.Seq.Len() != 0 {
		t.Errorf("Ripple not removed after exit fade")
	}
	if len(surf.exitStart) != 0 {
		t.Errorf("Exit clock not cleaned up: %v", surf.exitStart)
	}
}

// TestSurfaceAdvanceAfterHardCancel checks the renderer copes with the set
// vanishing underneath it
func TestSurfaceAdvanceAfterHardCancel(t *testing.T) {
	clock := ripple.NewManualClock(t0)
	surf := &Surface{
		ID:   1,
		Rect: Rect{X: 0, Y: 0, W: 20, H: 10},
		Seq:  ripple.NewWithClock(clock),
	}

	surf.Seq.Create(pressOn(1, 5, 5))
	surf.Seq.Cancel(true)
	surf.Advance(t0.Add(time.Millisecond)) // fade clock starts

	surf.Seq.Cancel(false)
	surf.Advance(t0.Add(2 * time.Millisecond))

	if surf.Seq.Len() != 0 {
		t.Errorf("Set must stay empty after hard cancel")
	}
	if len(surf.exitStart) != 0 {
		t.Errorf("Stale exit clocks survived hard cancel: %v", surf.exitStart)
	}
}
