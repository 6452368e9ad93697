// Package ripple implements the lifecycle state machine for transient
// press-feedback effects. Zero or more ripples progress independently
// through spawn → grow → release → exit → removal; the sequencer owns the
// current set and the transition rules are pure functions over it.
//
// The package holds no timers: the minimum-visible-duration rule is checked
// against the clock at the next incoming event, and removal is driven
// entirely by the renderer reporting animation completion.
package ripple

import (
	"time"

	"github.com/lixenwraith/ripplefx/input"
)

// Ripple is the state record for one feedback effect instance.
// StartTime doubles as the stable identity key; no other id is assigned.
type Ripple struct {
	StartTime time.Time

	Holding bool // originating press/key is still active
	Entered bool // grow-in animation has visually completed
	Exiting bool // exit animation has been triggered
	Mounted bool // backing element must remain rendered

	// Copied from the triggering event at creation; opaque to the state
	// machine, consumed by the renderer
	X, Y     int
	Modality input.Modality
}

// sameRipple matches by the StartTime identity key. Tolerant of the caller
// holding a stale copy from an earlier snapshot: flag fields are ignored.
func sameRipple(a, b Ripple) bool {
	return a.StartTime.Equal(b.StartTime)
}
