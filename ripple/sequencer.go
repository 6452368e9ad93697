package ripple

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/ripplefx/input"
)

// Sequencer owns the live ripple set for one surface and exposes the five
// trigger operations. Transitions run to completion under the lock, so the
// set moves atomically from one valid snapshot to the next regardless of how
// events interleave across ripple instances.
//
// disableSpacebarClick lives in an atomic cell read at call time, so the
// methods keep stable identity across configuration changes and may be
// handed out once as callbacks.
type Sequencer struct {
	mu    sync.Mutex
	set   []Ripple
	clock Clock

	disableSpacebarClick atomic.Bool
}

// New creates a sequencer on the system clock
func New() *Sequencer {
	return NewWithClock(systemClock{})
}

// NewWithClock creates a sequencer on the given clock
func NewWithClock(clock Clock) *Sequencer {
	return &Sequencer{clock: clock}
}

// SetDisableSpacebarClick updates the spacebar suppression flag. Takes
// effect on the next Create call.
func (s *Sequencer) SetDisableSpacebarClick(disabled bool) {
	s.disableSpacebarClick.Store(disabled)
}

// Create classifies the event and, when it qualifies, appends a new held
// ripple. Returns the created ripple and whether one was created: bubbled
// events, non-trigger inputs, and mouse events debounced against an inflight
// touch ripple all report false.
func (s *Sequencer) Create(ev input.Event) (Ripple, bool) {
	if input.Bubbled(ev) || !input.Rippleable(ev, s.disableSpacebarClick.Load()) {
		return Ripple{}, false
	}

	pos := input.Position(ev)
	r := Ripple{
		StartTime: s.clock.Now(),
		Holding:   true,
		Mounted:   true,
		X:         pos.X,
		Y:         pos.Y,
		Modality:  input.Classify(ev),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := create(s.set, r)
	created := len(next) > len(s.set)
	s.set = next
	return r, created
}

// Release reacts to the originating input being released. No-op when no
// ripple is currently held.
func (s *Sequencer) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = release(s.set, s.clock.Now())
}

// Entered records that the grow-in animation of r has visually completed.
// No-op when r is no longer in the set or already exiting.
func (s *Sequencer) Entered(r Ripple) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = entered(s.set, r, s.clock.Now())
}

// Remove drops r from the set once its exit animation has visually
// completed. No-op when r is no longer in the set.
func (s *Sequencer) Remove(r Ripple) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = remove(s.set, r)
}

// Cancel tears down all ripples. With ease they play their exit animation
// and are removed by the renderer as usual; without it the set empties
// immediately.
func (s *Sequencer) Cancel(ease bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = cancel(s.set, ease)
}

// Snapshot returns the current ripple set in insertion order, which is also
// render z-order. The returned slice is the caller's to keep; it never
// aliases sequencer state.
func (s *Sequencer) Snapshot() []Ripple {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.set) == 0 {
		return nil
	}
	out := make([]Ripple, len(s.set))
	copy(out, s.set)
	return out
}

// Len returns the number of live ripples
func (s *Sequencer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.set)
}
