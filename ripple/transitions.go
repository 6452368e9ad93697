package ripple

import (
	"time"

	"github.com/lixenwraith/ripplefx/constants"
	"github.com/lixenwraith/ripplefx/input"
)

// Transition rules. Each function is total over (set, event): when the
// precondition is not met it returns the input set unchanged. Sets are
// treated as immutable values; a changed result is always a fresh slice so
// previously handed-out snapshots stay valid.

// hasTouch reports whether any ripple in the set was spawned by touch
func hasTouch(set []Ripple) bool {
	for i := range set {
		if set[i].Modality == input.ModalityTouch {
			return true
		}
	}
	return false
}

// create appends r unless r is a synthesized mouse follow-up to a touch
// ripple still in the set. Some platforms emit a mouse click shortly after a
// touch tap; without this guard a single tap would double-ripple.
func create(set []Ripple, r Ripple) []Ripple {
	if r.Modality != input.ModalityTouch && hasTouch(set) {
		return set
	}
	next := make([]Ripple, len(set)+1)
	copy(next, set)
	next[len(set)] = r
	return next
}

// release marks the first held, non-exiting ripple as released. The ripple
// exits immediately if its grow-in already finished or it has been visible
// past the minimum duration; otherwise the later entered event decides.
func release(set []Ripple, now time.Time) []Ripple {
	for i := range set {
		r := set[i]
		if !r.Holding || r.Exiting {
			continue
		}
		r.Holding = false
		r.Exiting = r.Entered || now.Sub(r.StartTime) > constants.MinVisibleDuration
		return replace(set, i, r)
	}
	return set
}

// entered marks the matching ripple's grow-in as complete. Mirrors release:
// whichever of "press released" and "grow finished" happens last decides exit
// eligibility, and the minimum-duration clause forces exit once the ripple
// has been visible long enough even if the press is still held.
func entered(set []Ripple, target Ripple, now time.Time) []Ripple {
	for i := range set {
		r := set[i]
		if !sameRipple(r, target) || r.Exiting {
			continue
		}
		r.Entered = true
		r.Exiting = !r.Holding || now.Sub(r.StartTime) > constants.MinVisibleDuration
		return replace(set, i, r)
	}
	return set
}

// remove deletes the matching ripple, preserving order. A second remove for
// the same ripple finds no match and is a no-op.
func remove(set []Ripple, target Ripple) []Ripple {
	for i := range set {
		if !sameRipple(set[i], target) {
			continue
		}
		next := make([]Ripple, 0, len(set)-1)
		next = append(next, set[:i]...)
		next = append(next, set[i+1:]...)
		return next
	}
	return set
}

// cancel tears down every ripple at once. With ease they are released and
// sent through the normal exit animation; without it the set is dropped on
// the floor.
func cancel(set []Ripple, ease bool) []Ripple {
	if !ease {
		return nil
	}
	if len(set) == 0 {
		return set
	}
	next := make([]Ripple, len(set))
	for i, r := range set {
		r.Holding = false
		r.Exiting = true
		r.Mounted = true
		next[i] = r
	}
	return next
}

// replace returns a copy of set with index i swapped for r
func replace(set []Ripple, i int, r Ripple) []Ripple {
	next := make([]Ripple, len(set))
	copy(next, set)
	next[i] = r
	return next
}
