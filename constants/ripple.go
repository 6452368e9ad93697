package constants

import "time"

// Ripple Lifecycle Timing
const (
	// MinVisibleDuration is the minimum time a ripple stays visible before it
	// may exit, regardless of how quickly the input was released
	MinVisibleDuration = 300 * time.Millisecond

	// EnterDuration is the nominal grow-in animation length
	EnterDuration = 250 * time.Millisecond

	// ExitDuration is the fade-out animation length
	ExitDuration = 300 * time.Millisecond
)
