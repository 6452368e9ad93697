package constants

import "time"

// Audio Synthesis
const (
	// AudioSampleRate is the mixer sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer (latency/underrun tradeoff)
	AudioBufferDuration = 50 * time.Millisecond

	// BlipPressFreq is the press feedback tone frequency in Hz
	BlipPressFreq = 880.0

	// BlipCancelFreq is the cancel feedback tone frequency in Hz
	BlipCancelFreq = 220.0

	// BlipDuration is the feedback tone length
	BlipDuration = 60 * time.Millisecond

	// BlipAttack and BlipRelease shape the tone envelope
	BlipAttack  = 5 * time.Millisecond
	BlipRelease = 30 * time.Millisecond

	// BlipGain scales blip amplitude to avoid clipping when blips overlap
	BlipGain = 0.35
)
