// Package audio synthesizes short feedback blips and plays them through the
// beep speaker. All playback is fire-and-forget; when no audio backend is
// available the engine degrades to a silent no-op.
package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/ripplefx/constants"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// sine generates raw sine samples at the given frequency
func sine(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constants.AudioSampleRate)

	for i := 0; i < samples; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := int(attack.Seconds() * float64(constants.AudioSampleRate))
	releaseSamples := int(release.Seconds() * float64(constants.AudioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// blipBuffer renders one enveloped feedback tone
func blipBuffer(freq float64) floatBuffer {
	samples := int(constants.BlipDuration.Seconds() * float64(constants.AudioSampleRate))
	buf := sine(freq, samples)
	applyEnvelope(buf, constants.BlipAttack, constants.BlipRelease)
	return buf
}
