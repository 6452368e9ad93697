package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ripplefx/constants"
)

// Engine owns speaker initialization and blip playback.
// Handles graceful degradation: initialization failure flips the disabled
// flag and every later call becomes a no-op instead of an error.
type Engine struct {
	disabled atomic.Bool
	started  atomic.Bool
}

// NewEngine creates an engine. Start must be called before playback.
func NewEngine() *Engine {
	return &Engine{}
}

// Start initializes the speaker. Sets disabled on failure (no error
// returned; feedback audio is never worth aborting over).
func (e *Engine) Start() {
	sr := beep.SampleRate(constants.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(constants.AudioBufferDuration)); err != nil {
		e.disabled.Store(true)
		return
	}
	e.started.Store(true)
}

// Stop shuts the speaker down
func (e *Engine) Stop() {
	if e.started.Load() {
		speaker.Close()
	}
}

// Press plays the ripple-spawn feedback tone
func (e *Engine) Press() {
	e.play(constants.BlipPressFreq)
}

// Cancel plays the teardown feedback tone
func (e *Engine) Cancel() {
	e.play(constants.BlipCancelFreq)
}

func (e *Engine) play(freq float64) {
	if e.disabled.Load() || !e.started.Load() {
		return
	}
	streamer := &bufferStreamer{buf: blipBuffer(freq)}
	speaker.Play(&effects.Gain{
		Streamer: streamer,
		Gain:     constants.BlipGain - 1, // effects.Gain scales by 1+Gain
	})
}

// bufferStreamer streams a mono float buffer to both channels once
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

// Stream implements beep.Streamer
func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer
func (s *bufferStreamer) Err() error {
	return nil
}
