package terminal

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripplefx/events"
	"github.com/lixenwraith/ripplefx/input"
)

// HitTester resolves a screen position to the region it lands on and the
// surface that would dispatch the event. The two differ when the position is
// inside a descendant region, which is how bubbled events become observable.
// Both are zero outside every surface.
type HitTester interface {
	Hit(x, y int) (target, surface input.SurfaceID)
}

// Pump reads tcell events on its own goroutine and pushes translated input
// events to the queue. The frame loop drains the queue, so every ripple
// transition runs on a single consumer regardless of terminal event timing.
type Pump struct {
	screen tcell.Screen
	queue  *events.Queue
	hit    HitTester

	focus atomic.Uint32 // SurfaceID receiving keyboard events

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}

	// Previous button mask, pump goroutine only. tcell reports the full
	// mask per event; press/release edges are derived by diffing.
	buttons tcell.ButtonMask
}

// NewPump creates a pump. Start must be called to begin reading.
func NewPump(screen tcell.Screen, queue *events.Queue, hit HitTester) *Pump {
	return &Pump{
		screen: screen,
		queue:  queue,
		hit:    hit,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// SetFocus routes subsequent keyboard events to the given surface
func (p *Pump) SetFocus(id input.SurfaceID) {
	p.focus.Store(uint32(id))
}

// Quit returns a channel closed when the user requested exit (ESC or Ctrl+C)
func (p *Pump) Quit() <-chan struct{} {
	return p.quit
}

// Done returns a channel closed when the read loop has fully stopped
func (p *Pump) Done() <-chan struct{} {
	return p.done
}

// Start begins reading terminal events in a goroutine. The loop ends when
// the screen is finalized or quit is requested.
func (p *Pump) Start() {
	go p.loop()
}

func (p *Pump) loop() {
	defer close(p.done)
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			if p.handleKey(tev) {
				return
			}
		case *tcell.EventMouse:
			p.handleMouse(tev)
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

// handleKey translates a key event. Returns true when the loop should stop.
func (p *Pump) handleKey(tev *tcell.EventKey) bool {
	switch tev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.quitOnce.Do(func() { close(p.quit) })
		return true
	case tcell.KeyEnter:
		p.pushKeyTap(input.KeyEnter, 0)
	case tcell.KeyRune:
		r := tev.Rune()
		if r == ' ' {
			p.pushKeyTap(input.KeySpace, r)
		} else {
			p.pushKeyTap(input.KeyOther, r)
		}
	default:
		p.pushKeyTap(input.KeyOther, 0)
	}
	return false
}

// pushKeyTap emits a press/release pair for the focused surface. Terminals
// report no key-up, so a keystroke is modeled as an instantaneous tap; the
// minimum-visible-duration rule keeps the ripple from flickering.
func (p *Pump) pushKeyTap(key input.Key, r rune) {
	id := input.SurfaceID(p.focus.Load())
	ev := input.Event{
		Target:  id,
		Surface: id,
		Key:     key,
		Rune:    r,
	}
	ev.Action = input.ActionPress
	p.queue.Push(ev)
	ev.Action = input.ActionRelease
	p.queue.Push(ev)
}

// handleMouse diffs the button mask against the previous event and emits
// press/release edges for the position under the pointer
func (p *Pump) handleMouse(tev *tcell.EventMouse) {
	x, y := tev.Position()
	current := tev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := current &^ p.buttons
	released := p.buttons &^ current
	p.buttons = current

	target, surface := p.hit.Hit(x, y)

	for mask, btn := range buttonMap {
		if pressed&mask != 0 {
			p.queue.Push(input.Event{
				Action:  input.ActionPress,
				Target:  target,
				Surface: surface,
				X:       x,
				Y:       y,
				Button:  btn,
			})
		}
		if released&mask != 0 {
			p.queue.Push(input.Event{
				Action:  input.ActionRelease,
				Target:  target,
				Surface: surface,
				X:       x,
				Y:       y,
				Button:  btn,
			})
		}
	}
}

// buttonMap translates tcell button bits. Button2 is the right button in
// tcell's numbering.
var buttonMap = map[tcell.ButtonMask]input.MouseButton{
	tcell.Button1: input.BtnLeft,
	tcell.Button2: input.BtnRight,
	tcell.Button3: input.BtnMiddle,
}
