package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripplefx/audio"
	"github.com/lixenwraith/ripplefx/constants"
	"github.com/lixenwraith/ripplefx/events"
	"github.com/lixenwraith/ripplefx/input"
	"github.com/lixenwraith/ripplefx/render"
	"github.com/lixenwraith/ripplefx/ripple"
	"github.com/lixenwraith/ripplefx/terminal"
)

// config holds demo settings, overridable via RIPPLETEST_* env vars
type config struct {
	NoSpacebar bool `env:"RIPPLETEST_NO_SPACEBAR"`
	Mute       bool `env:"RIPPLETEST_MUTE"`
}

const (
	surfaceMouse    input.SurfaceID = 1
	surfaceKeyboard input.SurfaceID = 2
	surfaceNested   input.SurfaceID = 3
	regionChild     input.SurfaceID = 4
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mRIPPLETEST CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse environment: %v\n", err)
		os.Exit(1)
	}
	noSpacebar := flag.Bool("no-spacebar", cfg.NoSpacebar, "Suppress ripples on spacebar activation")
	mute := flag.Bool("mute", cfg.Mute, "Disable audio feedback")
	flag.Parse()

	screen, err := terminal.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	width, height := screen.Size()

	// Three surfaces: plain mouse target, keyboard focus target, and one
	// with an inert child region that demonstrates bubbled-event rejection
	surfaces := []*render.Surface{
		{
			ID:    surfaceMouse,
			Rect:  render.Rect{X: 2, Y: 2, W: width/2 - 4, H: height/2 - 3},
			Label: " Mouse ",
			Color: [3]uint8{90, 160, 255},
			Seq:   ripple.New(),
		},
		{
			ID:    surfaceKeyboard,
			Rect:  render.Rect{X: width / 2, Y: 2, W: width/2 - 2, H: height/2 - 3},
			Label: " Keyboard (focused) ",
			Color: [3]uint8{120, 230, 140},
			Seq:   ripple.New(),
		},
		{
			ID:      surfaceNested,
			Rect:    render.Rect{X: 2, Y: height / 2, W: width - 4, H: height/2 - 2},
			Label:   " Nested (dotted region bubbles, no ripple) ",
			Color:   [3]uint8{240, 170, 90},
			Seq:     ripple.New(),
			ChildID: regionChild,
			ChildRect: render.Rect{
				X: 2 + (width-4)/3,
				Y: height/2 + (height/2-2)/3,
				W: (width - 4) / 3,
				H: (height/2 - 2) / 3,
			},
		},
	}
	layout := &render.Layout{Surfaces: surfaces}

	setSpacebar := func(disabled bool) {
		for _, s := range surfaces {
			s.Seq.SetDisableSpacebarClick(disabled)
		}
	}
	setSpacebar(*noSpacebar)
	spacebarDisabled := *noSpacebar

	sound := audio.NewEngine()
	if !*mute {
		sound.Start()
		defer sound.Stop()
	}

	queue := events.NewQueue()
	pump := terminal.NewPump(screen, queue, layout)
	pump.SetFocus(surfaceKeyboard)
	pump.Start()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-pump.Quit():
			return
		case <-ticker.C:
		}

		for _, ev := range queue.Drain() {
			dispatch(ev, layout, sound, func() {
				spacebarDisabled = !spacebarDisabled
				setSpacebar(spacebarDisabled)
			})
		}

		now := time.Now()
		for _, s := range surfaces {
			s.Advance(now)
		}

		screen.Clear()
		drawHelp(screen, width, spacebarDisabled)
		for _, s := range surfaces {
			s.Draw(screen, now, s.ID == surfaceKeyboard)
		}
		screen.Show()
	}
}

// dispatch routes one drained event into the owning sequencer. Runs on the
// frame loop only, so all transitions stay serialized.
func dispatch(ev input.Event, layout *render.Layout, sound *audio.Engine, toggleSpacebar func()) {
	// Demo control keys arrive as KeyOther taps on the focused surface.
	// Neither edge may reach a sequencer: the release would otherwise pair
	// with an unrelated held ripple.
	if ev.Key == input.KeyOther {
		if ev.Action != input.ActionPress {
			return
		}
		switch ev.Rune {
		case 's':
			toggleSpacebar()
		case 't':
			touchTap(layout.Find(surfaceMouse), sound)
		case 'c':
			for _, s := range layout.Surfaces {
				s.Seq.Cancel(true)
			}
			sound.Cancel()
		case 'x':
			for _, s := range layout.Surfaces {
				s.Seq.Cancel(false)
			}
			sound.Cancel()
		}
		return
	}

	surf := layout.Find(ev.Surface)
	if surf == nil {
		return
	}

	switch ev.Action {
	case input.ActionPress:
		if input.Classify(ev) == input.ModalityKeyboard {
			// Keyboard ripples spawn from the surface center
			ev.X, ev.Y = surf.Rect.Center()
		}
		if _, created := surf.Seq.Create(ev); created {
			sound.Press()
		}
	case input.ActionRelease:
		surf.Seq.Release()
	case input.ActionCancel:
		surf.Seq.Cancel(false)
	}
}

// touchTap simulates a touch tap followed by the platform-synthesized mouse
// click, which the touch/mouse debounce guard must swallow
func touchTap(surf *render.Surface, sound *audio.Engine) {
	if surf == nil {
		return
	}
	cx, cy := surf.Rect.Center()

	press := input.Event{
		Action:  input.ActionPress,
		Target:  surf.ID,
		Surface: surf.ID,
		Touches: []input.Point{{X: cx, Y: cy}},
	}
	if _, created := surf.Seq.Create(press); created {
		sound.Press()
	}
	surf.Seq.Release()

	// Trailing synthetic click at the same spot; must not double-ripple
	click := input.Event{
		Action:  input.ActionPress,
		Target:  surf.ID,
		Surface: surf.ID,
		X:       cx,
		Y:       cy,
		Button:  input.BtnLeft,
	}
	surf.Seq.Create(click)
}

func drawHelp(screen tcell.Screen, width int, spacebarDisabled bool) {
	spacebar := "on"
	if spacebarDisabled {
		spacebar = "off"
	}
	help := fmt.Sprintf(
		" click: ripple | enter/space: key ripple | t: touch tap | s: spacebar ripple [%s] | c: ease cancel | x: hard cancel | esc: quit",
		spacebar,
	)
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, ch := range help {
		if i >= width {
			break
		}
		screen.SetContent(i, 0, ch, nil, style)
	}
}
