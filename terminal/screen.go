// Package terminal wraps tcell screen setup and translates raw terminal
// events into the input model consumed by the ripple classifier.
package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Init creates and initializes a tcell screen with mouse reporting enabled
func Init() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// EmergencyReset writes raw escape codes to restore a sane terminal after a
// crash, without relying on screen state that may itself be corrupted
func EmergencyReset(w io.Writer) {
	// Reset colors/attrs, show cursor, disable mouse reporting, main buffer
	fmt.Fprint(w, "\x1b[0m\x1b[?25h\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l\x1b[?1049l")
}
