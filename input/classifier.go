package input

// Classify derives the modality from event shape: touch points win over
// everything, then key identity, then mouse
func Classify(ev Event) Modality {
	switch {
	case len(ev.Touches) > 0:
		return ModalityTouch
	case ev.Key != KeyNone:
		return ModalityKeyboard
	default:
		return ModalityMouse
	}
}

// Rippleable reports whether the event is a valid ripple trigger.
// Secondary/auxiliary mouse buttons never trigger. Keyboard triggers only on
// the activation keys, and Space is suppressed when disableSpacebarClick is
// set. Touch always triggers.
func Rippleable(ev Event, disableSpacebarClick bool) bool {
	switch Classify(ev) {
	case ModalityKeyboard:
		switch ev.Key {
		case KeyEnter:
			return true
		case KeySpace:
			return !disableSpacebarClick
		default:
			return false
		}
	case ModalityMouse:
		return ev.Button == BtnLeft
	default:
		return true
	}
}

// Bubbled reports whether the event originated on a descendant region rather
// than the surface itself. Bubbled events must not spawn a ripple here.
func Bubbled(ev Event) bool {
	return ev.Target != ev.Surface
}

// Position resolves the event position. Touch coordinates take priority over
// pointer coordinates when both are present.
func Position(ev Event) Point {
	if len(ev.Touches) > 0 {
		return ev.Touches[0]
	}
	return Point{X: ev.X, Y: ev.Y}
}
