package input

// SurfaceID identifies a ripple surface or one of its descendant regions.
// Zero is never assigned to a real surface.
type SurfaceID uint32

// Action represents the input edge an event carries
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionRelease
	ActionCancel
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	BtnNone MouseButton = iota
	BtnLeft
	BtnMiddle
	BtnRight
	BtnWheelUp
	BtnWheelDown
)

// Key represents the keyboard identity of an event, reduced to what ripple
// triggering distinguishes: the activation keys and everything else
type Key uint8

const (
	KeyNone Key = iota
	KeyEnter
	KeySpace
	KeyOther
)

// Point is a position in surface coordinates
type Point struct {
	X, Y int
}

// Event is the raw interaction record handed to the classifier. Only the
// fields below are ever copied out of the host's native event; the native
// event itself is never retained.
type Event struct {
	Action  Action
	Target  SurfaceID // region the event originated on
	Surface SurfaceID // surface that owns the ripple set (dispatch target)
	Touches []Point   // active touch points, empty for mouse/keyboard
	X, Y    int       // pointer position when Touches is empty
	Button  MouseButton
	Key     Key
	Rune    rune // printable rune behind KeyOther, for host-level shortcuts
}

// Modality is the input channel class of an event
type Modality uint8

const (
	ModalityMouse Modality = iota
	ModalityTouch
	ModalityKeyboard
)

// String returns human-readable modality name
func (m Modality) String() string {
	switch m {
	case ModalityTouch:
		return "touch"
	case ModalityKeyboard:
		return "keyboard"
	default:
		return "mouse"
	}
}
