package constants

// Ripple Rendering
const (
	// RingThickness is the radial width of the drawn ripple ring, in cells
	RingThickness = 1.6

	// CellAspect compensates for terminal cells being ~2x taller than wide
	CellAspect = 2.0
)

// IntensityRamp maps brightness quartiles to block glyphs (dim to bright)
var IntensityRamp = []rune{'░', '▒', '▓', '█'}
