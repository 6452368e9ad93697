package render

import "github.com/lixenwraith/ripplefx/input"

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the rectangle's center point
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout maps screen positions to surfaces and implements hit testing for
// the event pump. First surface containing the point wins.
type Layout struct {
	Surfaces []*Surface
}

// Hit resolves a position to (target, surface). Inside a surface's child
// region the target is the child id while the surface stays the owner, so
// the classifier sees the event as bubbled. Outside everything both are zero.
func (l *Layout) Hit(x, y int) (target, surface input.SurfaceID) {
	for _, s := range l.Surfaces {
		if !s.Rect.Contains(x, y) {
			continue
		}
		if s.ChildID != 0 && s.ChildRect.Contains(x, y) {
			return s.ChildID, s.ID
		}
		return s.ID, s.ID
	}
	return 0, 0
}

// Find returns the surface with the given id, or nil
func (l *Layout) Find(id input.SurfaceID) *Surface {
	for _, s := range l.Surfaces {
		if s.ID == id {
			return s
		}
	}
	return nil
}
