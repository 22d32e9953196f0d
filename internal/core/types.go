// Package core provides shared types for the component tree, the event
// loop and the key-routing subsystems.
// This package breaks import cycles between component, focus, popup and event.
package core

import "fmt"

// Handle identifies a component in a component.Tree.
// The zero Handle identifies no component.
type Handle uint32

// NoHandle is the invalid handle.
const NoHandle Handle = 0

// Valid reports whether h may identify a component.
func (h Handle) Valid() bool {
	return h != NoHandle
}

// ListenerID identifies a registered listener for later removal.
type ListenerID uint64

// Point is a cell position in screen coordinates.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// Rect is a rectangle of cells. The zero Rect is empty.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// IsEmpty returns true if the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersect returns the overlap of r and other.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Orientation selects horizontal or vertical arrangement.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Validate panics with a UsageError if o is not a known orientation.
func (o Orientation) Validate() {
	if o != Horizontal && o != Vertical {
		PanicUsage("orientation", "invalid orientation %d", int(o))
	}
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}
