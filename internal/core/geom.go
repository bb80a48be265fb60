// Package core holds the platform-neutral types shared by games and the
// terminal front end: input frames, the screen buffer and runtime config.
// Nothing here imports Bubble Tea.
package core

// Rect is an axis-aligned screen area in character cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w×h rectangle centered in an outerW×outerH area.
// The corner is clamped to the origin when the area is too small.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return Rect{X: max(0, (outerW-w)/2), Y: max(0, (outerH-h)/2), W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}
