package diagram

// Rect represents an axis-aligned rectangle as an origin plus a size.
// The origin is the bottom-left corner (the coordinate system is y-up).
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a rectangle from origin coordinates and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// MaxX returns the x coordinate of the rectangle's right edge.
func (r Rect) MaxX() float64 {
	return r.Origin.X + r.Size.W
}

// MaxY returns the y coordinate of the rectangle's top edge.
func (r Rect) MaxY() float64 {
	return r.Origin.Y + r.Size.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.W/2, Y: r.Origin.Y + r.Size.H/2}
}

// ContainsRect reports whether s lies entirely inside r, within tol on
// each edge. Used by tests to check Fit containment under rounding.
func (r Rect) ContainsRect(s Rect, tol float64) bool {
	return s.Origin.X >= r.Origin.X-tol &&
		s.Origin.Y >= r.Origin.Y-tol &&
		s.MaxX() <= r.MaxX()+tol &&
		s.MaxY() <= r.MaxY()+tol
}
