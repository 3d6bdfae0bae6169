package diagram

// Point represents a 2D point or vector.
//
// Points are also used as anchors: fractional coordinates in [0,1]²
// positioning a fitted rectangle inside its bounds, where (0,0) is the
// bottom-left corner and (1,1) the top-right.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// MulSize returns the point scaled component-wise by a size.
// Used to turn a fractional anchor into an absolute offset.
func (p Point) MulSize(sz Size) Point {
	return Point{X: p.X * sz.W, Y: p.Y * sz.H}
}

// AddSize returns the point translated by a size's components.
func (p Point) AddSize(sz Size) Point {
	return Point{X: p.X + sz.W, Y: p.Y + sz.H}
}
