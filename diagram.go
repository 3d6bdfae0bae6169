package diagram

// Shape identifies the geometry a primitive leaf fills.
type Shape int

const (
	// ShapeEllipse fills the ellipse inscribed in the leaf's frame.
	ShapeEllipse Shape = iota
	// ShapeRectangle fills the leaf's entire frame.
	ShapeRectangle
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeEllipse:
		return "ellipse"
	case ShapeRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Diagram is an immutable diagram tree.
//
// The set of node kinds is closed: primitive leaves, horizontal and
// vertical composition, and annotations. Trees are built with the
// package's combinators and never mutated; combinators always wrap or
// combine, so sharing and cycles cannot arise by construction.
type Diagram interface {
	isDiagram()
}

// primitive is a leaf with a virtual (unscaled) footprint and a shape
// tag. The footprint is the sole source of truth for the leaf's aspect
// ratio; layout scales and positions it but never distorts it.
type primitive struct {
	size  Size
	shape Shape
}

// beside composes two diagrams horizontally.
type beside struct {
	left, right Diagram
}

// below composes two diagrams vertically, top over bottom.
type below struct {
	top, bottom Diagram
}

// annotated wraps a child with a rendering modifier.
type annotated struct {
	attr  attribute
	child Diagram
}

func (primitive) isDiagram() {}
func (beside) isDiagram()    {}
func (below) isDiagram()     {}
func (annotated) isDiagram() {}

// attribute is a closed sum of rendering modifiers.
type attribute interface {
	isAttribute()
}

// fillColor sets the surface fill color for the subtree it wraps.
type fillColor struct {
	color RGBA
}

// alignment re-fits the child's natural size within the current bounds
// using the given anchor.
type alignment struct {
	anchor Point
}

func (fillColor) isAttribute() {}
func (alignment) isAttribute() {}

// Primitive creates a leaf with the given virtual size and shape.
func Primitive(size Size, shape Shape) Diagram {
	return primitive{size: size, shape: shape}
}

// Square creates a square primitive with the given side length.
func Square(side float64) Diagram {
	return primitive{size: Size{W: side, H: side}, shape: ShapeRectangle}
}

// Rectangle creates a rectangular primitive with the given dimensions.
func Rectangle(w, h float64) Diagram {
	return primitive{size: Size{W: w, H: h}, shape: ShapeRectangle}
}

// Circle creates a circular primitive with the given radius. Its
// virtual footprint is the circle's bounding square (2r, 2r).
func Circle(radius float64) Diagram {
	return primitive{size: Size{W: 2 * radius, H: 2 * radius}, shape: ShapeEllipse}
}

// Ellipse creates an elliptical primitive inscribed in the given
// bounding dimensions.
func Ellipse(w, h float64) Diagram {
	return primitive{size: Size{W: w, H: h}, shape: ShapeEllipse}
}

// Beside places l and r next to each other horizontally, l to the left.
func Beside(l, r Diagram) Diagram {
	return beside{left: l, right: r}
}

// Below places t above b.
func Below(t, b Diagram) Diagram {
	return below{top: t, bottom: b}
}

// WithFill wraps d so its subtree is drawn with the given fill color.
func WithFill(c RGBA, d Diagram) Diagram {
	return annotated{attr: fillColor{color: c}, child: d}
}

// Align wraps d so it is re-fitted within its allotted bounds at the
// given fractional anchor. (0,0) is bottom-left, (1,1) top-right.
func Align(x, y float64, d Diagram) Diagram {
	return annotated{attr: alignment{anchor: Point{X: x, Y: y}}, child: d}
}

// AlignRight aligns d flush to the right edge, vertically centered.
func AlignRight(d Diagram) Diagram {
	return Align(1, 0.5, d)
}

// AlignTop aligns d flush to the top edge, horizontally centered.
func AlignTop(d Diagram) Diagram {
	return Align(0.5, 1, d)
}

// AlignBottom aligns d flush to the bottom edge, horizontally centered.
func AlignBottom(d Diagram) Diagram {
	return Align(0.5, 0, d)
}

// NaturalSize computes the virtual (unscaled) footprint of a diagram.
//
// It is a pure fold over the tree with no memoization: horizontal
// composition sums widths and takes the maximum height, vertical
// composition the converse, and annotations are transparent. The result
// drives proportional bounds splitting only; it is not a pixel size.
func NaturalSize(d Diagram) Size {
	switch n := d.(type) {
	case primitive:
		return n.size
	case beside:
		l, r := NaturalSize(n.left), NaturalSize(n.right)
		return Size{W: l.W + r.W, H: maxf(l.H, r.H)}
	case below:
		t, b := NaturalSize(n.top), NaturalSize(n.bottom)
		return Size{W: maxf(t.W, b.W), H: t.H + b.H}
	case annotated:
		return NaturalSize(n.child)
	default:
		return Size{}
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
