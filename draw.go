package diagram

// anchorCenter centers a primitive's frame within its allotted bounds.
var anchorCenter = Point{X: 0.5, Y: 0.5}

// Draw renders a diagram into the given bounds of a surface.
//
// The walk is bounds-first: composition nodes split their bounds among
// children in proportion to the children's natural sizes, and leaves
// fit their footprint into whatever region remains. Children are drawn
// in a deterministic order, left before right and top before bottom, so
// recorded call sequences are reproducible.
//
// The first surface error aborts the walk and is returned; any fill
// colors pushed on the way down are still popped.
func Draw(d Diagram, s Surface, bounds Rect) error {
	switch n := d.(type) {
	case primitive:
		frame := Fit(n.size, anchorCenter, bounds)
		Logger().Debug("diagram: fill",
			"shape", n.shape.String(),
			"x", frame.Origin.X, "y", frame.Origin.Y,
			"w", frame.Size.W, "h", frame.Size.H)
		if n.shape == ShapeEllipse {
			return s.FillEllipse(frame)
		}
		return s.FillRectangle(frame)

	case beside:
		lb, rb := SplitHorizontal(NaturalSize(n.left), NaturalSize(n.right), bounds)
		if err := Draw(n.left, s, lb); err != nil {
			return err
		}
		return Draw(n.right, s, rb)

	case below:
		tb, bb := SplitVertical(NaturalSize(n.top), NaturalSize(n.bottom), bounds)
		if err := Draw(n.top, s, tb); err != nil {
			return err
		}
		return Draw(n.bottom, s, bb)

	case annotated:
		return drawAnnotated(n, s, bounds)

	default:
		return nil
	}
}

func drawAnnotated(n annotated, s Surface, bounds Rect) error {
	switch a := n.attr.(type) {
	case fillColor:
		s.PushFillColor(a.color)
		defer s.PopFillColor()
		return Draw(n.child, s, bounds)
	case alignment:
		return Draw(n.child, s, Fit(NaturalSize(n.child), a.anchor, bounds))
	default:
		return Draw(n.child, s, bounds)
	}
}
