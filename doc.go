// Package diagram provides declarative diagram composition.
//
// A diagram is an immutable tree built from a small set of combinators:
// primitive shapes (Square, Circle, Rect), horizontal and vertical
// composition (Beside, Below), and annotations that modify rendering
// without changing structure (WithFill, Align).
//
// Rendering is a single synchronous pass: NaturalSize folds the tree
// bottom-up to obtain each subtree's unscaled footprint, and Draw walks
// the tree top-down, splitting the target bounds proportionally among
// children and dispatching fill calls for leaves into a Surface.
//
// The coordinate system is y-up: anchor (0,0) is the bottom-left of a
// bounding box and (1,1) the top-right. Surface implementations that
// target y-down spaces (raster images, SVG) perform the flip themselves.
//
// Example:
//
//	d := diagram.Beside(
//	    diagram.WithFill(diagram.Hex("#e04050"), diagram.Circle(50)),
//	    diagram.AlignBottom(diagram.Rectangle(30, 80)),
//	)
//	rec := diagram.NewRecorder()
//	_ = diagram.Draw(d, rec, diagram.NewRect(0, 0, 200, 100))
package diagram
