package diagram

// Surface is the drawing capability a diagram renders into.
//
// Implementations translate fill calls into pixels or markup. The
// current fill color is surface state managed as a stack: PushFillColor
// makes a color current, PopFillColor restores the previous one. Draw
// guarantees push/pop pairing around each fill-color annotation, even
// when an error aborts the walk.
//
// A Surface must not be shared across concurrent Draw calls; the render
// pass itself is fully synchronous.
type Surface interface {
	// FillRectangle fills the rectangle with the current fill color.
	FillRectangle(r Rect) error

	// FillEllipse fills the ellipse inscribed in r with the current
	// fill color.
	FillEllipse(r Rect) error

	// PushFillColor makes c the current fill color.
	PushFillColor(c RGBA)

	// PopFillColor restores the fill color in effect before the
	// matching PushFillColor.
	PopFillColor()
}
