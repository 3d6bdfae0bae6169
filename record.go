package diagram

import "fmt"

// OpKind identifies a recorded surface call.
type OpKind int

const (
	// OpFillRectangle records a FillRectangle call.
	OpFillRectangle OpKind = iota
	// OpFillEllipse records a FillEllipse call.
	OpFillEllipse
)

// String returns the op kind name.
func (k OpKind) String() string {
	switch k {
	case OpFillRectangle:
		return "fillRectangle"
	case OpFillEllipse:
		return "fillEllipse"
	default:
		return "unknown"
	}
}

// Op is one recorded fill call. Color is the fill color in effect when
// the call was made, so a log can be inspected or replayed without
// reconstructing the color stack.
type Op struct {
	Kind  OpKind
	Rect  Rect
	Color RGBA
}

// String formats the op for test failure output.
func (op Op) String() string {
	return fmt.Sprintf("%s(%g,%g,%g,%g)", op.Kind,
		op.Rect.Origin.X, op.Rect.Origin.Y, op.Rect.Size.W, op.Rect.Size.H)
}

// Recorder is a Surface that captures fill calls as an ordered op log
// instead of producing output. Two Draw passes over the same tree and
// bounds yield identical logs, which makes the Recorder the reference
// surface for tests and for replaying a render into other backends.
type Recorder struct {
	ops    []Op
	colors []RGBA
}

// NewRecorder creates a Recorder with black as the base fill color.
func NewRecorder() *Recorder {
	return &Recorder{colors: []RGBA{Black}}
}

// FillRectangle records a rectangle fill with the current color.
func (rec *Recorder) FillRectangle(r Rect) error {
	rec.ops = append(rec.ops, Op{Kind: OpFillRectangle, Rect: r, Color: rec.FillColor()})
	return nil
}

// FillEllipse records an ellipse fill with the current color.
func (rec *Recorder) FillEllipse(r Rect) error {
	rec.ops = append(rec.ops, Op{Kind: OpFillEllipse, Rect: r, Color: rec.FillColor()})
	return nil
}

// PushFillColor makes c the current fill color.
func (rec *Recorder) PushFillColor(c RGBA) {
	rec.colors = append(rec.colors, c)
}

// PopFillColor restores the previous fill color. The base color is
// never popped; an unmatched pop is ignored.
func (rec *Recorder) PopFillColor() {
	if len(rec.colors) > 1 {
		rec.colors = rec.colors[:len(rec.colors)-1]
	}
}

// FillColor returns the current fill color.
func (rec *Recorder) FillColor() RGBA {
	return rec.colors[len(rec.colors)-1]
}

// Ops returns the recorded call log in draw order.
func (rec *Recorder) Ops() []Op {
	return rec.ops
}

// Reset clears the op log and color stack for reuse.
func (rec *Recorder) Reset() {
	rec.ops = rec.ops[:0]
	rec.colors = append(rec.colors[:0], Black)
}
