package diagram

import "math"

// Size represents a 2D extent: a width/height pair.
//
// Arithmetic follows IEEE semantics: dividing by a zero component
// produces an infinity or NaN rather than panicking. Callers splitting
// bounds are responsible for non-degenerate totals; see SplitHorizontal
// and SplitVertical for the documented degenerate policy.
type Size struct {
	W, H float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(t Size) Size {
	return Size{W: s.W + t.W, H: s.H + t.H}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(t Size) Size {
	return Size{W: s.W - t.W, H: s.H - t.H}
}

// Mul returns the component-wise product of two sizes.
func (s Size) Mul(t Size) Size {
	return Size{W: s.W * t.W, H: s.H * t.H}
}

// Div returns the component-wise quotient of two sizes.
func (s Size) Div(t Size) Size {
	return Size{W: s.W / t.W, H: s.H / t.H}
}

// Scale returns the size scaled by a scalar.
func (s Size) Scale(k float64) Size {
	return Size{W: s.W * k, H: s.H * k}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(t Size) Size {
	return Size{W: math.Max(s.W, t.W), H: math.Max(s.H, t.H)}
}

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}
