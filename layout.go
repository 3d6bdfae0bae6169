package diagram

import "math"

// Fit computes the largest rectangle of proportions sz that fits inside
// bounds, positioned per axis by the fractional anchor: 0 is flush to
// the bounds' origin edge, 1 flush to the far edge, 0.5 centered.
//
// A zero component in sz imposes no scale constraint; a fully zero sz
// fits to a zero-size rectangle at the anchor position. This keeps Fit
// total for degenerate inputs instead of producing NaN origins.
func Fit(sz Size, anchor Point, bounds Rect) Rect {
	scale := fitScale(sz, bounds.Size)
	fitted := sz.Scale(scale)
	offset := anchor.MulSize(bounds.Size.Sub(fitted))
	return Rect{Origin: bounds.Origin.Add(offset), Size: fitted}
}

// fitScale returns the largest uniform scale at which sz fits in avail.
func fitScale(sz, avail Size) float64 {
	switch {
	case sz.W == 0 && sz.H == 0:
		return 0
	case sz.W == 0:
		return avail.H / sz.H
	case sz.H == 0:
		return avail.W / sz.W
	}
	return math.Min(avail.W/sz.W, avail.H/sz.H)
}

// SplitHorizontal partitions bounds into left and right rectangles whose
// widths are proportional to left.W and right.W. Both span the bounds'
// full height; the left rectangle occupies the lower-x portion.
//
// If left.W+right.W is zero the split is 50/50. The proportional share
// is undefined for an all-zero-width composition, and an even split
// keeps rendering deterministic for empty subtrees.
func SplitHorizontal(left, right Size, bounds Rect) (Rect, Rect) {
	share := 0.5
	if total := left.W + right.W; total != 0 {
		share = left.W / total
	}
	lw := bounds.Size.W * share
	l := Rect{Origin: bounds.Origin, Size: Size{W: lw, H: bounds.Size.H}}
	r := Rect{
		Origin: Point{X: bounds.Origin.X + lw, Y: bounds.Origin.Y},
		Size:   Size{W: bounds.Size.W - lw, H: bounds.Size.H},
	}
	return l, r
}

// SplitVertical partitions bounds into top and bottom rectangles whose
// heights are proportional to top.H and bottom.H. Both span the bounds'
// full width. The bottom rectangle sits at the bounds' origin and the
// top rectangle above it (the coordinate system is y-up).
//
// If top.H+bottom.H is zero the split is 50/50, matching SplitHorizontal.
func SplitVertical(top, bottom Size, bounds Rect) (Rect, Rect) {
	share := 0.5
	if total := top.H + bottom.H; total != 0 {
		share = bottom.H / total
	}
	bh := bounds.Size.H * share
	b := Rect{Origin: bounds.Origin, Size: Size{W: bounds.Size.W, H: bh}}
	t := Rect{
		Origin: Point{X: bounds.Origin.X, Y: bounds.Origin.Y + bh},
		Size:   Size{W: bounds.Size.W, H: bounds.Size.H - bh},
	}
	return t, b
}
