package diagram

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func sizesEqual(s1, s2 Size, eps float64) bool {
	return math.Abs(s1.W-s2.W) < eps && math.Abs(s1.H-s2.H) < eps
}

func rectsEqual(r1, r2 Rect, eps float64) bool {
	return pointsEqual(r1.Origin, r2.Origin, eps) && sizesEqual(r1.Size, r2.Size, eps)
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); !pointsEqual(got, Pt(4, 6), epsilon) {
		t.Errorf("Add = %+v, want (4,6)", got)
	}
	if got := p.Sub(q); !pointsEqual(got, Pt(2, 2), epsilon) {
		t.Errorf("Sub = %+v, want (2,2)", got)
	}
	if got := p.Mul(2); !pointsEqual(got, Pt(6, 8), epsilon) {
		t.Errorf("Mul = %+v, want (6,8)", got)
	}
}

func TestPoint_MulSize(t *testing.T) {
	// An anchor of (0.5, 1) against a 100x200 extent gives the
	// absolute offset (50, 200).
	got := Pt(0.5, 1).MulSize(Sz(100, 200))
	if !pointsEqual(got, Pt(50, 200), epsilon) {
		t.Errorf("MulSize = %+v, want (50,200)", got)
	}
}

func TestSize_Arithmetic(t *testing.T) {
	a := Sz(10, 20)
	b := Sz(4, 5)

	if got := a.Add(b); !sizesEqual(got, Sz(14, 25), epsilon) {
		t.Errorf("Add = %+v, want (14,25)", got)
	}
	if got := a.Sub(b); !sizesEqual(got, Sz(6, 15), epsilon) {
		t.Errorf("Sub = %+v, want (6,15)", got)
	}
	if got := a.Mul(b); !sizesEqual(got, Sz(40, 100), epsilon) {
		t.Errorf("Mul = %+v, want (40,100)", got)
	}
	if got := a.Div(b); !sizesEqual(got, Sz(2.5, 4), epsilon) {
		t.Errorf("Div = %+v, want (2.5,4)", got)
	}
	if got := a.Scale(3); !sizesEqual(got, Sz(30, 60), epsilon) {
		t.Errorf("Scale = %+v, want (30,60)", got)
	}
	if got := a.Max(Sz(7, 25)); !sizesEqual(got, Sz(10, 25), epsilon) {
		t.Errorf("Max = %+v, want (10,25)", got)
	}
}

func TestSize_DivByZeroDoesNotPanic(t *testing.T) {
	got := Sz(10, 0).Div(Sz(0, 0))
	if !math.IsInf(got.W, 1) {
		t.Errorf("10/0 = %v, want +Inf", got.W)
	}
	if !math.IsNaN(got.H) {
		t.Errorf("0/0 = %v, want NaN", got.H)
	}
}

func TestRect_Accessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if got := r.MaxX(); got != 40 {
		t.Errorf("MaxX = %v, want 40", got)
	}
	if got := r.MaxY(); got != 60 {
		t.Errorf("MaxY = %v, want 60", got)
	}
	if got := r.Center(); !pointsEqual(got, Pt(25, 40), epsilon) {
		t.Errorf("Center = %+v, want (25,40)", got)
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	if !outer.ContainsRect(NewRect(10, 10, 50, 50), 0) {
		t.Error("inner rect should be contained")
	}
	if outer.ContainsRect(NewRect(60, 60, 50, 50), 0) {
		t.Error("overflowing rect should not be contained")
	}
	// Tolerance absorbs rounding sliver.
	if !outer.ContainsRect(NewRect(-1e-12, 0, 100, 100), 1e-9) {
		t.Error("rect within tolerance should be contained")
	}
}
