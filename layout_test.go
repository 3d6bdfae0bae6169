package diagram

import (
	"math"
	"testing"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		anchor Point
		bounds Rect
		want   Rect
	}{
		{
			name: "flush bottom-left",
			size: Sz(100, 200), anchor: Pt(0, 0),
			bounds: NewRect(0, 0, 200, 200),
			want:   NewRect(0, 0, 100, 200),
		},
		{
			name: "centered top",
			size: Sz(100, 200), anchor: Pt(0.5, 1),
			bounds: NewRect(0, 0, 200, 200),
			want:   NewRect(50, 0, 100, 200),
		},
		{
			name: "centered top upscaled",
			size: Sz(100, 200), anchor: Pt(0.5, 1),
			bounds: NewRect(0, 0, 300, 300),
			want:   NewRect(75, 0, 150, 300),
		},
		{
			name: "negative origin bounds",
			size: Sz(100, 200), anchor: Pt(0, 0),
			bounds: NewRect(-20, -30, 100, 100),
			want:   NewRect(-20, -30, 50, 100),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.size, tt.anchor, tt.bounds)
			if !rectsEqual(got, tt.want, epsilon) {
				t.Errorf("Fit = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFit_ContainmentAndAspect(t *testing.T) {
	size := Sz(30, 70)
	bounds := NewRect(-10, 5, 120, 90)
	anchors := []Point{
		Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1),
		Pt(0.5, 0.5), Pt(0.25, 0.75), Pt(1, 0.5),
	}

	for _, a := range anchors {
		got := Fit(size, a, bounds)
		if !bounds.ContainsRect(got, epsilon) {
			t.Errorf("anchor %+v: %+v escapes bounds %+v", a, got, bounds)
		}
		wantRatio := size.W / size.H
		gotRatio := got.Size.W / got.Size.H
		if math.Abs(gotRatio-wantRatio) > epsilon {
			t.Errorf("anchor %+v: aspect ratio %v, want %v", a, gotRatio, wantRatio)
		}
	}
}

func TestFit_ZeroSize(t *testing.T) {
	bounds := NewRect(10, 20, 100, 50)

	// Fully zero size: zero rect positioned at the anchor point.
	got := Fit(Sz(0, 0), Pt(1, 1), bounds)
	want := NewRect(110, 70, 0, 0)
	if !rectsEqual(got, want, epsilon) {
		t.Errorf("Fit(zero) = %+v, want %+v", got, want)
	}

	// A zero component imposes no scale constraint.
	got = Fit(Sz(0, 10), Pt(0, 0), bounds)
	want = NewRect(10, 20, 0, 50)
	if !rectsEqual(got, want, epsilon) {
		t.Errorf("Fit(zero width) = %+v, want %+v", got, want)
	}
}

func TestSplitHorizontal(t *testing.T) {
	l, r := SplitHorizontal(Sz(10, 10), Sz(20, 20), NewRect(0, 0, 300, 200))

	if want := NewRect(0, 0, 100, 200); !rectsEqual(l, want, epsilon) {
		t.Errorf("left = %+v, want %+v", l, want)
	}
	if want := NewRect(100, 0, 200, 200); !rectsEqual(r, want, epsilon) {
		t.Errorf("right = %+v, want %+v", r, want)
	}
}

func TestSplitVertical(t *testing.T) {
	top, bottom := SplitVertical(Sz(10, 10), Sz(20, 20), NewRect(0, 0, 300, 300))

	if want := NewRect(0, 200, 300, 100); !rectsEqual(top, want, epsilon) {
		t.Errorf("top = %+v, want %+v", top, want)
	}
	if want := NewRect(0, 0, 300, 200); !rectsEqual(bottom, want, epsilon) {
		t.Errorf("bottom = %+v, want %+v", bottom, want)
	}
}

func TestSplit_ZeroTotalIsEven(t *testing.T) {
	bounds := NewRect(0, 0, 100, 80)

	l, r := SplitHorizontal(Sz(0, 10), Sz(0, 10), bounds)
	if want := NewRect(0, 0, 50, 80); !rectsEqual(l, want, epsilon) {
		t.Errorf("left = %+v, want %+v", l, want)
	}
	if want := NewRect(50, 0, 50, 80); !rectsEqual(r, want, epsilon) {
		t.Errorf("right = %+v, want %+v", r, want)
	}

	top, bottom := SplitVertical(Sz(10, 0), Sz(10, 0), bounds)
	if want := NewRect(0, 40, 100, 40); !rectsEqual(top, want, epsilon) {
		t.Errorf("top = %+v, want %+v", top, want)
	}
	if want := NewRect(0, 0, 100, 40); !rectsEqual(bottom, want, epsilon) {
		t.Errorf("bottom = %+v, want %+v", bottom, want)
	}
}

func TestSplit_SharedEdges(t *testing.T) {
	// The sub-rectangles must tile the bounds exactly: the right/top
	// rect takes the remainder rather than recomputing its own share.
	bounds := NewRect(3, 7, 101, 53)
	l, r := SplitHorizontal(Sz(1, 1), Sz(2, 1), bounds)

	if math.Abs(l.MaxX()-r.Origin.X) > epsilon {
		t.Errorf("gap between left.MaxX %v and right.Origin.X %v", l.MaxX(), r.Origin.X)
	}
	if math.Abs(l.Size.W+r.Size.W-bounds.Size.W) > epsilon {
		t.Errorf("widths %v+%v do not sum to %v", l.Size.W, r.Size.W, bounds.Size.W)
	}
}
