// Package raster provides a CPU diagram surface that renders into an
// in-memory RGBA image.
//
// Fills are antialiased via golang.org/x/image/vector. Diagram
// coordinates are y-up; the surface flips to the image's y-down space,
// so a diagram drawn into bounds (0,0,w,h) fills a w×h image with the
// diagram's bottom edge on the image's last row.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/diagram"
)

// kappa is the cubic Bézier approximation constant for a quarter arc,
// 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498

// Surface rasterizes diagram fill calls into an *image.RGBA.
// It implements diagram.Surface.
type Surface struct {
	img    *image.RGBA
	colors []diagram.RGBA
}

// New creates a surface backed by a transparent width×height image.
// The base fill color is black.
func New(width, height int) *Surface {
	return &Surface{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		colors: []diagram.RGBA{diagram.Black},
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the entire image with a color.
func (s *Surface) Clear(c diagram.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// PushFillColor makes c the current fill color.
func (s *Surface) PushFillColor(c diagram.RGBA) {
	s.colors = append(s.colors, c)
}

// PopFillColor restores the previous fill color. The base color is
// never popped.
func (s *Surface) PopFillColor() {
	if len(s.colors) > 1 {
		s.colors = s.colors[:len(s.colors)-1]
	}
}

// FillColor returns the current fill color.
func (s *Surface) FillColor() diagram.RGBA {
	return s.colors[len(s.colors)-1]
}

// FillRectangle fills a rectangle given in diagram (y-up) coordinates.
func (s *Surface) FillRectangle(r diagram.Rect) error {
	x, y, w, h := s.flip(r)
	rz := s.newRasterizer()
	rz.MoveTo(x, y)
	rz.LineTo(x+w, y)
	rz.LineTo(x+w, y+h)
	rz.LineTo(x, y+h)
	rz.ClosePath()
	s.rasterize(rz)
	return nil
}

// FillEllipse fills the ellipse inscribed in r, given in diagram (y-up)
// coordinates. The outline is four cubic Bézier quarter arcs.
func (s *Surface) FillEllipse(r diagram.Rect) error {
	x, y, w, h := s.flip(r)
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	kx, ky := rx*kappa, ry*kappa

	rz := s.newRasterizer()
	rz.MoveTo(cx+rx, cy)
	rz.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	rz.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	rz.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	rz.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	rz.ClosePath()
	s.rasterize(rz)
	return nil
}

// SavePNG writes the image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.img)
}

// flip converts a y-up diagram rectangle to image coordinates, where
// the returned (x, y) is the rectangle's top-left corner.
func (s *Surface) flip(r diagram.Rect) (x, y, w, h float32) {
	height := float64(s.img.Bounds().Dy())
	return float32(r.Origin.X),
		float32(height - (r.Origin.Y + r.Size.H)),
		float32(r.Size.W),
		float32(r.Size.H)
}

func (s *Surface) newRasterizer() *vector.Rasterizer {
	b := s.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (s *Surface) rasterize(rz *vector.Rasterizer) {
	rz.Draw(s.img, s.img.Bounds(), image.NewUniform(s.FillColor().Color()), image.Point{})
}
