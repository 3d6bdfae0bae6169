// Package svg provides a diagram surface that streams SVG markup to an
// io.Writer.
//
// Diagram coordinates are y-up while SVG is y-down; the surface flips
// element coordinates so the rendered document matches the raster
// backend pixel for pixel.
package svg

import (
	"fmt"
	"io"

	"github.com/gogpu/diagram"
)

// Surface writes diagram fill calls as SVG elements.
// It implements diagram.Surface.
//
// Write errors are sticky: the first one is remembered, every later
// fill call returns it, and Close reports it.
type Surface struct {
	w             io.Writer
	width, height float64
	colors        []diagram.RGBA
	closed        bool
	err           error
}

// New creates a surface emitting an SVG document with the given
// viewport and writes the document header.
func New(w io.Writer, width, height float64) (*Surface, error) {
	s := &Surface{
		w:      w,
		width:  width,
		height: height,
		colors: []diagram.RGBA{diagram.Black},
	}
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

// FillRectangle emits a <rect> element for a y-up diagram rectangle.
func (s *Surface) FillRectangle(r diagram.Rect) error {
	y := s.height - (r.Origin.Y + r.Size.H)
	s.printf(`  <rect x="%g" y="%g" width="%g" height="%g"%s/>`+"\n",
		r.Origin.X, y, r.Size.W, r.Size.H, s.fillAttrs())
	return s.err
}

// FillEllipse emits an <ellipse> element inscribed in a y-up diagram
// rectangle.
func (s *Surface) FillEllipse(r diagram.Rect) error {
	cx := r.Origin.X + r.Size.W/2
	cy := s.height - (r.Origin.Y + r.Size.H/2)
	s.printf(`  <ellipse cx="%g" cy="%g" rx="%g" ry="%g"%s/>`+"\n",
		cx, cy, r.Size.W/2, r.Size.H/2, s.fillAttrs())
	return s.err
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

// Close finishes the document. Further fill calls after Close fail.
func (s *Surface) Close() error {
	if s.closed {
		return s.err
	}
	s.printf("</svg>\n")
	s.closed = true
	return s.err
}

// fillAttrs renders the current color as fill attributes, with a
// fill-opacity attribute only when the color is translucent.
func (s *Surface) fillAttrs() string {
	c := s.FillColor()
	attrs := fmt.Sprintf(` fill="#%02x%02x%02x"`,
		uint8(clamp255(c.R*255)), uint8(clamp255(c.G*255)), uint8(clamp255(c.B*255)))
	if c.A < 1 {
		attrs += fmt.Sprintf(` fill-opacity="%.3g"`, c.A)
	}
	return attrs
}

func (s *Surface) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	if s.closed {
		s.err = fmt.Errorf("svg: surface is closed")
		return
	}
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.err = fmt.Errorf("svg: write: %w", err)
	}
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
