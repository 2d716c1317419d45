// Package preview draws an orthographic XY view of one mesh channel into a
// PNG, for quick checks without a 3D viewer.
package preview

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/gogpu/text3d/mesh"
)

// ErrEmptyChannel is returned when the channel to draw has no triangles.
var ErrEmptyChannel = errors.New("preview: channel is empty")

// Options configures a preview.
type Options struct {
	// Face selects the channel to draw.
	Face mesh.Face

	// Scale is pixels per mesh unit. Zero means 1.
	Scale float64

	// Padding is the margin around the drawing in pixels.
	Padding int

	// Wireframe strokes triangle edges over the fill.
	Wireframe bool

	Background color.Color
	Fill       color.Color
	Stroke     color.Color
}

// DefaultOptions returns a filled front view on black with a wireframe.
func DefaultOptions() Options {
	return Options{
		Face:       mesh.Front,
		Scale:      1,
		Padding:    8,
		Wireframe:  true,
		Background: color.Black,
		Fill:       color.RGBA{R: 0, G: 128, B: 0, A: 255},
		Stroke:     color.RGBA{R: 0, G: 255, B: 255, A: 255},
	}
}

// Render draws the selected channel of m. Mesh y points up; the image is
// flipped so text reads upright.
func Render(m *mesh.Result, opts Options) (image.Image, error) {
	dc, err := draw(m, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders m and writes it to w as PNG.
func EncodePNG(w io.Writer, m *mesh.Result, opts Options) error {
	dc, err := draw(m, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders m and writes it to a PNG file.
func SavePNG(path string, m *mesh.Result, opts Options) error {
	dc, err := draw(m, opts)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func draw(m *mesh.Result, opts Options) (*gg.Context, error) {
	ch := m.Channel(opts.Face)
	if ch.IsEmpty() {
		return nil, ErrEmptyChannel
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.Fill == nil {
		opts.Fill = color.White
	}

	b := ch.Bounds()
	pad := float64(opts.Padding)
	width := int(opts.Scale*(b.Max.X-b.Min.X) + 2*pad + 0.5)
	height := int(opts.Scale*(b.Max.Y-b.Min.Y) + 2*pad + 0.5)

	dc := gg.NewContext(max(width, 1), max(height, 1))
	dc.SetColor(opts.Background)
	dc.Clear()

	// Origin at the bottom left, then padding, scale and the bounds minimum.
	dc.Translate(0, float64(height))
	dc.Scale(1, -1)
	dc.Translate(pad, pad)
	dc.Scale(opts.Scale, opts.Scale)
	dc.Translate(-b.Min.X, -b.Min.Y)

	for i := range ch.TriangleCount() {
		t := ch.Triangle(i)
		dc.MoveTo(t.A.X, t.A.Y)
		dc.LineTo(t.B.X, t.B.Y)
		dc.LineTo(t.C.X, t.C.Y)
		dc.ClosePath()
	}
	dc.SetColor(opts.Fill)
	if opts.Wireframe && opts.Stroke != nil {
		dc.FillPreserve()
		dc.SetColor(opts.Stroke)
		dc.SetLineWidth(1 / opts.Scale)
		dc.Stroke()
	} else {
		dc.Fill()
	}
	return dc, nil
}
