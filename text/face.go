package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
)

// Default face parameters.
const (
	DefaultSize = 64
	DefaultDPI  = 96
)

// Soft limits of the per-face caches.
const (
	outlineCacheLimit = 1024
	shapeCacheLimit   = 256
)

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	size    float64
	dpi     float64
	backend string
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		size: DefaultSize,
		dpi:  DefaultDPI,
	}
}

// WithSize sets the face size in points.
func WithSize(points float64) FaceOption {
	return func(c *faceConfig) {
		c.size = points
	}
}

// WithDPI sets the resolution used to convert points to pixels.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		c.dpi = dpi
	}
}

// WithBackend selects the outline backend by name.
func WithBackend(name string) FaceOption {
	return func(c *faceConfig) {
		c.backend = name
	}
}

// Face is a font loaded at a specific size. It decodes glyph outlines in
// pixel units and shapes text with the owning library's shaper.
//
// Face is safe for concurrent use. Outlines are cached per glyph and
// shaped runs per line, run and shaping parameters.
type Face struct {
	lib    *Library
	parsed ParsedFont
	shapeF *font.Font
	name   string

	size, dpi, ppem float64

	mu       sync.RWMutex
	closed   bool
	outlines *Cache[GlyphID, Outline]
	shapes   *Cache[shapeKey, []ShapedGlyph]
}

func newFace(lib *Library, backend Backend, data []byte, cfg faceConfig) (*Face, error) {
	if cfg.size <= 0 {
		cfg.size = DefaultSize
	}
	if cfg.dpi <= 0 {
		cfg.dpi = DefaultDPI
	}

	parsed, err := backend.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}

	// ParseTTF returns a *Face embedding the read-only, shareable *Font.
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, &FontError{Op: "shaping font", Err: err})
	}

	name := parsed.Name()
	if name == "" {
		name = "Unknown Font"
	}

	return &Face{
		lib:      lib,
		parsed:   parsed,
		shapeF:   gt.Font,
		name:     name,
		size:     cfg.size,
		dpi:      cfg.dpi,
		ppem:     cfg.size * cfg.dpi / 72,
		outlines: NewCache[GlyphID, Outline](outlineCacheLimit),
		shapes:   NewCache[shapeKey, []ShapedGlyph](shapeCacheLimit),
	}, nil
}

// Name returns the font family name.
func (f *Face) Name() string { return f.name }

// Size returns the face size in points.
func (f *Face) Size() float64 { return f.size }

// PPEM returns the face size in pixels per em.
func (f *Face) PPEM() float64 { return f.ppem }

// GlyphIndex returns the glyph index for r, or 0 if the font lacks it.
func (f *Face) GlyphIndex(r rune) GlyphID {
	return f.parsed.GlyphIndex(r)
}

// Outline returns the outline of gid at the face size.
// The returned loops are shared with the cache and must not be modified.
func (f *Face) Outline(gid GlyphID) (Outline, error) {
	if f.Closed() {
		return Outline{}, ErrFaceClosed
	}
	if o, ok := f.outlines.Get(gid); ok {
		return o, nil
	}

	o, err := f.parsed.LoadOutline(gid, f.ppem)
	if err != nil {
		return Outline{}, err
	}
	f.outlines.Set(gid, o)
	return o, nil
}

// Shape shapes one directional run of a line at the face size.
// The returned slice is shared with the cache and must not be modified.
func (f *Face) Shape(in ShapeInput) ([]ShapedGlyph, error) {
	if f.Closed() {
		return nil, ErrFaceClosed
	}

	key := shapeKey{
		line:   string(in.Text),
		start:  in.Start,
		end:    in.End,
		dir:    in.Direction,
		script: in.Script,
		lang:   in.Language,
	}
	if glyphs, ok := f.shapes.Get(key); ok {
		return glyphs, nil
	}
	glyphs := f.lib.shaper.Shape(f.shapeF, f.ppem, in)
	f.shapes.Set(key, glyphs)
	return glyphs, nil
}

// Closed reports whether the face has been closed.
func (f *Face) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Close releases the face. It is idempotent.
func (f *Face) Close() error {
	f.release()
	f.lib.forget(f)
	return nil
}

// release marks the face closed and drops its caches.
func (f *Face) release() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()

	f.outlines.Clear()
	f.shapes.Clear()
}
