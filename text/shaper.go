package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is a glyph produced by shaping, in pixel units with y up.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the rune index in the shaped line that produced the glyph.
	Cluster int

	// XAdvance and YAdvance move the pen after the glyph is placed.
	XAdvance, YAdvance float64

	// XOffset and YOffset displace the glyph from the pen position.
	XOffset, YOffset float64
}

// ShapeInput describes one directional run to shape.
type ShapeInput struct {
	// Text is the whole line; only Text[Start:End] is shaped, the rest is
	// context for the shaper.
	Text       []rune
	Start, End int

	Direction Direction
	Script    language.Script
	Language  language.Language
}

// Shaper converts runes into positioned glyphs using HarfBuzz shaping from
// go-text/typesetting.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances hold a mutable
// buffer and are pooled via sync.Pool.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a new Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes in.Text[in.Start:in.End] with the given font at ppem pixels
// per em. Glyphs are returned in visual order.
func (s *Shaper) Shape(f *font.Font, ppem float64, in ShapeInput) []ShapedGlyph {
	if f == nil || in.Start >= in.End {
		return nil
	}

	// font.Face is not safe for concurrent use; wrap the shared Font per call.
	face := font.NewFace(f)

	input := shaping.Input{
		Text:      in.Text,
		RunStart:  in.Start,
		RunEnd:    in.End,
		Direction: mapDirection(in.Direction),
		Face:      face,
		Size:      floatToFixed(ppem),
		Script:    in.Script,
		Language:  in.Language,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// convertGlyphs converts go-text output glyphs to ShapedGlyph values.
// Runs are horizontal, so the shaped advance is an x advance.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices fit in 16 bits
			Cluster:  g.TextIndex(),
			XAdvance: fixedToFloat64(g.Advance),
			XOffset:  fixedToFloat64(g.XOffset),
			YOffset:  fixedToFloat64(g.YOffset),
		}
	}
	return result
}
