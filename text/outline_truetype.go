package text

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// truetypeBackend decodes glyf outlines with github.com/golang/freetype.
// It reads the raw on/off-curve flags, so consecutive off-curve points are
// left for the contour builder to resolve. CFF fonts are not supported.
type truetypeBackend struct{}

// Parse implements Backend.Parse.
func (truetypeBackend) Parse(data []byte) (ParsedFont, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &truetypeFont{font: f}, nil
}

// truetypeFont implements ParsedFont over truetype.Font.
// A fresh GlyphBuf is used per call; truetype.Font itself is read-only.
type truetypeFont struct {
	font *truetype.Font
}

// Name implements ParsedFont.Name.
func (f *truetypeFont) Name() string {
	return f.font.Name(truetype.NameIDFontFamily)
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *truetypeFont) UnitsPerEm() int {
	return int(f.font.FUnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *truetypeFont) GlyphIndex(r rune) GlyphID {
	return GlyphID(f.font.Index(r))
}

// LoadOutline implements ParsedFont.LoadOutline.
func (f *truetypeFont) LoadOutline(gid GlyphID, ppem float64) (Outline, error) {
	var gb truetype.GlyphBuf
	if err := gb.Load(f.font, fixed.Int26_6(ppem*64), truetype.Index(gid), font.HintingNone); err != nil {
		return Outline{}, &FontError{Op: "outline", GID: gid, Err: fmt.Errorf("%w: %w", ErrGlyphNotOutline, err)}
	}

	out := Outline{
		GID:     gid,
		Loops:   make([]Loop, 0, len(gb.Ends)),
		Advance: fixedToFloat64(gb.AdvanceWidth),
		Bounds: Rect{
			MinX: fixedToFloat64(gb.Bounds.Min.X),
			MinY: fixedToFloat64(gb.Bounds.Min.Y),
			MaxX: fixedToFloat64(gb.Bounds.Max.X),
			MaxY: fixedToFloat64(gb.Bounds.Max.Y),
		},
	}

	start := 0
	for _, end := range gb.Ends {
		loop := make(Loop, 0, end-start)
		for _, p := range gb.Points[start:end] {
			tag := TagConic
			if p.Flags&0x01 != 0 {
				tag = TagOn
			}
			loop = append(loop, ControlPoint{X: fixedToFloat64(p.X), Y: fixedToFloat64(p.Y), Tag: tag})
		}
		if len(loop) > 0 {
			out.Loops = append(out.Loops, loop)
		}
		start = end
	}
	return out, nil
}
