package text

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntBackend decodes TrueType and CFF outlines with golang.org/x/image/font/sfnt.
type sfntBackend struct{}

// Parse implements Backend.Parse.
func (sfntBackend) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &sfntFont{
		font: f,
		buffers: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}, nil
}

// sfntFont implements ParsedFont over sfnt.Font.
// sfnt.Buffer is not safe for concurrent use, so buffers are pooled.
type sfntFont struct {
	font    *sfnt.Font
	buffers sync.Pool
}

func (f *sfntFont) getBuffer() *sfnt.Buffer  { return f.buffers.Get().(*sfnt.Buffer) }
func (f *sfntFont) putBuffer(b *sfnt.Buffer) { f.buffers.Put(b) }

// Name implements ParsedFont.Name.
func (f *sfntFont) Name() string {
	buf := f.getBuffer()
	defer f.putBuffer(buf)
	name, err := f.font.Name(buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *sfntFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *sfntFont) GlyphIndex(r rune) GlyphID {
	buf := f.getBuffer()
	defer f.putBuffer(buf)
	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// LoadOutline implements ParsedFont.LoadOutline.
// sfnt reports y growing downward; coordinates are negated on the way out.
func (f *sfntFont) LoadOutline(gid GlyphID, ppem float64) (Outline, error) {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	scale := fixed.Int26_6(ppem * 64)
	segments, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), scale, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) || errors.Is(err, sfnt.ErrNotFound) {
			err = fmt.Errorf("%w: %w", ErrGlyphNotOutline, err)
		}
		return Outline{}, &FontError{Op: "outline", GID: gid, Err: err}
	}

	var b loopBuilder
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(fixedToFloat64(seg.Args[0].X), -fixedToFloat64(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			b.add(fixedToFloat64(seg.Args[0].X), -fixedToFloat64(seg.Args[0].Y), TagOn)
		case sfnt.SegmentOpQuadTo:
			b.add(fixedToFloat64(seg.Args[0].X), -fixedToFloat64(seg.Args[0].Y), TagConic)
			b.add(fixedToFloat64(seg.Args[1].X), -fixedToFloat64(seg.Args[1].Y), TagOn)
		case sfnt.SegmentOpCubeTo:
			b.add(fixedToFloat64(seg.Args[0].X), -fixedToFloat64(seg.Args[0].Y), TagCubic)
			b.add(fixedToFloat64(seg.Args[1].X), -fixedToFloat64(seg.Args[1].Y), TagCubic)
			b.add(fixedToFloat64(seg.Args[2].X), -fixedToFloat64(seg.Args[2].Y), TagOn)
		}
	}

	out := Outline{GID: gid, Loops: b.finish()}

	bounds, advance, err := f.font.GlyphBounds(buf, sfnt.GlyphIndex(gid), scale, font.HintingNone)
	if err != nil {
		return Outline{}, &FontError{Op: "outline", GID: gid, Err: err}
	}
	out.Advance = fixedToFloat64(advance)
	out.Bounds = Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: -fixedToFloat64(bounds.Max.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: -fixedToFloat64(bounds.Min.Y),
	}
	return out, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
