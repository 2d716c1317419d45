// Package text loads fonts and turns text into glyphs with vector outlines.
//
// The package wraps external font engines behind a few small types:
//
//   - Library: owns loaded faces; Close releases all of them
//   - Face: a font at a given size, decoding outlines through a Backend
//   - Shaper: HarfBuzz shaping from github.com/go-text/typesetting
//   - Segmenter: bidirectional runs from golang.org/x/text/unicode/bidi
//
// # Example usage
//
//	lib := text.NewLibrary()
//	defer lib.Close()
//
//	face, err := lib.LoadFace(goregular.TTF, text.WithSize(64))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	o, err := face.Outline(face.GlyphIndex('A'))
//
// # Outline backends
//
// Outlines are decoded by a named Backend. Two are registered:
//
//   - "sfnt": golang.org/x/image/font/sfnt, TrueType and CFF (default)
//   - "truetype": github.com/golang/freetype/truetype, TrueType only, with
//     the raw on/off-curve flags preserved
//
// Custom backends can be added with RegisterBackend. All backends report
// coordinates in pixels with y pointing up.
package text
