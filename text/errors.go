package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrResourceUnavailable is the class of errors for fonts and libraries
	// that cannot be used: parse failures, closed libraries, closed faces.
	ErrResourceUnavailable = errors.New("text: resource unavailable")

	// ErrLibraryClosed is returned by LoadFace after Library.Close.
	ErrLibraryClosed = fmt.Errorf("%w: library closed", ErrResourceUnavailable)

	// ErrFaceClosed is returned by Face methods after Face.Close.
	ErrFaceClosed = fmt.Errorf("%w: face closed", ErrResourceUnavailable)

	// ErrUnknownBackend is returned when no outline backend is registered
	// under the requested name.
	ErrUnknownBackend = errors.New("text: unknown outline backend")

	// ErrGlyphNotOutline is returned for glyphs that have no vector
	// outline: colored, bitmap or out-of-range glyphs.
	ErrGlyphNotOutline = errors.New("text: glyph is not an outline")
)

// FontError records a failed font operation and its cause.
type FontError struct {
	Op  string
	GID GlyphID
	Err error
}

func (e *FontError) Error() string {
	if e.Op == "outline" {
		return fmt.Sprintf("text: %s glyph %d: %v", e.Op, e.GID, e.Err)
	}
	return "text: " + e.Op + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
