package text3d

import "errors"

// Sentinel errors for mesh generation.
var (
	// ErrNoGlyphPositions is returned when shaping a non-empty run yields
	// no glyphs. It aborts the whole generation.
	ErrNoGlyphPositions = errors.New("text3d: shaping produced no glyph positions")

	// ErrSuperseded is returned for a generation whose result was discarded
	// because a newer update was triggered.
	ErrSuperseded = errors.New("text3d: superseded by a newer update")

	// ErrGeneratorClosed is returned by updates on a closed Generator.
	ErrGeneratorClosed = errors.New("text3d: generator closed")

	// ErrInvalidConfig is returned for configurations that cannot produce
	// a mesh, such as a non-positive size.
	ErrInvalidConfig = errors.New("text3d: invalid configuration")

	// ErrUnknownConfigFormat is returned by LoadConfig for file extensions
	// other than .toml, .yaml and .yml.
	ErrUnknownConfigFormat = errors.New("text3d: unknown config file format")
)
