package text

import (
	"fmt"
	"sort"
	"sync"
)

// Backend is a font outline decoding backend.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt vs github.com/golang/freetype).
type Backend interface {
	// Parse parses font data and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a parsed font file.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// LoadOutline decodes the outline of a glyph scaled to ppem pixels per
	// em, with y pointing up.
	LoadOutline(gid GlyphID, ppem float64) (Outline, error)
}

// Backend names.
const (
	BackendSFNT     = "sfnt"
	BackendTrueType = "truetype"
)

// DefaultBackend is the backend used when none is named.
const DefaultBackend = BackendSFNT

var (
	backendMu       sync.RWMutex
	backendRegistry = map[string]Backend{
		BackendSFNT:     sfntBackend{},
		BackendTrueType: truetypeBackend{},
	}
)

// RegisterBackend registers a custom outline backend under name,
// replacing any backend already registered with that name.
func RegisterBackend(name string, b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backendRegistry[name] = b
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	backendMu.RLock()
	defer backendMu.RUnlock()
	names := make([]string, 0, len(backendRegistry))
	for name := range backendRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getBackend returns the backend registered under name.
// An empty name selects DefaultBackend.
func getBackend(name string) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}
	backendMu.RLock()
	defer backendMu.RUnlock()
	if b, ok := backendRegistry[name]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
