package text

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/text3d/internal/logx"
)

// Library owns parsed fonts and the shared shaper. It replaces a process-wide
// font engine singleton: callers create one, load faces from it and close it
// when done.
//
// Library is safe for concurrent use.
type Library struct {
	mu     sync.Mutex
	closed bool
	faces  map[*Face]struct{}

	shaper *Shaper
	config libraryConfig
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryConfig)

type libraryConfig struct {
	backend string
}

// WithDefaultBackend sets the outline backend used by LoadFace when the face
// options do not name one.
func WithDefaultBackend(name string) LibraryOption {
	return func(c *libraryConfig) {
		c.backend = name
	}
}

// NewLibrary creates a new Library.
func NewLibrary(opts ...LibraryOption) *Library {
	cfg := libraryConfig{backend: DefaultBackend}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Library{
		faces:  make(map[*Face]struct{}),
		shaper: NewShaper(),
		config: cfg,
	}
}

// LoadFace parses font data and returns a Face at the configured size.
// The data slice is copied internally and can be reused after this call.
func (l *Library) LoadFace(data []byte, opts ...FaceOption) (*Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, ErrEmptyFontData)
	}

	cfg := defaultFaceConfig()
	cfg.backend = l.config.backend
	for _, opt := range opts {
		opt(&cfg)
	}

	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return nil, ErrLibraryClosed
	}

	backend, err := getBackend(cfg.backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := newFace(l, backend, dataCopy, cfg)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, ErrLibraryClosed
	}
	l.faces[face] = struct{}{}

	logx.Logger().Debug("text: face loaded",
		"name", face.Name(), "backend", cfg.backend, "ppem", face.PPEM())
	return face, nil
}

// LoadFaceFromFile reads a font file and loads it with LoadFace.
func (l *Library) LoadFaceFromFile(path string, opts ...FaceOption) (*Face, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read font file: %w", ErrResourceUnavailable, err)
	}
	return l.LoadFace(data, opts...)
}

// Faces returns the number of open faces.
func (l *Library) Faces() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.faces)
}

// Closed reports whether Close has been called.
func (l *Library) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Close closes every face loaded from the library, then the library itself.
// Close is idempotent.
func (l *Library) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	faces := make([]*Face, 0, len(l.faces))
	for f := range l.faces {
		faces = append(faces, f)
	}
	l.faces = make(map[*Face]struct{})
	l.mu.Unlock()

	for _, f := range faces {
		f.release()
	}
	return nil
}

// forget removes a closed face from the open set.
func (l *Library) forget(f *Face) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.faces, f)
}
