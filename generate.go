package text3d

import (
	"context"
	"fmt"

	"github.com/gogpu/text3d/internal/parallel"
	"github.com/gogpu/text3d/mesh"
	"github.com/gogpu/text3d/text"
)

// Result is one complete generated mesh and the layout that produced it.
// A Result is read-only once returned.
type Result struct {
	Mesh  *mesh.Result
	Lines []LineMetrics
}

// GenerateMesh runs one full generation pass over cfg.
//
// An empty configuration (no text or no font) is not an error: it returns
// (nil, nil). Font loading, shaping and non-outline glyphs abort the pass;
// degenerate contours and failed triangulations are skipped.
//
// If lib is nil a private library is created and closed before returning.
func GenerateMesh(ctx context.Context, lib *text.Library, cfg Config) (*Result, error) {
	if cfg.IsEmpty() {
		return nil, nil
	}

	var pool *parallel.Pool
	if cfg.Workers != 1 {
		pool = parallel.New(cfg.Workers)
		defer pool.Close()
	}
	return generate(ctx, lib, &cfg, pool)
}

// generate is GenerateMesh with an externally owned pool, which may be nil.
func generate(ctx context.Context, lib *text.Library, cfg *Config, pool *parallel.Pool) (*Result, error) {
	if cfg.IsEmpty() {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if lib == nil {
		lib = text.NewLibrary()
		defer lib.Close()
	}

	face, err := loadFace(lib, cfg)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	engine, err := newLayoutEngine(face, cfg, pool)
	if err != nil {
		return nil, err
	}
	set, lines, err := engine.run(ctx, cfg.Text)
	if err != nil {
		return nil, err
	}

	weld, err := cfg.Weld.WeldPolicy()
	if err != nil {
		return nil, err
	}
	m := mesh.Assemble(&set, mesh.AssembleOptions{
		HAlign:    cfg.HAlign,
		VAlign:    cfg.VAlign,
		Transform: cfg.Transform.Transform(),
		Weld:      weld,
	})
	return &Result{Mesh: m, Lines: lines}, nil
}

func loadFace(lib *text.Library, cfg *Config) (*text.Face, error) {
	opts := []text.FaceOption{
		text.WithSize(cfg.Size),
		text.WithDPI(cfg.DPI),
		text.WithBackend(cfg.Backend),
	}
	if len(cfg.Font) > 0 {
		face, err := lib.LoadFace(cfg.Font, opts...)
		if err != nil {
			return nil, fmt.Errorf("text3d: load font: %w", err)
		}
		return face, nil
	}
	face, err := lib.LoadFaceFromFile(cfg.FontPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("text3d: load font %s: %w", cfg.FontPath, err)
	}
	return face, nil
}
