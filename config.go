package text3d

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/text3d/mesh"
	"github.com/gogpu/text3d/text"
)

// Default configuration values.
const (
	DefaultBezierSteps = 3
	DefaultDepth       = 10
	DefaultLineSpacing = 32
)

// Weld policy names accepted in WeldConfig.Policy.
const (
	WeldWindow = "window"
	WeldHash   = "hash"
)

// Config is everything a generation pass needs. It is copied when a pass
// starts; changing it afterwards does not affect the running pass.
type Config struct {
	// Text is the text to build. Lines are separated by \n, \r\n or \r.
	Text string `toml:"text" yaml:"text"`

	// Font is the raw TrueType or OpenType data. When empty, FontPath is
	// read instead.
	Font     []byte `toml:"-" yaml:"-"`
	FontPath string `toml:"font" yaml:"font"`

	// Size is the font size in points at DPI dots per inch.
	Size float64 `toml:"size" yaml:"size"`
	DPI  float64 `toml:"dpi" yaml:"dpi"`

	// BezierSteps is the number of segments each curve is flattened into.
	BezierSteps int `toml:"bezier_steps" yaml:"bezier_steps"`

	// Depth is the extrusion depth along +z.
	Depth float64 `toml:"depth" yaml:"depth"`

	Front bool `toml:"front" yaml:"front"`
	Back  bool `toml:"back" yaml:"back"`
	Side  bool `toml:"side" yaml:"side"`

	HAlign mesh.HAlign `toml:"halign" yaml:"halign"`
	VAlign mesh.VAlign `toml:"valign" yaml:"valign"`

	// LineSpacing is the fixed distance between baselines.
	LineSpacing float64 `toml:"line_spacing" yaml:"line_spacing"`

	Transform TransformConfig `toml:"transform" yaml:"transform"`

	// Script is an optional ISO 15924 tag such as "Latn". When empty the
	// script is detected per run.
	Script string `toml:"script" yaml:"script"`

	// Language is an optional BCP 47 tag. When empty the process default
	// language is used.
	Language string `toml:"language" yaml:"language"`

	// Backend names the outline backend, "sfnt" or "truetype".
	Backend string `toml:"backend" yaml:"backend"`

	// NormalizeWinding fixes contour orientation from nesting parity so
	// that fonts of either winding convention fill correctly.
	NormalizeWinding bool `toml:"normalize_winding" yaml:"normalize_winding"`

	Weld WeldConfig `toml:"weld" yaml:"weld"`

	// Workers is the number of goroutines tessellating glyphs.
	// Zero means GOMAXPROCS; one disables parallelism.
	Workers int `toml:"workers" yaml:"workers"`
}

// TransformConfig is the rigid transform applied after alignment.
// Rotation is in degrees about X, Y and Z.
type TransformConfig struct {
	Rotation    [3]float64 `toml:"rotation" yaml:"rotation"`
	Translation [3]float64 `toml:"translation" yaml:"translation"`
	Scale       [3]float64 `toml:"scale" yaml:"scale"`
}

// Transform converts the configuration into a mesh transform.
// An all-zero scale is read as unit scale.
func (tc TransformConfig) Transform() mesh.Transform {
	if tc.Scale == ([3]float64{}) {
		tc.Scale = [3]float64{1, 1, 1}
	}
	return mesh.NewTransform(
		mesh.Pt(tc.Rotation[0], tc.Rotation[1], tc.Rotation[2]),
		mesh.Pt(tc.Translation[0], tc.Translation[1], tc.Translation[2]),
		mesh.Pt(tc.Scale[0], tc.Scale[1], tc.Scale[2]),
	)
}

// WeldConfig selects the vertex weld policy.
type WeldConfig struct {
	// Policy is WeldWindow or WeldHash.
	Policy string `toml:"policy" yaml:"policy"`

	// Window is the search window of the window policy.
	Window int `toml:"window" yaml:"window"`
}

// WeldPolicy converts the configuration into a mesh weld policy.
func (wc WeldConfig) WeldPolicy() (mesh.WeldPolicy, error) {
	switch strings.ToLower(wc.Policy) {
	case "", WeldWindow:
		return mesh.WindowWeld{Size: wc.Window}, nil
	case WeldHash:
		return mesh.HashWeld{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown weld policy %q", ErrInvalidConfig, wc.Policy)
	}
}

// DefaultConfig returns the configuration used when nothing is set:
// all faces, centered, identity transform.
func DefaultConfig() Config {
	return Config{
		Size:             text.DefaultSize,
		DPI:              text.DefaultDPI,
		BezierSteps:      DefaultBezierSteps,
		Depth:            DefaultDepth,
		Front:            true,
		Back:             true,
		Side:             true,
		HAlign:           mesh.AlignCenter,
		VAlign:           mesh.AlignMiddle,
		LineSpacing:      DefaultLineSpacing,
		Transform:        TransformConfig{Scale: [3]float64{1, 1, 1}},
		Backend:          text.DefaultBackend,
		NormalizeWinding: true,
		Weld:             WeldConfig{Policy: WeldWindow, Window: mesh.DefaultWeldWindow},
	}
}

// Option modifies a Config.
type Option func(*Config)

// NewConfig returns DefaultConfig with the options applied.
//
// Example:
//
//	cfg := text3d.NewConfig(
//	    text3d.WithText("Hi"),
//	    text3d.WithFont(goregular.TTF),
//	    text3d.WithDepth(4),
//	)
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithText sets the text.
func WithText(s string) Option {
	return func(c *Config) {
		c.Text = s
	}
}

// WithFont sets the font data.
func WithFont(data []byte) Option {
	return func(c *Config) {
		c.Font = data
	}
}

// WithSize sets the font size in points.
func WithSize(points float64) Option {
	return func(c *Config) {
		c.Size = points
	}
}

// WithDepth sets the extrusion depth.
func WithDepth(depth float64) Option {
	return func(c *Config) {
		c.Depth = depth
	}
}

// WithFaces enables or disables the front, back and side channels.
func WithFaces(front, back, side bool) Option {
	return func(c *Config) {
		c.Front, c.Back, c.Side = front, back, side
	}
}

// WithAlignment sets the horizontal and vertical alignment.
func WithAlignment(h mesh.HAlign, v mesh.VAlign) Option {
	return func(c *Config) {
		c.HAlign, c.VAlign = h, v
	}
}

// WithLineSpacing sets the distance between baselines.
func WithLineSpacing(spacing float64) Option {
	return func(c *Config) {
		c.LineSpacing = spacing
	}
}

// WithBezierSteps sets the curve flattening step count.
func WithBezierSteps(steps int) Option {
	return func(c *Config) {
		c.BezierSteps = steps
	}
}

// WithScript forces the script of every run, e.g. "Arab".
func WithScript(tag string) Option {
	return func(c *Config) {
		c.Script = tag
	}
}

// WithWeld sets the weld policy.
func WithWeld(policy string, window int) Option {
	return func(c *Config) {
		c.Weld = WeldConfig{Policy: policy, Window: window}
	}
}

// IsEmpty reports whether there is nothing to generate: no text or no font.
func (c *Config) IsEmpty() bool {
	return c.Text == "" || (len(c.Font) == 0 && c.FontPath == "")
}

// Validate checks the numeric fields and the named choices.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size %v", ErrInvalidConfig, c.Size)
	case c.DPI <= 0:
		return fmt.Errorf("%w: dpi %v", ErrInvalidConfig, c.DPI)
	case c.BezierSteps < 1:
		return fmt.Errorf("%w: bezier steps %d", ErrInvalidConfig, c.BezierSteps)
	case c.Depth < 0:
		return fmt.Errorf("%w: depth %v", ErrInvalidConfig, c.Depth)
	}
	if _, err := text.ParseScript(c.Script); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Weld.WeldPolicy(); err != nil {
		return err
	}
	return nil
}

// clone returns a copy that shares nothing mutable with c.
func (c *Config) clone() Config {
	out := *c
	out.Font = bytes.Clone(c.Font)
	return out
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file over
// DefaultConfig. A relative font path is resolved against the file's
// directory.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("text3d: read config: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("text3d: parse config %s: %w", path, err)
	}

	if cfg.FontPath != "" && !filepath.IsAbs(cfg.FontPath) {
		cfg.FontPath = filepath.Join(filepath.Dir(path), cfg.FontPath)
	}
	return cfg, nil
}
