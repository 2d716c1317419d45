package text3d

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/text3d/mesh"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !cfg.IsEmpty() {
		t.Error("default config has no text and should be empty")
	}
	if !cfg.Transform.Transform().IsIdentity() {
		t.Error("default transform should be the identity")
	}
	if !cfg.Front || !cfg.Back || !cfg.Side {
		t.Error("all faces should be enabled by default")
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "text.toml", `
text = "Hi"
font = "fonts/go.ttf"
depth = 4.5
side = false
halign = "right"
valign = "bottom"
script = "Latn"

[transform]
rotation = [0.0, 0.0, 90.0]

[weld]
policy = "hash"
`},
		{"yaml", "text.yml", `
text: Hi
font: fonts/go.ttf
depth: 4.5
side: false
halign: right
valign: bottom
script: Latn
transform:
  rotation: [0, 0, 90]
weld:
  policy: hash
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}

			if cfg.Text != "Hi" || cfg.Depth != 4.5 || cfg.Side {
				t.Errorf("scalars not loaded: %+v", cfg)
			}
			if cfg.HAlign != mesh.AlignRight || cfg.VAlign != mesh.AlignBottom {
				t.Errorf("alignment = %v/%v, want right/bottom", cfg.HAlign, cfg.VAlign)
			}
			if cfg.Transform.Rotation != [3]float64{0, 0, 90} {
				t.Errorf("rotation = %v", cfg.Transform.Rotation)
			}
			if want := filepath.Join(filepath.Dir(path), "fonts", "go.ttf"); cfg.FontPath != want {
				t.Errorf("FontPath = %q, want %q", cfg.FontPath, want)
			}

			// Unset keys keep their defaults.
			if !cfg.Front || cfg.BezierSteps != DefaultBezierSteps || cfg.Transform.Scale != [3]float64{1, 1, 1} {
				t.Errorf("defaults lost: %+v", cfg)
			}
			if p, err := cfg.Weld.WeldPolicy(); err != nil || p != (mesh.HashWeld{}) {
				t.Errorf("WeldPolicy = %v, %v", p, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want error
	}{
		{"unknown extension", func(t *testing.T) string { return writeFile(t, "cfg.json", "{}") }, ErrUnknownConfigFormat},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.toml") }, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path(t)); !errors.Is(err, tt.want) {
				t.Errorf("LoadConfig error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadConfig(writeFile(t, "bad.toml", "halign = \"diagonal\"")); err == nil {
		t.Error("an unknown alignment should fail to load")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"size", func(c *Config) { c.Size = 0 }},
		{"dpi", func(c *Config) { c.DPI = -1 }},
		{"steps", func(c *Config) { c.BezierSteps = 0 }},
		{"depth", func(c *Config) { c.Depth = -1 }},
		{"script", func(c *Config) { c.Script = "Q" }},
		{"weld", func(c *Config) { c.Weld.Policy = "octree" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithText("x"),
		WithDepth(2),
		WithFaces(true, false, true),
		WithAlignment(mesh.AlignLeft, mesh.AlignTop),
		WithLineSpacing(50),
		WithBezierSteps(8),
		WithWeld(WeldWindow, 16),
	)
	if cfg.Text != "x" || cfg.Depth != 2 || cfg.Back || cfg.LineSpacing != 50 || cfg.BezierSteps != 8 {
		t.Errorf("options not applied: %+v", cfg)
	}
	if cfg.HAlign != mesh.AlignLeft || cfg.VAlign != mesh.AlignTop {
		t.Errorf("alignment = %v/%v", cfg.HAlign, cfg.VAlign)
	}
	if p, _ := cfg.Weld.WeldPolicy(); p != (mesh.WindowWeld{Size: 16}) {
		t.Errorf("WeldPolicy = %v", p)
	}
}

func TestConfig_ZeroScaleIsUnit(t *testing.T) {
	var tc TransformConfig
	if !tc.Transform().IsIdentity() {
		t.Error("zero TransformConfig should be the identity")
	}
}
