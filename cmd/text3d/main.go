// Command text3d builds an extruded 3D mesh from text and writes it as OBJ,
// STL or a PNG preview of the front face.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/text3d"
	"github.com/gogpu/text3d/export"
	"github.com/gogpu/text3d/mesh"
	"github.com/gogpu/text3d/preview"
)

func main() {
	var (
		config  = flag.String("config", "", "TOML or YAML config file")
		txt     = flag.String("text", "", "text to build (overrides the config)")
		font    = flag.String("font", "", "font file (default Go Regular)")
		depth   = flag.Float64("depth", 0, "extrusion depth (overrides the config)")
		output  = flag.String("output", "text.obj", "output file: .obj, .stl or .png")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		text3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := text3d.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = text3d.LoadConfig(*config); err != nil {
			log.Fatal(err)
		}
	}
	if *txt != "" {
		cfg.Text = *txt
	}
	if *font != "" {
		cfg.FontPath = *font
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if cfg.FontPath == "" {
		cfg.Font = goregular.TTF
	}
	if cfg.Text == "" {
		log.Fatal("nothing to build: set -text or text in the config file")
	}

	res, err := text3d.GenerateMesh(context.Background(), nil, cfg)
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	if err := write(*output, res.Mesh); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := res.Mesh.Bounds
	log.Printf("Mesh saved to %s (%d lines, %d vertices, %d triangles, size %.1fx%.1fx%.1f)\n",
		*output, len(res.Lines), res.Mesh.VertexCount(), res.Mesh.TriangleCount(),
		b.Size().X, b.Size().Y, b.Size().Z)
}

func write(path string, m *mesh.Result) error {
	var encode func(io.Writer, *mesh.Result) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return preview.SavePNG(path, m, preview.DefaultOptions())
	case ".obj":
		encode = export.WriteOBJ
	case ".stl":
		encode = export.WriteSTL
	default:
		return fmt.Errorf("unknown output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f, m)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
