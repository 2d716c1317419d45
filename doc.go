// Package text3d converts Unicode text and a font into an extruded 3D
// triangle mesh.
//
// # Overview
//
// A mesh has three channels: the front face at z=0, the back face at
// z=depth and the side walls between them. Each channel is an indexed
// triangle list with flat normals. Multi-line text is laid out with a fixed
// line spacing, aligned around the origin and moved by a user transform.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/text3d"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	cfg := text3d.DefaultConfig()
//	cfg.Text = "Hello\nWorld"
//	cfg.Font = goregular.TTF
//
//	res, err := text3d.GenerateMesh(ctx, nil, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	front := res.Mesh.Channel(mesh.Front)
//
// For interactive use, a [Generator] rebuilds the mesh in the background
// whenever the configuration changes and publishes complete results only.
//
// # Architecture
//
// The pipeline is split into packages, leaves first:
//   - text: font loading, glyph outlines, shaping and bidi segmentation
//   - contour: curve flattening, winding and nesting classification
//   - tessellate: front/back triangulation and side extrusion
//   - mesh: alignment, transform and vertex welding
//   - export, preview: OBJ/STL writers and a PNG preview
//
// # Coordinate System
//
// Font space with y up. The first baseline is y=0, later lines move down
// by the line spacing. Extrusion goes toward +z.
package text3d
