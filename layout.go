package text3d

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/text3d/contour"
	"github.com/gogpu/text3d/internal/parallel"
	"github.com/gogpu/text3d/mesh"
	"github.com/gogpu/text3d/tessellate"
	"github.com/gogpu/text3d/text"
)

// tabAdvanceFactor is how many shaped advances a tab moves the pen.
const tabAdvanceFactor = 3

// LineMetrics describes one laid out line.
type LineMetrics struct {
	// Index is the zero-based line number.
	Index int

	// Baseline is the pen y of the line.
	Baseline float64

	// Advance is the pen x at the end of the line.
	Advance float64

	// Glyphs is the number of shaped glyphs, including blanks.
	Glyphs int

	// MaxHeight is the tallest glyph outline on the line. It does not
	// affect line spacing.
	MaxHeight float64
}

// placedGlyph is a glyph outline waiting to be tessellated at offset.
type placedGlyph struct {
	outline text.Outline
	offset  mesh.Point
}

// layoutEngine places shaped glyphs line by line and collects their
// triangles.
type layoutEngine struct {
	face     *text.Face
	seg      *text.Segmenter
	pool     *parallel.Pool
	script   language.Script
	lang     language.Language
	steps    int
	spacing  float64
	normWind bool
	tess     tessellate.Options
}

func newLayoutEngine(face *text.Face, cfg *Config, pool *parallel.Pool) (*layoutEngine, error) {
	script, err := text.ParseScript(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &layoutEngine{
		face:     face,
		seg:      text.NewSegmenter(),
		pool:     pool,
		script:   script,
		lang:     text.ResolveLanguage(cfg.Language),
		steps:    cfg.BezierSteps,
		spacing:  cfg.LineSpacing,
		normWind: cfg.NormalizeWinding,
		tess: tessellate.Options{
			Depth: cfg.Depth,
			Front: cfg.Front,
			Back:  cfg.Back,
			Side:  cfg.Side,
		},
	}, nil
}

// splitLines splits s on \r\n, \r and \n. Empty lines are kept.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// run lays out every line of s. The first baseline is y=0; each following
// line starts LineSpacing lower. ctx is checked between lines.
func (e *layoutEngine) run(ctx context.Context, s string) (mesh.TriangleSet, []LineMetrics, error) {
	var set mesh.TriangleSet
	lines := splitLines(s)
	metrics := make([]LineMetrics, 0, len(lines))

	pen := mesh.Point{}
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return mesh.TriangleSet{}, nil, err
		}

		m, err := e.layoutLine(line, pen, &set)
		if err != nil {
			return mesh.TriangleSet{}, nil, fmt.Errorf("text3d: line %d: %w", i, err)
		}
		m.Index = i
		metrics = append(metrics, m)
		Logger().Debug("text3d: line laid out",
			"line", i, "glyphs", m.Glyphs, "advance", m.Advance, "max_height", m.MaxHeight)

		pen.X = 0
		pen.Y -= e.spacing
	}
	return set, metrics, nil
}

// layoutLine shapes one line starting at pen and appends its triangles
// to set. Outline and shaping failures abort the line.
func (e *layoutEngine) layoutLine(line string, pen mesh.Point, set *mesh.TriangleSet) (LineMetrics, error) {
	m := LineMetrics{Baseline: pen.Y}
	runes := []rune(line)

	var placed []placedGlyph
	for _, r := range e.seg.Runs(runes) {
		if r.Length == 0 {
			continue
		}

		script := e.script
		if script == language.Unknown {
			script = text.DetectScript(runes[r.Start:r.End()])
		}

		glyphs, err := e.face.Shape(text.ShapeInput{
			Text:      runes,
			Start:     r.Start,
			End:       r.End(),
			Direction: r.Direction,
			Script:    script,
			Language:  e.lang,
		})
		if err != nil {
			return m, err
		}
		if len(glyphs) == 0 {
			return m, fmt.Errorf("%w: run at rune %d", ErrNoGlyphPositions, r.Start)
		}

		for _, g := range glyphs {
			o, err := e.face.Outline(g.GID)
			if err != nil {
				return m, err
			}
			m.Glyphs++
			m.MaxHeight = max(m.MaxHeight, o.Height())

			var src rune
			if g.Cluster >= 0 && g.Cluster < len(runes) {
				src = runes[g.Cluster]
			}

			switch src {
			case '\t':
				pen.X += tabAdvanceFactor * g.XAdvance
				continue
			case ' ':
			default:
				if !o.IsEmpty() {
					placed = append(placed, placedGlyph{
						outline: o,
						offset:  pen.Add(mesh.Pt(g.XOffset, g.YOffset, 0)),
					})
				}
			}
			pen.X += g.XAdvance
			pen.Y += g.YAdvance
		}
	}

	m.Advance = pen.X
	e.tessellate(placed, set)
	return m, nil
}

// tessellate builds the triangles of the placed glyphs, in parallel when a
// pool is available, and appends them to set in placement order.
func (e *layoutEngine) tessellate(placed []placedGlyph, set *mesh.TriangleSet) {
	results := make([]mesh.TriangleSet, len(placed))
	work := make([]func(), len(placed))
	for i, p := range placed {
		work[i] = func() {
			contours := contour.Vectorise(p.outline.Loops, e.steps, e.normWind)
			results[i] = tessellate.Glyph(contours, p.offset, e.tess)
		}
	}

	if e.pool != nil && len(work) > 1 {
		e.pool.Run(work)
	} else {
		for _, fn := range work {
			fn()
		}
	}

	for i := range results {
		set.Merge(&results[i])
	}
}
