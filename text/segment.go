package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// Run is a maximal range of a line with a single resolved direction.
// Start and Length count runes.
type Run struct {
	Start     int
	Length    int
	Direction Direction
}

// End returns the rune index one past the run.
func (r Run) End() int { return r.Start + r.Length }

// Segmenter splits a line into directional runs with the Unicode
// bidirectional algorithm.
type Segmenter struct {
	// BaseDirection forces the paragraph direction. When unset the
	// direction is taken from the first strong character.
	BaseDirection *Direction
}

// NewSegmenter returns a Segmenter that detects the paragraph direction.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Runs returns the directional runs of line in visual order.
// If the bidi algorithm fails, the whole line is one left-to-right run.
func (s *Segmenter) Runs(line []rune) []Run {
	if len(line) == 0 {
		return nil
	}
	fallback := []Run{{Start: 0, Length: len(line), Direction: DirectionLTR}}

	var opts []bidi.Option
	if s != nil && s.BaseDirection != nil {
		dir := bidi.LeftToRight
		if *s.BaseDirection == DirectionRTL {
			dir = bidi.RightToLeft
		}
		opts = append(opts, bidi.DefaultDirection(dir))
	}

	var p bidi.Paragraph
	if _, err := p.SetString(string(line), opts...); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return fallback
	}

	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos returns rune indices, end inclusive.
		start, end := run.Pos()
		if end >= len(line) {
			end = len(line) - 1
		}
		if start > end {
			continue
		}
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, Run{Start: start, Length: end - start + 1, Direction: dir})
	}
	if len(runs) == 0 {
		return fallback
	}
	return runs
}
