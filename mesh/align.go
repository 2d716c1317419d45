package mesh

import (
	"fmt"
	"strings"
)

// HAlign is the horizontal alignment of the text block relative to the origin.
type HAlign uint8

const (
	// AlignLeft puts the left edge of the bounds at x=0.
	AlignLeft HAlign = iota

	// AlignCenter puts the horizontal center of the bounds at x=0.
	AlignCenter

	// AlignRight puts the right edge of the bounds at x=0.
	AlignRight
)

// String returns a string representation of the alignment.
func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a HAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *HAlign) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "left":
		*a = AlignLeft
	case "center", "centre":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	default:
		return fmt.Errorf("mesh: unknown horizontal alignment %q", b)
	}
	return nil
}

// VAlign is the vertical alignment of the text block relative to the origin.
type VAlign uint8

const (
	// AlignTop puts the top edge of the bounds at y=0.
	AlignTop VAlign = iota

	// AlignMiddle puts the vertical center of the bounds at y=0.
	AlignMiddle

	// AlignBottom puts the bottom edge of the bounds at y=0.
	AlignBottom
)

// String returns a string representation of the alignment.
func (a VAlign) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "center"
	case AlignBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a VAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *VAlign) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "top":
		*a = AlignTop
	case "center", "centre", "middle":
		*a = AlignMiddle
	case "bottom":
		*a = AlignBottom
	default:
		return fmt.Errorf("mesh: unknown vertical alignment %q", b)
	}
	return nil
}

// AlignmentOffset returns the 2D translation (z=0) that moves the relevant
// edge or center of the bounds to the origin on each axis.
// An empty box yields the zero translation.
func AlignmentOffset(b Box, h HAlign, v VAlign) Point {
	if b.IsEmpty() {
		return Point{}
	}

	var off Point
	switch h {
	case AlignLeft:
		off.X = -b.Min.X
	case AlignRight:
		off.X = -b.Max.X
	default:
		off.X = -b.Center().X
	}

	switch v {
	case AlignBottom:
		off.Y = -b.Min.Y
	case AlignTop:
		off.Y = -b.Max.Y
	default:
		off.Y = -b.Center().Y
	}
	return off
}

// Align translates every channel of the set so that its bounds are aligned
// to the origin, and returns the translation applied.
func Align(s *TriangleSet, h HAlign, v VAlign) Point {
	off := AlignmentOffset(s.Bounds(), h, v)
	if !off.IsZero() {
		s.Translate(off)
	}
	return off
}
