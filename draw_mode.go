package gfx

import (
	"strconv"

	"github.com/gogpu/gfx/internal/tess"
)

// Tessellation options, re-exported for callers building DrawModes.
type (
	FillOptions   = tess.FillOptions
	StrokeOptions = tess.StrokeOptions
	LineCap       = tess.LineCap
	LineJoin      = tess.LineJoin
	FillRule      = tess.FillRule
)

// Line caps.
const (
	LineCapButt   = tess.LineCapButt
	LineCapSquare = tess.LineCapSquare
	LineCapRound  = tess.LineCapRound
)

// Line joins. LineJoinMiterClip is drawn as a miter that falls back to a
// bevel past the miter limit.
const (
	LineJoinMiter     = tess.LineJoinMiter
	LineJoinMiterClip = tess.LineJoinMiter
	LineJoinRound     = tess.LineJoinRound
	LineJoinBevel     = tess.LineJoinBevel
)

// Fill rules.
const (
	FillRuleEvenOdd = tess.FillRuleEvenOdd
	FillRuleNonZero = tess.FillRuleNonZero
)

// DefaultFillOptions returns fill options with tolerance 0.1.
func DefaultFillOptions() FillOptions { return tess.DefaultFillOptions() }

// DefaultStrokeOptions returns stroke options for a 1 unit wide line with
// butt caps, miter joins, miter limit 4 and tolerance 0.1.
func DefaultStrokeOptions() StrokeOptions { return tess.DefaultStrokeOptions() }

// DrawMode selects whether a shape is filled or stroked, and how.
// The zero value fills with default options.
type DrawMode struct {
	stroke bool
	fill   FillOptions
	line   StrokeOptions
}

// FillMode fills shapes with default options. Its tolerance is left unset,
// so the builder's tolerance (see WithTolerance) applies.
func FillMode() DrawMode {
	return Fill(DefaultFillOptions().WithTolerance(0))
}

// Fill fills shapes with the given options.
func Fill(opts FillOptions) DrawMode {
	return DrawMode{fill: opts}
}

// StrokeMode strokes shape outlines at the given width with default options.
// Like FillMode it takes its tolerance from the builder.
func StrokeMode(width float32) DrawMode {
	return Stroke(DefaultStrokeOptions().WithLineWidth(float64(width)).WithTolerance(0))
}

// Stroke strokes shape outlines with the given options.
func Stroke(opts StrokeOptions) DrawMode {
	return DrawMode{stroke: true, line: opts}
}

// IsFill reports whether m fills shapes.
func (m DrawMode) IsFill() bool { return !m.stroke }

// FillOptions returns the fill options; meaningful only when IsFill.
func (m DrawMode) FillOptions() FillOptions { return m.fill }

// StrokeOptions returns the stroke options; meaningful only when !IsFill.
func (m DrawMode) StrokeOptions() StrokeOptions { return m.line }

// withTolerance returns m with its tolerance set to tol when unset.
func (m DrawMode) withTolerance(tol float64) DrawMode {
	if m.stroke {
		if m.line.Tolerance <= 0 {
			m.line.Tolerance = tol
		}
		return m
	}
	if m.fill.Tolerance <= 0 {
		m.fill.Tolerance = tol
	}
	return m
}

// withExactTolerance returns m with its tolerance replaced by tol.
func (m DrawMode) withExactTolerance(tol float64) DrawMode {
	m.fill.Tolerance = tol
	m.line.Tolerance = tol
	return m
}

// String returns "fill" or "stroke(width)".
func (m DrawMode) String() string {
	if m.stroke {
		return "stroke(" + strconv.FormatFloat(m.line.LineWidth, 'g', -1, 64) + ")"
	}
	return "fill"
}
