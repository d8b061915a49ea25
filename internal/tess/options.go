package tess

// DefaultTolerance is the default maximum flattening error, in path units.
const DefaultTolerance = 0.1

// DefaultMiterLimit is the default miter limit (matches SVG).
const DefaultMiterLimit = 4.0

// LineCap specifies the shape of open path endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapSquare extends the stroke by half its width past the endpoint.
	LineCapSquare
	// LineCapRound ends the stroke with a half disc.
	LineCapRound
)

// String returns the name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapSquare:
		return "square"
	case LineCapRound:
		return "round"
	default:
		return "unknown"
	}
}

// LineJoin specifies the shape of corners between stroke segments.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet, falling back to
	// a bevel when the miter limit is exceeded.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the corner with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// String returns the name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// FillRule decides which regions of a contour are inside.
type FillRule int

const (
	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonZero fills regions with a non-zero winding number.
	FillRuleNonZero
)

// String returns the name of the rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleEvenOdd:
		return "evenodd"
	case FillRuleNonZero:
		return "nonzero"
	default:
		return "unknown"
	}
}

// FillOptions parameterizes the fill tessellator.
//
// FillRule matters only for self-intersecting contours: a pentagram under
// FillRuleEvenOdd leaves its center empty, under FillRuleNonZero it is
// filled.
type FillOptions struct {
	// Tolerance is the maximum flattening error. Default: DefaultTolerance.
	Tolerance float64
	// FillRule selects the inside of the contour. Default: FillRuleEvenOdd.
	FillRule FillRule
}

// DefaultFillOptions returns fill options with default settings.
func DefaultFillOptions() FillOptions {
	return FillOptions{
		Tolerance: DefaultTolerance,
		FillRule:  FillRuleEvenOdd,
	}
}

// WithTolerance returns a copy of the options with the given tolerance.
func (o FillOptions) WithTolerance(tolerance float64) FillOptions {
	o.Tolerance = tolerance
	return o
}

// WithFillRule returns a copy of the options with the given fill rule.
func (o FillOptions) WithFillRule(rule FillRule) FillOptions {
	o.FillRule = rule
	return o
}

// StrokeOptions parameterizes the stroke tessellator.
type StrokeOptions struct {
	// LineWidth is the full width of the stroke. Default: 1.
	LineWidth float64
	// StartCap is the cap at the first point of an open path. Default: butt.
	StartCap LineCap
	// EndCap is the cap at the last point of an open path. Default: butt.
	EndCap LineCap
	// LineJoin is the corner style. Default: miter.
	LineJoin LineJoin
	// MiterLimit bounds the miter length relative to half the line width.
	// Default: DefaultMiterLimit.
	MiterLimit float64
	// Tolerance is the maximum flattening error. Default: DefaultTolerance.
	Tolerance float64
}

// DefaultStrokeOptions returns stroke options with default settings:
// a 1 unit wide line with butt caps and miter joins.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		LineWidth:  1.0,
		StartCap:   LineCapButt,
		EndCap:     LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: DefaultMiterLimit,
		Tolerance:  DefaultTolerance,
	}
}

// WithLineWidth returns a copy of the options with the given width.
func (o StrokeOptions) WithLineWidth(width float64) StrokeOptions {
	o.LineWidth = width
	return o
}

// WithLineCap returns a copy of the options using lineCap at both ends.
func (o StrokeOptions) WithLineCap(lineCap LineCap) StrokeOptions {
	o.StartCap = lineCap
	o.EndCap = lineCap
	return o
}

// WithStartCap returns a copy of the options with the given start cap.
func (o StrokeOptions) WithStartCap(lineCap LineCap) StrokeOptions {
	o.StartCap = lineCap
	return o
}

// WithEndCap returns a copy of the options with the given end cap.
func (o StrokeOptions) WithEndCap(lineCap LineCap) StrokeOptions {
	o.EndCap = lineCap
	return o
}

// WithLineJoin returns a copy of the options with the given join.
func (o StrokeOptions) WithLineJoin(join LineJoin) StrokeOptions {
	o.LineJoin = join
	return o
}

// WithMiterLimit returns a copy of the options with the given miter limit.
// Values below 1 are raised to 1, which turns every miter into a bevel.
func (o StrokeOptions) WithMiterLimit(limit float64) StrokeOptions {
	if limit < 1 {
		limit = 1
	}
	o.MiterLimit = limit
	return o
}

// WithTolerance returns a copy of the options with the given tolerance.
func (o StrokeOptions) WithTolerance(tolerance float64) StrokeOptions {
	o.Tolerance = tolerance
	return o
}

// tolerance returns t, or the default if t is not positive.
func tolerance(t float64) float64 {
	if t > 0 {
		return t
	}
	return DefaultTolerance
}
