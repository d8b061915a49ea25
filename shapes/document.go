package shapes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gfx"
)

// Errors returned while applying a document.
var (
	ErrUnknownKind = errors.New("shapes: unknown shape kind")
	ErrUnknownMode = errors.New("shapes: unknown draw mode")
	ErrBadField    = errors.New("shapes: invalid field")
)

// Shape kinds.
const (
	KindLine        = "line"
	KindPolyline    = "polyline"
	KindPolygon     = "polygon"
	KindCircle      = "circle"
	KindEllipse     = "ellipse"
	KindRect        = "rect"
	KindRoundedRect = "rounded_rect"
	KindTriangles   = "triangles"
)

// Document is a list of shapes plus defaults.
type Document struct {
	// Tolerance is the default flattening tolerance. Zero means
	// gfx.DefaultTolerance.
	Tolerance float32 `yaml:"tolerance,omitempty" toml:"tolerance,omitempty"`
	Shapes    []Shape `yaml:"shapes" toml:"shapes"`
}

// Shape is one entry of a document. Which fields apply depends on Kind.
type Shape struct {
	Kind  string `yaml:"kind" toml:"kind"`
	Mode  string `yaml:"mode,omitempty" toml:"mode,omitempty"` // fill (default) or stroke
	Color string `yaml:"color,omitempty" toml:"color,omitempty"`

	// Stroke settings.
	Width      float32 `yaml:"width,omitempty" toml:"width,omitempty"`
	Cap        string  `yaml:"cap,omitempty" toml:"cap,omitempty"`
	Join       string  `yaml:"join,omitempty" toml:"join,omitempty"`
	MiterLimit float32 `yaml:"miter_limit,omitempty" toml:"miter_limit,omitempty"`

	// Fill settings.
	FillRule string `yaml:"fill_rule,omitempty" toml:"fill_rule,omitempty"`

	Tolerance    float32      `yaml:"tolerance,omitempty" toml:"tolerance,omitempty"`
	Points       [][2]float32 `yaml:"points,omitempty" toml:"points,omitempty"`
	Center       [2]float32   `yaml:"center,omitempty" toml:"center,omitempty"`
	Radius       float32      `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Radii        [2]float32   `yaml:"radii,omitempty" toml:"radii,omitempty"`
	Rect         [4]float32   `yaml:"rect,omitempty" toml:"rect,omitempty"` // x, y, w, h
	CornerRadius float32      `yaml:"corner_radius,omitempty" toml:"corner_radius,omitempty"`
}

// Build applies d to a new builder and returns the result.
func (d *Document) Build(opts ...gfx.BuilderOption) (gfx.MeshData, error) {
	if d.Tolerance > 0 {
		opts = append([]gfx.BuilderOption{gfx.WithTolerance(d.Tolerance)}, opts...)
	}
	b := gfx.NewMeshBuilder(opts...)
	if err := d.Apply(b); err != nil {
		return gfx.MeshData{}, err
	}
	return b.Build(), nil
}

// Apply adds every shape of d to b in order. It stops at the first shape
// that fails; shapes before it stay in the builder.
func (d *Document) Apply(b *gfx.MeshBuilder) error {
	for i := range d.Shapes {
		if err := d.Shapes[i].apply(b, d.tolerance()); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, d.Shapes[i].Kind, err)
		}
	}
	return nil
}

func (d *Document) tolerance() float32 {
	if d.Tolerance > 0 {
		return d.Tolerance
	}
	return gfx.DefaultTolerance
}

func (s *Shape) apply(b *gfx.MeshBuilder, defaultTol float32) error {
	color, err := s.color()
	if err != nil {
		return err
	}
	mode, err := s.mode()
	if err != nil {
		return err
	}
	tol := defaultTol
	if s.Tolerance > 0 {
		tol = s.Tolerance
	}

	switch strings.ToLower(s.Kind) {
	case KindLine:
		// Lines are always stroked, with the shape's stroke settings.
		var stroke gfx.DrawMode
		if stroke, err = s.strokeMode(); err != nil {
			return err
		}
		_, err = b.Polyline(stroke, s.points(), color)
	case KindPolyline:
		_, err = b.Polyline(mode, s.points(), color)
	case KindPolygon:
		_, err = b.Polygon(mode, s.points(), color)
	case KindCircle:
		b.Circle(mode, s.center(), s.Radius, tol, color)
	case KindEllipse:
		b.Ellipse(mode, s.center(), s.Radii[0], s.Radii[1], tol, color)
	case KindRect:
		_, err = b.Rectangle(mode, s.rect(), color)
	case KindRoundedRect:
		_, err = b.RoundedRectangle(mode, s.rect(), s.CornerRadius, color)
	case KindTriangles:
		_, err = b.Triangles(s.points(), color)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, s.Kind)
	}
	return err
}

func (s *Shape) color() (gfx.Color, error) {
	if s.Color == "" {
		return gfx.White, nil
	}
	return gfx.ParseColor(s.Color)
}

func (s *Shape) mode() (gfx.DrawMode, error) {
	switch strings.ToLower(s.Mode) {
	case "", "fill":
		return s.fillMode()
	case "stroke":
		return s.strokeMode()
	default:
		return gfx.DrawMode{}, fmt.Errorf("%w %q", ErrUnknownMode, s.Mode)
	}
}

// Tolerances are left unset so the builder default applies.

func (s *Shape) fillMode() (gfx.DrawMode, error) {
	opts := gfx.DefaultFillOptions().WithTolerance(0)
	switch strings.ToLower(s.FillRule) {
	case "":
	case "nonzero":
		opts = opts.WithFillRule(gfx.FillRuleNonZero)
	case "evenodd":
		opts = opts.WithFillRule(gfx.FillRuleEvenOdd)
	default:
		return gfx.DrawMode{}, fmt.Errorf("%w: fill_rule %q", ErrBadField, s.FillRule)
	}
	return gfx.Fill(opts), nil
}

func (s *Shape) strokeMode() (gfx.DrawMode, error) {
	opts := gfx.DefaultStrokeOptions().WithTolerance(0)
	if s.Width > 0 {
		opts = opts.WithLineWidth(float64(s.Width))
	}
	if s.MiterLimit > 0 {
		opts = opts.WithMiterLimit(float64(s.MiterLimit))
	}
	lineCap, ok := lineCaps[strings.ToLower(s.Cap)]
	if !ok {
		return gfx.DrawMode{}, fmt.Errorf("%w: cap %q", ErrBadField, s.Cap)
	}
	join, ok := lineJoins[strings.ToLower(s.Join)]
	if !ok {
		return gfx.DrawMode{}, fmt.Errorf("%w: join %q", ErrBadField, s.Join)
	}
	return gfx.Stroke(opts.WithLineCap(lineCap).WithLineJoin(join)), nil
}

var lineCaps = map[string]gfx.LineCap{
	"":       gfx.LineCapButt,
	"butt":   gfx.LineCapButt,
	"square": gfx.LineCapSquare,
	"round":  gfx.LineCapRound,
}

var lineJoins = map[string]gfx.LineJoin{
	"":           gfx.LineJoinMiter,
	"miter":      gfx.LineJoinMiter,
	"miter_clip": gfx.LineJoinMiterClip,
	"round":      gfx.LineJoinRound,
	"bevel":      gfx.LineJoinBevel,
}

func (s *Shape) points() []gfx.Point {
	pts := make([]gfx.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = gfx.Pt(p[0], p[1])
	}
	return pts
}

func (s *Shape) center() gfx.Point { return gfx.Pt(s.Center[0], s.Center[1]) }

func (s *Shape) rect() gfx.Rect {
	return gfx.NewRect(s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3])
}
