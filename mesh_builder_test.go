package gfx

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gfx/internal/tess"
)

func TestBuilderRectangleFill(t *testing.T) {
	b := NewMeshBuilder()
	if _, err := b.Rectangle(FillMode(), NewRect(0, 0, 10, 10), White); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	d := b.Build()

	if len(d.Vertices) != 4 || len(d.Indices) != 6 {
		t.Fatalf("got %d vertices, %d indices; want 4, 6", len(d.Vertices), len(d.Indices))
	}
	wantPos := [][2]float32{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	white := White.Linear().Array()
	for i, v := range d.Vertices {
		if v.Position != wantPos[i] {
			t.Errorf("vertex %d position = %v, want %v", i, v.Position, wantPos[i])
		}
		if v.UV != [2]float32{} {
			t.Errorf("vertex %d UV = %v, want (0,0)", i, v.UV)
		}
		if v.Color != white {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, white)
		}
	}
	if want := []uint32{0, 1, 2, 0, 2, 3}; !slices.Equal(d.Indices, want) {
		t.Errorf("indices = %v, want %v", d.Indices, want)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// Two triangles must cover the 10x10 square exactly.
	if area := meshArea(d); math.Abs(area-100) > 1e-3 {
		t.Errorf("covered area = %v, want 100", area)
	}
}

func TestBuilderTriangles(t *testing.T) {
	b := NewMeshBuilder()
	// Something before, so the index base is not zero.
	if _, err := b.Triangles([]Point{{0, 0}, {1, 0}, {0, 1}}, Red); err != nil {
		t.Fatal(err)
	}
	pts := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 0}, {2, 2}, {0, 2}}
	if _, err := b.Triangles(pts, Blue); err != nil {
		t.Fatal(err)
	}
	d := b.Build()

	if len(d.Indices) != len(d.Vertices) || len(d.Indices)%3 != 0 {
		t.Fatalf("got %d vertices, %d indices", len(d.Vertices), len(d.Indices))
	}
	for i, idx := range d.Indices {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d, want sequential", i, idx)
		}
	}
	for i, p := range pts {
		v := d.Vertices[3+i]
		if v.Point() != p {
			t.Errorf("vertex %d = %v, want %v", 3+i, v.Point(), p)
		}
		if v.UV != p.Array() {
			t.Errorf("vertex %d UV = %v, want position %v", 3+i, v.UV, p.Array())
		}
		if v.Color != Blue.Linear().Array() {
			t.Errorf("vertex %d color = %v", 3+i, v.Color)
		}
	}
}

func TestBuilderValidationLeavesStateUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		call    func(b *MeshBuilder) error
		wantErr error
		wantMsg string
	}{
		{"line one point", func(b *MeshBuilder) error {
			_, err := b.Line([]Point{{1, 1}}, 2, White)
			return err
		}, ErrTooFewPoints, "< 2 points"},
		{"polyline empty", func(b *MeshBuilder) error {
			_, err := b.Polyline(FillMode(), nil, White)
			return err
		}, ErrTooFewPoints, "< 2 points"},
		{"polygon two points", func(b *MeshBuilder) error {
			_, err := b.Polygon(FillMode(), []Point{{0, 0}, {1, 1}}, White)
			return err
		}, ErrTooFewPoints, "< 3 points"},
		{"custom vertices one point", func(b *MeshBuilder) error {
			_, err := b.PolylineWithVertexBuilder(StrokeMode(1), []Point{{0, 0}}, false, newVertexBuilder(White))
			return err
		}, ErrTooFewPoints, "< 2 points"},
		{"triangles four points", func(b *MeshBuilder) error {
			_, err := b.Triangles([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, White)
			return err
		}, ErrTriangleCount, "4 points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMeshBuilder()
			if _, err := b.Rectangle(FillMode(), NewRect(0, 0, 1, 1), White); err != nil {
				t.Fatal(err)
			}
			before := cloneData(b.Build())

			err := tt.call(b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %q, want it to mention %q", err, tt.wantMsg)
			}
			assertSameData(t, b.Build(), before)
		})
	}
}

func TestBuilderPolygonTwoPointsLeavesEmpty(t *testing.T) {
	b := NewMeshBuilder()
	_, err := b.Polygon(FillMode(), []Point{{0, 0}, {5, 5}}, White)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("err = %v, want ErrTooFewPoints", err)
	}
	if v, i := b.Len(); v != 0 || i != 0 {
		t.Errorf("Len() = %d, %d; want empty", v, i)
	}
}

func TestBuilderBuildIsIdempotent(t *testing.T) {
	b := NewMeshBuilder()
	b.Circle(FillMode(), Pt(5, 5), 3, 0.1, Green)
	if _, err := b.Line([]Point{{0, 0}, {10, 0}, {10, 10}}, 2, Red); err != nil {
		t.Fatal(err)
	}
	first := cloneData(b.Build())
	second := b.Build()
	assertSameData(t, second, first)

	// Build does not reset: the builder can be extended afterwards.
	if _, err := b.Rectangle(FillMode(), NewRect(0, 0, 1, 1), White); err != nil {
		t.Fatal(err)
	}
	third := b.Build()
	if len(third.Vertices) != len(first.Vertices)+4 {
		t.Errorf("after extending: %d vertices, want %d", len(third.Vertices), len(first.Vertices)+4)
	}
}

func TestBuilderIndicesContinueAcrossShapes(t *testing.T) {
	b := NewMeshBuilder()
	if _, err := b.Rectangle(FillMode(), NewRect(0, 0, 1, 1), White); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Polygon(FillMode(), []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, Red); err != nil {
		t.Fatal(err)
	}
	b.Ellipse(StrokeMode(1), Pt(0, 0), 5, 2, 0.05, Blue)
	d := b.Build()

	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, idx := range d.Indices[6:] {
		if idx < 4 {
			t.Fatalf("later shape references vertex %d of the first rectangle", idx)
		}
	}
}

func TestBuilderCircleDegenerate(t *testing.T) {
	b := NewMeshBuilder()
	b.Circle(FillMode(), Pt(1, 1), 0, 0.1, White)
	b.Ellipse(StrokeMode(1), Pt(1, 1), 0, 3, 0.1, White)
	if v, i := b.Len(); v != 0 || i != 0 {
		t.Errorf("Len() = %d, %d; want empty", v, i)
	}
}

func TestBuilderCircleTolerance(t *testing.T) {
	coarse := NewMeshBuilder()
	coarse.Circle(FillMode(), Pt(0, 0), 10, 1, White)
	fine := NewMeshBuilder()
	fine.Circle(FillMode(), Pt(0, 0), 10, 0.01, White)

	cv, _ := coarse.Len()
	fv, _ := fine.Len()
	if fv <= cv {
		t.Errorf("tolerance 0.01 gave %d vertices, tolerance 1 gave %d; want more for the finer one", fv, cv)
	}
	for _, v := range fine.Build().Vertices {
		r := v.Point().Length()
		if math.Abs(float64(r)-10) > 1e-3 {
			t.Fatalf("vertex %v at radius %v, want 10", v.Position, r)
		}
	}
}

func TestBuilderNonPositiveTolerancePanics(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"circle zero", func() { NewMeshBuilder().Circle(FillMode(), Pt(0, 0), 1, 0, White) }},
		{"circle negative", func() { NewMeshBuilder().Circle(FillMode(), Pt(0, 0), 1, -0.1, White) }},
		{"circle NaN", func() { NewMeshBuilder().Circle(FillMode(), Pt(0, 0), 1, float32(math.NaN()), White) }},
		{"ellipse zero", func() { NewMeshBuilder().Ellipse(StrokeMode(1), Pt(0, 0), 1, 2, 0, White) }},
		{"option", func() { WithTolerance(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.call()
		})
	}
}

func TestBuilderInvalidGeometryRollsBack(t *testing.T) {
	b := NewMeshBuilder()
	if _, err := b.Rectangle(FillMode(), NewRect(0, 0, 1, 1), White); err != nil {
		t.Fatal(err)
	}
	before := cloneData(b.Build())

	nan := float32(math.NaN())
	_, err := b.Polygon(FillMode(), []Point{{0, 0}, {nan, 1}, {1, 1}}, White)
	if !errors.Is(err, tess.ErrInvalidGeometry) {
		t.Fatalf("err = %v, want ErrInvalidGeometry", err)
	}
	assertSameData(t, b.Build(), before)

	_, err = b.Line([]Point{{0, 0}, {1, nan}}, 1, White)
	if !errors.Is(err, tess.ErrInvalidGeometry) {
		t.Fatalf("stroke err = %v, want ErrInvalidGeometry", err)
	}
	assertSameData(t, b.Build(), before)
}

func TestBuilderSelfIntersectingPolygonFillRule(t *testing.T) {
	star := make([]Point, 5)
	for i := range star {
		a := float64(i*2)*2*math.Pi/5 - math.Pi/2
		star[i] = Pt(float32(10*math.Cos(a)), float32(10*math.Sin(a)))
	}
	area := func(rule FillRule) float64 {
		b := NewMeshBuilder()
		if _, err := b.Polygon(Fill(DefaultFillOptions().WithFillRule(rule)), star, White); err != nil {
			t.Fatalf("%v: %v", rule, err)
		}
		d := b.Build()
		if err := d.Validate(); err != nil {
			t.Fatal(err)
		}
		return meshArea(d)
	}
	// The rules differ by the inner pentagon.
	rIn := 10 * math.Cos(2*math.Pi/5) / math.Cos(math.Pi/5)
	inner := 2.5 * rIn * rIn * math.Sin(2*math.Pi/5)
	nonzero, evenodd := area(FillRuleNonZero), area(FillRuleEvenOdd)
	if math.Abs(nonzero-evenodd-inner) > 1e-3 {
		t.Errorf("nonzero %v - evenodd %v = %v, want %v", nonzero, evenodd, nonzero-evenodd, inner)
	}

	// A bowtie fills both lobes instead of cancelling out.
	b := NewMeshBuilder()
	if _, err := b.Polygon(FillMode(), []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}, White); err != nil {
		t.Fatal(err)
	}
	if got := meshArea(b.Build()); math.Abs(got-50) > 1e-3 {
		t.Errorf("bowtie area = %v, want 50", got)
	}
}

func TestBuilderStrokeLine(t *testing.T) {
	b := NewMeshBuilder()
	if _, err := b.Line([]Point{{0, 0}, {10, 0}}, 2, White); err != nil {
		t.Fatal(err)
	}
	d := b.Build()
	if len(d.Vertices) != 4 || len(d.Indices) != 6 {
		t.Fatalf("got %d vertices, %d indices; want 4, 6", len(d.Vertices), len(d.Indices))
	}
	for _, v := range d.Vertices {
		if y := v.Position[1]; y != 1 && y != -1 {
			t.Errorf("vertex %v not offset by half the width", v.Position)
		}
		if v.UV != [2]float32{} {
			t.Errorf("stroke vertex UV = %v, want (0,0)", v.UV)
		}
	}
}

func TestBuilderRoundedRectangle(t *testing.T) {
	b := NewMeshBuilder()
	if _, err := b.RoundedRectangle(FillMode(), NewRect(0, 0, 20, 10), 2, White); err != nil {
		t.Fatal(err)
	}
	d := b.Build()
	want := 200 - (4-math.Pi)*4
	// Three chords per corner at the default tolerance lose about 0.14 each.
	if area := meshArea(d); math.Abs(area-want) > 1 {
		t.Errorf("area = %v, want about %v", area, want)
	}
	bounds, ok := d.Bounds()
	if !ok || bounds != NewRect(0, 0, 20, 10) {
		t.Errorf("Bounds() = %v, %v", bounds, ok)
	}

	if _, err := b.RoundedRectangle(StrokeMode(1), NewRect(0, 0, 20, 10), 2, White); err != nil {
		t.Fatal(err)
	}
}

func TestBuilderDefaultToleranceOption(t *testing.T) {
	modes := []struct {
		name string
		mode DrawMode
	}{
		{"zero mode", DrawMode{}},
		{"FillMode", FillMode()},
		{"StrokeMode", StrokeMode(1)},
	}
	for _, tt := range modes {
		t.Run(tt.name, func(t *testing.T) {
			coarse := NewMeshBuilder(WithTolerance(2))
			fine := NewMeshBuilder(WithTolerance(0.01))
			for _, b := range []*MeshBuilder{coarse, fine} {
				if _, err := b.RoundedRectangle(tt.mode, NewRect(0, 0, 100, 100), 40, White); err != nil {
					t.Fatal(err)
				}
			}
			cv, _ := coarse.Len()
			fv, _ := fine.Len()
			if fv <= cv {
				t.Errorf("fine builder %d vertices, coarse %d", fv, cv)
			}
		})
	}

	// Options carrying their own tolerance ignore the builder's.
	a := NewMeshBuilder(WithTolerance(2))
	b := NewMeshBuilder(WithTolerance(0.01))
	explicit := Fill(DefaultFillOptions().WithTolerance(0.5))
	for _, mb := range []*MeshBuilder{a, b} {
		if _, err := mb.RoundedRectangle(explicit, NewRect(0, 0, 100, 100), 40, White); err != nil {
			t.Fatal(err)
		}
	}
	av, _ := a.Len()
	bv, _ := b.Len()
	if av != bv {
		t.Errorf("explicit tolerance: %d vs %d vertices", av, bv)
	}
}

func TestBuilderCustomVertexConstructor(t *testing.T) {
	b := NewMeshBuilder()
	_, err := b.PolylineWithVertexBuilder(FillMode(), []Point{{0, 0}, {4, 0}, {0, 4}}, true, uvFromPosition{})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range b.Build().Vertices {
		if v.UV != v.Position {
			t.Errorf("vertex %v: UV %v, want position", v.Position, v.UV)
		}
	}
}

func TestBuilderResetKeepsCapacity(t *testing.T) {
	b := NewMeshBuilder(WithCapacity(64, 96))
	b.Circle(FillMode(), Pt(0, 0), 5, 0.5, White)
	b.Reset()
	if v, i := b.Len(); v != 0 || i != 0 {
		t.Fatalf("Len() after Reset = %d, %d", v, i)
	}
	if cap(b.Build().Vertices) < 64 {
		t.Errorf("capacity lost on Reset")
	}
}

func TestMeshDataValidate(t *testing.T) {
	v := []Vertex{{}, {}, {}}
	tests := []struct {
		name string
		d    MeshData
		ok   bool
	}{
		{"empty", MeshData{}, true},
		{"triangle", MeshData{Vertices: v, Indices: []uint32{0, 1, 2}}, true},
		{"partial triangle", MeshData{Vertices: v, Indices: []uint32{0, 1}}, false},
		{"out of range", MeshData{Vertices: v, Indices: []uint32{0, 1, 3}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidMeshData) {
				t.Errorf("Validate() = %v, want ErrInvalidMeshData", err)
			}
		})
	}
}

func TestVertexBuilderUV(t *testing.T) {
	vb := newVertexBuilder(Red)
	p := Pt(3, 4)
	fill := vb.NewFillVertex(FillVertex{Position: p.vec()})
	stroke := vb.NewStrokeVertex(StrokeVertex{Position: p.vec()})
	raw := vb.newVertex(p)

	for name, v := range map[string]Vertex{"fill": fill, "stroke": stroke} {
		if v.UV != [2]float32{} || v.Position != p.Array() || v.Color != Red.Linear().Array() {
			t.Errorf("%s vertex = %+v", name, v)
		}
	}
	if raw.UV != p.Array() {
		t.Errorf("raw vertex UV = %v, want %v", raw.UV, p.Array())
	}
}

type uvFromPosition struct{}

func (uvFromPosition) NewFillVertex(v FillVertex) Vertex {
	p := pointFromVec(v.Position)
	return NewVertex(p, White.Linear())
}

func (uvFromPosition) NewStrokeVertex(v StrokeVertex) Vertex {
	p := pointFromVec(v.Position)
	return NewVertex(p, White.Linear())
}

func cloneData(d MeshData) MeshData {
	return MeshData{Vertices: slices.Clone(d.Vertices), Indices: slices.Clone(d.Indices)}
}

func assertSameData(t *testing.T, got, want MeshData) {
	t.Helper()
	if !slices.Equal(got.Vertices, want.Vertices) {
		t.Errorf("vertices changed: got %d, want %d", len(got.Vertices), len(want.Vertices))
	}
	if !slices.Equal(got.Indices, want.Indices) {
		t.Errorf("indices changed: got %d, want %d", len(got.Indices), len(want.Indices))
	}
}

// meshArea sums the unsigned area of every triangle.
func meshArea(d MeshData) float64 {
	var sum float64
	for i := 0; i+2 < len(d.Indices); i += 3 {
		a := d.Vertices[d.Indices[i]].Point()
		b := d.Vertices[d.Indices[i+1]].Point()
		c := d.Vertices[d.Indices[i+2]].Point()
		cross := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
		sum += math.Abs(cross) / 2
	}
	return sum
}
