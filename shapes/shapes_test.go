package shapes

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gfx"
)

const sceneYAML = `
tolerance: 0.05
shapes:
  - kind: rect
    rect: [0, 0, 100, 50]
    color: cornflowerblue
  - kind: circle
    mode: stroke
    width: 2
    center: [50, 25]
    radius: 20
    color: "#ff000080"
  - kind: polygon
    points: [[0, 0], [10, 0], [10, 10], [0, 10]]
  - kind: line
    width: 3
    cap: round
    points: [[0, 60], [100, 60]]
  - kind: rounded_rect
    mode: stroke
    join: bevel
    rect: [5, 5, 40, 20]
    corner_radius: 4
  - kind: ellipse
    center: [70, 30]
    radii: [10, 5]
  - kind: triangles
    color: black
    points: [[0, 0], [1, 0], [0, 1]]
`

const sceneTOML = `
tolerance = 0.05

[[shapes]]
kind = "rect"
rect = [0.0, 0.0, 100.0, 50.0]
color = "cornflowerblue"

[[shapes]]
kind = "circle"
mode = "stroke"
width = 2.0
center = [50.0, 25.0]
radius = 20.0
color = "#ff000080"

[[shapes]]
kind = "polygon"
points = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0], [0.0, 10.0]]

[[shapes]]
kind = "line"
width = 3.0
cap = "round"
points = [[0.0, 60.0], [100.0, 60.0]]

[[shapes]]
kind = "rounded_rect"
mode = "stroke"
join = "bevel"
rect = [5.0, 5.0, 40.0, 20.0]
corner_radius = 4.0

[[shapes]]
kind = "ellipse"
center = [70.0, 30.0]
radii = [10.0, 5.0]

[[shapes]]
kind = "triangles"
color = "black"
points = [[0.0, 0.0], [1.0, 0.0], [0.0, 1.0]]
`

func mustBuild(t *testing.T, doc *Document) gfx.MeshData {
	t.Helper()
	d, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return d
}

func assertEqualMesh(t *testing.T, got, want gfx.MeshData) {
	t.Helper()
	if !slices.Equal(got.Vertices, want.Vertices) || !slices.Equal(got.Indices, want.Indices) {
		t.Errorf("meshes differ: %d/%d vs %d/%d vertices/indices",
			len(got.Vertices), len(got.Indices), len(want.Vertices), len(want.Indices))
	}
}

func TestYAMLAndTOMLAgree(t *testing.T) {
	y, err := DecodeYAML(strings.NewReader(sceneYAML))
	if err != nil {
		t.Fatal(err)
	}
	tm, err := DecodeTOML(strings.NewReader(sceneTOML))
	if err != nil {
		t.Fatal(err)
	}
	if len(y.Shapes) != 7 || len(tm.Shapes) != 7 {
		t.Fatalf("shapes: yaml %d, toml %d", len(y.Shapes), len(tm.Shapes))
	}
	fromYAML := mustBuild(t, y)
	assertEqualMesh(t, mustBuild(t, tm), fromYAML)

	// The first shape is the filled rectangle.
	cornflower, _ := gfx.ColorFromName("cornflowerblue")
	if fromYAML.Vertices[0].Color != cornflower.Linear().Array() {
		t.Errorf("rect color = %v", fromYAML.Vertices[0].Color)
	}
	// The last shape is the raw triangle, black with position UVs.
	last := fromYAML.Vertices[len(fromYAML.Vertices)-1]
	if last.Color != gfx.Black.Linear().Array() || last.UV != last.Position {
		t.Errorf("triangle vertex = %+v", last)
	}
}

func TestEncodeDecodeKeepsMesh(t *testing.T) {
	doc, err := DecodeYAML(strings.NewReader(sceneYAML))
	if err != nil {
		t.Fatal(err)
	}
	want := mustBuild(t, doc)

	var buf bytes.Buffer
	if err := doc.EncodeTOML(&buf); err != nil {
		t.Fatal(err)
	}
	fromTOML, err := DecodeTOML(&buf)
	if err != nil {
		t.Fatalf("decode encoded TOML: %v", err)
	}
	assertEqualMesh(t, mustBuild(t, fromTOML), want)

	buf.Reset()
	if err := doc.EncodeYAML(&buf); err != nil {
		t.Fatal(err)
	}
	fromYAML, err := DecodeYAML(&buf)
	if err != nil {
		t.Fatalf("decode encoded YAML: %v", err)
	}
	assertEqualMesh(t, mustBuild(t, fromYAML), want)
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  error
	}{
		{"kind", Shape{Kind: "star"}, ErrUnknownKind},
		{"mode", Shape{Kind: KindRect, Mode: "hatch"}, ErrUnknownMode},
		{"cap", Shape{Kind: KindPolyline, Mode: "stroke", Cap: "arrow", Points: [][2]float32{{0, 0}, {1, 1}}}, ErrBadField},
		{"join", Shape{Kind: KindPolyline, Mode: "stroke", Join: "sharp", Points: [][2]float32{{0, 0}, {1, 1}}}, ErrBadField},
		{"fill rule", Shape{Kind: KindRect, FillRule: "winding"}, ErrBadField},
		{"color", Shape{Kind: KindRect, Color: "#12"}, gfx.ErrInvalidColor},
		{"too few points", Shape{Kind: KindPolygon, Points: [][2]float32{{0, 0}, {1, 1}}}, gfx.ErrTooFewPoints},
		{"triangle count", Shape{Kind: KindTriangles, Points: [][2]float32{{0, 0}}}, gfx.ErrTriangleCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Shapes: []Shape{{Kind: KindRect, Rect: [4]float32{0, 0, 1, 1}}, tt.shape}}
			b := gfx.NewMeshBuilder()
			err := doc.Apply(b)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), "shape 1") {
				t.Errorf("err %q does not name the shape index", err)
			}
			// The shape before the failing one is kept.
			if v, _ := b.Len(); v != 4 {
				t.Errorf("builder holds %d vertices, want 4", v)
			}
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	if _, err := DecodeYAML(strings.NewReader("shapes:\n  - kind: rect\n    colour: red\n")); err == nil {
		t.Error("YAML: unknown field accepted")
	}
	if _, err := DecodeTOML(strings.NewReader("[[shapes]]\nkind = \"rect\"\ncolour = \"red\"\n")); err == nil {
		t.Error("TOML: unknown field accepted")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"scene.yaml": sceneYAML,
		"scene.toml": sceneTOML,
		"scene.json": "{}",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	y, err := LoadFile(filepath.Join(dir, "scene.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	tm, err := LoadFile(filepath.Join(dir, "scene.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(y.Shapes) != len(tm.Shapes) {
		t.Errorf("shape counts differ: %d vs %d", len(y.Shapes), len(tm.Shapes))
	}

	if _, err := LoadFile(filepath.Join(dir, "scene.json")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("json: err = %v", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: err = %v", err)
	}
}

func TestEmptyDocument(t *testing.T) {
	doc, err := DecodeYAML(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	d := mustBuild(t, doc)
	if len(d.Vertices) != 0 {
		t.Errorf("empty document produced %d vertices", len(d.Vertices))
	}
}

func TestFillRuleField(t *testing.T) {
	// Pentagram: the rules disagree only about the center.
	star := [][2]float32{{0, -10}, {5.878, 8.09}, {-9.511, -3.09}, {9.511, -3.09}, {-5.878, 8.09}}
	area := func(rule string) float64 {
		d := mustBuild(t, &Document{Shapes: []Shape{{Kind: KindPolygon, FillRule: rule, Points: star}}})
		var sum float64
		for i := 0; i < len(d.Indices); i += 3 {
			a := d.Vertices[d.Indices[i]].Position
			b := d.Vertices[d.Indices[i+1]].Position
			c := d.Vertices[d.Indices[i+2]].Position
			cr := float64((b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0]))
			if cr < 0 {
				cr = -cr
			}
			sum += cr / 2
		}
		return sum
	}
	nonzero, evenodd, def := area("nonzero"), area("evenodd"), area("")
	if nonzero <= evenodd+1 {
		t.Errorf("nonzero area %v not larger than evenodd %v", nonzero, evenodd)
	}
	if def != evenodd {
		t.Errorf("default rule area %v, want evenodd %v", def, evenodd)
	}
}
