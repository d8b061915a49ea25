// Command gfxmesh builds a mesh from a shape document, uploads it to a
// headless GPU device and prints a summary. Optionally it writes a PNG
// preview of the geometry.
//
// Usage:
//
//	gfxmesh [-in scene.yaml] [-out preview.png] [-width 512] [-height 512]
//
// Without -in a built-in demo scene is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/gpu"
	"github.com/gogpu/gfx/internal/preview"
	"github.com/gogpu/gfx/shapes"
)

type config struct {
	in        string
	out       string
	width     int
	height    int
	tolerance float64
	shader    bool
	verbose   bool
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("gfxmesh: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gfxmesh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "shape document (.yaml, .yml or .toml); empty for the demo scene")
	fs.StringVar(&cfg.out, "out", "", "write a PNG preview to this file")
	fs.IntVar(&cfg.width, "width", 512, "preview width")
	fs.IntVar(&cfg.height, "height", 512, "preview height")
	fs.Float64Var(&cfg.tolerance, "tolerance", 0, "default flattening tolerance (0 keeps the document's)")
	fs.BoolVar(&cfg.shader, "shader", true, "compile the mesh shader and create a shader module")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.tolerance < 0 {
		return cfg, fmt.Errorf("tolerance must not be negative, got %v", cfg.tolerance)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer gfx.SetLogger(nil)
	}

	doc := demoScene()
	if cfg.in != "" {
		if doc, err = shapes.LoadFile(cfg.in); err != nil {
			return err
		}
	}
	if cfg.tolerance > 0 {
		doc.Tolerance = float32(cfg.tolerance)
	}

	data, err := doc.Build()
	if err != nil {
		return err
	}

	dev, closeDev, err := gpu.OpenNoopDevice(gpu.WithLabelPrefix("gfxmesh "))
	if err != nil {
		return err
	}
	defer closeDev()

	mesh, err := gfx.NewMeshFromData(dev, data)
	if err != nil {
		return err
	}
	defer mesh.Release()

	s := summary{
		source: cfg.in,
		shapes: len(doc.Shapes),
		data:   data,
		mesh:   mesh,
	}
	if cfg.shader {
		spirv, err := gfx.CompileShader()
		if err != nil {
			return err
		}
		module, err := dev.CreateShaderModule("mesh shader", spirv)
		if err != nil {
			return err
		}
		dev.DestroyShaderModule(module)
		s.shaderWords = len(spirv)
	}

	if cfg.out != "" {
		if err := writePreview(cfg, data); err != nil {
			return err
		}
		s.preview = cfg.out
	}

	_, err = fmt.Fprintln(stdout, s.render())
	return err
}

func writePreview(cfg config, data gfx.MeshData) (err error) {
	img, err := preview.Render(data, preview.Options{
		Width:      cfg.width,
		Height:     cfg.height,
		Background: gfx.Black.NRGBA(),
		Fit:        true,
		Margin:     8,
	})
	if err != nil {
		return err
	}
	f, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return preview.WritePNG(f, img)
}

func demoScene() *shapes.Document {
	return &shapes.Document{
		Tolerance: 0.1,
		Shapes: []shapes.Shape{
			{Kind: shapes.KindRect, Rect: [4]float32{0, 0, 400, 300}, Color: "midnightblue"},
			{Kind: shapes.KindRoundedRect, Rect: [4]float32{20, 20, 160, 100}, CornerRadius: 16, Color: "gold"},
			{Kind: shapes.KindCircle, Center: [2]float32{290, 80}, Radius: 50, Color: "#ff6347c0"},
			{Kind: shapes.KindEllipse, Mode: "stroke", Width: 4, Center: [2]float32{290, 80}, Radii: [2]float32{70, 40}, Color: "white"},
			{Kind: shapes.KindPolygon, Points: [][2]float32{{40, 280}, {120, 160}, {200, 280}, {120, 240}}, Color: "seagreen"},
			{Kind: shapes.KindLine, Width: 6, Cap: "round", Join: "round",
				Points: [][2]float32{{230, 270}, {280, 180}, {330, 260}, {380, 170}}, Color: "orchid"},
			{Kind: shapes.KindTriangles, Points: [][2]float32{{360, 290}, {395, 290}, {378, 260}}, Color: "white"},
		},
	}
}
