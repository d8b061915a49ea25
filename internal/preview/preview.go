// Package preview rasterizes mesh data on the CPU for inspection.
//
// Triangles are drawn one at a time in index order with source-over
// blending, each filled with the average of its three vertex colors.
// Texture coordinates are ignored.
package preview

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/gfx"
)

// ErrInvalidSize is returned for a non-positive image size.
var ErrInvalidSize = errors.New("preview: invalid image size")

// Options controls rendering.
type Options struct {
	Width, Height int

	// Background fills the image before drawing. Nil leaves it transparent.
	Background stdcolor.Color

	// Fit scales and centers the mesh bounds into the image, keeping the
	// aspect ratio and leaving Margin pixels free on each side. Without Fit
	// mesh coordinates are pixels.
	Fit    bool
	Margin float32
}

// Render draws d into a new image.
func Render(d gfx.MeshData, opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	xf := identity
	if opts.Fit {
		xf = fit(d, opts)
	}

	r := &renderer{dst: img, xf: xf}
	for i := 0; i+2 < len(d.Indices); i += 3 {
		r.triangle(d.Vertices[d.Indices[i]], d.Vertices[d.Indices[i+1]], d.Vertices[d.Indices[i+2]])
	}
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode PNG: %w", err)
	}
	return nil
}

// transform maps mesh coordinates to pixels: p*scale + offset.
type transform struct {
	scale  float32
	offset gfx.Point
}

var identity = transform{scale: 1}

func (t transform) apply(p gfx.Point) gfx.Point {
	return p.Mul(t.scale).Add(t.offset)
}

func fit(d gfx.MeshData, opts Options) transform {
	bounds, ok := d.Bounds()
	if !ok {
		return identity
	}
	w := float32(opts.Width) - 2*opts.Margin
	h := float32(opts.Height) - 2*opts.Margin
	if w <= 0 || h <= 0 {
		return identity
	}
	bw, bh := max(bounds.W, 1e-6), max(bounds.H, 1e-6)
	scale := min(w/bw, h/bh)
	// Center the scaled bounds.
	off := gfx.Pt(
		opts.Margin+(w-bw*scale)/2-bounds.X*scale,
		opts.Margin+(h-bh*scale)/2-bounds.Y*scale,
	)
	return transform{scale: scale, offset: off}
}

type renderer struct {
	dst *image.NRGBA
	xf  transform
	z   vector.Rasterizer
}

// triangle rasterizes one triangle over its pixel bounding box only.
func (r *renderer) triangle(a, b, c gfx.Vertex) {
	pa, pb, pc := r.xf.apply(a.Point()), r.xf.apply(b.Point()), r.xf.apply(c.Point())

	box := image.Rect(
		floor(min(pa.X, pb.X, pc.X)), floor(min(pa.Y, pb.Y, pc.Y)),
		ceil(max(pa.X, pb.X, pc.X)), ceil(max(pa.Y, pb.Y, pc.Y)),
	).Intersect(r.dst.Bounds())
	if box.Empty() {
		return
	}

	o := gfx.Pt(float32(box.Min.X), float32(box.Min.Y))
	pa, pb, pc = pa.Sub(o), pb.Sub(o), pc.Sub(o)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.MoveTo(pa.X, pa.Y)
	r.z.LineTo(pb.X, pb.Y)
	r.z.LineTo(pc.X, pc.Y)
	r.z.ClosePath()
	r.z.Draw(r.dst, box, image.NewUniform(average(a, b, c)), image.Point{})
}

// average returns the mean vertex color, averaged in linear space.
func average(a, b, c gfx.Vertex) stdcolor.NRGBA {
	var lin gfx.LinearColor
	lin.R = (a.Color[0] + b.Color[0] + c.Color[0]) / 3
	lin.G = (a.Color[1] + b.Color[1] + c.Color[1]) / 3
	lin.B = (a.Color[2] + b.Color[2] + c.Color[2]) / 3
	lin.A = (a.Color[3] + b.Color[3] + c.Color[3]) / 3
	return lin.SRGB().NRGBA()
}

func floor(f float32) int { return int(math.Floor(float64(f))) }
func ceil(f float32) int  { return int(math.Ceil(float64(f))) }
