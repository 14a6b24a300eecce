//go:build !tinygo

// Command mkframe renders one frame of the cube at a fixed rotation and
// writes it as a lossless WebP.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"bitcube/app"
	"bitcube/fix"
	"bitcube/hal"
	"bitcube/render"
	"bitcube/scene"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

type options struct {
	rot      fix.Vec3
	scale    int
	outlines bool
}

func main() {
	var (
		outPath  = flag.String("o", "frame.webp", "Output WebP path.")
		rx       = flag.Float64("rx", 0, "Rotation about x, in turns.")
		ry       = flag.Float64("ry", 0, "Rotation about y, in turns.")
		rz       = flag.Float64("rz", 0, "Rotation about z, in turns.")
		scale    = flag.Int("scale", 2, "Integer upscale factor.")
		outlines = flag.Bool("outlines", true, "Draw triangle outlines.")
	)
	flag.Parse()

	if *scale < 1 {
		fmt.Fprintln(os.Stderr, "error: -scale must be at least 1")
		os.Exit(2)
	}

	opts := options{
		rot:      fix.V3(turns(*rx), turns(*ry), turns(*rz)),
		scale:    *scale,
		outlines: *outlines,
	}
	if err := run(*outPath, opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func turns(v float64) fix.Scalar {
	return fix.FromFloat32(float32(v)).Frac()
}

func run(outPath string, opts options) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := encode(f, renderFrame(opts)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", outPath, err)
	}
	return f.Close()
}

func encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// renderFrame draws the cube the way the frame loop does and returns the
// presented page, upscaled.
func renderFrame(opts options) *image.RGBA {
	pages := hal.NewPages(hal.ScreenWidth, hal.ScreenHeight)
	app.InitPalette(pages)

	s := scene.New()
	s.Mesh.Rot = opts.rot

	r := render.NewRenderer(pages.Width(), pages.Height())
	r.Outlines = opts.outlines

	back := pages.Back()
	back.Clear(scene.ColorBlack)
	r.Render(back, &s.Mesh)
	pages.FlipPage()

	img := pages.FrontRGBA(nil)
	if opts.scale <= 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*opts.scale, img.Bounds().Dy()*opts.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
