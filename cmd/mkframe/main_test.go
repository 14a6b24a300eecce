//go:build !tinygo

package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"bitcube/fix"
)

func TestRenderFrameScaled(t *testing.T) {
	img := renderFrame(options{scale: 3, outlines: true})
	if b := img.Bounds(); b != image.Rect(0, 0, 720, 480) {
		t.Fatalf("bounds=%v", b)
	}

	// Index 28 is 0x1BE4: r=4 g=31 b=6 in BGR555.
	c := img.RGBAAt(100*3+1, 60*3+1)
	if c.R != 32 || c.G != 255 || c.B != 49 {
		t.Fatalf("green face=%v", c)
	}
	if c := img.RGBAAt(0, 0); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("background=%v", c)
	}
}

func TestRenderFrameRotated(t *testing.T) {
	rest := renderFrame(options{scale: 1})
	turned := renderFrame(options{rot: fix.V3(0, fix.FromFraction(1, 8), 0), scale: 1})
	if bytes.Equal(rest.Pix, turned.Pix) {
		t.Fatal("rotation did not change the frame")
	}
}

func TestRunWritesWebP(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cube.webp")
	if err := run(out, options{scale: 1, outlines: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Fatalf("not a WebP file: % x", b[:min(len(b), 16)])
	}
}
