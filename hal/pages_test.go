package hal

import (
	"testing"

	"bitcube/render"
)

func TestPagesFlip(t *testing.T) {
	p := NewPages(4, 2)
	back := p.Back()
	front := p.Front()
	if back == front {
		t.Fatal("front and back share a bitmap")
	}
	if p.Surface() != back {
		t.Fatal("Surface is not the back page")
	}

	back.DrawPoint(1, 1, 9)
	p.FlipPage()
	if p.Front() != back || p.Back() != front {
		t.Fatal("FlipPage did not swap pages")
	}
	if got := p.Front().At(1, 1); got != 9 {
		t.Fatalf("front pixel=%d, want 9", got)
	}
	if p.Flips() != 1 {
		t.Fatalf("flips=%d", p.Flips())
	}
}

func TestPagesPresentHook(t *testing.T) {
	p := NewPages(2, 2)
	p.SetPaletteEntry(3, 0x7FFF)

	var calls int
	p.present = func(front *render.Bitmap, palette *[256]uint16) {
		calls++
		if front != p.Front() {
			t.Fatal("present got the back page")
		}
		if palette[3] != 0x7FFF {
			t.Fatalf("palette[3]=%#x", palette[3])
		}
	}
	p.FlipPage()
	p.FlipPage()
	if calls != 2 {
		t.Fatalf("present called %d times", calls)
	}
}

func TestPagesFrontRGBA(t *testing.T) {
	p := NewPages(3, 2)
	p.SetPaletteEntry(1, 0x001F) // red
	p.SetPaletteEntry(2, 0x7C00) // blue
	p.Back().DrawPoint(0, 0, 1)
	p.Back().DrawPoint(2, 1, 2)
	p.FlipPage()

	img := p.FrontRGBA(nil)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds=%v", b)
	}
	if c := img.RGBAAt(0, 0); c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("(0,0)=%v", c)
	}
	if c := img.RGBAAt(2, 1); c.R != 0 || c.G != 0 || c.B != 255 {
		t.Fatalf("(2,1)=%v", c)
	}
	if c := img.RGBAAt(1, 0); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("(1,0)=%v", c)
	}

	if again := p.FrontRGBA(img); again != img {
		t.Fatal("FrontRGBA reallocated a matching image")
	}
}
