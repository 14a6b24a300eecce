//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"bitcube/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
}

// errWindowClosed ends the game loop when the player presses Escape.
var errWindowClosed = errors.New("window closed")

// RunWindow starts a desktop window that displays the front page and reads
// buttons from the keyboard. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}

	h := newHostHAL()
	h.input.source = keyboardButtons
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("bitcube (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.pages.w*cfg.Scale, h.pages.h*cfg.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, errWindowClosed) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errWindowClosed
	}
	return g.h.runFrame(g.step)
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.pages
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(p.w, p.h)
	}

	g.img = p.FrontRGBA(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.pages.w, g.h.pages.h
}
