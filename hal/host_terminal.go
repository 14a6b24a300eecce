//go:build !tinygo

package hal

import (
	"context"
	"image"

	"fortio.org/terminal/ansipixels"
	"golang.org/x/image/draw"
)

// TerminalConfig controls the ANSI terminal runner.
type TerminalConfig struct {
	FPS float64
}

// Terminals send no key-up events; a key counts as held for this many frames
// after its last repeat.
const termHoldFrames = 8

// termKeys tracks buttons seen in terminal input.
type termKeys struct {
	left [NumButtons]int
	quit bool
}

func (k *termKeys) feed(data []byte) {
	for i := range k.left {
		if k.left[i] > 0 {
			k.left[i]--
		}
	}
	press := func(b Button) { k.left[b] = termHoldFrames }
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case 'w', 'W':
			press(ButtonUp)
		case 's', 'S':
			press(ButtonDown)
		case 'a', 'A':
			press(ButtonLeft)
		case 'd', 'D':
			press(ButtonRight)
		case 'q', 'Q':
			press(ButtonL)
		case 'e', 'E':
			press(ButtonR)
		case 'x', 'X', 0x03:
			k.quit = true
		case 0x1b:
			// CSI arrow keys: ESC [ A..D
			if i+2 < len(data) && data[i+1] == '[' {
				switch data[i+2] {
				case 'A':
					press(ButtonUp)
				case 'B':
					press(ButtonDown)
				case 'C':
					press(ButtonRight)
				case 'D':
					press(ButtonLeft)
				}
				i += 2
			}
		}
	}
}

func (k *termKeys) held(b Button) bool {
	return b < NumButtons && k.left[b] > 0
}

// fitRect returns the largest rectangle with the aspect ratio of src that
// fits in w x h.
func fitRect(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	dw, dh := w, w*sh/sw
	if dh > h {
		dw, dh = h*sw/sh, h
	}
	return image.Rect(0, 0, max(dw, 1), max(dh, 1))
}

// RunTerminal renders into the current terminal using half-block pixels.
// Keys: w/s/a/d or arrows rotate, q/e roll, x quits.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) (err error) {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}

	h := newHostHAL()
	keys := &termKeys{}
	h.input.source = keys.held
	step := newApp(h)

	ap := ansipixels.NewAnsiPixels(cfg.FPS)
	if err := ap.Open(); err != nil {
		return err
	}
	ap.HideCursor()
	defer func() {
		ap.ShowCursor()
		ap.ClearScreen()
		ap.Restore()
	}()
	ap.ClearScreen()

	var frame *image.RGBA
	var scaled *image.RGBA
	resize := func() error {
		scaled = image.NewRGBA(fitRect(image.Rect(0, 0, h.pages.w, h.pages.h), ap.W, ap.H*2))
		ap.ClearScreen()
		return nil
	}
	_ = resize()
	ap.OnResize = resize

	var stepErr error
	err = ap.FPSTicks(ctx, func(context.Context) bool {
		keys.feed(ap.Data)
		if keys.quit {
			return false
		}
		if stepErr = h.runFrame(step); stepErr != nil {
			return false
		}

		frame = h.pages.FrontRGBA(frame)
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), frame, frame.Bounds(), draw.Src, nil)

		ap.StartSyncMode()
		if ap.ColorOutput.TrueColor {
			stepErr = ap.DrawTrueColorImage(0, 0, scaled)
		} else {
			stepErr = ap.Draw216ColorImage(0, 0, scaled)
		}
		ap.EndSyncMode()
		return stepErr == nil
	})
	if stepErr != nil {
		return stepErr
	}
	return err
}
