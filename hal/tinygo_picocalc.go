//go:build tinygo && baremetal && picocalc

package hal

import (
	"time"

	"bitcube/render"
)

type picoCalcHAL struct {
	logger *uartLogger
	pages  *Pages
	vblank *tinyGoVBlank
	input  *heldInput
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// The 240x160 pages are shown centered on the 320x320 ILI9488 panel.
func New() HAL {
	logger := newUARTLogger()
	pages := NewPages(ScreenWidth, ScreenHeight)

	if lcd, err := initILI9488(); err == nil {
		pages.present = lcd.presenter(ScreenWidth, ScreenHeight)
	} else {
		logger.WriteLineString("display: " + err.Error())
	}

	input := &heldInput{}
	if kbd, err := newPicoCalcKeyboard(); err == nil {
		input.source = kbd.held
	} else {
		logger.WriteLineString("keyboard: " + err.Error())
	}

	return &picoCalcHAL{
		logger: logger,
		pages:  pages,
		vblank: newTinyGoVBlank(),
		input:  input,
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return h.pages }
func (h *picoCalcHAL) VBlank() VBlank   { return h.vblank }
func (h *picoCalcHAL) Input() Input     { return h.input }

// presenter returns a present hook that converts indexed pages to RGB565 and
// blits them to the middle of the panel.
func (d *ili9488) presenter(w, h int) func(*render.Bitmap, *[256]uint16) {
	x0 := (ili9488Width - w) / 2
	y0 := (ili9488Height - h) / 2
	var lut [256]uint16
	return func(front *render.Bitmap, palette *[256]uint16) {
		for i, c := range palette {
			lut[i] = rgb565FromBGR555(c)
		}
		_ = d.blitIndexed(front.Pix, &lut, x0, y0, w, h)
	}
}

type picoCalcKeyboard struct {
	kbd *i2cKeyboard
}

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}
	dev := &picoCalcKeyboard{kbd: kbd}

	go func() {
		for {
			kbd.poll()
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}

func (k *picoCalcKeyboard) held(b Button) bool {
	return k.kbd.isHeld(b)
}
