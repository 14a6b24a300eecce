//go:build tinygo && !baremetal

package hal

import "time"

// Screen geometry of the handheld's 8-bit bitmap mode.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	pages  *Pages
	vblank *tinyGoHostVBlank
	input  *heldInput
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		pages:  NewPages(ScreenWidth, ScreenHeight),
		vblank: &tinyGoHostVBlank{t: time.NewTicker(time.Second / 60)},
		input:  &heldInput{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return h.pages }
func (h *tinyGoHostHAL) VBlank() VBlank   { return h.vblank }
func (h *tinyGoHostHAL) Input() Input     { return h.input }

type tinyGoHostVBlank struct {
	t *time.Ticker
}

func (v *tinyGoHostVBlank) WaitForVBlank() { <-v.t.C }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}
