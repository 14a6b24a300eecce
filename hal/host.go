//go:build !tinygo

package hal

import (
	"fortio.org/log"
)

// Screen geometry of the handheld's 8-bit bitmap mode.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

type hostHAL struct {
	logger *hostLogger
	pages  *Pages
	vblank *hostVBlank
	input  *heldInput
}

// New returns a host HAL implementation with no input source attached.
func New() HAL {
	return newHostHAL()
}

func newHostHAL() *hostHAL {
	return &hostHAL{
		logger: &hostLogger{},
		pages:  NewPages(ScreenWidth, ScreenHeight),
		vblank: newHostVBlank(),
		input:  &heldInput{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.pages }
func (h *hostHAL) VBlank() VBlank   { return h.vblank }
func (h *hostHAL) Input() Input     { return h.input }

type hostLogger struct{}

func (l *hostLogger) WriteLineString(s string) {
	log.Infof("%s", s)
}

// hostVBlank is a one-slot gate: runners signal it once per frame before
// calling the frame step, which consumes the signal in WaitForVBlank.
type hostVBlank struct {
	ch chan struct{}
}

func newHostVBlank() *hostVBlank {
	return &hostVBlank{ch: make(chan struct{}, 1)}
}

func (v *hostVBlank) WaitForVBlank() { <-v.ch }

func (v *hostVBlank) signal() {
	select {
	case v.ch <- struct{}{}:
	default:
	}
}

// runFrame signals vblank and runs one frame step.
func (h *hostHAL) runFrame(step func() error) error {
	h.vblank.signal()
	if step == nil {
		return nil
	}
	return step()
}
