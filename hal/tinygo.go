//go:build tinygo && baremetal && !picocalc

package hal

type tinyGoHAL struct {
	logger *uartLogger
	pages  *Pages
	vblank *tinyGoVBlank
	input  *heldInput
}

// New returns a Pico 2 (RP2350) HAL implementation without a panel or
// buttons. Frames are rendered into memory and only the log is visible.
func New() HAL {
	return &tinyGoHAL{
		logger: newUARTLogger(),
		pages:  NewPages(ScreenWidth, ScreenHeight),
		vblank: newTinyGoVBlank(),
		input:  &heldInput{},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.pages }
func (h *tinyGoHAL) VBlank() VBlank   { return h.vblank }
func (h *tinyGoHAL) Input() Input     { return h.input }
