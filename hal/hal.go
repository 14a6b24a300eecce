package hal

import (
	"errors"

	"bitcube/render"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var ErrNotImplemented = errors.New("not implemented")

// Display is an indexed-color screen with two pages and a 256-entry palette.
//
// Drawing always targets the back page; FlipPage shows it.
type Display interface {
	Width() int
	Height() int
	Surface() render.Surface
	// SetPaletteEntry stores a 15-bit color (xbbbbbgggggrrrrr).
	SetPaletteEntry(index uint8, bgr555 uint16)
	FlipPage()
}

// VBlank paces the frame loop.
type VBlank interface {
	// WaitForVBlank blocks until the next vertical blank. There is no timeout.
	WaitForVBlank()
}

// Input reports held buttons as of the last Poll.
type Input interface {
	Poll()
	Pressed(b Button) bool
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	VBlank() VBlank
	Input() Input
}
