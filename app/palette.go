package app

import "bitcube/hal"

// PaletteEntry is the BGR555 color stored at index i: the low 16 bits of
// i*255, which spreads the indices over hue and brightness.
func PaletteEntry(i int) uint16 {
	return uint16(i * 255)
}

// InitPalette fills all 256 palette entries.
func InitPalette(d hal.Display) {
	for i := 0; i < 256; i++ {
		d.SetPaletteEntry(uint8(i), PaletteEntry(i))
	}
}
