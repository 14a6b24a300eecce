package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// rgb888FromBGR555 expands a 15-bit palette color (red in the low bits).
func rgb888FromBGR555(p uint16) (r, g, b uint8) {
	rr := p & 0x1F
	gg := (p >> 5) & 0x1F
	bb := (p >> 10) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 31)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

func rgb565FromBGR555(p uint16) uint16 {
	return rgb565(rgb888FromBGR555(p))
}
