package render

import "image/color"

// fillRGBA writes c into pixel i of an RGBA byte buffer.
func fillRGBA(buf []byte, i int, c color.Color) {
	r, g, b, a := c.RGBA()
	base := i * 4
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}

// clearRGBA fills every pixel of buf with c.
func clearRGBA(buf []byte, c color.Color) {
	for i := 0; i < len(buf)/4; i++ {
		fillRGBA(buf, i, c)
	}
}
