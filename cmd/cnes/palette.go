package main

// ntscPalette translates the 2C02's 64 palette indices to RGBA. The core
// emits raw indices; colour only exists out here in the host.
var ntscPalette = [64][4]byte{
	{0x7C, 0x7C, 0x7C, 0xFF}, {0x00, 0x00, 0xFC, 0xFF},
	{0x00, 0x00, 0xBC, 0xFF}, {0x44, 0x28, 0xBC, 0xFF},
	{0x94, 0x00, 0x84, 0xFF}, {0xA8, 0x00, 0x20, 0xFF},
	{0xA8, 0x10, 0x00, 0xFF}, {0x88, 0x14, 0x00, 0xFF},
	{0x50, 0x30, 0x00, 0xFF}, {0x00, 0x78, 0x00, 0xFF},
	{0x00, 0x68, 0x00, 0xFF}, {0x00, 0x58, 0x00, 0xFF},
	{0x00, 0x40, 0x58, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0xBC, 0xBC, 0xBC, 0xFF}, {0x00, 0x78, 0xF8, 0xFF},
	{0x00, 0x58, 0xF8, 0xFF}, {0x68, 0x44, 0xFC, 0xFF},
	{0xD8, 0x00, 0xCC, 0xFF}, {0xE4, 0x00, 0x58, 0xFF},
	{0xF8, 0x38, 0x00, 0xFF}, {0xE4, 0x5C, 0x10, 0xFF},
	{0xAC, 0x7C, 0x00, 0xFF}, {0x00, 0xB8, 0x00, 0xFF},
	{0x00, 0xA8, 0x00, 0xFF}, {0x00, 0xA8, 0x44, 0xFF},
	{0x00, 0x88, 0x88, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0xF8, 0xF8, 0xF8, 0xFF}, {0x3C, 0xBC, 0xFC, 0xFF},
	{0x68, 0x88, 0xFC, 0xFF}, {0x98, 0x78, 0xF8, 0xFF},
	{0xF8, 0x78, 0xF8, 0xFF}, {0xF8, 0x58, 0x98, 0xFF},
	{0xF8, 0x78, 0x58, 0xFF}, {0xFC, 0xA0, 0x44, 0xFF},
	{0xF8, 0xB8, 0x00, 0xFF}, {0xB8, 0xF8, 0x18, 0xFF},
	{0x58, 0xD8, 0x54, 0xFF}, {0x58, 0xF8, 0x98, 0xFF},
	{0x00, 0xE8, 0xD8, 0xFF}, {0x78, 0x78, 0x78, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
	{0xFC, 0xFC, 0xFC, 0xFF}, {0xA4, 0xE4, 0xFC, 0xFF},
	{0xB8, 0xB8, 0xF8, 0xFF}, {0xD8, 0xB8, 0xF8, 0xFF},
	{0xF8, 0xB8, 0xF8, 0xFF}, {0xF8, 0xA4, 0xC0, 0xFF},
	{0xF0, 0xD0, 0xB0, 0xFF}, {0xFC, 0xE0, 0xA8, 0xFF},
	{0xF8, 0xD8, 0x78, 0xFF}, {0xD8, 0xF8, 0x78, 0xFF},
	{0xB8, 0xF8, 0xB8, 0xFF}, {0xB8, 0xF8, 0xD8, 0xFF},
	{0x00, 0xFC, 0xFC, 0xFF}, {0xF8, 0xD8, 0xF8, 0xFF},
	{0x00, 0x00, 0x00, 0xFF}, {0x00, 0x00, 0x00, 0xFF},
}

// blit expands a buffer of palette indices into ABGR8888 pixels.
func blit(pixels []byte, indices []byte) {
	for i, idx := range indices {
		c := ntscPalette[idx&0x3F]
		pixels[i*4+0] = c[0]
		pixels[i*4+1] = c[1]
		pixels[i*4+2] = c[2]
		pixels[i*4+3] = c[3]
	}
}
