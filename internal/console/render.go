package console

import (
	"image"

	"github.com/halvard/nescore/ppu"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// renderFrame turns a PPU snapshot into pixels. This lives outside
// the ppu package on purpose: the core only models the register and
// timing state real software depends on, and leaves turning that
// state into an on-screen image to whatever frontend is watching.
// This renderer draws the single active nametable without per-scanline
// scroll splits; that's enough to display a game's background, not
// enough to reproduce every raster trick a commercial title uses.
func renderFrame(v ppu.View) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight))

	// Always draws the nametable living at the start of onboard VRAM
	// ($2000's backing storage); scroll-driven table switches aren't
	// reflected here.
	nametables := v.Nametables()
	palette := v.Palette()
	bgPattern := v.Control().BackgroundPatternTable()

	for tileY := 0; tileY < 30; tileY++ {
		for tileX := 0; tileX < 32; tileX++ {
			tileID := nametables[tileY*32+tileX]

			attrIndex := 0x3C0 + (tileY/4)*8 + tileX/4
			attrByte := nametables[attrIndex]
			shift := uint((tileY%4)/2*4 + (tileX%4)/2*2)
			paletteIdx := (attrByte >> shift) & 0x03

			drawTile(img, v, bgPattern, tileID, paletteIdx, palette, tileX*8, tileY*8)
		}
	}

	return img
}

func drawTile(img *image.RGBA, v ppu.View, patternBase uint16, tileID uint8, paletteIdx uint8, palette [32]byte, x0, y0 int) {
	for row := 0; row < 8; row++ {
		lo := v.ChrRead(patternBase + uint16(tileID)*16 + uint16(row))
		hi := v.ChrRead(patternBase + uint16(tileID)*16 + uint16(row) + 8)

		for col := 0; col < 8; col++ {
			bit := 7 - col
			pixel := ((hi>>bit)&1)<<1 | (lo>>bit)&1

			var colorIdx byte
			if pixel == 0 {
				colorIdx = palette[0] // universal background color
			} else {
				colorIdx = palette[paletteIdx*4+pixel]
			}

			img.Set(x0+col, y0+row, systemPalette[colorIdx&0x3F])
		}
	}
}
