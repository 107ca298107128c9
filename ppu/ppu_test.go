package ppu

import (
	"testing"

	"github.com/halvard/nescore/cartridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChr struct {
	mem [0x2000]byte
}

func (f *fakeChr) ChrRead(addr uint16) uint8       { return f.mem[addr] }
func (f *fakeChr) ChrWrite(addr uint16, val uint8) { f.mem[addr] = val }

func TestVBlankSetsAtScanline241AndNMIFires(t *testing.T) {
	p := New(&fakeChr{}, cartridge.Horizontal)
	p.writeControl(0x80) // enable NMI

	// pre-render line is 261; advance to scanline 241.
	p.Tick(dotsPerScanline * (241 - 261 + scanlinesPerFrame))

	assert.True(t, p.status&statusVBlank != 0)
	assert.True(t, p.TakeNMI())
	assert.False(t, p.TakeNMI(), "TakeNMI should consume the latch")
}

func TestVBlankClearsAtPreRenderLine(t *testing.T) {
	p := New(&fakeChr{}, cartridge.Horizontal)
	p.status.setVBlank(true)

	p.Tick(dotsPerScanline * (scanlinesPerFrame - 261))

	assert.False(t, p.status&statusVBlank != 0)
}

func TestControlNMIEnableDuringVBlankFiresImmediately(t *testing.T) {
	p := New(&fakeChr{}, cartridge.Horizontal)
	p.status.setVBlank(true)

	p.WriteRegister(0x2000, 0x80)

	assert.True(t, p.TakeNMI())
}

func TestStatusReadClearsVBlankAndWriteLatch(t *testing.T) {
	p := New(&fakeChr{}, cartridge.Horizontal)
	p.status.setVBlank(true)
	p.writeLatch = true

	v := p.ReadRegister(0x2002)

	assert.True(t, v&0x80 != 0, "read should report the set bit before clearing")
	assert.False(t, p.status&statusVBlank != 0)
	assert.False(t, p.writeLatch)
}

func TestDataReadIsBufferedExceptPalette(t *testing.T) {
	p := New(&fakeChr{}, cartridge.Horizontal)
	p.vram[0] = 0xAB
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)

	first := p.ReadRegister(0x2007)
	second := p.ReadRegister(0x2007)

	assert.EqualValues(t, 0, first, "first read returns the stale buffer")
	assert.EqualValues(t, 0xAB, second)
}

func TestPaletteReadIsUnbuffered(t *testing.T) {
	p := New(&fakeChr{}, cartridge.Horizontal)
	p.palette[0] = 0x0F
	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x00)

	assert.EqualValues(t, 0x0F, p.ReadRegister(0x2007))
}

func TestPaletteMirroring(t *testing.T) {
	cases := []struct{ mirror, backing uint16 }{
		{0x3F10, 0x3F00},
		{0x3F14, 0x3F04},
		{0x3F18, 0x3F08},
		{0x3F1C, 0x3F0C},
	}
	for _, c := range cases {
		require.Equal(t, mirrorPaletteAddr(c.backing), mirrorPaletteAddr(c.mirror))
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	assert.Equal(t, mirrorNametableAddr(cartridge.Vertical, 0x2000), mirrorNametableAddr(cartridge.Vertical, 0x2800))
	assert.Equal(t, mirrorNametableAddr(cartridge.Vertical, 0x2400), mirrorNametableAddr(cartridge.Vertical, 0x2C00))
}

func TestNametableMirroringHorizontal(t *testing.T) {
	assert.Equal(t, mirrorNametableAddr(cartridge.Horizontal, 0x2000), mirrorNametableAddr(cartridge.Horizontal, 0x2400))
	assert.Equal(t, mirrorNametableAddr(cartridge.Horizontal, 0x2800), mirrorNametableAddr(cartridge.Horizontal, 0x2C00))
}

func TestOAMDMAWrapsAroundFromOAMAddr(t *testing.T) {
	p := New(&fakeChr{}, cartridge.Horizontal)
	p.oamAddr = 0xF0

	var page [256]byte
	for i := range page {
		page[i] = uint8(i)
	}
	p.WriteOAMDMA(page)

	assert.EqualValues(t, 0, p.oam[0xF0])
	assert.EqualValues(t, 0x0F, p.oam[0xFF])
	assert.EqualValues(t, 0x10, p.oam[0x00])
}
