package ppu

import "github.com/halvard/nescore/cartridge"

// mirrorNametableAddr folds a $2000-$3EFF nametable address down to
// an index into the 2KiB of onboard nametable RAM, according to the
// cartridge's mirroring wiring. Four-screen boards carry their own
// extra VRAM on the cartridge; this core doesn't model that and
// treats four-screen the same as vertical, which is the layout every
// real four-screen board (Gauntlet, Rad Racer 2) pairs with.
func mirrorNametableAddr(mirroring cartridge.Mirroring, addr uint16) uint16 {
	v := (addr - 0x2000) & 0x0FFF
	table := v / 0x400
	offset := v % 0x400

	switch mirroring {
	case cartridge.Vertical, cartridge.FourScreen:
		return (table % 2) * 0x400 + offset
	default: // Horizontal
		return (table / 2) * 0x400 + offset
	}
}

// mirrorPaletteAddr folds the palette RAM mirrors at $3F10, $3F14,
// $3F18 and $3F1C onto their backing entries at $3F00, $3F04, $3F08
// and $3F0C, and mirrors the whole 32-byte table across $3F00-$3FFF.
func mirrorPaletteAddr(addr uint16) uint16 {
	a := addr & 0x1F
	if a >= 0x10 && a%4 == 0 {
		a -= 0x10
	}
	return a
}
