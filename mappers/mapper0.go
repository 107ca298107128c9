package mappers

import "github.com/halvard/nescore/cartridge"

func init() {
	registerMapper(0, newNROM)
}

// nrom implements mapper 0. PRG ROM is either one 16 KiB bank (mirrored
// twice across $8000-$FFFF) or two consecutive 16 KiB banks (32 KiB,
// no mirroring needed). CHR is usually ROM but some NROM boards wire
// up CHR RAM; either way we just treat it as a flat, writable array
// sized from the header, or 8 KiB of CHR RAM when the header declares
// no CHR banks.
type nrom struct {
	prg []byte
	chr []byte
	mir cartridge.Mirroring
}

func newNROM(c *cartridge.Cartridge) Mapper {
	chr := c.CHR
	if len(chr) == 0 {
		chr = make([]byte, 0x2000)
	}
	return &nrom{prg: c.PRG, chr: chr, mir: c.Mirroring}
}

func (m *nrom) PrgRead(addr uint16) uint8 {
	a := int(addr - 0x8000)
	if len(m.prg) == 0x4000 {
		a %= 0x4000
	}
	return m.prg[a]
}

func (m *nrom) PrgWrite(addr uint16, val uint8) error {
	return ErrRomWrite
}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.chr[addr]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	if int(addr) < len(m.chr) {
		m.chr[addr] = val
	}
}

func (m *nrom) Mirroring() cartridge.Mirroring {
	return m.mir
}
