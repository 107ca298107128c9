package ppu

// View is the read-only window into PPU state a frame callback uses
// to draw a frame; it carries no behavior of its own so the host is
// free to interpret nametables, pattern tables and OAM however its
// renderer wants to.
type View struct {
	p *PPU
}

// View returns the current frame's read-only snapshot surface.
func (p *PPU) View() View {
	return View{p: p}
}

// Palette returns the 32-byte background/sprite palette RAM.
func (v View) Palette() [32]byte {
	return v.p.palette
}

// Nametables returns the 2KiB of onboard nametable RAM, unmirrored.
func (v View) Nametables() [2048]byte {
	return v.p.vram
}

// OAM returns the 256-byte sprite attribute table.
func (v View) OAM() [256]byte {
	return v.p.oam
}

// ChrRead reads a byte from the cartridge's pattern table memory.
func (v View) ChrRead(addr uint16) uint8 {
	return v.p.chr.ChrRead(addr)
}

// Control returns the current $2000 register value.
func (v View) Control() Control {
	return v.p.control
}

// Mask returns the current $2001 register value.
func (v View) Mask() Mask {
	return v.p.mask
}

// ScrollAddr returns the current VRAM address (loopy v), which holds
// the coarse/fine scroll position during rendering.
func (v View) ScrollAddr() uint16 {
	return v.p.v
}
