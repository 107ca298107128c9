// Package ppu models the 2C02's register file and the dot/scanline
// timer that drives vblank and NMI. It intentionally stops at the
// register boundary: turning nametables, pattern tables and OAM into
// pixels is a frontend concern, so this package only exposes a
// read-only View for whatever host wants to do that drawing.
// https://www.nesdev.org/wiki/PPU_registers
// https://www.nesdev.org/wiki/PPU_rendering
package ppu

import (
	"github.com/halvard/nescore/cartridge"
)

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	vblankScanline    = 241
)

// ChrMemory is the cartridge-side pattern table storage a mapper
// exposes. PPU never needs anything else from a mapper.
type ChrMemory interface {
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
}

// PPU is the 2C02 register file plus its dot/scanline timer.
type PPU struct {
	chr       ChrMemory
	mirroring cartridge.Mirroring

	control Control
	mask    Mask
	status  Status

	oamAddr uint8
	oam     [256]byte

	vram    [2048]byte
	palette [32]byte

	// v/t/fineX/writeLatch implement the loopy-register scroll and
	// address composition shared by $2005 and $2006.
	v, t     uint16
	fineX    uint8
	writeLatch bool

	readBuffer uint8

	scanline int
	cycle    int
	nmiPending bool
}

// New builds a PPU wired to the cartridge's CHR memory and mirroring.
func New(chr ChrMemory, mirroring cartridge.Mirroring) *PPU {
	return &PPU{chr: chr, mirroring: mirroring, scanline: 261}
}

// Reset returns the PPU to its post-power-on state.
func (p *PPU) Reset() {
	p.control = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.v, p.t, p.fineX = 0, 0, 0
	p.writeLatch = false
	p.readBuffer = 0
	p.scanline = 261
	p.cycle = 0
	p.nmiPending = false
}

// Tick advances the timer by the given number of PPU dots (three per
// CPU cycle) and updates vblank/NMI state at the scanline boundaries
// that matter to this core: vblank sets at the start of scanline 241
// and the whole status/NMI latch clears when the pre-render line
// (261) ends and the timer wraps back to scanline 0.
func (p *PPU) Tick(dots int) {
	for dots > 0 {
		remaining := dotsPerScanline - p.cycle
		step := dots
		if step > remaining {
			step = remaining
		}
		p.cycle += step
		dots -= step

		if p.cycle >= dotsPerScanline {
			p.cycle -= dotsPerScanline
			p.scanline++

			if p.scanline == vblankScanline {
				p.status.setVBlank(true)
				if p.control.GenerateNMI() {
					p.nmiPending = true
				}
			}

			if p.scanline >= scanlinesPerFrame {
				p.scanline = 0
				p.status.setVBlank(false)
				p.status.setSpriteZeroHit(false)
				p.status.setOverflow(false)
				p.nmiPending = false
			}
		}
	}
}

// TakeNMI consumes and clears the pending NMI latch. The bus calls
// this once per Tick to decide whether to arm the CPU's next
// interrupt poll and whether to fire the host's per-frame callback.
func (p *PPU) TakeNMI() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}

// ReadRegister services a CPU read from $2000-$2007 (mirrored every
// 8 bytes through $3FFF).
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr % 8 {
	case 2:
		return p.readStatus()
	case 4:
		return p.readOAMData()
	case 7:
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister services a CPU write to $2000-$2007 (mirrored every
// 8 bytes through $3FFF).
func (p *PPU) WriteRegister(addr uint16, val uint8) {
	switch addr % 8 {
	case 0:
		p.writeControl(val)
	case 1:
		p.mask = Mask(val)
	case 3:
		p.oamAddr = val
	case 4:
		p.writeOAMData(val)
	case 5:
		p.writeScroll(val)
	case 6:
		p.writeAddr(val)
	case 7:
		p.writeData(val)
	}
}

func (p *PPU) writeControl(val uint8) {
	wasGenerateNMI := p.control.GenerateNMI()
	p.control = Control(val)
	p.t = (p.t &^ 0x0C00) | (uint16(val&0x03) << 10)

	// A 0->1 transition on the NMI-enable bit while already inside
	// vblank fires immediately, rather than waiting for the next
	// vblank edge.
	if !wasGenerateNMI && p.control.GenerateNMI() && p.status&statusVBlank != 0 {
		p.nmiPending = true
	}
}

func (p *PPU) readStatus() uint8 {
	v := p.status.snapshot()
	p.status.setVBlank(false)
	p.writeLatch = false
	return v
}

func (p *PPU) writeOAMData(val uint8) {
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

func (p *PPU) readOAMData() uint8 {
	return p.oam[p.oamAddr]
}

func (p *PPU) writeScroll(val uint8) {
	if !p.writeLatch {
		p.fineX = val & 0x07
		p.t = (p.t &^ 0x001F) | uint16(val>>3)
	} else {
		p.t = (p.t &^ 0x73E0) | (uint16(val&0x07) << 12) | (uint16(val&0xF8) << 2)
	}
	p.writeLatch = !p.writeLatch
}

func (p *PPU) writeAddr(val uint8) {
	if !p.writeLatch {
		p.t = (p.t & 0x00FF) | (uint16(val&0x3F) << 8)
	} else {
		p.t = (p.t &^ 0x00FF) | uint16(val)
		p.v = p.t
	}
	p.writeLatch = !p.writeLatch
}

func (p *PPU) writeData(val uint8) {
	p.writeVRAM(p.v, val)
	p.v += p.control.VRAMIncrement()
}

func (p *PPU) readData() uint8 {
	addr := p.v
	p.v += p.control.VRAMIncrement()

	if addr >= 0x3F00 {
		return p.readPalette(addr)
	}

	v := p.readBuffer
	p.readBuffer = p.readVRAM(addr)
	return v
}

func (p *PPU) readVRAM(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return p.chr.ChrRead(addr)
	case addr < 0x3F00:
		return p.vram[mirrorNametableAddr(p.mirroring, addr)]
	default:
		return p.readPalette(addr)
	}
}

func (p *PPU) writeVRAM(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		p.chr.ChrWrite(addr, val)
	case addr < 0x3F00:
		p.vram[mirrorNametableAddr(p.mirroring, addr)] = val
	default:
		p.palette[mirrorPaletteAddr(addr)] = val
	}
}

func (p *PPU) readPalette(addr uint16) uint8 {
	return p.palette[mirrorPaletteAddr(addr)]
}

// WriteOAMDMA copies a full 256-byte page into OAM starting at the
// current OAM address, wrapping around the table. The CPU-cycle
// stall this incurs is the bus's concern, not the PPU's.
func (p *PPU) WriteOAMDMA(page [256]byte) {
	for _, b := range page {
		p.oam[p.oamAddr] = b
		p.oamAddr++
	}
}
