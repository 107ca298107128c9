// Package bus wires the CPU's address space together: work RAM, the
// PPU's eight mirrored register ports, the joypad shift registers,
// and the cartridge's mapper-decoded PRG ROM.
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

import (
	"fmt"

	"github.com/halvard/nescore/cartridge"
	"github.com/halvard/nescore/joypad"
	"github.com/halvard/nescore/mappers"
	"github.com/halvard/nescore/ppu"
)

const (
	ramSize      = 0x0800
	ramMirrorEnd = 0x1FFF

	ppuRegStart     = 0x2000
	ppuRegMirrorEnd = 0x3FFF

	joypad1Port = 0x4016
	joypad2Port = 0x4017

	oamDMAPort = 0x4014

	prgROMStart = 0x8000
)

// FrameCallback is invoked on every NMI the PPU raises: once per
// frame at the start of vblank while PPUCTRL enables NMI generation
// (and once more if NMI is enabled mid-vblank), never while it is
// disabled. The host uses it to draw the completed frame and sample
// input for the next one. It is the single suspension point
// in an otherwise free-running CPU loop.
type FrameCallback func(view ppu.View, pad1, pad2 *joypad.Joypad)

// Bus is the NES's CPU-side address bus.
type Bus struct {
	ram    [ramSize]byte
	ppu    *ppu.PPU
	mapper mappers.Mapper
	pad1   *joypad.Joypad
	pad2   *joypad.Joypad

	onFrame FrameCallback

	cpuCycles uint64

	oamDMAPending bool
	oamDMAPage    uint8
	nmiArmed      bool
}

// New builds a bus around a parsed cartridge, wiring up its mapper
// and a fresh PPU, and arranges for onFrame to be called once per
// rendered frame.
func New(cart *cartridge.Cartridge, onFrame FrameCallback) (*Bus, error) {
	m, err := mappers.Get(cart)
	if err != nil {
		return nil, fmt.Errorf("bus: %w", err)
	}

	b := &Bus{
		mapper:  m,
		ppu:     ppu.New(m, m.Mirroring()),
		pad1:    joypad.New(),
		pad2:    joypad.New(),
		onFrame: onFrame,
	}
	return b, nil
}

// Read services a CPU memory read.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr%ramSize]

	case addr >= ppuRegStart && addr <= ppuRegMirrorEnd:
		return b.ppu.ReadRegister(addr)

	case addr == joypad1Port:
		return b.pad1.Read()

	case addr == joypad2Port:
		return b.pad2.Read()

	case addr >= prgROMStart:
		return b.mapper.PrgRead(addr)

	default:
		return 0 // unmapped APU/IO register, reads as 0
	}
}

// Write services a CPU memory write. The only error case is a write
// landing on cartridge PRG ROM.
func (b *Bus) Write(addr uint16, val uint8) error {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr%ramSize] = val
		return nil

	case addr >= ppuRegStart && addr <= ppuRegMirrorEnd:
		b.ppu.WriteRegister(addr, val)
		return nil

	case addr == oamDMAPort:
		b.triggerOAMDMA(val)
		return nil

	case addr == joypad1Port:
		// $4016 writes strobe both controllers simultaneously.
		b.pad1.Write(val)
		b.pad2.Write(val)
		return nil

	case addr >= prgROMStart:
		return b.mapper.PrgWrite(addr, val)

	default:
		return nil // unmapped APU/IO register, write is a no-op
	}
}

// triggerOAMDMA copies the 256-byte page starting at val<<8 into
// OAM. The real DMA controller stalls the CPU for 513 cycles, or 514
// if the write lands on an odd CPU cycle; that stall is folded into
// the next Tick call by inflating the reported cycle count.
func (b *Bus) triggerOAMDMA(page uint8) {
	var buf [256]byte
	base := uint16(page) << 8
	for i := range buf {
		buf[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(buf)
	b.oamDMAPending = true
	b.oamDMAPage = page
}

// Tick advances the PPU by three dots per CPU cycle, consumes any
// OAM DMA stall armed since the last Tick, detects the PPU's vblank
// NMI edge, and invokes the frame callback on each such edge.
func (b *Bus) Tick(cpuCycles int) {
	if b.oamDMAPending {
		stall := 513
		if b.cpuCycles%2 == 1 {
			stall = 514
		}
		cpuCycles += stall
		b.oamDMAPending = false
	}

	b.cpuCycles += uint64(cpuCycles)
	b.ppu.Tick(cpuCycles * 3)

	if b.ppu.TakeNMI() {
		b.nmiArmed = true
		if b.onFrame != nil {
			b.onFrame(b.ppu.View(), b.pad1, b.pad2)
		}
	}
}

// PollNMI reports and clears whether an NMI has been armed since the
// last call; the CPU services it before its next instruction fetch.
func (b *Bus) PollNMI() bool {
	armed := b.nmiArmed
	b.nmiArmed = false
	return armed
}

// Pad1 and Pad2 give the host direct access to set button state
// ahead of the next frame callback.
func (b *Bus) Pad1() *joypad.Joypad { return b.pad1 }
func (b *Bus) Pad2() *joypad.Joypad { return b.pad2 }
