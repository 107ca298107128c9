package cpu

// AddressingMode names how an instruction's operand bytes turn into
// the effective address (or, for Accumulator, the lack of one).
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type AddressingMode uint8

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// operand is what an instruction handler operates on: either a
// memory address, or, for accumulator-mode shifts/rotates, the A
// register directly.
type operand struct {
	addr          uint16
	isAccumulator bool
}

func (c *CPU) load(op operand) uint8 {
	if op.isAccumulator {
		return c.A
	}
	return c.read(op.addr)
}

func (c *CPU) store(op operand, val uint8) error {
	if op.isAccumulator {
		c.A = val
		return nil
	}
	return c.write(op.addr, val)
}

func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// resolveOperand reads the operand bytes for mode from c.PC (which
// points just past the opcode byte) and returns the resolved
// operand, whether resolving it crossed a page boundary (relevant
// only to the indexed modes that charge an extra cycle for it), and
// how many operand bytes were consumed so the caller can advance PC.
func (c *CPU) resolveOperand(mode AddressingMode) (op operand, pageCrossed bool, length uint8) {
	switch mode {
	case Implicit:
		return operand{}, false, 0

	case Accumulator:
		return operand{isAccumulator: true}, false, 0

	case Immediate:
		return operand{addr: c.PC}, false, 1

	case ZeroPage:
		return operand{addr: uint16(c.read(c.PC))}, false, 1

	case ZeroPageX:
		return operand{addr: uint16(c.read(c.PC) + c.X)}, false, 1

	case ZeroPageY:
		return operand{addr: uint16(c.read(c.PC) + c.Y)}, false, 1

	case Relative:
		offset := int8(c.read(c.PC))
		base := c.PC + 1
		target := uint16(int32(base) + int32(offset))
		return operand{addr: target}, !samePage(base, target), 1

	case Absolute:
		return operand{addr: c.read16(c.PC)}, false, 2

	case AbsoluteX:
		base := c.read16(c.PC)
		addr := base + uint16(c.X)
		return operand{addr: addr}, !samePage(base, addr), 2

	case AbsoluteY:
		base := c.read16(c.PC)
		addr := base + uint16(c.Y)
		return operand{addr: addr}, !samePage(base, addr), 2

	case Indirect:
		ptr := c.read16(c.PC)
		return operand{addr: c.readIndirectBuggy(ptr)}, false, 2

	case IndirectX:
		zp := c.read(c.PC) + c.X
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		return operand{addr: lo | hi<<8}, false, 1

	case IndirectY:
		zp := c.read(c.PC)
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := lo | hi<<8
		addr := base + uint16(c.Y)
		return operand{addr: addr}, !samePage(base, addr), 1

	default:
		return operand{}, false, 0
	}
}

// readIndirectBuggy reproduces the 6502's JMP ($xxFF) page-wrap bug:
// when the pointer's low byte is $FF, the high byte is fetched from
// the start of the same page rather than the next one.
func (c *CPU) readIndirectBuggy(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.read(hiAddr))
	return lo | hi<<8
}
