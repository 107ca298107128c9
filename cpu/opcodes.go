package cpu

// instruction is one entry in the 256-slot opcode dispatch table.
// length is the full instruction length in bytes (opcode + operand);
// cycles is the base cycle count, before any page-cross penalty.
type instruction struct {
	name             string
	mode             AddressingMode
	length           uint8
	cycles           uint8
	pageCrossPenalty bool
	exec             func(*CPU, operand) error
}

var opcodeTable = map[uint8]instruction{}

func def(code uint8, name string, mode AddressingMode, length, cycles uint8, pageCrossPenalty bool, exec func(*CPU, operand) error) {
	opcodeTable[code] = instruction{name, mode, length, cycles, pageCrossPenalty, exec}
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// --- documented instruction bodies -----------------------------------

func (c *CPU) adc(val uint8) {
	sum := uint16(c.A) + uint16(val)
	if c.getFlag(Carry) {
		sum++
	}
	result := uint8(sum)
	overflow := (val^result)&(result^c.A)&0x80 != 0
	c.setFlag(Carry, sum > 0xFF)
	c.setFlag(Overflow, overflow)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, val uint8) {
	c.setFlag(Carry, reg >= val)
	c.setZN(reg - val)
}

func execADC(c *CPU, o operand) error { c.adc(c.load(o)); return nil }
func execSBC(c *CPU, o operand) error { c.adc(^c.load(o)); return nil }

func execAND(c *CPU, o operand) error { c.A &= c.load(o); c.setZN(c.A); return nil }
func execEOR(c *CPU, o operand) error { c.A ^= c.load(o); c.setZN(c.A); return nil }
func execORA(c *CPU, o operand) error { c.A |= c.load(o); c.setZN(c.A); return nil }

func execASL(c *CPU, o operand) error {
	v := c.load(o)
	carry := v&0x80 != 0
	v <<= 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, carry)
	c.setZN(v)
	return nil
}

func execLSR(c *CPU, o operand) error {
	v := c.load(o)
	carry := v&0x01 != 0
	v >>= 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, carry)
	c.setZN(v)
	return nil
}

func execROL(c *CPU, o operand) error {
	v := c.load(o)
	oldCarry := c.getFlag(Carry)
	newCarry := v&0x80 != 0
	v = (v << 1) | boolToU8(oldCarry)
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, newCarry)
	c.setZN(v)
	return nil
}

func execROR(c *CPU, o operand) error {
	v := c.load(o)
	oldCarry := c.getFlag(Carry)
	newCarry := v&0x01 != 0
	v = (v >> 1) | (boolToU8(oldCarry) << 7)
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, newCarry)
	c.setZN(v)
	return nil
}

func execBIT(c *CPU, o operand) error {
	v := c.load(o)
	c.setFlag(Zero, c.A&v == 0)
	c.setFlag(Overflow, v&0x40 != 0)
	c.setFlag(Negative, v&0x80 != 0)
	return nil
}

func branch(cond func(*CPU) bool) func(*CPU, operand) error {
	return func(c *CPU, o operand) error {
		if !cond(c) {
			return nil
		}
		base := c.PC
		c.PC = o.addr
		c.tick(1)
		if !samePage(base, o.addr) {
			c.tick(1)
		}
		return nil
	}
}

func execBRK(c *CPU, o operand) error {
	c.push16(c.PC + 1)
	c.push(uint8(c.P) | uint8(Break) | uint8(Break2))
	c.setFlag(InterruptDisable, true)
	c.PC = c.read16(irqVector)
	return nil
}

func clearFlag(f Flag) func(*CPU, operand) error {
	return func(c *CPU, o operand) error { c.setFlag(f, false); return nil }
}

func setFlagOp(f Flag) func(*CPU, operand) error {
	return func(c *CPU, o operand) error { c.setFlag(f, true); return nil }
}

func execCMP(c *CPU, o operand) error { c.compare(c.A, c.load(o)); return nil }
func execCPX(c *CPU, o operand) error { c.compare(c.X, c.load(o)); return nil }
func execCPY(c *CPU, o operand) error { c.compare(c.Y, c.load(o)); return nil }

func execDEC(c *CPU, o operand) error {
	v := c.load(o) - 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setZN(v)
	return nil
}

func execINC(c *CPU, o operand) error {
	v := c.load(o) + 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setZN(v)
	return nil
}

func execDEX(c *CPU, o operand) error { c.X--; c.setZN(c.X); return nil }
func execDEY(c *CPU, o operand) error { c.Y--; c.setZN(c.Y); return nil }
func execINX(c *CPU, o operand) error { c.X++; c.setZN(c.X); return nil }
func execINY(c *CPU, o operand) error { c.Y++; c.setZN(c.Y); return nil }

func execJMP(c *CPU, o operand) error { c.PC = o.addr; return nil }

func execJSR(c *CPU, o operand) error {
	c.push16(c.PC - 1)
	c.PC = o.addr
	return nil
}

func execRTS(c *CPU, o operand) error {
	c.PC = c.pop16() + 1
	return nil
}

func execRTI(c *CPU, o operand) error {
	status := c.pop()
	c.P = (Flag(status) &^ Break) | Break2
	c.PC = c.pop16()
	return nil
}

func execLDA(c *CPU, o operand) error { c.A = c.load(o); c.setZN(c.A); return nil }
func execLDX(c *CPU, o operand) error { c.X = c.load(o); c.setZN(c.X); return nil }
func execLDY(c *CPU, o operand) error { c.Y = c.load(o); c.setZN(c.Y); return nil }

func execNOP(c *CPU, o operand) error { return nil }

func execPHA(c *CPU, o operand) error { c.push(c.A); return nil }
func execPHP(c *CPU, o operand) error {
	c.push(uint8(c.P) | uint8(Break) | uint8(Break2))
	return nil
}
func execPLA(c *CPU, o operand) error { c.A = c.pop(); c.setZN(c.A); return nil }
func execPLP(c *CPU, o operand) error {
	c.P = (Flag(c.pop()) &^ Break) | Break2
	return nil
}

func execSTA(c *CPU, o operand) error { return c.store(o, c.A) }
func execSTX(c *CPU, o operand) error { return c.store(o, c.X) }
func execSTY(c *CPU, o operand) error { return c.store(o, c.Y) }

func execTAX(c *CPU, o operand) error { c.X = c.A; c.setZN(c.X); return nil }
func execTAY(c *CPU, o operand) error { c.Y = c.A; c.setZN(c.Y); return nil }
func execTSX(c *CPU, o operand) error { c.X = c.SP; c.setZN(c.X); return nil }
func execTXA(c *CPU, o operand) error { c.A = c.X; c.setZN(c.A); return nil }
func execTXS(c *CPU, o operand) error { c.SP = c.X; return nil }
func execTYA(c *CPU, o operand) error { c.A = c.Y; c.setZN(c.A); return nil }

// --- undocumented instruction bodies ---------------------------------

func execSLO(c *CPU, o operand) error {
	v := c.load(o)
	carry := v&0x80 != 0
	v <<= 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, carry)
	c.A |= v
	c.setZN(c.A)
	return nil
}

func execRLA(c *CPU, o operand) error {
	v := c.load(o)
	oldCarry := c.getFlag(Carry)
	newCarry := v&0x80 != 0
	v = (v << 1) | boolToU8(oldCarry)
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, newCarry)
	c.A &= v
	c.setZN(c.A)
	return nil
}

func execSRE(c *CPU, o operand) error {
	v := c.load(o)
	carry := v&0x01 != 0
	v >>= 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, carry)
	c.A ^= v
	c.setZN(c.A)
	return nil
}

func execRRA(c *CPU, o operand) error {
	v := c.load(o)
	oldCarry := c.getFlag(Carry)
	newCarry := v&0x01 != 0
	v = (v >> 1) | (boolToU8(oldCarry) << 7)
	if err := c.store(o, v); err != nil {
		return err
	}
	c.setFlag(Carry, newCarry)
	c.adc(v)
	return nil
}

func execLAX(c *CPU, o operand) error {
	v := c.load(o)
	c.A = v
	c.X = v
	c.setZN(v)
	return nil
}

func execSAX(c *CPU, o operand) error { return c.store(o, c.A&c.X) }

func execDCP(c *CPU, o operand) error {
	v := c.load(o) - 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.compare(c.A, v)
	return nil
}

func execISB(c *CPU, o operand) error {
	v := c.load(o) + 1
	if err := c.store(o, v); err != nil {
		return err
	}
	c.adc(^v)
	return nil
}

func execANC(c *CPU, o operand) error {
	c.A &= c.load(o)
	c.setFlag(Carry, c.A&0x80 != 0)
	c.setZN(c.A)
	return nil
}

func execALR(c *CPU, o operand) error {
	c.A &= c.load(o)
	carry := c.A&0x01 != 0
	c.A >>= 1
	c.setFlag(Carry, carry)
	c.setZN(c.A)
	return nil
}

func execARR(c *CPU, o operand) error {
	c.A &= c.load(o)
	oldCarry := c.getFlag(Carry)
	c.A = (c.A >> 1) | (boolToU8(oldCarry) << 7)
	bit6 := c.A&0x40 != 0
	bit5 := c.A&0x20 != 0
	c.setFlag(Carry, bit6)
	c.setFlag(Overflow, bit6 != bit5)
	c.setZN(c.A)
	return nil
}

func execAXS(c *CPU, o operand) error {
	v := c.load(o)
	x := c.A & c.X
	c.setFlag(Carry, x >= v)
	c.X = x - v
	c.setZN(c.X)
	return nil
}

func init() {
	// ADC
	def(0x69, "ADC", Immediate, 2, 2, false, execADC)
	def(0x65, "ADC", ZeroPage, 2, 3, false, execADC)
	def(0x75, "ADC", ZeroPageX, 2, 4, false, execADC)
	def(0x6D, "ADC", Absolute, 3, 4, false, execADC)
	def(0x7D, "ADC", AbsoluteX, 3, 4, true, execADC)
	def(0x79, "ADC", AbsoluteY, 3, 4, true, execADC)
	def(0x61, "ADC", IndirectX, 2, 6, false, execADC)
	def(0x71, "ADC", IndirectY, 2, 5, true, execADC)

	// SBC
	def(0xE9, "SBC", Immediate, 2, 2, false, execSBC)
	def(0xEB, "SBC", Immediate, 2, 2, false, execSBC) // undocumented duplicate
	def(0xE5, "SBC", ZeroPage, 2, 3, false, execSBC)
	def(0xF5, "SBC", ZeroPageX, 2, 4, false, execSBC)
	def(0xED, "SBC", Absolute, 3, 4, false, execSBC)
	def(0xFD, "SBC", AbsoluteX, 3, 4, true, execSBC)
	def(0xF9, "SBC", AbsoluteY, 3, 4, true, execSBC)
	def(0xE1, "SBC", IndirectX, 2, 6, false, execSBC)
	def(0xF1, "SBC", IndirectY, 2, 5, true, execSBC)

	// AND
	def(0x29, "AND", Immediate, 2, 2, false, execAND)
	def(0x25, "AND", ZeroPage, 2, 3, false, execAND)
	def(0x35, "AND", ZeroPageX, 2, 4, false, execAND)
	def(0x2D, "AND", Absolute, 3, 4, false, execAND)
	def(0x3D, "AND", AbsoluteX, 3, 4, true, execAND)
	def(0x39, "AND", AbsoluteY, 3, 4, true, execAND)
	def(0x21, "AND", IndirectX, 2, 6, false, execAND)
	def(0x31, "AND", IndirectY, 2, 5, true, execAND)

	// EOR
	def(0x49, "EOR", Immediate, 2, 2, false, execEOR)
	def(0x45, "EOR", ZeroPage, 2, 3, false, execEOR)
	def(0x55, "EOR", ZeroPageX, 2, 4, false, execEOR)
	def(0x4D, "EOR", Absolute, 3, 4, false, execEOR)
	def(0x5D, "EOR", AbsoluteX, 3, 4, true, execEOR)
	def(0x59, "EOR", AbsoluteY, 3, 4, true, execEOR)
	def(0x41, "EOR", IndirectX, 2, 6, false, execEOR)
	def(0x51, "EOR", IndirectY, 2, 5, true, execEOR)

	// ORA
	def(0x09, "ORA", Immediate, 2, 2, false, execORA)
	def(0x05, "ORA", ZeroPage, 2, 3, false, execORA)
	def(0x15, "ORA", ZeroPageX, 2, 4, false, execORA)
	def(0x0D, "ORA", Absolute, 3, 4, false, execORA)
	def(0x1D, "ORA", AbsoluteX, 3, 4, true, execORA)
	def(0x19, "ORA", AbsoluteY, 3, 4, true, execORA)
	def(0x01, "ORA", IndirectX, 2, 6, false, execORA)
	def(0x11, "ORA", IndirectY, 2, 5, true, execORA)

	// ASL
	def(0x0A, "ASL", Accumulator, 1, 2, false, execASL)
	def(0x06, "ASL", ZeroPage, 2, 5, false, execASL)
	def(0x16, "ASL", ZeroPageX, 2, 6, false, execASL)
	def(0x0E, "ASL", Absolute, 3, 6, false, execASL)
	def(0x1E, "ASL", AbsoluteX, 3, 7, false, execASL)

	// LSR
	def(0x4A, "LSR", Accumulator, 1, 2, false, execLSR)
	def(0x46, "LSR", ZeroPage, 2, 5, false, execLSR)
	def(0x56, "LSR", ZeroPageX, 2, 6, false, execLSR)
	def(0x4E, "LSR", Absolute, 3, 6, false, execLSR)
	def(0x5E, "LSR", AbsoluteX, 3, 7, false, execLSR)

	// ROL
	def(0x2A, "ROL", Accumulator, 1, 2, false, execROL)
	def(0x26, "ROL", ZeroPage, 2, 5, false, execROL)
	def(0x36, "ROL", ZeroPageX, 2, 6, false, execROL)
	def(0x2E, "ROL", Absolute, 3, 6, false, execROL)
	def(0x3E, "ROL", AbsoluteX, 3, 7, false, execROL)

	// ROR
	def(0x6A, "ROR", Accumulator, 1, 2, false, execROR)
	def(0x66, "ROR", ZeroPage, 2, 5, false, execROR)
	def(0x76, "ROR", ZeroPageX, 2, 6, false, execROR)
	def(0x6E, "ROR", Absolute, 3, 6, false, execROR)
	def(0x7E, "ROR", AbsoluteX, 3, 7, false, execROR)

	// BIT
	def(0x24, "BIT", ZeroPage, 2, 3, false, execBIT)
	def(0x2C, "BIT", Absolute, 3, 4, false, execBIT)

	// branches
	def(0x90, "BCC", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.getFlag(Carry) }))
	def(0xB0, "BCS", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.getFlag(Carry) }))
	def(0xF0, "BEQ", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.getFlag(Zero) }))
	def(0x30, "BMI", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.getFlag(Negative) }))
	def(0xD0, "BNE", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.getFlag(Zero) }))
	def(0x10, "BPL", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.getFlag(Negative) }))
	def(0x50, "BVC", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.getFlag(Overflow) }))
	def(0x70, "BVS", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.getFlag(Overflow) }))

	// BRK / flag ops
	def(0x00, "BRK", Implicit, 1, 7, false, execBRK)
	def(0x18, "CLC", Implicit, 1, 2, false, clearFlag(Carry))
	def(0xD8, "CLD", Implicit, 1, 2, false, clearFlag(DecimalMode))
	def(0x58, "CLI", Implicit, 1, 2, false, clearFlag(InterruptDisable))
	def(0xB8, "CLV", Implicit, 1, 2, false, clearFlag(Overflow))
	def(0x38, "SEC", Implicit, 1, 2, false, setFlagOp(Carry))
	def(0xF8, "SED", Implicit, 1, 2, false, setFlagOp(DecimalMode))
	def(0x78, "SEI", Implicit, 1, 2, false, setFlagOp(InterruptDisable))

	// CMP/CPX/CPY
	def(0xC9, "CMP", Immediate, 2, 2, false, execCMP)
	def(0xC5, "CMP", ZeroPage, 2, 3, false, execCMP)
	def(0xD5, "CMP", ZeroPageX, 2, 4, false, execCMP)
	def(0xCD, "CMP", Absolute, 3, 4, false, execCMP)
	def(0xDD, "CMP", AbsoluteX, 3, 4, true, execCMP)
	def(0xD9, "CMP", AbsoluteY, 3, 4, true, execCMP)
	def(0xC1, "CMP", IndirectX, 2, 6, false, execCMP)
	def(0xD1, "CMP", IndirectY, 2, 5, true, execCMP)
	def(0xE0, "CPX", Immediate, 2, 2, false, execCPX)
	def(0xE4, "CPX", ZeroPage, 2, 3, false, execCPX)
	def(0xEC, "CPX", Absolute, 3, 4, false, execCPX)
	def(0xC0, "CPY", Immediate, 2, 2, false, execCPY)
	def(0xC4, "CPY", ZeroPage, 2, 3, false, execCPY)
	def(0xCC, "CPY", Absolute, 3, 4, false, execCPY)

	// DEC/INC and register inc/dec
	def(0xC6, "DEC", ZeroPage, 2, 5, false, execDEC)
	def(0xD6, "DEC", ZeroPageX, 2, 6, false, execDEC)
	def(0xCE, "DEC", Absolute, 3, 6, false, execDEC)
	def(0xDE, "DEC", AbsoluteX, 3, 7, false, execDEC)
	def(0xE6, "INC", ZeroPage, 2, 5, false, execINC)
	def(0xF6, "INC", ZeroPageX, 2, 6, false, execINC)
	def(0xEE, "INC", Absolute, 3, 6, false, execINC)
	def(0xFE, "INC", AbsoluteX, 3, 7, false, execINC)
	def(0xCA, "DEX", Implicit, 1, 2, false, execDEX)
	def(0x88, "DEY", Implicit, 1, 2, false, execDEY)
	def(0xE8, "INX", Implicit, 1, 2, false, execINX)
	def(0xC8, "INY", Implicit, 1, 2, false, execINY)

	// JMP/JSR/RTS/RTI
	def(0x4C, "JMP", Absolute, 3, 3, false, execJMP)
	def(0x6C, "JMP", Indirect, 3, 5, false, execJMP)
	def(0x20, "JSR", Absolute, 3, 6, false, execJSR)
	def(0x60, "RTS", Implicit, 1, 6, false, execRTS)
	def(0x40, "RTI", Implicit, 1, 6, false, execRTI)

	// LDA/LDX/LDY
	def(0xA9, "LDA", Immediate, 2, 2, false, execLDA)
	def(0xA5, "LDA", ZeroPage, 2, 3, false, execLDA)
	def(0xB5, "LDA", ZeroPageX, 2, 4, false, execLDA)
	def(0xAD, "LDA", Absolute, 3, 4, false, execLDA)
	def(0xBD, "LDA", AbsoluteX, 3, 4, true, execLDA)
	def(0xB9, "LDA", AbsoluteY, 3, 4, true, execLDA)
	def(0xA1, "LDA", IndirectX, 2, 6, false, execLDA)
	def(0xB1, "LDA", IndirectY, 2, 5, true, execLDA)
	def(0xA2, "LDX", Immediate, 2, 2, false, execLDX)
	def(0xA6, "LDX", ZeroPage, 2, 3, false, execLDX)
	def(0xB6, "LDX", ZeroPageY, 2, 4, false, execLDX)
	def(0xAE, "LDX", Absolute, 3, 4, false, execLDX)
	def(0xBE, "LDX", AbsoluteY, 3, 4, true, execLDX)
	def(0xA0, "LDY", Immediate, 2, 2, false, execLDY)
	def(0xA4, "LDY", ZeroPage, 2, 3, false, execLDY)
	def(0xB4, "LDY", ZeroPageX, 2, 4, false, execLDY)
	def(0xAC, "LDY", Absolute, 3, 4, false, execLDY)
	def(0xBC, "LDY", AbsoluteX, 3, 4, true, execLDY)

	// NOP
	def(0xEA, "NOP", Implicit, 1, 2, false, execNOP)
	for _, c := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		def(c, "NOP", Implicit, 1, 2, false, execNOP)
	}
	for _, c := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		def(c, "NOP", Immediate, 2, 2, false, execNOP)
	}
	for _, c := range []uint8{0x04, 0x44, 0x64} {
		def(c, "NOP", ZeroPage, 2, 3, false, execNOP)
	}
	for _, c := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		def(c, "NOP", ZeroPageX, 2, 4, false, execNOP)
	}
	def(0x0C, "NOP", Absolute, 3, 4, false, execNOP)
	for _, c := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		def(c, "NOP", AbsoluteX, 3, 4, true, execNOP)
	}

	// PHA/PHP/PLA/PLP
	def(0x48, "PHA", Implicit, 1, 3, false, execPHA)
	def(0x08, "PHP", Implicit, 1, 3, false, execPHP)
	def(0x68, "PLA", Implicit, 1, 4, false, execPLA)
	def(0x28, "PLP", Implicit, 1, 4, false, execPLP)

	// STA/STX/STY
	def(0x85, "STA", ZeroPage, 2, 3, false, execSTA)
	def(0x95, "STA", ZeroPageX, 2, 4, false, execSTA)
	def(0x8D, "STA", Absolute, 3, 4, false, execSTA)
	def(0x9D, "STA", AbsoluteX, 3, 5, false, execSTA)
	def(0x99, "STA", AbsoluteY, 3, 5, false, execSTA)
	def(0x81, "STA", IndirectX, 2, 6, false, execSTA)
	def(0x91, "STA", IndirectY, 2, 6, false, execSTA)
	def(0x86, "STX", ZeroPage, 2, 3, false, execSTX)
	def(0x96, "STX", ZeroPageY, 2, 4, false, execSTX)
	def(0x8E, "STX", Absolute, 3, 4, false, execSTX)
	def(0x84, "STY", ZeroPage, 2, 3, false, execSTY)
	def(0x94, "STY", ZeroPageX, 2, 4, false, execSTY)
	def(0x8C, "STY", Absolute, 3, 4, false, execSTY)

	// register transfers
	def(0xAA, "TAX", Implicit, 1, 2, false, execTAX)
	def(0xA8, "TAY", Implicit, 1, 2, false, execTAY)
	def(0xBA, "TSX", Implicit, 1, 2, false, execTSX)
	def(0x8A, "TXA", Implicit, 1, 2, false, execTXA)
	def(0x9A, "TXS", Implicit, 1, 2, false, execTXS)
	def(0x98, "TYA", Implicit, 1, 2, false, execTYA)

	// --- undocumented opcodes ---
	def(0x03, "SLO", IndirectX, 2, 8, false, execSLO)
	def(0x07, "SLO", ZeroPage, 2, 5, false, execSLO)
	def(0x0F, "SLO", Absolute, 3, 6, false, execSLO)
	def(0x13, "SLO", IndirectY, 2, 8, false, execSLO)
	def(0x17, "SLO", ZeroPageX, 2, 6, false, execSLO)
	def(0x1B, "SLO", AbsoluteY, 3, 7, false, execSLO)
	def(0x1F, "SLO", AbsoluteX, 3, 7, false, execSLO)

	def(0x23, "RLA", IndirectX, 2, 8, false, execRLA)
	def(0x27, "RLA", ZeroPage, 2, 5, false, execRLA)
	def(0x2F, "RLA", Absolute, 3, 6, false, execRLA)
	def(0x33, "RLA", IndirectY, 2, 8, false, execRLA)
	def(0x37, "RLA", ZeroPageX, 2, 6, false, execRLA)
	def(0x3B, "RLA", AbsoluteY, 3, 7, false, execRLA)
	def(0x3F, "RLA", AbsoluteX, 3, 7, false, execRLA)

	def(0x43, "SRE", IndirectX, 2, 8, false, execSRE)
	def(0x47, "SRE", ZeroPage, 2, 5, false, execSRE)
	def(0x4F, "SRE", Absolute, 3, 6, false, execSRE)
	def(0x53, "SRE", IndirectY, 2, 8, false, execSRE)
	def(0x57, "SRE", ZeroPageX, 2, 6, false, execSRE)
	def(0x5B, "SRE", AbsoluteY, 3, 7, false, execSRE)
	def(0x5F, "SRE", AbsoluteX, 3, 7, false, execSRE)

	def(0x63, "RRA", IndirectX, 2, 8, false, execRRA)
	def(0x67, "RRA", ZeroPage, 2, 5, false, execRRA)
	def(0x6F, "RRA", Absolute, 3, 6, false, execRRA)
	def(0x73, "RRA", IndirectY, 2, 8, false, execRRA)
	def(0x77, "RRA", ZeroPageX, 2, 6, false, execRRA)
	def(0x7B, "RRA", AbsoluteY, 3, 7, false, execRRA)
	def(0x7F, "RRA", AbsoluteX, 3, 7, false, execRRA)

	def(0xA3, "LAX", IndirectX, 2, 6, false, execLAX)
	def(0xA7, "LAX", ZeroPage, 2, 3, false, execLAX)
	def(0xAF, "LAX", Absolute, 3, 4, false, execLAX)
	def(0xB3, "LAX", IndirectY, 2, 5, true, execLAX)
	def(0xB7, "LAX", ZeroPageY, 2, 4, false, execLAX)
	def(0xBF, "LAX", AbsoluteY, 3, 4, true, execLAX)

	def(0x83, "SAX", IndirectX, 2, 6, false, execSAX)
	def(0x87, "SAX", ZeroPage, 2, 3, false, execSAX)
	def(0x8F, "SAX", Absolute, 3, 4, false, execSAX)
	def(0x97, "SAX", ZeroPageY, 2, 4, false, execSAX)

	def(0xC3, "DCP", IndirectX, 2, 8, false, execDCP)
	def(0xC7, "DCP", ZeroPage, 2, 5, false, execDCP)
	def(0xCF, "DCP", Absolute, 3, 6, false, execDCP)
	def(0xD3, "DCP", IndirectY, 2, 8, false, execDCP)
	def(0xD7, "DCP", ZeroPageX, 2, 6, false, execDCP)
	def(0xDB, "DCP", AbsoluteY, 3, 7, false, execDCP)
	def(0xDF, "DCP", AbsoluteX, 3, 7, false, execDCP)

	def(0xE3, "ISB", IndirectX, 2, 8, false, execISB)
	def(0xE7, "ISB", ZeroPage, 2, 5, false, execISB)
	def(0xEF, "ISB", Absolute, 3, 6, false, execISB)
	def(0xF3, "ISB", IndirectY, 2, 8, false, execISB)
	def(0xF7, "ISB", ZeroPageX, 2, 6, false, execISB)
	def(0xFB, "ISB", AbsoluteY, 3, 7, false, execISB)
	def(0xFF, "ISB", AbsoluteX, 3, 7, false, execISB)

	def(0x0B, "ANC", Immediate, 2, 2, false, execANC)
	def(0x2B, "ANC", Immediate, 2, 2, false, execANC)
	def(0x4B, "ALR", Immediate, 2, 2, false, execALR)
	def(0x6B, "ARR", Immediate, 2, 2, false, execARR)
	def(0xCB, "AXS", Immediate, 2, 2, false, execAXS)
}
