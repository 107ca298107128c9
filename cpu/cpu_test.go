package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRomWriteForTest = errors.New("fakeMemory: write to ROM region")

type fakeMemory struct {
	ram     [0x10000]byte
	romFrom uint16 // writes at or above this address fail, like cartridge PRG ROM
	nmi     bool
}

func newFakeMemory() *fakeMemory {
	return &fakeMemory{romFrom: 0x8000}
}

func (m *fakeMemory) Read(addr uint16) uint8 { return m.ram[addr] }

func (m *fakeMemory) Write(addr uint16, val uint8) error {
	if addr >= m.romFrom {
		return errRomWriteForTest
	}
	m.ram[addr] = val
	return nil
}

func (m *fakeMemory) Tick(cycles int) {}

func (m *fakeMemory) PollNMI() bool {
	v := m.nmi
	m.nmi = false
	return v
}

func (m *fakeMemory) load(addr uint16, program ...uint8) {
	copy(m.ram[addr:], program)
}

func newTestCPU(mem *fakeMemory, resetVectorTarget uint16) *CPU {
	mem.ram[resetVector] = uint8(resetVectorTarget)
	mem.ram[resetVector+1] = uint8(resetVectorTarget >> 8)
	c := New(mem)
	c.Reset()
	return c
}

func TestResetLoadsVectorAndPowerOnState(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0xC000)

	assert.EqualValues(t, 0xC000, c.PC)
	assert.EqualValues(t, 0, c.A)
	assert.EqualValues(t, stackReset, c.SP)
	assert.True(t, c.getFlag(InterruptDisable))
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.load(0x8000, 0xA9, 0x00, 0xA9, 0x80)

	require.NoError(t, c.step(nil))
	assert.True(t, c.getFlag(Zero))

	require.NoError(t, c.step(nil))
	assert.True(t, c.getFlag(Negative))
	assert.EqualValues(t, 0x80, c.A)
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.load(0x8000, 0xA9, 0x7F, 0x69, 0x01) // LDA #$7F; ADC #$01

	require.NoError(t, c.step(nil))
	require.NoError(t, c.step(nil))

	assert.EqualValues(t, 0x80, c.A)
	assert.True(t, c.getFlag(Overflow), "0x7F+0x01 overflows into negative")
	assert.False(t, c.getFlag(Carry))
}

func TestSBCBorrow(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	// SEC; LDA #$00; SBC #$01 -> 0xFF, carry clear (borrow)
	mem.load(0x8000, 0x38, 0xA9, 0x00, 0xE9, 0x01)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.step(nil))
	}

	assert.EqualValues(t, 0xFF, c.A)
	assert.False(t, c.getFlag(Carry))
}

func TestBranchTakenAddsCycle(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x80FE)
	// at $80FE: BEQ +$10 -> $8110, on the same page as the next
	// instruction ($8100), so only the taken-branch cycle is added
	mem.load(0x80FE, 0xF0, 0x10)
	c.setFlag(Zero, true)

	require.NoError(t, c.step(nil))
	assert.EqualValues(t, 0x8110, c.PC)
	assert.EqualValues(t, 7+2+1, c.cycles) // reset + BEQ + taken
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.load(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	mem.load(0x9000, 0x60)             // RTS

	require.NoError(t, c.step(nil)) // JSR
	assert.EqualValues(t, 0x9000, c.PC)

	require.NoError(t, c.step(nil)) // RTS
	assert.EqualValues(t, 0x8003, c.PC)
}

func TestStackPushPullRoundTrips(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.load(0x8000, 0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68) // LDA #$42; PHA; LDA #$00; PLA

	for i := 0; i < 4; i++ {
		require.NoError(t, c.step(nil))
	}

	assert.EqualValues(t, 0x42, c.A)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.load(0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	mem.ram[0x02FF] = 0x00
	mem.ram[0x0200] = 0x80 // buggy high byte read wraps to $0200, not $0300
	mem.ram[0x0300] = 0x01

	require.NoError(t, c.step(nil))
	assert.EqualValues(t, 0x8000, c.PC)
}

func TestStoreToROMReturnsError(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.load(0x8000, 0xA9, 0x01, 0x8D, 0x00, 0x80) // LDA #$01; STA $8000

	require.NoError(t, c.step(nil))
	err := c.step(nil)
	require.Error(t, err)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
}

func TestIllegalOpcodeReported(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.ram[0x8000] = 0x02 // unassigned opcode byte

	err := c.step(nil)
	require.Error(t, err)

	var ioErr *IllegalOpcodeError
	require.ErrorAs(t, err, &ioErr)
	assert.EqualValues(t, 0x02, ioErr.Opcode)
}

func TestLAXLoadsAccumulatorAndX(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.ram[0x00] = 0x55
	mem.load(0x8000, 0xA7, 0x00) // LAX $00

	require.NoError(t, c.step(nil))
	assert.EqualValues(t, 0x55, c.A)
	assert.EqualValues(t, 0x55, c.X)
}

func TestNMIServicedBeforeNextFetch(t *testing.T) {
	mem := newFakeMemory()
	c := newTestCPU(mem, 0x8000)
	mem.ram[nmiVector] = 0x00
	mem.ram[nmiVector+1] = 0x90
	mem.load(0x8000, 0xEA) // NOP at the interrupted PC
	mem.load(0x9000, 0xEA) // NOP at the NMI handler entry
	mem.nmi = true

	// step services the NMI, then fetches and executes the handler's
	// first instruction rather than the NOP at $8000.
	require.NoError(t, c.step(nil))
	assert.EqualValues(t, 0x9001, c.PC)
}
