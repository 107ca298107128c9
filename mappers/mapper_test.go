package mappers

import (
	"testing"

	"github.com/halvard/nescore/cartridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUnsupportedMapper(t *testing.T) {
	c := &cartridge.Cartridge{Mapper: 4}
	_, err := Get(c)
	require.Error(t, err)

	var umErr *UnsupportedMapperError
	require.ErrorAs(t, err, &umErr)
	assert.EqualValues(t, 4, umErr.Number)
}

func TestNROM16KMirrors(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xAA
	prg[0x3FFF] = 0xBB

	c := &cartridge.Cartridge{PRG: prg, Mapper: 0}
	m, err := Get(c)
	require.NoError(t, err)

	assert.EqualValues(t, 0xAA, m.PrgRead(0x8000))
	assert.EqualValues(t, 0xAA, m.PrgRead(0xC000))
	assert.EqualValues(t, 0xBB, m.PrgRead(0xBFFF))
	assert.EqualValues(t, 0xBB, m.PrgRead(0xFFFF))
}

func TestNROM32KNoMirror(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0] = 0x11
	prg[0x4000] = 0x22

	c := &cartridge.Cartridge{PRG: prg, Mapper: 0}
	m, err := Get(c)
	require.NoError(t, err)

	assert.EqualValues(t, 0x11, m.PrgRead(0x8000))
	assert.EqualValues(t, 0x22, m.PrgRead(0xC000))
}

func TestPrgWriteIsAnError(t *testing.T) {
	c := &cartridge.Cartridge{PRG: make([]byte, 0x4000), Mapper: 0}
	m, err := Get(c)
	require.NoError(t, err)

	err = m.PrgWrite(0x8000, 0x01)
	assert.ErrorIs(t, err, ErrRomWrite)
}
