// Package mappers implements cartridge mapper chips. Only mapper 0
// (NROM) has a real implementation; the registry exists so a future
// mapper only needs to call registerMapper in an init().
package mappers

import (
	"errors"
	"fmt"

	"github.com/halvard/nescore/cartridge"
)

// ErrRomWrite is returned when CPU code attempts to write into the
// cartridge's PRG ROM window ($8000-$FFFF).
var ErrRomWrite = errors.New("mappers: write to PRG ROM")

// Mapper is the interface the bus uses to access cartridge-resident
// memory; it hides the mapper-specific bank switching from the bus.
type Mapper interface {
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8) error
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
	Mirroring() cartridge.Mirroring
}

type factory func(*cartridge.Cartridge) Mapper

var registry = map[uint8]factory{}

func registerMapper(id uint8, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mappers: mapper %d already registered", id))
	}
	registry[id] = f
}

// UnsupportedMapperError reports a mapper number the registry doesn't
// implement.
type UnsupportedMapperError struct {
	Number uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("mappers: unsupported mapper %d", e.Number)
}

// Get constructs the mapper a cartridge declares, or an
// *UnsupportedMapperError if the core doesn't implement it.
func Get(c *cartridge.Cartridge) (Mapper, error) {
	f, ok := registry[c.Mapper]
	if !ok {
		return nil, &UnsupportedMapperError{Number: c.Mapper}
	}
	return f(c), nil
}
