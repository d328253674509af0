// Package snes provides the SNES address spaces, bank mapping conversions and
// bounds-checked access to ROM regions.
package snes

import (
	"fmt"
)

// PcAddr is a flat byte offset into the ROM image after any copier header was stripped.
type PcAddr uint32

// SnesAddr is a 24 bit bank:offset address as seen on the console bus.
type SnesAddr uint32

const (
	// MaxSnesAddr is the highest addressable SNES bus address.
	MaxSnesAddr SnesAddr = 0xFFFFFF

	// maxLoROMPc is the first PC address that can not be represented in LoROM.
	maxLoROMPc PcAddr = 0x400000
)

// Add returns the address moved forward by n bytes.
func (a PcAddr) Add(n int) PcAddr { return PcAddr(int64(a) + int64(n)) }

// Sub returns the address moved backward by n bytes.
func (a PcAddr) Sub(n int) PcAddr { return PcAddr(int64(a) - int64(n)) }

func (a PcAddr) String() string { return fmt.Sprintf("0x%06X", uint32(a)) }

// Add returns the address moved forward by n bytes.
func (a SnesAddr) Add(n int) SnesAddr { return SnesAddr(int64(a) + int64(n)) }

// Sub returns the address moved backward by n bytes.
func (a SnesAddr) Sub(n int) SnesAddr { return SnesAddr(int64(a) - int64(n)) }

// Bank returns the bank byte of the address.
func (a SnesAddr) Bank() uint8 { return uint8(a >> 16) }

// Offset returns the 16 bit offset of the address inside its bank.
func (a SnesAddr) Offset() uint16 { return uint16(a) }

func (a SnesAddr) String() string { return fmt.Sprintf("$%06X", uint32(a)) }

// ConversionDirection specifies which address space conversion failed.
type ConversionDirection int

// Conversion directions.
const (
	PcToSnesConversion ConversionDirection = iota
	SnesToPcConversion
)

// AddressConversionError is returned when an address has no representation in the
// other address space.
type AddressConversionError struct {
	Direction ConversionDirection
	Pc        PcAddr
	Snes      SnesAddr
	Mode      MapMode
}

func (e *AddressConversionError) Error() string {
	if e.Direction == PcToSnesConversion {
		return fmt.Sprintf("PC address %#x is too big for LoROM.", uint32(e.Pc))
	}
	return fmt.Sprintf("Invalid SNES %s address: $%x", e.Mode, uint32(e.Snes))
}

// PcToSnes converts a PC address to its LoROM bus address.
// Banks 7E and 7F are occupied by WRAM, the last 64 KiB of a 4 MiB image are
// therefore addressed through the FastROM mirror in banks FE and FF.
func PcToSnes(pc PcAddr) (SnesAddr, error) {
	if pc >= maxLoROMPc {
		return 0, &AddressConversionError{Direction: PcToSnesConversion, Pc: pc}
	}

	addr := ((uint32(pc) << 1) & 0x7F0000) | (uint32(pc) & 0x7FFF) | 0x8000
	if addr&0xFE0000 == 0x7E0000 {
		addr |= 0x800000
	}
	return SnesAddr(addr), nil
}

// SnesToPc converts a bus address to a PC address using the given mapping mode.
func SnesToPc(addr SnesAddr, mode MapMode) (PcAddr, error) {
	a := uint32(addr)
	fail := func() (PcAddr, error) {
		return 0, &AddressConversionError{Direction: SnesToPcConversion, Snes: addr, Mode: mode}
	}

	if a > uint32(MaxSnesAddr) {
		return fail()
	}

	switch {
	case mode.IsExHiROM():
		if isWRAM(a) || isSystemArea(a) {
			return fail()
		}
		if a&0x800000 == 0 {
			return PcAddr((a & 0x3FFFFF) | 0x400000), nil
		}
		return PcAddr(a & 0x3FFFFF), nil

	case mode.IsExLoROM():
		if a&0xF00000 == 0x700000 || isSystemArea(a) {
			return fail()
		}
		pc := ((a & 0x7F0000) >> 1) | (a & 0x7FFF)
		if a&0x800000 == 0 {
			pc += 0x400000
		}
		return PcAddr(pc), nil

	case mode.IsHiROM():
		if isWRAM(a) || isSystemArea(a) {
			return fail()
		}
		return PcAddr(a & 0x3FFFFF), nil

	default:
		// the low halves of banks 70-7D hold cartridge SRAM
		if isWRAM(a) || isSystemArea(a) || a&0x708000 == 0x700000 {
			return fail()
		}
		return PcAddr(((a & 0x7F0000) >> 1) | (a & 0x7FFF)), nil
	}
}

// isWRAM returns whether the address is in banks 7E or 7F.
func isWRAM(a uint32) bool {
	return a&0xFE0000 == 0x7E0000
}

// isSystemArea returns whether the address is in the lower half of banks 00-3F or 80-BF
// that map RAM mirrors and hardware registers.
func isSystemArea(a uint32) bool {
	return a&0x408000 == 0
}
