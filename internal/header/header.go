// Package header implements detection and decoding of the internal cartridge header.
package header

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/retroenv/smwrom/internal/snes"
)

// Candidate header windows, each 64 bytes including the interrupt vectors.
var (
	LoROMWindow = snes.NewPcSlice(0x007FC0, 64)
	HiROMWindow = snes.NewPcSlice(0x00FFC0, 64)
)

const (
	// Size of the header record.
	Size = 32
	// NameSize is the size of the fixed width ROM name.
	NameSize = 21

	complementOffset = 0x1C
	checksumOffset   = 0x1E
)

// Errors returned by Parse, one per header field so that callers can report
// which part was malformed.
var (
	ErrNotFound          = errors.New("internal ROM header not found")
	ErrIsolatingData     = errors.New("isolating internal header data failed")
	ErrReadRomName       = errors.New("reading internal ROM name failed")
	ErrReadMapMode       = errors.New("reading map mode failed")
	ErrReadRomType       = errors.New("reading ROM type failed")
	ErrReadRomSize       = errors.New("reading ROM size failed")
	ErrReadSramSize      = errors.New("reading SRAM size failed")
	ErrReadRegionCode    = errors.New("reading region code failed")
	ErrReadDeveloperID   = errors.New("reading developer ID failed")
	ErrReadVersionNumber = errors.New("reading version number failed")
)

// InternalHeader is the decoded cartridge header.
type InternalHeader struct {
	Name          string
	MapMode       snes.MapMode
	RomType       RomType
	RomSize       uint8 // log2 of the size in KiB
	SramSize      uint8 // log2 of the size in KiB, 0 for none
	RegionCode    RegionCode
	DeveloperID   uint8
	VersionNumber uint8

	Complement uint16
	Checksum   uint16
	Location   Location
}

// maxSizeExponent limits the size fields to 16 MiB, the whole SNES address space.
const maxSizeExponent = 14

// RomSizeInKB returns the ROM size in KiB.
func (h *InternalHeader) RomSizeInKB() uint32 {
	return 1 << h.RomSize
}

// SramSizeInKB returns the SRAM size in KiB, 0 if the cartridge has no SRAM.
func (h *InternalHeader) SramSizeInKB() uint32 {
	if h.SramSize == 0 {
		return 0
	}
	return 1 << h.SramSize
}

// Parse searches the candidate locations for a header with a valid checksum
// complement and decodes it.
func Parse(data []byte) (*InternalHeader, error) {
	location, window, err := Find(data)
	if err != nil {
		return nil, err
	}

	record, err := snes.ReadPcSlice(data, window.Resize(Size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIsolatingData, err)
	}

	h := &InternalHeader{Location: location}
	if err := h.decode(snes.NewReader(record)); err != nil {
		return nil, err
	}
	return h, nil
}

// Find returns the first candidate location whose checksum and complement
// pair is consistent, preferring the LoROM location.
func Find(data []byte) (Location, snes.PcSlice, error) {
	if checksumValid(data, LoROMWindow) {
		return LocationLoROM, LoROMWindow, nil
	}
	if checksumValid(data, HiROMWindow) {
		return LocationHiROM, HiROMWindow, nil
	}
	return 0, snes.PcSlice{}, ErrNotFound
}

func checksumValid(data []byte, window snes.PcSlice) bool {
	complement, checksum, err := readChecksums(data, window)
	if err != nil {
		return false
	}
	return complement^checksum == 0xFFFF
}

func readChecksums(data []byte, window snes.PcSlice) (uint16, uint16, error) {
	r, err := snes.NewReaderAt(data, window.Begin.Add(complementOffset))
	if err != nil {
		return 0, 0, err
	}
	complement, err := r.ReadU16LE()
	if err != nil {
		return 0, 0, err
	}
	checksum, err := r.ReadU16LE()
	if err != nil {
		return 0, 0, err
	}
	return complement, checksum, nil
}

func (h *InternalHeader) decode(r *snes.Reader) error {
	name, err := r.ReadBytes(NameSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadRomName, err)
	}
	if !utf8.Valid(name) {
		return fmt.Errorf("%w: name is not valid text", ErrReadRomName)
	}
	h.Name = string(name)

	b, err := r.ReadU8()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMapMode, err)
	}
	if h.MapMode, err = snes.MapModeFromByte(b); err != nil {
		return fmt.Errorf("%w: %w", ErrReadMapMode, err)
	}

	b, err = r.ReadU8()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadRomType, err)
	}
	h.RomType = RomType(b)
	if !h.RomType.Valid() {
		return fmt.Errorf("%w: unknown type 0x%02X", ErrReadRomType, b)
	}

	if h.RomSize, err = r.ReadU8(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadRomSize, err)
	}
	if h.RomSize > maxSizeExponent {
		return fmt.Errorf("%w: size exponent %d too large", ErrReadRomSize, h.RomSize)
	}
	if h.SramSize, err = r.ReadU8(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadSramSize, err)
	}
	if h.SramSize > maxSizeExponent {
		return fmt.Errorf("%w: size exponent %d too large", ErrReadSramSize, h.SramSize)
	}

	b, err = r.ReadU8()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadRegionCode, err)
	}
	h.RegionCode = RegionCode(b)
	if !h.RegionCode.Valid() {
		return fmt.Errorf("%w: unknown region 0x%02X", ErrReadRegionCode, b)
	}

	if h.DeveloperID, err = r.ReadU8(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadDeveloperID, err)
	}
	if h.VersionNumber, err = r.ReadU8(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadVersionNumber, err)
	}

	if h.Complement, err = r.ReadU16LE(); err != nil {
		return fmt.Errorf("%w: %w", ErrIsolatingData, err)
	}
	if h.Checksum, err = r.ReadU16LE(); err != nil {
		return fmt.Errorf("%w: %w", ErrIsolatingData, err)
	}
	return nil
}
