// Package romtest builds small synthetic ROM images for tests.
package romtest

import (
	"encoding/binary"
	"fmt"

	"github.com/retroenv/smwrom/internal/snes"
)

// Size of the image returned by New, 256 KiB.
const Size = 0x40000

// Values of the internal header written by New.
const (
	Name          = "SUPER MARIOWORLD     "
	MapMode       = byte(snes.SlowLoROM)
	RomType       = 0x02
	RomSize       = 0x08
	SramSize      = 0x01
	RegionCode    = 0x01
	DeveloperID   = 0x01
	VersionNumber = 0x00
)

// Addresses of the tables written by New.
const (
	HeaderPc            snes.PcAddr   = 0x7FC0
	LevelPointers       snes.SnesAddr = 0x05E000
	SecondaryTables     snes.SnesAddr = 0x05F000
	LevelHeaderAddress  snes.SnesAddr = 0x068000
	BackAreaColors      snes.SnesAddr = 0x00B0A0
	BGPalettes          snes.SnesAddr = 0x00B0B0
	FGPalettes          snes.SnesAddr = 0x00B190
	SpritePalettes      snes.SnesAddr = 0x00B318
	WTFPalettes         snes.SnesAddr = 0x00B250
	PlayerPalettes      snes.SnesAddr = 0x00B2C8
	Layer3Palettes      snes.SnesAddr = 0x00B170
	BerryPalettes       snes.SnesAddr = 0x00B674
	AnimatedColors      snes.SnesAddr = 0x00B60C
	GfxPointersLow      snes.SnesAddr = 0x00B992
	GfxPointersHigh     snes.SnesAddr = 0x00B9C4
	GfxPointersBank     snes.SnesAddr = 0x00B9F6
	GfxData             snes.SnesAddr = 0x078000
	GfxData2bpp         snes.SnesAddr = 0x078100
	GfxFileCount                      = 0x32
	Layer3GfxFirst                    = 0x28
	Layer3GfxLast                     = 0x2B
	LevelCount                        = 0x200
	secondaryTableSize                = 0x200
	paletteRecordSize                 = 0x18
	secondaryTableCount               = 4
)

// PrimaryHeader is the primary level header written for every level:
// bg palette 2, length 5, back area color 3, mode 0x0A, layer 3 priority,
// music 5, sprite gfx 4, timer 2, sprite palette 6, fg palette 1,
// item memory 1, vertical scroll 2, fg/bg gfx 0xE.
var PrimaryHeader = []byte{0x45, 0x6A, 0xD4, 0xB1, 0x6E}

// SecondaryHeader is the secondary level header written for every level:
// layer 2 scroll 3, entrance y 0xA, layer 3 2, entrance action 5,
// entrance x 6, midway screen 7, fg position 2, bg position 1,
// no yoshi, editor bit 6 set, vertical, entrance screen 0x13.
var SecondaryHeader = []byte{0x3A, 0xAE, 0x79, 0xF3}

// GfxBlob is the compressed data every graphics pointer refers to:
// a byte fill of 24 bytes with 0xFF, one 3bpp tile with all pixels set to 7.
var GfxBlob = []byte{0x37, 0xFF, 0xFF}

// GfxBlob2bpp is the compressed data of the layer 3 graphics pointers:
// two long byte fills of 0x400 bytes with 0xFF, 0x800 bytes that hold
// 128 2bpp tiles with all pixels set to 3.
var GfxBlob2bpp = []byte{0xE7, 0xFF, 0xFF, 0xE7, 0xFF, 0xFF, 0xFF}

// New returns a LoROM image with a valid internal header, level headers,
// palettes and graphics pointers. Color values are derived from their
// address so that tests can compute the expected color of any table entry.
func New() []byte {
	data := make([]byte, Size)

	for i := range LevelCount {
		PutLongPointer(data, LevelPointers+snes.SnesAddr(3*i), LevelHeaderAddress)
		for t := range secondaryTableCount {
			table := SecondaryTables + snes.SnesAddr(t*secondaryTableSize+i)
			Write(data, table, SecondaryHeader[t])
		}
	}
	Write(data, LevelHeaderAddress, PrimaryHeader...)

	fillColors(data, BackAreaColors, 8)
	fillColors(data, BGPalettes, 8*paletteRecordSize/2)
	fillColors(data, FGPalettes, 8*paletteRecordSize/2)
	fillColors(data, SpritePalettes, 8*paletteRecordSize/2)
	fillColors(data, WTFPalettes, 60)
	fillColors(data, PlayerPalettes, 40)
	fillColors(data, Layer3Palettes, 16)
	fillColors(data, BerryPalettes, 21)
	fillColors(data, AnimatedColors, 8)

	for i := range GfxFileCount {
		gfx := uint32(GfxData)
		if i >= Layer3GfxFirst && i <= Layer3GfxLast {
			gfx = uint32(GfxData2bpp)
		}
		Write(data, GfxPointersLow+snes.SnesAddr(i), byte(gfx))
		Write(data, GfxPointersHigh+snes.SnesAddr(i), byte(gfx>>8))
		Write(data, GfxPointersBank+snes.SnesAddr(i), byte(gfx>>16))
	}
	Write(data, GfxData, GfxBlob...)
	Write(data, GfxData2bpp, GfxBlob2bpp...)

	WriteHeader(data)
	return data
}

// ColorAt returns the color New stores at the given address.
func ColorAt(addr snes.SnesAddr) uint16 {
	return uint16(addr) & 0x7FFF
}

// WriteHeader writes the internal header and a matching checksum.
func WriteHeader(data []byte) {
	h := data[HeaderPc:]
	copy(h[:21], Name)
	h[21] = MapMode
	h[22] = RomType
	h[23] = RomSize
	h[24] = SramSize
	h[25] = RegionCode
	h[26] = DeveloperID
	h[27] = VersionNumber
	UpdateChecksum(data)
}

// UpdateChecksum recalculates the checksum and complement of the header.
// The sum of the four check bytes is the same for every checksum value, so
// the checksum is computed with placeholder values first.
func UpdateChecksum(data []byte) {
	h := data[HeaderPc:]
	binary.LittleEndian.PutUint16(h[0x1C:], 0xFFFF)
	binary.LittleEndian.PutUint16(h[0x1E:], 0x0000)

	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	binary.LittleEndian.PutUint16(h[0x1C:], ^sum)
	binary.LittleEndian.PutUint16(h[0x1E:], sum)
}

// Write writes bytes at a LoROM address.
func Write(data []byte, addr snes.SnesAddr, b ...byte) {
	pc, err := snes.SnesToPc(addr, snes.SlowLoROM)
	if err != nil {
		panic(fmt.Sprintf("converting %s: %v", addr, err))
	}
	copy(data[pc:], b)
}

// PutLongPointer writes a 3 byte pointer at a LoROM address.
func PutLongPointer(data []byte, addr, target snes.SnesAddr) {
	Write(data, addr, byte(target), byte(target>>8), byte(target>>16))
}

// PutColors writes little endian colors at a LoROM address.
func PutColors(data []byte, addr snes.SnesAddr, colors ...uint16) {
	for i, c := range colors {
		Write(data, addr+snes.SnesAddr(2*i), byte(c), byte(c>>8))
	}
}

func fillColors(data []byte, addr snes.SnesAddr, count int) {
	for i := range count {
		a := addr + snes.SnesAddr(2*i)
		PutColors(data, a, ColorAt(a))
	}
}
