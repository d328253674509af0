package header

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/smwrom/internal/snes"
)

type headerFields struct {
	name     string
	mapMode  byte
	romType  byte
	romSize  byte
	sramSize byte
	region   byte
	dev      byte
	version  byte
	checksum uint16
	valid    bool
}

var smwFields = headerFields{
	name:     "SUPER MARIOWORLD     ",
	mapMode:  0x20,
	romType:  0x02,
	romSize:  0x09,
	sramSize: 0x01,
	region:   0x01,
	dev:      0x01,
	version:  0x00,
	checksum: 0xA0DA,
	valid:    true,
}

func writeHeader(data []byte, window snes.PcSlice, f headerFields) {
	b := data[window.Begin:]
	copy(b[:NameSize], f.name)
	b[21] = f.mapMode
	b[22] = f.romType
	b[23] = f.romSize
	b[24] = f.sramSize
	b[25] = f.region
	b[26] = f.dev
	b[27] = f.version

	complement := ^f.checksum
	if !f.valid {
		complement = f.checksum
	}
	binary.LittleEndian.PutUint16(b[complementOffset:], complement)
	binary.LittleEndian.PutUint16(b[checksumOffset:], f.checksum)
}

func TestParse(t *testing.T) {
	data := make([]byte, 0x10000)
	writeHeader(data, LoROMWindow, smwFields)

	h, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, "SUPER MARIOWORLD     ", h.Name)
	assert.Equal(t, snes.SlowLoROM, h.MapMode)
	assert.Equal(t, TypeROMRAMSRAM, h.RomType)
	assert.Equal(t, uint32(512), h.RomSizeInKB())
	assert.Equal(t, uint32(2), h.SramSizeInKB())
	assert.Equal(t, NorthAmerica, h.RegionCode)
	assert.Equal(t, uint8(1), h.DeveloperID)
	assert.Equal(t, uint8(0), h.VersionNumber)
	assert.Equal(t, uint16(0xA0DA), h.Checksum)
	assert.Equal(t, uint16(0x5F25), h.Complement)
	assert.Equal(t, LocationLoROM, h.Location)
}

func TestParseLocation(t *testing.T) {
	hirom := smwFields
	hirom.mapMode = 0x21
	invalid := smwFields
	invalid.valid = false

	tests := []struct {
		name     string
		lo       *headerFields
		hi       *headerFields
		want     Location
		wantMode snes.MapMode
		wantErr  error
	}{
		{name: "lorom valid hirom invalid", lo: &smwFields, hi: &invalid, want: LocationLoROM, wantMode: snes.SlowLoROM},
		{name: "lorom invalid hirom valid", lo: &invalid, hi: &hirom, want: LocationHiROM, wantMode: snes.SlowHiROM},
		{name: "both valid prefers lorom", lo: &smwFields, hi: &hirom, want: LocationLoROM, wantMode: snes.SlowLoROM},
		{name: "both invalid", lo: &invalid, hi: &invalid, wantErr: ErrNotFound},
		{name: "nothing written", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, 0x10000)
			if tt.lo != nil {
				writeHeader(data, LoROMWindow, *tt.lo)
			}
			if tt.hi != nil {
				writeHeader(data, HiROMWindow, *tt.hi)
			}

			h, err := Parse(data)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, h.Location)
			assert.Equal(t, tt.wantMode, h.MapMode)
		})
	}
}

func TestParseShortData(t *testing.T) {
	// the HiROM location is outside of a 32 KiB image
	data := make([]byte, 0x8000)
	writeHeader(data, LoROMWindow, smwFields)

	h, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, LocationLoROM, h.Location)

	_, err = Parse(make([]byte, 0x100))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestParseFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(f *headerFields)
		wantErr error
	}{
		{name: "invalid name", modify: func(f *headerFields) { f.name = "\xFF\xFE" }, wantErr: ErrReadRomName},
		{name: "invalid map mode", modify: func(f *headerFields) { f.mapMode = 0x23 }, wantErr: ErrReadMapMode},
		{name: "invalid rom type", modify: func(f *headerFields) { f.romType = 0x07 }, wantErr: ErrReadRomType},
		{name: "invalid coprocessor", modify: func(f *headerFields) { f.romType = 0x63 }, wantErr: ErrReadRomType},
		{name: "invalid region", modify: func(f *headerFields) { f.region = 0x15 }, wantErr: ErrReadRegionCode},
		{name: "rom size overflow", modify: func(f *headerFields) { f.romSize = 0x20 }, wantErr: ErrReadRomSize},
		{name: "rom size too large", modify: func(f *headerFields) { f.romSize = 0x0F }, wantErr: ErrReadRomSize},
		{name: "sram size too large", modify: func(f *headerFields) { f.sramSize = 0xFF }, wantErr: ErrReadSramSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := smwFields
			tt.modify(&f)
			data := make([]byte, 0x10000)
			writeHeader(data, LoROMWindow, f)

			_, err := Parse(data)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestSizes(t *testing.T) {
	h := &InternalHeader{RomSize: 0, SramSize: 0}
	assert.Equal(t, uint32(1), h.RomSizeInKB())
	assert.Equal(t, uint32(0), h.SramSizeInKB())

	h = &InternalHeader{RomSize: 11, SramSize: 3}
	assert.Equal(t, uint32(2048), h.RomSizeInKB())
	assert.Equal(t, uint32(8), h.SramSizeInKB())

	h = &InternalHeader{RomSize: maxSizeExponent}
	assert.Equal(t, uint32(16384), h.RomSizeInKB())
}

func TestRomTypeString(t *testing.T) {
	tests := []struct {
		romType RomType
		want    string
		valid   bool
	}{
		{romType: 0x00, want: "ROM", valid: true},
		{romType: 0x01, want: "ROM + RAM", valid: true},
		{romType: 0x02, want: "ROM + RAM + SRAM", valid: true},
		{romType: 0x03, want: "ROM + DSP", valid: true},
		{romType: 0x14, want: "ROM + SuperFX + RAM", valid: true},
		{romType: 0x35, want: "ROM + SA-1 + RAM + SRAM", valid: true},
		{romType: 0xF6, want: "ROM + Custom expansion chip + SRAM", valid: true},
		{romType: 0xE3, want: "ROM + Other expansion chip", valid: true},
		{romType: 0x12, want: "ROM + SuperFX + Unknown memory chip", valid: false},
		{romType: 0x73, want: "ROM + Unknown expansion chip", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.romType.String())
			assert.Equal(t, tt.valid, tt.romType.Valid())
		})
	}
}

func TestRegionCodeString(t *testing.T) {
	assert.Equal(t, "Japan", Japan.String())
	assert.Equal(t, "North America", NorthAmerica.String())
	assert.Equal(t, "Other (3)", Other3.String())
	assert.False(t, RegionCode(0x15).Valid())
	assert.Equal(t, "Unknown (0x15)", RegionCode(0x15).String())
}
