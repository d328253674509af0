package header

import (
	"fmt"
)

// RomType describes the cartridge hardware: the low nibble selects the attached
// memory, the high nibble the coprocessor when one is present.
type RomType uint8

// Base ROM types without a coprocessor.
const (
	TypeROM        RomType = 0x00
	TypeROMRAM     RomType = 0x01
	TypeROMRAMSRAM RomType = 0x02
)

// Memory configurations of cartridges with a coprocessor.
const (
	memoryCoprocessor     = 0x3
	memoryCoprocessorRAM  = 0x4
	memoryCoprocessorBoth = 0x5
	memoryCoprocessorSRAM = 0x6
)

var coprocessorNames = map[uint8]string{
	0x00: "DSP",
	0x10: "SuperFX",
	0x20: "OBC-1",
	0x30: "SA-1",
	0x40: "SDD-1",
	0x50: "S-RTC",
	0xE0: "Other expansion chip",
	0xF0: "Custom expansion chip",
}

// Valid returns whether the byte encodes a known combination of coprocessor and memory.
func (t RomType) Valid() bool {
	memory := uint8(t) & 0x0F
	chip := uint8(t) & 0xF0

	switch memory {
	case 0x0, 0x1, 0x2:
		return chip == 0
	case memoryCoprocessor, memoryCoprocessorRAM, memoryCoprocessorBoth, memoryCoprocessorSRAM:
		_, ok := coprocessorNames[chip]
		return ok
	default:
		return false
	}
}

// HasCoprocessor returns whether an expansion chip is attached.
func (t RomType) HasCoprocessor() bool {
	return uint8(t)&0x0F >= memoryCoprocessor
}

func (t RomType) String() string {
	switch t {
	case TypeROM:
		return "ROM"
	case TypeROMRAM:
		return "ROM + RAM"
	case TypeROMRAMSRAM:
		return "ROM + RAM + SRAM"
	}

	coprocessor, ok := coprocessorNames[uint8(t)&0xF0]
	if !ok {
		coprocessor = "Unknown expansion chip"
	}

	var memory string
	switch uint8(t) & 0x0F {
	case memoryCoprocessor:
		return "ROM + " + coprocessor
	case memoryCoprocessorRAM:
		memory = "RAM"
	case memoryCoprocessorBoth:
		memory = "RAM + SRAM"
	case memoryCoprocessorSRAM:
		memory = "SRAM"
	default:
		memory = "Unknown memory chip"
	}
	return fmt.Sprintf("ROM + %s + %s", coprocessor, memory)
}

// RegionCode is the destination region of the cartridge.
type RegionCode uint8

// Region codes.
const (
	Japan RegionCode = iota
	NorthAmerica
	Europe
	Sweden
	Finland
	Denmark
	France
	Netherlands
	Spain
	Germany
	Italy
	China
	Indonesia
	Korea
	Global
	Canada
	Brazil
	Australia
	Other1
	Other2
	Other3
)

var regionNames = [...]string{
	Japan:        "Japan",
	NorthAmerica: "North America",
	Europe:       "Europe",
	Sweden:       "Sweden",
	Finland:      "Finland",
	Denmark:      "Denmark",
	France:       "France",
	Netherlands:  "Netherlands",
	Spain:        "Spain",
	Germany:      "Germany",
	Italy:        "Italy",
	China:        "China",
	Indonesia:    "Indonesia",
	Korea:        "Korea",
	Global:       "Global",
	Canada:       "Canada",
	Brazil:       "Brazil",
	Australia:    "Australia",
	Other1:       "Other (1)",
	Other2:       "Other (2)",
	Other3:       "Other (3)",
}

// Valid returns whether the region code is known.
func (r RegionCode) Valid() bool {
	return int(r) < len(regionNames)
}

func (r RegionCode) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Unknown (0x%02X)", uint8(r))
	}
	return regionNames[r]
}

// Location identifies which of the header candidate locations was accepted.
type Location int

// Header candidate locations.
const (
	LocationLoROM Location = iota
	LocationHiROM
)

func (l Location) String() string {
	if l == LocationHiROM {
		return "HiROM"
	}
	return "LoROM"
}
