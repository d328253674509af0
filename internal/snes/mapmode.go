package snes

import (
	"errors"
	"fmt"
)

// MapMode is the cartridge bank mapping mode as stored in the internal header.
// Bit 4 selects the access speed, bits 0-2 select the bank layout.
type MapMode uint8

// Valid map modes.
const (
	SlowLoROM   MapMode = 0b100000
	SlowHiROM   MapMode = 0b100001
	SlowExLoROM MapMode = 0b100010
	SlowExHiROM MapMode = 0b100100
	FastLoROM   MapMode = 0b110000
	FastHiROM   MapMode = 0b110001
	FastExLoROM MapMode = 0b110010
	FastExHiROM MapMode = 0b110100
)

const (
	mapModeFast    = 0b010000
	mapModeHiROM   = 0b000001
	mapModeExLoROM = 0b000010
	mapModeExHiROM = 0b000100
)

// ErrInvalidMapMode is returned for bytes that do not encode one of the known map modes.
var ErrInvalidMapMode = errors.New("invalid map mode")

// MapModes lists all valid map modes.
var MapModes = []MapMode{
	SlowLoROM, SlowHiROM, SlowExLoROM, SlowExHiROM,
	FastLoROM, FastHiROM, FastExLoROM, FastExHiROM,
}

// MapModeFromByte decodes a map mode byte.
func MapModeFromByte(b byte) (MapMode, error) {
	mode := MapMode(b)
	switch mode {
	case SlowLoROM, SlowHiROM, SlowExLoROM, SlowExHiROM,
		FastLoROM, FastHiROM, FastExLoROM, FastExHiROM:
		return mode, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidMapMode, b)
	}
}

// IsSlow returns whether the ROM is accessed at the slow (2.68 MHz) speed.
func (m MapMode) IsSlow() bool { return m&mapModeFast == 0 }

// IsFast returns whether the ROM is accessed at the fast (3.58 MHz) speed.
func (m MapMode) IsFast() bool { return !m.IsSlow() }

// IsLoROM returns whether the layout bit selects a LoROM style layout.
func (m MapMode) IsLoROM() bool { return m&mapModeHiROM == 0 }

// IsHiROM returns whether the layout bit selects a HiROM style layout.
func (m MapMode) IsHiROM() bool { return m&mapModeHiROM != 0 }

// IsExLoROM returns whether the extended LoROM layout is used.
func (m MapMode) IsExLoROM() bool { return m&mapModeExLoROM != 0 }

// IsExHiROM returns whether the extended HiROM layout is used.
func (m MapMode) IsExHiROM() bool { return m&mapModeExHiROM != 0 }

func (m MapMode) String() string {
	var name string
	switch {
	case m.IsExHiROM():
		name = "ExHiROM"
	case m.IsExLoROM():
		name = "ExLoROM"
	case m.IsHiROM():
		name = "HiROM"
	default:
		name = "LoROM"
	}
	if m.IsFast() {
		return "Fast " + name
	}
	return name
}
