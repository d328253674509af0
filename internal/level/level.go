// Package level decodes the primary and secondary level headers.
package level

import (
	"fmt"

	"github.com/retroenv/smwrom/internal/snes"
)

// Count is the number of levels in the game.
const Count = 0x200

const (
	// PrimaryHeaderSize is the size of the primary header that starts the layer 1 data.
	PrimaryHeaderSize = 5

	layer1PointerSize = 3
)

// Table addresses.
var (
	Layer1Pointers = snes.NewSnesSlice(0x05E000, layer1PointerSize)

	// the secondary header is stored as four tables with one byte per level
	SecondaryTables = [4]snes.SnesSlice{
		snes.NewSnesSlice(0x05F000, 1),
		snes.NewSnesSlice(0x05F200, 1),
		snes.NewSnesSlice(0x05F400, 1),
		snes.NewSnesSlice(0x05F600, 1),
	}
)

// Level is one playable level.
type Level struct {
	PrimaryHeader   PrimaryHeader
	SecondaryHeader SecondaryHeader
}

// PrimaryHeader holds the level configuration stored in front of the layer 1 data.
type PrimaryHeader struct {
	PaletteBG      uint8
	PaletteFG      uint8
	PaletteSprite  uint8
	BackAreaColor  uint8
	SpriteGFX      uint8
	Timer          uint8
	ItemMemory     uint8
	VerticalScroll uint8
	FGBGGFX        uint8
	LevelLength    uint8
	LevelMode      uint8
	Layer3Priority bool
	Music          uint8
}

// SecondaryHeader holds the entrance and layer configuration of a level.
type SecondaryHeader struct {
	Layer2Scroll            uint8
	MainEntranceX           uint8
	MainEntranceY           uint8
	Layer3                  uint8
	MainEntranceMarioAction uint8
	MainEntranceScreen      uint8
	MidwayEntranceScreen    uint8
	FGInitialPosition       uint8
	BGInitialPosition       uint8
	NoYoshiLevel            bool
	VerticalLevel           bool
}

// Parse decodes both headers of the level with the given number.
func Parse(data []byte, mode snes.MapMode, number int) (*Level, error) {
	if number < 0 || number >= Count {
		return nil, fmt.Errorf("level number %#x out of range", number)
	}

	primary, err := ParsePrimaryHeader(data, mode, number)
	if err != nil {
		return nil, fmt.Errorf("parsing primary header: %w", err)
	}
	secondary, err := ParseSecondaryHeader(data, mode, number)
	if err != nil {
		return nil, fmt.Errorf("parsing secondary header: %w", err)
	}

	return &Level{
		PrimaryHeader:   *primary,
		SecondaryHeader: *secondary,
	}, nil
}

// ParsePrimaryHeader follows the layer 1 pointer of the level and decodes the
// header in front of the layer 1 data.
func ParsePrimaryHeader(data []byte, mode snes.MapMode, number int) (*PrimaryHeader, error) {
	ptr, err := snes.ReadSnesSlice(data, mode, Layer1Pointers.SkipForward(number))
	if err != nil {
		return nil, fmt.Errorf("reading layer 1 pointer: %w", err)
	}
	long, err := snes.NewReader(ptr).ReadU24LE()
	if err != nil {
		return nil, fmt.Errorf("reading layer 1 pointer: %w", err)
	}
	addr := snes.SnesAddr(long)

	b, err := snes.ReadSnesSlice(data, mode, snes.NewSnesSlice(addr, PrimaryHeaderSize))
	if err != nil {
		return nil, fmt.Errorf("reading header at %s: %w", addr, err)
	}

	return &PrimaryHeader{
		PaletteBG:      b[0] >> 5,
		LevelLength:    b[0] & 0x1F,
		BackAreaColor:  b[1] >> 5,
		LevelMode:      b[1] & 0x1F,
		Layer3Priority: b[2]&0x80 != 0,
		Music:          (b[2] >> 4) & 0x07,
		SpriteGFX:      b[2] & 0x0F,
		Timer:          b[3] >> 6,
		PaletteSprite:  (b[3] >> 3) & 0x07,
		PaletteFG:      b[3] & 0x07,
		ItemMemory:     b[4] >> 6,
		VerticalScroll: (b[4] >> 4) & 0x03,
		FGBGGFX:        b[4] & 0x0F,
	}, nil
}

// ParseSecondaryHeader decodes the secondary header from its per level tables.
// Bit 6 of the last table is only used by editor extensions and is ignored.
func ParseSecondaryHeader(data []byte, mode snes.MapMode, number int) (*SecondaryHeader, error) {
	var b [len(SecondaryTables)]byte
	for i, table := range SecondaryTables {
		v, err := snes.ReadSnesSlice(data, mode, table.SkipForward(number))
		if err != nil {
			return nil, fmt.Errorf("reading table %d: %w", i, err)
		}
		b[i] = v[0]
	}

	return &SecondaryHeader{
		Layer2Scroll:            b[0] >> 4,
		MainEntranceY:           b[0] & 0x0F,
		Layer3:                  b[1] >> 6,
		MainEntranceMarioAction: (b[1] >> 3) & 0x07,
		MainEntranceX:           b[1] & 0x07,
		MidwayEntranceScreen:    b[2] >> 4,
		FGInitialPosition:       (b[2] >> 2) & 0x03,
		BGInitialPosition:       b[2] & 0x03,
		NoYoshiLevel:            b[3]&0x80 != 0,
		VerticalLevel:           b[3]&0x20 != 0,
		MainEntranceScreen:      b[3] & 0x1F,
	}, nil
}
