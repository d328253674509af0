package palette

import (
	"fmt"

	"github.com/retroenv/smwrom/internal/snes"
)

// Global palette table addresses.
const (
	WTFAddress      snes.SnesAddr = 0x00B250
	PlayerAddress   snes.SnesAddr = 0x00B2C8
	Layer3Address   snes.SnesAddr = 0x00B170
	BerryAddress    snes.SnesAddr = 0x00B674
	AnimatedAddress snes.SnesAddr = 0x00B60C
)

// Global palette table lengths in colors.
const (
	WTFLength      = 60
	PlayerLength   = 40
	Layer3Length   = 16
	BerryLength    = 21
	AnimatedLength = 8
)

var (
	animatedRect = rect{rowStart: 0x6, rowEnd: 0x6, colStart: 0x4, colEnd: 0x4}
	playersRect  = rect{rowStart: 0x8, rowEnd: 0x8, colStart: 0x6, colEnd: 0xF}
	layer3Rect   = rect{rowStart: 0x0, rowEnd: 0x1, colStart: 0x8, colEnd: 0xF}
	berryRect1   = rect{rowStart: 0x2, rowEnd: 0x4, colStart: 0x9, colEnd: 0xF}
	berryRect2   = rect{rowStart: 0x9, rowEnd: 0xB, colStart: 0x9, colEnd: 0xF}
	wtfRect      = rect{rowStart: 0x4, rowEnd: 0xD, colStart: 0x2, colEnd: 0x7}
	gridRect     = rect{rowStart: 0x0, rowEnd: Size - 1, colStart: 0x0, colEnd: Size - 1}
)

// GlobalLevelPalette holds the colors that are shared by all levels.
// Cells that are not owned by one of the tables start out as the unset color 0.
type GlobalLevelPalette struct {
	WTF      [WTFLength]Color
	Players  [PlayerLength]Color
	Layer3   [Layer3Length]Color
	Berry    [BerryLength]Color
	Animated [AnimatedLength]Color

	unowned [Size * Size]Color
}

// ParseGlobal reads the global palette tables from their fixed addresses.
func ParseGlobal(data []byte, mode snes.MapMode) (*GlobalLevelPalette, error) {
	tables := []struct {
		name   string
		addr   snes.SnesAddr
		length int
	}{
		{"wtf", WTFAddress, WTFLength},
		{"players", PlayerAddress, PlayerLength},
		{"layer3", Layer3Address, Layer3Length},
		{"berry", BerryAddress, BerryLength},
		{"animated", AnimatedAddress, AnimatedLength},
	}

	colors := make(map[string][]Color, len(tables))
	for _, table := range tables {
		c, err := readColors(data, mode, table.addr, table.length)
		if err != nil {
			return nil, fmt.Errorf("reading %s colors at %s: %w", table.name, table.addr, err)
		}
		colors[table.name] = c
	}

	p := &GlobalLevelPalette{}
	fill(wtfRect, p.WTF[:], colors["wtf"])
	copy(p.Players[:], colors["players"])
	fill(layer3Rect, p.Layer3[:], colors["layer3"])
	fill(berryRect1, p.Berry[:], colors["berry"])
	copy(p.Animated[:], colors["animated"])
	return p, nil
}

func (p *GlobalLevelPalette) regions() []region {
	return []region{
		{name: "animated", rect: animatedRect, backing: p.Animated[:]},
		{name: "players", rect: playersRect, backing: p.Players[:]},
		{name: "layer3", rect: layer3Rect, backing: p.Layer3[:]},
		{name: "berry", rect: berryRect1, backing: p.Berry[:]},
		{name: "berry", rect: berryRect2, backing: p.Berry[:]},
		{name: "wtf", rect: wtfRect, backing: p.WTF[:]},
		{name: "unset", rect: gridRect, backing: p.unowned[:]},
	}
}

// ColorAt returns the color of a cell.
func (p *GlobalLevelPalette) ColorAt(row, col int) (Color, bool) {
	if !inGrid(row, col) {
		return 0, false
	}
	slot, _ := lookup(p.regions(), row, col)
	return *slot, true
}

// SetColorAt sets the color of a cell. It panics if the cell is outside of the grid.
func (p *GlobalLevelPalette) SetColorAt(row, col int, c Color) {
	mustInGrid(row, col)
	slot, _ := lookup(p.regions(), row, col)
	*slot = c
}

// IsAnimatedAt returns whether the cell shows the animated color.
func (p *GlobalLevelPalette) IsAnimatedAt(row, col int) bool {
	return animatedRect.contains(row, col)
}

// Owner returns the name of the table that owns the cell.
func (p *GlobalLevelPalette) Owner(row, col int) (string, bool) {
	if !inGrid(row, col) {
		return "", false
	}
	return owner(p.regions(), row, col)
}

// Regions returns the names of the tables in lookup order.
func (p *GlobalLevelPalette) Regions() []string {
	return regionNames(p.regions())
}

func regionNames(regions []region) []string {
	names := make([]string, 0, len(regions))
	for _, reg := range regions {
		names = append(names, reg.name)
	}
	return names
}
