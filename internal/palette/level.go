package palette

import (
	"fmt"

	"github.com/retroenv/smwrom/internal/level"
	"github.com/retroenv/smwrom/internal/snes"
)

// Level palette table lengths in colors.
const (
	BGLength     = 12
	FGLength     = 12
	SpriteLength = 12
)

// Tables that hold one record per selector value of the primary level header.
var (
	BackAreaColors = indexed{base: 0x00B0A0, recordSize: colorSize, count: 1}
	BGPalettes     = indexed{base: 0x00B0B0, recordSize: 0x18, count: BGLength}
	FGPalettes     = indexed{base: 0x00B190, recordSize: 0x18, count: FGLength}
	SpritePalettes = indexed{base: 0x00B318, recordSize: 0x18, count: SpriteLength}
)

var (
	bgRect     = rect{rowStart: 0x0, rowEnd: 0x1, colStart: 0x2, colEnd: 0x7}
	fgRect     = rect{rowStart: 0x2, rowEnd: 0x3, colStart: 0x2, colEnd: 0x7}
	spriteRect = rect{rowStart: 0xE, rowEnd: 0xF, colStart: 0x2, colEnd: 0x7}
)

// indexed is a table of fixed size color records selected by a small index.
type indexed struct {
	base       snes.SnesAddr
	recordSize int
	count      int
}

// read returns the colors of the record selected by the index.
func (t indexed) read(data []byte, mode snes.MapMode, selector uint8) ([]Color, error) {
	addr := t.base.Add(t.recordSize * int(selector))
	colors, err := readColors(data, mode, addr, t.count)
	if err != nil {
		return nil, fmt.Errorf("reading record %d at %s: %w", selector, addr, err)
	}
	return colors, nil
}

// LevelPalette is the palette of one level. Cells that are not owned by one of
// its tables are read from the shared global palette.
type LevelPalette struct {
	Global        *Shared
	BackAreaColor Color
	BG            [BGLength]Color
	FG            [FGLength]Color
	Sprite        [SpriteLength]Color
}

// ParseLevel reads the level palette tables selected by the primary header.
// The returned palette uses the passed global palette handle as fallback.
func ParseLevel(data []byte, mode snes.MapMode, header *level.PrimaryHeader, global *Shared) (*LevelPalette, error) {
	backArea, err := BackAreaColors.read(data, mode, header.BackAreaColor)
	if err != nil {
		return nil, fmt.Errorf("reading back area color: %w", err)
	}
	bg, err := BGPalettes.read(data, mode, header.PaletteBG)
	if err != nil {
		return nil, fmt.Errorf("reading bg colors: %w", err)
	}
	fg, err := FGPalettes.read(data, mode, header.PaletteFG)
	if err != nil {
		return nil, fmt.Errorf("reading fg colors: %w", err)
	}
	sprite, err := SpritePalettes.read(data, mode, header.PaletteSprite)
	if err != nil {
		return nil, fmt.Errorf("reading sprite colors: %w", err)
	}

	p := &LevelPalette{
		Global:        global,
		BackAreaColor: backArea[0],
	}
	fill(bgRect, p.BG[:], bg)
	fill(fgRect, p.FG[:], fg)
	fill(spriteRect, p.Sprite[:], sprite)
	return p, nil
}

func (p *LevelPalette) regions() []region {
	return []region{
		{name: "bg", rect: bgRect, backing: p.BG[:]},
		{name: "fg", rect: fgRect, backing: p.FG[:]},
		{name: "sprite", rect: spriteRect, backing: p.Sprite[:]},
	}
}

// ColorAt returns the color of a cell.
func (p *LevelPalette) ColorAt(row, col int) (Color, bool) {
	if !inGrid(row, col) {
		return 0, false
	}
	if slot, ok := lookup(p.regions(), row, col); ok {
		return *slot, true
	}
	if p.Global == nil {
		return 0, true
	}
	return p.Global.ColorAt(row, col)
}

// SetColorAt sets the color of a cell. Cells that are not owned by the level
// are written to the global palette, which only applies while the level holds
// the sole reference to it. It panics if the cell is outside of the grid.
func (p *LevelPalette) SetColorAt(row, col int, c Color) {
	mustInGrid(row, col)
	if slot, ok := lookup(p.regions(), row, col); ok {
		*slot = c
		return
	}
	if p.Global != nil {
		p.Global.SetColorAt(row, col, c)
	}
}

// Owner returns the name of the table that owns the cell, cells of the global
// palette are prefixed with "global/".
func (p *LevelPalette) Owner(row, col int) (string, bool) {
	if !inGrid(row, col) {
		return "", false
	}
	if name, ok := owner(p.regions(), row, col); ok {
		return name, true
	}
	if p.Global == nil {
		return "", false
	}
	name, ok := p.Global.Owner(row, col)
	return "global/" + name, ok
}

// Regions returns the names of the level tables in lookup order.
func (p *LevelPalette) Regions() []string {
	return regionNames(p.regions())
}
