package palette

import (
	"fmt"

	"github.com/retroenv/smwrom/internal/snes"
)

// CustomSize is the size in bytes of a custom palette block.
const CustomSize = colorSize + Size*Size*colorSize

// CustomPalette is a fully specified palette with the colors stored row by row.
type CustomPalette struct {
	BackAreaColor Color
	Colors        [Size * Size]Color
}

// ParseCustom reads a custom palette block: the back area color followed by
// the 256 grid colors.
func ParseCustom(data []byte) (*CustomPalette, error) {
	r := snes.NewReader(data)
	backArea, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("reading back area color: %w", err)
	}
	colors, err := decodeColors(r, Size*Size)
	if err != nil {
		return nil, fmt.Errorf("reading colors: %w", err)
	}

	p := &CustomPalette{BackAreaColor: Color(backArea)}
	copy(p.Colors[:], colors)
	return p, nil
}

// ColorAt returns the color of a cell.
func (p *CustomPalette) ColorAt(row, col int) (Color, bool) {
	if !inGrid(row, col) {
		return 0, false
	}
	return p.Colors[row*Size+col], true
}

// SetColorAt sets the color of a cell. It panics if the cell is outside of the grid.
func (p *CustomPalette) SetColorAt(row, col int, c Color) {
	mustInGrid(row, col)
	p.Colors[row*Size+col] = c
}
