// Package palette implements the 16x16 color palettes used by levels.
//
// A palette is composed of named regions, each owning a rectangle of the grid
// and backed by a flat color array. Colors inside a rectangle are stored
// column by column.
package palette

import "fmt"

// Size is the number of rows and columns of a palette grid.
const Size = 16

// ColorPalette is implemented by all palette variants.
type ColorPalette interface {
	// ColorAt returns the color of a cell. It returns false if the cell is
	// outside of the grid.
	ColorAt(row, col int) (Color, bool)
	// SetColorAt sets the color of a cell. The caller has to ensure that the
	// cell is inside the grid.
	SetColorAt(row, col int, c Color)
}

// rect is a grid rectangle with inclusive bounds.
type rect struct {
	rowStart, rowEnd int
	colStart, colEnd int
}

func (r rect) contains(row, col int) bool {
	return row >= r.rowStart && row <= r.rowEnd && col >= r.colStart && col <= r.colEnd
}

func (r rect) rows() int { return r.rowEnd - r.rowStart + 1 }

func (r rect) cols() int { return r.colEnd - r.colStart + 1 }

func (r rect) cells() int { return r.rows() * r.cols() }

// index returns the column-major index of a cell inside the rectangle.
func (r rect) index(row, col int) int {
	return (col-r.colStart)*r.rows() + (row - r.rowStart)
}

type region struct {
	name    string
	rect    rect
	backing []Color
}

// lookup returns the backing slot of the first region that contains the cell.
func lookup(regions []region, row, col int) (*Color, bool) {
	for i := range regions {
		reg := &regions[i]
		if reg.rect.contains(row, col) {
			return &reg.backing[reg.rect.index(row, col)], true
		}
	}
	return nil, false
}

// owner returns the name of the first region that contains the cell.
func owner(regions []region, row, col int) (string, bool) {
	for _, reg := range regions {
		if reg.rect.contains(row, col) {
			return reg.name, true
		}
	}
	return "", false
}

// fill places colors that are stored row by row in the ROM into the
// rectangle of the given backing array.
func fill(r rect, backing []Color, colors []Color) {
	n := r.cols()
	for i, c := range colors {
		row := r.rowStart + i/n
		col := r.colStart + i%n
		backing[r.index(row, col)] = c
	}
}

func inGrid(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func mustInGrid(row, col int) {
	if !inGrid(row, col) {
		panic(fmt.Sprintf("palette cell (%d, %d) out of range", row, col))
	}
}
