// Package gfx decodes the graphics files of the game into tiles.
package gfx

import (
	"errors"
	"fmt"

	"github.com/retroenv/smwrom/internal/snes"
)

// TileFormat is the pixel encoding of a graphics file.
type TileFormat int

// Tile formats.
const (
	Format2bpp TileFormat = iota
	Format3bpp
	Format4bpp
	Format8bpp
	FormatMode7
)

// TileSize is the number of pixels per tile row and column.
const TileSize = 8

// ErrInvalidSize is returned when the data does not hold a whole number of tiles.
var ErrInvalidSize = errors.New("data size is not a multiple of the tile size")

var formatNames = map[TileFormat]string{
	Format2bpp:  "2BPP",
	Format3bpp:  "3BPP",
	Format4bpp:  "4BPP",
	Format8bpp:  "8BPP",
	FormatMode7: "Mode7",
}

func (f TileFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TileFormat(%d)", int(f))
}

// BitsPerPixel returns the color depth of the format.
func (f TileFormat) BitsPerPixel() int {
	switch f {
	case Format2bpp:
		return 2
	case Format3bpp:
		return 3
	case Format4bpp:
		return 4
	default:
		return 8
	}
}

// TileBytes returns the encoded size of one tile.
func (f TileFormat) TileBytes() int {
	return f.BitsPerPixel() * TileSize
}

// Tile holds the color indices of an 8x8 tile, row by row.
type Tile [TileSize * TileSize]uint8

// FileMeta locates a graphics file in the ROM.
type FileMeta struct {
	Format TileFormat
	Slice  snes.SnesSlice
}

// Manifest lists the graphics files of a ROM.
type Manifest []FileMeta

// File is a decoded graphics file.
type File struct {
	Meta  FileMeta
	Tiles []Tile
}

// Decode decompresses a graphics file and decodes its tiles. An unbounded
// slice lets the decompressor read up to the end of the ROM.
func Decode(data []byte, mode snes.MapMode, meta FileMeta, dc Decompressor) (*File, error) {
	if dc == nil {
		dc = LZ2{}
	}

	src, err := snes.ReadSnesSlice(data, mode, meta.Slice)
	if err != nil {
		return nil, fmt.Errorf("reading compressed data: %w", err)
	}
	raw, err := dc.Decompress(src)
	if err != nil {
		return nil, err
	}

	tiles, err := DecodeTiles(raw, meta.Format)
	if err != nil {
		return nil, err
	}
	return &File{
		Meta:  meta,
		Tiles: tiles,
	}, nil
}

// DecodeTiles converts raw tile data of the given format to tiles.
func DecodeTiles(raw []byte, format TileFormat) ([]Tile, error) {
	if _, ok := formatNames[format]; !ok {
		return nil, fmt.Errorf("unsupported tile format %d", int(format))
	}
	size := format.TileBytes()
	if len(raw)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes of %s", ErrInvalidSize, len(raw), format)
	}

	tiles := make([]Tile, len(raw)/size)
	for i := range tiles {
		b := raw[i*size : (i+1)*size]
		if format == FormatMode7 {
			copy(tiles[i][:], b)
			continue
		}
		decodePlanar(&tiles[i], b, format)
	}
	return tiles, nil
}

// decodePlanar decodes a tile that is stored as pairs of interleaved bit
// planes. Odd plane counts store the last plane as 8 single bytes.
func decodePlanar(tile *Tile, b []byte, format TileFormat) {
	planes := format.BitsPerPixel()
	for row := range TileSize {
		for plane := range planes {
			pair := plane / 2
			var v byte
			if planes == 3 && plane == 2 {
				v = b[16+row]
			} else {
				v = b[pair*16+row*2+plane%2]
			}

			for col := range TileSize {
				bit := (v >> (7 - col)) & 1
				tile[row*TileSize+col] |= bit << plane
			}
		}
	}
}
