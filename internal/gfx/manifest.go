package gfx

import (
	"fmt"

	"github.com/retroenv/smwrom/internal/snes"
)

// FileCount is the number of graphics files referenced by the pointer table.
const FileCount = 0x32

// The pointer table is split into one table per address byte.
var (
	PointersLow  = snes.NewSnesSlice(0x00B992, FileCount)
	PointersHigh = snes.NewSnesSlice(0x00B9C4, FileCount)
	PointersBank = snes.NewSnesSlice(0x00B9F6, FileCount)
)

// Layer 3 graphics files, the only 2bpp files of the table.
const (
	Layer3FileFirst = 0x28
	Layer3FileLast  = 0x2B
)

// FileFormats is the fixed tile format of every file of the pointer table.
var FileFormats = fileFormats()

func fileFormats() [FileCount]TileFormat {
	var formats [FileCount]TileFormat
	for i := range formats {
		formats[i] = Format3bpp
	}
	for i := Layer3FileFirst; i <= Layer3FileLast; i++ {
		formats[i] = Format2bpp
	}
	return formats
}

// ResolveManifest builds the manifest from the graphics pointer table of the
// ROM, using the fixed tile format of each file. The compressed size of the
// files is not stored, so the slices are unbounded and every stream ends at
// its terminator.
func ResolveManifest(data []byte, mode snes.MapMode) (Manifest, error) {
	var tables [3][]byte
	for i, slice := range []snes.SnesSlice{PointersLow, PointersHigh, PointersBank} {
		b, err := snes.ReadSnesSlice(data, mode, slice)
		if err != nil {
			return nil, fmt.Errorf("reading pointer table at %s: %w", slice.Begin, err)
		}
		tables[i] = b
	}

	manifest := make(Manifest, FileCount)
	for i := range manifest {
		addr := snes.SnesAddr(tables[0][i]) | snes.SnesAddr(tables[1][i])<<8 | snes.SnesAddr(tables[2][i])<<16
		manifest[i] = FileMeta{
			Format: FileFormats[i],
			Slice:  snes.NewSnesSlice(addr, 0),
		}
	}
	return manifest, nil
}
