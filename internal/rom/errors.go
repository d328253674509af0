package rom

import (
	"fmt"

	"github.com/retroenv/smwrom/internal/gfx"
	"github.com/retroenv/smwrom/internal/snes"
)

// ErrorKind identifies the loading stage that failed.
type ErrorKind int

// Loading stage error kinds.
const (
	KindBadSize ErrorKind = iota
	KindInternalHeader
	KindLevel
	KindPaletteGlobal
	KindPaletteLevel
	KindGfxManifest
	KindGfxFile
)

// ParseError is returned when a loading stage fails. Only the fields that
// belong to the kind are set.
type ParseError struct {
	Kind ErrorKind

	Index  int            // level number for KindLevel and KindPaletteLevel
	Size   int            // size remainder for KindBadSize, file size for KindGfxFile
	Format gfx.TileFormat // KindGfxFile
	Addr   snes.SnesAddr  // KindGfxFile

	Err error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindBadSize:
		return fmt.Sprintf("Invalid ROM size: %d", e.Size)
	case KindInternalHeader:
		return "Parsing internal header failed"
	case KindLevel:
		return fmt.Sprintf("Invalid level: %#x", e.Index)
	case KindPaletteGlobal:
		return "Could not parse global level color palette"
	case KindPaletteLevel:
		return fmt.Sprintf("Invalid level color palette: %#x", e.Index)
	case KindGfxManifest:
		return "Could not read GFX file table"
	case KindGfxFile:
		return fmt.Sprintf("Invalid GFX file - tile format: %s, addr: %s, size: %dB", e.Format, e.Addr, e.Size)
	default:
		return fmt.Sprintf("unknown ROM parse error kind %d", int(e.Kind))
	}
}

// Unwrap returns the cause of the error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
