// Package rom defines the decoded ROM aggregate and the errors of the loading stages.
package rom

import (
	"github.com/retroenv/smwrom/internal/gfx"
	"github.com/retroenv/smwrom/internal/header"
	"github.com/retroenv/smwrom/internal/level"
	"github.com/retroenv/smwrom/internal/palette"
)

// Rom is a fully decoded ROM. It is built once by the loading pipeline and
// not modified afterwards.
type Rom struct {
	InternalHeader *header.InternalHeader
	Levels         []*level.Level

	// GlobalPalette is shared by all level palettes, the Rom holds the first reference.
	GlobalPalette *palette.Shared
	// LevelPalettes is index aligned with Levels.
	LevelPalettes []*palette.LevelPalette

	// GfxFiles is index aligned with the manifest that was used for loading.
	GfxFiles []*gfx.File
}
