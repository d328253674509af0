// Package pipeline orchestrates the ROM loading stages.
package pipeline

import (
	"context"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/detector"
	"github.com/retroenv/smwrom/internal/gfx"
	"github.com/retroenv/smwrom/internal/header"
	"github.com/retroenv/smwrom/internal/level"
	"github.com/retroenv/smwrom/internal/palette"
	"github.com/retroenv/smwrom/internal/rom"
	"github.com/retroenv/smwrom/internal/snes"
)

// Options configures the loading pipeline.
type Options struct {
	// Workers is the number of levels, palettes or graphics files that are
	// decoded in parallel. Values below 2 decode sequentially.
	Workers int
	// Manifest lists the graphics files to decode. If nil, the manifest is
	// read from the graphics pointer table of the ROM.
	Manifest gfx.Manifest
	// Decompressor expands the graphics files, defaults to the LZ2 codec.
	Decompressor gfx.Decompressor
}

// Pipeline orchestrates the complete ROM loading workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	opts     Options
}

// New creates a new loading pipeline.
func New(logger *log.Logger, opts Options) *Pipeline {
	if opts.Decompressor == nil {
		opts.Decompressor = gfx.LZ2{}
	}
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		opts:     opts,
	}
}

// Execute decodes a raw ROM image. The first failing stage aborts the
// loading and is returned as *rom.ParseError, no partial result is returned.
func (p *Pipeline) Execute(ctx context.Context, data []byte) (*rom.Rom, error) {
	data, err := p.detector.TrimCopierHeader(data)
	if err != nil {
		return nil, err
	}

	hdr, err := header.Parse(data)
	if err != nil {
		return nil, &rom.ParseError{Kind: rom.KindInternalHeader, Err: err}
	}
	p.logger.Debug("Internal ROM header found",
		log.Stringer("location", hdr.Location),
		log.Stringer("map_mode", hdr.MapMode),
		log.String("name", hdr.Name),
	)
	mode := hdr.MapMode

	levels, err := p.parseLevels(ctx, data, mode)
	if err != nil {
		return nil, err
	}

	global, err := palette.ParseGlobal(data, mode)
	if err != nil {
		return nil, &rom.ParseError{Kind: rom.KindPaletteGlobal, Err: err}
	}
	shared := palette.NewShared(global)

	levelPalettes, err := p.parseLevelPalettes(ctx, data, mode, levels, shared)
	if err != nil {
		return nil, err
	}

	gfxFiles, err := p.parseGfxFiles(ctx, data, mode)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("ROM decoded",
		log.Int("levels", len(levels)),
		log.Int("gfx_files", len(gfxFiles)),
	)

	return &rom.Rom{
		InternalHeader: hdr,
		Levels:         levels,
		GlobalPalette:  shared,
		LevelPalettes:  levelPalettes,
		GfxFiles:       gfxFiles,
	}, nil
}

func (p *Pipeline) parseLevels(ctx context.Context, data []byte, mode snes.MapMode) ([]*level.Level, error) {
	levels := make([]*level.Level, level.Count)

	index, err := forEach(ctx, p.opts.Workers, level.Count, func(i int) error {
		lvl, err := level.Parse(data, mode, i)
		if err != nil {
			return err
		}
		levels[i] = lvl
		return nil
	})
	if err != nil {
		return nil, stageError(rom.KindLevel, index, err)
	}
	return levels, nil
}

// parseLevelPalettes decodes one palette per level, each holding its own
// reference to the shared global palette.
func (p *Pipeline) parseLevelPalettes(ctx context.Context, data []byte, mode snes.MapMode,
	levels []*level.Level, global *palette.Shared) ([]*palette.LevelPalette, error) {

	palettes := make([]*palette.LevelPalette, len(levels))

	index, err := forEach(ctx, p.opts.Workers, len(levels), func(i int) error {
		lp, err := palette.ParseLevel(data, mode, &levels[i].PrimaryHeader, global.Share())
		if err != nil {
			global.Release()
			return err
		}
		palettes[i] = lp
		return nil
	})
	if err != nil {
		return nil, stageError(rom.KindPaletteLevel, index, err)
	}
	return palettes, nil
}

func (p *Pipeline) parseGfxFiles(ctx context.Context, data []byte, mode snes.MapMode) ([]*gfx.File, error) {
	manifest := p.opts.Manifest
	if manifest == nil {
		var err error
		manifest, err = gfx.ResolveManifest(data, mode)
		if err != nil {
			return nil, &rom.ParseError{Kind: rom.KindGfxManifest, Err: err}
		}
	}

	files := make([]*gfx.File, len(manifest))

	index, err := forEach(ctx, p.opts.Workers, len(manifest), func(i int) error {
		file, err := gfx.Decode(data, mode, manifest[i], p.opts.Decompressor)
		if err != nil {
			return err
		}
		files[i] = file
		return nil
	})
	if err != nil {
		if index < 0 {
			return nil, err
		}
		meta := manifest[index]
		return nil, &rom.ParseError{
			Kind:   rom.KindGfxFile,
			Format: meta.Format,
			Addr:   meta.Slice.Begin,
			Size:   meta.Slice.Size,
			Err:    err,
		}
	}
	return files, nil
}

// stageError wraps the error of a failed index, context errors are returned unchanged.
func stageError(kind rom.ErrorKind, index int, err error) error {
	if index < 0 {
		return err
	}
	return &rom.ParseError{Kind: kind, Index: index, Err: err}
}
