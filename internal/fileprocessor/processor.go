// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/config"
	"github.com/retroenv/smwrom/internal/detector"
	"github.com/retroenv/smwrom/internal/loader"
	"github.com/retroenv/smwrom/internal/options"
	"github.com/retroenv/smwrom/internal/palette"
	"github.com/retroenv/smwrom/internal/rom"
	"github.com/retroenv/smwrom/internal/verification"
	"github.com/retroenv/smwrom/internal/writer"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	var data []byte
	var r *rom.Rom

	// a custom palette file is shown without decoding a ROM
	if opts.Command != options.CommandPalette || opts.Palette.Custom == "" {
		PrintInfo(logger, opts)

		var err error
		data, err = loader.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("loading ROM: %w", err)
		}

		l := loader.New(logger, config.PipelineOptions(opts))
		r, err = l.LoadBytes(ctx, data)
		if err != nil {
			return fmt.Errorf("decoding ROM: %w", err)
		}
	}

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := output.(io.Closer); ok && output != os.Stdout {
			_ = closer.Close()
		}
	}()

	return Report(logger, opts, data, r, output)
}

// Report writes the report of the selected command for a decoded ROM.
// The raw ROM data is required for the verify command.
func Report(logger *log.Logger, opts options.Program, data []byte, r *rom.Rom, output io.Writer) error {
	w := writer.New(output, writer.Options{Owners: opts.Palette.Owners})

	switch opts.Command {
	case options.CommandInfo:
		return w.WriteHeader(r.InternalHeader)

	case options.CommandLevels:
		return w.WriteLevels(r.Levels)

	case options.CommandPalette:
		p, err := selectPalette(opts.Palette, r)
		if err != nil {
			return err
		}
		return w.WritePalette(p)

	case options.CommandGfx:
		return w.WriteGfxFiles(r.GfxFiles)

	case options.CommandGraph:
		n := opts.Graph.Level
		if n < 0 || n >= len(r.Levels) {
			return fmt.Errorf("level number %#x out of range", n)
		}
		w.WriteGraph(r.InternalHeader, r.Levels[n])
		return nil

	case options.CommandVerify:
		trimmed, err := detector.TrimCopierHeader(data)
		if err != nil {
			return fmt.Errorf("trimming copier header: %w", err)
		}
		if err := verification.VerifyRom(logger, trimmed, r); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
		return nil

	default:
		return fmt.Errorf("unsupported command '%s'", opts.Command)
	}
}

func selectPalette(opts options.Palette, r *rom.Rom) (palette.ColorPalette, error) {
	if opts.Custom != "" {
		data, err := os.ReadFile(opts.Custom)
		if err != nil {
			return nil, fmt.Errorf("reading custom palette file %s: %w", opts.Custom, err)
		}
		p, err := palette.ParseCustom(data)
		if err != nil {
			return nil, fmt.Errorf("parsing custom palette file %s: %w", opts.Custom, err)
		}
		return p, nil
	}

	if opts.Level == options.GlobalPaletteLevel {
		return r.GlobalPalette.Clone(), nil
	}
	if opts.Level < 0 || opts.Level >= len(r.LevelPalettes) {
		return nil, fmt.Errorf("level number %#x out of range", opts.Level)
	}
	return r.LevelPalettes[opts.Level], nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the report filename for a given input
// file and command.
func GenerateOutputFilename(inputFile, command string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + "." + command + ".txt"
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintInfo prints the information about the input file.
func PrintInfo(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing SNES ROM",
		log.String("file", opts.Input),
		log.String("command", opts.Command),
		log.Int("workers", config.ResolveWorkers(opts.Workers)),
	)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	if len(commit) > 7 {
		commit = commit[:7]
	}
	logger.Info("smwrom", log.String("version", buildinfo.Version(version, commit, date)))
}
