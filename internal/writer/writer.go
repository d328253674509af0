// Package writer renders decoded ROM data as text reports.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/smwrom/internal/gfx"
	"github.com/retroenv/smwrom/internal/header"
	"github.com/retroenv/smwrom/internal/level"
	"github.com/retroenv/smwrom/internal/palette"
)

// Writer renders ROM data to an output.
type Writer struct {
	writer  io.Writer
	options Options
}

// Options of the writer.
type Options struct {
	Owners bool // print the owning table of every palette cell instead of the color
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		writer:  writer,
		options: options,
	}
}

// WriteHeader writes the internal header fields.
func (w Writer) WriteHeader(hdr *header.InternalHeader) error {
	fields := []struct {
		name  string
		value string
	}{
		{"Name", strings.TrimRight(hdr.Name, " \x00")},
		{"Location", hdr.Location.String()},
		{"Map mode", hdr.MapMode.String()},
		{"ROM type", hdr.RomType.String()},
		{"ROM size", fmt.Sprintf("%d KiB", hdr.RomSizeInKB())},
		{"SRAM size", fmt.Sprintf("%d KiB", hdr.SramSizeInKB())},
		{"Region", hdr.RegionCode.String()},
		{"Developer ID", fmt.Sprintf("$%02X", hdr.DeveloperID)},
		{"Version", fmt.Sprintf("1.%d", hdr.VersionNumber)},
		{"Checksum", fmt.Sprintf("$%04X", hdr.Checksum)},
		{"Complement", fmt.Sprintf("$%04X", hdr.Complement)},
	}

	for _, field := range fields {
		if _, err := fmt.Fprintf(w.writer, "%-14s %s\n", field.name+":", field.value); err != nil {
			return fmt.Errorf("writing header field: %w", err)
		}
	}
	return nil
}

// WriteLevels writes one line per level with the most relevant header fields.
func (w Writer) WriteLevels(levels []*level.Level) error {
	if _, err := fmt.Fprintln(w.writer, "Level Mode Len Music BG FG SP BAC Timer Entrance Flags"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	for i, lvl := range levels {
		p := lvl.PrimaryHeader
		s := lvl.SecondaryHeader

		var flags []string
		if s.VerticalLevel {
			flags = append(flags, "vertical")
		}
		if s.NoYoshiLevel {
			flags = append(flags, "no-yoshi")
		}
		if p.Layer3Priority {
			flags = append(flags, "layer3-priority")
		}

		_, err := fmt.Fprintf(w.writer, "$%03X  $%02X  %3d %5d %2d %2d %2d %3d %5d %2d:%X,%X    %s\n",
			i, p.LevelMode, p.LevelLength, p.Music, p.PaletteBG, p.PaletteFG, p.PaletteSprite,
			p.BackAreaColor, p.Timer, s.MainEntranceScreen, s.MainEntranceX, s.MainEntranceY,
			strings.Join(flags, ","))
		if err != nil {
			return fmt.Errorf("writing level line: %w", err)
		}
	}
	return nil
}

// WritePalette writes the 16x16 grid of a palette, one row per line.
func (w Writer) WritePalette(p palette.ColorPalette) error {
	layout, hasLayout := p.(palette.Layout)
	owners := w.options.Owners && hasLayout

	for row := range palette.Size {
		cells := make([]string, 0, palette.Size)
		for col := range palette.Size {
			if owners {
				name, _ := layout.Owner(row, col)
				cells = append(cells, fmt.Sprintf("%-15s", name))
				continue
			}
			c, _ := p.ColorAt(row, col)
			cells = append(cells, fmt.Sprintf("%04X", uint16(c)))
		}

		line := strings.TrimRight(strings.Join(cells, " "), " ")
		if _, err := fmt.Fprintf(w.writer, "%X: %s\n", row, line); err != nil {
			return fmt.Errorf("writing palette row: %w", err)
		}
	}
	return nil
}

// WriteGfxFiles writes one line per graphics file.
func (w Writer) WriteGfxFiles(files []*gfx.File) error {
	for i, file := range files {
		_, err := fmt.Fprintf(w.writer, "GFX%02X  %-5s  %s  %4d tiles\n",
			i, file.Meta.Format, file.Meta.Slice.Begin, len(file.Tiles))
		if err != nil {
			return fmt.Errorf("writing gfx file line: %w", err)
		}
	}
	return nil
}

// WriteGraph writes the decoded structures as a Graphviz dot graph.
func (w Writer) WriteGraph(values ...any) {
	memviz.Map(w.writer, values...)
}
