// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/retroenv/smwrom/internal/options"
)

// CLI represents the command-line interface structure.
type CLI struct {
	Debug     bool   `help:"Enable debugging options for extended logging."`
	Quiet     bool   `short:"q" help:"Perform operations quietly."`
	Workers   int    `short:"w" default:"0" help:"Number of decoding workers, 0 uses one per CPU."`
	Output    string `short:"o" type:"path" help:"Name of the output report file, printed on console if no name given."`
	Batch     string `help:"Process a batch of files matching the given pattern, for example *.smc."`
	Statsview bool   `help:"Serve runtime statistics at http://localhost:12600/debug/statsview."`

	Info    InfoCmd    `cmd:"" help:"Display the internal ROM header."`
	Levels  LevelsCmd  `cmd:"" help:"List the headers of all levels."`
	Palette PaletteCmd `cmd:"" help:"Display a color palette as 16x16 grid."`
	Gfx     GfxCmd     `cmd:"" help:"List the decompressed graphics files."`
	Verify  VerifyCmd  `cmd:"" help:"Verify the ROM checksum and the palette layouts."`
	Graph   GraphCmd   `cmd:"" help:"Write the decoded headers of a level as Graphviz dot graph."`
}

// ROMArg is the positional ROM file argument shared by all commands.
type ROMArg struct {
	ROM string `arg:"" optional:"" type:"existingfile" help:"Path to ROM file."`
}

// InfoCmd displays the internal ROM header.
type InfoCmd struct {
	ROMArg `embed:""`
}

// LevelsCmd lists the level headers.
type LevelsCmd struct {
	ROMArg `embed:""`
}

// PaletteCmd displays a color palette.
type PaletteCmd struct {
	ROMArg `embed:""`

	Level  int    `short:"l" default:"-1" help:"Level number to show the palette of, -1 shows the global level palette."`
	Custom string `type:"existingfile" help:"Show a custom palette file instead of a ROM palette."`
	Owners bool   `help:"Show the table owning every cell instead of its color."`
}

// GfxCmd lists the graphics files.
type GfxCmd struct {
	ROMArg `embed:""`
}

// VerifyCmd verifies the ROM.
type VerifyCmd struct {
	ROMArg `embed:""`
}

// GraphCmd writes a structure graph of a level.
type GraphCmd struct {
	ROMArg `embed:""`

	Level int `short:"l" default:"0" help:"Level number to graph."`
}

// ParseFlags parses command line arguments and returns the program options.
func ParseFlags(args []string, kongOptions ...kong.Option) (options.Program, error) {
	var c CLI
	kongOptions = append([]kong.Option{
		kong.Name("smwrom"),
		kong.Description("A Super Mario World ROM decoder."),
	}, kongOptions...)

	parser, err := kong.New(&c, kongOptions...)
	if err != nil {
		return options.Program{}, fmt.Errorf("creating command line parser: %w", err)
	}

	ctx, err := parser.Parse(args)
	opts := c.program()
	if err != nil {
		return opts, &UsageError{parser: parser, msg: err.Error()}
	}

	opts.Command = strings.Fields(ctx.Command())[0]
	switch opts.Command {
	case options.CommandInfo:
		opts.Input = c.Info.ROM
	case options.CommandLevels:
		opts.Input = c.Levels.ROM
	case options.CommandPalette:
		opts.Input = c.Palette.ROM
		opts.Palette = options.Palette{
			Level:  c.Palette.Level,
			Custom: c.Palette.Custom,
			Owners: c.Palette.Owners,
		}
	case options.CommandGfx:
		opts.Input = c.Gfx.ROM
	case options.CommandVerify:
		opts.Input = c.Verify.ROM
	case options.CommandGraph:
		opts.Input = c.Graph.ROM
		opts.Graph = options.Graph{Level: c.Graph.Level}
	}

	if err := validateOptions(opts); err != nil {
		return opts, &UsageError{parser: parser, msg: err.Error()}
	}
	return opts, nil
}

func (c *CLI) program() options.Program {
	return options.Program{
		Parameters: options.Parameters{
			Output: c.Output,
			Batch:  c.Batch,
		},
		Flags: options.Flags{
			Debug:     c.Debug,
			Quiet:     c.Quiet,
			Statsview: c.Statsview,
			Workers:   c.Workers,
		},
	}
}

// validateOptions checks for option combinations that can not be processed.
func validateOptions(opts options.Program) error {
	custom := opts.Command == options.CommandPalette && opts.Palette.Custom != ""

	switch {
	case opts.Input == "" && opts.Batch == "" && !custom:
		return errors.New("no ROM file given, pass a file name or a batch pattern")
	case opts.Input != "" && opts.Batch != "":
		return errors.New("a ROM file and a batch pattern can not be combined")
	case opts.Workers < 0:
		return fmt.Errorf("invalid number of workers %d", opts.Workers)
	case opts.Palette.Level < options.GlobalPaletteLevel:
		return fmt.Errorf("invalid level number %d", opts.Palette.Level)
	case opts.Graph.Level < 0:
		return fmt.Errorf("invalid level number %d", opts.Graph.Level)
	}
	return nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	parser *kong.Kong
	msg    string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage of the program.
func (e *UsageError) ShowUsage() {
	ctx, err := kong.Trace(e.parser, nil)
	if err != nil {
		return
	}
	_ = ctx.PrintUsage(false)
}
