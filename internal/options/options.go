// Package options contains the program options.
package options

// Commands supported by the program.
const (
	CommandInfo    = "info"
	CommandLevels  = "levels"
	CommandPalette = "palette"
	CommandGfx     = "gfx"
	CommandVerify  = "verify"
	CommandGraph   = "graph"
)

// GlobalPaletteLevel selects the global level palette instead of a level palette.
const GlobalPaletteLevel = -1

// Parameters contains file path options.
type Parameters struct {
	Input  string // input ROM file
	Output string // output report file, stdout if empty
	Batch  string // batch process files matching pattern, for example *.smc
}

// Flags contains behavior options.
type Flags struct {
	Debug     bool
	Quiet     bool
	Statsview bool // serve runtime statistics while decoding
	Workers   int  // number of decoding workers, 0 uses all CPUs
}

// Palette contains the options of the palette command.
type Palette struct {
	Level  int    // level number or GlobalPaletteLevel
	Custom string // custom palette file to show instead of a ROM palette
	Owners bool   // show the owning table of every cell
}

// Graph contains the options of the graph command.
type Graph struct {
	Level int // level number to graph
}

// Program options of the decoder.
type Program struct {
	Command string

	Parameters
	Flags
	Palette Palette
	Graph   Graph
}
