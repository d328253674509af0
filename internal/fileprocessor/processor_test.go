package fileprocessor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/gfx"
	"github.com/retroenv/smwrom/internal/options"
	"github.com/retroenv/smwrom/internal/palette"
	"github.com/retroenv/smwrom/internal/pipeline"
	"github.com/retroenv/smwrom/internal/rom"
	"github.com/retroenv/smwrom/internal/romtest"
)

func decodeTestRom(t *testing.T, data []byte) *rom.Rom {
	t.Helper()
	p := pipeline.New(log.NewTestLogger(t), pipeline.Options{Manifest: gfx.Manifest{}})
	r, err := p.Execute(context.Background(), data)
	assert.NoError(t, err)
	return r
}

func TestReport(t *testing.T) {
	data := romtest.New()
	r := decodeTestRom(t, data)

	tests := []struct {
		name    string
		opts    options.Program
		want    string
		wantErr string
	}{
		{name: "info", opts: options.Program{Command: options.CommandInfo}, want: "SUPER MARIOWORLD"},
		{name: "levels", opts: options.Program{Command: options.CommandLevels}, want: "$1FF  $0A"},
		{name: "global palette", opts: options.Program{Command: options.CommandPalette,
			Palette: options.Palette{Level: options.GlobalPaletteLevel, Owners: true}}, want: "players"},
		{name: "level palette", opts: options.Program{Command: options.CommandPalette,
			Palette: options.Palette{Level: 0x105, Owners: true}}, want: "sprite"},
		{name: "level palette out of range", opts: options.Program{Command: options.CommandPalette,
			Palette: options.Palette{Level: 0x200}}, wantErr: "level number 0x200 out of range"},
		{name: "gfx", opts: options.Program{Command: options.CommandGfx}, want: ""},
		{name: "graph", opts: options.Program{Command: options.CommandGraph, Graph: options.Graph{Level: 0x105}}, want: "digraph"},
		{name: "graph out of range", opts: options.Program{Command: options.CommandGraph,
			Graph: options.Graph{Level: 0x200}}, wantErr: "level number 0x200 out of range"},
		{name: "verify", opts: options.Program{Command: options.CommandVerify}, want: ""},
		{name: "unknown command", opts: options.Program{Command: "play"}, wantErr: "unsupported command 'play'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Report(log.NewTestLogger(t), tt.opts, data, r, &buf)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestReportVerifyFailure(t *testing.T) {
	data := romtest.New()
	r := decodeTestRom(t, data)
	data[0x1000]++

	err := Report(log.NewTestLogger(t), options.Program{Command: options.CommandVerify}, data, r, &bytes.Buffer{})
	assert.ErrorContains(t, err, "verification failed")
}

func TestReportCustomPalette(t *testing.T) {
	custom := make([]byte, palette.CustomSize)
	custom[2], custom[3] = 0xFF, 0x7F // row 0, column 0
	path := filepath.Join(t.TempDir(), "custom.pal")
	assert.NoError(t, os.WriteFile(path, custom, 0600))

	opts := options.Program{
		Command: options.CommandPalette,
		Palette: options.Palette{Custom: path},
	}

	var buf bytes.Buffer
	assert.NoError(t, Report(log.NewTestLogger(t), opts, nil, nil, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "0: 7FFF 0000"))

	opts.Palette.Custom = filepath.Join(t.TempDir(), "missing.pal")
	err := Report(log.NewTestLogger(t), opts, nil, nil, &buf)
	assert.ErrorContains(t, err, "reading custom palette file")
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "smw.smc")
	assert.NoError(t, os.WriteFile(input, romtest.New(), 0600))

	opts := options.Program{
		Command:    options.CommandInfo,
		Parameters: options.Parameters{Input: input, Output: GenerateOutputFilename(input, options.CommandInfo)},
		Flags:      options.Flags{Workers: 2},
	}

	assert.NoError(t, ProcessFile(context.Background(), log.NewTestLogger(t), opts))

	report, err := os.ReadFile(filepath.Join(dir, "smw.info.txt"))
	assert.NoError(t, err)
	assert.Contains(t, string(report), "Map mode:      LoROM")

	opts.Input = filepath.Join(dir, "missing.smc")
	err = ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "loading ROM")

	assert.NoError(t, os.WriteFile(input, make([]byte, 100), 0600))
	opts.Input = input
	err = ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "Invalid ROM size: 100")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.smc", "b.smc", "c.sfc"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}

	files, err := GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.smc")}})
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = GetFilesToProcess(&options.Program{Parameters: options.Parameters{Input: "smw.smc"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"smw.smc"}, files)

	_, err = GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: "["}})
	assert.ErrorContains(t, err, "globbing batch pattern")
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "roms/smw.levels.txt", GenerateOutputFilename("roms/smw.smc", options.CommandLevels))
	assert.Equal(t, "smw.info.txt", GenerateOutputFilename("smw", options.CommandInfo))
}
