// Package loader handles ROM file loading operations.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/pipeline"
	"github.com/retroenv/smwrom/internal/rom"
)

// Loader loads ROM files from disk or memory and decodes them.
type Loader struct {
	pipeline *pipeline.Pipeline
}

// New creates a new ROM loader.
func New(logger *log.Logger, opts pipeline.Options) *Loader {
	return &Loader{
		pipeline: pipeline.New(logger, opts),
	}
}

// Load reads and decodes a ROM file. I/O errors are wrapped with the file
// name, decoding errors are returned unchanged.
func (l *Loader) Load(ctx context.Context, path string) (*rom.Rom, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.LoadBytes(ctx, data)
}

// LoadBytes decodes a ROM image that is already in memory.
func (l *Loader) LoadBytes(ctx context.Context, data []byte) (*rom.Rom, error) {
	return l.pipeline.Execute(ctx, data)
}

// ReadFile reads the raw content of a ROM file.
func ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file %s: %w", path, err)
	}
	return data, nil
}
