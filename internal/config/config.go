// Package config handles application configuration and setup
package config

import (
	"runtime"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/options"
	"github.com/retroenv/smwrom/internal/pipeline"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ResolveWorkers returns the number of decoding workers to use. A value
// below 1 selects one worker per CPU.
func ResolveWorkers(workers int) int {
	if workers < 1 {
		return runtime.NumCPU()
	}
	return workers
}

// PipelineOptions creates the decoding pipeline options for the program options.
func PipelineOptions(opts options.Program) pipeline.Options {
	return pipeline.Options{
		Workers: ResolveWorkers(opts.Workers),
	}
}
