package config

import (
	"runtime"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/smwrom/internal/options"
)

func TestResolveWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "default", workers: 0, want: runtime.NumCPU()},
		{name: "negative", workers: -3, want: runtime.NumCPU()},
		{name: "single", workers: 1, want: 1},
		{name: "fixed", workers: 8, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWorkers(tt.workers))
		})
	}
}

func TestPipelineOptions(t *testing.T) {
	opts := options.Program{Flags: options.Flags{Workers: 3}}
	assert.Equal(t, 3, PipelineOptions(opts).Workers)
	assert.True(t, PipelineOptions(opts).Manifest == nil)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
