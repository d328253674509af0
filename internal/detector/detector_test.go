package detector

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/rom"
)

func TestTrimCopierHeader(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name     string
		size     int
		wantSize int
		wantErr  int
	}{
		{name: "empty", size: 0, wantSize: 0},
		{name: "no copier header", size: 4 * 1024, wantSize: 4 * 1024},
		{name: "copier header", size: 4*1024 + 512, wantSize: 4 * 1024},
		{name: "only copier header", size: 512, wantSize: 0},
		{name: "odd size", size: 4*1024 + 1, wantErr: 1},
		{name: "near copier header", size: 4*1024 + 513, wantErr: 513},
		{name: "almost 1 KiB", size: 1023, wantErr: 1023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.size)
			if tt.size >= CopierHeaderSize {
				data[CopierHeaderSize-1] = 0xAA
			}

			trimmed, err := d.TrimCopierHeader(data)
			if tt.wantErr != 0 {
				var parseErr *rom.ParseError
				assert.True(t, errors.As(err, &parseErr))
				assert.Equal(t, rom.KindBadSize, parseErr.Kind)
				assert.Equal(t, tt.wantErr, parseErr.Size)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, trimmed, tt.wantSize)
			if tt.size != tt.wantSize {
				// the byte in front of the image belongs to the copier header
				assert.Equal(t, tt.size-CopierHeaderSize, len(trimmed))
				if len(trimmed) > 0 {
					assert.Equal(t, byte(0), trimmed[0])
				}
			}
		})
	}
}
