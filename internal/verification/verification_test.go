package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/gfx"
	"github.com/retroenv/smwrom/internal/header"
	"github.com/retroenv/smwrom/internal/pipeline"
	"github.com/retroenv/smwrom/internal/romtest"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{name: "empty", data: nil, want: 0},
		{name: "power of two", data: []byte{1, 2, 3, 4}, want: 10},
		{name: "mirrored remainder", data: []byte{1, 2, 3}, want: 1 + 2 + 3 + 3},
		{name: "nested remainder", data: []byte{1, 1, 1, 1, 2, 3, 4}, want: 4 + 2 + 3 + 4 + 4},
		{name: "overflow wraps", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}, want: 0x3FC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.data))
		})
	}

	big := make([]byte, 0x10000)
	for i := range big {
		big[i] = 0xFF
	}
	assert.Equal(t, uint16(0xFF*0x10000&0xFFFF), Checksum(big))
}

func TestVerifyChecksum(t *testing.T) {
	logger := log.NewTestLogger(t)
	data := romtest.New()
	hdr, err := header.Parse(data)
	assert.NoError(t, err)

	assert.NoError(t, VerifyChecksum(logger, data, hdr))

	data[0x100]++
	err = VerifyChecksum(logger, data, hdr)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))

	broken := *hdr
	broken.Complement = broken.Checksum
	err = VerifyChecksum(logger, data, &broken)
	assert.True(t, errors.Is(err, ErrComplementMismatch))
}

func TestVerifyRom(t *testing.T) {
	logger := log.NewTestLogger(t)
	data := romtest.New()

	p := pipeline.New(logger, pipeline.Options{Manifest: gfx.Manifest{}})
	r, err := p.Execute(context.Background(), data)
	assert.NoError(t, err)
	assert.NoError(t, VerifyRom(logger, data, r))

	r.LevelPalettes[1].Global = nil
	err = VerifyRom(logger, data, r)
	assert.ErrorContains(t, err, "level 0x1")
}
