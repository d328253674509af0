package snes

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMapModeFromByte(t *testing.T) {
	for _, mode := range MapModes {
		got, err := MapModeFromByte(byte(mode))
		assert.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	for _, b := range []byte{0x00, 0x23, 0x25, 0x35, 0xFF} {
		_, err := MapModeFromByte(b)
		assert.True(t, errors.Is(err, ErrInvalidMapMode))
	}
}

func TestMapModeFlags(t *testing.T) {
	tests := []struct {
		mode    MapMode
		name    string
		fast    bool
		hirom   bool
		exlorom bool
		exhirom bool
	}{
		{mode: SlowLoROM, name: "LoROM"},
		{mode: SlowHiROM, name: "HiROM", hirom: true},
		{mode: SlowExLoROM, name: "ExLoROM", exlorom: true},
		{mode: SlowExHiROM, name: "ExHiROM", exhirom: true},
		{mode: FastLoROM, name: "Fast LoROM", fast: true},
		{mode: FastHiROM, name: "Fast HiROM", fast: true, hirom: true},
		{mode: FastExLoROM, name: "Fast ExLoROM", fast: true, exlorom: true},
		{mode: FastExHiROM, name: "Fast ExHiROM", fast: true, exhirom: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.mode.String())
			assert.Equal(t, tt.fast, tt.mode.IsFast())
			assert.Equal(t, !tt.fast, tt.mode.IsSlow())
			assert.Equal(t, tt.hirom, tt.mode.IsHiROM())
			assert.Equal(t, !tt.hirom, tt.mode.IsLoROM())
			assert.Equal(t, tt.exlorom, tt.mode.IsExLoROM())
			assert.Equal(t, tt.exhirom, tt.mode.IsExHiROM())
		})
	}
}
