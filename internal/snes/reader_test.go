package snes

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReader(t *testing.T) {
	r := NewReader([]byte{0x01, 0x34, 0x12, 0x56, 0x34, 0x12, 0xAA, 0xBB})

	b, err := r.ReadU8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)

	w, err := r.ReadU16LE()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	l, err := r.ReadU24LE()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x123456), l)
	assert.Equal(t, PcAddr(6), r.Offset())
	assert.Equal(t, 2, r.Remaining())

	data, err := r.ReadBytes(2)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(data))
	assert.Equal(t, byte(0xBB), data[1])
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderBounds(t *testing.T) {
	r := NewReader([]byte{0x01})

	_, err := r.ReadU16LE()
	assert.True(t, errors.Is(err, ErrUnexpectedEnd))
	// a failed read does not advance
	assert.Equal(t, PcAddr(0), r.Offset())

	_, err = r.ReadBytes(-1)
	assert.True(t, errors.Is(err, ErrUnexpectedEnd))

	assert.NoError(t, r.Skip(1))
	_, err = r.ReadU8()
	assert.True(t, errors.Is(err, ErrUnexpectedEnd))

	assert.NoError(t, r.Seek(1))
	assert.True(t, errors.Is(r.Seek(2), ErrUnexpectedEnd))

	_, err = NewReaderAt([]byte{0x00}, 5)
	assert.Error(t, err)
}

func TestReadSlices(t *testing.T) {
	data := make([]byte, 0x8000)
	data[0x30A0] = 0x1F
	data[0x30A1] = 0x7C

	b, err := ReadSnesSlice(data, SlowLoROM, NewSnesSlice(0x00B0A0, 2))
	assert.NoError(t, err)
	assert.Equal(t, byte(0x1F), b[0])
	assert.Equal(t, byte(0x7C), b[1])

	b, err = ReadPcSlice(data, NewPcSlice(0x7FF0, 0).Infinite())
	assert.NoError(t, err)
	assert.Equal(t, 0x10, len(b))

	_, err = ReadPcSlice(data, NewPcSlice(0x7FF0, 0x11))
	assert.True(t, errors.Is(err, ErrUnexpectedEnd))

	_, err = ReadSnesSlice(data, SlowLoROM, NewSnesSlice(0x000000, 2))
	var convErr *AddressConversionError
	assert.True(t, errors.As(err, &convErr))
}

func TestReadSlicesInvalid(t *testing.T) {
	data := make([]byte, 0x400020)

	// the region wraps past the end of the SNES address space
	_, err := ReadSnesSlice(data, FastHiROM, NewSnesSlice(0xFFFFF0, 0x20))
	assert.True(t, errors.Is(err, ErrInvalidSlice))
	assert.ErrorContains(t, err, "begin: FFFFF0, size: 32")

	b, err := ReadSnesSlice(data, FastHiROM, NewSnesSlice(0xFFFFF0, 0x10))
	assert.NoError(t, err)
	assert.Len(t, b, 0x10)

	_, err = ReadPcSlice(data, NewPcSlice(0x10, -1))
	assert.True(t, errors.Is(err, ErrInvalidSlice))
}
