package snes

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is returned when a read goes past the end of the data.
var ErrUnexpectedEnd = errors.New("unexpected end of ROM data")

// ErrInvalidSlice is returned for a region that does not fit its address space.
var ErrInvalidSlice = errors.New("region exceeds the address space")

// Reader is a cursor over ROM data that checks all reads against the data bounds.
type Reader struct {
	data   []byte
	offset int
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// NewReaderAt returns a reader positioned at the given PC address.
func NewReaderAt(data []byte, pc PcAddr) (*Reader, error) {
	r := NewReader(data)
	if err := r.Seek(pc); err != nil {
		return nil, err
	}
	return r, nil
}

// Offset returns the current read position.
func (r *Reader) Offset() PcAddr {
	return PcAddr(r.offset)
}

// Remaining returns the number of bytes left to read.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Seek moves the read position to the given PC address.
func (r *Reader) Seek(pc PcAddr) error {
	if uint64(pc) > uint64(len(r.data)) {
		return fmt.Errorf("%w: seeking to %s, size %d", ErrUnexpectedEnd, pc, len(r.data))
	}
	r.offset = int(pc)
	return nil
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.offset += n
	return nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.data[r.offset]
	r.offset++
	return b, nil
}

// ReadU16LE reads a little endian 16 bit value.
func (r *Reader) ReadU16LE() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.offset:])
	r.offset += 2
	return v, nil
}

// ReadU24LE reads a little endian 24 bit value, the format of long pointers.
func (r *Reader) ReadU24LE() (uint32, error) {
	if err := r.require(3); err != nil {
		return 0, err
	}
	b := r.data[r.offset : r.offset+3]
	r.offset += 3
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
}

// ReadBytes reads n bytes. The returned slice shares the underlying data.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := r.data[r.offset : r.offset+n : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *Reader) require(n int) error {
	if n < 0 || n > r.Remaining() {
		return fmt.Errorf("%w: reading %d bytes at %s, %d remaining",
			ErrUnexpectedEnd, n, PcAddr(r.offset), r.Remaining())
	}
	return nil
}

// ReadPcSlice returns the bytes of a PC region. Unbounded regions reach to the
// end of the data.
func ReadPcSlice(data []byte, s PcSlice) ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlice, s)
	}
	r, err := NewReaderAt(data, s.Begin)
	if err != nil {
		return nil, err
	}
	if s.IsInfinite() {
		return r.ReadBytes(r.Remaining())
	}
	return r.ReadBytes(s.Size)
}

// ReadSnesSlice converts the start of a SNES region to a PC address using the
// given map mode and returns the bytes of the region.
func ReadSnesSlice(data []byte, mode MapMode, s SnesSlice) ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlice, s)
	}
	pc, err := SnesToPc(s.Begin, mode)
	if err != nil {
		return nil, err
	}
	return ReadPcSlice(data, NewPcSlice(pc, s.Size))
}
