package gfx

import (
	"fmt"
)

// Decompressor expands compressed graphics data.
type Decompressor interface {
	Decompress(src []byte) ([]byte, error)
}

// DecompressionError is returned when compressed data is malformed.
type DecompressionError struct {
	Reason string
}

func (e *DecompressionError) Error() string {
	return "Decompressing data failed:" + e.Reason
}

// LZ2 commands.
const (
	lz2DirectCopy = iota
	lz2ByteFill
	lz2WordFill
	lz2IncreasingFill
	lz2Repeat

	lz2LongHeader = 7
	lz2End        = 0xFF

	// lz2MaxOutput bounds the output of a single stream, the console can
	// address no more than 64 KiB of decompression buffer.
	lz2MaxOutput = 0x10000
)

// LZ2 is the default codec of the game's graphics files.
//
// Every chunk starts with a header byte CCCLLLLL holding a command and a
// length minus one. The long header form 111CCCLL LLLLLLLL extends the length
// to 10 bits. A header byte of 0xFF ends the stream.
type LZ2 struct{}

// Decompress expands a compressed stream.
func (LZ2) Decompress(src []byte) ([]byte, error) {
	d := lz2Decoder{src: src}
	return d.run()
}

type lz2Decoder struct {
	src []byte
	pos int
	out []byte
}

func (d *lz2Decoder) run() ([]byte, error) {
	for {
		header, err := d.next()
		if err != nil {
			return nil, err
		}
		if header == lz2End {
			return d.out, nil
		}

		command := int(header >> 5)
		length := int(header&0x1F) + 1
		if command == lz2LongHeader {
			low, err := d.next()
			if err != nil {
				return nil, err
			}
			command = int(header>>2) & 0x07
			length = (int(header&0x03)<<8 | int(low)) + 1
		}

		if len(d.out)+length > lz2MaxOutput {
			return nil, &DecompressionError{Reason: fmt.Sprintf(" output exceeds %d bytes", lz2MaxOutput)}
		}
		if err := d.execute(command, length); err != nil {
			return nil, err
		}
	}
}

func (d *lz2Decoder) execute(command, length int) error {
	switch command {
	case lz2DirectCopy:
		if d.pos+length > len(d.src) {
			return d.truncated()
		}
		d.out = append(d.out, d.src[d.pos:d.pos+length]...)
		d.pos += length

	case lz2ByteFill:
		b, err := d.next()
		if err != nil {
			return err
		}
		for range length {
			d.out = append(d.out, b)
		}

	case lz2WordFill:
		lo, err := d.next()
		if err != nil {
			return err
		}
		hi, err := d.next()
		if err != nil {
			return err
		}
		for i := range length {
			if i%2 == 0 {
				d.out = append(d.out, lo)
			} else {
				d.out = append(d.out, hi)
			}
		}

	case lz2IncreasingFill:
		b, err := d.next()
		if err != nil {
			return err
		}
		for i := range length {
			d.out = append(d.out, b+byte(i))
		}

	case lz2Repeat:
		hi, err := d.next()
		if err != nil {
			return err
		}
		lo, err := d.next()
		if err != nil {
			return err
		}
		offset := int(hi)<<8 | int(lo)
		if offset >= len(d.out) {
			return &DecompressionError{Reason: fmt.Sprintf(" repeat offset 0x%04X outside of output of %d bytes", offset, len(d.out))}
		}
		// the source may overlap the bytes being written
		for i := range length {
			d.out = append(d.out, d.out[offset+i])
		}

	default:
		return &DecompressionError{Reason: fmt.Sprintf(" unknown command %d at offset %d", command, d.pos)}
	}
	return nil
}

func (d *lz2Decoder) next() (byte, error) {
	if d.pos >= len(d.src) {
		return 0, d.truncated()
	}
	b := d.src[d.pos]
	d.pos++
	return b, nil
}

func (d *lz2Decoder) truncated() error {
	return &DecompressionError{Reason: fmt.Sprintf(" unexpected end of data at offset %d", d.pos)}
}
