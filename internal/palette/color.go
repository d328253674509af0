package palette

import (
	"fmt"

	"github.com/retroenv/smwrom/internal/snes"
)

// Color is a 15 bit color in the console's BGR555 format: 0bbbbbgggggrrrrr.
type Color uint16

const colorSize = 2

// R returns the 5 bit red component.
func (c Color) R() uint8 { return uint8(c & 0x1F) }

// G returns the 5 bit green component.
func (c Color) G() uint8 { return uint8((c >> 5) & 0x1F) }

// B returns the 5 bit blue component.
func (c Color) B() uint8 { return uint8((c >> 10) & 0x1F) }

// RGBA implements the image/color.Color interface. The components are expanded
// to 8 bits by repeating the high bits in the low bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = expand(c.R())
	g = expand(c.G())
	b = expand(c.B())
	return r, g, b, 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("#%04X", uint16(c))
}

func expand(v uint8) uint32 {
	v8 := uint32(v<<3 | v>>2)
	return v8<<8 | v8
}

func readColors(data []byte, mode snes.MapMode, addr snes.SnesAddr, count int) ([]Color, error) {
	b, err := snes.ReadSnesSlice(data, mode, snes.NewSnesSlice(addr, count*colorSize))
	if err != nil {
		return nil, err
	}
	return decodeColors(snes.NewReader(b), count)
}

func decodeColors(r *snes.Reader, count int) ([]Color, error) {
	colors := make([]Color, count)
	for i := range colors {
		v, err := r.ReadU16LE()
		if err != nil {
			return nil, err
		}
		colors[i] = Color(v)
	}
	return colors, nil
}
