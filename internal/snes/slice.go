package snes

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Address is the set of address kinds a Slice can be based on.
type Address interface {
	PcAddr | SnesAddr
}

// Slice describes a ROM region by its start address and size in bytes.
// A size of 0 marks the region as unbounded, reaching to the end of the data.
type Slice[A Address] struct {
	Begin A
	Size  int
}

// PcSlice is a region in the PC address space.
type PcSlice = Slice[PcAddr]

// SnesSlice is a region in the SNES address space.
type SnesSlice = Slice[SnesAddr]

// NewPcSlice returns a new PC address space region.
func NewPcSlice(begin PcAddr, size int) PcSlice {
	return PcSlice{Begin: begin, Size: size}
}

// NewSnesSlice returns a new SNES address space region.
func NewSnesSlice(begin SnesAddr, size int) SnesSlice {
	return SnesSlice{Begin: begin, Size: size}
}

// End returns the first address after the region. It is meaningless for
// unbounded regions.
func (s Slice[A]) End() A {
	return move(s.Begin, s.Size)
}

// Valid returns whether the end of a bounded region stays inside the address space.
func (s Slice[A]) Valid() bool {
	if s.Size < 0 {
		return false
	}
	if s.IsInfinite() {
		return true
	}

	limit := uint64(math.MaxUint32) + 1
	if _, ok := any(s.Begin).(SnesAddr); ok {
		limit = uint64(MaxSnesAddr) + 1
	}
	return uint64(s.Begin)+uint64(s.Size) <= limit
}

// ShiftForward moves the region forward by offset bytes.
func (s Slice[A]) ShiftForward(offset int) Slice[A] {
	s.Begin = move(s.Begin, offset)
	return s
}

// ShiftBackward moves the region backward by offset bytes.
func (s Slice[A]) ShiftBackward(offset int) Slice[A] {
	s.Begin = move(s.Begin, -offset)
	return s
}

// SkipForward moves the region forward by n times its size, used to step
// through arrays of fixed size records.
func (s Slice[A]) SkipForward(n int) Slice[A] {
	s.Begin = move(s.Begin, n*s.Size)
	return s
}

// SkipBackward moves the region backward by n times its size.
func (s Slice[A]) SkipBackward(n int) Slice[A] {
	s.Begin = move(s.Begin, -n*s.Size)
	return s
}

// MoveTo returns the region with a new start address.
func (s Slice[A]) MoveTo(addr A) Slice[A] {
	s.Begin = addr
	return s
}

// Expand grows the region by diff bytes.
func (s Slice[A]) Expand(diff int) Slice[A] {
	s.Size += diff
	return s
}

// Shrink reduces the region by diff bytes.
func (s Slice[A]) Shrink(diff int) Slice[A] {
	s.Size -= diff
	return s
}

// Resize returns the region with a new size.
func (s Slice[A]) Resize(size int) Slice[A] {
	s.Size = size
	return s
}

// Infinite marks the region as unbounded.
func (s Slice[A]) Infinite() Slice[A] {
	s.Size = 0
	return s
}

// IsInfinite returns whether the region is unbounded.
func (s Slice[A]) IsInfinite() bool {
	return s.Size == 0
}

func (s Slice[A]) String() string {
	return fmt.Sprintf("RomSlice { begin: %X, size: %d }", uint32(s.Begin), s.Size)
}

func move[T constraints.Unsigned](v T, n int) T {
	if n < 0 {
		return v - T(-n)
	}
	return v + T(n)
}
