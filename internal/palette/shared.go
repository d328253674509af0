package palette

import "sync"

// Shared is a reference counted handle to a global palette. The ROM holds the
// first reference and every level palette holds one more. Writes are only
// applied while a single reference exists so that levels sharing the palette
// never observe each other's edits.
type Shared struct {
	mu      sync.RWMutex
	palette *GlobalLevelPalette
	refs    int
}

// NewShared returns a handle holding the only reference to the palette.
func NewShared(p *GlobalLevelPalette) *Shared {
	return &Shared{
		palette: p,
		refs:    1,
	}
}

// Share adds a reference and returns the handle.
func (s *Shared) Share() *Shared {
	s.mu.Lock()
	s.refs++
	s.mu.Unlock()
	return s
}

// Release drops a reference.
func (s *Shared) Release() {
	s.mu.Lock()
	if s.refs > 0 {
		s.refs--
	}
	s.mu.Unlock()
}

// Refs returns the number of references.
func (s *Shared) Refs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refs
}

// Exclusive returns whether the handle is held by a single owner.
func (s *Shared) Exclusive() bool {
	return s.Refs() == 1
}

// Clone returns a copy of the palette that can be edited independently.
func (s *Shared) Clone() *GlobalLevelPalette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := *s.palette
	return &p
}

// ColorAt returns the color of a cell.
func (s *Shared) ColorAt(row, col int) (Color, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette.ColorAt(row, col)
}

// SetColorAt sets the color of a cell if the handle is held by a single owner
// and returns whether the write was applied.
func (s *Shared) SetColorAt(row, col int, c Color) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs != 1 {
		return false
	}
	s.palette.SetColorAt(row, col, c)
	return true
}

// IsAnimatedAt returns whether the cell shows the animated color.
func (s *Shared) IsAnimatedAt(row, col int) bool {
	return s.palette.IsAnimatedAt(row, col)
}

// Owner returns the name of the global table that owns the cell.
func (s *Shared) Owner(row, col int) (string, bool) {
	return s.palette.Owner(row, col)
}
