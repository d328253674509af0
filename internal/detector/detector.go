// Package detector handles detection of the optional copier header.
package detector

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/rom"
)

const (
	// CopierHeaderSize is the size of the header that backup units prepend to the image.
	CopierHeaderSize = 0x200

	sizeGranularity = 0x400
)

// Detector handles detection and removal of the copier header.
type Detector struct {
	logger *log.Logger
}

// New creates a new copier header detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// TrimCopierHeader returns the ROM image without a copier header. A ROM image
// is always a multiple of 1 KiB, a remainder of 512 bytes marks a copier header.
func (d *Detector) TrimCopierHeader(data []byte) ([]byte, error) {
	trimmed, err := TrimCopierHeader(data)
	if err != nil {
		return nil, err
	}
	if len(trimmed) != len(data) {
		d.logger.Debug("Copier header found", log.Int("size", CopierHeaderSize))
	}
	return trimmed, nil
}

// TrimCopierHeader returns the ROM image without a copier header.
func TrimCopierHeader(data []byte) ([]byte, error) {
	switch remainder := len(data) % sizeGranularity; remainder {
	case 0:
		return data, nil
	case CopierHeaderSize:
		return data[CopierHeaderSize:], nil
	default:
		return nil, &rom.ParseError{Kind: rom.KindBadSize, Size: remainder}
	}
}
