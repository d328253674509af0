// Package verification verifies the integrity of a decoded ROM.
package verification

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/smwrom/internal/header"
	"github.com/retroenv/smwrom/internal/palette"
	"github.com/retroenv/smwrom/internal/rom"
)

// Errors returned by the verification.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrComplementMismatch = errors.New("checksum complement mismatch")
)

// VerifyRom verifies the checksum of the ROM image and the palette layouts
// of the decoded ROM. The image has to be passed without copier header.
func VerifyRom(logger *log.Logger, data []byte, r *rom.Rom) error {
	if err := VerifyChecksum(logger, data, r.InternalHeader); err != nil {
		return fmt.Errorf("verifying checksum: %w", err)
	}

	if err := palette.CheckLayout(r.GlobalPalette.Clone()); err != nil {
		return fmt.Errorf("verifying global palette layout: %w", err)
	}
	for i, lp := range r.LevelPalettes {
		if err := palette.CheckLayout(lp); err != nil {
			return fmt.Errorf("verifying palette layout of level %#x: %w", i, err)
		}
	}
	return nil
}

// VerifyChecksum calculates the checksum of the ROM image and compares it to
// the checksum stored in the internal header.
func VerifyChecksum(logger *log.Logger, data []byte, hdr *header.InternalHeader) error {
	if hdr.Checksum^hdr.Complement != 0xFFFF {
		return fmt.Errorf("%w: checksum 0x%04X, complement 0x%04X", ErrComplementMismatch, hdr.Checksum, hdr.Complement)
	}

	expectedSize := int(hdr.RomSizeInKB()) * 1024
	if len(data) != expectedSize {
		logger.Warn("ROM size does not match the header",
			log.Int("size", len(data)),
			log.Int("expected", expectedSize))
	}

	checksum := Checksum(data)
	if checksum != hdr.Checksum {
		logger.Debug("Checksum mismatch",
			log.Hex("expected", hdr.Checksum),
			log.Hex("got", checksum))
		return fmt.Errorf("%w: expected 0x%04X but got 0x%04X", ErrChecksumMismatch, hdr.Checksum, checksum)
	}
	return nil
}

// Checksum calculates the 16 bit sum of all bytes of the ROM image. An image
// whose size is not a power of two has its upper part mirrored until it
// fills the next power of two, the way the console maps it.
func Checksum(data []byte) uint16 {
	return uint16(mirroredSum(data))
}

func mirroredSum(data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}

	base := 1 << (bits.Len(uint(len(data))) - 1)
	if base == len(data) {
		return sum(data)
	}

	rest := data[base:]
	restSize := 1 << bits.Len(uint(len(rest)-1))
	return sum(data[:base]) + mirroredSum(rest)*uint32(base/restSize)
}

func sum(data []byte) uint32 {
	var s uint32
	for _, b := range data {
		s += uint32(b)
	}
	return s
}
