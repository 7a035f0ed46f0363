package splinter

import (
	"errors"
	"fmt"

	"github.com/TomTonic/splinter/internal/crc64nvme"
)

// footerSize is the width of the trailing Footer: an 8-byte
// little-endian CRC-64/NVMe checksum plus a 4-byte magic trailer.
const footerSize = 8 + 4

// magic is the last four bytes of a correctly encoded Splinter.
var magic = [4]byte{0x59, 0x11, 0xA7, 0xE2}

// legacyMagic is the leading magic of an older, incompatible wire
// format. Decode and DecodeSplinterRef reject a buffer that starts with
// it explicitly with ErrLegacyFormat
// rather than letting it fail a generic checksum or tag check, so
// callers upgrading old data get an actionable error.
var legacyMagic = [4]byte{0xDA, 0xAE, 0x12, 0xDF}

// Decode error taxonomy: sentinel error values, matched with errors.Is.
// There is no single error type with a kind field; payload errors from
// the partition package (ErrTruncated, ErrBadTag) are returned as they
// are. Each distinguishes a different way an input buffer fails to be a
// valid encoded Splinter, so callers can decide whether to retry,
// discard, or attempt a migration.
var (
	// ErrTooShort is returned when a buffer is shorter than the 12-byte
	// Footer itself.
	ErrTooShort = errors.New("splinter: buffer shorter than minimum encoding")
	// ErrBadMagic is returned when the trailing 4 bytes do not match the
	// current format's magic trailer.
	ErrBadMagic = errors.New("splinter: bad magic trailer")
	// ErrLegacyFormat is returned when the buffer carries the magic of a
	// previous, incompatible wire format.
	ErrLegacyFormat = errors.New("splinter: legacy format is not supported")
	// ErrChecksum is returned when the CRC-64/NVMe checksum does not match
	// the encoded payload, indicating corruption or truncation.
	ErrChecksum = errors.New("splinter: checksum mismatch")
)

func appendFooter(buf []byte) []byte {
	sum := crc64nvme.Checksum(buf)
	var tmp [8]byte
	for i := 0; i < 8; i++ {
		tmp[i] = byte(sum >> (uint(i) * 8))
	}
	buf = append(buf, tmp[:]...)
	return append(buf, magic[:]...)
}

// validateFooter checks data's trailing Footer against its payload and
// returns the payload slice (data with the Footer stripped) on success.
//
// Legacy detection is a prefix check: the old format led with its magic
// and zero-padded the rest, so a buffer is rejected as legacy if it
// merely starts with legacyMagic, regardless of what follows.
func validateFooter(data []byte) ([]byte, error) {
	if len(data) >= 4 {
		head := data[:4]
		if head[0] == legacyMagic[0] && head[1] == legacyMagic[1] && head[2] == legacyMagic[2] && head[3] == legacyMagic[3] {
			return nil, ErrLegacyFormat
		}
	}
	if len(data) < footerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}
	payload := data[:len(data)-footerSize]
	footer := data[len(data)-footerSize:]

	gotMagic := footer[8:12]
	if gotMagic[0] != magic[0] || gotMagic[1] != magic[1] || gotMagic[2] != magic[2] || gotMagic[3] != magic[3] {
		return nil, ErrBadMagic
	}

	var wantSum uint64
	for i := 0; i < 8; i++ {
		wantSum |= uint64(footer[i]) << (uint(i) * 8)
	}
	if gotSum := crc64nvme.Checksum(payload); gotSum != wantSum {
		return nil, fmt.Errorf("%w: got %#x want %#x", ErrChecksum, gotSum, wantSum)
	}
	return payload, nil
}
