// Package crc64nvme computes the CRC-64/NVME checksum used to guard an
// encoded splinter's footer against corruption. No third-party Go module
// in the reference corpus implements this reflected polynomial, so it is
// built directly on the standard library's hash/crc64 table machinery,
// the same way the teacher builds its bitfield helpers on math/bits.
package crc64nvme

import "hash/crc64"

// Poly is the reflected CRC-64/NVME polynomial, matching the
// crc64fast_nvme crate used by the format this codec is compatible with.
const Poly = 0xAD93D23594C935A9

var table = crc64.MakeTable(Poly)

// Digest accumulates a CRC-64/NVME checksum over one or more Write calls.
type Digest struct {
	crc uint64
}

// New returns a Digest ready to accumulate bytes.
func New() *Digest {
	return &Digest{}
}

// Write folds p into the running checksum. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.crc = crc64.Update(d.crc, table, p)
	return len(p), nil
}

// Sum64 returns the checksum of all bytes written so far.
func (d *Digest) Sum64() uint64 {
	return d.crc
}

// Checksum computes the CRC-64/NVME checksum of data in one call.
func Checksum(data []byte) uint64 {
	return crc64.Checksum(data, table)
}
