package partition

import (
	"encoding/binary"

	"github.com/TomTonic/splinter/u24"
)

// Encode appends the wire encoding of p to buf and returns the result.
// Encoding is content-first, tag-last: every container writes its
// payload, then a single Kind tag byte, so a decoder can work backward
// from the end of a slice without first scanning forward through it.
//
// A Partition that IsEmpty always encodes as the zero-length Empty tag,
// regardless of its in-memory Kind — Empty has no distinct in-memory
// representation, only a distinct wire tag.
func Encode(buf []byte, p *Partition) []byte {
	if p.IsEmpty() {
		return append(buf, byte(KindEmpty))
	}
	switch p.kind {
	case KindFull:
		return append(buf, byte(KindFull))
	case KindBitmap:
		return encodeBitmap(buf, p.bitmap)
	case KindVec:
		return encodeVec(buf, p.level, p.vec)
	case KindRun:
		return encodeRun(buf, p.level, p.run)
	case KindTree:
		return encodeTree(buf, p.tree)
	default:
		panic("partition: unknown kind in Encode")
	}
}

// EncodedSize returns len(Encode(nil, p)) without materializing it.
func EncodedSize(p *Partition) int {
	return encodedSizeOf(p)
}

func encodedSizeOf(p *Partition) int {
	if p.IsEmpty() {
		return 1
	}
	switch p.kind {
	case KindFull:
		return 1
	case KindBitmap:
		return p.bitmap.encodedSize() + 1
	case KindVec:
		return p.vec.encodedSize(p.level) + 1
	case KindRun:
		return p.run.encodedSize(p.level) + 1
	case KindTree:
		return p.tree.encodedSize() + 1
	default:
		panic("partition: unknown kind in EncodedSize")
	}
}

func putUint(buf []byte, wireSize int, v uint32) []byte {
	switch wireSize {
	case 1:
		return append(buf, byte(v))
	case 2:
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(v))
		return append(buf, tmp[:]...)
	case 3:
		var tmp [3]byte
		u24.FromUint32(v).PutBE(tmp[:])
		return append(buf, tmp[:]...)
	case 4:
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], v)
		return append(buf, tmp[:]...)
	default:
		panic("partition: invalid wire size")
	}
}

func getUint(src []byte, wireSize int) uint32 {
	switch wireSize {
	case 1:
		return uint32(src[0])
	case 2:
		return uint32(binary.BigEndian.Uint16(src))
	case 3:
		return u24.FromBE(src).Uint32()
	case 4:
		return binary.BigEndian.Uint32(src)
	default:
		panic("partition: invalid wire size")
	}
}

func encodeBitmap(buf []byte, b *bitmapPartition) []byte {
	nbytes := encodedSizeForLevel(b.level)
	start := len(buf)
	buf = append(buf, make([]byte, nbytes)...)
	payload := buf[start:]
	for i, w := range b.words {
		for bi := 0; bi < 8; bi++ {
			byteIdx := i*8 + bi
			if byteIdx >= nbytes {
				break
			}
			payload[byteIdx] = byte(w >> (uint(bi) * 8))
		}
	}
	return append(buf, byte(KindBitmap))
}

func encodeVec(buf []byte, l Level, v *vecPartition) []byte {
	ws := l.WireSize()
	for _, val := range v.values {
		buf = putUint(buf, ws, val)
	}
	return append(buf, byte(KindVec))
}

func encodeRun(buf []byte, l Level, r *runPartition) []byte {
	ws := l.WireSize()
	for _, run := range r.runs {
		buf = putUint(buf, ws, run.start)
		buf = putUint(buf, ws, uint32(run.len()-1))
	}
	return append(buf, byte(KindRun))
}

func encodeTree(buf []byte, t *treePartition) []byte {
	childrenStart := len(buf)
	childEnds := make([]int, len(t.children))
	for i, c := range t.children {
		buf = Encode(buf, c)
		childEnds[i] = len(buf) - childrenStart
	}
	childrenBlobLen := len(buf) - childrenStart
	ws := t.level.WireSize()

	// cumulative cardinalities, each stored as cumsum-1
	cum := 0
	for _, c := range t.children {
		cum += c.Cardinality()
		buf = putUint(buf, ws, uint32(cum-1))
	}

	// offsets: distance from end of children blob to end of this child
	for _, end := range childEnds {
		buf = putUint(buf, ws, uint32(childrenBlobLen-end))
	}

	buf = encodeSegmentPresence(buf, t.segments)

	buf = append(buf, byte(len(t.children)-1))
	return append(buf, byte(KindTree))
}

// encodeSegmentPresence writes the Block-level presence sub-map used by
// a Tree container to record which of its 256 possible segments are in
// use. It mirrors the reference implementation's choice of Full (every
// segment used), Vec (a sorted byte list, when that is no larger than
// the fixed 32-byte bitmap), or Bitmap — Tree is never chosen since
// Block, the level this sub-map lives at, disallows it.
func encodeSegmentPresence(buf []byte, segments []byte) []byte {
	n := len(segments)
	switch {
	case n == 256:
		return buf // Full: no payload
	case n <= 32:
		return append(buf, segments...)
	default:
		var p presenceBitmap
		for _, s := range segments {
			p.set(s)
		}
		for _, w := range p.words() {
			var tmp [8]byte
			for i := 0; i < 8; i++ {
				tmp[i] = byte(w >> (uint(i) * 8))
			}
			buf = append(buf, tmp[:]...)
		}
		return buf
	}
}
