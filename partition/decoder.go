package partition

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when a byte slice is too short to hold the
// container its trailing tag claims it to be.
var ErrTruncated = errors.New("partition: truncated encoding")

// ErrBadTag is returned when a trailing byte does not name one of the
// six defined storage classes.
var ErrBadTag = errors.New("partition: invalid partition kind tag")

// Decode parses data as a Partition at level l. data must hold exactly
// one encoded container with nothing trailing. Decoding walks the
// buffer from its end: the final byte is always the Kind tag, and every
// container's fixed-size trailer (if any) is read backward from there,
// so decode never needs to scan forward through variable-length payload
// it doesn't yet understand.
func Decode(data []byte, l Level) (*Partition, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrTruncated)
	}
	tag := Kind(data[len(data)-1])
	if !tag.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadTag, data[len(data)-1])
	}
	payload := data[:len(data)-1]
	switch tag {
	case KindEmpty:
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: Empty tag with non-empty payload", ErrTruncated)
		}
		return Empty(l), nil
	case KindFull:
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: Full tag with non-empty payload", ErrTruncated)
		}
		return Full(l), nil
	case KindBitmap:
		return decodeBitmap(payload, l)
	case KindVec:
		return decodeVec(payload, l)
	case KindRun:
		return decodeRun(payload, l)
	case KindTree:
		return decodeTree(payload, l)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadTag, tag)
	}
}

func decodeBitmap(payload []byte, l Level) (*Partition, error) {
	want := encodedSizeForLevel(l)
	if len(payload) != want {
		return nil, fmt.Errorf("%w: bitmap payload %d bytes, want %d", ErrTruncated, len(payload), want)
	}
	b := newBitmapPartition(l)
	for byteIdx, by := range payload {
		if by == 0 {
			continue
		}
		word, bitOff := byteIdx/8, (byteIdx%8)*8
		b.words[word] |= uint64(by) << uint(bitOff)
	}
	return &Partition{level: l, kind: KindBitmap, bitmap: b}, nil
}

func decodeVec(payload []byte, l Level) (*Partition, error) {
	ws := l.WireSize()
	if ws == 0 || len(payload)%ws != 0 {
		return nil, fmt.Errorf("%w: vec payload %d not a multiple of %d", ErrTruncated, len(payload), ws)
	}
	n := len(payload) / ws
	values := make([]uint32, n)
	for i := 0; i < n; i++ {
		values[i] = getUint(payload[i*ws:], ws)
	}
	return &Partition{level: l, kind: KindVec, vec: vecFromSorted(values)}, nil
}

func decodeRun(payload []byte, l Level) (*Partition, error) {
	ws := l.WireSize()
	pairWidth := 2 * ws
	if pairWidth == 0 || len(payload)%pairWidth != 0 {
		return nil, fmt.Errorf("%w: run payload %d not a multiple of %d", ErrTruncated, len(payload), pairWidth)
	}
	n := len(payload) / pairWidth
	runs := make([]runRange, n)
	for i := 0; i < n; i++ {
		off := i * pairWidth
		start := getUint(payload[off:], ws)
		lenMinus1 := getUint(payload[off+ws:], ws)
		runs[i] = runRange{start: start, end: start + lenMinus1}
	}
	return &Partition{level: l, kind: KindRun, run: runFromRanges(runs)}, nil
}

func decodeTree(payload []byte, l Level) (*Partition, error) {
	if !l.AllowTree() {
		return nil, fmt.Errorf("%w: Tree tag at terminal level %v", ErrBadTag, l)
	}
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: tree missing child count", ErrTruncated)
	}
	numChildren := int(payload[len(payload)-1]) + 1
	payload = payload[:len(payload)-1]

	presenceSize := segmentPresenceEncodedSize(numChildren)
	if len(payload) < presenceSize {
		return nil, fmt.Errorf("%w: tree missing presence map", ErrTruncated)
	}
	presence := payload[len(payload)-presenceSize:]
	payload = payload[:len(payload)-presenceSize]
	segments, err := decodeSegmentPresence(presence, numChildren)
	if err != nil {
		return nil, err
	}

	ws := l.WireSize()
	offsetsSize := numChildren * ws
	if len(payload) < offsetsSize {
		return nil, fmt.Errorf("%w: tree missing offsets", ErrTruncated)
	}
	offsets := payload[len(payload)-offsetsSize:]
	payload = payload[:len(payload)-offsetsSize]

	cardsSize := numChildren * ws
	if len(payload) < cardsSize {
		return nil, fmt.Errorf("%w: tree missing cardinalities", ErrTruncated)
	}
	payload = payload[:len(payload)-cardsSize] // cumulative cardinalities aren't needed to reconstruct values

	childrenBlob := payload
	childrenBlobLen := len(childrenBlob)

	children := make([]*Partition, numChildren)
	childLevel := l.Child()
	for i := 0; i < numChildren; i++ {
		dist := int(getUint(offsets[i*ws:], ws))
		childEnd := childrenBlobLen - dist
		childStart := 0
		if i > 0 {
			prevDist := int(getUint(offsets[(i-1)*ws:], ws))
			childStart = childrenBlobLen - prevDist
		}
		if childEnd < childStart || childEnd > childrenBlobLen {
			return nil, fmt.Errorf("%w: tree child offset out of range", ErrTruncated)
		}
		child, err := Decode(childrenBlob[childStart:childEnd], childLevel)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	return &Partition{level: l, kind: KindTree, tree: &treePartition{level: l, segments: segments, children: children}}, nil
}

func decodeSegmentPresence(presence []byte, numChildren int) ([]byte, error) {
	switch {
	case numChildren == 256:
		segments := make([]byte, 256)
		for i := range segments {
			segments[i] = byte(i)
		}
		return segments, nil
	case numChildren <= 32:
		if len(presence) != numChildren {
			return nil, fmt.Errorf("%w: segment vec length mismatch", ErrTruncated)
		}
		segments := make([]byte, numChildren)
		copy(segments, presence)
		return segments, nil
	default:
		if len(presence) != 32 {
			return nil, fmt.Errorf("%w: segment bitmap length mismatch", ErrTruncated)
		}
		var p presenceBitmap
		words := p.words()
		for w := 0; w < 4; w++ {
			var word uint64
			for i := 0; i < 8; i++ {
				word |= uint64(presence[w*8+i]) << (uint(i) * 8)
			}
			words[w] = word
		}
		segments := make([]byte, 0, numChildren)
		for i := 0; i < p.count(); i++ {
			b, ok := p.selectBit(i)
			if !ok {
				break
			}
			segments = append(segments, b)
		}
		if len(segments) != numChildren {
			return nil, fmt.Errorf("%w: segment bitmap popcount mismatch", ErrTruncated)
		}
		return segments, nil
	}
}
