package partition

import "sort"

// treePartition dispatches by top-byte segment to a child Partition at
// the next level down. It is only valid at a level where AllowTree()
// is true; Block, the terminal level, never holds one.
type treePartition struct {
	level    Level // the level of the values THIS container holds
	segments []byte
	children []*Partition // children[i] corresponds to segments[i]; at level.Child()
}

func newTreePartition(l Level) *treePartition {
	return &treePartition{level: l}
}

func (t *treePartition) indexOf(segment byte) (int, bool) {
	i := sort.Search(len(t.segments), func(i int) bool { return t.segments[i] >= segment })
	if i < len(t.segments) && t.segments[i] == segment {
		return i, true
	}
	return i, false
}

func (t *treePartition) childFor(segment byte) (*Partition, bool) {
	i, ok := t.indexOf(segment)
	if !ok {
		return nil, false
	}
	return t.children[i], true
}

func (t *treePartition) cardinality() int {
	n := 0
	for _, c := range t.children {
		n += c.Cardinality()
	}
	return n
}

func (t *treePartition) isEmpty() bool {
	return len(t.children) == 0
}

func (t *treePartition) contains(rest uint32) bool {
	seg, childRest := Split(t.level, rest)
	c, ok := t.childFor(seg)
	if !ok {
		return false
	}
	return c.Contains(childRest)
}

func (t *treePartition) rank(rest uint32) int {
	seg, childRest := Split(t.level, rest)
	n := 0
	for i, s := range t.segments {
		if s < seg {
			n += t.children[i].Cardinality()
		} else if s == seg {
			n += t.children[i].Rank(childRest)
			break
		} else {
			break
		}
	}
	return n
}

// position returns the zero-based index of rest in sorted order, iff
// rest is present: the cardinality of every child before rest's segment,
// plus rest's position within its own child.
func (t *treePartition) position(rest uint32) (int, bool) {
	seg, childRest := Split(t.level, rest)
	n := 0
	for i, s := range t.segments {
		if s < seg {
			n += t.children[i].Cardinality()
			continue
		}
		if s == seg {
			p, ok := t.children[i].Position(childRest)
			if !ok {
				return 0, false
			}
			return n + p, true
		}
		break
	}
	return 0, false
}

func (t *treePartition) selectValue(idx int) (uint32, bool) {
	for i, c := range t.children {
		n := c.Cardinality()
		if idx < n {
			rest, ok := c.Select(idx)
			if !ok {
				return 0, false
			}
			return Unsplit(t.level, t.segments[i], rest), true
		}
		idx -= n
	}
	return 0, false
}

func (t *treePartition) last() (uint32, bool) {
	if len(t.children) == 0 {
		return 0, false
	}
	i := len(t.children) - 1
	rest, ok := t.children[i].Last()
	if !ok {
		return 0, false
	}
	return Unsplit(t.level, t.segments[i], rest), true
}

func (t *treePartition) values() []uint32 {
	out := make([]uint32, 0, t.cardinality())
	for i, c := range t.children {
		for _, rest := range c.Values() {
			out = append(out, Unsplit(t.level, t.segments[i], rest))
		}
	}
	return out
}

func (t *treePartition) insert(rest uint32) bool {
	seg, childRest := Split(t.level, rest)
	i, ok := t.indexOf(seg)
	if !ok {
		t.segments = append(t.segments, 0)
		copy(t.segments[i+1:], t.segments[i:])
		t.segments[i] = seg

		t.children = append(t.children, nil)
		copy(t.children[i+1:], t.children[i:])
		t.children[i] = Empty(t.level.Child())
	}
	return t.children[i].Insert(childRest)
}

func (t *treePartition) remove(rest uint32) bool {
	seg, childRest := Split(t.level, rest)
	i, ok := t.indexOf(seg)
	if !ok {
		return false
	}
	removed := t.children[i].Remove(childRest)
	if removed && t.children[i].IsEmpty() {
		t.segments = append(t.segments[:i], t.segments[i+1:]...)
		t.children = append(t.children[:i], t.children[i+1:]...)
	}
	return removed
}

// segRange computes, for iterating segments segFrom..segTo inclusive,
// the child-level sub-range [rs, re) that segment seg's rest-values
// contribute to the overall range [from, to).
func (t *treePartition) segRange(seg, segFrom, segTo byte, restFrom, restTo, childMaxLen uint32) (rs, re uint32) {
	rs, re = 0, childMaxLen
	if seg == segFrom {
		rs = restFrom
	}
	if seg == segTo {
		re = restTo + 1
	}
	return rs, re
}

func (t *treePartition) containsAllRange(from, to uint32) bool {
	segFrom, restFrom := Split(t.level, from)
	segTo, restTo := Split(t.level, to-1)
	childMaxLen := uint32(t.level.Child().MaxLen())
	for seg := int(segFrom); seg <= int(segTo); seg++ {
		rs, re := t.segRange(byte(seg), segFrom, segTo, restFrom, restTo, childMaxLen)
		child, ok := t.childFor(byte(seg))
		if !ok || !child.ContainsAll(rs, re) {
			return false
		}
	}
	return true
}

func (t *treePartition) containsAnyRange(from, to uint32) bool {
	segFrom, restFrom := Split(t.level, from)
	segTo, restTo := Split(t.level, to-1)
	childMaxLen := uint32(t.level.Child().MaxLen())
	for seg := int(segFrom); seg <= int(segTo); seg++ {
		rs, re := t.segRange(byte(seg), segFrom, segTo, restFrom, restTo, childMaxLen)
		child, ok := t.childFor(byte(seg))
		if ok && child.ContainsAny(rs, re) {
			return true
		}
	}
	return false
}

func (t *treePartition) removeRange(from, to uint32) {
	segFrom, restFrom := Split(t.level, from)
	segTo, restTo := Split(t.level, to-1)
	childMaxLen := uint32(t.level.Child().MaxLen())
	for seg := int(segFrom); seg <= int(segTo); seg++ {
		rs, re := t.segRange(byte(seg), segFrom, segTo, restFrom, restTo, childMaxLen)
		i, ok := t.indexOf(byte(seg))
		if !ok {
			continue
		}
		t.children[i].RemoveRange(rs, re)
		if t.children[i].IsEmpty() {
			t.segments = append(t.segments[:i], t.segments[i+1:]...)
			t.children = append(t.children[:i], t.children[i+1:]...)
		}
	}
}

func (t *treePartition) clone() *treePartition {
	out := &treePartition{
		level:    t.level,
		segments: append([]byte(nil), t.segments...),
		children: make([]*Partition, len(t.children)),
	}
	for i, c := range t.children {
		out.children[i] = c.Clone()
	}
	return out
}

// encodedSize is the wire size of a Tree container: each child's
// encoding, plus per-child offsets, cumulative cardinalities, and a
// segment-presence sub-map, plus the trailing child-count byte.
func (t *treePartition) encodedSize() int {
	size := 0
	for _, c := range t.children {
		size += encodedSizeOf(c)
	}
	n := len(t.children)
	ws := t.level.WireSize()
	size += n * ws // offsets
	size += n * ws // cumulative cardinalities
	size += segmentPresenceEncodedSize(n)
	size++ // num_children - 1
	return size
}

// segmentPresenceEncodedSize mirrors the Block-level NonRecursivePartitionRef
// used to encode a Tree's segment-presence map: Full when every segment is
// in use, Vec when a sorted byte list is no larger than the bitmap
// encoding (32 bytes), Bitmap otherwise. Tree is never chosen here because
// Block, the level this sub-map lives at, disallows it.
func segmentPresenceEncodedSize(numChildren int) int {
	const bitmapSize = 32 // BitmapPartition<Block>::ENCODED_SIZE
	switch {
	case numChildren == 256:
		return 0 // Full: no payload at all
	case numChildren <= bitmapSize:
		return numChildren // Vec: one byte per segment
	default:
		return bitmapSize // Bitmap
	}
}
