// Package partition implements the splinter's hierarchical container:
// a tagged union over five storage classes (Full, Bitmap, Vec, Run, Tree)
// that represents the set of rest-values at one Level, plus the Tree
// container that recurses into a child Partition per top-byte segment.
//
// Dispatch follows the teacher's node-kind switch pattern: a Kind
// discriminant byte plus a type switch, rather than one Go type per
// Level — Go has no per-instantiation specialization the way the
// reference implementation keys everything off a Level trait, so the
// Level is carried as a runtime field instead.
package partition

import "fmt"

// Partition holds the rest-values of one level of the hierarchy, using
// whichever storage class is currently cheapest to represent them.
type Partition struct {
	level Level
	kind  Kind

	vec    *vecPartition
	bitmap *bitmapPartition
	run    *runPartition
	tree   *treePartition
}

// Empty returns an empty Partition at level l. Per the wire format, an
// empty Partition has no distinct in-memory representation: it is
// always a Vec with no values, only collapsing to the Empty wire tag at
// encode time.
func Empty(l Level) *Partition {
	return &Partition{level: l, kind: KindVec, vec: newVecPartition()}
}

// Full returns a Partition at level l containing every value in
// [0, l.MaxLen()).
func Full(l Level) *Partition {
	return &Partition{level: l, kind: KindFull}
}

// Level reports which level this Partition holds values for.
func (p *Partition) Level() Level { return p.level }

// Kind reports the current storage class.
func (p *Partition) Kind() Kind { return p.kind }

// Cardinality returns the number of values stored.
func (p *Partition) Cardinality() int {
	switch p.kind {
	case KindFull:
		return int(p.level.MaxLen())
	case KindBitmap:
		return p.bitmap.cardinality()
	case KindVec:
		return p.vec.cardinality()
	case KindRun:
		return p.run.cardinality()
	case KindTree:
		return p.tree.cardinality()
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// IsEmpty reports whether the Partition holds no values.
func (p *Partition) IsEmpty() bool {
	switch p.kind {
	case KindFull:
		return p.level.MaxLen() == 0
	case KindBitmap:
		return p.bitmap.isEmpty()
	case KindVec:
		return p.vec.isEmpty()
	case KindRun:
		return p.run.isEmpty()
	case KindTree:
		return p.tree.isEmpty()
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Contains reports whether rest is present.
func (p *Partition) Contains(rest uint32) bool {
	switch p.kind {
	case KindFull:
		return uint64(rest) < p.level.MaxLen()
	case KindBitmap:
		return p.bitmap.contains(rest)
	case KindVec:
		return p.vec.contains(rest)
	case KindRun:
		return p.run.contains(rest)
	case KindTree:
		return p.tree.contains(rest)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Rank returns the number of stored values <= rest.
func (p *Partition) Rank(rest uint32) int {
	switch p.kind {
	case KindFull:
		n := int(rest) + 1
		if n > int(p.level.MaxLen()) {
			n = int(p.level.MaxLen())
		}
		return n
	case KindBitmap:
		return p.bitmap.rank(rest)
	case KindVec:
		return p.vec.rank(rest)
	case KindRun:
		return p.run.rank(rest)
	case KindTree:
		return p.tree.rank(rest)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Position returns the zero-based index of rest in sorted order, iff
// rest is present.
func (p *Partition) Position(rest uint32) (int, bool) {
	switch p.kind {
	case KindFull:
		if uint64(rest) >= p.level.MaxLen() {
			return 0, false
		}
		return int(rest), true
	case KindBitmap:
		return p.bitmap.position(rest)
	case KindVec:
		return p.vec.position(rest)
	case KindRun:
		return p.run.position(rest)
	case KindTree:
		return p.tree.position(rest)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Select returns the idx'th stored value (0-based), in ascending order.
func (p *Partition) Select(idx int) (uint32, bool) {
	switch p.kind {
	case KindFull:
		if idx < 0 || idx >= int(p.level.MaxLen()) {
			return 0, false
		}
		return uint32(idx), true
	case KindBitmap:
		return p.bitmap.selectValue(idx)
	case KindVec:
		return p.vec.selectValue(idx)
	case KindRun:
		return p.run.selectValue(idx)
	case KindTree:
		return p.tree.selectValue(idx)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Last returns the highest stored value.
func (p *Partition) Last() (uint32, bool) {
	switch p.kind {
	case KindFull:
		if p.level.MaxLen() == 0 {
			return 0, false
		}
		return uint32(p.level.MaxLen() - 1), true
	case KindBitmap:
		return p.bitmap.last()
	case KindVec:
		return p.vec.last()
	case KindRun:
		return p.run.last()
	case KindTree:
		return p.tree.last()
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Values returns every stored value in ascending order. It materializes
// the full set and is intended for small partitions, tests, and the
// iteration fallback path.
func (p *Partition) Values() []uint32 {
	switch p.kind {
	case KindFull:
		out := make([]uint32, p.level.MaxLen())
		for i := range out {
			out[i] = uint32(i)
		}
		return out
	case KindBitmap:
		return p.bitmap.values()
	case KindVec:
		return append([]uint32(nil), p.vec.values...)
	case KindRun:
		return p.run.values()
	case KindTree:
		return p.tree.values()
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Insert adds rest, returning true if it was not already present. It
// does not reconsider the storage class; call Optimize periodically,
// which the Go splinter.go layer does after every mutating call, the
// same as the reference implementation's optimize_fast pass.
func (p *Partition) Insert(rest uint32) bool {
	switch p.kind {
	case KindFull:
		return false
	case KindBitmap:
		return p.bitmap.insert(rest)
	case KindVec:
		return p.vec.insert(rest)
	case KindRun:
		return p.run.insert(rest)
	case KindTree:
		return p.tree.insert(rest)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// Remove deletes rest, returning true if it was present.
func (p *Partition) Remove(rest uint32) bool {
	switch p.kind {
	case KindFull:
		p.explodeFull()
		return p.Remove(rest)
	case KindBitmap:
		return p.bitmap.remove(rest)
	case KindVec:
		return p.vec.remove(rest)
	case KindRun:
		return p.run.remove(rest)
	case KindTree:
		return p.tree.remove(rest)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// ContainsAll reports whether every value in [from, to) is present. An
// empty range (from >= to) is vacuously true.
func (p *Partition) ContainsAll(from, to uint32) bool {
	if from >= to {
		return true
	}
	switch p.kind {
	case KindFull:
		return uint64(to) <= p.level.MaxLen()
	case KindBitmap:
		return p.bitmap.containsAll(from, to)
	case KindVec:
		return p.vec.containsAll(from, to)
	case KindRun:
		return p.run.containsAll(from, to)
	case KindTree:
		return p.tree.containsAllRange(from, to)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// ContainsAny reports whether the intersection of [from, to) with p is
// non-empty. An empty range (from >= to) is false.
func (p *Partition) ContainsAny(from, to uint32) bool {
	if from >= to {
		return false
	}
	switch p.kind {
	case KindFull:
		return true
	case KindBitmap:
		return p.bitmap.containsAny(from, to)
	case KindVec:
		return p.vec.containsAny(from, to)
	case KindRun:
		return p.run.containsAny(from, to)
	case KindTree:
		return p.tree.containsAnyRange(from, to)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// RemoveRange deletes every value in [from, to), delegating to the
// active storage class's own bulk-range representation rather than
// removing one value at a time. An empty range (from >= to) is a no-op.
func (p *Partition) RemoveRange(from, to uint32) {
	if from >= to {
		return
	}
	switch p.kind {
	case KindFull:
		p.explodeFull()
		p.RemoveRange(from, to)
	case KindBitmap:
		p.bitmap.removeRange(from, to)
	case KindVec:
		p.vec.removeRange(from, to)
	case KindRun:
		p.run.removeRange(from, to)
	case KindTree:
		p.tree.removeRange(from, to)
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
}

// explodeFull converts a Full partition into a Run holding the single
// range [0, MaxLen), so a subsequent Remove has something concrete to
// mutate. Switching to Run rather than Vec or Bitmap avoids
// materializing a 4-billion-element array at High level; the caller is
// expected to call Optimize afterward to pick a cheaper class once the
// removal has shrunk the set.
func (p *Partition) explodeFull() {
	p.kind = KindRun
	p.run = runFromRanges([]runRange{{start: 0, end: uint32(p.level.MaxLen() - 1)}})
}

// Clone returns a deep copy of p.
func (p *Partition) Clone() *Partition {
	out := &Partition{level: p.level, kind: p.kind}
	switch p.kind {
	case KindFull:
	case KindBitmap:
		out.bitmap = p.bitmap.clone()
	case KindVec:
		out.vec = p.vec.clone()
	case KindRun:
		out.run = p.run.clone()
	case KindTree:
		out.tree = p.tree.clone()
	default:
		panic(fmt.Sprintf("partition: unknown kind %v", p.kind))
	}
	return out
}
