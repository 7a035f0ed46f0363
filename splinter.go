// Package splinter implements a compressed bitmap for 32-bit unsigned
// integers: a four-level hierarchical partition (High/Mid/Low/Block)
// that adaptively chooses the cheapest storage class among Full, Bitmap,
// Vec and Run for each subtree, and a self-describing, zero-copy
// on-disk encoding. Optimize keeps an existing Tree container when it
// is cheapest but never converts a flat class into a Tree; Tree nodes
// come only from decoded input or from set algebra on Tree operands.
//
// Concurrency: a *Splinter is NOT safe for concurrent mutation; callers
// sharing one across goroutines must synchronize externally, the same
// contract the teacher's multi-map held for its internal array guard.
package splinter

import (
	"iter"
	"sort"

	"github.com/TomTonic/splinter/partition"
)

// Splinter is a mutable, owned set of uint32 values.
type Splinter struct {
	root *partition.Partition
}

// New returns an empty Splinter.
func New() *Splinter {
	return &Splinter{root: partition.Empty(partition.High)}
}

// FromSlice returns a Splinter containing every value in values.
func FromSlice(values []uint32) *Splinter {
	s := New()
	for _, v := range values {
		s.Insert(v)
	}
	s.Optimize()
	return s
}

// FromRange returns a Splinter containing every value in [start, end).
// It runs a single thorough Optimize pass at the end rather than one
// per value, so a large contiguous span settles directly into the Run
// storage class instead of thrashing through intermediate classes.
func FromRange(start, end uint32) *Splinter {
	s := New()
	if start >= end {
		return s
	}
	for v := start; v != end; v++ {
		s.root.Insert(v)
	}
	s.Optimize()
	return s
}

// Insert adds v, reporting whether it was not already present. Storage
// class selection runs in fast mode after every mutation, mirroring the
// reference implementation's optimize_fast pass.
func (s *Splinter) Insert(v uint32) bool {
	added := s.root.Insert(v)
	if added {
		partition.Optimize(s.root, false)
	}
	return added
}

// InsertAll adds every value in values.
func (s *Splinter) InsertAll(values ...uint32) {
	for _, v := range values {
		s.root.Insert(v)
	}
	partition.Optimize(s.root, false)
}

// Remove deletes v, reporting whether it was present.
func (s *Splinter) Remove(v uint32) bool {
	removed := s.root.Remove(v)
	if removed {
		partition.Optimize(s.root, false)
	}
	return removed
}

// Contains reports whether v is a member.
func (s *Splinter) Contains(v uint32) bool {
	return s.root.Contains(v)
}

// Cardinality returns the number of members.
func (s *Splinter) Cardinality() int {
	return s.root.Cardinality()
}

// IsEmpty reports whether the set has no members.
func (s *Splinter) IsEmpty() bool {
	return s.root.IsEmpty()
}

// Rank returns the number of members <= v.
func (s *Splinter) Rank(v uint32) int {
	return s.root.Rank(v)
}

// Select returns the idx'th member in ascending order (0-based).
func (s *Splinter) Select(idx int) (uint32, bool) {
	return s.root.Select(idx)
}

// Last returns the greatest member, if any.
func (s *Splinter) Last() (uint32, bool) {
	return s.root.Last()
}

// Values returns every member in ascending order.
func (s *Splinter) Values() []uint32 {
	return s.root.Values()
}

// All returns a range-over-func iterator over every member in
// ascending order, the idiomatic Go replacement for the reference
// implementation's borrowing iterator methods.
func (s *Splinter) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, v := range s.root.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// RangeInclusive returns every member v with from <= v <= to, in
// ascending order.
func (s *Splinter) RangeInclusive(from, to uint32) []uint32 {
	all := s.root.Values()
	lo := sort.Search(len(all), func(i int) bool { return all[i] >= from })
	hi := sort.Search(len(all), func(i int) bool { return all[i] > to })
	if lo >= hi {
		return nil
	}
	return append([]uint32(nil), all[lo:hi]...)
}

// Clear removes every member.
func (s *Splinter) Clear() {
	s.root = partition.Empty(partition.High)
}

// Clone returns a deep, independent copy of s.
func (s *Splinter) Clone() *Splinter {
	return &Splinter{root: s.root.Clone()}
}

// Optimize runs a thorough re-evaluation of every storage class in the
// hierarchy, including recursing into Tree children and considering
// the Run class. Call it after a batch of mutations made via InsertAll
// or repeated Insert/Remove calls, when the fast pass run after each
// individual mutation may have left a subtree short of its true
// optimum.
func (s *Splinter) Optimize() {
	partition.Optimize(s.root, true)
}

// Union returns a new Splinter holding every member of s or other.
func (s *Splinter) Union(other *Splinter) *Splinter {
	return &Splinter{root: partition.Union(s.root, other.root)}
}

// Intersect returns a new Splinter holding every member in both s and other.
func (s *Splinter) Intersect(other *Splinter) *Splinter {
	return &Splinter{root: partition.Intersect(s.root, other.root)}
}

// Difference returns a new Splinter holding every member of s not also
// in other.
func (s *Splinter) Difference(other *Splinter) *Splinter {
	return &Splinter{root: partition.Difference(s.root, other.root)}
}

// SymmetricDifference returns a new Splinter holding every member
// present in exactly one of s or other.
func (s *Splinter) SymmetricDifference(other *Splinter) *Splinter {
	return &Splinter{root: partition.SymmetricDifference(s.root, other.root)}
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s *Splinter) IsSubsetOf(other *Splinter) bool {
	return partition.IsSubsetOf(s.root, other.root)
}

// Equal reports whether s and other hold the same members.
func (s *Splinter) Equal(other *Splinter) bool {
	return partition.Equal(s.root, other.root)
}

// EncodedSize returns the exact length of Encode's output without
// materializing it.
func (s *Splinter) EncodedSize() int {
	return partition.EncodedSize(s.root) + footerSize
}

// Encode serializes s to its self-describing on-disk format: the
// encoded partition tree followed by a 12-byte Footer (an 8-byte
// little-endian CRC-64/NVMe checksum and a 4-byte magic trailer).
func (s *Splinter) Encode() []byte {
	buf := make([]byte, 0, s.EncodedSize())
	buf = partition.Encode(buf, s.root)
	return appendFooter(buf)
}
