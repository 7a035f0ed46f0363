package splinter

import "github.com/TomTonic/splinter/partition"

// InsertRange adds every value in [start, end) to s, running a single
// fast-mode optimize pass afterward rather than one per value.
func (s *Splinter) InsertRange(start, end uint32) {
	for v := start; v < end; v++ {
		s.root.Insert(v)
	}
	partition.Optimize(s.root, false)
}

// RemoveRange deletes every value in [start, end) from s, delegating to
// the active storage class's own bulk-range representation at each
// affected level rather than removing one value at a time. An empty
// range (start >= end) is a no-op.
func (s *Splinter) RemoveRange(start, end uint32) {
	s.root.RemoveRange(start, end)
	partition.Optimize(s.root, false)
}

// ContainsAll reports whether every value in [from, to) is a member of
// s. An empty range (from >= to) returns true.
func (s *Splinter) ContainsAll(from, to uint32) bool {
	return s.root.ContainsAll(from, to)
}

// ContainsAny reports whether at least one value in [from, to) is a
// member of s. An empty range (from >= to) returns false.
func (s *Splinter) ContainsAny(from, to uint32) bool {
	return s.root.ContainsAny(from, to)
}

// Position returns the zero-based index of v in sorted order among s's
// members, iff v is a member.
func (s *Splinter) Position(v uint32) (int, bool) {
	return s.root.Position(v)
}

// Cut removes from s everything also present in other, mutating s in
// place, and returns a new Splinter holding the removed values — the
// destructive-intersection operation spec'd alongside Union/Intersect.
func (s *Splinter) Cut(other *Splinter) *Splinter {
	return &Splinter{root: partition.Cut(s.root, other.root)}
}

// Complement returns a new Splinter holding every uint32 not in s.
func (s *Splinter) Complement() *Splinter {
	return &Splinter{root: partition.Complement(s.root)}
}

// SparsityRatio returns the ratio of distinct top-byte segments in use
// to total cardinality, a diagnostic borrowed from the reference
// implementation's BitmapPartition::sparsity_ratio: values near 1.0
// indicate the set is spread evenly across segments (favoring Tree),
// while values near 0 indicate it clusters into few segments (favoring
// Bitmap or Run within those segments).
func (s *Splinter) SparsityRatio() float64 {
	card := s.Cardinality()
	if card == 0 {
		return 0
	}
	seen := make(map[uint32]struct{})
	for _, v := range s.root.Values() {
		seen[v>>24] = struct{}{}
	}
	return float64(len(seen)) / float64(card)
}
