package partition

import "sort"

// vecPartition is a sorted, deduplicated slice of values. It is the
// default storage class: every empty Partition is represented in memory
// as an empty vecPartition; only the encoder maps it to the Empty wire tag.
type vecPartition struct {
	values []uint32
}

func newVecPartition() *vecPartition {
	return &vecPartition{}
}

func vecFromSorted(values []uint32) *vecPartition {
	return &vecPartition{values: values}
}

func (v *vecPartition) cardinality() int { return len(v.values) }

func (v *vecPartition) isEmpty() bool { return len(v.values) == 0 }

func (v *vecPartition) indexOf(value uint32) (int, bool) {
	i := sort.Search(len(v.values), func(i int) bool { return v.values[i] >= value })
	if i < len(v.values) && v.values[i] == value {
		return i, true
	}
	return i, false
}

func (v *vecPartition) contains(value uint32) bool {
	_, ok := v.indexOf(value)
	return ok
}

// position returns the zero-based index of value in sorted order, iff
// value is present.
func (v *vecPartition) position(value uint32) (int, bool) {
	return v.indexOf(value)
}

// rank returns the number of stored values <= value.
func (v *vecPartition) rank(value uint32) int {
	i := sort.Search(len(v.values), func(i int) bool { return v.values[i] > value })
	return i
}

func (v *vecPartition) selectValue(idx int) (uint32, bool) {
	if idx < 0 || idx >= len(v.values) {
		return 0, false
	}
	return v.values[idx], true
}

func (v *vecPartition) last() (uint32, bool) {
	if len(v.values) == 0 {
		return 0, false
	}
	return v.values[len(v.values)-1], true
}

func (v *vecPartition) insert(value uint32) bool {
	i, ok := v.indexOf(value)
	if ok {
		return false
	}
	v.values = append(v.values, 0)
	copy(v.values[i+1:], v.values[i:])
	v.values[i] = value
	return true
}

func (v *vecPartition) remove(value uint32) bool {
	i, ok := v.indexOf(value)
	if !ok {
		return false
	}
	v.values = append(v.values[:i], v.values[i+1:]...)
	return true
}

// boundsRange returns the index range [lo, hi) of stored values within
// [from, to).
func (v *vecPartition) boundsRange(from, to uint32) (lo, hi int) {
	lo = sort.Search(len(v.values), func(i int) bool { return v.values[i] >= from })
	hi = sort.Search(len(v.values), func(i int) bool { return v.values[i] >= to })
	return lo, hi
}

func (v *vecPartition) containsAll(from, to uint32) bool {
	lo, hi := v.boundsRange(from, to)
	return hi-lo == int(to-from)
}

func (v *vecPartition) containsAny(from, to uint32) bool {
	lo, hi := v.boundsRange(from, to)
	return hi > lo
}

func (v *vecPartition) removeRange(from, to uint32) {
	lo, hi := v.boundsRange(from, to)
	if hi > lo {
		v.values = append(v.values[:lo], v.values[hi:]...)
	}
}

func (v *vecPartition) clone() *vecPartition {
	values := make([]uint32, len(v.values))
	copy(values, v.values)
	return &vecPartition{values: values}
}

// countRuns returns the number of maximal runs of consecutive values,
// used by toRuns to size its result.
func (v *vecPartition) countRuns() int {
	if len(v.values) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(v.values); i++ {
		if v.values[i] != v.values[i-1]+1 {
			runs++
		}
	}
	return runs
}

func (v *vecPartition) toRuns() []runRange {
	runs := make([]runRange, 0, v.countRuns())
	i := 0
	for i < len(v.values) {
		start := v.values[i]
		end := start
		j := i + 1
		for j < len(v.values) && v.values[j] == v.values[j-1]+1 {
			end = v.values[j]
			j++
		}
		runs = append(runs, runRange{start: start, end: end})
		i = j
	}
	return runs
}

// encodedSize is the wire size of a Vec container at the given level: a
// sequence of fixed-width big-endian values with no separators.
func (v *vecPartition) encodedSize(l Level) int {
	return len(v.values) * l.WireSize()
}
