package partition

import "sort"

// runRange is an inclusive, disjoint range of values [start, end].
type runRange struct {
	start, end uint32
}

func (r runRange) len() int { return int(r.end-r.start) + 1 }

// runPartition is a sorted slice of disjoint, non-adjacent inclusive
// ranges — the run-length storage class, the Go analogue of the
// reference implementation's RangeSetBlaze-backed Run container.
type runPartition struct {
	runs []runRange
}

func newRunPartition() *runPartition {
	return &runPartition{}
}

func runFromRanges(runs []runRange) *runPartition {
	return &runPartition{runs: runs}
}

func (r *runPartition) cardinality() int {
	n := 0
	for _, run := range r.runs {
		n += run.len()
	}
	return n
}

func (r *runPartition) isEmpty() bool { return len(r.runs) == 0 }

// runIndex returns the index of the run containing value, or the index
// where such a run would be inserted together with ok=false.
func (r *runPartition) runIndex(value uint32) (int, bool) {
	i := sort.Search(len(r.runs), func(i int) bool { return r.runs[i].end >= value })
	if i < len(r.runs) && r.runs[i].start <= value {
		return i, true
	}
	return i, false
}

func (r *runPartition) contains(value uint32) bool {
	_, ok := r.runIndex(value)
	return ok
}

// position returns the zero-based index of value in sorted order, iff
// value is present.
func (r *runPartition) position(value uint32) (int, bool) {
	i, ok := r.runIndex(value)
	if !ok {
		return 0, false
	}
	n := 0
	for k := 0; k < i; k++ {
		n += r.runs[k].len()
	}
	n += int(value - r.runs[i].start)
	return n, true
}

func (r *runPartition) rank(value uint32) int {
	n := 0
	for _, run := range r.runs {
		if run.start > value {
			break
		}
		if run.end <= value {
			n += run.len()
		} else {
			n += int(value-run.start) + 1
		}
	}
	return n
}

func (r *runPartition) selectValue(idx int) (uint32, bool) {
	for _, run := range r.runs {
		n := run.len()
		if idx < n {
			return run.start + uint32(idx), true
		}
		idx -= n
	}
	return 0, false
}

func (r *runPartition) last() (uint32, bool) {
	if len(r.runs) == 0 {
		return 0, false
	}
	return r.runs[len(r.runs)-1].end, true
}

func (r *runPartition) values() []uint32 {
	out := make([]uint32, 0, r.cardinality())
	for _, run := range r.runs {
		for v := run.start; ; v++ {
			out = append(out, v)
			if v == run.end {
				break
			}
		}
	}
	return out
}

func (r *runPartition) insert(value uint32) bool {
	i, ok := r.runIndex(value)
	if ok {
		return false
	}
	mergeLeft := i > 0 && r.runs[i-1].end+1 == value
	mergeRight := i < len(r.runs) && r.runs[i].start == value+1
	switch {
	case mergeLeft && mergeRight:
		r.runs[i-1].end = r.runs[i].end
		r.runs = append(r.runs[:i], r.runs[i+1:]...)
	case mergeLeft:
		r.runs[i-1].end = value
	case mergeRight:
		r.runs[i].start = value
	default:
		r.runs = append(r.runs, runRange{})
		copy(r.runs[i+1:], r.runs[i:])
		r.runs[i] = runRange{start: value, end: value}
	}
	return true
}

func (r *runPartition) remove(value uint32) bool {
	i, ok := r.runIndex(value)
	if !ok {
		return false
	}
	run := r.runs[i]
	switch {
	case run.start == run.end:
		r.runs = append(r.runs[:i], r.runs[i+1:]...)
	case value == run.start:
		r.runs[i].start++
	case value == run.end:
		r.runs[i].end--
	default:
		left := runRange{start: run.start, end: value - 1}
		right := runRange{start: value + 1, end: run.end}
		r.runs[i] = left
		r.runs = append(r.runs, runRange{})
		copy(r.runs[i+2:], r.runs[i+1:])
		r.runs[i+1] = right
	}
	return true
}

// containsAll reports whether [from, to) is entirely covered. Because
// insert/remove always keep runs maximal (no two stored runs are
// adjacent or overlapping), a fully-covered contiguous range can never
// span two runs: if it did, the gap enforced between maximal runs would
// leave part of the range uncovered. So a single run test suffices.
func (r *runPartition) containsAll(from, to uint32) bool {
	i, ok := r.runIndex(from)
	if !ok {
		return false
	}
	return uint64(r.runs[i].end) >= uint64(to)-1
}

func (r *runPartition) containsAny(from, to uint32) bool {
	i := sort.Search(len(r.runs), func(i int) bool { return r.runs[i].end >= from })
	if i >= len(r.runs) {
		return false
	}
	return r.runs[i].start < to
}

func (r *runPartition) removeRange(from, to uint32) {
	r.runs = differenceRuns(r.runs, []runRange{{start: from, end: to - 1}})
}

func (r *runPartition) clone() *runPartition {
	runs := make([]runRange, len(r.runs))
	copy(runs, r.runs)
	return &runPartition{runs: runs}
}

// complement returns the ranges of [0, maxLen) not covered by r, the
// Run class's physical analogue of Bitmap's word negation.
func (r *runPartition) complement(maxLen uint64) *runPartition {
	if len(r.runs) == 0 {
		return runFromRanges([]runRange{{start: 0, end: uint32(maxLen - 1)}})
	}
	out := make([]runRange, 0, len(r.runs)+1)
	var cur uint64
	for _, run := range r.runs {
		if uint64(run.start) > cur {
			out = append(out, runRange{start: uint32(cur), end: run.start - 1})
		}
		cur = uint64(run.end) + 1
	}
	if cur < maxLen {
		out = append(out, runRange{start: uint32(cur), end: uint32(maxLen - 1)})
	}
	return runFromRanges(out)
}

// unionRuns merges two sorted, disjoint range lists into their union,
// coalescing adjacent or overlapping ranges. All arithmetic is done in
// uint64 so that a range ending at the level's maximum value (end ==
// 0xFFFFFFFF at High) never wraps around when tested for adjacency.
func unionRuns(a, b []runRange) []runRange {
	out := make([]runRange, 0, len(a)+len(b))
	i, j := 0, 0
	haveOpen := false
	var openStart, openEnd uint64
	flush := func() {
		if haveOpen {
			out = append(out, runRange{start: uint32(openStart), end: uint32(openEnd)})
			haveOpen = false
		}
	}
	for i < len(a) || j < len(b) {
		var next runRange
		switch {
		case i >= len(a):
			next = b[j]
			j++
		case j >= len(b):
			next = a[i]
			i++
		case a[i].start <= b[j].start:
			next = a[i]
			i++
		default:
			next = b[j]
			j++
		}
		start, end := uint64(next.start), uint64(next.end)
		if haveOpen && start <= openEnd+1 {
			if end > openEnd {
				openEnd = end
			}
			continue
		}
		flush()
		haveOpen, openStart, openEnd = true, start, end
	}
	flush()
	return out
}

// intersectRuns returns the ranges present in both sorted, disjoint
// range lists a and b.
func intersectRuns(a, b []runRange) []runRange {
	out := make([]runRange, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].start
		if b[j].start > start {
			start = b[j].start
		}
		end := a[i].end
		if b[j].end < end {
			end = b[j].end
		}
		if start <= end {
			out = append(out, runRange{start: start, end: end})
		}
		if a[i].end < b[j].end {
			i++
		} else {
			j++
		}
	}
	return out
}

// differenceRuns returns the ranges in a not covered by any range in b.
// Arithmetic that walks past the end of a range is done in uint64 to
// avoid wraparound at end == 0xFFFFFFFF.
func differenceRuns(a, b []runRange) []runRange {
	out := make([]runRange, 0, len(a))
	j := 0
	for _, run := range a {
		cur := uint64(run.start)
		end := uint64(run.end)
		for j < len(b) && uint64(b[j].end) < cur {
			j++
		}
		k := j
		for k < len(b) && uint64(b[k].start) <= end && cur <= end {
			bStart, bEnd := uint64(b[k].start), uint64(b[k].end)
			if bStart > cur {
				out = append(out, runRange{start: uint32(cur), end: uint32(bStart - 1)})
			}
			if bEnd >= cur {
				cur = bEnd + 1
			}
			k++
		}
		if cur <= end {
			out = append(out, runRange{start: uint32(cur), end: uint32(end)})
		}
	}
	return out
}

// encodedSize is the wire size of a Run container: a sequence of
// (start, length-1) pairs, each two fixed-width big-endian values.
func (r *runPartition) encodedSize(l Level) int {
	return len(r.runs) * 2 * l.WireSize()
}
