package partition

// Optimize re-evaluates p's storage class and switches it to whichever
// is cheapest to encode, recursing into Tree children when thorough is
// true. It mirrors the reference implementation's two-speed design:
// a cheap pass run after every mutation (thorough=false) and a full
// pass that also considers the Run class and descends into subtrees
// (thorough=true).
//
// Fast mode never newly switches a partition INTO Run: counting runs
// requires an O(n) scan, which optimize_fast is built to avoid. It also
// biases toward staying in the current kind when that kind is already
// Run or Tree, subtracting a one-unit bonus from the current kind's cost, so a
// partition hovering near a cost tie does not thrash between classes on
// every insert/remove.
func Optimize(p *Partition, thorough bool) {
	if p.IsEmpty() {
		if p.kind != KindVec || p.vec == nil || len(p.vec.values) != 0 {
			p.kind = KindVec
			p.vec = newVecPartition()
			p.bitmap, p.run, p.tree = nil, nil, nil
		}
		return
	}
	card := p.Cardinality()
	if uint64(card) == p.level.MaxLen() {
		if p.kind != KindFull {
			p.kind = KindFull
			p.vec, p.bitmap, p.run, p.tree = nil, nil, nil, nil
		}
		return
	}

	if p.kind == KindTree {
		if thorough {
			for _, c := range p.tree.children {
				Optimize(c, true)
			}
		}
		// A Tree only loses its class here if another class strictly
		// beats it; otherwise leave subtree structure untouched.
	}

	ws := p.level.WireSize()

	vecCost := card * ws
	bitmapCost := encodedSizeForLevel(p.level)

	best := KindVec
	bestCost := vecCost
	if bitmapCost < bestCost {
		best, bestCost = KindBitmap, bitmapCost
	}

	stabilityBonus := func(k Kind) int {
		if k == p.kind && (p.kind == KindRun || p.kind == KindTree) {
			return 1
		}
		return 0
	}

	if thorough || p.kind == KindRun {
		var runs int
		if p.kind == KindRun {
			runs = len(p.run.runs)
		} else {
			runs = countRunsOf(p.Values())
		}
		runCost := runs * 2 * ws
		if runCost-stabilityBonus(KindRun) < bestCost {
			best, bestCost = KindRun, runCost
		}
	}

	if p.level.AllowTree() && p.kind == KindTree {
		treeCost := p.tree.encodedSize()
		if treeCost-stabilityBonus(KindTree) < bestCost {
			best, bestCost = KindTree, treeCost
		}
	}

	if best != p.kind {
		switchTo(p, best, p.Values())
	}
}

func countRunsOf(values []uint32) int {
	if len(values) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			runs++
		}
	}
	return runs
}

func switchTo(p *Partition, kind Kind, values []uint32) {
	if kind == p.kind {
		return
	}
	switch kind {
	case KindVec:
		p.kind = KindVec
		p.vec = vecFromSorted(append([]uint32(nil), values...))
		p.bitmap, p.run, p.tree = nil, nil, nil
	case KindBitmap:
		p.kind = KindBitmap
		p.bitmap = bitmapFromValues(p.level, values)
		p.vec, p.run, p.tree = nil, nil, nil
	case KindRun:
		p.kind = KindRun
		p.run = runFromRanges(vecFromSorted(values).toRuns())
		p.vec, p.bitmap, p.tree = nil, nil, nil
	case KindTree:
		// Switching INTO Tree from a flat class requires rebuilding a
		// full hierarchy; not attempted by the cost-estimation pass,
		// which only ever keeps an existing Tree, never manufactures one.
	}
}
