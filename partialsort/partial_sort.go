// SPDX-License-Identifier: MIT

package partialsort

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// Interval is an inclusive range of positions whose items are not yet
// sorted among themselves.
type Interval struct {
	First int
	Last  int
}

// PartialSort is the lazy core-sorting engine. It is not safe for
// concurrent use.
type PartialSort struct {
	inst *knapsack.Instance
	rng  *rand.Rand

	// sorted[pos] is the item id at position pos.
	sorted []knapsack.ItemID

	breakSolution *knapsack.Solution
	mandatory     *knapsack.Solution
	breakItemID   knapsack.ItemID
	breakItemPos  int

	// Stack tops (last elements) are adjacent to the sorted region.
	intervalsLeft  []Interval
	intervalsRight []Interval

	firstSorted int
	lastSorted  int

	initialCoreFirst int
	initialCoreLast  int
}

// New partitions inst around its break item.
//
// Errors:
//   - ErrAllItemsFit when Σ w_j ≤ C (no break item exists).
//   - knapsack.ErrArithmeticOverflow when bounds or efficiency products
//     could overflow.
//   - ErrInvariantViolated if the final Check fails.
//
// Complexity: expected O(n) (quickselect) plus O(n) for the break solution.
// New takes no context; callers poll cancellation around it.
func New(inst *knapsack.Instance, opts ...Option) (*PartialSort, error) {
	if inst.AllItemsFit() {
		return nil, ErrAllItemsFit
	}
	if err := knapsack.CheckBoundOverflow(inst); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := o.Rand
	if r == nil {
		r = rngFromSeed(o.Seed)
	}

	n := inst.NumberOfItems()
	ps := &PartialSort{
		inst:          inst,
		rng:           r,
		sorted:        make([]knapsack.ItemID, n),
		breakSolution: knapsack.NewSolution(inst),
		mandatory:     knapsack.NewSolution(inst),
		breakItemID:   knapsack.NoItem,
		breakItemPos:  -1,
	}
	for i := range ps.sorted {
		ps.sorted[i] = i
	}

	var (
		f, l       = 0, n - 1
		capRemain  = inst.Capacity()
		eqF, eqL   int
		weight     knapsack.Weight
		pos        int
		overweight bool
	)
	for f < l {
		eqF, eqL = ps.partition(f, l)

		weight = 0
		for pos = f; pos < eqF; pos++ {
			weight += inst.Item(ps.sorted[pos]).Weight
		}
		if weight > capRemain {
			if eqL+1 <= l {
				ps.intervalsRight = append(ps.intervalsRight, Interval{eqL + 1, l})
			}
			ps.intervalsRight = append(ps.intervalsRight, Interval{eqF, eqL})
			l = eqF - 1
			continue
		}

		for pos = eqF; pos <= eqL; pos++ {
			weight += inst.Item(ps.sorted[pos]).Weight
		}
		overweight = weight > capRemain
		if overweight {
			// The break position lies inside the equal-efficiency block.
			break
		}
		capRemain -= weight
		if f <= eqF-1 {
			ps.intervalsLeft = append(ps.intervalsLeft, Interval{f, eqF - 1})
		}
		ps.intervalsLeft = append(ps.intervalsLeft, Interval{eqF, eqL})
		f = eqL + 1
	}

	ps.computeBreakSolution()
	if ps.breakItemID == knapsack.NoItem {
		return nil, fmt.Errorf("%w: no break item found\n%s", ErrInvariantViolated, ps)
	}
	if f <= ps.breakItemPos-1 {
		ps.intervalsLeft = append(ps.intervalsLeft, Interval{f, ps.breakItemPos - 1})
	}
	if l >= ps.breakItemPos+1 {
		ps.intervalsRight = append(ps.intervalsRight, Interval{ps.breakItemPos + 1, l})
	}
	ps.firstSorted = ps.breakItemPos
	ps.lastSorted = ps.breakItemPos
	ps.initialCoreFirst = ps.breakItemPos
	ps.initialCoreLast = ps.breakItemPos

	if err := ps.Check(); err != nil {
		return nil, err
	}
	return ps, nil
}

// partition performs a three-way partition of [f, l] around a random pivot:
// more efficient items first, then the equal block, then less efficient.
// It returns the bounds of the equal block (never empty).
func (ps *PartialSort) partition(f, l int) (int, int) {
	p := pivotPos(ps.rng, f, l)
	pivot := ps.inst.Item(ps.sorted[p])
	ps.sorted[p], ps.sorted[l] = ps.sorted[l], ps.sorted[p]

	var (
		pos = f
		it  knapsack.Item
	)
	for pos <= l {
		it = ps.inst.Item(ps.sorted[pos])
		switch {
		case it.Profit*pivot.Weight > pivot.Profit*it.Weight:
			ps.sorted[pos], ps.sorted[f] = ps.sorted[f], ps.sorted[pos]
			f++
			pos++
		case it.Profit*pivot.Weight < pivot.Profit*it.Weight:
			ps.sorted[pos], ps.sorted[l] = ps.sorted[l], ps.sorted[pos]
			l--
		default:
			pos++
		}
	}
	return f, l
}

// computeBreakSolution fills the longest fitting prefix of the permutation.
func (ps *PartialSort) computeBreakSolution() {
	c := ps.inst.Capacity()
	for pos, id := range ps.sorted {
		if ps.breakSolution.Weight()+ps.inst.Item(id).Weight > c {
			ps.breakItemPos = pos
			ps.breakItemID = id
			return
		}
		// Each id appears once in the permutation.
		_ = ps.breakSolution.Add(id)
	}
}

// byEfficiencyDesc orders ids by decreasing efficiency, ties by id.
func (ps *PartialSort) byEfficiencyDesc(a, b knapsack.ItemID) int {
	ia, ib := ps.inst.Item(a), ps.inst.Item(b)
	lhs, rhs := ia.Profit*ib.Weight, ib.Profit*ia.Weight
	switch {
	case lhs > rhs:
		return -1
	case lhs < rhs:
		return 1
	}
	return a - b
}

// sortNextLeftInterval pops the left stack top, reduces the items that
// cannot be removed profitably and sorts the remaining ones in front of
// the sorted region.
func (ps *PartialSort) sortNextLeftInterval(lowerBound knapsack.Profit) {
	iv := ps.intervalsLeft[len(ps.intervalsLeft)-1]
	ps.intervalsLeft = ps.intervalsLeft[:len(ps.intervalsLeft)-1]

	var (
		k  = ps.firstSorted
		id knapsack.ItemID
		it knapsack.Item
		ub knapsack.Profit
	)
	for pos := iv.Last; pos >= iv.First; pos-- {
		id = ps.sorted[pos]
		it = ps.inst.Item(id)
		ub = knapsack.UpperBound(ps.inst,
			ps.breakSolution.Profit()-it.Profit,
			ps.breakSolution.Weight()-it.Weight,
			ps.breakItemID)
		if ub > lowerBound {
			k--
			ps.sorted[k], ps.sorted[pos] = ps.sorted[pos], ps.sorted[k]
		} else {
			// Reduced exactly once: the interval is gone from the stack.
			_ = ps.mandatory.Add(id)
		}
	}
	slices.SortFunc(ps.sorted[k:ps.firstSorted], ps.byEfficiencyDesc)
	ps.firstSorted = k
}

// sortNextRightInterval pops the right stack top, drops the items that
// cannot be added profitably and sorts the remaining ones after the
// sorted region.
func (ps *PartialSort) sortNextRightInterval(lowerBound knapsack.Profit) {
	iv := ps.intervalsRight[len(ps.intervalsRight)-1]
	ps.intervalsRight = ps.intervalsRight[:len(ps.intervalsRight)-1]

	var (
		k  = ps.lastSorted
		bi = ps.inst.Item(ps.breakItemID)
		it knapsack.Item
		ub knapsack.Profit
	)
	for pos := iv.First; pos <= iv.Last; pos++ {
		it = ps.inst.Item(ps.sorted[pos])
		ub = knapsack.UpperBoundReverse(ps.inst,
			ps.breakSolution.Profit()+bi.Profit+it.Profit,
			ps.breakSolution.Weight()+bi.Weight+it.Weight,
			ps.breakItemID)
		if ub > lowerBound {
			k++
			ps.sorted[k], ps.sorted[pos] = ps.sorted[pos], ps.sorted[k]
		}
	}
	slices.SortFunc(ps.sorted[ps.lastSorted+1:k+1], ps.byEfficiencyDesc)
	ps.lastSorted = k
}

// BoundItemLeft returns the item whose efficiency bounds every item that
// can still be removed at or left of pos, sorting left intervals on demand:
// the break item inside the initial core, the item at pos inside the sorted
// region, or NoItem once pos is left of everything sortable.
//
// Complexity: amortised O(interval size · log) per popped interval, O(1) otherwise.
func (ps *PartialSort) BoundItemLeft(pos int, lowerBound knapsack.Profit) knapsack.ItemID {
	for pos < ps.firstSorted && len(ps.intervalsLeft) > 0 {
		ps.sortNextLeftInterval(lowerBound)
	}
	switch {
	case pos < ps.firstSorted:
		return knapsack.NoItem
	case pos >= ps.initialCoreFirst:
		return ps.breakItemID
	default:
		return ps.sorted[pos]
	}
}

// BoundItemRight is the mirror of BoundItemLeft for items that can still be
// added at or right of pos.
func (ps *PartialSort) BoundItemRight(pos int, lowerBound knapsack.Profit) knapsack.ItemID {
	for pos > ps.lastSorted && len(ps.intervalsRight) > 0 {
		ps.sortNextRightInterval(lowerBound)
	}
	switch {
	case pos >= ps.lastSorted+1:
		return knapsack.NoItem
	case pos <= ps.initialCoreLast:
		return ps.breakItemID
	default:
		return ps.sorted[pos]
	}
}

// Instance returns the sorted instance.
func (ps *PartialSort) Instance() *knapsack.Instance { return ps.inst }

// BreakSolution returns the greedy prefix solution. Callers must not mutate it.
func (ps *PartialSort) BreakSolution() *knapsack.Solution { return ps.breakSolution }

// MandatoryItems returns the left items proven to belong to every
// improving solution. Callers must not mutate it.
func (ps *PartialSort) MandatoryItems() *knapsack.Solution { return ps.mandatory }

// ItemID returns the item at position pos.
func (ps *PartialSort) ItemID(pos int) knapsack.ItemID { return ps.sorted[pos] }

// BreakItemID returns the first item that does not fit the prefix.
func (ps *PartialSort) BreakItemID() knapsack.ItemID { return ps.breakItemID }

// BreakItemPos returns the position of the break item.
func (ps *PartialSort) BreakItemPos() int { return ps.breakItemPos }

// FirstSortedItemPos returns the left end of the sorted region.
func (ps *PartialSort) FirstSortedItemPos() int { return ps.firstSorted }

// LastSortedItemPos returns the right end of the sorted region.
func (ps *PartialSort) LastSortedItemPos() int { return ps.lastSorted }

// FirstReducedItemPos returns the first position right of every left interval.
func (ps *PartialSort) FirstReducedItemPos() int {
	if len(ps.intervalsLeft) == 0 {
		return 0
	}
	return ps.intervalsLeft[len(ps.intervalsLeft)-1].Last + 1
}

// LastReducedItemPos returns the last position left of every right interval.
func (ps *PartialSort) LastReducedItemPos() int {
	if len(ps.intervalsRight) == 0 {
		return ps.inst.NumberOfItems() - 1
	}
	return ps.intervalsRight[len(ps.intervalsRight)-1].First - 1
}

// IntervalsLeftEmpty reports whether every left item has been sorted or reduced.
func (ps *PartialSort) IntervalsLeftEmpty() bool { return len(ps.intervalsLeft) == 0 }

// IntervalsRightEmpty reports whether every right item has been sorted or dropped.
func (ps *PartialSort) IntervalsRightEmpty() bool { return len(ps.intervalsRight) == 0 }

// IntervalsLeft returns a copy of the left stack, bottom first.
func (ps *PartialSort) IntervalsLeft() []Interval { return slices.Clone(ps.intervalsLeft) }

// IntervalsRight returns a copy of the right stack, bottom first.
func (ps *PartialSort) IntervalsRight() []Interval { return slices.Clone(ps.intervalsRight) }
