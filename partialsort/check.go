// SPDX-License-Identifier: MIT

package partialsort

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// Check verifies the structural invariants:
//
//   - the break item is a valid id, the break solution fits and stops
//     fitting once the break item is added;
//   - no item left of the break position is less efficient than the break
//     item, and no item right of it is more efficient;
//   - each stack is non-empty-interval, contiguous, and its top is adjacent
//     (left) or beyond (right) the sorted region;
//   - efficiency ranges of consecutive intervals do not overlap, decreasing
//     from the leftmost to the rightmost interval.
//
// Errors: ErrInvariantViolated wrapped with a description and String().
// Complexity: O(n).
func (ps *PartialSort) Check() error {
	inst := ps.inst
	n := inst.NumberOfItems()
	if ps.breakItemID < 0 || ps.breakItemID >= n {
		return ps.violation("break item id %d out of range", ps.breakItemID)
	}
	if ps.breakSolution.Weight() > inst.Capacity() {
		return ps.violation("break solution weight %d exceeds capacity", ps.breakSolution.Weight())
	}
	bi := inst.Item(ps.breakItemID)
	if ps.breakSolution.Weight()+bi.Weight <= inst.Capacity() {
		return ps.violation("break item %d still fits", ps.breakItemID)
	}

	var (
		pos int
		it  knapsack.Item
	)
	for pos = 0; pos < ps.breakItemPos; pos++ {
		it = inst.Item(ps.sorted[pos])
		if knapsack.EfficiencyLess(it, bi) {
			return ps.violation("position %d left of break is less efficient", pos)
		}
	}
	for pos = ps.breakItemPos + 1; pos < n; pos++ {
		it = inst.Item(ps.sorted[pos])
		if knapsack.EfficiencyLess(bi, it) {
			return ps.violation("position %d right of break is more efficient", pos)
		}
	}

	if len(ps.intervalsLeft) > 0 {
		if top := ps.intervalsLeft[len(ps.intervalsLeft)-1]; top.Last > ps.firstSorted-1 {
			return ps.violation("left top [%d, %d] overlaps sorted region", top.First, top.Last)
		}
		var (
			prevMin knapsack.Item
			hasPrev bool
		)
		for i, iv := range ps.intervalsLeft {
			if iv.First > iv.Last {
				return ps.violation("left interval %d is empty", i)
			}
			if i+1 < len(ps.intervalsLeft) && iv.Last != ps.intervalsLeft[i+1].First-1 {
				return ps.violation("left intervals %d and %d are not contiguous", i, i+1)
			}
			lo, hi := ps.efficiencyRange(iv)
			if hasPrev && knapsack.EfficiencyLess(prevMin, hi) {
				return ps.violation("left interval %d overlaps its left neighbour", i)
			}
			prevMin, hasPrev = lo, true
		}
	}

	if len(ps.intervalsRight) > 0 {
		if top := ps.intervalsRight[len(ps.intervalsRight)-1]; top.First < ps.lastSorted+1 {
			return ps.violation("right top [%d, %d] overlaps sorted region", top.First, top.Last)
		}
		var (
			prevMax knapsack.Item
			hasPrev bool
		)
		for i, iv := range ps.intervalsRight {
			if iv.First > iv.Last {
				return ps.violation("right interval %d is empty", i)
			}
			if i+1 < len(ps.intervalsRight) && ps.intervalsRight[i+1].Last != iv.First-1 {
				return ps.violation("right intervals %d and %d are not contiguous", i, i+1)
			}
			lo, hi := ps.efficiencyRange(iv)
			if hasPrev && knapsack.EfficiencyLess(lo, prevMax) {
				return ps.violation("right interval %d overlaps its right neighbour", i)
			}
			prevMax, hasPrev = hi, true
		}
	}
	return nil
}

// efficiencyRange returns the least and the most efficient item of iv.
func (ps *PartialSort) efficiencyRange(iv Interval) (lo, hi knapsack.Item) {
	lo = ps.inst.Item(ps.sorted[iv.First])
	hi = lo
	var it knapsack.Item
	for pos := iv.First + 1; pos <= iv.Last; pos++ {
		it = ps.inst.Item(ps.sorted[pos])
		if knapsack.EfficiencyLess(it, lo) {
			lo = it
		}
		if knapsack.EfficiencyLess(hi, it) {
			hi = it
		}
	}
	return lo, hi
}

func (ps *PartialSort) violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s\n%s", ErrInvariantViolated, fmt.Sprintf(format, args...), ps)
}

// String dumps the intervals with their efficiency ranges and the break item.
func (ps *PartialSort) String() string {
	var sb strings.Builder
	dump := func(title string, ivs []Interval) {
		sb.WriteString(title)
		sb.WriteString(":\n")
		for _, iv := range ivs {
			if iv.First > iv.Last {
				fmt.Fprintf(&sb, " [%d, %d] empty\n", iv.First, iv.Last)
				continue
			}
			lo, hi := ps.efficiencyRange(iv)
			fmt.Fprintf(&sb, " [%d, %d] efficiencies [%g, %g]\n", iv.First, iv.Last, lo.Efficiency, hi.Efficiency)
		}
	}
	dump("Intervals left", ps.intervalsLeft)
	dump("Intervals right", ps.intervalsRight)
	fmt.Fprintf(&sb, "Sorted region [%d, %d], initial core [%d, %d]\n",
		ps.firstSorted, ps.lastSorted, ps.initialCoreFirst, ps.initialCoreLast)
	if ps.breakItemID >= 0 && ps.breakItemID < ps.inst.NumberOfItems() {
		fmt.Fprintf(&sb, "Break item: position %d, id %d, efficiency %g\n",
			ps.breakItemPos, ps.breakItemID, ps.inst.Item(ps.breakItemID).Efficiency)
	} else {
		fmt.Fprintf(&sb, "Break item: none (id %d)\n", ps.breakItemID)
	}
	return sb.String()
}
