// SPDX-License-Identifier: MIT

package solver

import (
	"sort"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// findState looks for the unprocessed item that, combined with a single
// frontier state, gives the most profitable feasible selection. right
// scans the items that could be added, otherwise the items that could be
// removed. Reduced items are skipped. Returns the item position, or -1 when
// no item improves on profit 0.
//
// Complexity: O(k · log |frontier|) for k scanned positions.
func (e *pdEngine) findState(right bool) int {
	var (
		inst   = e.inst
		ps     = e.ps
		c      = inst.Capacity()
		first  int
		last   int
		bestLB knapsack.Profit
		bestAt = -1
	)
	if right {
		first, last = e.t, inst.NumberOfItems()-1
	} else {
		first, last = 0, e.s
	}
	firstReduced, firstSorted := ps.FirstReducedItemPos(), ps.FirstSortedItemPos()
	lastSorted, lastReduced := ps.LastSortedItemPos(), ps.LastReducedItemPos()

	for pos := first; pos <= last; pos++ {
		if firstReduced <= pos && pos < firstSorted {
			continue
		}
		if lastSorted < pos && pos <= lastReduced {
			continue
		}
		it := inst.Item(ps.ItemID(pos))

		// Heaviest state that fits once the item is taken (right) or
		// given up (left).
		target := c - it.Weight
		if !right {
			target = c + it.Weight
		}
		if e.l0[0].weight > target {
			continue
		}
		k := sort.Search(len(e.l0), func(i int) bool { return e.l0[i].weight > target }) - 1

		lb := e.l0[k].profit + it.Profit
		if !right {
			lb = e.l0[k].profit - it.Profit
		}
		if lb > bestLB {
			bestLB = lb
			bestAt = pos
		}
	}
	return bestAt
}
