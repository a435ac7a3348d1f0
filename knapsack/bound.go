// SPDX-License-Identifier: MIT

// bound.go - Dantzig-style upper bounds around a partial selection.
//
// Both functions relax the integrality of a single "next" item j:
//
//	forward (weight ≤ C):  U = p + ⌊(C − w)·p_j / w_j⌋
//	reverse (weight > C):  U = p − ⌈(w − C)·p_j / w_j⌉
//	                         = p + ((C − w)·p_j + 1) / w_j − 1   (Go truncation)
//
// They are admissible when every item still allowed to enter (forward) or
// leave (reverse) the selection is no more (resp. no less) efficient than j.
//
// Contracts:
//   - Callers run CheckBoundOverflow once per instance; afterwards neither
//     function can overflow for any weight in [0, 2·C] and any profit up to
//     the total profit.
//   - NoItem means "nothing left to add/remove": forward returns p, reverse
//     returns −1 (the selection cannot be repaired).

package knapsack

import (
	"fmt"
	"math"
)

// UpperBound returns the forward bound of a selection (profit, weight) with
// weight ≤ capacity, relaxing item id (or NoItem).
//
// Complexity: O(1).
func UpperBound(inst *Instance, profit Profit, weight Weight, id ItemID) Profit {
	if id == NoItem {
		return profit
	}
	it := inst.items[id]
	return profit + (inst.capacity-weight)*it.Profit/it.Weight
}

// UpperBoundReverse returns the reverse bound of an overweight selection
// (profit, weight) with weight > capacity, relaxing item id (or NoItem).
//
// Complexity: O(1).
func UpperBoundReverse(inst *Instance, profit Profit, weight Weight, id ItemID) Profit {
	if id == NoItem {
		return -1
	}
	it := inst.items[id]
	return profit + ((inst.capacity-weight)*it.Profit+1)/it.Weight - 1
}

// CheckBoundOverflow verifies, before any search, that every bound and
// efficiency comparison performed on inst stays inside int64:
//
//   - p_max · w_max               (cross-multiplied efficiency comparisons)
//   - C · p_max + 1               (numerator of both bounds)
//   - Σ p_j + C · p_max           (bound value itself)
//
// The per-item condition p_j ≤ ⌊MaxInt64 / C⌋ · w_j is implied by the second.
//
// Errors: ErrArithmeticOverflow (wrapped with the failing quantity).
// Complexity: O(1).
func CheckBoundOverflow(inst *Instance) error {
	if err := checkEfficiencyProducts(inst); err != nil {
		return err
	}
	c := inst.capacity
	if c == 0 {
		return nil
	}
	hp := inst.highestItemProfit
	if hp > (math.MaxInt64-1)/c {
		return fmt.Errorf("%w: capacity %d times highest profit %d", ErrArithmeticOverflow, c, hp)
	}
	if inst.totalProfit > math.MaxInt64-c*hp {
		return fmt.Errorf("%w: total profit %d plus bound slack %d", ErrArithmeticOverflow, inst.totalProfit, c*hp)
	}
	return nil
}

// checkEfficiencyProducts rejects instances where p_i·w_j may overflow.
func checkEfficiencyProducts(inst *Instance) error {
	hw := inst.highestItemWeight
	if hw == 0 {
		return nil
	}
	if math.MaxInt64/hw <= inst.highestItemProfit {
		return fmt.Errorf("%w: highest weight %d times highest profit %d",
			ErrArithmeticOverflow, hw, inst.highestItemProfit)
	}
	return nil
}
