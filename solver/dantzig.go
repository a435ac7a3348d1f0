// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/katalvlaran/knapsolver/partialsort"
)

// UpperBoundDantzig returns the LP-relaxation bound: the break solution
// plus the fractional part of the break item. If every item fits the bound
// is the total profit and b is not consulted.
//
// Errors: ErrNoBreakItem when b is nil or has no break item.
// Complexity: O(1).
func UpperBoundDantzig(inst *knapsack.Instance, b Breaker) (knapsack.Profit, error) {
	if inst.AllItemsFit() {
		return inst.TotalItemProfit(), nil
	}
	if b == nil || b.BreakItemID() == knapsack.NoItem {
		return 0, ErrNoBreakItem
	}
	bs := b.BreakSolution()
	return knapsack.UpperBound(inst, bs.Profit(), bs.Weight(), b.BreakItemID()), nil
}

// DantzigSolve computes only a bound; the value stays at 0 unless every
// item fits.
func DantzigSolve(inst *knapsack.Instance, opts ...Option) (*Result, error) {
	o, _, cancel, err := resolveOptions(opts)
	defer cancel()
	if err != nil {
		return nil, err
	}
	tr := newTracker(inst, o)
	if inst.AllItemsFit() {
		tr.updateBound(inst.TotalItemProfit(), "all items fit")
		return tr.finish(), nil
	}
	ps, err := partialsort.New(inst, partialsort.WithSeed(o.Seed))
	if err != nil {
		return nil, err
	}
	ub, err := UpperBoundDantzig(inst, ps)
	if err != nil {
		return nil, err
	}
	tr.updateBound(ub, "algorithm end (bound)")
	return tr.finish(), nil
}
