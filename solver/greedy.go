// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/katalvlaran/knapsolver/partialsort"
)

// Breaker exposes the greedy prefix of an efficiency order.
// *partialsort.PartialSort and *partialsort.FullSort implement it.
type Breaker interface {
	BreakSolution() *knapsack.Solution
	BreakItemID() knapsack.ItemID
}

// Greedy returns two solutions built from the break solution of b:
//
//   - forward:  break solution + the most profitable item that still fits;
//   - backward: break solution + break item − the least profitable item
//     whose removal restores feasibility (the break item itself qualifies,
//     so backward is always feasible).
//
// Errors: ErrNoBreakItem when b is nil or has no break item.
// Complexity: O(n).
func Greedy(inst *knapsack.Instance, b Breaker) (forward, backward *knapsack.Solution, err error) {
	if b == nil || b.BreakItemID() == knapsack.NoItem {
		return nil, nil, ErrNoBreakItem
	}
	forward = b.BreakSolution().Clone()
	backward = b.BreakSolution().Clone()
	if err = backward.Add(b.BreakItemID()); err != nil {
		return nil, nil, fmt.Errorf("%w: greedy backward: %v", ErrInternal, err)
	}

	var (
		c            = inst.Capacity()
		bestForward  = knapsack.NoItem
		bestBackward = knapsack.NoItem
		it           knapsack.Item
	)
	for id := 0; id < inst.NumberOfItems(); id++ {
		it = inst.Item(id)
		if !forward.Contains(id) && forward.Weight()+it.Weight <= c &&
			(bestForward == knapsack.NoItem || inst.Item(bestForward).Profit < it.Profit) {
			bestForward = id
		}
		if backward.Contains(id) && backward.Weight()-it.Weight <= c &&
			(bestBackward == knapsack.NoItem || inst.Item(bestBackward).Profit > it.Profit) {
			bestBackward = id
		}
	}
	if bestForward != knapsack.NoItem {
		if err = forward.Add(bestForward); err != nil {
			return nil, nil, fmt.Errorf("%w: greedy forward: %v", ErrInternal, err)
		}
	}
	if err = backward.Remove(bestBackward); err != nil {
		return nil, nil, fmt.Errorf("%w: greedy backward: %v", ErrInternal, err)
	}
	return forward, backward, nil
}

// GreedySolve runs Greedy on a fresh partial sort and returns the better of
// the two solutions. Bound stays at Σ p_j unless every item fits.
func GreedySolve(inst *knapsack.Instance, opts ...Option) (*Result, error) {
	o, _, cancel, err := resolveOptions(opts)
	defer cancel()
	if err != nil {
		return nil, err
	}
	tr := newTracker(inst, o)
	if inst.AllItemsFit() {
		allItemsFit(inst, tr)
		return tr.finish(), nil
	}

	ps, err := partialsort.New(inst, partialsort.WithSeed(o.Seed))
	if err != nil {
		return nil, err
	}
	forward, backward, err := Greedy(inst, ps)
	if err != nil {
		return nil, err
	}
	tr.updateSolution(forward, "forward")
	tr.updateSolution(backward, "backward")
	return tr.finish(), nil
}

// allItemsFit records the trivial optimum: every item, value = bound = Σ p_j.
func allItemsFit(inst *knapsack.Instance, tr *tracker) {
	sol := knapsack.NewSolution(inst)
	sol.Fill()
	tr.updateSolution(sol, "all items fit (solution)")
	tr.updateBound(tr.value(), "all items fit (bound)")
}
