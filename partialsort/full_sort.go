// SPDX-License-Identifier: MIT

package partialsort

import (
	"slices"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// FullSort is the eager counterpart of PartialSort: every item sorted by
// decreasing efficiency (ties by id) plus the break solution.
type FullSort struct {
	inst          *knapsack.Instance
	sorted        []knapsack.ItemID
	breakSolution *knapsack.Solution
	breakItemID   knapsack.ItemID
	breakItemPos  int
}

// NewFullSort sorts inst.
//
// Errors: ErrAllItemsFit, knapsack.ErrArithmeticOverflow.
// Complexity: O(n log n).
func NewFullSort(inst *knapsack.Instance) (*FullSort, error) {
	if inst.AllItemsFit() {
		return nil, ErrAllItemsFit
	}
	if err := knapsack.CheckBoundOverflow(inst); err != nil {
		return nil, err
	}
	fs := &FullSort{
		inst:          inst,
		sorted:        make([]knapsack.ItemID, inst.NumberOfItems()),
		breakSolution: knapsack.NewSolution(inst),
		breakItemID:   knapsack.NoItem,
		breakItemPos:  -1,
	}
	for i := range fs.sorted {
		fs.sorted[i] = i
	}
	slices.SortFunc(fs.sorted, func(a, b knapsack.ItemID) int {
		ia, ib := inst.Item(a), inst.Item(b)
		lhs, rhs := ia.Profit*ib.Weight, ib.Profit*ia.Weight
		switch {
		case lhs > rhs:
			return -1
		case lhs < rhs:
			return 1
		}
		return a - b
	})
	for pos, id := range fs.sorted {
		if fs.breakSolution.Weight()+inst.Item(id).Weight > inst.Capacity() {
			fs.breakItemID = id
			fs.breakItemPos = pos
			break
		}
		_ = fs.breakSolution.Add(id)
	}
	return fs, nil
}

// BreakSolution returns the greedy prefix solution. Callers must not mutate it.
func (fs *FullSort) BreakSolution() *knapsack.Solution { return fs.breakSolution }

// BreakItemID returns the first item of the sorted order that does not fit.
func (fs *FullSort) BreakItemID() knapsack.ItemID { return fs.breakItemID }

// BreakItemPos returns the position of the break item.
func (fs *FullSort) BreakItemPos() int { return fs.breakItemPos }

// ItemID returns the item at sorted position pos.
func (fs *FullSort) ItemID(pos int) knapsack.ItemID { return fs.sorted[pos] }

// SortedItems returns a copy of the full permutation.
func (fs *FullSort) SortedItems() []knapsack.ItemID { return slices.Clone(fs.sorted) }
