// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knapsolver/knapsack"
	"golang.org/x/sync/errgroup"
)

// MaxBellmanCells caps the table size of Bellman (cells of 8 bytes).
const MaxBellmanCells = 1 << 24

// bellmanTable is a flat (rows × cols) profit table over a contiguous item
// range: cell (r, c) is the best profit of the first r items of the range
// within capacity c.
type bellmanTable struct {
	first int
	rows  int
	cols  int
	cells []knapsack.Profit
}

func (bt *bellmanTable) at(r int, c knapsack.Weight) knapsack.Profit {
	return bt.cells[r*bt.cols+int(c)]
}

// Bellman solves inst exactly with table dynamic programming in O(n·C) time
// and memory. The items are split in two halves whose tables are filled
// concurrently and combined over the capacity split.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrInstanceTooLarge when (n + 2)·(C + 1) > MaxBellmanCells.
//
// A cancelled context returns the result reached so far (no solution).
func Bellman(inst *knapsack.Instance, opts ...Option) (*Result, error) {
	o, ctx, cancel, err := resolveOptions(opts)
	defer cancel()
	if err != nil {
		return nil, err
	}
	tr := newTracker(inst, o)
	if inst.AllItemsFit() {
		allItemsFit(inst, tr)
		return tr.finish(), nil
	}

	n, c := inst.NumberOfItems(), inst.Capacity()
	if c+1 > knapsack.Weight(MaxBellmanCells/(n+2)) {
		return nil, fmt.Errorf("%w: %d items, capacity %d", ErrInstanceTooLarge, n, c)
	}

	mid := n / 2
	var left, right *bellmanTable
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = fillTable(gctx, inst, 0, mid)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = fillTable(gctx, inst, mid, n)
		return err
	})
	if err = g.Wait(); err != nil {
		if ctx.Err() != nil {
			return tr.finish(), nil
		}
		return nil, err
	}

	// Best split of the capacity between the halves.
	var (
		bestSplit knapsack.Weight
		best      = knapsack.Profit(-1)
	)
	for cl := knapsack.Weight(0); cl <= c; cl++ {
		if p := left.at(left.rows-1, cl) + right.at(right.rows-1, c-cl); p > best {
			best, bestSplit = p, cl
		}
	}

	sol := knapsack.NewSolution(inst)
	if err = left.backtrack(inst, sol, bestSplit); err != nil {
		return nil, err
	}
	if err = right.backtrack(inst, sol, c-bestSplit); err != nil {
		return nil, err
	}
	if sol.Profit() != best || !sol.Feasible() {
		return nil, fmt.Errorf("%w: table profit %d, solution %s", ErrInternal, best, sol)
	}
	tr.updateSolution(sol, "algorithm end (solution)")
	tr.updateBound(tr.value(), "algorithm end (bound)")
	return tr.finish(), nil
}

// fillTable computes the table of items [first, last). The context is
// polled once per row.
func fillTable(ctx context.Context, inst *knapsack.Instance, first, last int) (*bellmanTable, error) {
	cols := int(inst.Capacity()) + 1
	bt := &bellmanTable{
		first: first,
		rows:  last - first + 1,
		cols:  cols,
	}
	bt.cells = make([]knapsack.Profit, bt.rows*cols)
	for r := 1; r < bt.rows; r++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		it := inst.Item(first + r - 1)
		prev, cur := bt.cells[(r-1)*cols:r*cols], bt.cells[r*cols:(r+1)*cols]
		copy(cur, prev)
		for w := int(it.Weight); w < cols; w++ {
			if take := prev[w-int(it.Weight)] + it.Profit; take > cur[w] {
				cur[w] = take
			}
		}
	}
	return bt, nil
}

// backtrack adds to sol the items of an optimal selection of the table's
// range within capacity c.
func (bt *bellmanTable) backtrack(inst *knapsack.Instance, sol *knapsack.Solution, c knapsack.Weight) error {
	for r := bt.rows - 1; r > 0; r-- {
		if bt.at(r, c) == bt.at(r-1, c) {
			continue
		}
		id := bt.first + r - 1
		if err := sol.Add(id); err != nil {
			return fmt.Errorf("%w: bellman backtrack: %v", ErrInternal, err)
		}
		c -= inst.Item(id).Weight
	}
	return nil
}
