// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// addItem merges the frontier with a copy of itself that also takes the
// item at position t. Both inputs are sorted by weight, so one linear pass
// produces the new frontier, sorted and free of dominated states.
func (e *pdEngine) addItem() {
	var (
		inst = e.inst
		c    = inst.Capacity()
		it   = inst.Item(e.ps.ItemID(e.t))
	)
	e.window.AddElement(e.t)
	e.best.partial = e.window.Remove(e.best.partial, e.t)

	sx := e.ps.BoundItemLeft(e.s, e.tr.value())
	tx := e.ps.BoundItemRight(e.t+1, e.tr.value())
	maxWeight := c + e.remainingWeight - e.ps.MandatoryItems().Weight()

	e.l = e.l[:0]
	var (
		n       = len(e.l0)
		i, j    int
		ubStep  knapsack.Profit
		st      state
		takeNew bool
	)
	for i < n || j < n {
		takeNew = i == n || (j < n && e.l0[i].weight > e.l0[j].weight+it.Weight)
		if takeNew {
			st = state{
				weight:  e.l0[j].weight + it.Weight,
				profit:  e.l0[j].profit + it.Profit,
				partial: e.window.Add(e.l0[j].partial, e.t),
			}
			j++
		} else {
			st = e.l0[i]
			st.partial = e.window.Remove(st.partial, e.t)
			i++
		}
		if st.weight > maxWeight || e.dominated(st) {
			continue
		}
		ub := e.stateBound(st, sx, tx)
		ubStep = max(ubStep, ub)
		if ub <= e.tr.value() {
			continue
		}
		if st.weight <= c && st.profit > e.tr.value() {
			e.tr.updateValue(st.profit, fmt.Sprintf("it %d (value)", e.t-e.s))
			e.best = st
		}
		e.push(st)
	}
	e.endStep(ubStep)
}

// removeItem merges the frontier with a copy of itself that gives up the
// item at position s.
func (e *pdEngine) removeItem() {
	var (
		inst = e.inst
		c    = inst.Capacity()
		it   = inst.Item(e.ps.ItemID(e.s))
	)
	e.window.AddElement(e.s)
	e.best.partial = e.window.Add(e.best.partial, e.s)

	sx := e.ps.BoundItemLeft(e.s-1, e.tr.value())
	tx := e.ps.BoundItemRight(e.t, e.tr.value())
	e.remainingWeight -= it.Weight
	maxWeight := c + e.remainingWeight - e.ps.MandatoryItems().Weight()

	e.l = e.l[:0]
	var (
		n        = len(e.l0)
		i, j     int
		ubStep   knapsack.Profit
		st       state
		takeKept bool
	)
	for i < n || j < n {
		takeKept = j == n || (i < n && e.l0[i].weight <= e.l0[j].weight-it.Weight)
		if takeKept {
			st = e.l0[i]
			st.partial = e.window.Add(st.partial, e.s)
			i++
		} else {
			st = state{
				weight:  e.l0[j].weight - it.Weight,
				profit:  e.l0[j].profit - it.Profit,
				partial: e.window.Remove(e.l0[j].partial, e.s),
			}
			j++
		}
		if st.weight > maxWeight || e.dominated(st) {
			continue
		}
		ub := e.stateBound(st, sx, tx)
		ubStep = max(ubStep, ub)
		if ub <= e.tr.value() {
			continue
		}
		if st.weight <= c && st.profit > e.tr.value() {
			e.tr.updateValue(st.profit, fmt.Sprintf("it %d (value)", e.t-e.s))
			e.best = st
		}
		e.push(st)
	}
	e.endStep(ubStep)
}

// dominated reports whether st is no more profitable than the last kept
// state, which is never heavier.
func (e *pdEngine) dominated(st state) bool {
	return len(e.l) > 0 && st.profit <= e.l[len(e.l)-1].profit
}

// push appends st, replacing a last state of equal weight.
func (e *pdEngine) push(st state) {
	if k := len(e.l) - 1; k >= 0 && e.l[k].weight == st.weight {
		e.l[k] = st
		return
	}
	e.l = append(e.l, st)
}

// stateBound relaxes the next item to add for feasible states and the next
// item to remove for overweight ones.
func (e *pdEngine) stateBound(st state, sx, tx knapsack.ItemID) knapsack.Profit {
	if st.weight <= e.inst.Capacity() {
		return knapsack.UpperBound(e.inst, st.profit, st.weight, tx)
	}
	return knapsack.UpperBoundReverse(e.inst, st.profit, st.weight, sx)
}

// endStep publishes the step bound and swaps the frontier buffers.
func (e *pdEngine) endStep(ubStep knapsack.Profit) {
	ubStep = max(ubStep, e.tr.value())
	if ubStep < e.tr.bound() {
		e.tr.updateBound(ubStep, fmt.Sprintf("it %d (bound)", e.t-e.s))
	}
	e.l0, e.l = e.l, e.l0
	e.tr.res.Stats.Iterations++
	e.tr.res.Stats.MaxFrontierSize = max(e.tr.res.Stats.MaxFrontierSize, len(e.l0))
}
