// SPDX-License-Identifier: MIT

// Primal-dual dynamic programming (minknap family).
//
// DynamicProgrammingPrimalDual solves 0/1 knapsack exactly by growing a core
// of items around the break item, one item per step on each side:
//
//  1. Start from the break solution: every item left of the break position
//     taken, every item from the break position on left out. The frontier
//     is the single state (w̄, p̄).
//  2. Add step (t → t+1): every state may additionally take item t.
//     Remove step (s → s−1): every state may give up item s.
//     Merging keeps states strictly increasing in weight and profit
//     (dominance), drops states heavier than the capacity plus the weight
//     still removable, and drops states whose bound cannot beat the value.
//  3. Bounds relax the next boundary item on the side that can still repair
//     the state: forward for feasible states, reverse for overweight ones.
//     The largest surviving bound is a global upper bound.
//  4. Stop when value == bound, when both sides are exhausted or when the
//     frontier empties; the value is then optimal.
//  5. Each state remembers membership of the last ≤ 64 core items only. If
//     that window does not reproduce the value, the unresolved core items
//     outside the window form a residual instance that is solved
//     recursively with the residual capacity.
//
// Pairing (optional): each time the frontier reaches another power of ten
// (from 10⁴), the single outer item that best completes some state is moved
// next to the core and processed first.
//
// Complexity:
//   - Time: O(Σ_steps |frontier|) merges, frontier ≤ min(2^core, C + w̄).
//   - Memory: two frontier buffers plus O(n) for sorting and the window.
//
// Cancellation: the context is polled between steps and around recursion;
// a cancelled run returns its best value and bound without error.

package solver

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/katalvlaran/knapsolver/partialset"
	"github.com/katalvlaran/knapsolver/partialsort"
)

// pairingStart is the first frontier size that triggers a pairing move.
const pairingStart = 10_000

// state is a frontier entry: an implicit solution that agrees with the
// break solution outside the processed core.
type state struct {
	weight  knapsack.Weight
	profit  knapsack.Profit
	partial partialset.Set
}

// pdEngine holds all search data of one (possibly nested) call.
type pdEngine struct {
	ctx  context.Context
	inst *knapsack.Instance
	opts Options
	tr   *tracker

	ps     *partialsort.PartialSort
	window *partialset.Factory

	// s is the next position to remove, t the next to add.
	s, t int
	// remainingWeight is the weight of the left items still removable.
	remainingWeight knapsack.Weight

	l0, l []state
	best  state
}

// DynamicProgrammingPrimalDual solves inst exactly.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - knapsack.ErrArithmeticOverflow when bounds could overflow int64.
//   - ErrInternal if a consistency check fails (never expected).
//
// A cancelled context or an expired time limit is not an error: the result
// carries the best value and bound reached, with Optimal() reporting false
// unless optimality was already proven.
func DynamicProgrammingPrimalDual(inst *knapsack.Instance, opts ...Option) (*Result, error) {
	o, ctx, cancel, err := resolveOptions(opts)
	defer cancel()
	if err != nil {
		return nil, err
	}
	return solvePrimalDual(ctx, inst, o)
}

// solvePrimalDual is the recursive entry point.
func solvePrimalDual(ctx context.Context, inst *knapsack.Instance, o Options) (*Result, error) {
	if err := knapsack.CheckBoundOverflow(inst); err != nil {
		return nil, err
	}
	tr := newTracker(inst, o)
	tr.res.Stats.RecursiveCalls = 1

	if inst.AllItemsFit() {
		allItemsFit(inst, tr)
		return tr.finish(), nil
	}

	ps, err := partialsort.New(inst, partialsort.WithSeed(o.Seed))
	if err != nil {
		return nil, err
	}
	window, err := partialset.NewFactory(inst.NumberOfItems(), o.PartialSolutionSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	forward, backward, err := Greedy(inst, ps)
	if err != nil {
		return nil, err
	}
	tr.updateSolution(forward, "greedy")
	tr.updateSolution(backward, "greedy")

	ub, err := UpperBoundDantzig(inst, ps)
	if err != nil {
		return nil, err
	}
	tr.updateBound(ub, "dantzig upper bound")

	e := &pdEngine{
		ctx:    ctx,
		inst:   inst,
		opts:   o,
		tr:     tr,
		ps:     ps,
		window: window,
	}
	bs := ps.BreakSolution()
	e.l0 = append(e.l0, state{weight: bs.Weight(), profit: bs.Profit()})
	e.best = e.l0[0]
	e.s = ps.BreakItemPos() - 1
	e.t = ps.BreakItemPos()
	e.remainingWeight = bs.Weight()

	stopped, err := e.run()
	if err != nil {
		return nil, err
	}
	if stopped {
		return tr.finish(), nil
	}

	tr.updateBound(tr.value(), "algorithm end (bound)")
	if tr.res.Solution.Profit() == tr.bound() {
		return tr.finish(), nil
	}
	return e.reconstruct()
}

// canAdd reports whether an item can still enter from the right.
func (e *pdEngine) canAdd() bool {
	return !e.ps.IntervalsRightEmpty() || e.t <= e.ps.LastSortedItemPos()
}

// canRemove reports whether an item can still leave on the left.
func (e *pdEngine) canRemove() bool {
	return !e.ps.IntervalsLeftEmpty() || e.s >= e.ps.FirstSortedItemPos()
}

// cancelled polls the context.
func (e *pdEngine) cancelled() bool { return e.ctx.Err() != nil }

// closed reports whether value and bound met.
func (e *pdEngine) closed() bool { return e.tr.value() == e.tr.bound() }

// run expands the frontier until the search closes. stopped is true when
// the context ended the search early.
func (e *pdEngine) run() (stopped bool, err error) {
	nextPairing := pairingStart
	for len(e.l0) > 0 && (e.canRemove() || e.canAdd()) {
		if e.cancelled() {
			return true, nil
		}
		if e.closed() {
			break
		}

		if e.opts.Pairing && nextPairing <= len(e.l0) {
			nextPairing *= 10
			if e.canAdd() {
				if pos := e.findState(true); pos >= 0 {
					if err = e.ps.MoveItemToCore(pos, e.t); err != nil {
						return false, fmt.Errorf("%w: pairing move: %v", ErrInternal, err)
					}
					e.tr.res.Stats.PairingMoves++
					e.addItem()
					e.t++
					if e.cancelled() {
						return true, nil
					}
					if e.closed() {
						break
					}
				}
			}
			if e.canRemove() {
				if pos := e.findState(false); pos >= 0 {
					if err = e.ps.MoveItemToCore(pos, e.s); err != nil {
						return false, fmt.Errorf("%w: pairing move: %v", ErrInternal, err)
					}
					e.tr.res.Stats.PairingMoves++
					e.removeItem()
					e.s--
					if e.cancelled() {
						return true, nil
					}
					if e.closed() {
						break
					}
				}
			}
		}

		if e.canAdd() {
			e.addItem()
			e.t++
			if e.cancelled() {
				return true, nil
			}
			if e.closed() {
				break
			}
		}
		if e.canRemove() {
			e.removeItem()
			e.s--
			if e.cancelled() {
				return true, nil
			}
			if e.closed() {
				break
			}
		}
	}
	return false, nil
}

// reconstruct turns the best state into a solution: every item left of the
// processed core, plus the window members of the best state, plus an optimal
// completion of the residual instance when the window was too small.
func (e *pdEngine) reconstruct() (*Result, error) {
	var (
		inst = e.inst
		ps   = e.ps
		tr   = e.tr
		sol  = knapsack.NewSolution(inst)
		pos  int
		err  error
	)
	for pos = 0; pos < ps.FirstSortedItemPos(); pos++ {
		if err = sol.Add(ps.ItemID(pos)); err != nil {
			return nil, fmt.Errorf("%w: reconstruct prefix: %v", ErrInternal, err)
		}
	}
	for pos = ps.FirstSortedItemPos(); pos <= e.s; pos++ {
		if err = sol.Add(ps.ItemID(pos)); err != nil {
			return nil, fmt.Errorf("%w: reconstruct core: %v", ErrInternal, err)
		}
	}
	for pos = ps.FirstSortedItemPos(); pos <= ps.LastSortedItemPos(); pos++ {
		if !e.window.Contains(e.best.partial, pos) {
			continue
		}
		if err = sol.Add(ps.ItemID(pos)); err != nil {
			return nil, fmt.Errorf("%w: reconstruct window: %v", ErrInternal, err)
		}
	}
	if !sol.Feasible() {
		return nil, fmt.Errorf("%w: reconstructed solution is infeasible (%s)", ErrInternal, sol)
	}
	if sol.Profit() == tr.value() {
		tr.updateSolution(sol, "algorithm end (solution)")
		return tr.finish(), nil
	}

	// Residual instance: unresolved core items outside the window.
	subCapacity := inst.Capacity() - sol.Weight()
	sub := knapsack.NewInstanceBuilder()
	sub.SetCapacity(subCapacity)
	var sub2orig []knapsack.ItemID
	for pos = e.s + 1; pos <= ps.LastSortedItemPos(); pos++ {
		if e.window.InWindow(pos) {
			continue
		}
		id := ps.ItemID(pos)
		if inst.Item(id).Weight > subCapacity {
			continue
		}
		sub.AddItem(inst.Item(id).Profit, inst.Item(id).Weight)
		sub2orig = append(sub2orig, id)
	}
	if len(sub2orig) == 0 {
		return nil, fmt.Errorf("%w: profit %d below value %d with an empty residual instance",
			ErrInternal, sol.Profit(), tr.value())
	}
	subInst, err := sub.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: residual instance: %v", ErrInternal, err)
	}

	if e.cancelled() {
		return tr.finish(), nil
	}
	subRes, err := solvePrimalDual(e.ctx, subInst, e.subOptions())
	if err != nil {
		return nil, err
	}
	if e.cancelled() {
		return tr.finish(), nil
	}

	tr.res.Stats.RecursiveCalls += subRes.Stats.RecursiveCalls
	n := inst.NumberOfItems()
	if n <= e.opts.PartialSolutionSize && tr.res.Stats.RecursiveCalls > 1 {
		return nil, fmt.Errorf("%w: recursion with %d items and a window of %d",
			ErrInternal, n, e.opts.PartialSolutionSize)
	}
	if tr.res.Stats.RecursiveCalls > n {
		return nil, fmt.Errorf("%w: %d recursive calls for %d items", ErrInternal, tr.res.Stats.RecursiveCalls, n)
	}
	if !subRes.HasSolution() {
		return nil, fmt.Errorf("%w: residual solve returned no solution", ErrInternal)
	}

	for subID, origID := range sub2orig {
		if !subRes.Solution.Contains(subID) {
			continue
		}
		if err = sol.Add(origID); err != nil {
			return nil, fmt.Errorf("%w: merge residual solution: %v", ErrInternal, err)
		}
	}
	if sol.Profit() != tr.value() {
		return nil, fmt.Errorf("%w: final profit %d differs from value %d", ErrInternal, sol.Profit(), tr.value())
	}
	tr.updateSolution(sol, "algorithm end (solution)")
	return tr.finish(), nil
}

// subOptions keeps the algorithmic knobs and silences hooks and logging.
func (e *pdEngine) subOptions() Options {
	o := e.opts
	o.OnUpdate = func(Update) {}
	o.Logger = log.New(io.Discard)
	o.TimeLimit = 0
	return o
}
