// SPDX-License-Identifier: MIT

package solver

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/knapsolver/knapsack"
)

// tracker owns the Result of one call and applies only strict
// improvements, notifying the hook and the logger on each.
type tracker struct {
	res      *Result
	start    time.Time
	onUpdate func(Update)
	logger   *log.Logger
}

// newTracker starts a result at value 0, bound Σ p_j and the empty solution.
func newTracker(inst *knapsack.Instance, o Options) *tracker {
	return &tracker{
		res: &Result{
			Bound:    inst.TotalItemProfit(),
			Solution: knapsack.NewSolution(inst),
		},
		start:    time.Now(),
		onUpdate: o.OnUpdate,
		logger:   o.Logger,
	}
}

func (tr *tracker) value() knapsack.Profit { return tr.res.Value }
func (tr *tracker) bound() knapsack.Profit { return tr.res.Bound }

// updateSolution accepts sol when it is feasible and strictly better than the
// value, or, while the value has no realising solution yet, at least as good.
func (tr *tracker) updateSolution(sol *knapsack.Solution, comment string) {
	if !sol.Feasible() {
		return
	}
	better := sol.Profit() > tr.res.Value
	if !tr.res.HasSolution() {
		better = sol.Profit() >= tr.res.Value
	}
	if !better {
		return
	}
	tr.res.Solution = sol.Clone()
	tr.res.Value = sol.Profit()
	tr.notify(UpdateSolution, comment)
}

// updateValue raises the value without a solution.
func (tr *tracker) updateValue(v knapsack.Profit, comment string) {
	if v <= tr.res.Value {
		return
	}
	tr.res.Value = v
	tr.notify(UpdateValue, comment)
}

// updateBound lowers the bound.
func (tr *tracker) updateBound(b knapsack.Profit, comment string) {
	if b >= tr.res.Bound {
		return
	}
	tr.res.Bound = b
	tr.notify(UpdateBound, comment)
}

func (tr *tracker) notify(kind UpdateKind, comment string) {
	elapsed := time.Since(tr.start)
	tr.res.Time = elapsed
	tr.logger.Debug(comment, "kind", kind, "value", tr.res.Value, "bound", tr.res.Bound, "elapsed", elapsed)
	tr.onUpdate(Update{
		Kind:    kind,
		Value:   tr.res.Value,
		Bound:   tr.res.Bound,
		Elapsed: elapsed,
		Comment: comment,
	})
}

// finish stamps the total time and returns the result.
func (tr *tracker) finish() *Result {
	tr.res.Time = time.Since(tr.start)
	return tr.res
}
