// SPDX-License-Identifier: MIT

package solver

import (
	"time"

	"github.com/katalvlaran/knapsolver/knapsack"
)

// Result is the outcome of a solver call.
//
// Value is the best proven lower bound, Bound the best proven upper bound.
// Both move monotonically during a run (value up, bound down). Solution
// holds the best known feasible solution; it may lag behind Value after a
// cancellation, in which case HasSolution reports false.
type Result struct {
	Value    knapsack.Profit
	Bound    knapsack.Profit
	Solution *knapsack.Solution
	Time     time.Duration
	Stats    Stats
}

// Stats counts the work done by a call.
type Stats struct {
	// Iterations is the number of frontier merges (add or remove steps).
	Iterations int
	// MaxFrontierSize is the largest number of live states.
	MaxFrontierSize int
	// RecursiveCalls counts this call plus every nested residual solve.
	RecursiveCalls int
	// PairingMoves counts items moved into the core by pairing.
	PairingMoves int
}

// HasSolution reports whether Solution is feasible and realises Value.
func (r *Result) HasSolution() bool {
	return r.Solution != nil && r.Solution.Feasible() && r.Solution.Profit() == r.Value
}

// Optimal reports whether the value is proven optimal.
func (r *Result) Optimal() bool { return r.Value == r.Bound }

// Gap returns Bound − Value.
func (r *Result) Gap() knapsack.Profit { return r.Bound - r.Value }

// UpdateKind tells which part of a Result improved.
type UpdateKind int

const (
	// UpdateValue: a better lower bound (possibly without a solution yet).
	UpdateValue UpdateKind = iota
	// UpdateBound: a better upper bound.
	UpdateBound
	// UpdateSolution: a better feasible solution (also raises the value).
	UpdateSolution
)

// String returns "value", "bound" or "solution".
func (k UpdateKind) String() string {
	switch k {
	case UpdateValue:
		return "value"
	case UpdateBound:
		return "bound"
	case UpdateSolution:
		return "solution"
	}
	return "unknown"
}

// Update describes one improvement reported to the OnUpdate hook.
type Update struct {
	Kind    UpdateKind
	Value   knapsack.Profit
	Bound   knapsack.Profit
	Elapsed time.Duration
	// Comment names the step that produced the improvement, e.g. "greedy",
	// "dantzig upper bound" or "it 7 (bound)".
	Comment string
}
