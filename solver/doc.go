// SPDX-License-Identifier: MIT

// Package solver implements exact and heuristic algorithms for the 0/1
// knapsack problem on top of the knapsack data model.
//
// 🚀 Algorithms
//
//	DynamicProgrammingPrimalDual - exact; minknap-style primal-dual dynamic
//	    programming over a lazily sorted core with bound pruning, a bounded
//	    partial-solution window and recursion on a residual instance.
//	Bellman                      - exact; full-table dynamic programming in
//	    O(n·C), used as an oracle and for small capacities.
//	Greedy / GreedySolve         - forward and backward greedy solutions next
//	    to the break item.
//	UpperBoundDantzig / DantzigSolve - the LP-relaxation bound.
//
// Every solver returns a *Result with a value (best lower bound), a bound
// (best upper bound) and, when available, a Solution whose profit equals the
// value. Without cancellation the exact algorithms finish with
// Value == Bound.
//
// Options (functional, see Options):
//
//	WithContext / WithTimeLimit  - cooperative cancellation; a cancelled run
//	                               returns its best result, not an error.
//	WithPartialSolutionSize      - window size in [1, 64] (default 64).
//	WithPairing                  - enable the pairing move.
//	WithSeed                     - pivot seed of the partial sort.
//	WithOnUpdate                 - observe value/bound/solution improvements.
//	WithLogger                   - charmbracelet/log logger for improvements.
//
// Concurrency: a single call is single-threaded except Bellman, which splits
// the items over two goroutines. Distinct calls may run concurrently.
package solver
