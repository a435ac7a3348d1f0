// SPDX-License-Identifier: MIT

// Package knapsack defines the data model of the 0/1 knapsack problem:
// items, immutable instances built through a validating builder, solutions
// with O(1) membership updates, the Dantzig-style bound functions used by
// every exact algorithm, and the plain-text instance and certificate formats.
//
// 🚀 What is the 0/1 knapsack problem?
//
//	Given n items, each with a positive weight w_j and a positive profit p_j,
//	and a capacity C, choose a subset S maximising Σ_{j∈S} p_j subject to
//	Σ_{j∈S} w_j ≤ C. Every item is either taken whole or left out.
//
// Model:
//
//	Item      - (Weight, Profit, Efficiency = Profit/Weight), immutable.
//	Instance  - ordered items + capacity + cached aggregates (O(1) access).
//	Solution  - membership flags + running weight/profit, bound to an Instance.
//
// Contracts:
//   - Instances are never mutated after Build; reduced problems are new
//     instances created by the caller.
//   - Weight and Profit are int64. All arithmetic that could leave that range
//     is rejected up front (see CheckBoundOverflow), never wrapped silently.
//   - Errors are package sentinels; branch with errors.Is.
//
// Quick example:
//
//	b := knapsack.NewInstanceBuilder()
//	b.SetCapacity(10)
//	b.AddItem(10, 5) // profit, weight
//	b.AddItem(6, 4)
//	b.AddItem(8, 6)
//	inst, err := b.Build()
//	if err != nil { ... }
//	sol := knapsack.NewSolution(inst)
//	_ = sol.Add(0)
//	_ = sol.Add(1)
//	fmt.Println(sol.Profit(), sol.Feasible()) // 16 true
package knapsack
