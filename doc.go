// Package knapsolver solves the 0/1 knapsack problem exactly, from a few
// items to millions.
//
// 🚀 What is knapsolver?
//
//	A small, dependency-light library and CLI that brings together:
//		• Data model: instances, solutions, bounds, file formats, certificates
//		• Lazy core sorting around the break item (partialsort)
//		• Bounded partial-solution windows (partialset)
//		• Solvers: primal-dual dynamic programming (exact), Bellman table
//		  dynamic programming (exact oracle), greedy, Dantzig bound
//		• Generators: uncorrelated, weakly/strongly/inverse strongly
//		  correlated, subset-sum and tie instances
//
// ✨ Why choose knapsolver?
//
//   - Exact: every run without cancellation ends with value == bound
//   - Observable: OnUpdate hooks and structured logging of improvements
//   - Cancellable: context and time limits return the best result so far
//   - Reproducible: seeded pivots and generators
//
// Under the hood, everything is organized under these packages:
//
//	knapsack/     - Instance, Solution, bounds, instance formats, certificates
//	partialset/   - sliding-window membership sets for frontier states
//	partialsort/  - lazy efficiency sorting, break solution, core moves
//	solver/       - DynamicProgrammingPrimalDual, Bellman, Greedy, Dantzig
//	gen/          - reproducible random instance families
//	internal/cli/ - cobra commands behind cmd/knapsolver
//
// Quick start:
//
//	b := knapsack.NewInstanceBuilder()
//	b.SetCapacity(10)
//	b.AddItem(10, 5)
//	b.AddItem(6, 4)
//	b.AddItem(8, 6)
//	inst, _ := b.Build()
//	res, _ := solver.DynamicProgrammingPrimalDual(inst)
//	fmt.Println(res.Value, res.Solution.Items()) // 16 [0 1]
package knapsolver
