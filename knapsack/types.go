// SPDX-License-Identifier: MIT

package knapsack

// ItemID is the 0-based index of an item in its Instance.
type ItemID = int

// ItemPos is a position inside a sorted permutation of the items
// (see package partialsort). It is distinct from ItemID by intent only.
type ItemPos = int

// Weight is an item or solution weight.
type Weight = int64

// Profit is an item or solution profit.
type Profit = int64

// NoItem is the "no further item" sentinel accepted by the bound functions
// and returned by the partial sorting engine past its sorted region.
const NoItem ItemID = -1

// Item is a single knapsack item. Items are immutable once their Instance
// has been built.
type Item struct {
	// Weight is strictly positive and never exceeds the instance capacity.
	Weight Weight

	// Profit is strictly positive.
	Profit Profit

	// Efficiency caches Profit/Weight for reporting and tie inspection.
	// Exact comparisons never use it (see EfficiencyLess).
	Efficiency float64
}

// EfficiencyLess reports whether a is strictly less efficient than b,
// using the exact cross product a.p*b.w < b.p*a.w.
// Callers must have validated the instance with CheckBoundOverflow.
//
// Complexity: O(1).
func EfficiencyLess(a, b Item) bool {
	return a.Profit*b.Weight < b.Profit*a.Weight
}
