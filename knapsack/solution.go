// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"strings"
)

// Solution is a subset of the items of one Instance with running totals.
//
// Add and Remove are O(1); contract violations (double add, removing an
// absent item, bad id) are reported as errors and leave the solution
// unchanged. A Solution is not safe for concurrent mutation.
type Solution struct {
	inst          *Instance
	contains      []bool
	numberOfItems int
	weight        Weight
	profit        Profit
}

// NewSolution returns the empty solution of inst.
//
// Complexity: O(n).
func NewSolution(inst *Instance) *Solution {
	return &Solution{
		inst:     inst,
		contains: make([]bool, inst.NumberOfItems()),
	}
}

// Instance returns the instance the solution belongs to.
func (s *Solution) Instance() *Instance { return s.inst }

// Contains reports whether item id is in the solution. Out-of-range ids
// report false.
func (s *Solution) Contains(id ItemID) bool {
	return id >= 0 && id < len(s.contains) && s.contains[id]
}

// NumberOfItems returns |S|.
func (s *Solution) NumberOfItems() int { return s.numberOfItems }

// Weight returns Σ_{j∈S} w_j.
func (s *Solution) Weight() Weight { return s.weight }

// Profit returns Σ_{j∈S} p_j.
func (s *Solution) Profit() Profit { return s.profit }

// Feasible reports whether Weight() ≤ capacity.
func (s *Solution) Feasible() bool { return s.weight <= s.inst.capacity }

// Add inserts item id.
//
// Errors: ErrItemOutOfRange, ErrItemAlreadyIncluded.
// Complexity: O(1).
func (s *Solution) Add(id ItemID) error {
	if id < 0 || id >= len(s.contains) {
		return fmt.Errorf("%w: add %d", ErrItemOutOfRange, id)
	}
	if s.contains[id] {
		return fmt.Errorf("%w: add %d", ErrItemAlreadyIncluded, id)
	}
	it := s.inst.items[id]
	s.contains[id] = true
	s.numberOfItems++
	s.weight += it.Weight
	s.profit += it.Profit
	return nil
}

// Remove deletes item id.
//
// Errors: ErrItemOutOfRange, ErrItemNotIncluded.
// Complexity: O(1).
func (s *Solution) Remove(id ItemID) error {
	if id < 0 || id >= len(s.contains) {
		return fmt.Errorf("%w: remove %d", ErrItemOutOfRange, id)
	}
	if !s.contains[id] {
		return fmt.Errorf("%w: remove %d", ErrItemNotIncluded, id)
	}
	it := s.inst.items[id]
	s.contains[id] = false
	s.numberOfItems--
	s.weight -= it.Weight
	s.profit -= it.Profit
	return nil
}

// Fill adds every item not yet in the solution.
//
// Complexity: O(n).
func (s *Solution) Fill() {
	for id := range s.contains {
		if !s.contains[id] {
			// id is in range and absent; Add cannot fail.
			_ = s.Add(id)
		}
	}
}

// Items returns the included ids in ascending order.
//
// Complexity: O(n).
func (s *Solution) Items() []ItemID {
	out := make([]ItemID, 0, s.numberOfItems)
	for id, in := range s.contains {
		if in {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns an independent copy bound to the same instance.
//
// Complexity: O(n).
func (s *Solution) Clone() *Solution {
	c := *s
	c.contains = make([]bool, len(s.contains))
	copy(c.contains, s.contains)
	return &c
}

// Equal reports whether both solutions select the same items of the same instance.
//
// Complexity: O(n).
func (s *Solution) Equal(o *Solution) bool {
	if s.inst != o.inst || s.numberOfItems != o.numberOfItems {
		return false
	}
	for id := range s.contains {
		if s.contains[id] != o.contains[id] {
			return false
		}
	}
	return true
}

// String formats the solution as "items=[...] weight=W/C profit=P".
func (s *Solution) String() string {
	var sb strings.Builder
	sb.WriteString("items=[")
	for i, id := range s.Items() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", id)
	}
	fmt.Fprintf(&sb, "] weight=%d/%d profit=%d", s.weight, s.inst.capacity, s.profit)
	return sb.String()
}
