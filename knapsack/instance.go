// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"math"
)

// Instance is an immutable 0/1 knapsack instance: ordered items plus a
// capacity, with aggregates cached at build time.
//
// All accessors are O(1). Use InstanceBuilder to create one.
type Instance struct {
	capacity Weight
	items    []Item

	totalProfit          Profit
	totalWeight          Weight
	highestItemProfit    Profit
	highestItemWeight    Weight
	maxEfficiencyItemID  ItemID
	capacityFitsAllItems bool
}

// Capacity returns the knapsack capacity.
func (inst *Instance) Capacity() Weight { return inst.capacity }

// NumberOfItems returns n.
func (inst *Instance) NumberOfItems() int { return len(inst.items) }

// Item returns the item with the given id. The id must be valid;
// use NumberOfItems to bound iterations.
func (inst *Instance) Item(id ItemID) Item { return inst.items[id] }

// Items returns a copy of the item slice in id order.
//
// Complexity: O(n).
func (inst *Instance) Items() []Item {
	out := make([]Item, len(inst.items))
	copy(out, inst.items)
	return out
}

// TotalItemProfit returns Σ p_j.
func (inst *Instance) TotalItemProfit() Profit { return inst.totalProfit }

// TotalItemWeight returns Σ w_j.
func (inst *Instance) TotalItemWeight() Weight { return inst.totalWeight }

// HighestItemProfit returns max p_j (0 for an empty instance).
func (inst *Instance) HighestItemProfit() Profit { return inst.highestItemProfit }

// HighestItemWeight returns max w_j (0 for an empty instance).
func (inst *Instance) HighestItemWeight() Weight { return inst.highestItemWeight }

// MaxEfficiencyItemID returns the id of a most efficient item, or NoItem
// for an empty instance. Ties keep the lowest id.
func (inst *Instance) MaxEfficiencyItemID() ItemID { return inst.maxEfficiencyItemID }

// AllItemsFit reports whether Σ w_j ≤ capacity, i.e. taking every item is optimal.
func (inst *Instance) AllItemsFit() bool { return inst.capacityFitsAllItems }

// InstanceBuilder accumulates a capacity and items, then validates and
// freezes them into an Instance. The zero value is ready to use.
type InstanceBuilder struct {
	capacity Weight
	items    []Item
}

// NewInstanceBuilder returns an empty builder.
func NewInstanceBuilder() *InstanceBuilder { return &InstanceBuilder{} }

// SetCapacity sets the knapsack capacity.
func (b *InstanceBuilder) SetCapacity(capacity Weight) { b.capacity = capacity }

// AddItem appends an item and returns its id. Validation is deferred to Build.
func (b *InstanceBuilder) AddItem(profit Profit, weight Weight) ItemID {
	b.items = append(b.items, Item{Weight: weight, Profit: profit})
	return len(b.items) - 1
}

// NumberOfItems returns the number of items added so far.
func (b *InstanceBuilder) NumberOfItems() int { return len(b.items) }

// Build validates the accumulated data and returns the frozen Instance.
//
// Errors:
//   - ErrInvalidInstance: negative capacity, weight ≤ 0, profit ≤ 0 or
//     weight > capacity (wrapped with the item id).
//   - ErrArithmeticOverflow: Σ p_j or Σ w_j leaves the int64 range.
//
// Complexity: O(n).
func (b *InstanceBuilder) Build() (*Instance, error) {
	if b.capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidInstance, b.capacity)
	}

	inst := &Instance{
		capacity:            b.capacity,
		items:               make([]Item, len(b.items)),
		maxEfficiencyItemID: NoItem,
	}
	var (
		id ItemID
		it Item
	)
	for id, it = range b.items {
		if it.Weight <= 0 {
			return nil, fmt.Errorf("%w: item %d has weight %d", ErrInvalidInstance, id, it.Weight)
		}
		if it.Profit <= 0 {
			return nil, fmt.Errorf("%w: item %d has profit %d", ErrInvalidInstance, id, it.Profit)
		}
		if it.Weight > b.capacity {
			return nil, fmt.Errorf("%w: item %d weight %d exceeds capacity %d",
				ErrInvalidInstance, id, it.Weight, b.capacity)
		}
		if inst.totalProfit > math.MaxInt64-it.Profit {
			return nil, fmt.Errorf("%w: total profit", ErrArithmeticOverflow)
		}
		if inst.totalWeight > math.MaxInt64-it.Weight {
			return nil, fmt.Errorf("%w: total weight", ErrArithmeticOverflow)
		}

		it.Efficiency = float64(it.Profit) / float64(it.Weight)
		inst.items[id] = it
		inst.totalProfit += it.Profit
		inst.totalWeight += it.Weight
		if it.Profit > inst.highestItemProfit {
			inst.highestItemProfit = it.Profit
		}
		if it.Weight > inst.highestItemWeight {
			inst.highestItemWeight = it.Weight
		}
	}

	// Exact max-efficiency scan needs the overflow guard first.
	if err := checkEfficiencyProducts(inst); err == nil {
		for id = range inst.items {
			if inst.maxEfficiencyItemID == NoItem ||
				EfficiencyLess(inst.items[inst.maxEfficiencyItemID], inst.items[id]) {
				inst.maxEfficiencyItemID = id
			}
		}
	} else {
		for id = range inst.items {
			if inst.maxEfficiencyItemID == NoItem ||
				inst.items[id].Efficiency > inst.items[inst.maxEfficiencyItemID].Efficiency {
				inst.maxEfficiencyItemID = id
			}
		}
	}
	inst.capacityFitsAllItems = inst.totalWeight <= inst.capacity

	return inst, nil
}
