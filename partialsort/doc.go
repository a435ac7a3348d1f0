// SPDX-License-Identifier: MIT

// Package partialsort orders knapsack items by efficiency only as far as
// an exact search actually needs.
//
// A full O(n log n) sort is wasted work for the primal-dual dynamic program:
// it touches only a small "core" of items around the break item and proves
// everything else fixed by bounds. PartialSort therefore
//
//  1. runs a quickselect-style three-way partition (random pivot, exact
//     cross-multiplied comparisons) that narrows on the break position,
//     leaving unresolved blocks on two interval stacks: left (items more
//     efficient than the break item) and right (less efficient);
//  2. expands the sorted region lazily: BoundItemLeft/BoundItemRight pop
//     the stack top adjacent to the sorted region, discard items whose
//     single-item bound cannot beat the caller's lower bound (left ones
//     become mandatory, right ones are never promoted), and sort the rest;
//  3. supports MoveItemToCore, which relocates one item next to the core
//     while keeping both stacks contiguous.
//
// Position layout (n items):
//
//	[ left intervals | mandatory | sorted ... break ... sorted | excluded | right intervals ]
//	0      first_reduced      first_sorted        last_sorted      last_reduced          n-1
//
// Check is the authoritative invariant definition and is run at the end of
// New. FullSort is the plain full-sort counterpart with the same break
// accessors.
//
// Determinism: the pivot RNG is seeded (WithSeed, default seed 1), so the
// same instance and seed always produce the same permutation.
package partialsort
