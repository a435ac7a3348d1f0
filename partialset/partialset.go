// SPDX-License-Identifier: MIT

// Package partialset encodes membership of the most recently touched
// elements (at most 64) in a single machine word.
//
// The primal-dual knapsack search keeps, for every frontier state, which of
// the last few core items it contains. A Factory maps up to Size() elements
// onto bit positions in arrival order; once the window is full, registering
// a new element evicts the oldest one and hands its bit to the newcomer.
// Sets are plain uint64 values, so copying a state copies its set.
//
// Contracts:
//   - A bit that changes owner is stale in every Set until the caller
//     overwrites it with Add or Remove for the new owner. The search does so
//     for all live states on each step.
//   - Add/Remove/Contains on an element outside the window are no-ops
//     (false for Contains).
//
// Complexity: every operation is O(1).
package partialset

import (
	"errors"
	"fmt"
)

// MaxSize is the largest window a Set can represent.
const MaxSize = 64

// ErrWindowSize indicates a window size outside [1, MaxSize] or a negative
// number of elements.
var ErrWindowSize = errors.New("partialset: window size out of range")

// Set is a partial solution restricted to the factory's current window.
type Set uint64

// Factory assigns window bits to elements.
type Factory struct {
	size int
	// elementBit[e] is e's bit, or -1 when e is outside the window.
	elementBit []int
	// bitElement[b] is the element owning bit b, or -1.
	bitElement []int
	// next is the bit handed out on the next registration (oldest owner).
	next  int
	count int
}

// NewFactory returns a factory over elements [0, numberOfElements) with the
// given window size.
//
// Errors: ErrWindowSize.
func NewFactory(numberOfElements, size int) (*Factory, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, size)
	}
	if numberOfElements < 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrWindowSize, numberOfElements)
	}
	f := &Factory{
		size:       size,
		elementBit: make([]int, numberOfElements),
		bitElement: make([]int, size),
	}
	for i := range f.elementBit {
		f.elementBit[i] = -1
	}
	for i := range f.bitElement {
		f.bitElement[i] = -1
	}
	return f, nil
}

// Size returns the window capacity.
func (f *Factory) Size() int { return f.size }

// Len returns the number of elements currently in the window.
func (f *Factory) Len() int { return f.count }

// InWindow reports whether e currently owns a bit.
func (f *Factory) InWindow(e int) bool {
	return e >= 0 && e < len(f.elementBit) && f.elementBit[e] >= 0
}

// AddElement registers e, evicting the oldest element when the window is
// full. Registering an element already in the window does nothing.
// It returns the evicted element, or -1.
func (f *Factory) AddElement(e int) int {
	if f.elementBit[e] >= 0 {
		return -1
	}
	b := f.next
	evicted := f.bitElement[b]
	if evicted >= 0 {
		f.elementBit[evicted] = -1
	} else {
		f.count++
	}
	f.bitElement[b] = e
	f.elementBit[e] = b
	f.next = (b + 1) % f.size
	return evicted
}

// Add returns s with e included.
func (f *Factory) Add(s Set, e int) Set {
	if !f.InWindow(e) {
		return s
	}
	return s | 1<<uint(f.elementBit[e])
}

// Remove returns s with e excluded.
func (f *Factory) Remove(s Set, e int) Set {
	if !f.InWindow(e) {
		return s
	}
	return s &^ (1 << uint(f.elementBit[e]))
}

// Contains reports whether e is in s.
func (f *Factory) Contains(s Set, e int) bool {
	if !f.InWindow(e) {
		return false
	}
	return s&(1<<uint(f.elementBit[e])) != 0
}

// Elements returns the window in arrival order, oldest first.
func (f *Factory) Elements() []int {
	out := make([]int, 0, f.count)
	for i := 0; i < f.size; i++ {
		b := (f.next + i) % f.size
		if e := f.bitElement[b]; e >= 0 {
			out = append(out, e)
		}
	}
	return out
}
