// SPDX-License-Identifier: MIT

package partialsort

import (
	"fmt"
	"slices"
)

// MoveItemToCore relocates the item at pos to newPos, the next position the
// search will process, shifting everything in between by one.
//
// Left of the break item (pos < newPos): an item taken from a left interval
// makes every closer interval, the mandatory block and the sorted prefix
// slide one position left; the sorted region grows by one. Right of the
// break item the mirror image applies. The initial core grows by one on the
// side of the move, so the moved item is bounded by the break item.
//
// Errors: ErrInvalidMove when pos is out of range, in a reduced block, on
// the other side of the break item than newPos, or when newPos is outside
// the sorted region.
//
// Complexity: O(n) worst case (one shift per interval plus the sorted run).
func (ps *PartialSort) MoveItemToCore(pos, newPos int) error {
	n := ps.inst.NumberOfItems()
	switch {
	case pos < 0 || pos >= n:
		return fmt.Errorf("%w: position %d outside [0, %d)", ErrInvalidMove, pos, n)
	case pos < ps.breakItemPos && newPos >= ps.breakItemPos:
		return fmt.Errorf("%w: %d → %d crosses the break item", ErrInvalidMove, pos, newPos)
	case pos >= ps.breakItemPos && newPos < ps.breakItemPos:
		return fmt.Errorf("%w: %d → %d crosses the break item", ErrInvalidMove, pos, newPos)
	case newPos < ps.firstSorted || newPos > ps.lastSorted:
		return fmt.Errorf("%w: target %d outside sorted region [%d, %d]",
			ErrInvalidMove, newPos, ps.firstSorted, ps.lastSorted)
	case ps.FirstReducedItemPos() <= pos && pos < ps.firstSorted:
		return fmt.Errorf("%w: position %d is mandatory", ErrInvalidMove, pos)
	case ps.lastSorted < pos && pos <= ps.LastReducedItemPos():
		return fmt.Errorf("%w: position %d was dropped", ErrInvalidMove, pos)
	case pos < ps.breakItemPos && pos >= ps.firstSorted && pos > newPos:
		return fmt.Errorf("%w: %d is already right of target %d", ErrInvalidMove, pos, newPos)
	case pos >= ps.breakItemPos && pos <= ps.lastSorted && pos < newPos:
		return fmt.Errorf("%w: %d is already left of target %d", ErrInvalidMove, pos, newPos)
	}

	id := ps.sorted[pos]
	if pos < ps.breakItemPos {
		ps.moveLeft(pos, newPos)
	} else {
		ps.moveRight(pos, newPos)
	}
	ps.sorted[newPos] = id
	return nil
}

// moveLeft carries the hole left by pos to newPos, left side.
func (ps *PartialSort) moveLeft(pos, newPos int) {
	if pos < ps.FirstReducedItemPos() {
		var iv *Interval
		for i := 0; i < len(ps.intervalsLeft); {
			iv = &ps.intervalsLeft[i]
			if iv.Last < pos {
				i++
				continue
			}
			ps.sorted[pos] = ps.sorted[iv.Last]
			pos = iv.Last
			iv.Last--
			if i+1 < len(ps.intervalsLeft) {
				ps.intervalsLeft[i+1].First--
			}
			if iv.First > iv.Last {
				ps.intervalsLeft = slices.Delete(ps.intervalsLeft, i, i+1)
			} else {
				i++
			}
		}
		ps.firstSorted--
	}
	if pos < ps.firstSorted {
		// Last mandatory item fills the hole at the front of the block.
		ps.sorted[pos] = ps.sorted[ps.firstSorted]
		pos = ps.firstSorted
	}
	for pos != newPos {
		ps.sorted[pos] = ps.sorted[pos+1]
		pos++
	}
	ps.initialCoreFirst--
}

// moveRight is the mirror of moveLeft.
func (ps *PartialSort) moveRight(pos, newPos int) {
	if pos > ps.LastReducedItemPos() {
		var iv *Interval
		for i := 0; i < len(ps.intervalsRight); {
			iv = &ps.intervalsRight[i]
			if iv.First > pos {
				i++
				continue
			}
			ps.sorted[pos] = ps.sorted[iv.First]
			pos = iv.First
			iv.First++
			if i+1 < len(ps.intervalsRight) {
				ps.intervalsRight[i+1].Last++
			}
			if iv.First > iv.Last {
				ps.intervalsRight = slices.Delete(ps.intervalsRight, i, i+1)
			} else {
				i++
			}
		}
		ps.lastSorted++
	}
	if pos > ps.lastSorted {
		ps.sorted[pos] = ps.sorted[ps.lastSorted]
		pos = ps.lastSorted
	}
	for pos != newPos {
		ps.sorted[pos] = ps.sorted[pos-1]
		pos--
	}
	ps.initialCoreLast++
}
