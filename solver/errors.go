// SPDX-License-Identifier: MIT

package solver

import "errors"

// Sentinel errors for solver execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrNoBreakItem is returned by Greedy and UpperBoundDantzig when the
	// sort has no break item (nil sorter or an all-fit instance).
	ErrNoBreakItem = errors.New("solver: no break item")

	// ErrInternal signals a broken internal consistency check (infeasible
	// reconstruction, profit mismatch, runaway recursion). It is never
	// expected; the result is discarded rather than reported wrong.
	ErrInternal = errors.New("solver: internal consistency check failed")

	// ErrInstanceTooLarge is returned by Bellman when its tables would
	// exceed MaxBellmanCells.
	ErrInstanceTooLarge = errors.New("solver: instance too large for table dynamic programming")
)
