// SPDX-License-Identifier: MIT

package partialsort

import "errors"

// ErrAllItemsFit indicates an instance whose items all fit; it has no break
// item and needs no sorting. Callers handle it as the trivial case.
var ErrAllItemsFit = errors.New("partialsort: all items fit in the knapsack")

// ErrInvariantViolated indicates that Check found the structure inconsistent.
// The wrapped message carries a dump of the intervals and the break item.
var ErrInvariantViolated = errors.New("partialsort: invariant violated")

// ErrInvalidMove indicates MoveItemToCore arguments outside the allowed ranges.
var ErrInvalidMove = errors.New("partialsort: invalid move to core")
