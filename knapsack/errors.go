// SPDX-License-Identifier: MIT

// errors.go - sentinel errors for the knapsack package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (item ids, line numbers) is attached with %w at the call site.
//   • Nothing in this package panics on user input.

package knapsack

import "errors"

// ErrInvalidInstance indicates that the builder rejected its input: an item
// with non-positive weight or profit, an item heavier than the capacity, or
// a negative capacity.
var ErrInvalidInstance = errors.New("knapsack: invalid instance")

// ErrArithmeticOverflow indicates that a bound or an aggregate computed on
// the instance could leave the int64 range.
var ErrArithmeticOverflow = errors.New("knapsack: arithmetic overflow")

// ErrItemOutOfRange indicates an item id outside [0, NumberOfItems).
var ErrItemOutOfRange = errors.New("knapsack: item id out of range")

// ErrItemAlreadyIncluded indicates Solution.Add on an item already in the solution.
var ErrItemAlreadyIncluded = errors.New("knapsack: item already included")

// ErrItemNotIncluded indicates Solution.Remove on an item not in the solution.
var ErrItemNotIncluded = errors.New("knapsack: item not included")

// ErrMalformedInstance indicates unreadable instance text.
var ErrMalformedInstance = errors.New("knapsack: malformed instance file")

// ErrMalformedCertificate indicates unreadable or inconsistent certificate text.
var ErrMalformedCertificate = errors.New("knapsack: malformed certificate")

// ErrUnknownFormat indicates an instance format name that has no reader.
var ErrUnknownFormat = errors.New("knapsack: unknown instance format")
