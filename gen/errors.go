// SPDX-License-Identifier: MIT

// errors.go - sentinel errors for the gen package.
//
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generate never panics; option constructors panic on nil arguments.

package gen

import "errors"

// ErrTooFewItems indicates n < 1.
var ErrTooFewItems = errors.New("gen: number of items too small")

// ErrInvalidRatio indicates a capacity ratio that is not strictly positive.
var ErrInvalidRatio = errors.New("gen: capacity ratio out of range")

// ErrInvalidRange indicates a non-positive maximum weight or profit.
var ErrInvalidRange = errors.New("gen: value range out of range")

// ErrUnknownFamily indicates an unsupported family name.
var ErrUnknownFamily = errors.New("gen: unknown instance family")
