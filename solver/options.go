// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/knapsolver/partialset"
)

// DefaultPartialSolutionSize is the default partial-solution window.
const DefaultPartialSolutionSize = partialset.MaxSize

// Option configures a solver call via functional arguments.
// If an Option is invalid (e.g. window size 0), it is recorded internally
// and surfaced as ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by all solvers.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// TimeLimit, if > 0, bounds the wall-clock time of the call on top of Ctx.
	TimeLimit time.Duration

	// PartialSolutionSize is the number of most recent core items whose
	// membership every state remembers, in [1, 64].
	PartialSolutionSize int

	// Pairing enables moving one promising outer item into the core each
	// time the frontier grows by another factor of ten.
	Pairing bool

	// Seed drives the pivot choice of the partial sort (0 = default seed).
	Seed int64

	// OnUpdate is called inline on every strict improvement of the value,
	// the bound or the solution. It must not block.
	OnUpdate func(Update)

	// Logger receives improvements at debug level.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background(), no time limit
//   - window size 64, pairing off, default seed
//   - no-op update hook, logger writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		PartialSolutionSize: DefaultPartialSolutionSize,
		OnUpdate:            func(Update) {},
		Logger:              log.New(io.Discard),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit bounds the call duration.
//
//	d > 0: limit to d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithPartialSolutionSize sets the window size; values outside [1, 64]
// are recorded as ErrOptionViolation.
func WithPartialSolutionSize(size int) Option {
	return func(o *Options) {
		if size < 1 || size > partialset.MaxSize {
			o.err = fmt.Errorf("%w: PartialSolutionSize must be in [1, %d] (%d)",
				ErrOptionViolation, partialset.MaxSize, size)
			return
		}
		o.PartialSolutionSize = size
	}
}

// WithPairing toggles the pairing move.
func WithPairing(on bool) Option {
	return func(o *Options) { o.Pairing = on }
}

// WithSeed fixes the partial-sort pivot seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOnUpdate registers an improvement observer.
func WithOnUpdate(fn func(Update)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUpdate = fn
		}
	}
}

// WithLogger sets the improvement logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolveOptions applies opts over the defaults and derives the run context.
// The returned cancel func must always be called.
func resolveOptions(opts []Option) (Options, context.Context, context.CancelFunc, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, nil, func() {}, o.err
	}
	if o.TimeLimit > 0 {
		ctx, cancel := context.WithTimeout(o.Ctx, o.TimeLimit)
		return o, ctx, cancel, nil
	}
	ctx, cancel := context.WithCancel(o.Ctx)
	return o, ctx, cancel, nil
}
