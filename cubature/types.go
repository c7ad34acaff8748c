// SPDX-License-Identifier: MIT

// Package cubature: shared types, sentinel errors and functional options.
package cubature

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// MaxDimension is the largest integration dimension accepted by Integrate.
// The Genz–Malik rule evaluates 2^dim corner points per region, so higher
// dimensions exhaust any realistic budget on the very first region.
const MaxDimension = 20

// Sentinel errors returned by the validation layer of Integrate and by the
// rule constructors. Wrapped with context via fmt.Errorf("%w: ...").
var (
	// ErrNilIntegrand indicates that a nil Integrand was supplied.
	ErrNilIntegrand = errors.New("cubature: integrand is nil")

	// ErrBadDimension indicates dim < 1, dim > MaxDimension, or a rule that
	// does not support the requested dimension.
	ErrBadDimension = errors.New("cubature: invalid dimension")

	// ErrBoundsLength indicates that len(a) or len(b) differs from dim.
	ErrBoundsLength = errors.New("cubature: bounds length does not match dimension")

	// ErrNonFiniteBounds indicates a NaN or ±Inf bound. Unbounded domains
	// must be transformed to finite ones before integration.
	ErrNonFiniteBounds = errors.New("cubature: bounds must be finite")

	// ErrInvertedBounds indicates a[i] > b[i] for some axis i.
	ErrInvertedBounds = errors.New("cubature: lower bound exceeds upper bound")

	// ErrBadTolerance indicates a negative or NaN absolute/relative tolerance.
	ErrBadTolerance = errors.New("cubature: tolerances must be non-negative")

	// ErrBadMaxEval indicates a negative evaluation budget.
	ErrBadMaxEval = errors.New("cubature: maxEval must be non-negative")
)

// Integrand is the function being integrated. It receives a point of
// length dim and the caller's parameter block, which is passed through
// unmodified on every call. It must be deterministic and must not retain x.
type Integrand[P any] func(x []float64, params P) float64

// Status reports why an integration stopped.
type Status int

const (
	// StatusConverged: err <= max(relTol·|val|, absTol).
	StatusConverged Status = iota

	// StatusBudgetExhausted: the evaluation budget was reached first.
	StatusBudgetExhausted

	// StatusNonFinite: the running value became NaN or ±Inf.
	StatusNonFinite
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusBudgetExhausted:
		return "budget-exhausted"
	case StatusNonFinite:
		return "non-finite"
	default:
		return "unknown"
	}
}

// Estimate is the outcome of applying a fixed rule to a single region.
type Estimate struct {
	Value     float64 // integral estimate over the region
	Error     float64 // |I − I'|, always >= 0 for finite values
	SplitAxis int     // axis recommended for the next bisection (0 in 1-D)
}

// Result is the outcome of an adaptive integration.
type Result struct {
	// Value and Error are re-summed over the final active region set.
	Value float64
	Error float64

	// Evals counts integrand evaluations as the rule formula predicts:
	// EvalsPerRegion(dim) for the initial region plus twice that per split.
	Evals int

	// Splits is the number of refinement iterations performed.
	Splits int

	// Regions is the size of the active region set at termination.
	Regions int

	// Status is the termination reason.
	Status Status
}

// SplitEvent describes one refinement iteration. Lower and Upper are
// copies of the bounds of the region that was bisected; the callback owns
// them.
type SplitEvent struct {
	Iteration int       // 1-based split counter
	Axis      int       // bisected axis
	Lower     []float64 // parent lower bounds
	Upper     []float64 // parent upper bounds
	Value     float64   // running value after the split
	Error     float64   // running error after the split
	Evals     int       // evaluation count after the split
}

// Options configures Integrate beyond the positional stopping parameters.
type Options struct {
	// Logger receives structured output; nil disables logging entirely.
	Logger *logrus.Logger

	// OnSplit is invoked after every refinement iteration.
	OnSplit func(SplitEvent)

	// ConcurrentSplit evaluates the two halves of a split in parallel.
	// The integrand must then be safe for concurrent use.
	ConcurrentSplit bool
}

// Option represents a functional option for configuring Integrate.
type Option func(*Options)

// WithLogger enables logging: Debug on termination, Trace per split.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSplit installs a callback invoked after every split.
func WithOnSplit(fn func(SplitEvent)) Option {
	return func(o *Options) {
		o.OnSplit = fn
	}
}

// WithConcurrentSplits evaluates both children of a split concurrently.
// Results are bit-identical to the sequential mode.
func WithConcurrentSplits() Option {
	return func(o *Options) {
		o.ConcurrentSplit = true
	}
}

// DefaultOptions returns the zero configuration: no logger, no hooks,
// sequential evaluation.
func DefaultOptions() Options {
	return Options{
		Logger:          nil,
		OnSplit:         nil,
		ConcurrentSplit: false,
	}
}
