// SPDX-License-Identifier: MIT

// Package cubature: the adaptive refinement driver.
//
// States: INIT → REFINING → CONVERGED | BUDGET_EXHAUSTED | NON_FINITE.
//
//  1. INIT evaluates the whole domain as one region and returns at once if
//     it already meets the tolerance or the budget.
//  2. REFINING pops the region with the largest error, bisects it along its
//     recommended axis, evaluates both halves and pushes them back. The
//     running value and error are updated by delta (children minus
//     parent) instead of re-summing the whole set.
//  3. After every split the stopping rule is checked.
//  4. Finalization drains the queue and re-sums value and error from
//     scratch, discarding the drift accumulated by the delta updates.
package cubature

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Integrate computes the dim-dimensional integral of f over [a, b] to
// err <= max(relTol·|val|, absTol), or until maxEval evaluations have been
// spent (0 = unlimited), or until the running value stops being finite.
//
// Returns:
//
//   - Result with the re-summed value and error estimate, evaluation and
//     split counts, and the termination Status.
//   - error only for invalid input (see the Err* sentinels). Failing to
//     converge is reported through Result.Status, never as an error.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilIntegrand).
//  2. 1 <= dim <= MaxDimension (ErrBadDimension).
//  3. len(a) == len(b) == dim (ErrBoundsLength).
//  4. every bound finite (ErrNonFiniteBounds) and a[i] <= b[i] (ErrInvertedBounds).
//  5. absTol, relTol >= 0 and not NaN (ErrBadTolerance).
//  6. maxEval >= 0 (ErrBadMaxEval).
//
// The budget is checked after each split, so the total number of
// evaluations may exceed maxEval by at most one split (2·EvalsPerRegion).
func Integrate[P any](f Integrand[P], params P, dim int, a, b []float64, maxEval int, absTol, relTol float64, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the call contract
	if err := validate(f, dim, a, b, maxEval, absTol, relTol); err != nil {
		return Result{}, err
	}

	// 3) Build the rule for dim > 1
	var (
		g   *GenzMalik
		err error
	)
	if dim > 1 {
		if g, err = NewGenzMalik(dim); err != nil {
			return Result{}, err
		}
	}

	// 4) Run
	r := &runner[P]{
		dim:       dim,
		maxEval:   maxEval,
		absTol:    absTol,
		relTol:    relTol,
		options:   cfg,
		upper:     newEvaluator(f, params, g, dim),
		lower:     newEvaluator(f, params, g, dim),
		perRegion: EvalsPerRegion(dim),
	}

	return r.run(a, b), nil
}

// validate enforces the input contract in the documented order.
func validate[P any](f Integrand[P], dim int, a, b []float64, maxEval int, absTol, relTol float64) error {
	if f == nil {
		return ErrNilIntegrand
	}
	if dim < 1 || dim > MaxDimension {
		return fmt.Errorf("%w: dim=%d, want 1..%d", ErrBadDimension, dim, MaxDimension)
	}
	if len(a) != dim || len(b) != dim {
		return fmt.Errorf("%w: dim=%d len(a)=%d len(b)=%d", ErrBoundsLength, dim, len(a), len(b))
	}
	var i int
	for i = 0; i < dim; i++ {
		if !isFinite(a[i]) || !isFinite(b[i]) {
			return fmt.Errorf("%w: axis %d is [%g, %g]", ErrNonFiniteBounds, i, a[i], b[i])
		}
		if a[i] > b[i] {
			return fmt.Errorf("%w: axis %d is [%g, %g]", ErrInvertedBounds, i, a[i], b[i])
		}
	}
	if math.IsNaN(absTol) || absTol < 0 || math.IsNaN(relTol) || relTol < 0 {
		return fmt.Errorf("%w: absTol=%g relTol=%g", ErrBadTolerance, absTol, relTol)
	}
	if maxEval < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxEval, maxEval)
	}

	return nil
}

// runner holds the mutable state of a single integration.
type runner[P any] struct {
	dim     int
	maxEval int
	absTol  float64
	relTol  float64
	options Options

	// upper and lower evaluate the two halves of a split; each owns its
	// scratch buffers so they can run concurrently.
	upper *evaluator[P]
	lower *evaluator[P]

	queue     regionQueue
	val       float64 // delta-maintained running value
	err       float64 // delta-maintained running error
	evals     int
	perRegion int
	splits    int
}

// run executes INIT, the REFINING loop and finalization.
func (r *runner[P]) run(a, b []float64) Result {
	// INIT
	est := r.upper.evaluate(a, b)
	r.val, r.err = est.Value, est.Error
	r.evals = r.perRegion
	if r.converged() || r.budgetExhausted() {
		res := Result{
			Value:   r.val,
			Error:   r.err,
			Evals:   r.evals,
			Splits:  0,
			Regions: 1,
			Status:  r.status(),
		}
		r.logDone(res)

		return res
	}

	// REFINING
	r.queue = make(regionQueue, 0, 64)
	heap.Init(&r.queue)
	heap.Push(&r.queue, &region{
		a:   append([]float64(nil), a...),
		b:   append([]float64(nil), b...),
		est: est,
	})
	for {
		r.split()
		if r.converged() || r.budgetExhausted() || !isFinite(r.val) {
			break
		}
	}

	return r.finalize()
}

// split replaces the worst region by its two halves along SplitAxis.
func (r *runner[P]) split() {
	parent := heap.Pop(&r.queue).(*region)
	axis := parent.est.SplitAxis
	w := (parent.b[axis] - parent.a[axis]) / 2

	ma := append([]float64(nil), parent.a...)
	ma[axis] += w
	mb := append([]float64(nil), parent.b...)
	mb[axis] -= w

	hi := &region{a: ma, b: parent.b}
	lo := &region{a: parent.a, b: mb}
	r.evaluatePair(hi, lo)
	heap.Push(&r.queue, hi)
	heap.Push(&r.queue, lo)

	r.val += hi.est.Value + lo.est.Value - parent.est.Value
	r.err += hi.est.Error + lo.est.Error - parent.est.Error
	r.evals += 2 * r.perRegion
	r.splits++

	if l := r.options.Logger; l != nil && l.IsLevelEnabled(logrus.TraceLevel) {
		l.WithFields(logrus.Fields{
			"split": r.splits,
			"axis":  axis,
			"lower": parent.a,
			"upper": parent.b,
			"value": r.val,
			"error": r.err,
			"evals": r.evals,
		}).Trace("cubature: region split")
	}
	if r.options.OnSplit != nil {
		r.options.OnSplit(SplitEvent{
			Iteration: r.splits,
			Axis:      axis,
			Lower:     append([]float64(nil), parent.a...),
			Upper:     append([]float64(nil), parent.b...),
			Value:     r.val,
			Error:     r.err,
			Evals:     r.evals,
		})
	}
}

// evaluatePair evaluates both children, concurrently when configured.
// Each child has its own evaluator, so the outcome does not depend on the
// mode.
func (r *runner[P]) evaluatePair(hi, lo *region) {
	if !r.options.ConcurrentSplit {
		hi.est = r.upper.evaluate(hi.a, hi.b)
		lo.est = r.lower.evaluate(lo.a, lo.b)

		return
	}

	var g errgroup.Group
	g.Go(func() error {
		hi.est = r.upper.evaluate(hi.a, hi.b)
		return nil
	})
	g.Go(func() error {
		lo.est = r.lower.evaluate(lo.a, lo.b)
		return nil
	})
	_ = g.Wait() // evaluations never fail
}

// finalize drains the active set and re-sums value and error.
func (r *runner[P]) finalize() Result {
	res := Result{
		Evals:   r.evals,
		Splits:  r.splits,
		Regions: r.queue.Len(),
		Status:  r.status(),
	}

	values := make([]float64, 0, res.Regions)
	errs := make([]float64, 0, res.Regions)
	for r.queue.Len() > 0 {
		reg := heap.Pop(&r.queue).(*region)
		values = append(values, reg.est.Value)
		errs = append(errs, reg.est.Error)
	}
	res.Value = floats.Sum(values)
	res.Error = floats.Sum(errs)
	r.logDone(res)

	return res
}

// converged reports err <= max(relTol·|val|, absTol).
func (r *runner[P]) converged() bool {
	return r.err <= math.Max(r.relTol*math.Abs(r.val), r.absTol)
}

// budgetExhausted reports whether a non-zero budget has been reached.
func (r *runner[P]) budgetExhausted() bool {
	return r.maxEval != 0 && r.evals >= r.maxEval
}

// status classifies the stop: non-finite first, then tolerance, then budget.
func (r *runner[P]) status() Status {
	switch {
	case !isFinite(r.val):
		return StatusNonFinite
	case r.converged():
		return StatusConverged
	default:
		return StatusBudgetExhausted
	}
}

// logDone emits the termination summary at Debug level.
func (r *runner[P]) logDone(res Result) {
	l := r.options.Logger
	if l == nil || !l.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	l.WithFields(logrus.Fields{
		"dim":     r.dim,
		"status":  res.Status.String(),
		"value":   res.Value,
		"error":   res.Error,
		"evals":   res.Evals,
		"splits":  res.Splits,
		"regions": res.Regions,
	}).Debug("cubature: integration finished")
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// region is one box of the active set with its rule estimate.
type region struct {
	a, b []float64 // bounds; never mutated after creation
	est  Estimate
}

// regionQueue is a max-heap of *region ordered by estimated error, so the
// next split always targets the largest remaining error contributor.
type regionQueue []*region

// Len returns the number of regions in the heap.
func (q regionQueue) Len() int { return len(q) }

// Less orders larger errors first.
func (q regionQueue) Less(i, j int) bool { return q[i].est.Error > q[j].est.Error }

// Swap swaps two regions in the heap.
func (q regionQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds a region; called by heap.Push.
func (q *regionQueue) Push(x interface{}) { *q = append(*q, x.(*region)) }

// Pop removes the last region; called by heap.Pop.
func (q *regionQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
