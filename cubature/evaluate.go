// SPDX-License-Identifier: MIT

// Package cubature: region evaluators.
//
// An evaluator applies the fixed rule of its dimension to one region and
// returns the estimate, the embedded-rule error and the recommended split
// axis. It owns scratch buffers for the centre, half-widths and evaluation
// point, so a single evaluator must not be used from two goroutines at once;
// the driver keeps one evaluator per child of a split.
package cubature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// evaluator is the per-goroutine state for region evaluation.
type evaluator[P any] struct {
	f       Integrand[P]
	params  P
	g       *GenzMalik // nil when dim == 1
	dim     int
	centre  []float64
	half    []float64
	point   []float64
	divdiff []float64
}

// newEvaluator allocates the scratch buffers for dim.
func newEvaluator[P any](f Integrand[P], params P, g *GenzMalik, dim int) *evaluator[P] {
	return &evaluator[P]{
		f:       f,
		params:  params,
		g:       g,
		dim:     dim,
		centre:  make([]float64, dim),
		half:    make([]float64, dim),
		point:   make([]float64, dim),
		divdiff: make([]float64, dim),
	}
}

// evaluate dispatches on dimension.
func (e *evaluator[P]) evaluate(a, b []float64) Estimate {
	if e.dim == 1 {
		return e.gaussKronrod(a[0], b[0])
	}

	return e.genzMalik(a, b)
}

// at evaluates the integrand at a single abscissa (1-D).
func (e *evaluator[P]) at(x float64) float64 {
	e.point[0] = x

	return e.f(e.point, e.params)
}

// shifted evaluates the integrand at centre + sign·half∘offset.
func (e *evaluator[P]) shifted(offset []float64, sign float64) float64 {
	for j := range e.point {
		e.point[j] = e.centre[j] + sign*e.half[j]*offset[j]
	}

	return e.f(e.point, e.params)
}

// gaussKronrod applies the 7/15 rule to [a, b]. The error is the distance
// between the 15-point Kronrod and the embedded 7-point Gauss estimates.
// A zero-width interval yields the zero estimate without calling f.
func (e *evaluator[P]) gaussKronrod(a, b float64) Estimate {
	c := 0.5 * (a + b)
	delta := 0.5 * (b - a)
	if delta == 0 {
		return Estimate{}
	}

	f0 := e.at(c)
	kronrod := f0 * kronrodWeights[7]
	gauss := f0 * gaussWeights[3]

	var (
		i      int
		dx, fx float64
	)
	for i = 0; i < 7; i++ {
		dx = delta * kronrodNodes[i]
		fx = e.at(c - dx)
		fx += e.at(c + dx)
		kronrod += fx * kronrodWeights[i]
		if i%2 == 1 {
			gauss += fx * gaussWeights[i/2]
		}
	}

	v := math.Abs(delta)
	kronrod *= v
	gauss *= v

	return Estimate{Value: kronrod, Error: math.Abs(kronrod - gauss), SplitAxis: 0}
}

// genzMalik applies the degree-7 rule to the box [a, b].
//
// Steps:
//  1. Centre c and half-widths h; v = Π h. A zero v short-circuits to the
//     zero estimate without calling f.
//  2. f1 at the centre; paired ± evaluations on rings p[0], p[1] per axis,
//     keeping the per-axis sums to form the fourth divided difference
//     |f3_i + 12·f1 − 7·f2_i|.
//  3. Single evaluations on rings p[2] and p[3] (both signs are listed).
//  4. I from w, I' from wd, E = |I − I'|.
//  5. Split axis: the largest divided difference that exceeds the previous
//     maximum by more than deltaf = E / (10^dim · v); within deltaf of the
//     maximum the wider axis wins.
func (e *evaluator[P]) genzMalik(a, b []float64) Estimate {
	var i int
	for i = 0; i < e.dim; i++ {
		e.centre[i] = 0.5 * (a[i] + b[i])
		e.half[i] = 0.5 * math.Abs(b[i]-a[i])
	}
	v := floats.Prod(e.half)
	if v == 0 {
		return Estimate{}
	}

	g := e.g
	copy(e.point, e.centre)
	f1 := e.f(e.point, e.params)
	twelveF1 := 12 * f1

	var f2, f3, f2i, f3i float64
	for i = 0; i < e.dim; i++ {
		f2i = e.shifted(g.p[0][i], 1)
		f2i += e.shifted(g.p[0][i], -1)
		f3i = e.shifted(g.p[1][i], 1)
		f3i += e.shifted(g.p[1][i], -1)
		f2 += f2i
		f3 += f3i
		e.divdiff[i] = math.Abs(f3i + twelveF1 - 7*f2i)
	}

	var f4, f5 float64
	for _, p := range g.p[2] {
		f4 += e.shifted(p, 1)
	}
	for _, p := range g.p[3] {
		f5 += e.shifted(p, 1)
	}

	I := v * (g.w[0]*f1 + g.w[1]*f2 + g.w[2]*f3 + g.w[3]*f4 + g.w[4]*f5)
	Idash := v * (g.wd[0]*f1 + g.wd[1]*f2 + g.wd[2]*f3 + g.wd[3]*f4)
	E := math.Abs(I - Idash)

	kdiv := 0
	maxDivDiff := 0.0
	deltaf := E / (math.Pow(10, float64(e.dim)) * v)
	var delta float64
	for i = 0; i < e.dim; i++ {
		delta = e.divdiff[i] - maxDivDiff
		if delta > deltaf {
			kdiv = i
			maxDivDiff = e.divdiff[i]
		} else if math.Abs(delta) <= deltaf && e.half[i] > e.half[kdiv] {
			kdiv = i
		}
	}

	return Estimate{Value: I, Error: E, SplitAxis: kdiv}
}

// GaussKronrod applies the 1-D Gauss–Kronrod 7/15 rule to [a, b] once,
// without refinement. It calls f exactly 15 times unless a == b.
func GaussKronrod[P any](f Integrand[P], params P, a, b float64) (Estimate, error) {
	if f == nil {
		return Estimate{}, ErrNilIntegrand
	}

	return newEvaluator(f, params, nil, 1).gaussKronrod(a, b), nil
}

// GenzMalikRule applies the Genz–Malik rule g to the box [a, b] once,
// without refinement. It calls f exactly g.Evals() times unless the box
// has zero volume.
func GenzMalikRule[P any](f Integrand[P], params P, g *GenzMalik, a, b []float64) (Estimate, error) {
	if f == nil {
		return Estimate{}, ErrNilIntegrand
	}
	if g == nil {
		return Estimate{}, fmt.Errorf("%w: nil Genz–Malik rule", ErrBadDimension)
	}
	if len(a) != g.dim || len(b) != g.dim {
		return Estimate{}, fmt.Errorf("%w: dim=%d len(a)=%d len(b)=%d", ErrBoundsLength, g.dim, len(a), len(b))
	}

	return newEvaluator(f, params, g, g.dim).genzMalik(a, b), nil
}
