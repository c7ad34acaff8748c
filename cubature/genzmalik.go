// SPDX-License-Identifier: MIT

// Package cubature: the Genz–Malik degree-7 rule with embedded degree-5
// estimate for hyper-rectangles of dimension >= 2.
//
// Node rings (offsets in units of the region's half-widths):
//
//	p[0]: ±λ2 on a single axis        (2·dim points, evaluated as ± pairs)
//	p[1]: ±λ3 on a single axis        (2·dim points, evaluated as ± pairs)
//	p[2]: ±λ4 on every pair of axes   (2·dim·(dim−1) points, all signs listed)
//	p[3]: ±λ5 on all axes at once     (2^dim points, all signs listed)
//
// The weights w (degree 7) and wd (degree 5) are polynomials of degree <= 2
// in dim, scaled by 2^dim so that the estimate is multiplied by the product
// of half-widths rather than the full volume.
package cubature

import (
	"fmt"
	"math"
)

// Genz–Malik generator distances.
var (
	lambda2 = math.Sqrt(9.0 / 70.0)
	lambda3 = math.Sqrt(9.0 / 10.0)
	lambda4 = math.Sqrt(9.0 / 10.0)
	lambda5 = math.Sqrt(9.0 / 19.0)
)

// GenzMalik holds the node offsets and weights of the Genz–Malik rule for
// one dimension. It is immutable after NewGenzMalik and safe to share
// between goroutines.
type GenzMalik struct {
	dim int
	p   [4][][]float64
	w   [5]float64
	wd  [4]float64
}

// NewGenzMalik builds the rule tables for dim in [2, MaxDimension].
//
// Complexity: O(2^dim · dim + dim^3) time and memory, once per integration.
func NewGenzMalik(dim int) (*GenzMalik, error) {
	if dim < 2 || dim > MaxDimension {
		return nil, fmt.Errorf("%w: Genz–Malik rule needs 2 <= dim <= %d, got %d", ErrBadDimension, MaxDimension, dim)
	}

	n := float64(dim)
	twopn := math.Ldexp(1, dim)

	g := &GenzMalik{dim: dim}
	g.w = [5]float64{
		twopn * ((12824 - 9120*n + 400*n*n) / 19683),
		twopn * (980.0 / 6561),
		twopn * ((1820 - 400*n) / 19683),
		twopn * (200.0 / 19683),
		6859.0 / 19683,
	}
	g.wd = [4]float64{
		twopn * ((729 - 950*n + 50*n*n) / 729),
		twopn * (245.0 / 486),
		twopn * ((265 - 100*n) / 1458),
		twopn * (25.0 / 729),
	}

	g.p[0] = combos(1, lambda2, dim)
	g.p[1] = combos(1, lambda3, dim)
	g.p[2] = signCombos(2, lambda4, dim)
	g.p[3] = signCombos(dim, lambda5, dim)

	return g, nil
}

// Dim returns the dimension the rule was built for.
func (g *GenzMalik) Dim() int { return g.dim }

// Evals returns the number of integrand calls per region.
func (g *GenzMalik) Evals() int { return EvalsPerRegion(g.dim) }

// Nodes returns a copy of node ring 0..3.
func (g *GenzMalik) Nodes(ring int) ([][]float64, error) {
	if ring < 0 || ring >= len(g.p) {
		return nil, fmt.Errorf("cubature: node ring %d out of range [0, %d)", ring, len(g.p))
	}
	out := make([][]float64, len(g.p[ring]))
	for i, v := range g.p[ring] {
		out[i] = append([]float64(nil), v...)
	}

	return out, nil
}

// Weights returns the degree-7 weights w[0..4].
func (g *GenzMalik) Weights() [5]float64 { return g.w }

// LowerWeights returns the embedded degree-5 weights wd[0..3].
func (g *GenzMalik) LowerWeights() [4]float64 { return g.wd }

// EvalsPerRegion returns how many times a region evaluation calls the
// integrand in the given dimension: 15 for dim 1, otherwise
// 1 + 4·dim + 2·dim·(dim−1) + 2^dim. It returns 0 for dim < 1.
func EvalsPerRegion(dim int) int {
	switch {
	case dim < 1:
		return 0
	case dim == 1:
		return kronrodEvals
	default:
		return 1 + 4*dim + 2*dim*(dim-1) + 1<<dim
	}
}
