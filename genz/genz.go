// SPDX-License-Identifier: MIT

// Package genz: parameter generation, integrands and closed-form integrals.
package genz

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/lingium/math/cubature"
)

// NewParams draws parameters for family f in dim dimensions using the
// family's default difficulty. seed==0 selects a fixed default seed.
func NewParams(f Family, dim int, seed int64) (Params, error) {
	return NewParamsWithDifficulty(f, dim, seed, f.Difficulty())
}

// NewParamsWithDifficulty is NewParams with an explicit Σ aᵢ.
//
// aᵢ are drawn uniformly from (0,1] and rescaled so that their sum equals
// difficulty; uᵢ are drawn uniformly from [0,1).
func NewParamsWithDifficulty(f Family, dim int, seed int64, difficulty float64) (Params, error) {
	if !f.valid() {
		return Params{}, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}
	if dim < 1 || dim > cubature.MaxDimension {
		return Params{}, fmt.Errorf("%w: dim=%d", ErrBadDimension, dim)
	}
	if !(difficulty > 0) || math.IsInf(difficulty, 1) {
		return Params{}, fmt.Errorf("%w: %v", ErrBadDifficulty, difficulty)
	}

	rng := familyRNG(seed, f)
	p := Params{A: make([]float64, dim), U: make([]float64, dim)}
	for i := 0; i < dim; i++ {
		p.A[i] = 1 - rng.Float64() // (0,1]
		p.U[i] = rng.Float64()
	}
	floats.Scale(difficulty/floats.Sum(p.A), p.A)

	return p, nil
}

// Integrand returns the integrand of family f. The returned function never
// retains x. A point longer than p.A or p.U yields NaN instead of reading
// past the parameters, so a dimension mismatch ends the integration with
// cubature.StatusNonFinite.
func Integrand(f Family) (cubature.Integrand[Params], error) {
	var g cubature.Integrand[Params]
	switch f {
	case Oscillatory:
		g = oscillatory
	case ProductPeak:
		g = productPeak
	case CornerPeak:
		g = cornerPeak
	case Gaussian:
		g = gaussian
	case Continuous:
		g = continuous
	case Discontinuous:
		g = discontinuous
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}

	return func(x []float64, p Params) float64 {
		if len(x) == 0 || len(p.A) < len(x) || len(p.U) < len(x) {
			return math.NaN()
		}

		return g(x, p)
	}, nil
}

func oscillatory(x []float64, p Params) float64 {
	s := 2 * math.Pi * p.U[0]
	for i, xi := range x {
		s += p.A[i] * xi
	}

	return math.Cos(s)
}

func productPeak(x []float64, p Params) float64 {
	v := 1.0
	for i, xi := range x {
		d := xi - p.U[i]
		v /= 1/(p.A[i]*p.A[i]) + d*d
	}

	return v
}

func cornerPeak(x []float64, p Params) float64 {
	s := 1.0
	for i, xi := range x {
		s += p.A[i] * xi
	}

	return math.Pow(s, -float64(len(x)+1))
}

func gaussian(x []float64, p Params) float64 {
	s := 0.0
	for i, xi := range x {
		d := p.A[i] * (xi - p.U[i])
		s += d * d
	}

	return math.Exp(-s)
}

func continuous(x []float64, p Params) float64 {
	s := 0.0
	for i, xi := range x {
		s += p.A[i] * math.Abs(xi-p.U[i])
	}

	return math.Exp(-s)
}

// discontinuous cuts along the first two axes only.
func discontinuous(x []float64, p Params) float64 {
	if x[0] > p.U[0] || (len(x) > 1 && x[1] > p.U[1]) {
		return 0
	}
	s := 0.0
	for i, xi := range x {
		s += p.A[i] * xi
	}

	return math.Exp(s)
}

// Exact returns ∫ over [0,1]^d of family f with parameters p, d = p.Dim().
func Exact(f Family, p Params) (float64, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	switch f {
	case Oscillatory:
		return exactOscillatory(p), nil
	case ProductPeak:
		return product(p, func(a, u float64) float64 {
			return a * (math.Atan(a*(1-u)) + math.Atan(a*u))
		}), nil
	case CornerPeak:
		return exactCornerPeak(p), nil
	case Gaussian:
		return product(p, func(a, u float64) float64 {
			return math.Sqrt(math.Pi) / (2 * a) * (math.Erf(a*(1-u)) + math.Erf(a*u))
		}), nil
	case Continuous:
		return product(p, func(a, u float64) float64 {
			return (2 - math.Exp(-a*u) - math.Exp(-a*(1-u))) / a
		}), nil
	case Discontinuous:
		v := 1.0
		for i, a := range p.A {
			b := 1.0
			if i < 2 {
				b = p.U[i]
			}
			v *= math.Expm1(a*b) / a
		}

		return v, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}
}

// UnitCube returns the bounds of [0,1]^dim.
func UnitCube(dim int) (a, b []float64) {
	a, b = make([]float64, dim), make([]float64, dim)
	for i := range b {
		b[i] = 1
	}

	return a, b
}

func product(p Params, factor func(a, u float64) float64) float64 {
	v := 1.0
	for i, a := range p.A {
		v *= factor(a, p.U[i])
	}

	return v
}

// exactOscillatory evaluates Re[e^{i2πu₁} Π (e^{iaⱼ}−1)/(iaⱼ)].
func exactOscillatory(p Params) float64 {
	z := cmplx.Exp(complex(0, 2*math.Pi*p.U[0]))
	for _, a := range p.A {
		if a == 0 {
			continue
		}
		ia := complex(0, a)
		z *= (cmplx.Exp(ia) - 1) / ia
	}

	return real(z)
}

// exactCornerPeak sums over all subsets S of the axes by inclusion–exclusion:
//
//	1/(d! Π aⱼ) · Σ_S (−1)^{|S|} / (1 + Σ_{j∈S} aⱼ)
func exactCornerPeak(p Params) float64 {
	d := len(p.A)
	sum := 0.0
	for mask := 0; mask < 1<<d; mask++ {
		s, sign := 1.0, 1.0
		for j := 0; j < d; j++ {
			if mask&(1<<j) != 0 {
				s += p.A[j]
				sign = -sign
			}
		}
		sum += sign / s
	}
	denom := floats.Prod(p.A)
	for k := 2; k <= d; k++ {
		denom *= float64(k)
	}

	return sum / denom
}
