// SPDX-License-Identifier: MIT

// Package genz: families, parameter blocks and sentinel errors.
package genz

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the genz package.
var (
	// ErrUnknownFamily indicates a Family value or name outside the six
	// defined families.
	ErrUnknownFamily = errors.New("genz: unknown family")

	// ErrBadDimension indicates a dimension < 1 or above cubature.MaxDimension.
	ErrBadDimension = errors.New("genz: dimension out of range")

	// ErrParamsLength indicates empty Params or len(A) != len(U).
	ErrParamsLength = errors.New("genz: parameter vectors must be non-empty and of equal length")

	// ErrBadDifficulty indicates a non-positive or non-finite difficulty.
	ErrBadDifficulty = errors.New("genz: difficulty must be positive and finite")
)

// Family enumerates the six Genz test-integrand families.
type Family int

const (
	Oscillatory Family = iota
	ProductPeak
	CornerPeak
	Gaussian
	Continuous
	Discontinuous
)

var familyNames = [...]string{
	Oscillatory:   "oscillatory",
	ProductPeak:   "product-peak",
	CornerPeak:    "corner-peak",
	Gaussian:      "gaussian",
	Continuous:    "continuous",
	Discontinuous: "discontinuous",
}

// difficulties holds the default Σ aᵢ per family. The values keep every
// family within reach of a few thousand evaluations in low dimensions.
var difficulties = [...]float64{
	Oscillatory:   4.5,
	ProductPeak:   6.0,
	CornerPeak:    1.85,
	Gaussian:      3.5,
	Continuous:    5.0,
	Discontinuous: 2.0,
}

// String returns the kebab-case family name.
func (f Family) String() string {
	if !f.valid() {
		return fmt.Sprintf("family(%d)", int(f))
	}

	return familyNames[f]
}

// Difficulty returns the default Σ aᵢ used by NewParams, or 0 for an
// unknown family.
func (f Family) Difficulty() float64 {
	if !f.valid() {
		return 0
	}

	return difficulties[f]
}

func (f Family) valid() bool { return f >= Oscillatory && f <= Discontinuous }

// ParseFamily maps a name (case-insensitive, '_' accepted for '-') to its Family.
func ParseFamily(name string) (Family, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for f, n := range familyNames {
		if n == key {
			return Family(f), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Families returns all families in declaration order.
func Families() []Family {
	out := make([]Family, len(familyNames))
	for i := range out {
		out[i] = Family(i)
	}

	return out
}

// Params is the parameter block passed through the integrator to every
// integrand call.
type Params struct {
	A []float64 // sharpness coefficients, aᵢ > 0
	U []float64 // shift/location parameters in [0,1)
}

// Dim returns the dimension the parameters were drawn for.
func (p Params) Dim() int { return len(p.A) }

func (p Params) check() error {
	if len(p.A) == 0 || len(p.A) != len(p.U) {
		return fmt.Errorf("%w: len(A)=%d len(U)=%d", ErrParamsLength, len(p.A), len(p.U))
	}

	return nil
}
