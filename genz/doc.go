// Package genz provides the Genz (1984) test-integrand families over the
// unit cube [0,1]^d together with their closed-form integrals.
//
// 🚀 Why?
//
//	Each family stresses a different weakness of a cubature rule, and the
//	exact integral is known, so the actual error of an integrator can be
//	measured rather than trusted:
//	  • Oscillatory    cos(2πu₁ + Σ aᵢxᵢ)
//	  • ProductPeak    Π 1/(aᵢ⁻² + (xᵢ−uᵢ)²)
//	  • CornerPeak     (1 + Σ aᵢxᵢ)^−(d+1)
//	  • Gaussian       exp(−Σ aᵢ²(xᵢ−uᵢ)²)
//	  • Continuous     exp(−Σ aᵢ|xᵢ−uᵢ|)           (kink at u)
//	  • Discontinuous  exp(Σ aᵢxᵢ) for x₁<=u₁, x₂<=u₂, else 0
//
// ✨ Parameters:
//   - A: sharpness coefficients, normalised so Σ aᵢ equals the family's
//     difficulty; larger means harder.
//   - U: location/shift parameters in [0,1).
//   - NewParams draws both from a deterministic stream derived from a seed
//     and the family, so the same (family, dim, seed) is always the same
//     problem.
//
// ⚙️ Usage:
//
//	p, _ := genz.NewParams(genz.Gaussian, 3, 42)
//	f, _ := genz.Integrand(genz.Gaussian)
//	exact, _ := genz.Exact(genz.Gaussian, p)
//	a, b := genz.UnitCube(3)
//	res, _ := cubature.Integrate(f, p, 3, a, b, 0, 0, 1e-8)
//	fmt.Println(math.Abs(res.Value - exact))
//
// Reference: A. Genz, "Testing multidimensional integration routines",
// Tools, Methods and Languages for Scientific and Engineering Computation
// (1984).
package genz
