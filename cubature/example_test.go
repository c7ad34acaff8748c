package cubature_test

import (
	"fmt"
	"math"

	"github.com/lingium/math/cubature"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleIntegrate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	∫₀¹ x² dx = 1/3 with the 1-D Gauss–Kronrod rule.
//
// The 15-point rule is exact for this polynomial, so the very first region
// already meets the tolerance and no refinement happens.
func ExampleIntegrate() {
	f := func(x []float64, _ struct{}) float64 { return x[0] * x[0] }

	res, err := cubature.Integrate(f, struct{}{}, 1, []float64{0}, []float64{1}, 0, 1e-9, 1e-9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.6f status=%s evals=%d splits=%d\n", res.Value, res.Status, res.Evals, res.Splits)
	// Output:
	// value=0.333333 status=converged evals=15 splits=0
}

// ExampleIntegrate_unitSquare integrates the constant 1 over [0,1]² with the
// Genz–Malik rule: one region of 17 evaluations.
func ExampleIntegrate_unitSquare() {
	f := func(_ []float64, _ struct{}) float64 { return 1 }

	res, _ := cubature.Integrate(f, struct{}{}, 2, []float64{0, 0}, []float64{1, 1}, 0, 1e-9, 1e-9)
	fmt.Printf("value=%.6f evals=%d regions=%d\n", res.Value, res.Evals, res.Regions)
	// Output:
	// value=1.000000 evals=17 regions=1
}

// ExampleIntegrate_refinement shows adaptive refinement on √x, whose
// derivative is singular at 0: the driver keeps bisecting the left-most
// interval until the total error falls below absTol.
func ExampleIntegrate_refinement() {
	f := func(x []float64, _ struct{}) float64 { return math.Sqrt(x[0]) }

	res, _ := cubature.Integrate(f, struct{}{}, 1, []float64{0}, []float64{1}, 0, 1e-10, 0)
	fmt.Printf("value=%.8f status=%s refined=%t\n", res.Value, res.Status, res.Splits > 0)
	// Output:
	// value=0.66666667 status=converged refined=true
}

// ExampleIntegrate_parameters passes a parameter block through to the
// integrand: ∫∫ exp(−k(x²+y²)) over [−3,3]² ≈ π/k.
func ExampleIntegrate_parameters() {
	type gauss struct{ k float64 }
	f := func(x []float64, p gauss) float64 { return math.Exp(-p.k * (x[0]*x[0] + x[1]*x[1])) }

	res, _ := cubature.Integrate(f, gauss{k: 2}, 2, []float64{-3, -3}, []float64{3, 3}, 0, 0, 1e-10)
	fmt.Printf("value=%.6f pi/k=%.6f\n", res.Value, math.Pi/2)
	// Output:
	// value=1.570796 pi/k=1.570796
}

// ExampleEvalsPerRegion lists the rule cost per region for small dimensions.
func ExampleEvalsPerRegion() {
	for dim := 1; dim <= 4; dim++ {
		fmt.Printf("dim=%d evals=%d\n", dim, cubature.EvalsPerRegion(dim))
	}
	// Output:
	// dim=1 evals=15
	// dim=2 evals=17
	// dim=3 evals=33
	// dim=4 evals=57
}
