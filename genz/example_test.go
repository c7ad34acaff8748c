package genz_test

import (
	"fmt"
	"math"

	"github.com/lingium/math/cubature"
	"github.com/lingium/math/genz"
)

// ExampleExact integrates a seeded Gaussian test problem in three dimensions
// and reports whether the adaptive result agrees with the closed form.
func ExampleExact() {
	const dim = 3
	p, _ := genz.NewParams(genz.Gaussian, dim, 42)
	f, _ := genz.Integrand(genz.Gaussian)
	exact, _ := genz.Exact(genz.Gaussian, p)

	a, b := genz.UnitCube(dim)
	res, _ := cubature.Integrate(f, p, dim, a, b, 0, 0, 1e-9)
	fmt.Printf("status=%s agree=%t\n", res.Status, math.Abs(res.Value-exact) < 1e-7)
	// Output:
	// status=converged agree=true
}

// ExampleParseFamily resolves CLI-style names.
func ExampleParseFamily() {
	for _, name := range []string{"corner-peak", "GAUSSIAN", "product_peak"} {
		f, err := genz.ParseFamily(name)
		fmt.Println(f, err)
	}
	// Output:
	// corner-peak <nil>
	// gaussian <nil>
	// product-peak <nil>
}
