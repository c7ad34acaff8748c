// Package math is the root of a small numerical-math module built around
// adaptive multidimensional integration.
//
// 🚀 What is inside?
//
//	• cubature/       adaptive h-cubature over hyper-rectangles (Gauss–Kronrod
//	                  7/15 in 1-D, embedded Genz–Malik 7/5 above), driven by
//	                  a max-error priority queue.
//	• genz/           Genz test-integrand families with closed-form integrals,
//	                  used to exercise and benchmark the integrator.
//	• cmd/hcubature/  command-line front end over both packages.
//
// ✨ Why this layout?
//
//   - One algorithm per package, each with doc.go, types.go, tests,
//     runnable examples and benchmarks.
//   - No global mutable state: every integration owns its region queue,
//     accumulators and counters.
//   - Integrands are plain generic functions: f(x, params) float64.
//
// Quick start:
//
//	res, err := cubature.Integrate(f, params, 2, []float64{0, 0}, []float64{1, 1}, 0, 1e-10, 1e-8)
//
//	go get github.com/lingium/math/cubature
package math
