// Package cubature estimates definite integrals over hyper-rectangles to a
// requested tolerance by adaptive subdivision (h-adaptive cubature).
//
// 🚀 What is h-cubature?
//
//	The domain [a, b] is treated as one region and integrated with a fixed
//	embedded rule that yields both an estimate I and an error estimate E.
//	While the total error is too large, the region with the largest E is
//	bisected along its least smooth axis, both halves are re-integrated and
//	the running totals are updated. Refinement therefore concentrates where
//	the integrand is hardest.
//
// ✨ Rules:
//   - dim == 1: Gauss–Kronrod 7/15 (15 evaluations per region).
//   - dim  > 1: Genz–Malik degree-7 rule with an embedded degree-5 rule
//     (1 + 4·dim + 2·dim·(dim−1) + 2^dim evaluations per region).
//
// Stopping rule:
//
//	err <= max(relTol·|val|, absTol)     → StatusConverged
//	maxEval > 0 && evals >= maxEval      → StatusBudgetExhausted
//	val is NaN or ±Inf                   → StatusNonFinite
//
// A maxEval of 0 means "no evaluation budget". Non-convergence and
// non-finite values are not errors: the best estimate is always returned in
// Result together with its error estimate and status, so callers can tell
// a converged answer from a best-effort one.
//
// ⚙️ Usage:
//
//	f := func(x []float64, k float64) float64 { return math.Exp(-k * (x[0]*x[0] + x[1]*x[1])) }
//	res, err := cubature.Integrate(f, 2.0, 2,
//		[]float64{-1, -1}, []float64{1, 1},
//		0,          // maxEval: unlimited
//		1e-12,      // absTol
//		1e-8,       // relTol
//		cubature.WithLogger(logger),
//	)
//
// The point slice handed to the integrand is a scratch buffer owned by the
// engine: read it, never retain or modify it.
//
// Complexity:
//
//   - Time:   O(S · (N + log S)) for S splits and N evaluations per region.
//   - Memory: O(S · dim) for the active region set, plus O(2^dim · dim) for
//     the Genz–Malik node table.
//
// Reference: A. C. Genz, A. A. Malik, "An adaptive algorithm for numerical
// integration over an N-dimensional rectangular region", J. Comput. Appl.
// Math. 6 (1980).
package cubature
