// SPDX-License-Identifier: MIT

package cubature

// Test-Bridge (white-box) for the node generators and rule tables.
//
// Purpose:
//   - Expose unexported combinatorics and 1-D tables to cubature_test only.
//   - Compiled only by `go test` (the _test.go suffix), never part of the API.

// Combination_TestOnly forwards to combination.
func Combination_TestOnly(dim, k, x int) []int { return combination(nil, dim, k, x) }

// Combos_TestOnly forwards to combos.
func Combos_TestOnly(k int, lambda float64, dim int) [][]float64 { return combos(k, lambda, dim) }

// SignCombos_TestOnly forwards to signCombos.
func SignCombos_TestOnly(k int, lambda float64, dim int) [][]float64 {
	return signCombos(k, lambda, dim)
}

// KronrodTables_TestOnly returns copies of the Gauss–Kronrod tables.
func KronrodTables_TestOnly() (nodes, kronrod [8]float64, gauss [4]float64) {
	return kronrodNodes, kronrodWeights, gaussWeights
}
