// SPDX-License-Identifier: MIT

// Package cubature: combinatorial node generation for the Genz–Malik rule.
//
// Node rings are built from axis subsets. combination maps an index
// directly to a subset via binomial counting, so any subset can be produced
// without enumerating its predecessors. signCombos expands every subset into
// all of its sign patterns in binary-counting order ("−" is a set bit, axis
// c[0] is the least significant), which keeps the tables reproducible.
package cubature

import "gonum.org/v1/gonum/stat/combin"

// combination writes into c the x-th (0-based) k-subset of {0, …, dim−1}
// in lexicographic order and returns c[:k]. It requires 0 <= x < C(dim, k).
//
// For position i the candidate element is advanced while x lies beyond the
// block of subsets that start with it; that block has C(dim−next−1, k−i−1)
// members.
//
// Complexity: O(dim) binomial evaluations.
func combination(c []int, dim, k, x int) []int {
	if cap(c) < k {
		c = make([]int, k)
	}
	c = c[:k]

	var (
		i, next, block int
	)
	next = 0
	for i = 0; i < k; i++ {
		for {
			block = combin.Binomial(dim-next-1, k-i-1)
			if x < block {
				break
			}
			x -= block
			next++
		}
		c[i] = next
		next++
	}

	return c
}

// combos returns, for every k-subset of the axes in lexicographic order,
// the dim-length vector holding lambda on the subset's axes and 0 elsewhere.
func combos(k int, lambda float64, dim int) [][]float64 {
	n := combin.Binomial(dim, k)
	out := make([][]float64, 0, n)
	c := make([]int, k)

	var x, j int
	for x = 0; x < n; x++ {
		c = combination(c, dim, k, x)
		v := make([]float64, dim)
		for j = 0; j < k; j++ {
			v[c[j]] = lambda
		}
		out = append(out, v)
	}

	return out
}

// signCombos returns, for every k-subset of the axes, all 2^k vectors that
// carry ±lambda on the subset's axes and 0 elsewhere. Patterns of one
// subset are contiguous and start with all signs positive; each next
// pattern flips signs from the lowest axis up to and including the first
// positive one (a binary increment).
//
// Complexity: O(C(dim,k) · 2^k · dim) time and memory.
func signCombos(k int, lambda float64, dim int) [][]float64 {
	n := combin.Binomial(dim, k)
	patterns := 1 << k
	out := make([][]float64, 0, n*patterns)
	c := make([]int, k)
	signs := make([]float64, k)

	var x, j, t int
	for x = 0; x < n; x++ {
		c = combination(c, dim, k, x)
		for t = range signs {
			signs[t] = lambda
		}
		for j = 0; j < patterns; j++ {
			v := make([]float64, dim)
			for t = 0; t < k; t++ {
				v[c[t]] = signs[t]
			}
			out = append(out, v)

			// increment: flip until a sign turns negative
			for t = 0; t < k; t++ {
				signs[t] = -signs[t]
				if signs[t] < 0 {
					break
				}
			}
		}
	}

	return out
}
