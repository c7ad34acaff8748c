// SPDX-License-Identifier: MIT

// Package cubature: fixed 1-D Gauss–Kronrod 7/15 rule tables on [-1, 1].
//
// The rule is symmetric about 0, so only the non-negative abscissas are
// stored; every non-zero node is evaluated together with its mirror.
// Index 7 is the midpoint. The odd indices (1, 3, 5) plus the midpoint are
// the 7-point Gauss nodes, whose weights live in gaussWeights.
package cubature

// kronrodNodes are the 15-point Kronrod abscissas, outermost first.
var kronrodNodes = [8]float64{
	9.9145537112081263920685469752598e-01,
	9.4910791234275852452618968404809e-01,
	8.6486442335976907278971278864098e-01,
	7.415311855993944398638647732811e-01,
	5.8608723546769113029414483825842e-01,
	4.0584515137739716690660641207707e-01,
	2.0778495500789846760068940377309e-01,
	0.0,
}

// kronrodWeights pair with kronrodNodes.
var kronrodWeights = [8]float64{
	2.2935322010529224963732008059913e-02,
	6.3092092629978553290700663189093e-02,
	1.0479001032225018383987632254189e-01,
	1.4065325971552591874518959051021e-01,
	1.6900472663926790282658342659795e-01,
	1.9035057806478540991325640242055e-01,
	2.0443294007529889241416199923466e-01,
	2.0948214108472782801299917489173e-01,
}

// gaussWeights are the embedded 7-point Gauss weights for kronrodNodes[1],
// kronrodNodes[3], kronrodNodes[5] and the midpoint.
var gaussWeights = [4]float64{
	1.2948496616886969327061143267787e-01,
	2.797053914892766679014677714229e-01,
	3.8183005050511894495036977548818e-01,
	4.1795918367346938775510204081658e-01,
}

// kronrodEvals is the number of integrand calls per 1-D region.
const kronrodEvals = 15
