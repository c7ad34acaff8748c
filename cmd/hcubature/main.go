// Command hcubature integrates Genz test problems with the adaptive
// h-cubature engine and inspects the underlying rules.
//
//	hcubature integrate --family gaussian --dim 3 --rel-tol 1e-8
//	hcubature rule --dim 4 --output yaml
//
// Every flag can also be set from a YAML file (--config) or from the
// environment with the HCUBATURE_ prefix, e.g. HCUBATURE_INTEGRATE_MAX_EVAL.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
