package cubature_test

import (
	"fmt"
	"testing"

	"github.com/lingium/math/cubature"
	"github.com/lingium/math/genz"
)

// sinkResult keeps the compiler from eliding the benchmarked call.
var sinkResult cubature.Result

// benchmarkFamily integrates one seeded Genz problem per iteration.
// Setup (parameter draw, integrand lookup) is excluded from the timing.
func benchmarkFamily(b *testing.B, fam genz.Family, dim int, opts ...cubature.Option) {
	p, err := genz.NewParams(fam, dim, 1)
	if err != nil {
		b.Fatalf("NewParams: %v", err)
	}
	f, err := genz.Integrand(fam)
	if err != nil {
		b.Fatalf("Integrand: %v", err)
	}
	lo, hi := genz.UnitCube(dim)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := cubature.Integrate(f, p, dim, lo, hi, 50000, 0, 1e-6, opts...)
		if err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
		sinkResult = res
	}
}

// BenchmarkIntegrate_Families covers every family for dims 2..4.
func BenchmarkIntegrate_Families(b *testing.B) {
	for _, fam := range genz.Families() {
		for dim := 2; dim <= 4; dim++ {
			b.Run(fmt.Sprintf("%s/d=%d", fam, dim), func(b *testing.B) {
				benchmarkFamily(b, fam, dim)
			})
		}
	}
}

// BenchmarkIntegrate_Concurrent compares sequential and concurrent split
// evaluation on a cheap and on a moderately expensive integrand.
func BenchmarkIntegrate_Concurrent(b *testing.B) {
	for _, dim := range []int{3, 6} {
		b.Run(fmt.Sprintf("sequential/d=%d", dim), func(b *testing.B) {
			benchmarkFamily(b, genz.Gaussian, dim)
		})
		b.Run(fmt.Sprintf("concurrent/d=%d", dim), func(b *testing.B) {
			benchmarkFamily(b, genz.Gaussian, dim, cubature.WithConcurrentSplits())
		})
	}
}

// BenchmarkGenzMalikRule measures a single region evaluation.
func BenchmarkGenzMalikRule(b *testing.B) {
	for _, dim := range []int{2, 5, 10} {
		b.Run(fmt.Sprintf("d=%d", dim), func(b *testing.B) {
			g, err := cubature.NewGenzMalik(dim)
			if err != nil {
				b.Fatalf("NewGenzMalik: %v", err)
			}
			p, _ := genz.NewParams(genz.Gaussian, dim, 1)
			f, _ := genz.Integrand(genz.Gaussian)
			lo, hi := genz.UnitCube(dim)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				est, err := cubature.GenzMalikRule(f, p, g, lo, hi)
				if err != nil {
					b.Fatalf("GenzMalikRule: %v", err)
				}
				sinkResult.Value = est.Value
			}
		})
	}
}

// BenchmarkNewGenzMalik measures node construction, dominated by the 2^dim corner ring.
func BenchmarkNewGenzMalik(b *testing.B) {
	for _, dim := range []int{4, 10, 16} {
		b.Run(fmt.Sprintf("d=%d", dim), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := cubature.NewGenzMalik(dim); err != nil {
					b.Fatalf("NewGenzMalik: %v", err)
				}
			}
		})
	}
}
