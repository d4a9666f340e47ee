package curvefit

import (
	"math"
	"sort"
)

// cubicFindRoot performs one Newton-Raphson step to refine the parameter u
// for a single sample point p, per spec §4.6. The result may be NaN; the
// caller must check for that.
func cubicFindRoot(cubic *Cubic, p []float64, u float64, dims int) float64 {
	q0u := make([]float64, dims)
	q1u := make([]float64, dims)
	q2u := make([]float64, dims)

	cubic.Eval(u, q0u)
	cubic.Velocity(u, q1u)
	cubic.Acceleration(u, q2u)

	isubVN(q0u, p)
	return u - dotVN(q0u, q1u)/(lenSqVN(q1u)+dotVN(q0u, q2u))
}

// cubicReparameterize recomputes u' from u using Newton-Raphson (spec
// §4.6). It returns false (leaving uPrime unspecified) if any refined
// value is non-finite, or if after sorting the refined array falls outside
// [0, 1].
func cubicReparameterize(cubic *Cubic, points []float64, n, dims int, u, uPrime []float64) bool {
	for i := 0; i < n; i++ {
		pt := points[i*dims : (i+1)*dims]
		uPrime[i] = cubicFindRoot(cubic, pt, u[i], dims)
		if !isFinite(uPrime[i]) {
			return false
		}
	}

	sort.Float64s(uPrime[:n])

	if uPrime[0] < 0.0 || uPrime[n-1] > 1.0 {
		return false
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
