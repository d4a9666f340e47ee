package curvefit

import "math"

// b1 and b2 are the Bézier basis weights for the two free handles, as
// functions of the parameter u (spec §4.3).
func b1(u float64) float64 {
	tmp := 1.0 - u
	return 3.0 * u * tmp * tmp
}

func b2(u float64) float64 {
	return 3.0 * u * u * (1.0 - u)
}

func b0PlusB1(u float64) float64 {
	tmp := 1.0 - u
	return tmp * tmp * (1.0 + 2.0*u)
}

func b2PlusB3(u float64) float64 {
	return u * u * (3.0 - 2.0*u)
}

// pointsCalcCenterWeighted computes a weighted centroid where each point's
// weight is the sum of its incident chord lengths, per spec §4.4. The run
// is treated as a cycle for this weight computation only (the last point's
// "next" is the first) — the spec explicitly preserves this behavior for an
// otherwise-open curve.
func pointsCalcCenterWeighted(points []float64, n, dims int, center []float64) {
	ptPrev := points[(n-2)*dims : (n-1)*dims]
	ptCurr := points[(n-1)*dims : n*dims]
	ptNextOff := 0

	wPrev := lenVNVN(ptPrev, ptCurr)

	zeroVN(center)
	wTot := 0.0

	for i := 0; i < n; i++ {
		ptNext := points[ptNextOff : ptNextOff+dims]
		wNext := lenVNVN(ptCurr, ptNext)
		w := wPrev + wNext
		wTot += w

		madVN(center, center, ptCurr, w)

		wPrev = wNext
		ptPrev = ptCurr
		ptCurr = ptNext
		ptNextOff += dims
	}

	if wTot != 0.0 {
		imulVN(center, 1.0/wTot)
	}
}

// cubicFromPoints uses the least-squares method of spec §4.3 to find the
// Bézier control points (handles) for a run, given fixed endpoint tangents.
// It then applies the handle clamping of spec §4.5. points is the flat
// array of n*dims run points; uPrime is the parameterization to fit
// against; tanL and tanR are unit tangents that both point back along the
// run: tanL points away from the curve at P0 (from the second point toward
// P0) and tanR points into the curve at P3 (toward the previous point), so
// P1 = P0 - tanL*alphaL and P2 = P3 + tanR*alphaR both lie inside the run.
func cubicFromPoints(points []float64, n, dims int, uPrime, tanL, tanR []float64, result *Cubic) {
	p0 := points[0:dims]
	p3 := points[(n-1)*dims : n*dims]

	a0 := make([]float64, dims)
	a1 := make([]float64, dims)
	tmp := make([]float64, dims)

	var c00, c01, c11, x0, x1 float64

	for i := 0; i < n; i++ {
		pt := points[i*dims : (i+1)*dims]
		scaleVN(a0, tanL, b1(uPrime[i]))
		scaleVN(a1, tanR, b2(uPrime[i]))

		c00 += dotVN(a0, a0)
		c01 += dotVN(a0, a1)
		c11 += dotVN(a1, a1)

		bb0 := b0PlusB1(uPrime[i])
		bb1 := b2PlusB3(uPrime[i])
		for j := 0; j < dims; j++ {
			tmp[j] = (pt[j] - p0[j]*bb0) + p3[j]*bb1
		}

		x0 += dotVN(a0, tmp)
		x1 += dotVN(a1, tmp)
	}

	detC0C1 := c00*c11 - c01*c01
	detC0X := x1*c00 - x0*c01
	detXC1 := x0*c11 - x1*c01

	if isAlmostZero(detC0C1) {
		detC0C1 = c00 * c11 * 10e-12
	}

	// May still divide-by-zero; the check below catches NaN values.
	alphaL := detXC1 / detC0C1
	alphaR := detC0X / detC0C1

	// Flip check to catch NaN values.
	if !(alphaL >= 0.0) || !(alphaR >= 0.0) {
		alphaL = lenVNVN(p0, p3) / 3.0
		alphaR = alphaL
	}

	copyVN(result.P0, p0)
	copyVN(result.P3, p3)
	result.OrigSpan = uint(n - 1)

	// p1 = p0 - (tanL * alphaL); p2 = p3 + (tanR * alphaR)
	msubVNVN(result.P1, p0, tanL, alphaL)
	maddVNVN(result.P2, p3, tanR, alphaR)

	clampHandles(points, n, dims, tanL, tanR, p0, p3, result)
}

const clampScale = 3.0

// clampHandles implements the handle clamping of spec §4.5: compute the
// weighted centroid and the 3x clamp radius, and if either handle lies
// outside that radius, first retry with the fallback alpha heuristic, then
// project any still-offending handle radially onto the sphere boundary.
func clampHandles(points []float64, n, dims int, tanL, tanR, p0, p3 []float64, result *Cubic) {
	center := make([]float64, dims)
	pointsCalcCenterWeighted(points, n, dims, center)

	distSqMax := 0.0
	for i := 0; i < n; i++ {
		pt := points[i*dims : (i+1)*dims]
		d := 0.0
		for j := 0; j < dims; j++ {
			d += sq((pt[j] - center[j]) * clampScale)
		}
		if d > distSqMax {
			distSqMax = d
		}
	}

	p1DistSq := lenSqVNVN(center, result.P1)
	p2DistSq := lenSqVNVN(center, result.P2)

	if p1DistSq > distSqMax || p2DistSq > distSqMax {
		alpha := lenVNVN(p0, p3) / 3.0
		for j := 0; j < dims; j++ {
			result.P1[j] = p0[j] - tanL[j]*alpha
			result.P2[j] = p3[j] + tanR[j]*alpha
		}
		p1DistSq = lenSqVNVN(center, result.P1)
		p2DistSq = lenSqVNVN(center, result.P2)
	}

	if p1DistSq > distSqMax {
		projectOntoSphere(result.P1, center, distSqMax, p1DistSq)
	}
	if p2DistSq > distSqMax {
		projectOntoSphere(result.P2, center, distSqMax, p2DistSq)
	}
}

func projectOntoSphere(p, center []float64, distSqMax, distSq float64) {
	isubVN(p, center)
	imulVN(p, math.Sqrt(distSqMax)/math.Sqrt(distSq))
	iaddVN(p, center)
}
