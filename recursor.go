package curvefit

const fitIterationMax = 4

// fitCubicToPoints is the per-run fit recursor described in spec §4.7: try
// a direct fit, then bounded reparameterization, then split-and-recurse.
// points is the flat n*dims array for this run; lc is the length cache for
// the whole top-level run this one is a sub-run of (indexed from the
// sub-run's own offset into the cache, see driver.go). tanL and tanR are
// unit tangents pointing back along the run, as for cubicFromPoints: tanL
// points away from the curve at the first point, tanR into the curve at the
// last point.
func fitCubicToPoints(
	points []float64,
	n, dims int,
	lc []float64,
	tanL, tanR []float64,
	errorThreshold float64,
	clist *cubicList,
) {
	errorSq := sq(errorThreshold)

	if n == 2 {
		cubic := newCubic(dims)
		p0 := points[0:dims]
		p3 := points[dims : 2*dims]
		copyVN(cubic.P0, p0)
		copyVN(cubic.P3, p3)

		dist := lenVNVN(p0, p3) / 3.0
		msubVNVN(cubic.P1, p0, tanL, dist)
		maddVNVN(cubic.P2, p3, tanR, dist)
		cubic.OrigSpan = 1

		clist.prepend(cubic)
		return
	}

	u := make([]float64, n)
	chordLengthParameterize(lc, n, u)

	cubic := newCubic(dims)
	cubicFromPoints(points, n, dims, u, tanL, tanR, cubic)
	errSqMax, splitIndex := cubicCalcError(cubic, points, n, dims, u)

	if errSqMax < errorSq {
		clist.prepend(cubic)
		return
	}

	uPrime := make([]float64, n)
	for iter := 0; iter < fitIterationMax; iter++ {
		if !cubicReparameterize(cubic, points, n, dims, u, uPrime) {
			break
		}

		cubicFromPoints(points, n, dims, uPrime, tanL, tanR, cubic)
		errSqMax, splitIndex = cubicCalcError(cubic, points, n, dims, uPrime)

		if errSqMax < errorSq {
			clist.prepend(cubic)
			return
		}

		u, uPrime = uPrime, u
	}

	// Fitting failed: split at the max-error point and fit recursively.
	tanCenter := make([]float64, dims)

	ptAOff := (splitIndex - 1) * dims
	ptBOff := (splitIndex + 1) * dims
	ptA := points[ptAOff : ptAOff+dims]
	ptB := points[ptBOff : ptBOff+dims]

	if equalsVN(ptA, ptB, 1e-12) {
		ptAOff += dims
		ptA = points[ptAOff : ptAOff+dims]
	}

	normalizeVNVN(tanCenter, ptA, ptB)

	fitCubicToPoints(points[:(splitIndex+1)*dims], splitIndex+1, dims, lc, tanL, tanCenter, errorThreshold, clist)
	fitCubicToPoints(points[splitIndex*dims:n*dims], n-splitIndex, dims, lc[splitIndex:], tanCenter, tanR, errorThreshold, clist)
}
