package curvefit

// FitCubicToPoints is the primary double-precision entry point (spec §6.1).
// points is a flattened array of points_len*dims doubles, row-major by
// point. corners, if non-nil, must be strictly ascending indices within
// [0, points_len-1] with len(corners) >= 2; if nil, it defaults to
// {0, points_len-1}.
//
// It returns the flattened knot-triples array (length
// (segCount+1)*3*dims, laid out as (left-handle, anchor, right-handle) per
// knot, see spec §6.2), the per-knot original sample index, and — only
// when the caller explicitly supplied corners (spec §9's preserved open
// question) — a per-corner index array: its first entry is the literal
// point index corners[0], and every entry after that is the cumulative
// fitted-segment count at that corner.
func FitCubicToPoints(
	points []float64,
	dims int,
	errorThreshold float64,
	corners []int,
) (knots []float64, origIndex []uint, cornerIndex []uint) {
	if dims <= 0 {
		panic("FitCubicToPoints: dims must be positive")
	}
	pointsLen := len(points) / dims
	if pointsLen == 0 {
		panic("FitCubicToPoints: points must not be empty")
	}

	explicitCorners := corners != nil
	if corners == nil {
		corners = []int{0, pointsLen - 1}
	} else {
		assertStrictlyAscending(corners, pointsLen)
	}

	clist := &cubicList{dims: dims}

	tanL := make([]float64, dims)
	tanR := make([]float64, dims)

	var lc lengthCache
	lc.dims = dims

	var cornerIdx []uint
	if explicitCorners {
		cornerIdx = make([]uint, 0, len(corners))
		cornerIdx = append(cornerIdx, uint(corners[0]))
	}

	for i := 1; i < len(corners); i++ {
		firstPoint := corners[i-1]
		runLen := corners[i] - corners[i-1] + 1

		if runLen > 1 {
			off := firstPoint * dims
			run := points[off : off+runLen*dims]

			ptL := run[0:dims]
			ptLNext := run[dims : 2*dims]
			ptRPrev := run[(runLen-2)*dims : (runLen-1)*dims]
			ptR := run[(runLen-1)*dims : runLen*dims]

			normalizeVNVN(tanL, ptL, ptLNext)
			normalizeVNVN(tanR, ptRPrev, ptR)

			lc.ensure(runLen)
			lc.fill(run, runLen)

			fitCubicToPoints(run, runLen, dims, lc.buf, tanL, tanR, errorThreshold, clist)
		} else if pointsLen == 1 {
			pt := points[0:dims]
			cubic := newCubic(dims)
			cubic.init(pt, pt, pt, pt)
			cubic.OrigSpan = 0
			clist.prepend(cubic)
		}

		if cornerIdx != nil {
			cornerIdx = append(cornerIdx, clist.len)
		}
	}

	indexLast := uint(corners[len(corners)-1])
	knots, origIndex = clist.flatten(indexLast, true)

	return knots, origIndex, cornerIdx
}

func assertStrictlyAscending(corners []int, pointsLen int) {
	if len(corners) < 2 {
		panic("FitCubicToPoints: corners must have at least two entries")
	}
	for i, c := range corners {
		if c < 0 || c >= pointsLen {
			panic("FitCubicToPoints: corner index out of range")
		}
		if i > 0 && corners[i-1] >= c {
			panic("FitCubicToPoints: corners must be strictly ascending")
		}
	}
}

// FitCubicToPointsFloat32 is the float convenience entry point (spec §6.3).
// It widens the input to double precision, dispatches to
// [FitCubicToPoints], and narrows the result back to single precision.
// There are no semantic differences from the double entry point.
func FitCubicToPointsFloat32(
	points []float32,
	dims int,
	errorThreshold float32,
	corners []int,
) (knots []float32, origIndex []uint, cornerIndex []uint) {
	pointsDB := make([]float64, len(points))
	for i, v := range points {
		pointsDB[i] = float64(v)
	}

	knotsDB, origIndexOut, cornerIndexOut := FitCubicToPoints(pointsDB, dims, float64(errorThreshold), corners)

	knotsFl := make([]float32, len(knotsDB))
	for i, v := range knotsDB {
		knotsFl[i] = float32(v)
	}

	return knotsFl, origIndexOut, cornerIndexOut
}
