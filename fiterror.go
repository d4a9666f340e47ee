package curvefit

// cubicCalcError measures the max squared deviation of the interior sample
// points (i ∈ [1, n-2]) from the candidate cubic evaluated at u[i], per
// spec §4.7/C6. It returns the worst-case squared error and its index,
// which is guaranteed to be interior to the run.
func cubicCalcError(cubic *Cubic, points []float64, n, dims int, u []float64) (errSqMax float64, errIndex int) {
	ptEval := make([]float64, dims)
	for i := 1; i < n-1; i++ {
		cubic.Eval(u[i], ptEval)
		ptReal := points[i*dims : (i+1)*dims]
		errSq := lenSqVNVN(ptReal, ptEval)
		if errSq >= errSqMax {
			errSqMax = errSq
			errIndex = i
		}
	}
	return errSqMax, errIndex
}
