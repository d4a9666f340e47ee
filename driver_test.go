package curvefit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFitCubicToPointsStraightLine(t *testing.T) {
	dims := 2
	n := 5
	points := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		points[i*dims] = float64(i) * 2
		points[i*dims+1] = 1
	}

	knots, origIndex, cornerIndex := FitCubicToPoints(points, dims, 0.01, nil)

	if cornerIndex != nil {
		t.Errorf("cornerIndex = %v, want nil when corners is not supplied", cornerIndex)
	}
	if len(knots) == 0 {
		t.Fatal("knots is empty")
	}
	if len(knots)%(3*dims) != 0 {
		t.Fatalf("len(knots) = %d is not a multiple of %d", len(knots), 3*dims)
	}

	numKnots := len(knots) / (3 * dims)
	if got, want := len(origIndex), numKnots; got != want {
		t.Errorf("len(origIndex) = %d, want %d", got, want)
	}

	// The first and last knot anchors must exactly reproduce the input
	// endpoints.
	firstAnchor := knots[dims : 2*dims]
	lastAnchor := knots[len(knots)-2*dims : len(knots)-dims]
	diff(t, points[0:dims], firstAnchor, cmpopts.EquateApprox(0, 1e-9))
	diff(t, points[(n-1)*dims:n*dims], lastAnchor, cmpopts.EquateApprox(0, 1e-9))

	if origIndex[0] != 0 {
		t.Errorf("origIndex[0] = %d, want 0", origIndex[0])
	}
	if origIndex[len(origIndex)-1] != uint(n-1) {
		t.Errorf("origIndex[last] = %d, want %d", origIndex[len(origIndex)-1], n-1)
	}
}

func TestFitCubicToPointsQuarterCircle(t *testing.T) {
	dims := 2
	n := 33
	points := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		theta := (math.Pi / 2) * float64(i) / float64(n-1)
		points[i*dims] = math.Cos(theta)
		points[i*dims+1] = math.Sin(theta)
	}

	knots, origIndex, _ := FitCubicToPoints(points, dims, 1e-3, nil)

	numKnots := len(knots) / (3 * dims)
	if numKnots < 2 {
		t.Fatalf("expected at least one fitted segment (2 knots), got %d knots", numKnots)
	}
	if origIndex[0] != 0 || origIndex[len(origIndex)-1] != uint(n-1) {
		t.Errorf("origIndex bounds = [%d, %d], want [0, %d]", origIndex[0], origIndex[len(origIndex)-1], n-1)
	}
}

func TestFitCubicToPointsHalfCircleSplitsIntoMultipleSegments(t *testing.T) {
	dims := 2
	n := 65
	points := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		theta := math.Pi * float64(i) / float64(n-1)
		points[i*dims] = math.Cos(theta)
		points[i*dims+1] = math.Sin(theta)
	}

	knots, _, _ := FitCubicToPoints(points, dims, 1e-4, nil)
	numKnots := len(knots) / (3 * dims)
	if numKnots < 3 {
		t.Errorf("expected a half circle at this tolerance to need >= 2 segments (>= 3 knots), got %d knots", numKnots)
	}
}

func TestFitCubicToPointsWithCorners(t *testing.T) {
	dims := 2
	// An L-shape: a vertical run of 11 points followed by a horizontal run
	// of 11 points, sharing the corner point.
	n := 21
	points := make([]float64, n*dims)
	for i := 0; i < 11; i++ {
		points[i*dims] = 0
		points[i*dims+1] = float64(i)
	}
	for i := 11; i < n; i++ {
		points[i*dims] = float64(i - 10)
		points[i*dims+1] = 10
	}

	corners := []int{0, 10, n - 1}
	knots, origIndex, cornerIndex := FitCubicToPoints(points, dims, 0.01, corners)

	if cornerIndex == nil {
		t.Fatal("cornerIndex is nil despite corners being explicitly supplied")
	}
	if len(cornerIndex) != len(corners) {
		t.Fatalf("len(cornerIndex) = %d, want %d", len(cornerIndex), len(corners))
	}
	if cornerIndex[0] != 0 {
		t.Errorf("cornerIndex[0] = %d, want 0", cornerIndex[0])
	}
	numKnots := len(knots) / (3 * dims)
	if cornerIndex[len(cornerIndex)-1] != uint(numKnots-1) {
		t.Errorf("cornerIndex[last] = %d, want %d", cornerIndex[len(cornerIndex)-1], numKnots-1)
	}
	for i := 1; i < len(cornerIndex); i++ {
		if cornerIndex[i] < cornerIndex[i-1] {
			t.Errorf("cornerIndex is not monotonically non-decreasing: %v", cornerIndex)
		}
	}

	if origIndex[0] != 0 || origIndex[len(origIndex)-1] != uint(n-1) {
		t.Errorf("origIndex bounds = [%d, %d], want [0, %d]", origIndex[0], origIndex[len(origIndex)-1], n-1)
	}
}

func TestFitCubicToPointsCornerIndexFirstEntryIsLiteralCornerValue(t *testing.T) {
	dims := 2
	n := 15
	points := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		points[i*dims] = float64(i)
		points[i*dims+1] = 0
	}

	// corners[0] is not 0, so cornerIndex[0] must carry that literal point
	// index rather than a segment count of 0 — the two would be
	// indistinguishable if corners always started at 0.
	corners := []int{3, 7, n - 1}
	_, _, cornerIndex := FitCubicToPoints(points, dims, 0.01, corners)

	if cornerIndex == nil {
		t.Fatal("cornerIndex is nil despite corners being explicitly supplied")
	}
	if cornerIndex[0] != uint(corners[0]) {
		t.Errorf("cornerIndex[0] = %d, want %d (the literal first corner index)", cornerIndex[0], corners[0])
	}
}

func TestFitCubicToPointsSinglePoint(t *testing.T) {
	dims := 3
	points := []float64{1, 2, 3}

	knots, origIndex, cornerIndex := FitCubicToPoints(points, dims, 0.01, nil)

	if cornerIndex != nil {
		t.Errorf("cornerIndex = %v, want nil", cornerIndex)
	}
	if got, want := len(knots), 2*3*dims; got != want {
		t.Fatalf("len(knots) = %d, want %d", got, want)
	}
	for i := 0; i < len(knots); i += dims {
		diff(t, points, knots[i:i+dims])
	}
	diff(t, []uint{0, 0}, origIndex)
}

func TestFitCubicToPointsDimsMustBePositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for dims <= 0")
		}
	}()
	FitCubicToPoints([]float64{1, 2}, 0, 0.1, nil)
}

func TestFitCubicToPointsCornersMustBeAscending(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for non-ascending corners")
		}
	}()
	points := make([]float64, 10*2)
	FitCubicToPoints(points, 2, 0.1, []int{0, 0, 9})
}

func TestFitCubicToPointsFloat32MatchesDoublePrecisionShape(t *testing.T) {
	dims := 2
	n := 9
	points64 := make([]float64, n*dims)
	points32 := make([]float32, n*dims)
	for i := 0; i < n; i++ {
		points64[i*dims] = float64(i)
		points32[i*dims] = float32(i)
		points64[i*dims+1] = 0
		points32[i*dims+1] = 0
	}

	knots64, origIndex64, _ := FitCubicToPoints(points64, dims, 0.01, nil)
	knots32, origIndex32, _ := FitCubicToPointsFloat32(points32, dims, 0.01, nil)

	if len(knots32) != len(knots64) {
		t.Fatalf("len(knots32) = %d, len(knots64) = %d, want equal", len(knots32), len(knots64))
	}
	diff(t, origIndex64, origIndex32)

	knots64As32 := make([]float32, len(knots64))
	for i, v := range knots64 {
		knots64As32[i] = float32(v)
	}
	diff(t, knots64As32, knots32, cmpopts.EquateApprox(1e-4, 0))
}
