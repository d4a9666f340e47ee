package curvefit

// Cubic is a single cubic Bézier segment over dims-dimensional control
// points. P0 and P3 are the endpoints of the input run it was fit to; P1
// and P2 are the handles. OrigSpan counts the number of input sample
// intervals this segment represents, used to reconstruct the mapping back
// to input indices when flattening a CubicList.
type Cubic struct {
	P0, P1, P2, P3 []float64
	OrigSpan       uint
	next           *Cubic
}

func newCubic(dims int) *Cubic {
	return &Cubic{
		P0: make([]float64, dims),
		P1: make([]float64, dims),
		P2: make([]float64, dims),
		P3: make([]float64, dims),
	}
}

func (c *Cubic) init(p0, p1, p2, p3 []float64) {
	copyVN(c.P0, p0)
	copyVN(c.P1, p1)
	copyVN(c.P2, p2)
	copyVN(c.P3, p3)
}

// Eval computes the position of the cubic at parameter t using the stable
// de Casteljau recursion (three linear interpolations), writing the result
// into dst.
func (c *Cubic) Eval(t float64, dst []float64) {
	s := 1.0 - t
	for j := range dst {
		p01 := c.P0[j]*s + c.P1[j]*t
		p12 := c.P1[j]*s + c.P2[j]*t
		p23 := c.P2[j]*s + c.P3[j]*t
		dst[j] = (p01*s+p12*t)*s + (p12*s+p23*t)*t
	}
}

// Velocity computes P'(t), writing the result into dst.
func (c *Cubic) Velocity(t float64, dst []float64) {
	s := 1.0 - t
	for j := range dst {
		dst[j] = 3.0 * ((c.P1[j]-c.P0[j])*s*s +
			2.0*(c.P2[j]-c.P1[j])*s*t +
			(c.P3[j]-c.P2[j])*t*t)
	}
}

// Acceleration computes P''(t), writing the result into dst.
func (c *Cubic) Acceleration(t float64, dst []float64) {
	s := 1.0 - t
	for j := range dst {
		dst[j] = 6.0 * ((c.P2[j]-2.0*c.P1[j]+c.P0[j])*s +
			(c.P3[j]-2.0*c.P2[j]+c.P1[j])*t)
	}
}
