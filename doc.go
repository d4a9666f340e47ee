// Package curvefit fits sequences of n-dimensional points with cubic Bézier
// segments that stay within a given error tolerance, splitting a run into
// more segments only where a single segment does not fit. The segment count
// is not guaranteed to be the minimum possible.
//
// # Background
//
// The fitter is a port of the recursive least-squares approach used by
// Blender's curve_fit_nd library, which is itself derived from Philip J.
// Schneider's "An Algorithm for Automatically Fitting Digitized Curves"
// (Graphics Gems, 1990). For each run of points between two corners, it:
//
//   - computes a chord-length parameterization of the run,
//   - solves a small least-squares problem for the two free Bézier handles
//     given fixed endpoint tangents,
//   - measures the worst-case fit error and, if it's within tolerance,
//     accepts the segment,
//   - otherwise refines the parameterization with a bounded number of
//     Newton-Raphson iterations and retries,
//   - and if that still fails, splits the run at its worst point and
//     recurses on each half.
//
// # Dimensionality
//
// The core algorithm is written entirely in terms of flat []float64 point
// arrays (row-major, dims floats per point) and has no notion of 2D or 3D.
// [Point] and the other 2D helpers in this package are thin convenience
// wrappers for callers working with 2D data; they are not used internally.
//
// # Corners
//
// Callers may mark a subset of the input points as corners, in which case
// the curve is fit as a sequence of independent runs between consecutive
// corners rather than as a single run end to end. Points that are corners
// retain a sharp, unsmoothed tangent at the fitted curve's boundary.
package curvefit
