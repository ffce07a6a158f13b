package projection

import "gonum.org/v1/gonum/interp"

// Base uptake curves for the shaped ramps, expressed as 5 reference points
// from first commercial year to peak year. Both are strictly increasing and
// end at 1.0, which keeps ramp revenue monotonically non-decreasing after
// resampling.
var rampBases = map[RampShape][]float64{
	RampFast: {0.20, 0.50, 0.80, 0.95, 1.0},
	RampSlow: {0.05, 0.20, 0.40, 0.70, 1.0},
}

// rampFactors returns the revenue fraction of effective peak for each ramp
// year 1..n. Linear ramps use i/n, which reaches exactly 1.0 in year n.
// Shaped ramps resample their 5-point base curve to n points by piecewise
// linear interpolation; the sample grid always includes the last base point,
// so the final ramp year hits factor 1.0 regardless of n.
func rampFactors(n int, shape RampShape) []float64 {
	factors := make([]float64, n)

	base, shaped := rampBases[shape]
	if !shaped {
		for i := 1; i <= n; i++ {
			factors[i-1] = float64(i) / float64(n)
		}
		return factors
	}

	if n == 1 {
		// Single-year ramp: straight to peak.
		factors[0] = 1.0
		return factors
	}

	xs := []float64{1, 2, 3, 4, 5}
	var pl interp.PiecewiseLinear
	// Fit only fails for mismatched or non-increasing xs, which cannot
	// happen with the fixed grid above.
	if err := pl.Fit(xs, base); err != nil {
		panic("projection: ramp base curve is not interpolable: " + err.Error())
	}

	for i := 0; i < n; i++ {
		x := 1 + 4*float64(i)/float64(n-1)
		factors[i] = pl.Predict(x)
	}
	return factors
}
