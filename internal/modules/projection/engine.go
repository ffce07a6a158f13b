package projection

// Compute validates the assumptions and projects the asset over the full
// horizon. Revenue ramps from zero to the effective peak (peak sales x
// probability of success) over the ramp years, then holds flat. Cumulative
// net cash flow starts at -Investment (year 0) and accumulates operating
// profit; the break-even year is the first year it becomes non-negative.
//
// Compute has no side effects and never returns partial results: on a
// validation failure the returned error is an *InvalidAssumptionError naming
// the offending field and the projection is nil.
func Compute(a Assumptions) (*Projection, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	shape := a.RampShape
	if shape == "" {
		shape = RampLinear
	}

	effectivePeak := a.PeakSales * a.Probability
	factors := rampFactors(a.RampYears, shape)

	p := &Projection{
		Assumptions:   a,
		EffectivePeak: effectivePeak,
		Years:         make([]YearlyFigure, a.Horizon),
	}

	cumulative := -a.Investment
	for i := 1; i <= a.Horizon; i++ {
		factor := 1.0
		if i <= a.RampYears {
			factor = factors[i-1]
		}

		revenue := effectivePeak * factor
		cost := revenue * a.CostRatio
		profit := revenue - cost
		cumulative += profit

		fig := YearlyFigure{
			Year:            i,
			Revenue:         revenue,
			OperatingCost:   cost,
			OperatingProfit: profit,
			Cumulative:      cumulative,
		}
		if a.LaunchYear > 0 {
			fig.CalendarYear = a.LaunchYear + i - 1
		}
		p.Years[i-1] = fig

		if !p.BreakEvenReached && cumulative >= 0 {
			p.BreakEvenYear = i
			p.BreakEvenReached = true
		}
	}

	return p, nil
}
