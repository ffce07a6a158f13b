// Package projection implements the revenue and break-even projection engine
// for a single pharmaceutical asset. Given a set of scalar assumptions it
// produces an ordered sequence of per-year financial figures and derives the
// break-even year. The computation is a pure function of its input: no I/O,
// no shared state, deterministic output.
package projection

// RampShape selects the curve revenue follows from launch to peak.
type RampShape string

const (
	// RampLinear reaches peak in equal increments (factor i/n for year i).
	RampLinear RampShape = "linear"
	// RampFast front-loads uptake (fast adoption, e.g. high unmet need).
	RampFast RampShape = "fast"
	// RampSlow back-loads uptake (slow adoption, e.g. crowded market).
	RampSlow RampShape = "slow"
)

// Assumptions holds the user-adjustable inputs for a projection.
// All monetary values are in millions of USD per year unless noted.
type Assumptions struct {
	PeakSales   float64   `json:"peak_sales"`   // Max annual revenue absent risk adjustment ($M/yr)
	Probability float64   `json:"probability"`  // Probability of success, risk adjustment fraction [0,1]
	RampYears   int       `json:"ramp_years"`   // Years to reach peak revenue (1..Horizon)
	RampShape   RampShape `json:"ramp_shape"`   // Ramp curve (defaults to linear when empty)
	CostRatio   float64   `json:"cost_ratio"`   // Fraction of revenue consumed by operating costs [0,1]
	Investment  float64   `json:"investment"`   // Upfront investment ($M)
	Horizon     int       `json:"horizon"`      // Number of years to project (>= 1)
	LaunchYear  int       `json:"launch_year"`  // Calendar year of year 1, 0 = unlabeled
}

// YearlyFigure is one projected year of the model.
type YearlyFigure struct {
	Year            int     `json:"year"`                    // 1-based year index
	CalendarYear    int     `json:"calendar_year,omitempty"` // Set when Assumptions.LaunchYear > 0
	Revenue         float64 `json:"revenue"`                 // Risk-adjusted revenue ($M)
	OperatingCost   float64 `json:"operating_cost"`          // Revenue x cost ratio ($M)
	OperatingProfit float64 `json:"operating_profit"`        // Revenue - operating cost ($M)
	Cumulative      float64 `json:"cumulative_cash_flow"`    // -Investment + sum of profits so far ($M)
}

// Projection is the full result of a single computation.
type Projection struct {
	Assumptions      Assumptions    `json:"assumptions"`
	EffectivePeak    float64        `json:"effective_peak"` // PeakSales x Probability ($M/yr)
	Years            []YearlyFigure `json:"years"`
	BreakEvenYear    int            `json:"break_even_year"` // 0 when not reached within horizon
	BreakEvenReached bool           `json:"break_even_reached"`
}

// CostRatioFromMargins derives the single operating cost ratio from a COGS
// fraction of revenue and an SG&A fraction of gross profit:
// operating profit = revenue x (1-cogs) x (1-sga), so the combined ratio
// is 1 - (1-cogs)(1-sga).
func CostRatioFromMargins(cogs, sga float64) float64 {
	return 1 - (1-cogs)*(1-sga)
}

// DefaultAssumptions returns the baseline Ianalumab scenario: $638M peak
// sales, 80% probability of success, 5-year linear ramp, 15% COGS with 25%
// SG&A of gross profit, $670M total upfront investment, launched 2027.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		PeakSales:   638,
		Probability: 0.80,
		RampYears:   5,
		RampShape:   RampLinear,
		CostRatio:   CostRatioFromMargins(0.15, 0.25),
		Investment:  670,
		Horizon:     10,
		LaunchYear:  2027,
	}
}

// ControlRange documents the recognized bounds of a dashboard control.
type ControlRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step,omitempty"`
}

// ControlRanges returns the documented range for each assumption field, keyed
// by JSON field name. The engine only enforces the hard constraints (see
// Validate); the upper bounds here are UI guidance.
func ControlRanges() map[string]ControlRange {
	return map[string]ControlRange{
		"peak_sales":  {Min: 0, Max: 5000, Step: 1},
		"probability": {Min: 0, Max: 1, Step: 0.05},
		"ramp_years":  {Min: 1, Max: 20, Step: 1},
		"cost_ratio":  {Min: 0, Max: 1, Step: 0.01},
		"investment":  {Min: 0, Max: 5000, Step: 10},
		"horizon":     {Min: 1, Max: 20, Step: 1},
		"launch_year": {Min: 2025, Max: 2035, Step: 1},
	}
}
