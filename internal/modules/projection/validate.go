package projection

import "fmt"

// InvalidAssumptionError reports an out-of-range or malformed assumption.
// Field holds the JSON field name of the offending input so the UI can
// surface the message next to the matching control.
type InvalidAssumptionError struct {
	Field  string
	Reason string
}

func (e *InvalidAssumptionError) Error() string {
	return fmt.Sprintf("invalid assumption %q: %s", e.Field, e.Reason)
}

// invalid builds an InvalidAssumptionError for a field.
func invalid(field, format string, args ...interface{}) error {
	return &InvalidAssumptionError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks all assumption constraints. It returns the first violation
// as an *InvalidAssumptionError, or nil when the assumptions are usable.
func (a Assumptions) Validate() error {
	if a.PeakSales < 0 {
		return invalid("peak_sales", "must be non-negative (got %g)", a.PeakSales)
	}
	if a.Probability < 0 || a.Probability > 1 {
		return invalid("probability", "must be between 0 and 1 (got %g)", a.Probability)
	}
	if a.Horizon < 1 {
		return invalid("horizon", "must be at least 1 year (got %d)", a.Horizon)
	}
	if a.RampYears < 1 {
		return invalid("ramp_years", "must be at least 1 year (got %d)", a.RampYears)
	}
	if a.RampYears > a.Horizon {
		return invalid("ramp_years", "must not exceed the %d-year horizon (got %d)", a.Horizon, a.RampYears)
	}
	switch a.RampShape {
	case "", RampLinear, RampFast, RampSlow:
	default:
		return invalid("ramp_shape", "must be one of linear, fast, slow (got %q)", a.RampShape)
	}
	if a.CostRatio < 0 || a.CostRatio > 1 {
		return invalid("cost_ratio", "must be between 0 and 1 (got %g)", a.CostRatio)
	}
	if a.Investment < 0 {
		return invalid("investment", "must be non-negative (got %g)", a.Investment)
	}
	if a.LaunchYear < 0 {
		return invalid("launch_year", "must be a calendar year or 0 (got %d)", a.LaunchYear)
	}
	return nil
}
