// Package scenarios provides a session-scoped store of named what-if
// scenarios so the dashboard can compare break-even outcomes side by side.
// Scenarios live in memory only and are gone on restart - the dashboard
// deliberately persists nothing across sessions.
package scenarios

import (
	"time"

	"github.com/aristath/pharmacast/internal/modules/projection"
)

// Scenario is a named set of assumptions together with its computed
// projection. The projection is computed once at creation time; assumptions
// are immutable after that (delete and re-create to change them).
type Scenario struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	CreatedAt   time.Time              `json:"created_at"`
	Assumptions projection.Assumptions `json:"assumptions"`
	Projection  *projection.Projection `json:"projection"`
}

// ComparisonRow summarizes one scenario for the comparison table.
type ComparisonRow struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	EffectivePeak    float64 `json:"effective_peak"`
	BreakEvenYear    int     `json:"break_even_year"`
	BreakEvenReached bool    `json:"break_even_reached"`
	FinalCumulative  float64 `json:"final_cumulative"` // Cumulative cash flow at end of horizon ($M)
}
