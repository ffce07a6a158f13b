package projection

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Service wraps the projection engine with logging for the HTTP layer.
// The engine itself stays a plain function so tests and other callers can
// use it without a logger.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new projection service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "projection").Logger(),
	}
}

// Compute runs the engine and logs the outcome.
func (s *Service) Compute(a Assumptions) (*Projection, error) {
	start := time.Now()
	p, err := Compute(a)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("horizon", a.Horizon).
		Float64("effective_peak", p.EffectivePeak).
		Int("break_even_year", p.BreakEvenYear).
		Bool("break_even_reached", p.BreakEvenReached).
		Dur("elapsed", time.Since(start)).
		Msg("Projection computed")

	return p, nil
}

// ExportCSV computes a projection and writes it as CSV.
func (s *Service) ExportCSV(w io.Writer, a Assumptions) error {
	p, err := s.Compute(a)
	if err != nil {
		return err
	}
	return WriteCSV(w, p)
}
