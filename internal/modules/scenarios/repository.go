package scenarios

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/pharmacast/internal/modules/projection"
)

// ErrNotFound is returned when a scenario ID does not exist in the store.
var ErrNotFound = errors.New("scenario not found")

// maxScenarios bounds the store; the comparison table becomes useless well
// before this anyway.
const maxScenarios = 50

// Repository is an in-memory scenario store. Guarded by an RWMutex because
// the HTTP server handles requests concurrently; each operation is still a
// simple synchronous map access.
type Repository struct {
	mu        sync.RWMutex
	scenarios map[string]*Scenario
	log       zerolog.Logger
}

// NewRepository creates a new empty scenario repository
func NewRepository(log zerolog.Logger) *Repository {
	return &Repository{
		scenarios: make(map[string]*Scenario),
		log:       log.With().Str("repository", "scenarios").Logger(),
	}
}

// Create computes a projection for the given assumptions and stores it under
// a fresh ID. Invalid assumptions fail with the engine's
// *InvalidAssumptionError; nothing is stored in that case.
func (r *Repository) Create(name string, a projection.Assumptions) (*Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("scenario name cannot be empty")
	}

	p, err := projection.Compute(a)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.scenarios) >= maxScenarios {
		return nil, fmt.Errorf("scenario limit reached (max %d)", maxScenarios)
	}

	s := &Scenario{
		ID:          uuid.New().String(),
		Name:        name,
		CreatedAt:   time.Now(),
		Assumptions: a,
		Projection:  p,
	}
	r.scenarios[s.ID] = s

	r.log.Debug().Str("id", s.ID).Str("name", s.Name).Msg("Scenario created")
	return s, nil
}

// Get retrieves a scenario by ID
func (r *Repository) Get(id string) (*Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scenarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// List returns all scenarios ordered by creation time
func (r *Repository) List() []*Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Scenario, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// Delete removes a scenario by ID
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scenarios[id]; !ok {
		return ErrNotFound
	}
	delete(r.scenarios, id)

	r.log.Debug().Str("id", id).Msg("Scenario deleted")
	return nil
}

// Compare summarizes all stored scenarios for the comparison table, in
// creation order.
func (r *Repository) Compare() []ComparisonRow {
	scenarios := r.List()

	rows := make([]ComparisonRow, 0, len(scenarios))
	for _, s := range scenarios {
		row := ComparisonRow{
			ID:               s.ID,
			Name:             s.Name,
			EffectivePeak:    s.Projection.EffectivePeak,
			BreakEvenYear:    s.Projection.BreakEvenYear,
			BreakEvenReached: s.Projection.BreakEvenReached,
		}
		if n := len(s.Projection.Years); n > 0 {
			row.FinalCumulative = s.Projection.Years[n-1].Cumulative
		}
		rows = append(rows, row)
	}
	return rows
}
