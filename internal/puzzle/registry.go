package puzzle

import (
	"fmt"
	"slices"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

// Registry indexes solvers by day.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry registers the given solvers. A later solver for the same day
// replaces an earlier one.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		r.solvers[s.Day()] = s
	}
	return r
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// All returns the registered solvers ordered by day.
func (r *Registry) All() []Solver {
	days := r.Days()
	solvers := make([]Solver, len(days))
	for i, d := range days {
		solvers[i] = r.solvers[d]
	}
	return solvers
}
