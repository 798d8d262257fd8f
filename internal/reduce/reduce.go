// Package reduce aggregates parsed records into puzzle answers.
package reduce

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

// Sum adds all values.
func Sum[T constraints.Integer](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// SumBy adds f(x) for every x.
func SumBy[E any, T constraints.Integer](xs []E, f func(E) T) T {
	var total T
	for _, x := range xs {
		total += f(x)
	}
	return total
}

// Count returns how many values satisfy pred.
func Count[E any](xs []E, pred func(E) bool) int {
	n := 0
	for _, x := range xs {
		if pred(x) {
			n++
		}
	}
	return n
}

// Score turns groups of values into entities indexed from 1 in input order,
// each scored by the sum of its group.
func Score(groups [][]int) []domain.ScoredEntity {
	entities := make([]domain.ScoredEntity, len(groups))
	for i, g := range groups {
		entities[i] = domain.ScoredEntity{Index: i + 1, Score: Sum(g)}
	}
	return entities
}

// MaxByScore returns the entity with the highest score. Ties resolve to the
// earliest entity.
func MaxByScore(entities []domain.ScoredEntity) (domain.ScoredEntity, error) {
	if len(entities) == 0 {
		return domain.ScoredEntity{}, domain.ErrEmptyInput
	}
	best := entities[0]
	for _, e := range entities[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best, nil
}

// Rank returns a copy of entities sorted by descending score, keeping input
// order among equal scores.
func Rank(entities []domain.ScoredEntity) []domain.ScoredEntity {
	ranked := slices.Clone(entities)
	slices.SortStableFunc(ranked, func(a, b domain.ScoredEntity) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// Top returns the n best ranked entities, or all of them when fewer exist.
func Top(entities []domain.ScoredEntity, n int) []domain.ScoredEntity {
	ranked := Rank(entities)
	return ranked[:max(0, min(n, len(ranked)))]
}
