// Package puzzle defines the contract shared by the daily solvers and a
// registry to look them up by day.
package puzzle

import (
	"fmt"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

// Part selects which half of a daily puzzle to solve.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in solving order.
var Parts = []Part{PartOne, PartTwo}

// Validate rejects anything but PartOne and PartTwo.
func (p Part) Validate() error {
	if p != PartOne && p != PartTwo {
		return fmt.Errorf("%w: %d", domain.ErrUnknownPart, int(p))
	}
	return nil
}

func (p Part) String() string {
	return fmt.Sprintf("part %d", int(p))
}

// Answer is the outcome of solving one part of one day.
type Answer struct {
	Day   int
	Part  Part
	Value int

	// Label describes Value for the report.
	Label string

	// Ranking holds the scored entities behind Value, best first, for
	// puzzles whose answer is a ranking.
	Ranking []domain.ScoredEntity
	// Entity names what Ranking ranks (e.g. "Elf").
	Entity string
	// Metric names what the scores of Ranking measure (e.g. "Calories").
	Metric string
	// Unit qualifies every score of Ranking (e.g. "cal").
	Unit string
	// Caption titles the ranking table.
	Caption string
}

// Sample is the example input published with a puzzle and its answers.
type Sample struct {
	Input   string
	PartOne int
	PartTwo int
}

// Want returns the expected sample answer for part.
func (s Sample) Want(part Part) int {
	if part == PartTwo {
		return s.PartTwo
	}
	return s.PartOne
}

// Solver solves one day. Solve is pure: the same input always yields the
// same answer and nothing is retained between calls.
type Solver interface {
	Day() int
	Title() string
	// Notes returns the puzzle description as markdown.
	Notes() string
	Sample() Sample
	Solve(input string, part Part) (Answer, error)
}

// Check is the comparison of a solver's sample answer with the published one.
type Check struct {
	Day  int
	Part Part
	Got  int
	Want int
}

// OK reports whether the solver matched the published answer.
func (c Check) OK() bool { return c.Got == c.Want }
