// Package day01 ranks Elves by the Calories they carry.
package day01

import (
	_ "embed"
	"fmt"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle"
	"github.com/pymaldebaran/adventofcode2022/internal/record"
	"github.com/pymaldebaran/adventofcode2022/internal/reduce"
)

// DefaultPodium is the number of Elves summed in part 2.
const DefaultPodium = 3

const (
	entity  = "Elf"
	metric  = "Calories"
	unit    = "cal"
	caption = "Elves snack packages"
)

var (
	//go:embed notes.md
	notes string
	//go:embed sample.txt
	sampleInput string
)

// Totals returns one entity per Elf, indexed from 1 in input order and
// scored by the Calories that Elf carries.
func Totals(calorieList string) ([]domain.ScoredEntity, error) {
	groups, err := record.SplitParse(calorieList, record.BlankLine, record.Ints)
	if err != nil {
		return nil, err
	}
	return reduce.Score(groups), nil
}

// MostCalories returns the Elf carrying the most Calories.
func MostCalories(calorieList string) (domain.ScoredEntity, error) {
	totals, err := Totals(calorieList)
	if err != nil {
		return domain.ScoredEntity{}, err
	}
	return reduce.MaxByScore(totals)
}

// TopElves returns the n Elves carrying the most Calories, best first.
func TopElves(calorieList string, n int) ([]domain.ScoredEntity, error) {
	totals, err := Totals(calorieList)
	if err != nil {
		return nil, err
	}
	return reduce.Top(totals, n), nil
}

// Solver solves day 1.
type Solver struct {
	podium int
}

// New returns a day 1 solver summing the podium best Elves in part 2.
// A non-positive podium falls back to DefaultPodium.
func New(podium int) *Solver {
	if podium <= 0 {
		podium = DefaultPodium
	}
	return &Solver{podium: podium}
}

func (s *Solver) Day() int      { return 1 }
func (s *Solver) Title() string { return "Calorie Counting" }
func (s *Solver) Notes() string { return notes }

func (s *Solver) Sample() puzzle.Sample {
	return puzzle.Sample{Input: sampleInput, PartOne: 24000, PartTwo: 45000}
}

func (s *Solver) Solve(input string, part puzzle.Part) (puzzle.Answer, error) {
	if err := part.Validate(); err != nil {
		return puzzle.Answer{}, err
	}

	if part == puzzle.PartOne {
		best, err := MostCalories(input)
		if err != nil {
			return puzzle.Answer{}, err
		}
		return puzzle.Answer{
			Day:     s.Day(),
			Part:    part,
			Value:   best.Score,
			Label:   "Calories carried by the best-stocked Elf",
			Ranking: []domain.ScoredEntity{best},
			Entity:  entity,
			Metric:  metric,
			Unit:    unit,
			Caption: caption,
		}, nil
	}

	top, err := TopElves(input, s.podium)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Day:     s.Day(),
		Part:    part,
		Value:   reduce.SumBy(top, func(e domain.ScoredEntity) int { return e.Score }),
		Label:   fmt.Sprintf("Calories carried by the top %d Elves", s.podium),
		Ranking: top,
		Entity:  entity,
		Metric:  metric,
		Unit:    unit,
		Caption: caption,
	}, nil
}
