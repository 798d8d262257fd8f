// Package day03 finds misplaced items and group badges in rucksacks.
package day03

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle"
	"github.com/pymaldebaran/adventofcode2022/internal/record"
	"github.com/pymaldebaran/adventofcode2022/internal/reduce"
)

// GroupSize is the number of Elves sharing a badge.
const GroupSize = 3

var (
	//go:embed notes.md
	notes string
	//go:embed sample.txt
	sampleInput string
)

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, &domain.ParseError{Record: string(item), Reason: "item must be an ASCII letter"}
	}
}

func parseRucksack(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", &domain.ParseError{Record: line, Reason: "empty rucksack"}
	}
	for _, r := range line {
		if _, err := Priority(r); err != nil {
			return "", &domain.ParseError{Record: line, Reason: fmt.Sprintf("unexpected item %q", r)}
		}
	}
	return line, nil
}

// MisplacedItem returns the only item found in both compartments.
func MisplacedItem(rucksack string) (rune, error) {
	left, right, err := record.HalfSplit(rucksack)
	if err != nil {
		return 0, err
	}
	return reduce.Intersect(left, right)
}

// BadgeItem returns the only item carried by every rucksack of the group.
func BadgeItem(group []string) (rune, error) {
	if len(group) != GroupSize {
		return 0, &domain.InvariantError{
			Subject:   fmt.Sprint(group),
			Invariant: fmt.Sprintf("group of %d rucksacks", GroupSize),
		}
	}
	return reduce.Intersect(group...)
}

func rucksacks(list string) ([]string, error) {
	return record.SplitParse(list, record.Newline, parseRucksack)
}

func priorities(items []rune) []int {
	values := make([]int, len(items))
	for i, item := range items {
		// items come from validated rucksacks, so they are letters
		values[i], _ = Priority(item)
	}
	return values
}

// MisplacedPriorities returns the priority of each rucksack's misplaced item.
func MisplacedPriorities(list string) ([]int, error) {
	bags, err := rucksacks(list)
	if err != nil {
		return nil, err
	}
	items, err := record.ParseAll(bags, MisplacedItem)
	if err != nil {
		return nil, err
	}
	return priorities(items), nil
}

// BadgePriorities returns the priority of each group's badge.
func BadgePriorities(list string) ([]int, error) {
	bags, err := rucksacks(list)
	if err != nil {
		return nil, err
	}
	items := make([]rune, 0, len(bags)/GroupSize)
	for _, group := range record.Chunk(bags, GroupSize) {
		badge, err := BadgeItem(group)
		if err != nil {
			return nil, err
		}
		items = append(items, badge)
	}
	return priorities(items), nil
}

// Solver solves day 3.
type Solver struct{}

// New returns a day 3 solver.
func New() *Solver { return &Solver{} }

func (s *Solver) Day() int      { return 3 }
func (s *Solver) Title() string { return "Rucksack Reorganization" }
func (s *Solver) Notes() string { return notes }

func (s *Solver) Sample() puzzle.Sample {
	return puzzle.Sample{Input: sampleInput, PartOne: 157, PartTwo: 70}
}

func (s *Solver) Solve(input string, part puzzle.Part) (puzzle.Answer, error) {
	if err := part.Validate(); err != nil {
		return puzzle.Answer{}, err
	}

	values, label := MisplacedPriorities, "Sum of the misplaced items' priorities"
	if part == puzzle.PartTwo {
		values, label = BadgePriorities, "Sum of the badges' priorities"
	}
	prios, err := values(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: s.Day(), Part: part, Value: reduce.Sum(prios), Label: label}, nil
}
