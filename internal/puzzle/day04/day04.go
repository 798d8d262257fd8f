// Package day04 counts overlapping cleanup assignments.
package day04

import (
	_ "embed"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
	"github.com/pymaldebaran/adventofcode2022/internal/puzzle"
	"github.com/pymaldebaran/adventofcode2022/internal/record"
	"github.com/pymaldebaran/adventofcode2022/internal/reduce"
)

var (
	//go:embed notes.md
	notes string
	//go:embed sample.txt
	sampleInput string
)

// Assignment is the pair of section ranges given to two Elves.
type Assignment struct {
	First  domain.Interval
	Second domain.Interval
}

// ParseLine reads a "<int>-<int>,<int>-<int>" line.
func ParseLine(line string) (Assignment, error) {
	first, second, err := record.IntervalPair(line)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{First: first, Second: second}, nil
}

// FullOverlap reports whether one range fully contains the other.
func (a Assignment) FullOverlap() bool {
	return a.First.FullyContains(a.Second) || a.Second.FullyContains(a.First)
}

// AnyOverlap reports whether the ranges share at least one section.
func (a Assignment) AnyOverlap() bool {
	return a.First.Overlaps(a.Second)
}

func countAssignments(list string, pred func(Assignment) bool) (int, error) {
	assignments, err := record.SplitParse(list, record.Newline, ParseLine)
	if err != nil {
		return 0, err
	}
	return reduce.Count(assignments, pred), nil
}

// FullOverlaps counts pairs where one range fully contains the other.
func FullOverlaps(list string) (int, error) {
	return countAssignments(list, Assignment.FullOverlap)
}

// AnyOverlaps counts pairs whose ranges overlap.
func AnyOverlaps(list string) (int, error) {
	return countAssignments(list, Assignment.AnyOverlap)
}

// Solver solves day 4.
type Solver struct{}

// New returns a day 4 solver.
func New() *Solver { return &Solver{} }

func (s *Solver) Day() int      { return 4 }
func (s *Solver) Title() string { return "Camp Cleanup" }
func (s *Solver) Notes() string { return notes }

func (s *Solver) Sample() puzzle.Sample {
	return puzzle.Sample{Input: sampleInput, PartOne: 2, PartTwo: 4}
}

func (s *Solver) Solve(input string, part puzzle.Part) (puzzle.Answer, error) {
	if err := part.Validate(); err != nil {
		return puzzle.Answer{}, err
	}

	count, label := FullOverlaps, "Assignments with a full overlap"
	if part == puzzle.PartTwo {
		count, label = AnyOverlaps, "Assignments with any overlap"
	}
	n, err := count(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: s.Day(), Part: part, Value: n, Label: label}, nil
}
