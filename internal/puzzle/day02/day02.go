// Package day02 scores a rock-paper-scissors strategy guide.
package day02

import (
	_ "embed"
	"fmt"

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

// Column symbols of the strategy guide.
var (
	opponentSymbols = map[string]Shape{"A": Rock, "B": Paper, "C": Scissors}
	shapeSymbols    = map[string]Shape{"X": Rock, "Y": Paper, "Z": Scissors}
	outcomeSymbols  = map[string]Outcome{"X": Lose, "Y": Draw, "Z": Win}
)

// Round is one resolved line of the guide.
type Round struct {
	Opponent Shape
	Own      Shape
}

// Outcome returns the result of the round for the player.
func (r Round) Outcome() Outcome { return Play(r.Opponent, r.Own) }

// Score is the outcome score plus the score of the played shape.
func (r Round) Score() int { return r.Outcome().Score() + r.Own.Score() }

// ParseRound reads one "<opponent> <token>" line. In part one the token is
// the shape to play; in part two it is the outcome to reach.
func ParseRound(line string, part puzzle.Part) (Round, error) {
	if err := part.Validate(); err != nil {
		return Round{}, err
	}
	oppTok, ownTok, err := record.Pair(line, record.Space)
	if err != nil {
		return Round{}, err
	}
	opponent, ok := opponentSymbols[oppTok]
	if !ok {
		return Round{}, &domain.ParseError{Record: line, Reason: fmt.Sprintf("unknown opponent shape %q", oppTok)}
	}

	if part == puzzle.PartOne {
		own, ok := shapeSymbols[ownTok]
		if !ok {
			return Round{}, &domain.ParseError{Record: line, Reason: fmt.Sprintf("unknown shape %q", ownTok)}
		}
		return Round{Opponent: opponent, Own: own}, nil
	}

	want, ok := outcomeSymbols[ownTok]
	if !ok {
		return Round{}, &domain.ParseError{Record: line, Reason: fmt.Sprintf("unknown outcome %q", ownTok)}
	}
	return Round{Opponent: opponent, Own: ShapeFor(opponent, want)}, nil
}

// RoundScores scores every round of the guide in order.
func RoundScores(guide string, part puzzle.Part) ([]int, error) {
	rounds, err := record.SplitParse(guide, record.Newline, func(line string) (Round, error) {
		return ParseRound(line, part)
	})
	if err != nil {
		return nil, err
	}
	scores := make([]int, len(rounds))
	for i, r := range rounds {
		scores[i] = r.Score()
	}
	return scores, nil
}

// TotalScore is the sum of every round score.
func TotalScore(guide string, part puzzle.Part) (int, error) {
	scores, err := RoundScores(guide, part)
	if err != nil {
		return 0, err
	}
	return reduce.Sum(scores), nil
}

// Solver solves day 2.
type Solver struct{}

// New returns a day 2 solver.
func New() *Solver { return &Solver{} }

func (s *Solver) Day() int      { return 2 }
func (s *Solver) Title() string { return "Rock Paper Scissors" }
func (s *Solver) Notes() string { return notes }

func (s *Solver) Sample() puzzle.Sample {
	return puzzle.Sample{Input: sampleInput, PartOne: 15, PartTwo: 12}
}

func (s *Solver) Solve(input string, part puzzle.Part) (puzzle.Answer, error) {
	total, err := TotalScore(input, part)
	if err != nil {
		return puzzle.Answer{}, err
	}
	label := "Score following the guessed strategy"
	if part == puzzle.PartTwo {
		label = "Score following the Elf's strategy"
	}
	return puzzle.Answer{Day: s.Day(), Part: part, Value: total, Label: label}, nil
}
