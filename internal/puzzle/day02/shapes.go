package day02

import "fmt"

// Shape is a hand shape.
type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Lose Outcome = iota + 1
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

var shapeScores = map[Shape]int{
	Rock:     1,
	Paper:    2,
	Scissors: 3,
}

var outcomeScores = map[Outcome]int{
	Lose: 0,
	Draw: 3,
	Win:  6,
}

// Score is the points earned for playing s.
func (s Shape) Score() int { return shapeScores[s] }

// Score is the points earned for reaching o.
func (o Outcome) Score() int { return outcomeScores[o] }

type matchup struct {
	opponent Shape
	own      Shape
}

// outcomes is the full rule table, keyed by (opponent, own).
var outcomes = map[matchup]Outcome{
	{Rock, Rock}:         Draw,
	{Rock, Paper}:        Win,
	{Rock, Scissors}:     Lose,
	{Paper, Rock}:        Lose,
	{Paper, Paper}:       Draw,
	{Paper, Scissors}:    Win,
	{Scissors, Rock}:     Win,
	{Scissors, Paper}:    Lose,
	{Scissors, Scissors}: Draw,
}

type plan struct {
	opponent Shape
	want     Outcome
}

// strategy picks the shape reaching an outcome, keyed by (opponent, outcome).
var strategy = map[plan]Shape{
	{Rock, Win}:      Paper,
	{Paper, Win}:     Scissors,
	{Scissors, Win}:  Rock,
	{Rock, Lose}:     Scissors,
	{Paper, Lose}:    Rock,
	{Scissors, Lose}: Paper,
	{Rock, Draw}:     Rock,
	{Paper, Draw}:    Paper,
	{Scissors, Draw}: Scissors,
}

// Play returns the outcome of own against opponent.
func Play(opponent, own Shape) Outcome {
	return outcomes[matchup{opponent, own}]
}

// ShapeFor returns the shape reaching want against opponent.
func ShapeFor(opponent Shape, want Outcome) Shape {
	return strategy[plan{opponent, want}]
}
