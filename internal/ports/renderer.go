package ports

import "github.com/pymaldebaran/adventofcode2022/internal/puzzle"

// Renderer presents solve results. Implementations decide the output form;
// the solvers only hand over plain values.
type Renderer interface {
	// Header introduces the results of one day.
	Header(day int, title string) error

	// Notes renders a puzzle description written in markdown.
	Notes(markdown string) error

	// Check reports the comparison of a solver with its sample answer.
	Check(c puzzle.Check) error

	// Answer reports the answer of one part.
	Answer(a puzzle.Answer) error
}
