package ports

import "context"

// InputLoader provides the raw text of a day's puzzle input. The text loader
// owns all file I/O; solvers only ever see the returned string.
type InputLoader interface {
	// Load returns the normalised input of day.
	Load(ctx context.Context, day int) (string, error)

	// Path returns where the input of day is read from.
	Path(day int) string
}
