package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pymaldebaran/adventofcode2022/internal/ports"
)

const inputFilePattern = "day%02d.txt"

// InputLoader implements ports.InputLoader over a directory holding one
// dayNN.txt file per puzzle.
type InputLoader struct {
	dir string
}

// NewInputLoader creates a loader reading inputs from dir.
func NewInputLoader(dir string) *InputLoader {
	return &InputLoader{dir: dir}
}

// Load reads and normalises the input of day.
func (l *InputLoader) Load(ctx context.Context, day int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := l.Path(day)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no input for day %d at %s: %w", day, path, err)
		}
		return "", fmt.Errorf("read input for day %d: %w", day, err)
	}
	return Normalize(string(data)), nil
}

// Path returns the full path to the input file of day.
func (l *InputLoader) Path(day int) string {
	return filepath.Join(l.dir, InputFileName(day))
}

// Dir returns the directory inputs are read from.
func (l *InputLoader) Dir() string {
	return l.dir
}

// InputFileName returns the file name holding the input of day.
func InputFileName(day int) string {
	return fmt.Sprintf(inputFilePattern, day)
}

// DayOf returns the day whose input lives at path, if path names an input file.
func DayOf(path string) (int, bool) {
	var day int
	name := filepath.Base(path)
	if _, err := fmt.Sscanf(name, inputFilePattern, &day); err != nil {
		return 0, false
	}
	if InputFileName(day) != name {
		return 0, false
	}
	return day, true
}

// Normalize converts CRLF line endings to LF and drops trailing newlines.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}

// Ensure InputLoader implements ports.InputLoader.
var _ ports.InputLoader = (*InputLoader)(nil)
