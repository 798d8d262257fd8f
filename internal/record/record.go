// Package record splits puzzle input into records and parses records into
// typed values.
//
// Every parser returns a *domain.ParseError or *domain.InvariantError that
// carries the offending record, so callers can abort the whole batch with
// enough context to diagnose it.
package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

// Separators used by the puzzle grammars.
const (
	BlankLine = "\n\n"
	Newline   = "\n"
	Space     = " "
	Comma     = ","
	Dash      = "-"
)

// Split cuts input into records on sep. Surrounding whitespace of the whole
// input is ignored, so a trailing newline does not produce an empty record.
func Split(input, sep string) ([]string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &domain.ParseError{Record: input, Reason: "no record", Err: domain.ErrEmptyInput}
	}
	return strings.Split(trimmed, sep), nil
}

// Int parses one base-10 integer token.
func Int(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, &domain.ParseError{Record: token, Reason: "not an integer", Err: err}
	}
	return n, nil
}

// Ints parses a newline-separated list of non-negative integers.
func Ints(rec string) ([]int, error) {
	tokens := strings.Split(strings.TrimSpace(rec), Newline)
	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := Int(tok)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, &domain.ParseError{Record: tok, Reason: "negative value"}
		}
		values = append(values, n)
	}
	return values, nil
}

// Pair splits rec on sep and requires exactly two non-empty tokens.
func Pair(rec, sep string) (string, string, error) {
	tokens := strings.Split(strings.TrimSpace(rec), sep)
	if len(tokens) != 2 {
		return "", "", &domain.ParseError{
			Record: rec,
			Reason: fmt.Sprintf("want 2 tokens separated by %q, got %d", sep, len(tokens)),
		}
	}
	left, right := strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[1])
	if left == "" || right == "" {
		return "", "", &domain.ParseError{Record: rec, Reason: fmt.Sprintf("empty token around %q", sep)}
	}
	return left, right, nil
}

// HalfSplit returns the two equal halves of s.
func HalfSplit(s string) (string, string, error) {
	if len(s)%2 != 0 {
		return "", "", &domain.InvariantError{Subject: s, Invariant: "even length"}
	}
	mid := len(s) / 2
	return s[:mid], s[mid:], nil
}

// Chunk groups items into consecutive runs of n. The last run is shorter
// when len(items) is not a multiple of n.
func Chunk[T any](items []T, n int) [][]T {
	if n <= 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+n-1)/n)
	for start := 0; start < len(items); start += n {
		end := min(start+n, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
