package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, checked with errors.Is.
var (
	// ErrEmptyInput is returned when an input holds no record at all.
	ErrEmptyInput = errors.New("aoc2022: empty input")

	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("aoc2022: unknown day")

	// ErrUnknownPart is returned when a part other than 1 or 2 is requested.
	ErrUnknownPart = errors.New("aoc2022: unknown part")

	// ErrSampleMismatch is returned when a solver disagrees with the
	// expected answer of its embedded example.
	ErrSampleMismatch = errors.New("aoc2022: sample answer mismatch")
)

// ParseError reports a record that does not match its expected grammar.
type ParseError struct {
	// Record is the offending raw record.
	Record string
	// Reason describes what was expected.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q: %s: %v", e.Record, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %q: %s", e.Record, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvariantError reports a violated structural precondition, such as an
// odd-length string handed to a half split.
type InvariantError struct {
	// Subject is the value that broke the invariant.
	Subject string
	// Invariant names the rule that does not hold.
	Invariant string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %q violated by %q", e.Invariant, e.Subject)
}

// AmbiguousResultError reports a set intersection that does not hold exactly
// one item. Common is empty when nothing is shared.
type AmbiguousResultError struct {
	Records []string
	Common  []rune
}

func (e *AmbiguousResultError) Error() string {
	group := strings.Join(e.Records, " | ")
	if len(e.Common) == 0 {
		return fmt.Sprintf("no common item in [%s]", group)
	}
	return fmt.Sprintf("%d common items %q in [%s]", len(e.Common), string(e.Common), group)
}
