package domain

import "fmt"

// Interval is a closed integer range [start, stop]. Immutable value object.
type Interval struct {
	start int
	stop  int
}

// NewInterval builds an Interval, rejecting stop < start.
func NewInterval(start, stop int) (Interval, error) {
	if stop < start {
		return Interval{}, &InvariantError{
			Subject:   fmt.Sprintf("%d-%d", start, stop),
			Invariant: "start <= stop",
		}
	}
	return Interval{start: start, stop: stop}, nil
}

// MustInterval is like NewInterval but panics on an invalid range.
// Intended for tables and tests.
func MustInterval(start, stop int) Interval {
	i, err := NewInterval(start, stop)
	if err != nil {
		panic(err)
	}
	return i
}

// Start returns the first value of the range.
func (i Interval) Start() int { return i.start }

// Stop returns the last value of the range.
func (i Interval) Stop() int { return i.stop }

// FullyContains reports whether every value of other lies within i.
func (i Interval) FullyContains(other Interval) bool {
	return i.start <= other.start && i.stop >= other.stop
}

// Overlaps reports whether i and other share at least one value.
func (i Interval) Overlaps(other Interval) bool {
	return i.start <= other.stop && other.start <= i.stop
}

func (i Interval) String() string {
	return fmt.Sprintf("%d-%d", i.start, i.stop)
}
