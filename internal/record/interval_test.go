package record

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

func TestIntervalPair(t *testing.T) {
	tests := []struct{ a, b, c, d int }{
		{1, 2, 3, 4},
		{1, 6, 4, 9},
		{10, 20, 30, 40},
	}

	for _, tt := range tests {
		line := fmt.Sprintf("%d-%d,%d-%d", tt.a, tt.b, tt.c, tt.d)
		first, second, err := IntervalPair(line)
		if err != nil {
			t.Fatalf("IntervalPair(%q) unexpected error: %v", line, err)
		}
		if first != domain.MustInterval(tt.a, tt.b) || second != domain.MustInterval(tt.c, tt.d) {
			t.Errorf("IntervalPair(%q) = (%v, %v)", line, first, second)
		}
	}
}

func TestIntervalPair_Malformed(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		wantInvariant bool
	}{
		{name: "missing comma", line: "2-4 6-8"},
		{name: "three ranges", line: "2-4,6-8,1-2"},
		{name: "missing dash", line: "24,6-8"},
		{name: "not a number", line: "a-4,6-8"},
		{name: "stop before start", line: "5-3,6-8", wantInvariant: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := IntervalPair(tt.line)

			var parseErr *domain.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("IntervalPair() error = %v, want *domain.ParseError", err)
			}
			var invErr *domain.InvariantError
			if got := errors.As(err, &invErr); got != tt.wantInvariant {
				t.Errorf("errors.As(*domain.InvariantError) = %v, want %v", got, tt.wantInvariant)
			}
		})
	}
}
