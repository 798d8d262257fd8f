package reduce

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name    string
		records []string
		want    rune
	}{
		{name: "two halves", records: []string{"abcz", "defz"}, want: 'z'},
		{name: "repeated items", records: []string{"aaay", "bbby"}, want: 'y'},
		{name: "three rucksacks", records: []string{"Zabc", "deZfg", "hijklZ"}, want: 'Z'},
		{name: "pairwise noise", records: []string{"XZabc", "XYZdefg", "XYhijkl"}, want: 'X'},
		{name: "single record", records: []string{"q"}, want: 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Intersect(tt.records...)
			if err != nil {
				t.Fatalf("Intersect() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Intersect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntersect_Ambiguous(t *testing.T) {
	tests := []struct {
		name       string
		records    []string
		wantCommon []rune
	}{
		{name: "nothing shared", records: []string{"abc", "def"}, wantCommon: []rune{}},
		{name: "several shared", records: []string{"abcd", "dcba", "xabcd"}, wantCommon: []rune("abcd")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Intersect(tt.records...)

			var ambErr *domain.AmbiguousResultError
			if !errors.As(err, &ambErr) {
				t.Fatalf("Intersect() error = %v, want *domain.AmbiguousResultError", err)
			}
			if diff := cmp.Diff(tt.wantCommon, ambErr.Common); diff != "" {
				t.Errorf("Common mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.records, ambErr.Records); diff != "" {
				t.Errorf("Records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntersect_NoRecords(t *testing.T) {
	_, err := Intersect()

	var invErr *domain.InvariantError
	if !errors.As(err, &invErr) {
		t.Errorf("Intersect() error = %v, want *domain.InvariantError", err)
	}
}
