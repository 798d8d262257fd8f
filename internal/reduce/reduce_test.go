package reduce

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

var sampleGroups = [][]int{
	{1000, 2000, 3000},
	{4000},
	{5000, 6000},
	{7000, 8000, 9000},
	{10000},
}

func TestSum(t *testing.T) {
	if got := Sum([]int{1000, 2000, 3000}); got != 6000 {
		t.Errorf("Sum() = %d, want 6000", got)
	}
	if got := Sum([]uint8(nil)); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
}

func TestSumBy(t *testing.T) {
	got := SumBy([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	if got != 6 {
		t.Errorf("SumBy() = %d, want 6", got)
	}
}

func TestCount(t *testing.T) {
	got := Count([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	if got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestScore(t *testing.T) {
	want := []domain.ScoredEntity{
		{Index: 1, Score: 6000},
		{Index: 2, Score: 4000},
		{Index: 3, Score: 11000},
		{Index: 4, Score: 24000},
		{Index: 5, Score: 10000},
	}
	if diff := cmp.Diff(want, Score(sampleGroups)); diff != "" {
		t.Errorf("Score() mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxByScore(t *testing.T) {
	tests := []struct {
		name     string
		entities []domain.ScoredEntity
		want     domain.ScoredEntity
	}{
		{
			name:     "sample",
			entities: Score(sampleGroups),
			want:     domain.ScoredEntity{Index: 4, Score: 24000},
		},
		{
			name: "tie resolves to earliest",
			entities: []domain.ScoredEntity{
				{Index: 1, Score: 5},
				{Index: 2, Score: 9},
				{Index: 3, Score: 9},
			},
			want: domain.ScoredEntity{Index: 2, Score: 9},
		},
		{
			name:     "single entity",
			entities: []domain.ScoredEntity{{Index: 1, Score: 0}},
			want:     domain.ScoredEntity{Index: 1, Score: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxByScore(tt.entities)
			if err != nil {
				t.Fatalf("MaxByScore() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MaxByScore() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMaxByScore_Empty(t *testing.T) {
	_, err := MaxByScore(nil)
	if !errors.Is(err, domain.ErrEmptyInput) {
		t.Errorf("MaxByScore(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestMaxByScore_MatchesRankHead(t *testing.T) {
	groups := [][]int{{3}, {1, 2}, {7}, {4, 3}, {0}, {2, 5}, {6, 1}}
	entities := Score(groups)

	best, err := MaxByScore(entities)
	if err != nil {
		t.Fatalf("MaxByScore() unexpected error: %v", err)
	}
	if ranked := Rank(entities); ranked[0] != best {
		t.Errorf("Rank()[0] = %+v, MaxByScore() = %+v", ranked[0], best)
	}
	if best.Index != 3 {
		t.Errorf("Index = %d, want 3 (earliest of the 7-point groups)", best.Index)
	}
}

func TestRank(t *testing.T) {
	entities := []domain.ScoredEntity{
		{Index: 1, Score: 3},
		{Index: 2, Score: 8},
		{Index: 3, Score: 3},
		{Index: 4, Score: 8},
		{Index: 5, Score: 1},
	}
	input := slices.Clone(entities)

	got := Rank(entities)

	want := []domain.ScoredEntity{
		{Index: 2, Score: 8},
		{Index: 4, Score: 8},
		{Index: 1, Score: 3},
		{Index: 3, Score: 3},
		{Index: 5, Score: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(input, entities); diff != "" {
		t.Errorf("Rank() modified its input (-before +after):\n%s", diff)
	}
}

func TestTop(t *testing.T) {
	entities := Score(sampleGroups)

	want := []domain.ScoredEntity{
		{Index: 4, Score: 24000},
		{Index: 3, Score: 11000},
		{Index: 5, Score: 10000},
	}
	got := Top(entities, 3)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Top(3) mismatch (-want +got):\n%s", diff)
	}
	if total := SumBy(got, func(e domain.ScoredEntity) int { return e.Score }); total != 45000 {
		t.Errorf("top 3 total = %d, want 45000", total)
	}

	if got := Top(entities, 10); len(got) != len(entities) {
		t.Errorf("len(Top(10)) = %d, want %d", len(got), len(entities))
	}
	if got := Top(entities, -1); len(got) != 0 {
		t.Errorf("len(Top(-1)) = %d, want 0", len(got))
	}
}
