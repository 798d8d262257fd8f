package reduce

import (
	"slices"

	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

// Intersect returns the single character present in every record. It fails
// with *domain.AmbiguousResultError when zero or several characters are
// shared.
func Intersect(records ...string) (rune, error) {
	if len(records) == 0 {
		return 0, &domain.InvariantError{Subject: "", Invariant: "at least one record"}
	}

	common := charSet(records[0])
	for _, rec := range records[1:] {
		other := charSet(rec)
		for r := range common {
			if _, ok := other[r]; !ok {
				delete(common, r)
			}
		}
	}

	if len(common) != 1 {
		shared := make([]rune, 0, len(common))
		for r := range common {
			shared = append(shared, r)
		}
		slices.Sort(shared)
		return 0, &domain.AmbiguousResultError{Records: slices.Clone(records), Common: shared}
	}
	for r := range common {
		return r, nil
	}
	return 0, nil
}

func charSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
