package record

import (
	"github.com/pymaldebaran/adventofcode2022/internal/domain"
)

// Interval parses a "<start>-<stop>" token.
func Interval(token string) (domain.Interval, error) {
	lo, hi, err := Pair(token, Dash)
	if err != nil {
		return domain.Interval{}, err
	}
	start, err := Int(lo)
	if err != nil {
		return domain.Interval{}, err
	}
	stop, err := Int(hi)
	if err != nil {
		return domain.Interval{}, err
	}
	iv, err := domain.NewInterval(start, stop)
	if err != nil {
		return domain.Interval{}, &domain.ParseError{Record: token, Reason: "malformed interval", Err: err}
	}
	return iv, nil
}

// IntervalPair parses a "<int>-<int>,<int>-<int>" line.
func IntervalPair(line string) (domain.Interval, domain.Interval, error) {
	first, second, err := Pair(line, Comma)
	if err != nil {
		return domain.Interval{}, domain.Interval{}, err
	}
	a, err := Interval(first)
	if err != nil {
		return domain.Interval{}, domain.Interval{}, err
	}
	b, err := Interval(second)
	if err != nil {
		return domain.Interval{}, domain.Interval{}, err
	}
	return a, b, nil
}
