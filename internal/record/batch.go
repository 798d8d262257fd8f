package record

// ParseAll applies parse to every record in order and stops at the first
// failure. No partial result is returned.
func ParseAll[T any](records []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := parse(rec)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// SplitParse is Split followed by ParseAll.
func SplitParse[T any](input, sep string, parse func(string) (T, error)) ([]T, error) {
	records, err := Split(input, sep)
	if err != nil {
		return nil, err
	}
	return ParseAll(records, parse)
}
