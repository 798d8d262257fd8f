package domain

// ScoredEntity pairs a record's 1-based position in its batch with its score.
type ScoredEntity struct {
	// Index is the 1-based position of the record in input order.
	Index int
	// Score is the sum of the record's values.
	Score int
}
