// Package domain contains the value types and error kinds shared by the
// puzzle solvers.
//
// This package has no dependencies on infrastructure concerns (file system,
// terminal, logging) and contains only pure values and their invariants.
//
// # Entities
//
//   - [ScoredEntity]: a 1-based record index paired with its score
//   - [Interval]: a closed integer range [start, stop] with start <= stop
//
// # Errors
//
//   - [ParseError]: a record does not match its grammar
//   - [InvariantError]: a structural precondition does not hold
//   - [AmbiguousResultError]: a set intersection does not hold exactly one item
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction
//   - Created fresh for every solve and discarded with its result
//   - Testable without mocks or external systems
package domain
