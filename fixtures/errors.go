package fixtures

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, m) is
// smaller than the minimum a topology requires.
var ErrTooFewVertices = errors.New("fixtures: parameter too small")

// ErrInvalidProbability indicates a probability argument to RandomSparse
// falls outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("fixtures: probability out of range")
