// errors.go — sentinel errors for the builder package.
//
// Error policy, mirroring the teacher's builder/errors.go:
//   - Only sentinel variables are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     implementations attach context via %w.
package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols,
// degree) is outside the allowed range for the requested constructor: below
// its minimum, or for RandomRegular a degree d >= n or an odd n*d.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (RandomSparse).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted permitted strategies or
// attempts (e.g. stub-matching retries for RandomRegular) and could not
// construct a topology without breaking invariants.
var ErrConstructFailed = errors.New("builder: construction failed")
