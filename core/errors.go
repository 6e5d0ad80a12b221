// File: errors.go
// Role: the precondition-violation signal (spec.md §7) and package-level
// sentinel errors.
//
// Error policy (mirrors the teacher's builder/errors.go convention):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via fmt.Errorf("%w: ...", Err...).
package core

import "errors"

// ErrPrecondition is the sentinel every precondition violation wraps.
// Match it with errors.Is(err, core.ErrPrecondition) regardless of which
// specific precondition fired.
var ErrPrecondition = errors.New("core: precondition violated")

// Specific preconditions. Call sites return them through precondition(ErrX),
// whose result unwraps to both ErrPrecondition and ErrX, so both
// errors.Is(err, ErrPrecondition) and errors.Is(err, ErrX) succeed.
var (
	// ErrVertexNotFound indicates an operation referenced a handle that is
	// not (or no longer) in the graph's vertex handle space.
	ErrVertexNotFound = errors.New("core: vertex handle not valid")

	// ErrEdgeNotFound indicates an operation referenced a handle that is not
	// (or no longer) in the graph's edge handle space.
	ErrEdgeNotFound = errors.New("core: edge handle not valid")

	// ErrVertexHasEdges indicates EraseVert was called on a vertex that
	// still has tracked incident edges in the direction this container
	// tracks (spec.md §4.3's asymmetric erase_vert precondition).
	ErrVertexHasEdges = errors.New("core: vertex still has tracked incident edges")

	// ErrEmptyHandleSpace indicates RandomVert/RandomEdge was called on an
	// empty set.
	ErrEmptyHandleSpace = errors.New("core: cannot sample from an empty handle space")
)

// Checked selects checked vs. unchecked builds (spec.md §6's single
// build-time flag). When true (the default), every precondition listed
// above is validated and returned as an error satisfying
// errors.Is(err, ErrPrecondition). When false, the validating branches are
// skipped entirely for performance; violating a precondition is then
// undefined behavior exactly as spec.md §7 describes (may panic on a stale
// handle, may silently corrupt state) — set this only in a build known to
// satisfy every precondition by construction.
var Checked = true

// precondition returns an error combining ErrPrecondition and the more
// specific sentinel; it always returns a non-nil error. Internal helper;
// call sites test Checked themselves and only call it on the checked path,
// this only centralizes the error construction.
func precondition(specific error) error {
	return &preconditionError{specific: specific}
}

// preconditionError implements PreconditionError and wraps both
// ErrPrecondition and a specific sentinel so errors.Is matches either.
type preconditionError struct {
	specific error
}

func (e *preconditionError) Error() string {
	return e.specific.Error()
}

func (e *preconditionError) Unwrap() []error {
	return []error{ErrPrecondition, e.specific}
}

// PreconditionError is the interface satisfied by every error this package
// returns for a precondition violation. It exists so callers who only want
// "was this a precondition violation at all" can type-assert instead of
// enumerating sentinels.
type PreconditionError interface {
	error
	Unwrap() []error
}
