// Package core defines the handle-based Graph containers (OutAdj, InAdj,
// BiAdj), their property maps, reverse views, and rooted-tree results.
//
// All three containers share one identity model: a VertexHandle or
// EdgeHandle is a small comparable struct (slot index plus generation), not a
// pointer and not a string. Handles are issued by InsertVert/InsertEdge,
// remain valid until passed to the matching Erase* call, and may be reused
// (with a bumped generation) by a later insertion — stale handles compare
// unequal to the reused slot because their generation no longer matches.
//
// The zero value of VertexHandle and EdgeHandle is the distinguished null
// handle (NullVertex, NullEdge): slot index 0 is never allocated, so a
// freshly-declared `var v VertexHandle` is already "no vertex", the same way
// a nil pointer is already "no object".
//
// AI-Hints (file):
//   - Compare handles with ==; both types are plain structs, not pointers.
//   - Use Less for a total order (e.g. sorting Verts() output for determinism
//     in tests); iteration order itself is unspecified (spec-level contract).
package core

import "fmt"

// VertexHandle identifies a vertex within a single Graph's handle space.
//
// Behavior highlights:
//   - Comparable (==) and usable directly as a map key.
//   - The zero value equals NullVertex and never identifies a live vertex.
//
// AI-Hints:
//   - Never construct a VertexHandle by hand outside this package; only
//     InsertVert (and the slot table it wraps) may mint new ones.
type VertexHandle struct {
	idx uint32
	gen uint32
}

// EdgeHandle identifies an edge within a single Graph's handle space.
// Same stability and reuse contract as VertexHandle.
type EdgeHandle struct {
	idx uint32
	gen uint32
}

// NullVertex is the distinguished vertex handle that is never a member of
// any graph's handle space. It equals the zero value of VertexHandle.
var NullVertex VertexHandle

// NullEdge is the distinguished edge handle that is never a member of any
// graph's edge set. It equals the zero value of EdgeHandle.
var NullEdge EdgeHandle

// IsNull reports whether v is the distinguished null vertex handle.
//
// Complexity: O(1).
func (v VertexHandle) IsNull() bool { return v == NullVertex }

// IsNull reports whether e is the distinguished null edge handle.
//
// Complexity: O(1).
func (e EdgeHandle) IsNull() bool { return e == NullEdge }

// Less defines a total order over VertexHandle, ordered by slot index then
// generation. Suitable as a map-key or sort.Slice comparator; carries no
// semantic meaning beyond determinism (ties are broken arbitrarily but
// stably within a single mutation-free window).
func (v VertexHandle) Less(other VertexHandle) bool {
	if v.idx != other.idx {
		return v.idx < other.idx
	}

	return v.gen < other.gen
}

// Less is the EdgeHandle analogue of VertexHandle.Less.
func (e EdgeHandle) Less(other EdgeHandle) bool {
	if e.idx != other.idx {
		return e.idx < other.idx
	}

	return e.gen < other.gen
}

// String returns a textual debug form, e.g. "V#3.1" for a live handle or
// "V#null" for NullVertex. Not intended for use as a stable identifier —
// only for diagnostics and test failure messages.
func (v VertexHandle) String() string {
	if v.IsNull() {
		return "V#null"
	}

	return fmt.Sprintf("V#%d.%d", v.idx, v.gen)
}

// String is the EdgeHandle analogue of VertexHandle.String.
func (e EdgeHandle) String() string {
	if e.IsNull() {
		return "E#null"
	}

	return fmt.Sprintf("E#%d.%d", e.idx, e.gen)
}
