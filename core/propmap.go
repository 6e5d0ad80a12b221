// File: propmap.go
// Role: dense external property maps bound to a graph's handle space
// (spec.md §4.2).
//
// Implementation:
//   - values[idx] / stamp[idx] are grown lazily, keyed by the handle's slot
//     index, never by its generation.
//   - A read or write through handle h first checks stamp[h.idx] == h.gen+1;
//     the +1 offset reserves stamp value 0 to mean "slot never claimed by
//     this map," since a slot's first generation is itself 0 (slotTable
//     mints gen 0 on first insert) and stamp[] is zero-initialized by grow —
//     without the offset those two zeros would collide and a never-written
//     generation-0 handle would misread as claimed. On mismatch (slot never
//     touched by this map, or reused by a later insertion since this map
//     last wrote it) the map treats the slot as holding the default and,
//     for Set/Ref, claims it by writing the offset stamp. This is what makes
//     "new vertex/edge handles appear in the map with the default" true
//     even when a freed index is reused — the map does not need to be told
//     about the graph's insertions or erasures at all.
//
// AI-Hints (file):
//   - Get is a pure read; it never mutates or grows the map's backing slices
//     (an h.idx beyond the current length simply returns def).
//   - Ref returns a pointer valid until the next Set/Ref call that grows the
//     backing slice; do not retain it across such calls.
package core

// VertMap is a total function from VertexHandle to T. Conceptually bound to
// the handle space of whichever graph minted the handles it is indexed
// with — Go methods cannot introduce their own type parameters, so unlike
// spec.md's g.vert_map(default) syntax, handlegraph mints maps via the
// package-level NewVertMap constructor rather than a method on OutAdj /
// InAdj / BiAdj. Lookup and mutation are O(1); see the file doc for the
// generation-stamping scheme that makes a reused index read as the default.
type VertMap[T any] struct {
	def    T
	values []T
	stamp  []uint32
}

// NewVertMap returns an empty VertMap with the given default value. Index
// any VertexHandle minted by the same graph; indexing with a handle from a
// different graph's handle space is meaningless but not detected (property
// maps do not retain a reference to their owning graph).
func NewVertMap[T any](def T) *VertMap[T] {
	return &VertMap[T]{def: def}
}

// Get returns the value associated with v, or the map's default if v has
// never been written through this map (including v being a freshly-reused
// index since this map last saw its slot).
//
// Complexity: O(1).
func (m *VertMap[T]) Get(v VertexHandle) T {
	if int(v.idx) >= len(m.values) || m.stamp[v.idx] != v.gen+1 {
		return m.def
	}

	return m.values[v.idx]
}

// Set assigns val to v, persisting until the next Set for v or until v is
// erased and its index reused by a different vertex.
//
// Complexity: O(1) amortised (may grow the backing slice).
func (m *VertMap[T]) Set(v VertexHandle, val T) {
	m.grow(v.idx)
	m.values[v.idx] = val
	m.stamp[v.idx] = v.gen + 1
}

// Ref returns a pointer suitable for in-place mutation (the Go analogue of
// spec.md's "mutable access m[h]"). The returned slot reads as the default
// until first written through the pointer... actually it is eagerly claimed:
// calling Ref marks v's slot as owned by v's generation immediately, with
// the current Get(v) value (default if unclaimed) copied in, so *ptr += 1
// style usage works without a separate Get+Set round trip.
//
// Complexity: O(1) amortised.
func (m *VertMap[T]) Ref(v VertexHandle) *T {
	cur := m.Get(v)
	m.grow(v.idx)
	m.values[v.idx] = cur
	m.stamp[v.idx] = v.gen + 1

	return &m.values[v.idx]
}

// grow extends the backing slices to cover idx, doubling capacity rather
// than allocating exactly idx+1 each time so that filling a map via Set in
// ascending index order stays O(N) amortised instead of O(N^2).
func (m *VertMap[T]) grow(idx uint32) {
	if int(idx) < len(m.values) {
		return
	}
	n := int(idx) + 1
	if cap(m.values) >= n {
		m.values = m.values[:n]
		m.stamp = m.stamp[:n]

		return
	}
	newCap := 2 * cap(m.values)
	if newCap < n {
		newCap = n
	}
	values := make([]T, n, newCap)
	stamp := make([]uint32, n, newCap)
	copy(values, m.values)
	copy(stamp, m.stamp)
	m.values = values
	m.stamp = stamp
}

// EdgeMap is the EdgeHandle analogue of VertMap. Same contract throughout.
type EdgeMap[T any] struct {
	def    T
	values []T
	stamp  []uint32
}

// NewEdgeMap is the EdgeMap analogue of NewVertMap.
func NewEdgeMap[T any](def T) *EdgeMap[T] {
	return &EdgeMap[T]{def: def}
}

// Get is the EdgeMap analogue of VertMap.Get.
func (m *EdgeMap[T]) Get(e EdgeHandle) T {
	if int(e.idx) >= len(m.values) || m.stamp[e.idx] != e.gen+1 {
		return m.def
	}

	return m.values[e.idx]
}

// Set is the EdgeMap analogue of VertMap.Set.
func (m *EdgeMap[T]) Set(e EdgeHandle, val T) {
	m.grow(e.idx)
	m.values[e.idx] = val
	m.stamp[e.idx] = e.gen + 1
}

// Ref is the EdgeMap analogue of VertMap.Ref.
func (m *EdgeMap[T]) Ref(e EdgeHandle) *T {
	cur := m.Get(e)
	m.grow(e.idx)
	m.values[e.idx] = cur
	m.stamp[e.idx] = e.gen + 1

	return &m.values[e.idx]
}

// grow is the EdgeMap analogue of VertMap.grow — amortised doubling, not
// exact-size reallocation, so ascending-index Set fills stay O(N).
func (m *EdgeMap[T]) grow(idx uint32) {
	if int(idx) < len(m.values) {
		return
	}
	n := int(idx) + 1
	if cap(m.values) >= n {
		m.values = m.values[:n]
		m.stamp = m.stamp[:n]

		return
	}
	newCap := 2 * cap(m.values)
	if newCap < n {
		newCap = n
	}
	values := make([]T, n, newCap)
	stamp := make([]uint32, n, newCap)
	copy(values, m.values)
	copy(stamp, m.stamp)
	m.values = values
	m.stamp = stamp
}
