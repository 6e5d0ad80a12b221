// File: slot_table.go
// Role: the generational slot table backing every handle space in this
// package (vertex slots and edge slots alike).
//
// Design (spec-grounded, §9 "Design Notes"):
//   - slots[0] is a permanently dead sentinel, so index 0 never resolves to
//     a live value and the zero-value handle (idx=0) is always null.
//   - free holds indices of dead slots available for reuse; Insert prefers
//     reuse over growth, bumping the reused slot's generation so stale
//     handles from before the erase compare unequal to the new occupant.
//   - alive is a dense, order-unspecified list of currently-live slot
//     indices, with aliveAt as its reverse index; this is the "separate
//     dense occupancy list" spec.md §9 calls for so RandomVert/RandomEdge
//     can sample in O(1) instead of rejection-sampling the sparse slots
//     array.
package core

// slotEntry is one row of a slotTable: a generation counter, a liveness
// flag, and the stored value (zeroed while dead).
type slotEntry[T any] struct {
	gen   uint32
	alive bool
	value T
}

// slotTable is a generic generational slot table. Not safe for concurrent
// use (see core's package doc on the single-threaded-per-graph model).
type slotTable[T any] struct {
	slots   []slotEntry[T]
	free    []uint32
	alive   []uint32 // dense list of live slot indices
	aliveAt []int    // slot index -> position within alive, or -1 if dead
}

// newSlotTable returns an empty table with slot 0 reserved as the dead
// sentinel that backs the null handle.
func newSlotTable[T any]() *slotTable[T] {
	t := &slotTable[T]{
		slots:   make([]slotEntry[T], 1), // index 0: permanently dead
		aliveAt: make([]int, 1),
	}
	t.aliveAt[0] = -1

	return t
}

// insert stores value in a free or newly-appended slot and returns its
// (index, generation). Complexity: O(1) amortised.
func (t *slotTable[T]) insert(value T) (uint32, uint32) {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slotEntry[T]{})
		t.aliveAt = append(t.aliveAt, -1)
	}

	e := &t.slots[idx]
	e.alive = true
	e.value = value

	t.aliveAt[idx] = len(t.alive)
	t.alive = append(t.alive, idx)

	return idx, e.gen
}

// get returns a pointer to the live value at (idx, gen), or nil if the slot
// is dead or its generation no longer matches (stale handle).
func (t *slotTable[T]) get(idx, gen uint32) *T {
	if int(idx) >= len(t.slots) {
		return nil
	}
	e := &t.slots[idx]
	if !e.alive || e.gen != gen {
		return nil
	}

	return &e.value
}

// contains reports liveness and generation match without returning a
// pointer; used by preconditions that only need a boolean.
func (t *slotTable[T]) contains(idx, gen uint32) bool {
	return t.get(idx, gen) != nil
}

// erase kills the slot at (idx, gen) if it is currently live with a matching
// generation, swap-removing it from the dense alive list and bumping the
// generation so any handle retained by the caller becomes stale. Returns
// false if the handle was already stale or null.
func (t *slotTable[T]) erase(idx, gen uint32) bool {
	if int(idx) >= len(t.slots) {
		return false
	}
	e := &t.slots[idx]
	if !e.alive || e.gen != gen {
		return false
	}

	e.alive = false
	e.gen++
	var zero T
	e.value = zero

	// Swap-remove idx from the dense alive list.
	pos := t.aliveAt[idx]
	last := len(t.alive) - 1
	movedIdx := t.alive[last]
	t.alive[pos] = movedIdx
	t.aliveAt[movedIdx] = pos
	t.alive = t.alive[:last]
	t.aliveAt[idx] = -1

	t.free = append(t.free, idx)

	return true
}

// len reports the number of currently-live slots. Complexity: O(1).
func (t *slotTable[T]) len() int { return len(t.alive) }

// clear drops every slot, resetting the table to its just-constructed state
// (slot 0 still reserved as the dead sentinel).
func (t *slotTable[T]) clear() {
	t.slots = t.slots[:1]
	t.aliveAt = t.aliveAt[:1]
	t.alive = t.alive[:0]
	t.free = t.free[:0]
}

// randomAliveIndex returns a uniformly-sampled live slot index using bits
// drawn from r. Precondition: len() > 0 (checked by callers, which hold the
// handle-kind-specific sentinel for the precondition-violation message).
func (t *slotTable[T]) randomAliveIndex(r RandSource) uint32 {
	n := uint64(len(t.alive))
	pick := r.Uint64() % n

	return t.alive[pick]
}

// genAt returns the current generation stamp for idx, used to mint a handle
// for an index already known to be alive (e.g. after randomAliveIndex).
func (t *slotTable[T]) genAt(idx uint32) uint32 { return t.slots[idx].gen }

// atIdx returns a pointer to the value at idx without any generation check.
// Internal use only, for intrusive-linked-list maintenance where the caller
// already holds an idx known (by construction of the list itself) to be
// live — e.g. following an outNext/inPrev link just stored by this same
// package. Never exposed outside core.
func (t *slotTable[T]) atIdx(idx uint32) *T { return &t.slots[idx].value }

// noLink is the sentinel stored in intrusive linked-list fields (outHead,
// outNext, inPrev, ...) to mean "no such neighbor."
const noLink int32 = -1
