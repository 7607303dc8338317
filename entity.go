package ecs

import (
	"sync/atomic"

	"github.com/TheBitDrifter/bark"
)

// EntityId is a dense, generational entity handle: index locates a slot,
// version discriminates reuse of that slot. The Go zero value (index 0,
// version 0) is never a live entity, since version 0 is never assigned to
// an allocated slot, so it doubles as the "invalid id" sentinel without a
// wrapper type.
type EntityId struct {
	Index   uint32
	Version uint32
}

func (id EntityId) sparseIndex() int { return int(id.Index) }

// Valid reports whether id could possibly be live (version != 0). It does
// not check any particular World.
func (id EntityId) Valid() bool { return id.Version != 0 }

// entityAddr locates a live entity's row within its table.
type entityAddr struct {
	table TableId
	row   TableRow
	set   bool
}

type entitySlot struct {
	version uint32
	alive   bool
	addr    entityAddr
}

// entities is the generational slot allocator: dense indices, lock-free
// reservation from a shared reference, materialised by Flush under
// exclusive access.
type entities struct {
	slots     []entitySlot
	pending   []uint32
	cursor    atomic.Int64
	reserved  atomic.Uint64
	allocated int
}

func newEntities() *entities {
	return &entities{}
}

// reserve atomically reserves a new EntityId from a shared reference. The
// reservation is a promise: the slot does not materialise until Flush.
func (e *entities) reserve() EntityId {
	e.reserved.Add(1)
	c := e.cursor.Add(-1) + 1 // value before decrement
	if c > 0 {
		idx := e.pending[c-1]
		version := e.slots[idx].version
		if version == 0 {
			version = 1
		}
		return EntityId{Index: idx, Version: version}
	}
	// Extension beyond slots: index is computed from how far past the
	// original length this reservation reaches.
	extension := uint32(-c)
	return EntityId{Index: uint32(len(e.slots)) + extension, Version: 1}
}

// flush materialises every reservation made since the last flush.
func (e *entities) flush() {
	reserved := e.reserved.Load()
	if reserved == 0 {
		return
	}
	cursor := e.cursor.Load()
	var reusedCount int64
	if cursor > 0 {
		reusedCount = cursor
	}

	// Materialise reused (pending) slots, bumping their version.
	for i := int64(len(e.pending)) - 1; i >= reusedCount; i-- {
		idx := e.pending[i]
		e.slots[idx].alive = true
		if e.slots[idx].version == 0 {
			e.slots[idx].version = 1
		}
		e.allocated++
	}
	e.pending = e.pending[:reusedCount]

	// Materialise end-extensions.
	if cursor < 0 {
		extension := int(-cursor)
		for i := 0; i < extension; i++ {
			e.slots = append(e.slots, entitySlot{version: 1, alive: true})
			e.allocated++
		}
	}

	e.reserved.Store(0)
	e.cursor.Store(int64(len(e.pending)))
}

// alloc flushes pending reservations, then allocates and returns a new
// EntityId immediately.
func (e *entities) alloc() EntityId {
	e.flush()
	if n := len(e.pending); n > 0 {
		idx := e.pending[n-1]
		e.pending = e.pending[:n-1]
		if e.slots[idx].version == 0 {
			e.slots[idx].version = 1
		}
		e.slots[idx].alive = true
		e.allocated++
		e.cursor.Store(int64(len(e.pending)))
		return EntityId{Index: idx, Version: e.slots[idx].version}
	}
	idx := uint32(len(e.slots))
	e.slots = append(e.slots, entitySlot{version: 1, alive: true})
	e.allocated++
	e.cursor.Store(int64(len(e.pending)))
	return EntityId{Index: idx, Version: 1}
}

// free flushes, then retires id's slot (bumping its version) and returns
// its prior address. ok is false if id is stale.
func (e *entities) free(id EntityId) (entityAddr, bool) {
	e.flush()
	if int(id.Index) >= len(e.slots) {
		return entityAddr{}, false
	}
	slot := &e.slots[id.Index]
	if !slot.alive || slot.version != id.Version {
		return entityAddr{}, false
	}
	addr := slot.addr
	if slot.version == ^uint32(0) {
		panic(bark.AddTrace(errEntityVersionOverflow{id}))
	}
	slot.version++
	slot.alive = false
	slot.addr = entityAddr{}
	e.pending = append(e.pending, id.Index)
	e.cursor.Store(int64(len(e.pending)))
	e.allocated--
	return addr, true
}

// set writes id's address. ok is false if id's version is stale.
func (e *entities) set(id EntityId, addr entityAddr) bool {
	if int(id.Index) >= len(e.slots) {
		return false
	}
	slot := &e.slots[id.Index]
	if slot.version != id.Version {
		return false
	}
	slot.addr = addr
	return true
}

// get returns id's current address. ok is false if id is stale or has no
// address yet.
func (e *entities) get(id EntityId) (entityAddr, bool) {
	if int(id.Index) >= len(e.slots) {
		return entityAddr{}, false
	}
	slot := e.slots[id.Index]
	if !slot.alive || slot.version != id.Version || !slot.addr.set {
		return entityAddr{}, false
	}
	return slot.addr, true
}

// contains reports whether id refers to a currently alive entity,
// allocated or reserved-but-unflushed. Of the unflushed reservations, only
// those extending past the current slots are recognised; a reservation
// that reuses a freed slot is not reported until the next flush.
func (e *entities) contains(id EntityId) bool {
	if int(id.Index) < len(e.slots) {
		slot := e.slots[id.Index]
		return slot.alive && slot.version == id.Version
	}
	// Reserved-but-unflushed entities fall in the window implied by the
	// cursor extending past the current slot length.
	cursor := e.cursor.Load()
	if cursor >= 0 {
		return false
	}
	extension := uint32(-cursor)
	withinWindow := id.Index < uint32(len(e.slots))+extension
	return withinWindow && id.Version == 1
}

// len returns the number of allocated (flushed, live) entities.
func (e *entities) len() int { return e.allocated }

type errEntityVersionOverflow struct {
	id EntityId
}

func (e errEntityVersionOverflow) Error() string {
	return "entity version exhausted for slot"
}
