package ecs

// World owns every entity, table, and resource for one simulation. It is
// the single entry point external callers construct: everything else
// (EntityRef, EntityMut, Query, Res) is a view scoped to a *World.
type World struct {
	entities   *entities
	components *components
	resources  *resources
}

// NewWorld returns an empty World ready to spawn into.
func NewWorld() *World {
	return &World{
		entities:   newEntities(),
		components: newComponents(),
		resources:  newResources(),
	}
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.entities.len() }

// IsEmpty reports whether the world has no live entities.
func (w *World) IsEmpty() bool { return w.Len() == 0 }

// Contains reports whether id refers to a currently live entity.
func (w *World) Contains(id EntityId) bool { return w.entities.contains(id) }

// Clear despawns every entity and drops every table's rows, retaining
// archetype identity (tables themselves are not freed). Each retired slot
// has its version bumped, as Despawn does, so no id from before Clear
// matches an entity spawned afterward.
func (w *World) Clear() {
	w.components.clear()
	w.entities.flush()
	for idx, slot := range w.entities.slots {
		if slot.alive {
			w.entities.free(EntityId{Index: uint32(idx), Version: slot.version})
		}
	}
}

// Iter is a push-iterator over every currently live EntityId, in
// ascending slot-index order.
func (w *World) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		for idx, slot := range w.entities.slots {
			if !slot.alive {
				continue
			}
			if !yield(EntityId{Index: uint32(idx), Version: slot.version}) {
				return
			}
		}
	}
}

// All collects every currently live EntityId. It is the go.mod-floor-safe
// alternative to ranging over Iter() directly.
func (w *World) All() []EntityId {
	ids := make([]EntityId, 0, w.Len())
	w.Iter()(func(id EntityId) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Entity returns a read-only view of id, or an error if id is not live.
func (w *World) Entity(id EntityId) (EntityRef, error) {
	if !w.entities.contains(id) {
		return EntityRef{}, ErrEntityNotFound{ID: id}
	}
	return EntityRef{world: w, id: id}, nil
}

// EntityMutOf returns a read-write view of id, or an error if id is not live.
func (w *World) EntityMutOf(id EntityId) (EntityMut, error) {
	ref, err := w.Entity(id)
	if err != nil {
		return EntityMut{}, err
	}
	return EntityMut{EntityRef: ref}, nil
}

// EntityWorldOf returns the broadest fluent view of id.
func (w *World) EntityWorldOf(id EntityId) (EntityWorld, error) {
	mut, err := w.EntityMutOf(id)
	if err != nil {
		return EntityWorld{}, err
	}
	return EntityWorld{EntityMut: mut}, nil
}

// Spawn allocates a new entity, writes every component in bundle into a
// fresh row of the table for bundle's component set, and returns the new
// entity's id. It panics if bundle declares the same component more than
// once: Go's type system cannot reject Bundle2[T, T] at compile time, so
// the check happens here, at the one place every bundle is actually used.
func (w *World) Spawn(bundle Bundle) EntityId {
	if err := duplicateCheck(bundle.rawIDs()...); err != nil {
		panic(err)
	}
	id := w.entities.alloc()
	set := bundle.Components()
	t := w.components.allocSet(set)
	row := t.push(id)
	w.entities.set(id, entityAddr{table: t.id, row: row, set: true})
	bundle.write(bundleWriter{table: t, row: row})
	return id
}

// SpawnIter spawns one entity per bundle, in order, and returns their ids.
func SpawnIter[B Bundle](w *World, bundles []B) []EntityId {
	ids := make([]EntityId, len(bundles))
	for i, b := range bundles {
		ids[i] = w.Spawn(b)
	}
	return ids
}

// Despawn removes id from the world, dropping every component value via
// its BeforeRemove hook. It returns ErrEntityNotFound if id is not live.
func (w *World) Despawn(id EntityId) error {
	addr, ok := w.entities.free(id)
	if !ok {
		return ErrEntityNotFound{ID: id}
	}
	w.components.table(addr.table).free(addr.row)
	return nil
}

// EntityScope runs fn once per id in ids, skipping any id that is no
// longer live, giving fn an EntityMut view scoped to that single entity.
// This is the cross-entity batch-update shape: unlike a Query, ids is an
// explicit, caller-chosen list rather than every row matching a shape.
func (w *World) EntityScope(ids []EntityId, fn func(EntityMut)) {
	for _, id := range ids {
		mut, err := w.EntityMutOf(id)
		if err != nil {
			continue
		}
		fn(mut)
	}
}

// insertComponent adds or replaces component cid's value on id.
func (w *World) insertComponent(id EntityId, cid ComponentId, value any) error {
	addr, ok := w.entities.get(id)
	if !ok {
		return ErrEntityNotFound{ID: id}
	}
	t := w.components.table(addr.table)
	if t.components.Contains(cid) {
		t.replace(cid, addr.row, value)
		return nil
	}
	newSet := t.components.With(cid)
	newAddr := w.components.realloc(addr, id, newSet)
	w.entities.set(id, newAddr)
	newTable := w.components.table(newAddr.table)
	newCol := newTable.columns[cid]
	newCol.write(int(newAddr.row), reflectValueOf(value))
	newCol.invokeAfterInsert(int(newAddr.row))
	return nil
}

// removeComponent drops component cid's value from id, if present.
func (w *World) removeComponent(id EntityId, cid ComponentId) error {
	addr, ok := w.entities.get(id)
	if !ok {
		return ErrEntityNotFound{ID: id}
	}
	t := w.components.table(addr.table)
	if !t.components.Contains(cid) {
		return nil
	}
	t.columns[cid].free(int(addr.row))
	newSet := t.components.Without(cid)
	newAddr := w.components.realloc(addr, id, newSet)
	w.entities.set(id, newAddr)
	return nil
}
