package ecs

// EntityRef is a read-only view onto a single entity. It is returned by
// World.Entity and by query iteration when the caller asked for
// EntityRefData.
type EntityRef struct {
	world *World
	id    EntityId
}

// ID returns the entity's EntityId.
func (e EntityRef) ID() EntityId { return e.id }

// Len returns the number of components currently carried by the entity.
func (e EntityRef) Len() int {
	addr, ok := e.world.entities.get(e.id)
	if !ok {
		return 0
	}
	return e.world.components.table(addr.table).components.Len()
}

// IsEmpty reports whether the entity carries no components.
func (e EntityRef) IsEmpty() bool { return e.Len() == 0 }

// Contains reports whether the entity currently carries component C.
func (e EntityRef) Contains(id ComponentId) bool {
	addr, ok := e.world.entities.get(e.id)
	if !ok {
		return false
	}
	return e.world.components.table(addr.table).components.Contains(id)
}

// columnAndRow resolves (column, row) for a (entity, component) pair,
// shared by EntityRef/EntityMut accessors and Component[T].GetFromEntity.
func (w *World) columnAndRow(id EntityId, cid ComponentId) (*column, TableRow, error) {
	addr, ok := w.entities.get(id)
	if !ok {
		return nil, 0, ErrEntityNotFound{ID: id}
	}
	t := w.components.table(addr.table)
	col, ok := t.columns[cid]
	if !ok {
		return nil, 0, ErrComponentNotFound{Entity: id, ComponentName: globalComponents.info(cid).Name()}
	}
	return col, addr.row, nil
}

// Get returns a pointer to C's value on e, or ErrComponentNotFound/
// ErrEntityNotFound.
func Get[C any](e EntityRef) (*C, error) {
	c := RegisterComponent[C]()
	return c.GetFromEntity(e)
}

// EntityMut is a read-write view onto a single entity: it additionally
// permits structural changes (Insert/Remove/Despawn). Insert of a new
// component and Remove of a carried one move the entity to another table
// via components.realloc; Despawn frees its row.
type EntityMut struct {
	EntityRef
}

// Insert adds component C with value to the entity, reallocating it into
// the table for its new component set. If the entity already carries C,
// the previous value is dropped and replaced in place without a realloc.
func Insert[C any](e EntityMut, value C) error {
	c := RegisterComponent[C]()
	return e.world.insertComponent(e.id, c.id, value)
}

// Remove drops component C from the entity, reallocating it into the
// table for its new component set. Removing a component the entity does
// not carry is a no-op.
func Remove[C any](e EntityMut) error {
	c := RegisterComponent[C]()
	return e.world.removeComponent(e.id, c.id)
}

// GetMut returns a mutable pointer to C's value on e.
func GetMut[C any](e EntityMut) (*C, error) {
	c := RegisterComponent[C]()
	return c.GetFromEntity(e.EntityRef)
}

// GetOrInsert returns C's current value on e, inserting fallback first if
// the entity does not already carry C.
func GetOrInsert[C any](e EntityMut, fallback C) (*C, error) {
	if !e.Contains(RegisterComponent[C]().ID()) {
		if err := Insert(e, fallback); err != nil {
			return nil, err
		}
	}
	return GetMut[C](e)
}

// Despawn removes the entity from the world entirely.
func (e EntityMut) Despawn() error {
	return e.world.Despawn(e.id)
}

// EntityWorld is the broadest per-entity view: every EntityRef/EntityMut
// accessor plus fluent And* forms for chaining several mutations, mirroring
// the teacher's own "operate on one entity, then another" call shape.
type EntityWorld struct {
	EntityMut
}

// AndRemove drops component C then returns the same EntityWorld for
// chaining. Errors are swallowed since a chained fluent call has no
// channel to surface one; callers that need error handling should use
// Remove directly.
func AndRemove[C any](e EntityWorld) EntityWorld {
	_ = Remove[C](e.EntityMut)
	return e
}

// AndInsert inserts C with value then returns the same EntityWorld for
// chaining. Errors are swallowed for the same reason as AndRemove.
func AndInsert[C any](e EntityWorld, value C) EntityWorld {
	_ = Insert(e.EntityMut, value)
	return e
}
