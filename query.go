package ecs

// QueryData is the shape a Query yields per matched row. Go has no
// macro-generated trait impls per arity, so each atom and each tuple
// arity is a named, generic type instead of a derived one.
type QueryData interface {
	access(b *WorldAccess)
	requiredIDs() []ComponentId
	fetch(w *World, t *table, row TableRow, id EntityId) []any
}

// Read declares a required, read-only access to component C. Read-only
// use is a caller discipline, not a Go-level const pointer: Go has no
// immutable pointer type, so Read[C] and Write[C] both fetch a *C.
type Read[C any] struct{}

func (Read[C]) access(b *WorldAccess) {
	b.Add(Access{Kind: KindComponent, ID: RegisterComponent[C]().ID(), Required: true, Level: Read})
}
func (Read[C]) requiredIDs() []ComponentId { return []ComponentId{RegisterComponent[C]().ID()} }
func (Read[C]) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	col := t.columns[RegisterComponent[C]().ID()]
	return []any{col.typedPtr(int(row)).(*C)}
}

// Write declares a required, mutable access to component C.
type Write[C any] struct{}

func (Write[C]) access(b *WorldAccess) {
	b.Add(Access{Kind: KindComponent, ID: RegisterComponent[C]().ID(), Required: true, Level: Write})
}
func (Write[C]) requiredIDs() []ComponentId { return []ComponentId{RegisterComponent[C]().ID()} }
func (Write[C]) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	col := t.columns[RegisterComponent[C]().ID()]
	return []any{col.typedPtr(int(row)).(*C)}
}

// OptionRead declares an optional, read-only access to component C: it
// never narrows which tables match, and fetches a nil *C on rows whose
// table lacks the column.
type OptionRead[C any] struct{}

func (OptionRead[C]) access(b *WorldAccess) {
	b.Add(Access{Kind: KindComponent, ID: RegisterComponent[C]().ID(), Required: false, Level: Read})
}
func (OptionRead[C]) requiredIDs() []ComponentId { return nil }
func (OptionRead[C]) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	col, ok := t.columns[RegisterComponent[C]().ID()]
	if !ok {
		var nilPtr *C
		return []any{nilPtr}
	}
	return []any{col.typedPtr(int(row)).(*C)}
}

// OptionWrite declares an optional, mutable access to component C.
type OptionWrite[C any] struct{}

func (OptionWrite[C]) access(b *WorldAccess) {
	b.Add(Access{Kind: KindComponent, ID: RegisterComponent[C]().ID(), Required: false, Level: Write})
}
func (OptionWrite[C]) requiredIDs() []ComponentId { return nil }
func (OptionWrite[C]) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	col, ok := t.columns[RegisterComponent[C]().ID()]
	if !ok {
		var nilPtr *C
		return []any{nilPtr}
	}
	return []any{col.typedPtr(int(row)).(*C)}
}

// WithID yields the row's EntityId without declaring any component access.
type WithID struct{}

func (WithID) access(*WorldAccess)             {}
func (WithID) requiredIDs() []ComponentId      { return nil }
func (WithID) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	return []any{id}
}

// EntityRefData yields a read-only EntityRef view of the row's entity.
type EntityRefData struct{}

func (EntityRefData) access(b *WorldAccess)      { b.Add(Access{Kind: KindAllEntities, Level: Read}) }
func (EntityRefData) requiredIDs() []ComponentId { return nil }
func (EntityRefData) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	return []any{EntityRef{world: w, id: id}}
}

// EntityMutData yields a read-write EntityMut view of the row's entity.
type EntityMutData struct{}

func (EntityMutData) access(b *WorldAccess)      { b.Add(Access{Kind: KindAllEntities, Level: Write}) }
func (EntityMutData) requiredIDs() []ComponentId { return nil }
func (EntityMutData) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	return []any{EntityMut{EntityRef: EntityRef{world: w, id: id}}}
}

// Tuple2 composes two QueryData atoms, additive in access and fetch.
type Tuple2[D0, D1 QueryData] struct{}

func (Tuple2[D0, D1]) access(b *WorldAccess) {
	var d0 D0
	var d1 D1
	d0.access(b)
	d1.access(b)
}
func (Tuple2[D0, D1]) requiredIDs() []ComponentId {
	var d0 D0
	var d1 D1
	return append(d0.requiredIDs(), d1.requiredIDs()...)
}
func (Tuple2[D0, D1]) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	var d0 D0
	var d1 D1
	out := d0.fetch(w, t, row, id)
	return append(out, d1.fetch(w, t, row, id)...)
}

// Tuple3 composes three QueryData atoms.
type Tuple3[D0, D1, D2 QueryData] struct{}

func (Tuple3[D0, D1, D2]) access(b *WorldAccess) {
	var d0 D0
	var d1 D1
	var d2 D2
	d0.access(b)
	d1.access(b)
	d2.access(b)
}
func (Tuple3[D0, D1, D2]) requiredIDs() []ComponentId {
	var d0 D0
	var d1 D1
	var d2 D2
	out := d0.requiredIDs()
	out = append(out, d1.requiredIDs()...)
	return append(out, d2.requiredIDs()...)
}
func (Tuple3[D0, D1, D2]) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	var d0 D0
	var d1 D1
	var d2 D2
	out := d0.fetch(w, t, row, id)
	out = append(out, d1.fetch(w, t, row, id)...)
	return append(out, d2.fetch(w, t, row, id)...)
}

// Tuple4 composes four QueryData atoms. A caller needing more nests
// tuples, e.g. Tuple2[Tuple2[A, B], C].
type Tuple4[D0, D1, D2, D3 QueryData] struct{}

func (Tuple4[D0, D1, D2, D3]) access(b *WorldAccess) {
	var d0 D0
	var d1 D1
	var d2 D2
	var d3 D3
	d0.access(b)
	d1.access(b)
	d2.access(b)
	d3.access(b)
}
func (Tuple4[D0, D1, D2, D3]) requiredIDs() []ComponentId {
	var d0 D0
	var d1 D1
	var d2 D2
	var d3 D3
	out := d0.requiredIDs()
	out = append(out, d1.requiredIDs()...)
	out = append(out, d2.requiredIDs()...)
	return append(out, d3.requiredIDs()...)
}
func (Tuple4[D0, D1, D2, D3]) fetch(w *World, t *table, row TableRow, id EntityId) []any {
	var d0 D0
	var d1 D1
	var d2 D2
	var d3 D3
	out := d0.fetch(w, t, row, id)
	out = append(out, d1.fetch(w, t, row, id)...)
	out = append(out, d2.fetch(w, t, row, id)...)
	return append(out, d3.fetch(w, t, row, id)...)
}

// Query matches every table whose component set satisfies D's required
// accesses and F's filter, caching the matched table ids at construction.
// Tables created after construction are not picked up; a caller wanting a
// fresh match re-issues QueryOf.
type Query[D QueryData, F QueryFilter] struct {
	world    *World
	accesses *WorldAccess
	tableIDs []TableId
}

// QueryOf constructs a Query, failing if D's declared accesses conflict
// with each other.
func QueryOf[D QueryData, F QueryFilter](w *World) (*Query[D, F], error) {
	var d D
	b := NewWorldAccess()
	d.access(b)
	if err := b.Result(); err != nil {
		return nil, err
	}

	var f F
	required := NewComponentSet(d.requiredIDs()...)
	var tableIDs []TableId
	for _, t := range w.components.tables {
		if !t.components.ContainsAll(required) {
			continue
		}
		if !f.matches(t.components) {
			continue
		}
		tableIDs = append(tableIDs, t.id)
	}
	return &Query[D, F]{world: w, accesses: b, tableIDs: tableIDs}, nil
}

// Each calls fn once per matched row, in table-creation then row-insertion
// order.
func (q *Query[D, F]) Each(fn func(id EntityId, row []any)) {
	var d D
	for _, tid := range q.tableIDs {
		t := q.world.components.table(tid)
		t.rows(func(row TableRow, id EntityId) {
			fn(id, d.fetch(q.world, t, row, id))
		})
	}
}

// Get fetches D's row for a single entity, failing if id is not live or
// does not match the query.
func (q *Query[D, F]) Get(id EntityId) ([]any, bool) {
	addr, ok := q.world.entities.get(id)
	if !ok {
		return nil, false
	}
	for _, tid := range q.tableIDs {
		if tid != addr.table {
			continue
		}
		var d D
		t := q.world.components.table(tid)
		return d.fetch(q.world, t, addr.row, id), true
	}
	return nil, false
}

// Len returns the total number of rows the query currently matches.
func (q *Query[D, F]) Len() int {
	n := 0
	for _, tid := range q.tableIDs {
		n += q.world.components.table(tid).Len()
	}
	return n
}

// Each1 is a typed wrapper over Query.Each for a single-component D.
func Each1[C0 any, D QueryData, F QueryFilter](q *Query[D, F], fn func(EntityId, *C0)) {
	q.Each(func(id EntityId, row []any) {
		fn(id, row[0].(*C0))
	})
}

// Each2 is a typed wrapper over Query.Each for a two-component D.
func Each2[C0, C1 any, D QueryData, F QueryFilter](q *Query[D, F], fn func(EntityId, *C0, *C1)) {
	q.Each(func(id EntityId, row []any) {
		fn(id, row[0].(*C0), row[1].(*C1))
	})
}

// Each3 is a typed wrapper over Query.Each for a three-component D.
func Each3[C0, C1, C2 any, D QueryData, F QueryFilter](q *Query[D, F], fn func(EntityId, *C0, *C1, *C2)) {
	q.Each(func(id EntityId, row []any) {
		fn(id, row[0].(*C0), row[1].(*C1), row[2].(*C2))
	})
}

// Each4 is a typed wrapper over Query.Each for a four-component D.
func Each4[C0, C1, C2, C3 any, D QueryData, F QueryFilter](q *Query[D, F], fn func(EntityId, *C0, *C1, *C2, *C3)) {
	q.Each(func(id EntityId, row []any) {
		fn(id, row[0].(*C0), row[1].(*C1), row[2].(*C2), row[3].(*C3))
	})
}
