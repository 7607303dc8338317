package ecs

import "reflect"

// TableId is a dense index into a World's table slice.
type TableId int

func (t TableId) sparseIndex() int { return int(t) }

// TableRow is a dense index into a Table's entity list.
type TableRow int

// table is homogeneous storage for entities whose component set equals
// components. Rows are never compacted: a freed row is tombstoned (its
// liveness bit cleared and its index pushed to freeRows) rather than
// swapped with the table's tail, so Entities never has to patch a moved
// row index out from under a live EntityId. See SPEC_FULL.md §4.3/§9 for
// why tombstone was chosen over swap-remove.
type table struct {
	id         TableId
	components ComponentSet
	entities   []EntityId // index == TableRow; zero value at tombstoned rows
	columns    map[ComponentId]*column
	live       []bool // live[i] true iff entities[i] is a live row; grows with entities
	freeRows   []TableRow
	liveCount  int
}

func newTable(id TableId, components ComponentSet, infos map[ComponentId]ComponentInfo) *table {
	t := &table{
		id:         id,
		components: components,
		entities:   make([]EntityId, 0, Config.TableGrowthFloor),
		columns:    make(map[ComponentId]*column, components.Len()),
		live:       make([]bool, 0, Config.TableGrowthFloor),
	}
	for _, cid := range components.IDs() {
		t.columns[cid] = newColumn(infos[cid])
	}
	return t
}

// push appends id as a new (or reused, tombstoned) row and returns the row
// index. Every column is extended so the row is addressable; the caller
// must still write every column for that row before the row is otherwise
// observable.
func (t *table) push(id EntityId) TableRow {
	var row TableRow
	if n := len(t.freeRows); n > 0 {
		row = t.freeRows[n-1]
		t.freeRows = t.freeRows[:n-1]
		t.entities[row] = id
	} else {
		row = TableRow(len(t.entities))
		t.entities = append(t.entities, id)
		t.live = append(t.live, false)
		for _, col := range t.columns {
			if col.len() <= int(row) {
				col.write(int(row), reflect.Zero(col.info.reflectType))
			}
		}
	}
	t.live[row] = true
	t.liveCount++
	return row
}

// remove unlinks row from the table without dropping its column values
// (used when the entity is moving to another table and the bytes will be
// claimed there instead).
func (t *table) remove(row TableRow) {
	if !t.isLive(row) {
		return
	}
	t.live[row] = false
	t.entities[row] = EntityId{}
	t.freeRows = append(t.freeRows, row)
	t.liveCount--
}

// free unlinks row and invokes each column's drop/BeforeRemove path.
func (t *table) free(row TableRow) {
	if !t.isLive(row) {
		return
	}
	for _, col := range t.columns {
		col.free(int(row))
	}
	t.remove(row)
}

// replace drops the previous value at row for component cid and writes
// the new one; used when Insert targets a component the entity already
// has.
func (t *table) replace(cid ComponentId, row TableRow, value any) {
	col := t.columns[cid]
	col.free(int(row))
	col.write(int(row), reflectValueOf(value))
	col.invokeAfterInsert(int(row))
}

// get returns the reflect-boxed typed pointer for row's value of
// component cid.
func (t *table) get(cid ComponentId, row TableRow) (any, bool) {
	col, ok := t.columns[cid]
	if !ok {
		return nil, false
	}
	return col.typedPtr(int(row)), true
}

func (t *table) isLive(row TableRow) bool {
	if int(row) < 0 || int(row) >= len(t.live) {
		return false
	}
	return t.live[row]
}

// clear drops every live row in every column and resets the table to empty.
func (t *table) clear() {
	for row := range t.entities {
		t.free(TableRow(row))
	}
	t.entities = t.entities[:0]
	t.live = t.live[:0]
	t.freeRows = t.freeRows[:0]
	t.liveCount = 0
}

// Len returns the number of live rows.
func (t *table) Len() int { return t.liveCount }

// capacity returns the number of row slots, live and tombstoned.
func (t *table) capacity() int { return len(t.entities) }

// rows calls fn for every live row in ascending TableRow order.
func (t *table) rows(fn func(row TableRow, id EntityId)) {
	for row := 0; row < len(t.entities); row++ {
		if t.isLive(TableRow(row)) {
			fn(TableRow(row), t.entities[row])
		}
	}
}
