package ecs

import "testing"

type tableTestA struct{ V int }
type tableTestB struct{ V string }

func newTestTable(t *testing.T, ids ...ComponentId) *table {
	t.Helper()
	infos := map[ComponentId]ComponentInfo{}
	for _, id := range ids {
		infos[id] = globalComponents.info(id)
	}
	return newTable(0, NewComponentSet(ids...), infos)
}

func TestTablePushWriteGetRoundtrip(t *testing.T) {
	a := RegisterComponent[tableTestA]()
	tbl := newTestTable(t, a.ID())

	id := EntityId{Index: 1, Version: 1}
	row := tbl.push(id)
	tbl.columns[a.ID()].write(int(row), reflectValueOf(tableTestA{V: 42}))

	ptr, ok := tbl.get(a.ID(), row)
	if !ok {
		t.Fatalf("get() ok = false")
	}
	if got := ptr.(*tableTestA).V; got != 42 {
		t.Fatalf("V = %d, want 42", got)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
}

func TestTableFreeTombstonesAndReusesRow(t *testing.T) {
	a := RegisterComponent[tableTestA]()
	tbl := newTestTable(t, a.ID())

	id1 := EntityId{Index: 1, Version: 1}
	row1 := tbl.push(id1)
	tbl.columns[a.ID()].write(int(row1), reflectValueOf(tableTestA{V: 1}))

	tbl.free(row1)
	if tbl.Len() != 0 {
		t.Fatalf("Len() after free = %d, want 0", tbl.Len())
	}
	if tbl.isLive(row1) {
		t.Fatalf("row %d still live after free", row1)
	}

	id2 := EntityId{Index: 2, Version: 1}
	row2 := tbl.push(id2)
	if row2 != row1 {
		t.Fatalf("expected tombstoned row %d to be reused, got new row %d", row1, row2)
	}
	if tbl.capacity() != 1 {
		t.Fatalf("capacity() = %d, want 1 (no growth from reuse)", tbl.capacity())
	}
}

func TestTableRowsSkipsTombstones(t *testing.T) {
	a := RegisterComponent[tableTestA]()
	tbl := newTestTable(t, a.ID())

	ids := []EntityId{
		{Index: 1, Version: 1},
		{Index: 2, Version: 1},
		{Index: 3, Version: 1},
	}
	rows := make([]TableRow, len(ids))
	for i, id := range ids {
		rows[i] = tbl.push(id)
	}
	tbl.free(rows[1])

	var seen []EntityId
	tbl.rows(func(row TableRow, id EntityId) {
		seen = append(seen, id)
	})

	if len(seen) != 2 || seen[0] != ids[0] || seen[1] != ids[2] {
		t.Fatalf("rows() = %v, want [%v %v]", seen, ids[0], ids[2])
	}
}

func TestTableReplaceDropsOldWritesNew(t *testing.T) {
	a := RegisterComponent[tableTestA]()
	tbl := newTestTable(t, a.ID())

	id := EntityId{Index: 1, Version: 1}
	row := tbl.push(id)
	tbl.columns[a.ID()].write(int(row), reflectValueOf(tableTestA{V: 1}))

	tbl.replace(a.ID(), row, tableTestA{V: 99})

	ptr, _ := tbl.get(a.ID(), row)
	if got := ptr.(*tableTestA).V; got != 99 {
		t.Fatalf("V after replace = %d, want 99", got)
	}
}

func TestTableClearDropsAllRows(t *testing.T) {
	a := RegisterComponent[tableTestA]()
	tbl := newTestTable(t, a.ID())

	for i := 0; i < 5; i++ {
		tbl.push(EntityId{Index: uint32(i + 1), Version: 1})
	}
	tbl.clear()

	if tbl.Len() != 0 || tbl.capacity() != 0 {
		t.Fatalf("after clear Len()=%d capacity()=%d, want 0 0", tbl.Len(), tbl.capacity())
	}
}
