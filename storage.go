package ecs

import (
	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// components is the table registry: it allocates tables on demand and
// moves entities between them on structural change. Table identity is
// stable for the World's lifetime once created.
type components struct {
	tables []*table
	bySet  map[mask.Mask]TableId
	infos  map[ComponentId]ComponentInfo
}

func newComponents() *components {
	return &components{
		bySet: make(map[mask.Mask]TableId),
		infos: make(map[ComponentId]ComponentInfo),
	}
}

func (c *components) registerInfo(id ComponentId) {
	if _, ok := c.infos[id]; ok {
		return
	}
	c.infos[id] = globalComponents.info(id)
}

// allocSet returns the table for set, creating it the first time any
// entity with that exact component set is requested.
func (c *components) allocSet(set ComponentSet) *table {
	if id, ok := c.bySet[set.Key()]; ok {
		return c.tables[id]
	}
	for _, id := range set.IDs() {
		c.registerInfo(id)
	}
	id := TableId(len(c.tables))
	t := newTable(id, set, c.infos)
	c.tables = append(c.tables, t)
	c.bySet[set.Key()] = id
	return t
}

func (c *components) table(id TableId) *table {
	return c.tables[id]
}

// realloc moves an entity from its current table (oldAddr) into the table
// for newSet, copying every component in the intersection of the old and
// new sets. Components in oldSet∖newSet must already have been dropped by
// the caller; components in newSet∖oldSet must be written by the caller
// after realloc returns. realloc itself never drops or double-copies a
// moved value.
func (c *components) realloc(oldAddr entityAddr, id EntityId, newSet ComponentSet) entityAddr {
	oldTable := c.tables[oldAddr.table]
	newTable := c.allocSet(newSet)

	newRow := newTable.push(id)
	shared := Intersect(oldTable.components, newSet)
	for _, cid := range shared.IDs() {
		dstCol := newTable.columns[cid]
		srcCol := oldTable.columns[cid]
		if dstCol == nil || srcCol == nil {
			panic(bark.AddTrace(errMissingColumn{cid}))
		}
		dstCol.copyFrom(int(newRow), srcCol, int(oldAddr.row))
	}
	oldTable.remove(oldAddr.row)

	return entityAddr{table: newTable.id, row: newRow, set: true}
}

// clear empties every table but retains their archetype identity.
func (c *components) clear() {
	for _, t := range c.tables {
		t.clear()
	}
}

type errMissingColumn struct {
	id ComponentId
}

func (e errMissingColumn) Error() string {
	return "realloc: expected shared column not present in source or destination table"
}
