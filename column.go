package ecs

import "reflect"

// column is a type-erased, append-only, growable buffer holding one
// component type's values for every row of a table. Go has no safe raw
// pointer arithmetic over arbitrary layouts, so the backing store is a
// reflect.Value slice of the component's registered type rather than a
// raw byte buffer.
type column struct {
	info ComponentInfo
	data reflect.Value // kind Slice, elem == info.reflectType
}

func newColumn(info ComponentInfo) *column {
	return &column{
		info: info,
		data: reflect.MakeSlice(reflect.SliceOf(info.reflectType), 0, 0),
	}
}

func withCapacity(info ComponentInfo, n int) *column {
	c := newColumn(info)
	c.grow(n)
	return c
}

func (c *column) len() int { return c.data.Len() }

// grow ensures the column can address at least n rows, doubling with an
// additive floor.
func (c *column) grow(n int) {
	if c.data.Cap() >= n {
		return
	}
	newCap := c.data.Cap() * 2
	if newCap < n {
		newCap = n
	}
	if newCap < Config.ColumnGrowthFloor {
		newCap = Config.ColumnGrowthFloor
	}
	grown := reflect.MakeSlice(c.data.Type(), c.data.Len(), newCap)
	reflect.Copy(grown, c.data)
	c.data = grown
}

// get returns the reflect.Value for row. row must be < len().
func (c *column) get(row int) reflect.Value {
	return c.data.Index(row)
}

// typedPtr returns an addressable *T (boxed as any) for row. The caller
// is responsible for knowing T matches the column's registered type.
func (c *column) typedPtr(row int) any {
	return c.data.Index(row).Addr().Interface()
}

// write grows the column if necessary and sets row to value.
func (c *column) write(row int, value reflect.Value) {
	if row >= c.data.Len() {
		c.grow(row + 1)
		c.data = c.data.Slice(0, row+1)
	}
	c.data.Index(row).Set(value)
}

// free invokes the component's BeforeRemove hook (if any) on row, then
// resets the slot to its zero value. The caller must not call free twice
// on the same row without an intervening write.
func (c *column) free(row int) {
	slot := c.data.Index(row)
	if c.info.beforeRemove != nil {
		c.info.beforeRemove(slot.Addr())
	}
	slot.Set(reflect.Zero(c.info.reflectType))
}

// invokeAfterInsert calls the component's AfterInsert hook (if any) on
// row's current value.
func (c *column) invokeAfterInsert(row int) {
	if c.info.afterInsert != nil {
		c.info.afterInsert(c.data.Index(row).Addr())
	}
}

// copyFrom copies the value at srcRow of src into row of c. Used during
// realloc to move a live cell from an old table's column to a new one.
func (c *column) copyFrom(row int, src *column, srcRow int) {
	value := src.get(srcRow)
	c.write(row, value)
}

// reflectValueOf boxes an already-typed value (or pointer-to-value) into
// the reflect.Value a column's write expects.
func reflectValueOf(value any) reflect.Value {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v
}
