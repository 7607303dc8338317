package ecs

import "reflect"

// ResourceId is a dense, process-stable identifier for a registered
// resource type, mirroring ComponentId but kept in a separate namespace
// since resources live outside any table.
type ResourceId int

func (r ResourceId) sparseIndex() int { return int(r) }

var globalResources = struct {
	byType map[reflect.Type]ResourceId
	names  []string
}{byType: make(map[reflect.Type]ResourceId)}

func resourceIdFor(t reflect.Type) ResourceId {
	if id, ok := globalResources.byType[t]; ok {
		return id
	}
	id := ResourceId(len(globalResources.names))
	globalResources.byType[t] = id
	globalResources.names = append(globalResources.names, t.String())
	return id
}

// resourceCell holds a single resource's boxed value plus its coarse
// borrow state: a resource is either free, read-held by any number of
// Res views, or write-held by exactly one ResMut view. Unlike components,
// resources have no per-row granularity to exploit, so the whole value is
// the unit of borrow. The state is only enforced for system-scheduled
// access (SystemInput.buildInput/releaseInput); direct Res/ResMut.Get
// calls bypass it, matching the teacher's own lack of any runtime guard
// on direct Storage access outside of Cursor iteration.
type resourceCell struct {
	value   reflect.Value // addressable *T
	present bool
	readers int
	written bool
}

func (c *resourceCell) acquireRead() bool {
	if c.written {
		return false
	}
	c.readers++
	return true
}

func (c *resourceCell) releaseRead() {
	if c.readers > 0 {
		c.readers--
	}
}

func (c *resourceCell) acquireWrite() bool {
	if c.written || c.readers > 0 {
		return false
	}
	c.written = true
	return true
}

func (c *resourceCell) releaseWrite() {
	c.written = false
}

// resources is the World's single-slot-per-type resource table.
type resources struct {
	cells map[ResourceId]*resourceCell
}

func newResources() *resources {
	return &resources{cells: make(map[ResourceId]*resourceCell)}
}

func (r *resources) create(id ResourceId, value reflect.Value) {
	r.cells[id] = &resourceCell{value: value, present: true}
}

func (r *resources) destroy(id ResourceId) {
	delete(r.cells, id)
}

func (r *resources) destroyAll() {
	r.cells = make(map[ResourceId]*resourceCell)
}

func (r *resources) get(id ResourceId) (*resourceCell, bool) {
	cell, ok := r.cells[id]
	if !ok || !cell.present {
		return nil, false
	}
	return cell, true
}

// Res is a read-only handle to a resource of type R.
type Res[R any] struct{}

// ResourceID returns R's stable ResourceId, registering R the first time
// it is referenced.
func (Res[R]) ResourceID() ResourceId {
	var zero R
	return resourceIdFor(reflect.TypeOf(&zero).Elem())
}

// Get returns R's current value from w.
func (Res[R]) Get(w *World) (*R, error) {
	id := (Res[R]{}).ResourceID()
	cell, ok := w.resources.get(id)
	if !ok {
		return nil, ErrResourceNotFound{Name: globalResources.names[id]}
	}
	return cell.value.Interface().(*R), nil
}

// ResMut is a read-write handle to a resource of type R.
type ResMut[R any] struct{}

// ResourceID returns R's stable ResourceId, registering R the first time
// it is referenced.
func (ResMut[R]) ResourceID() ResourceId {
	var zero R
	return resourceIdFor(reflect.TypeOf(&zero).Elem())
}

// Get returns a mutable pointer to R's current value in w.
func (ResMut[R]) Get(w *World) (*R, error) {
	id := (ResMut[R]{}).ResourceID()
	cell, ok := w.resources.get(id)
	if !ok {
		return nil, ErrResourceNotFound{Name: globalResources.names[id]}
	}
	return cell.value.Interface().(*R), nil
}

// ResourceOf returns a read-only handle to R, or an error if R was never
// created in w. It exists alongside the zero-size Res[R]{}.Get(w) form so
// call sites that want the existence check up front (before committing to
// a Query/SystemInput composition) have a direct way to ask for it.
func ResourceOf[R any](w *World) (Res[R], error) {
	if _, err := (Res[R]{}).Get(w); err != nil {
		return Res[R]{}, err
	}
	return Res[R]{}, nil
}

// ResourceMutOf returns a read-write handle to R, or an error if R was
// never created in w.
func ResourceMutOf[R any](w *World) (ResMut[R], error) {
	if _, err := (ResMut[R]{}).Get(w); err != nil {
		return ResMut[R]{}, err
	}
	return ResMut[R]{}, nil
}

// CreateResource installs value as the World's singleton instance of R,
// replacing any prior instance.
func CreateResource[R any](w *World, value R) {
	id := (Res[R]{}).ResourceID()
	ptr := reflect.New(reflect.TypeOf(value))
	ptr.Elem().Set(reflect.ValueOf(value))
	w.resources.create(id, ptr)
}

// DestroyResource removes R's singleton instance from w and returns the
// value that was removed. It errors if R was never created.
func DestroyResource[R any](w *World) (R, error) {
	var zero R
	id := (Res[R]{}).ResourceID()
	cell, ok := w.resources.get(id)
	if !ok {
		return zero, ErrResourceNotFound{Name: globalResources.names[id]}
	}
	value := *cell.value.Interface().(*R)
	w.resources.destroy(id)
	return value, nil
}

// DestroyAllResources removes every resource from w.
func DestroyAllResources(w *World) {
	w.resources.destroyAll()
}
