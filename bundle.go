package ecs

// bundleWriter is the destination a Bundle writes its fields into: the
// freshly-allocated table row for the entity being spawned or inserted
// into.
type bundleWriter struct {
	table *table
	row   TableRow
}

func (w bundleWriter) set(id ComponentId, value any) {
	col := w.table.columns[id]
	col.write(int(w.row), reflectValueOf(value))
	col.invokeAfterInsert(int(w.row))
}

// Bundle is any value that declares a fixed set of components and can
// write each into a bundleWriter exactly once. Go has no derive macros, so
// Bundle1..Bundle4 stand in for the mechanical per-arity tuple bundles a
// macro would otherwise generate.
type Bundle interface {
	Components() ComponentSet
	rawIDs() []ComponentId
	write(w bundleWriter)
}

// duplicateCheck returns ErrDuplicateComponent if ids repeats a component,
// as a plain (not bark-wrapped) error since this is a caller-construction-
// time user error, not an invariant violation.
func duplicateCheck(ids ...ComponentId) error {
	seen := NewComponentSet()
	for _, id := range ids {
		if seen.Contains(id) {
			return ErrDuplicateComponent{ComponentName: globalComponents.info(id).Name()}
		}
		seen.add(id)
	}
	return nil
}

// Bundle1 declares a single component.
type Bundle1[T0 any] struct {
	C0 Component[T0]
	V0 T0
}

func (b Bundle1[T0]) Components() ComponentSet { return NewComponentSet(b.C0.ID()) }
func (b Bundle1[T0]) rawIDs() []ComponentId    { return []ComponentId{b.C0.ID()} }
func (b Bundle1[T0]) write(w bundleWriter)      { w.set(b.C0.ID(), b.V0) }

// Bundle2 declares two components.
type Bundle2[T0, T1 any] struct {
	C0 Component[T0]
	V0 T0
	C1 Component[T1]
	V1 T1
}

func (b Bundle2[T0, T1]) Components() ComponentSet {
	return NewComponentSet(b.C0.ID(), b.C1.ID())
}
func (b Bundle2[T0, T1]) rawIDs() []ComponentId {
	return []ComponentId{b.C0.ID(), b.C1.ID()}
}
func (b Bundle2[T0, T1]) write(w bundleWriter) {
	w.set(b.C0.ID(), b.V0)
	w.set(b.C1.ID(), b.V1)
}

// Bundle3 declares three components.
type Bundle3[T0, T1, T2 any] struct {
	C0 Component[T0]
	V0 T0
	C1 Component[T1]
	V1 T1
	C2 Component[T2]
	V2 T2
}

func (b Bundle3[T0, T1, T2]) Components() ComponentSet {
	return NewComponentSet(b.C0.ID(), b.C1.ID(), b.C2.ID())
}
func (b Bundle3[T0, T1, T2]) rawIDs() []ComponentId {
	return []ComponentId{b.C0.ID(), b.C1.ID(), b.C2.ID()}
}
func (b Bundle3[T0, T1, T2]) write(w bundleWriter) {
	w.set(b.C0.ID(), b.V0)
	w.set(b.C1.ID(), b.V1)
	w.set(b.C2.ID(), b.V2)
}

// Bundle4 declares four components.
type Bundle4[T0, T1, T2, T3 any] struct {
	C0 Component[T0]
	V0 T0
	C1 Component[T1]
	V1 T1
	C2 Component[T2]
	V2 T2
	C3 Component[T3]
	V3 T3
}

func (b Bundle4[T0, T1, T2, T3]) Components() ComponentSet {
	return NewComponentSet(b.C0.ID(), b.C1.ID(), b.C2.ID(), b.C3.ID())
}
func (b Bundle4[T0, T1, T2, T3]) rawIDs() []ComponentId {
	return []ComponentId{b.C0.ID(), b.C1.ID(), b.C2.ID(), b.C3.ID()}
}
func (b Bundle4[T0, T1, T2, T3]) write(w bundleWriter) {
	w.set(b.C0.ID(), b.V0)
	w.set(b.C1.ID(), b.V1)
	w.set(b.C2.ID(), b.V2)
	w.set(b.C3.ID(), b.V3)
}
