package ecs

// QueryFilter narrows which tables a Query matches without fetching any
// component data. Unlike QueryData atoms, filters never contribute an
// Access and never borrow a column.
type QueryFilter interface {
	matches(set ComponentSet) bool
}

// NoFilter matches every table; it is the default filter for queries that
// don't need one.
type NoFilter struct{}

func (NoFilter) matches(ComponentSet) bool { return true }

// Contains requires the table carry component C, without fetching it.
// Useful for "tag" components a query needs to gate on but never reads.
// It carries no field (unlike a Bundle/Query atom that fetches a value):
// QueryOf constructs filters from their zero value, so C's id is always
// resolved through RegisterComponent rather than a stored handle, the same
// way Read[C]/Write[C] resolve their id, never from a struct field that a
// zero value would leave unset.
type Contains[C any] struct{}

func (Contains[C]) matches(set ComponentSet) bool {
	return set.Contains(RegisterComponent[C]().ID())
}

// Not inverts F.
type Not[F QueryFilter] struct {
	F F
}

func (f Not[F]) matches(set ComponentSet) bool {
	return !f.F.matches(set)
}

// Or matches a table if either A or B matches.
type Or[A, B QueryFilter] struct {
	A A
	B B
}

func (f Or[A, B]) matches(set ComponentSet) bool {
	return f.A.matches(set) || f.B.matches(set)
}

// And matches a table if both A and B match.
type And[A, B QueryFilter] struct {
	A A
	B B
}

func (f And[A, B]) matches(set ComponentSet) bool {
	return f.A.matches(set) && f.B.matches(set)
}

// AnyOf4 matches a table if any of F0..F3 matches.
type AnyOf4[F0, F1, F2, F3 QueryFilter] struct {
	F0 F0
	F1 F1
	F2 F2
	F3 F3
}

func (f AnyOf4[F0, F1, F2, F3]) matches(set ComponentSet) bool {
	return f.F0.matches(set) || f.F1.matches(set) || f.F2.matches(set) || f.F3.matches(set)
}
