package ecs

import "github.com/TheBitDrifter/mask"

// ComponentSet is an order-independent set of ComponentIds, backed by a
// bitmask so equality and hashing (as a map key) are cheap regardless of
// insertion order.
type ComponentSet struct {
	bits mask.Mask
	ids  []ComponentId // sorted, for iteration and Components()
}

// NewComponentSet builds a ComponentSet from the given ids.
func NewComponentSet(ids ...ComponentId) ComponentSet {
	var s ComponentSet
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *ComponentSet) add(id ComponentId) {
	if s.contains(id) {
		return
	}
	s.bits.Mark(uint32(id))
	s.ids = append(s.ids, id)
	sortComponentIds(s.ids)
}

func (s ComponentSet) contains(id ComponentId) bool {
	var bit mask.Mask
	bit.Mark(uint32(id))
	return s.bits.ContainsAll(bit)
}

func sortComponentIds(ids []ComponentId) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// Contains reports whether id is a member of the set.
func (s ComponentSet) Contains(id ComponentId) bool {
	return s.contains(id)
}

// ContainsAll reports whether every id in other is also in s.
func (s ComponentSet) ContainsAll(other ComponentSet) bool {
	return s.bits.ContainsAll(other.bits)
}

// ContainsAny reports whether s and other share at least one id.
func (s ComponentSet) ContainsAny(other ComponentSet) bool {
	return s.bits.ContainsAny(other.bits)
}

// Len returns the number of members.
func (s ComponentSet) Len() int {
	return len(s.ids)
}

// IDs returns the set's members in ascending ComponentId order.
func (s ComponentSet) IDs() []ComponentId {
	return s.ids
}

// Key returns a value usable as a map key identifying this exact set.
func (s ComponentSet) Key() mask.Mask {
	return s.bits
}

// With returns a new set containing s's members plus the given id.
func (s ComponentSet) With(id ComponentId) ComponentSet {
	next := NewComponentSet(s.ids...)
	next.add(id)
	return next
}

// Without returns a new set containing s's members minus the given id.
func (s ComponentSet) Without(id ComponentId) ComponentSet {
	next := ComponentSet{}
	for _, existing := range s.ids {
		if existing != id {
			next.add(existing)
		}
	}
	return next
}

// Intersect returns the set of ids present in both a and b.
func Intersect(a, b ComponentSet) ComponentSet {
	var result ComponentSet
	for _, id := range a.ids {
		if b.Contains(id) {
			result.add(id)
		}
	}
	return result
}

// Union returns the set of ids present in either a or b.
func Union(a, b ComponentSet) ComponentSet {
	result := NewComponentSet(a.ids...)
	for _, id := range b.ids {
		result.add(id)
	}
	return result
}

// Equal reports whether a and b contain exactly the same ids.
func Equal(a, b ComponentSet) bool {
	return a.bits == b.bits
}
