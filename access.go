package ecs

import "fmt"

// Level is the read/write intent of a single Access.
type Level int

const (
	Read Level = iota
	Write
)

func (l Level) String() string {
	if l == Write {
		return "write"
	}
	return "read"
}

// AccessKind is what an Access is declared against.
type AccessKind int

const (
	KindWorld AccessKind = iota
	KindAllEntities
	KindComponent
	KindResource
)

// Access is a single declared read/write intent over the world, all
// entities, or a specific component/resource.
type Access struct {
	Kind     AccessKind
	ID       ComponentId // meaningful only for KindComponent/KindResource
	Required bool        // meaningful only for KindComponent/KindResource
	Level    Level
}

func (a Access) String() string {
	switch a.Kind {
	case KindWorld:
		return fmt.Sprintf("World(%s)", a.Level)
	case KindAllEntities:
		return fmt.Sprintf("AllEntities(%s)", a.Level)
	case KindComponent:
		return fmt.Sprintf("Component(%d, required=%v, %s)", a.ID, a.Required, a.Level)
	case KindResource:
		return fmt.Sprintf("Resource(%d, required=%v, %s)", a.ID, a.Required, a.Level)
	default:
		return "Access(?)"
	}
}

// disjoint reports whether two access kinds can never alias regardless of
// level, per the fixed disjointness table: AllEntities<->Resource,
// Component<->Resource (tables and the resource map are separate storage),
// and distinct component/resource ids, are disjoint.
func disjoint(a, b Access) bool {
	if a.Kind == KindAllEntities && b.Kind == KindResource {
		return true
	}
	if b.Kind == KindAllEntities && a.Kind == KindResource {
		return true
	}
	if a.Kind == KindComponent && b.Kind == KindResource {
		return true
	}
	if b.Kind == KindComponent && a.Kind == KindResource {
		return true
	}
	if a.Kind == KindComponent && b.Kind == KindComponent {
		return a.ID != b.ID
	}
	if a.Kind == KindResource && b.Kind == KindResource {
		return a.ID != b.ID
	}
	return false
}

// conflictsWith reports whether a and b may not be held simultaneously.
func (a Access) conflictsWith(b Access) bool {
	if a.Level != Write && b.Level != Write {
		return false
	}
	return !disjoint(a, b)
}

// WorldAccess accumulates a set of declared accesses and latches the
// first conflict it observes. It is the construction-time aliasing
// checker for queries and systems: composing a query or system that would
// violate aliasing is reported as an error without ever constructing the
// offending borrow.
type WorldAccess struct {
	accesses []Access
	err      error
}

// NewWorldAccess returns an empty access builder.
func NewWorldAccess() *WorldAccess {
	return &WorldAccess{}
}

// Add contributes a to the accumulated set. If a conflicts with any prior
// access, the first such conflict is latched as the builder's error and
// further Add calls become no-ops.
func (b *WorldAccess) Add(a Access) {
	if b.err != nil {
		return
	}
	for _, existing := range b.accesses {
		if existing.conflictsWith(a) {
			b.err = ErrAccessConflict{Lhs: existing, Rhs: a}
			return
		}
	}
	b.accesses = append(b.accesses, a)
}

// Result returns the first latched conflict, or nil if the set is
// internally consistent.
func (b *WorldAccess) Result() error {
	return b.err
}

// Matches reports whether components satisfies every required access in
// b: every required component access must be present in components.
// Optional accesses never fail the match.
func (b *WorldAccess) Matches(components ComponentSet) bool {
	for _, a := range b.accesses {
		if a.Kind != KindComponent || !a.Required {
			continue
		}
		if !components.Contains(a.ID) {
			return false
		}
	}
	return true
}

// Accesses returns the accumulated access list, in Add order.
func (b *WorldAccess) Accesses() []Access {
	return b.accesses
}
