package ecs

import "fmt"

// ErrEntityNotFound is returned when an EntityId is dead or never existed.
type ErrEntityNotFound struct {
	ID EntityId
}

func (e ErrEntityNotFound) Error() string {
	return fmt.Sprintf("entity not found: %v", e.ID)
}

// ErrComponentNotFound is returned when an entity lacks a requested component.
type ErrComponentNotFound struct {
	Entity        EntityId
	ComponentName string
}

func (e ErrComponentNotFound) Error() string {
	return fmt.Sprintf("component %s not found on entity %v", e.ComponentName, e.Entity)
}

// ErrAccessConflict is returned when a query or system composition would alias.
type ErrAccessConflict struct {
	Lhs, Rhs Access
}

func (e ErrAccessConflict) Error() string {
	return fmt.Sprintf("conflicting access: %v aliases %v", e.Lhs, e.Rhs)
}

// ErrResourceNotFound is returned when a resource of the requested type
// was never created.
type ErrResourceNotFound struct {
	Name string
}

func (e ErrResourceNotFound) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Name)
}

// ErrResourceBorrowed is returned when a resource borrow would violate
// the dynamic borrow discipline (e.g. a second mutable borrow).
type ErrResourceBorrowed struct {
	Name string
}

func (e ErrResourceBorrowed) Error() string {
	return fmt.Sprintf("resource already borrowed: %s", e.Name)
}

// ErrDuplicateComponent is returned when a bundle declares the same
// component type more than once.
type ErrDuplicateComponent struct {
	ComponentName string
}

func (e ErrDuplicateComponent) Error() string {
	return fmt.Sprintf("duplicate component in bundle: %s", e.ComponentName)
}
