/*
Package ecs provides an archetypal Entity-Component-System core: a data
store and execution substrate in which every entity's component set is
kept contiguous in memory per archetype (the set of component types an
entity has), and where read/write access to those components is
statically validated against aliasing rules at query- and
system-construction time.

Core Concepts:

  - Entity: a generational id that represents an object; it carries no data.
  - Component: a registered data type attached to entities.
  - Table: storage for all entities that share an identical component set.
  - Query: a typed access declaration plus the matched-table set it yields.
  - System: a function whose parameters are SystemInputs, composed and
    validated for aliasing before it ever runs.

Basic Usage:

	w := NewWorld()

	position := RegisterComponent[Position]()
	velocity := RegisterComponent[Velocity]()

	w.Spawn(Bundle2[Position, Velocity]{
		C0: position, V0: Position{X: 0, Y: 0},
		C1: velocity, V1: Velocity{X: 1, Y: 2},
	})

	q, err := QueryOf[Tuple2[Write[Position], Read[Velocity]], NoFilter](w)
	if err != nil {
		panic(err)
	}
	Each2[Position, Velocity](q, func(id EntityId, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

ecs has no wire protocol, no file format, no persistence. It is an
in-process substrate a larger scheduler or application layer can be
built on top of.
*/
package ecs
