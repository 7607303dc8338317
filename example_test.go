package ecs_test

import (
	"fmt"

	"github.com/hollowlake/ecs"
)

// Position is a simple 2D coordinate component.
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple 2D movement component.
type Velocity struct {
	X float64
	Y float64
}

// Name identifies an entity for display purposes.
type Name struct {
	Value string
}

// Example_basic shows spawning entities via Bundle literals and querying
// them with QueryOf/Each2.
func Example_basic() {
	w := ecs.NewWorld()

	position := ecs.RegisterComponent[Position]()
	velocity := ecs.RegisterComponent[Velocity]()
	name := ecs.RegisterComponent[Name]()

	w.Spawn(ecs.Bundle2[Position, Velocity]{
		C0: position, V0: Position{X: 0, Y: 0},
		C1: velocity, V1: Velocity{X: 1, Y: 2},
	})

	player := w.Spawn(ecs.Bundle3[Position, Velocity, Name]{
		C0: position, V0: Position{X: 10, Y: 20},
		C1: velocity, V1: Velocity{X: 1, Y: 2},
		C2: name, V2: Name{Value: "Player"},
	})

	q, err := ecs.QueryOf[ecs.Tuple2[ecs.Write[Position], ecs.Read[Velocity]], ecs.NoFilter](w)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Found %d entities with position and velocity\n", q.Len())

	ecs.Each2[Position, Velocity](q, func(id ecs.EntityId, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

	ref, err := w.Entity(player)
	if err != nil {
		panic(err)
	}
	pos, _ := ecs.Get[Position](ref)
	nme, _ := ecs.Get[Name](ref)
	fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)

	// Output:
	// Found 2 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Hp tracks an entity's current hit points.
type Hp struct {
	Current int
}

// Poisoned is a tag component marking a damage-over-time effect; a query
// can gate on it via Contains without ever fetching its value.
type Poisoned struct {
	Stacks int
}

// Example_insertAndRemove shows adding and dropping a component on a live
// entity with Insert/Remove, and gating a query on its presence with
// Contains.
func Example_insertAndRemove() {
	w := ecs.NewWorld()

	hp := ecs.RegisterComponent[Hp]()
	poisoned := ecs.RegisterComponent[Poisoned]()

	id := w.Spawn(ecs.Bundle1[Hp]{C0: hp, V0: Hp{Current: 10}})

	mut, err := w.EntityMutOf(id)
	if err != nil {
		panic(err)
	}
	if err := ecs.Insert(mut, Poisoned{Stacks: 1}); err != nil {
		panic(err)
	}

	q, err := ecs.QueryOf[ecs.Write[Hp], ecs.Contains[Poisoned]](w)
	if err != nil {
		panic(err)
	}
	ecs.Each1[Hp](q, func(id ecs.EntityId, hp *Hp) {
		hp.Current--
	})

	if err := ecs.Remove[Poisoned](mut); err != nil {
		panic(err)
	}

	ref, err := w.Entity(id)
	if err != nil {
		panic(err)
	}
	updated, _ := ecs.Get[Hp](ref)
	fmt.Printf("hp = %d, poisoned = %v\n", updated.Current, ref.Contains(poisoned.ID()))

	// Output:
	// hp = 9, poisoned = false
}
