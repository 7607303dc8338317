package ecs

import "testing"

type bndPosition struct{ X, Y float64 }
type bndVelocity struct{ DX, DY float64 }
type bndTag struct{}

func TestBundle1SpawnsWithComponent(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[bndPosition]()
	id := w.Spawn(Bundle1[bndPosition]{C0: pos, V0: bndPosition{X: 1, Y: 2}})

	ref, err := w.Entity(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Get[bndPosition](ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.X != 1 || got.Y != 2 {
		t.Fatalf("position = %+v, want {1 2}", got)
	}
}

func TestBundle2ComponentsMethodReturnsBothIds(t *testing.T) {
	pos := RegisterComponent[bndPosition]()
	vel := RegisterComponent[bndVelocity]()
	b := Bundle2[bndPosition, bndVelocity]{C0: pos, V0: bndPosition{}, C1: vel, V1: bndVelocity{}}

	set := b.Components()
	if !set.Contains(pos.ID()) || !set.Contains(vel.ID()) {
		t.Fatalf("expected Components() to contain both component ids")
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
}

func TestDuplicateCheckRejectsRepeatedComponent(t *testing.T) {
	pos := RegisterComponent[bndPosition]()
	if err := duplicateCheck(pos.ID(), pos.ID()); err == nil {
		t.Fatalf("expected ErrDuplicateComponent")
	}
	if _, ok := duplicateCheck(pos.ID(), pos.ID()).(ErrDuplicateComponent); !ok {
		t.Fatalf("expected error type ErrDuplicateComponent")
	}
}

func TestSpawnPanicsOnDuplicateComponentInBundle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Spawn to panic on a bundle with a duplicate component")
		}
	}()
	w := NewWorld()
	pos := RegisterComponent[bndPosition]()
	w.Spawn(Bundle2[bndPosition, bndPosition]{C0: pos, V0: bndPosition{}, C1: pos, V1: bndPosition{}})
}

func TestSpawnIterSpawnsEveryBundle(t *testing.T) {
	w := NewWorld()
	tag := RegisterComponent[bndTag]()
	bundles := []Bundle1[bndTag]{
		{C0: tag, V0: bndTag{}},
		{C0: tag, V0: bndTag{}},
		{C0: tag, V0: bndTag{}},
	}
	ids := SpawnIter(w, bundles)
	if len(ids) != 3 {
		t.Fatalf("len(ids) = %d, want 3", len(ids))
	}
	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", w.Len())
	}
}
