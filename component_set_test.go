package ecs

import "testing"

func TestComponentSetContainsAndOrderIndependence(t *testing.T) {
	a := NewComponentSet(1, 2, 3)
	b := NewComponentSet(3, 2, 1)

	if !Equal(a, b) {
		t.Fatalf("sets built in different orders should be equal")
	}
	for _, id := range []ComponentId{1, 2, 3} {
		if !a.Contains(id) {
			t.Errorf("expected set to contain %d", id)
		}
	}
	if a.Contains(4) {
		t.Errorf("set should not contain 4")
	}
}

func TestComponentSetWithWithout(t *testing.T) {
	a := NewComponentSet(1, 2)
	withThree := a.With(3)

	if !withThree.Contains(3) || withThree.Len() != 3 {
		t.Fatalf("With(3) = %v, want len 3 containing 3", withThree.IDs())
	}
	if a.Contains(3) {
		t.Fatalf("original set mutated by With")
	}

	withoutOne := withThree.Without(1)
	if withoutOne.Contains(1) || withoutOne.Len() != 2 {
		t.Fatalf("Without(1) = %v, want len 2 without 1", withoutOne.IDs())
	}
}

func TestComponentSetIntersectProperties(t *testing.T) {
	s := NewComponentSet(1, 2, 3)
	sPrime := NewComponentSet(2, 3, 4)
	sDPrime := NewComponentSet(3, 4, 5)

	if !Equal(Intersect(s, s), s) {
		t.Errorf("Intersect(S, S) != S")
	}
	if !Equal(Intersect(s, sPrime), Intersect(sPrime, s)) {
		t.Errorf("Intersect not commutative")
	}
	lhs := Intersect(Intersect(s, sPrime), sDPrime)
	rhs := Intersect(s, Intersect(sPrime, sDPrime))
	if !Equal(lhs, rhs) {
		t.Errorf("Intersect not associative: %v != %v", lhs.IDs(), rhs.IDs())
	}
}

func TestComponentSetUnionAndContainsAll(t *testing.T) {
	a := NewComponentSet(1, 2)
	b := NewComponentSet(2, 3)
	u := Union(a, b)

	if u.Len() != 3 {
		t.Fatalf("Union len = %d, want 3", u.Len())
	}
	if !u.ContainsAll(a) || !u.ContainsAll(b) {
		t.Fatalf("union should contain both operands")
	}
	if u.ContainsAll(NewComponentSet(4)) {
		t.Fatalf("union should not contain unrelated id")
	}
}
