package ecs

import "testing"

type resTestClock struct{ Frame int }

func TestResourceCreateGetDestroy(t *testing.T) {
	w := NewWorld()
	CreateResource(w, resTestClock{Frame: 1})

	got, err := (Res[resTestClock]{}).Get(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Frame != 1 {
		t.Fatalf("Frame = %d, want 1", got.Frame)
	}

	destroyed, err := DestroyResource[resTestClock](w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if destroyed.Frame != 1 {
		t.Fatalf("destroyed.Frame = %d, want 1", destroyed.Frame)
	}
	if _, err := (Res[resTestClock]{}).Get(w); err == nil {
		t.Fatalf("expected ErrResourceNotFound after destroy")
	}
}

func TestDestroyResourceErrorsWhenAbsent(t *testing.T) {
	w := NewWorld()
	if _, err := DestroyResource[resTestClock](w); err == nil {
		t.Fatalf("expected ErrResourceNotFound when nothing was ever created")
	}
}

func TestResourceOfAndResourceMutOfErrorWhenAbsent(t *testing.T) {
	w := NewWorld()
	if _, err := ResourceOf[resTestClock](w); err == nil {
		t.Fatalf("expected ErrResourceNotFound from ResourceOf")
	}
	CreateResource(w, resTestClock{Frame: 5})
	if _, err := ResourceOf[resTestClock](w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ResourceMutOf[resTestClock](w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResourceMutMutatesInPlace(t *testing.T) {
	w := NewWorld()
	CreateResource(w, resTestClock{Frame: 0})

	ptr, err := (ResMut[resTestClock]{}).Get(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ptr.Frame = 7

	got, _ := (Res[resTestClock]{}).Get(w)
	if got.Frame != 7 {
		t.Fatalf("Frame = %d, want 7 after mutation through ResMut", got.Frame)
	}
}

func TestDestroyAllResourcesClearsEverything(t *testing.T) {
	w := NewWorld()
	CreateResource(w, resTestClock{Frame: 3})
	DestroyAllResources(w)

	if _, err := (Res[resTestClock]{}).Get(w); err == nil {
		t.Fatalf("expected ErrResourceNotFound after DestroyAllResources")
	}
}
