package memory

import (
	"testing"

	"quizpad/internal/app"
)

func TestSurfaceStoreLifecycle(t *testing.T) {
	store := NewSurfaceStore()
	workspace := app.NewWorkspace()

	store.Register("surface-1", workspace)
	got, ok := store.Get("surface-1")
	if !ok || got != workspace {
		t.Fatalf("expected registered workspace")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 surface, got %d", store.Len())
	}

	store.Remove("surface-1")
	if _, ok := store.Get("surface-1"); ok {
		t.Fatalf("expected surface removed")
	}
	if store.Len() != 0 {
		t.Fatalf("expected 0 surfaces, got %d", store.Len())
	}
}
